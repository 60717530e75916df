// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
)

const notAvailable = "N/A"

// UserInfo is the display form of the user behind a log entry
type UserInfo struct {
	ID      string `json:"_id"`
	EmpCode string `json:"empCode"`
	EmpName string `json:"empName"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

var anonymousUser = UserInfo{
	ID:      AnonymousUserID,
	EmpCode: notAvailable,
	EmpName: "Anonymous User",
	Email:   notAvailable,
	Role:    AnonymousUserID,
}

func userInfo(u *types.User) UserInfo {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.Username
	}
	if name == "" {
		name = notAvailable
	}

	code := u.Username
	if code == "" {
		code = notAvailable
	}

	return UserInfo{
		ID:      u.ID.Hex(),
		EmpCode: code,
		EmpName: name,
		Email:   u.Email,
		Role:    u.Role.String(),
	}
}

// Enricher resolves user ids stored on log entries, best effort.
type Enricher struct {
	storage StorageInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Resolve maps every id it could resolve to its UserInfo. Ids missing from the
// result are shown raw.
func (e *Enricher) Resolve(ctx context.Context, ids []string) map[string]UserInfo {
	ctx, span := e.tracer.Start(ctx, "audit.Enricher.Resolve")
	defer span.End()

	out := make(map[string]UserInfo)
	lookup := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if id == AnonymousUserID {
			out[id] = anonymousUser
			continue
		}

		if primitive.IsValidObjectID(id) {
			lookup = append(lookup, id)
		}
	}

	if len(lookup) == 0 {
		return out
	}

	users, err := e.storage.ListUsersByIDs(ctx, lookup)
	if err != nil {
		e.logger.Warnf("failed to resolve log users: %v", err)
		return out
	}

	for _, u := range users {
		out[u.ID.Hex()] = userInfo(u)
	}

	return out
}

// Display returns the resolved UserInfo for id or the raw id itself.
func Display(resolved map[string]UserInfo, id string) interface{} {
	if u, ok := resolved[id]; ok {
		return u
	}
	return id
}

func NewEnricher(storage StorageInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Enricher {
	e := new(Enricher)

	e.storage = storage
	e.tracer = tracer
	e.logger = logger

	return e
}
