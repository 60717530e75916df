// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
)

const (
	AnonymousUserID = "anonymous"

	ActionLoginFailed = "LOGIN_FAILED"
	ModuleSystem      = "SYSTEM"
)

var (
	ErrActionRequired  = errors.New("audit action is required")
	ErrModuleRequired  = errors.New("audit module is required")
	ErrCompanyRequired = errors.New("companyId is required")
	ErrInvalidChange   = errors.New("each change must have a field and at least one of oldValue or newValue")
)

// Entry describes one audited event. Action and module are matched case
// insensitively and stored upper-cased.
type Entry struct {
	Action      string
	Module      string
	Description string
	DocumentID  string
	Changes     []types.Change

	// UserRole overrides the role taken from the actor.
	UserRole string
	// CompanyID overrides the actor's tenant root.
	CompanyID string
}

// Result reports the outcome of Record, failures never propagate to the caller.
type Result struct {
	Success bool
	LogID   string
	Error   error
}

type Engine struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Record validates entry and persists it. Validation failures persist nothing.
func (e *Engine) Record(ctx context.Context, actor *types.Actor, entry Entry) Result {
	ctx, span := e.tracer.Start(ctx, "audit.Engine.Record")
	defer span.End()

	l, err := e.build(actor, entry)
	if err == nil {
		l, err = e.storage.CreateLog(ctx, l)
	}

	if err != nil {
		e.fail(entry, err)
		return Result{Error: err}
	}

	return Result{Success: true, LogID: l.ID.Hex()}
}

func (e *Engine) build(actor *types.Actor, entry Entry) (*types.Log, error) {
	action := strings.ToUpper(strings.TrimSpace(entry.Action))
	module := strings.ToUpper(strings.TrimSpace(entry.Module))

	if action == "" {
		return nil, ErrActionRequired
	}
	if module == "" {
		return nil, ErrModuleRequired
	}

	companyID := strings.TrimSpace(entry.CompanyID)
	if companyID == "" && actor != nil {
		companyID = actor.CompanyID
	}

	if companyID == "" && action != ActionLoginFailed && module != ModuleSystem {
		return nil, fmt.Errorf("%w for %s/%s", ErrCompanyRequired, action, module)
	}

	for i, c := range entry.Changes {
		if strings.TrimSpace(c.Field) == "" || (c.OldValue == nil && c.NewValue == nil) {
			return nil, fmt.Errorf("%w: change %d", ErrInvalidChange, i)
		}
	}

	userID := AnonymousUserID
	if actor != nil && actor.ID != "" {
		userID = actor.ID
	}

	changes := make([]types.Change, len(entry.Changes))
	copy(changes, entry.Changes)

	return &types.Log{
		CompanyID:   companyID,
		Action:      action,
		Module:      module,
		Description: entry.Description,
		UserRole:    resolveRole(actor, entry.UserRole),
		UserID:      userID,
		DocumentID:  entry.DocumentID,
		Changes:     changes,
	}, nil
}

func resolveRole(actor *types.Actor, explicit string) string {
	if r := strings.TrimSpace(explicit); r != "" {
		return r
	}
	if actor != nil && actor.Role != "" {
		return actor.Role.String()
	}
	return types.RoleUser.String()
}

func (e *Engine) fail(entry Entry, err error) {
	e.logger.Errorw(
		"failed to record audit entry",
		"action", entry.Action,
		"module", entry.Module,
		"document_id", entry.DocumentID,
		"error", err,
	)

	_ = e.monitor.IncAuditWriteFailure(
		map[string]string{
			"action": strings.ToUpper(entry.Action),
			"module": strings.ToUpper(entry.Module),
		},
	)
}

func NewEngine(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Engine {
	e := new(Engine)

	e.storage = storage

	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	return e
}
