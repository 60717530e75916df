// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"slices"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func actorID(actor *types.Actor) string {
	if actor == nil || actor.ID == "" {
		return "anonymous"
	}
	return actor.ID
}

// CheckProvision decides whether creator may create an account with the target role.
// Superadmin targets are refused before the creator is even looked at.
func (a *Authorizer) CheckProvision(ctx context.Context, creator *types.Actor, target types.Role) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckProvision")
	defer span.End()

	if target == types.RoleSuperAdmin {
		a.logger.Security().AuthzFailure(actorID(creator), "provision:"+target.String())
		return fmt.Errorf("superadmin accounts cannot be provisioned: %w", ErrInsufficientRole)
	}

	if creator == nil {
		return ErrAuthenticationRequired
	}

	if !CanProvision(creator.Role, target) {
		a.logger.Security().AuthzFailure(creator.ID, "provision:"+target.String())
		return fmt.Errorf("role %s cannot provision %s: %w", creator.Role, target, ErrInsufficientRole)
	}

	return nil
}

func (a *Authorizer) CheckRole(ctx context.Context, actor *types.Actor, roles ...types.Role) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckRole")
	defer span.End()

	if actor == nil {
		return ErrAuthenticationRequired
	}

	if !slices.Contains(roles, actor.Role) {
		a.logger.Security().AuthzFailure(actor.ID, "role:"+actor.Role.String())
		return ErrInsufficientRole
	}

	return nil
}

// CheckTenantAccess decides access to a record owned by ownerTenantID, found
// reports whether the record exists at all. A record of another tenant is
// reported exactly like a missing one.
func (a *Authorizer) CheckTenantAccess(ctx context.Context, actor *types.Actor, ownerTenantID string, found bool) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	if actor == nil {
		return ErrAuthenticationRequired
	}

	if !found {
		return ErrResourceNotFound
	}

	if !CanAccessTenantResource(actor, ownerTenantID) {
		a.logger.Security().AuthzFailure(actor.ID, "tenant:"+ownerTenantID)
		return ErrResourceNotFound
	}

	return nil
}

func (a *Authorizer) TenantScope(ctx context.Context, actor *types.Actor) (string, error) {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.TenantScope")
	defer span.End()

	if actor == nil {
		return "", ErrAuthenticationRequired
	}

	if actor.IsSuperAdmin() {
		return "", nil
	}

	root, ok := ResolveTenantRoot(actor)
	if !ok {
		a.logger.Security().AuthzFailure(actor.ID, "tenant:unlinked")
		return "", ErrAccessDenied
	}

	return root, nil
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
