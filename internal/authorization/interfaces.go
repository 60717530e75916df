// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/crm-service/internal/types"
)

type AuthorizerInterface interface {
	CheckProvision(context.Context, *types.Actor, types.Role) error
	CheckRole(context.Context, *types.Actor, ...types.Role) error
	CheckTenantAccess(context.Context, *types.Actor, string, bool) error
	// TenantScope returns the tenant root the actor's queries must be filtered by,
	// an empty string means unfiltered.
	TenantScope(context.Context, *types.Actor) (string, error)
}
