// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/crm-service/internal/types"
)

// provisionable lists, per creator role, the roles it may create accounts for.
// superadmin never appears as a target.
var provisionable = map[types.Role][]types.Role{
	types.RoleSuperAdmin: {types.RoleAdmin, types.RoleUser},
	types.RoleAdmin:      {types.RoleUser},
	types.RoleUser:       {},
}

// CanProvision reports whether an actor with creatorRole may create an account with targetRole.
func CanProvision(creatorRole, targetRole types.Role) bool {
	if targetRole == types.RoleSuperAdmin {
		return false
	}

	for _, r := range provisionable[creatorRole] {
		if r == targetRole {
			return true
		}
	}

	return false
}

// CanAccessTenantResource reports whether the actor may touch a record owned by ownerTenantID.
func CanAccessTenantResource(actor *types.Actor, ownerTenantID string) bool {
	if actor == nil {
		return false
	}

	switch actor.Role {
	case types.RoleSuperAdmin:
		return true
	case types.RoleAdmin:
		return ownerTenantID != "" && ownerTenantID == actor.ID
	case types.RoleUser:
		return ownerTenantID != "" && ownerTenantID == actor.TenantRef
	}

	return false
}

// ResolveTenantRoot returns the id tenant-scoped queries are filtered by.
// The second value is false for superadmins, whose queries are not filtered,
// and for actors with no tenant linkage.
func ResolveTenantRoot(actor *types.Actor) (string, bool) {
	if actor == nil {
		return "", false
	}

	switch actor.Role {
	case types.RoleAdmin:
		return actor.ID, actor.ID != ""
	case types.RoleUser:
		return actor.TenantRef, actor.TenantRef != ""
	}

	return "", false
}
