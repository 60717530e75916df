// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated principal a request acts on behalf of.
// CompanyID is the tenant key audit entries are filed under.
type Actor struct {
	ID        string
	Role      Role
	TenantRef string
	CompanyID string
}

func (a *Actor) IsSuperAdmin() bool {
	return a != nil && a.Role == RoleSuperAdmin
}

// ActorFromUser is the only conversion from a stored user to an Actor
func ActorFromUser(u *User) *Actor {
	if u == nil {
		return nil
	}

	a := &Actor{
		ID:   u.ID.Hex(),
		Role: u.Role,
	}

	if u.RefAdmin != nil && !u.RefAdmin.IsZero() {
		a.TenantRef = u.RefAdmin.Hex()
	}

	switch u.Role {
	case RoleUser:
		a.CompanyID = a.TenantRef
	default:
		a.CompanyID = a.ID
	}

	return a
}

// ObjectID parses the actor id, the zero value is returned for malformed ids
func (a *Actor) ObjectID() primitive.ObjectID {
	if a == nil {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// CompanyObjectID parses the tenant root, the zero value is returned when there is none
func (a *Actor) CompanyObjectID() primitive.ObjectID {
	if a == nil {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(a.CompanyID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// RoleField decodes a role sent either as a plain string or wrapped in an
// object carrying a "role" key, as older clients still do.
// TODO: drop the object form once every client sends plain strings.
type RoleField string

func (r *RoleField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RoleField(strings.TrimSpace(s))
		return nil
	}

	var wrapped struct {
		Role json.RawMessage `json:"role"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("role must be a string or an object with a role field: %w", err)
	}

	if len(wrapped.Role) == 0 {
		*r = ""
		return nil
	}

	// only one level of nesting is unwrapped
	if err := json.Unmarshal(wrapped.Role, &s); err != nil {
		return fmt.Errorf("nested role must be a string: %w", err)
	}

	*r = RoleField(strings.TrimSpace(s))
	return nil
}

func (r RoleField) String() string {
	return string(r)
}
