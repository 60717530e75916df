// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestActorFromUser(t *testing.T) {
	adminID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	superID := primitive.NewObjectID()

	tests := []struct {
		name     string
		user     *User
		expected *Actor
	}{
		{
			name:     "nil user",
			user:     nil,
			expected: nil,
		},
		{
			name:     "admin is its own tenant root",
			user:     &User{ID: adminID, Role: RoleAdmin},
			expected: &Actor{ID: adminID.Hex(), Role: RoleAdmin, CompanyID: adminID.Hex()},
		},
		{
			name: "user files under its admin",
			user: &User{ID: userID, Role: RoleUser, RefAdmin: &adminID},
			expected: &Actor{
				ID:        userID.Hex(),
				Role:      RoleUser,
				TenantRef: adminID.Hex(),
				CompanyID: adminID.Hex(),
			},
		},
		{
			name:     "user without admin has no company",
			user:     &User{ID: userID, Role: RoleUser},
			expected: &Actor{ID: userID.Hex(), Role: RoleUser},
		},
		{
			name:     "superadmin",
			user:     &User{ID: superID, Role: RoleSuperAdmin},
			expected: &Actor{ID: superID.Hex(), Role: RoleSuperAdmin, CompanyID: superID.Hex()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActorFromUser(tt.user))
		})
	}
}

func TestActorObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	assert.Equal(t, id, (&Actor{ID: id.Hex()}).ObjectID())
	assert.True(t, (&Actor{ID: "anonymous"}).ObjectID().IsZero())
	assert.True(t, (*Actor)(nil).ObjectID().IsZero())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleSuperAdmin.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("owner").Valid())
}

func TestRoleFieldUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected RoleField
		wantErr  bool
	}{
		{name: "plain string", payload: `{"userRole":"admin"}`, expected: "admin"},
		{name: "nested object", payload: `{"userRole":{"role":"user"}}`, expected: "user"},
		{name: "null", payload: `{"userRole":null}`, expected: ""},
		{name: "object without role", payload: `{"userRole":{"name":"x"}}`, expected: ""},
		{name: "double nesting rejected", payload: `{"userRole":{"role":{"role":"admin"}}}`, wantErr: true},
		{name: "number rejected", payload: `{"userRole":12}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				UserRole RoleField `json:"userRole"`
			}

			err := json.Unmarshal([]byte(tt.payload), &body)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, body.UserRole)
		})
	}
}
