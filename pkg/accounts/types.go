// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"time"

	"github.com/canonical/crm-service/internal/types"
)

type RegisterRequest struct {
	Username string          `json:"username" validate:"max=20"`
	Email    string          `json:"email" validate:"required,email,max=50"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     types.RoleField `json:"role" validate:"omitempty,oneof=superadmin admin user"`
	// RefAdmin links a user created by a superadmin to its tenant
	RefAdmin string `json:"refAdmin" validate:"omitempty,objectid"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type CreateUserRequest struct {
	Username    string          `json:"username" validate:"max=20"`
	Email       string          `json:"email" validate:"required,email,max=50"`
	Password    string          `json:"password" validate:"required,min=8"`
	Role        types.RoleField `json:"role" validate:"omitempty,oneof=superadmin admin user"`
	Company     string          `json:"company" validate:"max=100"`
	RefAdmin    string          `json:"refAdmin" validate:"omitempty,objectid"`
	Designation string          `json:"designation" validate:"max=50"`
}

// UpdateUserRequest is the administrative update of another account
type UpdateUserRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=1,max=20"`
	Email       *string `json:"email" validate:"omitempty,email,max=50"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	Company     *string `json:"company" validate:"omitempty,max=100"`
	RefAdmin    *string `json:"refAdmin" validate:"omitempty,objectid"`
	Designation *string `json:"designation" validate:"omitempty,max=50"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=20"`
	LastName    *string `json:"last_name" validate:"omitempty,max=20"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateProfileRequest is what an account may change about itself
type UpdateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=1,max=20"`
	Email     *string `json:"email" validate:"omitempty,email,max=50"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	FirstName *string `json:"first_name" validate:"omitempty,max=20"`
	LastName  *string `json:"last_name" validate:"omitempty,max=20"`
	Website   *string `json:"website" validate:"omitempty,url,max=100"`
	Facebook  *string `json:"facebook" validate:"omitempty,url,max=100"`
	Instagram *string `json:"instagram" validate:"omitempty,url,max=100"`
	LinkedIn  *string `json:"linkedin" validate:"omitempty,url,max=100"`
	X         *string `json:"x" validate:"omitempty,url,max=100"`
	Youtube   *string `json:"youtube" validate:"omitempty,url,max=100"`
}

type SearchFilter struct {
	Search   string
	Role     types.Role
	IsActive *bool
	Limit    int64
	Offset   int64
}

type AuthResult struct {
	User             *types.User `json:"user"`
	AccessToken      string      `json:"accessToken"`
	RefreshToken     string      `json:"-"`
	RefreshExpiresAt time.Time   `json:"-"`
}

type RefreshResult struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type UserList struct {
	Users  []*types.User `json:"users"`
	Total  int64         `json:"total"`
	Limit  int64         `json:"limit"`
	Offset int64         `json:"offset"`
}
