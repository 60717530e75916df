// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"time"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
	"github.com/canonical/crm-service/pkg/authentication"
)

type ServiceInterface interface {
	Register(ctx context.Context, creator *types.Actor, req *RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error)
	Logout(ctx context.Context, actor *types.Actor, refreshToken string) error

	CreateUser(ctx context.Context, actor *types.Actor, req *CreateUserRequest) (*types.User, error)
	GetUser(ctx context.Context, actor *types.Actor, id string) (*types.User, error)
	UpdateUser(ctx context.Context, actor *types.Actor, id string, req *UpdateUserRequest) (*types.User, error)
	DeleteUser(ctx context.Context, actor *types.Actor, id string) error
	ListAdmins(ctx context.Context, actor *types.Actor, limit, offset int64) (*UserList, error)
	SearchUsers(ctx context.Context, actor *types.Actor, f SearchFilter) (*UserList, error)

	GetCurrentUser(ctx context.Context, actor *types.Actor) (*types.User, error)
	UpdateCurrentUser(ctx context.Context, actor *types.Actor, req *UpdateProfileRequest) (*types.User, error)
	DeleteCurrentUser(ctx context.Context, actor *types.Actor) error

	SeedSuperAdmin(ctx context.Context, email, password string) (*types.User, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context, f storage.UserFilter) ([]*types.User, int64, error)
	UpdateUser(ctx context.Context, u *types.User) error
	DeleteUser(ctx context.Context, id string) error

	CreateToken(ctx context.Context, t *types.Token) (*types.Token, error)
	GetToken(ctx context.Context, token string) (*types.Token, error)
	DeleteToken(ctx context.Context, token string) error
	DeleteUserTokens(ctx context.Context, userID string) (int64, error)
}

// TokenIssuerInterface signs and checks the access and refresh tokens handed to clients
type TokenIssuerInterface interface {
	GenerateAccessToken(ctx context.Context, userID string, role types.Role) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error)
	VerifyRefreshToken(ctx context.Context, raw string) (*authentication.Claims, error)
}

type AuthorizerInterface interface {
	CheckProvision(ctx context.Context, creator *types.Actor, target types.Role) error
	CheckRole(ctx context.Context, actor *types.Actor, roles ...types.Role) error
	CheckTenantAccess(ctx context.Context, actor *types.Actor, ownerTenantID string, found bool) error
	TenantScope(ctx context.Context, actor *types.Actor) (string, error)
}

type AuditInterface interface {
	Record(ctx context.Context, actor *types.Actor, entry audit.Entry) audit.Result
}

var _ ServiceInterface = (*Service)(nil)
