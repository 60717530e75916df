// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

const (
	ModuleAuth   = "AUTH"
	ModuleUser   = "USER"
	ModuleSystem = "SYSTEM"

	superAdminUsername = "superadmin"
)

var (
	ErrEmailTaken          = fmt.Errorf("email is already registered: %w", storage.ErrDuplicateKey)
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials: %w", authorization.ErrAuthenticationRequired)
	ErrInvalidRefreshToken = fmt.Errorf("invalid refresh token: %w", authorization.ErrAuthenticationRequired)
	ErrAccountInactive     = fmt.Errorf("account is deactivated: %w", authorization.ErrAccessDenied)
)

type Service struct {
	storage StorageInterface
	tokens  TokenIssuerInterface
	authz   AuthorizerInterface
	audit   AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// genUsername returns a random "user-" prefixed name for accounts created without one.
func genUsername() string {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		return "user-" + primitive.NewObjectID().Hex()[14:]
	}
	return "user-" + hex.EncodeToString(b)
}

func targetRole(r types.RoleField) types.Role {
	if r == "" {
		return types.RoleUser
	}
	return types.Role(strings.ToLower(r.String()))
}

// issue signs a token pair for u and persists the refresh token.
func (s *Service) issue(ctx context.Context, u *types.User) (*AuthResult, error) {
	access, _, err := s.tokens.GenerateAccessToken(ctx, u.ID.Hex(), u.Role)
	if err != nil {
		return nil, err
	}

	refresh, expiresAt, err := s.tokens.GenerateRefreshToken(ctx, u.ID.Hex())
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.CreateToken(ctx, &types.Token{Token: refresh, UserID: u.ID, ExpiresAt: expiresAt}); err != nil {
		return nil, err
	}

	return &AuthResult{User: u, AccessToken: access, RefreshToken: refresh, RefreshExpiresAt: expiresAt}, nil
}

func (s *Service) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, storage.ErrNotFound):
		return nil
	default:
		return err
	}
}

// tenantLink resolves the refAdmin of a new account. Only users are linked to
// a tenant, admins created by a superadmin start their own.
func (s *Service) tenantLink(ctx context.Context, creator *types.Actor, target types.Role, requested string) (*primitive.ObjectID, error) {
	if target != types.RoleUser {
		return nil, nil
	}

	if creator.Role == types.RoleAdmin {
		oid := creator.ObjectID()
		return &oid, nil
	}

	if requested == "" {
		return nil, types.NewValidationError("refAdmin is required when a superadmin creates a user")
	}

	owner, err := s.storage.GetUserByID(ctx, requested)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewValidationError("refAdmin does not reference an existing admin")
		}
		return nil, err
	}

	if owner.Role != types.RoleAdmin {
		return nil, types.NewValidationError("refAdmin must reference an admin")
	}

	return &owner.ID, nil
}

func (s *Service) Register(ctx context.Context, creator *types.Actor, req *RegisterRequest) (*AuthResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Register")
	defer span.End()

	target := targetRole(req.Role)

	if err := s.authz.CheckProvision(ctx, creator, target); err != nil {
		reason := "Insufficient permissions"
		switch {
		case target == types.RoleSuperAdmin:
			reason = "Super admin cannot be created or registered"
		case creator == nil:
			reason = "Authentication required"
		}

		s.audit.Record(ctx, creator, audit.Entry{
			Action:      "REGISTER_FAILED",
			Module:      ModuleAuth,
			Description: fmt.Sprintf("Registration of %s blocked: %s", target, req.Email),
			Changes: audit.NewDiff().
				Created("email", req.Email).
				Created("requestedRole", target.String()).
				Created("reason", reason).
				Changes(),
		})

		return nil, err
	}

	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	refAdmin, err := s.tenantLink(ctx, creator, target, req.RefAdmin)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = genUsername()
	}

	u, err := s.storage.CreateUser(ctx, &types.User{
		Username: username,
		Email:    req.Email,
		Password: hash,
		Role:     target,
		RefAdmin: refAdmin,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.issue(ctx, u)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, types.ActorFromUser(u), audit.Entry{
		Action:      "REGISTER",
		Module:      ModuleAuth,
		Description: fmt.Sprintf("User registered successfully: %s", u.Email),
		DocumentID:  u.ID.Hex(),
		Changes: audit.NewDiff().
			Created("username", u.Username).
			Created("email", u.Email).
			Created("role", u.Role.String()).
			Changes(),
	})

	s.logger.Security().AdminAction(creator.ID, "register", "user:"+u.ID.Hex())

	return res, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Login")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		s.audit.Record(ctx, nil, audit.Entry{
			Action:      audit.ActionLoginFailed,
			Module:      ModuleAuth,
			Description: fmt.Sprintf("Failed login attempt - User not found: %s", email),
			Changes: audit.NewDiff().
				Created("email", email).
				Created("reason", "User not found").
				Changes(),
		})
		s.logger.Security().AuthnFailure(email, "unknown email")

		return nil, fmt.Errorf("user not found: %w", authorization.ErrResourceNotFound)
	}

	actor := types.ActorFromUser(u)

	if !verifyPassword(u.Password, req.Password) {
		s.audit.Record(ctx, actor, audit.Entry{
			Action:      audit.ActionLoginFailed,
			Module:      ModuleAuth,
			Description: fmt.Sprintf("Failed login attempt - Invalid password: %s", email),
			DocumentID:  u.ID.Hex(),
			Changes: audit.NewDiff().
				Created("email", email).
				Created("reason", "Invalid password").
				Changes(),
		})
		s.logger.Security().AuthnFailure(u.ID.Hex(), "invalid password")

		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		s.logger.Security().AuthnFailure(u.ID.Hex(), "inactive user")
		return nil, ErrAccountInactive
	}

	res, err := s.issue(ctx, u)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "LOGIN",
		Module:      ModuleAuth,
		Description: fmt.Sprintf("User logged in successfully: %s", u.Email),
		DocumentID:  u.ID.Hex(),
		Changes: audit.NewDiff().
			Created("email", u.Email).
			Created("username", u.Username).
			Created("role", u.Role.String()).
			Changes(),
	})
	s.logger.Security().AuthnSuccess(u.ID.Hex())

	return res, nil
}

// Refresh exchanges a stored, valid refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Refresh")
	defer span.End()

	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, types.NewValidationError("refreshToken is required")
	}

	stored, err := s.storage.GetToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	claims, err := s.tokens.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		s.logger.Debugf("refresh token rejected: %v", err)
		return nil, ErrInvalidRefreshToken
	}

	if claims.Subject != stored.UserID.Hex() {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.storage.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	access, expiresAt, err := s.tokens.GenerateAccessToken(ctx, claims.Subject, u.Role)
	if err != nil {
		return nil, err
	}

	return &RefreshResult{AccessToken: access, ExpiresAt: expiresAt}, nil
}

// Logout revokes refreshToken, or every token of the actor when none is given.
func (s *Service) Logout(ctx context.Context, actor *types.Actor, refreshToken string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Logout")
	defer span.End()

	if actor == nil {
		return authorization.ErrAuthenticationRequired
	}

	if refreshToken = strings.TrimSpace(refreshToken); refreshToken != "" {
		if err := s.storage.DeleteToken(ctx, refreshToken); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	} else if _, err := s.storage.DeleteUserTokens(ctx, actor.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "LOGOUT",
		Module:      ModuleAuth,
		Description: "User logged out",
		DocumentID:  actor.ID,
	})

	return nil
}

// SeedSuperAdmin creates the superadmin account unless one already exists. It
// returns nil without error when nothing had to be created.
func (s *Service) SeedSuperAdmin(ctx context.Context, email, password string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SeedSuperAdmin")
	defer span.End()

	_, total, err := s.storage.ListUsers(ctx, storage.UserFilter{
		Roles: []types.Role{types.RoleSuperAdmin},
		Page:  storage.Page{Limit: 1},
	})
	if err != nil {
		return nil, err
	}

	if total > 0 {
		s.logger.Info("super admin already exists, skipping seed")
		return nil, nil
	}

	if email == "" || password == "" {
		s.logger.Warn("super admin credentials are not configured, skipping seed")
		return nil, nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := s.storage.CreateUser(ctx, &types.User{
		Username:        superAdminUsername,
		Email:           email,
		Password:        hash,
		Role:            types.RoleSuperAdmin,
		FirstName:       "Super",
		LastName:        "Admin",
		IsEmailVerified: true,
		IsActive:        true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("super admin created", "id", u.ID.Hex(), "email", u.Email)

	s.audit.Record(ctx, types.ActorFromUser(u), audit.Entry{
		Action:      "SEED_SUPER_ADMIN",
		Module:      ModuleSystem,
		Description: fmt.Sprintf("Super admin seeded: %s", u.Email),
		DocumentID:  u.ID.Hex(),
		Changes: audit.NewDiff().
			Created("username", u.Username).
			Created("email", u.Email).
			Created("role", u.Role.String()).
			Created("firstName", u.FirstName).
			Created("lastName", u.LastName).
			Changes(),
	})

	return u, nil
}

func NewService(
	storage StorageInterface,
	tokens TokenIssuerInterface,
	authz AuthorizerInterface,
	audit AuditInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		authz:   authz,
		audit:   audit,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
