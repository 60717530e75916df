// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

const (
	defaultLimit = 20
	maxLimit     = 50

	hiddenValue  = "[HIDDEN]"
	updatedValue = "[UPDATED]"
)

func page(limit, offset int64) storage.Page {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return storage.Page{Skip: offset, Limit: limit}
}

// ownerTenant is the tenant root a stored account belongs to
func ownerTenant(u *types.User) string {
	if u.Role == types.RoleUser {
		if u.RefAdmin == nil {
			return ""
		}
		return u.RefAdmin.Hex()
	}
	return u.ID.Hex()
}

// loadUser fetches id and checks the actor may manage it.
func (s *Service) loadUser(ctx context.Context, actor *types.Actor, id string) (*types.User, error) {
	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	owner := ""
	if u != nil {
		owner = ownerTenant(u)
	}

	if err := s.authz.CheckTenantAccess(ctx, actor, owner, u != nil); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, actor *types.Actor, req *CreateUserRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.CreateUser")
	defer span.End()

	target := targetRole(req.Role)

	if err := s.authz.CheckProvision(ctx, actor, target); err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	refAdmin, err := s.tenantLink(ctx, actor, target, req.RefAdmin)
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
		Username:    username,
		Email:       req.Email,
		Password:    hash,
		Role:        target,
		RefAdmin:    refAdmin,
		Company:     strings.TrimSpace(req.Company),
		Designation: strings.TrimSpace(req.Designation),
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	diff := audit.NewDiff().
		Created("username", u.Username).
		Created("email", u.Email).
		Created("role", u.Role.String())
	if refAdmin != nil {
		diff.Created("refAdmin", refAdmin.Hex())
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "CREATE_USER",
		Module:      ModuleUser,
		Description: fmt.Sprintf("User created by %s: %s", actor.Role, u.Email),
		DocumentID:  u.ID.Hex(),
		CompanyID:   ownerTenant(u),
		Changes:     diff.Changes(),
	})

	s.logger.Security().AdminAction(actor.ID, "create_user", "user:"+u.ID.Hex())

	return u, nil
}

func (s *Service) GetUser(ctx context.Context, actor *types.Actor, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GetUser")
	defer span.End()

	return s.loadUser(ctx, actor, id)
}

func (s *Service) UpdateUser(ctx context.Context, actor *types.Actor, id string, req *UpdateUserRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.UpdateUser")
	defer span.End()

	u, err := s.loadUser(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	previous := *u
	diff := audit.NewDiff()

	if req.Email != nil && !strings.EqualFold(*req.Email, u.Email) {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if req.RefAdmin != nil {
		if !actor.IsSuperAdmin() {
			return nil, fmt.Errorf("only a superadmin can move a user between tenants: %w", authorization.ErrInsufficientRole)
		}
		link, err := s.tenantLink(ctx, actor, u.Role, *req.RefAdmin)
		if err != nil {
			return nil, err
		}
		u.RefAdmin = link
	}

	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
		diff.Set("password", hiddenValue, updatedValue)
	}

	setString(&u.Username, req.Username)
	setString(&u.Company, req.Company)
	setString(&u.Designation, req.Designation)
	setString(&u.FirstName, req.FirstName)
	setString(&u.LastName, req.LastName)
	setString(&u.PhoneNumber, req.PhoneNumber)
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.storage.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	// a deactivated account loses its sessions
	if previous.IsActive && !u.IsActive {
		if _, err := s.storage.DeleteUserTokens(ctx, u.ID.Hex()); err != nil {
			s.logger.Warnf("failed to revoke tokens of %s: %v", u.ID.Hex(), err)
		}
	}

	diff.
		Compare("username", previous.Username, u.Username).
		Compare("email", previous.Email, u.Email).
		Compare("refAdmin", hexOrNil(previous.RefAdmin), hexOrNil(u.RefAdmin)).
		Compare("company", previous.Company, u.Company).
		Compare("designation", previous.Designation, u.Designation).
		Compare("firstName", previous.FirstName, u.FirstName).
		Compare("lastName", previous.LastName, u.LastName).
		Compare("phoneNumber", previous.PhoneNumber, u.PhoneNumber).
		Compare("isActive", previous.IsActive, u.IsActive)

	if !diff.Empty() {
		s.audit.Record(ctx, actor, audit.Entry{
			Action:      "UPDATE",
			Module:      ModuleUser,
			Description: fmt.Sprintf("User updated by %s: %s", actor.Role, u.Email),
			DocumentID:  u.ID.Hex(),
			CompanyID:   ownerTenant(u),
			Changes:     diff.Changes(),
		})
	}

	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, actor *types.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.DeleteUser")
	defer span.End()

	u, err := s.loadUser(ctx, actor, id)
	if err != nil {
		return err
	}

	if u.Role == types.RoleSuperAdmin {
		return fmt.Errorf("superadmin accounts cannot be deleted: %w", authorization.ErrInsufficientRole)
	}

	if err := s.remove(ctx, u); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "DELETE",
		Module:      ModuleUser,
		Description: fmt.Sprintf("User deleted by %s: %s", actor.Role, u.Email),
		DocumentID:  u.ID.Hex(),
		CompanyID:   ownerTenant(u),
		Changes: audit.NewDiff().
			Removed("username", u.Username).
			Removed("email", u.Email).
			Removed("role", u.Role.String()).
			Changes(),
	})

	s.logger.Security().AdminAction(actor.ID, "delete_user", "user:"+u.ID.Hex())

	return nil
}

func (s *Service) remove(ctx context.Context, u *types.User) error {
	if err := s.storage.DeleteUser(ctx, u.ID.Hex()); err != nil {
		return err
	}

	if _, err := s.storage.DeleteUserTokens(ctx, u.ID.Hex()); err != nil {
		s.logger.Warnf("failed to revoke tokens of %s: %v", u.ID.Hex(), err)
	}

	return nil
}

// ListAdmins lists admin accounts, newest first. An admin only sees itself.
func (s *Service) ListAdmins(ctx context.Context, actor *types.Actor, limit, offset int64) (*UserList, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ListAdmins")
	defer span.End()

	if err := s.authz.CheckRole(ctx, actor, types.RoleSuperAdmin, types.RoleAdmin); err != nil {
		return nil, err
	}

	p := page(limit, offset)

	if !actor.IsSuperAdmin() {
		self, err := s.storage.GetUserByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}

		users := []*types.User{}
		if p.Skip == 0 {
			users = append(users, self)
		}
		return &UserList{Users: users, Total: 1, Limit: p.Limit, Offset: p.Skip}, nil
	}

	users, total, err := s.storage.ListUsers(ctx, storage.UserFilter{
		Roles: []types.Role{types.RoleAdmin},
		Page:  p,
	})
	if err != nil {
		return nil, err
	}

	return &UserList{Users: users, Total: total, Limit: p.Limit, Offset: p.Skip}, nil
}

func (s *Service) SearchUsers(ctx context.Context, actor *types.Actor, f SearchFilter) (*UserList, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SearchUsers")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	filter := storage.UserFilter{
		TenantID: tenantID,
		IsActive: f.IsActive,
		Search:   strings.TrimSpace(f.Search),
		Page:     page(f.Limit, f.Offset),
	}

	if f.Role != "" {
		if !f.Role.Valid() {
			return nil, types.NewValidationError("role must be one of [superadmin admin user]")
		}
		filter.Roles = []types.Role{f.Role}
	}

	users, total, err := s.storage.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &UserList{Users: users, Total: total, Limit: filter.Limit, Offset: filter.Skip}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, actor *types.Actor) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GetCurrentUser")
	defer span.End()

	if actor == nil {
		return nil, authorization.ErrAuthenticationRequired
	}

	return s.storage.GetUserByID(ctx, actor.ID)
}

func (s *Service) UpdateCurrentUser(ctx context.Context, actor *types.Actor, req *UpdateProfileRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.UpdateCurrentUser")
	defer span.End()

	if actor == nil {
		return nil, authorization.ErrAuthenticationRequired
	}

	u, err := s.storage.GetUserByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	previous := *u
	var links types.SocialLinks
	if u.SocialLinks != nil {
		links = *u.SocialLinks
	}
	before := links

	diff := audit.NewDiff()

	if req.Email != nil && !strings.EqualFold(*req.Email, u.Email) {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	setString(&u.Username, req.Username)
	setString(&u.FirstName, req.FirstName)
	setString(&u.LastName, req.LastName)

	diff.
		Compare("username", previous.Username, u.Username).
		Compare("email", previous.Email, u.Email)

	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
		diff.Set("password", hiddenValue, updatedValue)
	}

	setString(&links.Website, req.Website)
	setString(&links.Facebook, req.Facebook)
	setString(&links.Instagram, req.Instagram)
	setString(&links.LinkedIn, req.LinkedIn)
	setString(&links.X, req.X)
	setString(&links.Youtube, req.Youtube)

	diff.
		Compare("firstName", previous.FirstName, u.FirstName).
		Compare("lastName", previous.LastName, u.LastName).
		Compare("socialLinks.website", before.Website, links.Website).
		Compare("socialLinks.facebook", before.Facebook, links.Facebook).
		Compare("socialLinks.instagram", before.Instagram, links.Instagram).
		Compare("socialLinks.linkedin", before.LinkedIn, links.LinkedIn).
		Compare("socialLinks.x", before.X, links.X).
		Compare("socialLinks.youtube", before.Youtube, links.Youtube)

	if links != (types.SocialLinks{}) {
		u.SocialLinks = &links
	}

	if err := s.storage.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	if !diff.Empty() {
		s.audit.Record(ctx, actor, audit.Entry{
			Action:      "UPDATE",
			Module:      ModuleUser,
			Description: fmt.Sprintf("User profile updated: %s", u.Email),
			DocumentID:  u.ID.Hex(),
			Changes:     diff.Changes(),
		})
	}

	return u, nil
}

func (s *Service) DeleteCurrentUser(ctx context.Context, actor *types.Actor) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.DeleteCurrentUser")
	defer span.End()

	if actor == nil {
		return authorization.ErrAuthenticationRequired
	}

	u, err := s.storage.GetUserByID(ctx, actor.ID)
	if err != nil {
		return err
	}

	if err := s.remove(ctx, u); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "DELETE",
		Module:      ModuleUser,
		Description: fmt.Sprintf("User deleted own account: %s", u.Email),
		DocumentID:  u.ID.Hex(),
		Changes: audit.NewDiff().
			Removed("username", u.Username).
			Removed("email", u.Email).
			Changes(),
	})

	return nil
}

// setString trims and applies v when present, empty values are ignored
func setString(dst *string, v *string) {
	if v == nil {
		return
	}
	if t := strings.TrimSpace(*v); t != "" {
		*dst = t
	}
}

func hexOrNil(id *primitive.ObjectID) interface{} {
	if id == nil {
		return nil
	}
	return id.Hex()
}
