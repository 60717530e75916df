// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

func TestOwnerTenant(t *testing.T) {
	tenant := primitive.NewObjectID()
	admin := &types.User{ID: primitive.NewObjectID(), Role: types.RoleAdmin}

	assert.Equal(t, admin.ID.Hex(), ownerTenant(admin))
	assert.Equal(t, tenant.Hex(), ownerTenant(&types.User{ID: primitive.NewObjectID(), Role: types.RoleUser, RefAdmin: &tenant}))
	assert.Equal(t, "", ownerTenant(&types.User{ID: primitive.NewObjectID(), Role: types.RoleUser}))
}

func TestCreateUser(t *testing.T) {
	actor := adminActor()
	s, m := newTestService(t)

	m.authz.EXPECT().CheckProvision(gomock.Any(), actor, types.RoleUser).Return(nil)
	m.storage.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *types.User) (*types.User, error) {
			assert.Equal(t, "bob", u.Username)
			assert.Equal(t, "Acme", u.Company)
			u.ID = primitive.NewObjectID()
			return u, nil
		},
	)
	m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
			assert.Equal(t, "CREATE_USER", e.Action)
			assert.Equal(t, ModuleUser, e.Module)
			assert.Equal(t, actor.ID, e.CompanyID)
			require.Len(t, e.Changes, 4)
			assert.Equal(t, "refAdmin", e.Changes[3].Field)
			return audit.Result{Success: true}
		},
	)

	u, err := s.CreateUser(context.Background(), actor, &CreateUserRequest{
		Username: " bob ", Email: "bob@example.com", Password: testPassword, Company: "Acme",
		// ignored, admins always link to themselves
		RefAdmin: primitive.NewObjectID().Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, actor.ID, u.RefAdmin.Hex())
}

func TestCreateUserRoleRefused(t *testing.T) {
	actor := adminActor()
	s, m := newTestService(t)

	m.authz.EXPECT().CheckProvision(gomock.Any(), actor, types.RoleAdmin).Return(authorization.ErrInsufficientRole)

	_, err := s.CreateUser(context.Background(), actor, &CreateUserRequest{Email: "x@example.com", Password: testPassword, Role: "admin"})
	assert.ErrorIs(t, err, authorization.ErrInsufficientRole)
}

func TestUpdateUser(t *testing.T) {
	actor := adminActor()
	tenant, _ := primitive.ObjectIDFromHex(actor.ID)
	id := primitive.NewObjectID()

	stored := func() *types.User {
		return &types.User{ID: id, Username: "bob", Email: "bob@example.com", Role: types.RoleUser, RefAdmin: &tenant, IsActive: true}
	}

	t.Run("password is hidden and sessions revoked on deactivation", func(t *testing.T) {
		s, m := newTestService(t)
		inactive := false
		password := "another-secret"
		company := "Globex"

		m.storage.EXPECT().GetUserByID(gomock.Any(), id.Hex()).Return(stored(), nil)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, actor.ID, true).Return(nil)
		m.storage.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
		m.storage.EXPECT().DeleteUserTokens(gomock.Any(), id.Hex()).Return(int64(1), nil)
		m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
				require.Len(t, e.Changes, 3)
				assert.Equal(t, "password", e.Changes[0].Field)
				assert.Equal(t, hiddenValue, e.Changes[0].OldValue.String())
				assert.Equal(t, updatedValue, e.Changes[0].NewValue.String())
				assert.Equal(t, "company", e.Changes[1].Field)
				assert.Equal(t, "isActive", e.Changes[2].Field)
				return audit.Result{Success: true}
			},
		)

		u, err := s.UpdateUser(context.Background(), actor, id.Hex(), &UpdateUserRequest{
			Password: &password, Company: &company, IsActive: &inactive,
		})
		require.NoError(t, err)
		assert.True(t, verifyPassword(u.Password, password))
		assert.False(t, u.IsActive)
	})

	t.Run("admin cannot move tenants", func(t *testing.T) {
		s, m := newTestService(t)
		other := primitive.NewObjectID().Hex()

		m.storage.EXPECT().GetUserByID(gomock.Any(), id.Hex()).Return(stored(), nil)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, actor.ID, true).Return(nil)

		_, err := s.UpdateUser(context.Background(), actor, id.Hex(), &UpdateUserRequest{RefAdmin: &other})
		assert.ErrorIs(t, err, authorization.ErrInsufficientRole)
	})

	t.Run("email collision", func(t *testing.T) {
		s, m := newTestService(t)
		email := "alice@example.com"

		m.storage.EXPECT().GetUserByID(gomock.Any(), id.Hex()).Return(stored(), nil)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, actor.ID, true).Return(nil)
		m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(&types.User{}, nil)

		_, err := s.UpdateUser(context.Background(), actor, id.Hex(), &UpdateUserRequest{Email: &email})
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	})

	t.Run("no changes no audit", func(t *testing.T) {
		s, m := newTestService(t)
		same := "bob"

		m.storage.EXPECT().GetUserByID(gomock.Any(), id.Hex()).Return(stored(), nil)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, actor.ID, true).Return(nil)
		m.storage.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.UpdateUser(context.Background(), actor, id.Hex(), &UpdateUserRequest{Username: &same})
		assert.NoError(t, err)
	})
}

func TestGetUserTenancy(t *testing.T) {
	actor := adminActor()
	id := primitive.NewObjectID().Hex()

	t.Run("missing", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, "", false).Return(authorization.ErrResourceNotFound)

		_, err := s.GetUser(context.Background(), actor, id)
		assert.ErrorIs(t, err, authorization.ErrResourceNotFound)
	})

	t.Run("another tenant", func(t *testing.T) {
		s, m := newTestService(t)
		foreign := primitive.NewObjectID()
		m.storage.EXPECT().GetUserByID(gomock.Any(), id).Return(&types.User{Role: types.RoleUser, RefAdmin: &foreign}, nil)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, foreign.Hex(), true).Return(authorization.ErrResourceNotFound)

		_, err := s.GetUser(context.Background(), actor, id)
		assert.ErrorIs(t, err, authorization.ErrResourceNotFound)
	})
}

func TestUserLookupHidesOtherTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := logging.NewNoopLogger()
	authz := authorization.NewAuthorizer(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	st := NewMockStorageInterface(ctrl)
	s := NewService(st, NewMockTokenIssuerInterface(ctrl), authz, NewMockAuditInterface(ctrl), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	actor := adminActor()
	foreign := primitive.NewObjectID()
	foreignID := primitive.NewObjectID().Hex()
	missingID := primitive.NewObjectID().Hex()

	st.EXPECT().GetUserByID(gomock.Any(), foreignID).Return(&types.User{Role: types.RoleUser, RefAdmin: &foreign}, nil).Times(3)
	st.EXPECT().GetUserByID(gomock.Any(), missingID).Return(nil, storage.ErrNotFound)

	_, missingErr := s.GetUser(context.Background(), actor, missingID)
	require.ErrorIs(t, missingErr, authorization.ErrResourceNotFound)

	_, err := s.GetUser(context.Background(), actor, foreignID)
	assert.ErrorIs(t, err, authorization.ErrResourceNotFound)

	_, err = s.UpdateUser(context.Background(), actor, foreignID, &UpdateUserRequest{})
	assert.ErrorIs(t, err, authorization.ErrResourceNotFound)

	err = s.DeleteUser(context.Background(), actor, foreignID)
	assert.ErrorIs(t, err, authorization.ErrResourceNotFound)
}

func TestDeleteUser(t *testing.T) {
	actor := superAdminActor()
	id := primitive.NewObjectID()

	t.Run("superadmin is protected", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserByID(gomock.Any(), id.Hex()).Return(&types.User{ID: id, Role: types.RoleSuperAdmin}, nil)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, id.Hex(), true).Return(nil)

		assert.ErrorIs(t, s.DeleteUser(context.Background(), actor, id.Hex()), authorization.ErrInsufficientRole)
	})

	t.Run("deleted with sessions", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserByID(gomock.Any(), id.Hex()).Return(&types.User{ID: id, Role: types.RoleAdmin}, nil)
		m.authz.EXPECT().CheckTenantAccess(gomock.Any(), actor, id.Hex(), true).Return(nil)
		m.storage.EXPECT().DeleteUser(gomock.Any(), id.Hex()).Return(nil)
		m.storage.EXPECT().DeleteUserTokens(gomock.Any(), id.Hex()).Return(int64(0), nil)
		expectAction(t, m, "DELETE")

		assert.NoError(t, s.DeleteUser(context.Background(), actor, id.Hex()))
	})
}

func TestListAdmins(t *testing.T) {
	t.Run("superadmin sees every admin", func(t *testing.T) {
		actor := superAdminActor()
		s, m := newTestService(t)

		m.authz.EXPECT().CheckRole(gomock.Any(), actor, types.RoleSuperAdmin, types.RoleAdmin).Return(nil)
		m.storage.EXPECT().ListUsers(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f storage.UserFilter) ([]*types.User, int64, error) {
				assert.Equal(t, []types.Role{types.RoleAdmin}, f.Roles)
				assert.Equal(t, storage.Page{Skip: 0, Limit: maxLimit}, f.Page)
				return []*types.User{{}, {}}, 7, nil
			},
		)

		res, err := s.ListAdmins(context.Background(), actor, 500, -3)
		require.NoError(t, err)
		assert.Equal(t, int64(7), res.Total)
		assert.Len(t, res.Users, 2)
	})

	t.Run("admin sees itself", func(t *testing.T) {
		actor := adminActor()
		s, m := newTestService(t)

		m.authz.EXPECT().CheckRole(gomock.Any(), actor, types.RoleSuperAdmin, types.RoleAdmin).Return(nil)
		m.storage.EXPECT().GetUserByID(gomock.Any(), actor.ID).Return(&types.User{Role: types.RoleAdmin}, nil)

		res, err := s.ListAdmins(context.Background(), actor, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Total)
		assert.Len(t, res.Users, 1)
		assert.Equal(t, int64(defaultLimit), res.Limit)
	})
}

func TestSearchUsers(t *testing.T) {
	actor := adminActor()

	t.Run("scoped to tenant", func(t *testing.T) {
		s, m := newTestService(t)
		active := true

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(actor.ID, nil)
		m.storage.EXPECT().ListUsers(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f storage.UserFilter) ([]*types.User, int64, error) {
				assert.Equal(t, actor.ID, f.TenantID)
				assert.Equal(t, "acme", f.Search)
				assert.Equal(t, []types.Role{types.RoleUser}, f.Roles)
				assert.Equal(t, &active, f.IsActive)
				return []*types.User{}, 0, nil
			},
		)

		_, err := s.SearchUsers(context.Background(), actor, SearchFilter{Search: " acme ", Role: types.RoleUser, IsActive: &active})
		assert.NoError(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		s, m := newTestService(t)
		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(actor.ID, nil)

		_, err := s.SearchUsers(context.Background(), actor, SearchFilter{Role: "owner"})
		assert.ErrorIs(t, err, types.ErrValidation)
	})
}

func TestUpdateCurrentUser(t *testing.T) {
	actor := adminActor()
	oid, _ := primitive.ObjectIDFromHex(actor.ID)

	s, m := newTestService(t)
	website := "https://acme.example.com"
	first := "Jane"
	blank := "  "

	m.storage.EXPECT().GetUserByID(gomock.Any(), actor.ID).Return(
		&types.User{ID: oid, Username: "jane", Email: "jane@example.com", Role: types.RoleAdmin}, nil,
	)
	m.storage.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
			fields := make([]string, 0, len(e.Changes))
			for _, c := range e.Changes {
				fields = append(fields, c.Field)
			}
			assert.Equal(t, []string{"firstName", "socialLinks.website"}, fields)
			return audit.Result{Success: true}
		},
	)

	u, err := s.UpdateCurrentUser(context.Background(), actor, &UpdateProfileRequest{
		FirstName: &first, Website: &website, LastName: &blank,
	})
	require.NoError(t, err)
	require.NotNil(t, u.SocialLinks)
	assert.Equal(t, website, u.SocialLinks.Website)
	assert.Equal(t, "", u.LastName)
}

func TestDeleteCurrentUser(t *testing.T) {
	actor := adminActor()
	oid, _ := primitive.ObjectIDFromHex(actor.ID)
	s, m := newTestService(t)

	m.storage.EXPECT().GetUserByID(gomock.Any(), actor.ID).Return(&types.User{ID: oid, Role: types.RoleAdmin}, nil)
	m.storage.EXPECT().DeleteUser(gomock.Any(), actor.ID).Return(nil)
	m.storage.EXPECT().DeleteUserTokens(gomock.Any(), actor.ID).Return(int64(3), nil)
	expectAction(t, m, "DELETE")

	assert.NoError(t, s.DeleteCurrentUser(context.Background(), actor))
}
