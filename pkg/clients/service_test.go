// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_clients.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	s := NewService(mockStorage, mockAuthz, mockAudit, tracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
	return s, mockStorage, mockAuthz, mockAudit
}

func admin() (*types.Actor, string) {
	id := primitive.NewObjectID().Hex()
	return &types.Actor{ID: id, Role: types.RoleAdmin, CompanyID: id}, id
}

func TestServiceCreate(t *testing.T) {
	actor, tenant := admin()

	tests := []struct {
		name     string
		setup    func(*MockStorageInterface, *MockAuditInterface)
		expected error
	}{
		{
			name: "email taken",
			setup: func(st *MockStorageInterface, _ *MockAuditInterface) {
				st.EXPECT().GetClientByEmail(gomock.Any(), "ops@acme.io").Return(&types.Client{ID: primitive.NewObjectID()}, nil)
			},
			expected: storage.ErrDuplicateKey,
		},
		{
			name: "created in the actor tenant",
			setup: func(st *MockStorageInterface, a *MockAuditInterface) {
				st.EXPECT().GetClientByEmail(gomock.Any(), "ops@acme.io").Return(nil, storage.ErrNotFound)
				st.EXPECT().CreateClient(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Client) (*types.Client, error) {
						assert.Equal(t, tenant, c.RefAdmin.Hex())
						assert.Equal(t, "Acme", c.Username)
						assert.True(t, c.IsActive)
						c.ID = primitive.NewObjectID()
						return c, nil
					},
				)
				a.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
						assert.Equal(t, "CREATE", e.Action)
						assert.Equal(t, ModuleClient, e.Module)
						assert.Len(t, e.Changes, 5)
						return audit.Result{Success: true}
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st, authz, a := newTestService(t)
			authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
			tt.setup(st, a)

			_, err := s.Create(context.Background(), actor, &CreateClientRequest{
				Username: " Acme ", Email: "ops@acme.io", PhoneNumber: "555-0100",
			})
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServiceCreateUnlinkedUser(t *testing.T) {
	s, _, authz, _ := newTestService(t)
	actor := &types.Actor{ID: primitive.NewObjectID().Hex(), Role: types.RoleUser}

	authz.EXPECT().TenantScope(gomock.Any(), actor).Return("", authorization.ErrAccessDenied)

	_, err := s.Create(context.Background(), actor, &CreateClientRequest{Email: "a@b.io"})
	assert.ErrorIs(t, err, authorization.ErrAccessDenied)
}

func TestServiceList(t *testing.T) {
	actor, tenant := admin()
	s, st, authz, _ := newTestService(t)
	active := true

	authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
	st.EXPECT().ListClients(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f storage.ClientFilter) ([]*types.Client, int64, error) {
			assert.Equal(t, tenant, f.TenantID)
			assert.Equal(t, storage.Page{Skip: 10, Limit: 10}, f.Page)
			assert.Equal(t, "acme", f.Search)
			assert.Equal(t, &active, f.IsActive)
			return []*types.Client{{}, {}}, 12, nil
		},
	)

	res, err := s.List(context.Background(), actor, ListFilter{Page: 2, Search: "acme", IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, types.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 12, ItemsPerPage: 10}, res.Pagination)
}

func TestServiceUpdate(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()

	stored := func() *types.Client {
		return &types.Client{ID: id, Username: "Acme", Email: "ops@acme.io", IsActive: true}
	}

	t.Run("same email kept", func(t *testing.T) {
		s, st, authz, a := newTestService(t)
		email := "OPS@acme.io"
		company := "Acme Corp"

		authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		st.EXPECT().GetClient(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		st.EXPECT().GetClientByEmail(gomock.Any(), email).Return(stored(), nil)
		st.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)
		a.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
				require.Len(t, e.Changes, 1)
				assert.Equal(t, "company", e.Changes[0].Field)
				return audit.Result{Success: true}
			},
		)

		c, err := s.Update(context.Background(), actor, id.Hex(), &UpdateClientRequest{Email: &email, Company: &company})
		require.NoError(t, err)
		assert.Equal(t, "ops@acme.io", c.Email)
	})

	t.Run("email of another client", func(t *testing.T) {
		s, st, authz, _ := newTestService(t)
		email := "sales@globex.io"

		authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		st.EXPECT().GetClient(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		st.EXPECT().GetClientByEmail(gomock.Any(), email).Return(&types.Client{ID: primitive.NewObjectID()}, nil)

		_, err := s.Update(context.Background(), actor, id.Hex(), &UpdateClientRequest{Email: &email})
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	})

	t.Run("other tenant", func(t *testing.T) {
		s, st, authz, _ := newTestService(t)

		authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		st.EXPECT().GetClient(gomock.Any(), id.Hex(), tenant).Return(nil, storage.ErrNotFound)

		_, err := s.Update(context.Background(), actor, id.Hex(), &UpdateClientRequest{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestServiceDelete(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()

	t.Run("referenced by meets", func(t *testing.T) {
		s, st, authz, _ := newTestService(t)

		authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		st.EXPECT().GetClient(gomock.Any(), id.Hex(), tenant).Return(&types.Client{ID: id}, nil)
		st.EXPECT().CountMeetsByClient(gomock.Any(), id.Hex()).Return(int64(3), nil)

		err := s.Delete(context.Background(), actor, id.Hex())
		assert.ErrorIs(t, err, types.ErrValidation)
		assert.Contains(t, err.Error(), "It has 3 meets")
	})

	t.Run("deleted", func(t *testing.T) {
		s, st, authz, a := newTestService(t)

		authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		st.EXPECT().GetClient(gomock.Any(), id.Hex(), tenant).Return(&types.Client{ID: id, Username: "Acme"}, nil)
		st.EXPECT().CountMeetsByClient(gomock.Any(), id.Hex()).Return(int64(0), nil)
		st.EXPECT().DeleteClient(gomock.Any(), id.Hex(), tenant).Return(nil)
		a.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
				assert.Equal(t, "DELETE", e.Action)
				assert.Equal(t, types.NullValue(), e.Changes[0].NewValue)
				return audit.Result{Success: true}
			},
		)

		assert.NoError(t, s.Delete(context.Background(), actor, id.Hex()))
	})
}
