// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package attendees

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

//go:generate mockgen -build_flags=--mod=mod -package attendees -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package attendees -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package attendees -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package attendees -destination ./mock_attendees.go -source=./interfaces.go

type mocks struct {
	storage *MockStorageInterface
	authz   *MockAuthorizerInterface
	audit   *MockAuditInterface
}

func newTestService(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
		audit:   NewMockAuditInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	return NewService(m.storage, m.authz, m.audit, tracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)), m
}

func admin() (*types.Actor, string) {
	id := primitive.NewObjectID().Hex()
	return &types.Actor{ID: id, Role: types.RoleAdmin, CompanyID: id}, id
}

func TestServiceCreate(t *testing.T) {
	actor, tenant := admin()
	clientID := primitive.NewObjectID()

	req := func() *CreateAttendeeRequest {
		return &CreateAttendeeRequest{Username: "Jane", Email: "jane@acme.io", ClientID: clientID.Hex(), Department: " Sales "}
	}

	tests := []struct {
		name     string
		setup    func(mocks)
		expected error
	}{
		{
			name: "client in another tenant",
			setup: func(m mocks) {
				m.storage.EXPECT().GetClient(gomock.Any(), clientID.Hex(), tenant).Return(nil, storage.ErrNotFound)
			},
			expected: types.ErrValidation,
		},
		{
			name: "email taken",
			setup: func(m mocks) {
				m.storage.EXPECT().GetClient(gomock.Any(), clientID.Hex(), tenant).Return(&types.Client{ID: clientID}, nil)
				m.storage.EXPECT().GetAttendeeByEmail(gomock.Any(), "jane@acme.io").Return(&types.ClientAttendee{ID: primitive.NewObjectID()}, nil)
			},
			expected: storage.ErrDuplicateKey,
		},
		{
			name: "created",
			setup: func(m mocks) {
				m.storage.EXPECT().GetClient(gomock.Any(), clientID.Hex(), tenant).Return(&types.Client{ID: clientID, Username: "Acme"}, nil)
				m.storage.EXPECT().GetAttendeeByEmail(gomock.Any(), "jane@acme.io").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateAttendee(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.ClientAttendee) (*types.ClientAttendee, error) {
						assert.Equal(t, clientID, a.ClientID)
						assert.Equal(t, tenant, a.RefAdmin.Hex())
						assert.Equal(t, "Sales", a.Department)
						a.ID = primitive.NewObjectID()
						return a, nil
					},
				)
				m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
						assert.Equal(t, "CREATE", e.Action)
						assert.Equal(t, ModuleAttendee, e.Module)
						assert.Contains(t, e.Description, "Acme")
						return audit.Result{Success: true}
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
			tt.setup(m)

			a, err := s.Create(context.Background(), actor, req())
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.True(t, a.IsActive)
		})
	}
}

func TestServiceList(t *testing.T) {
	actor, tenant := admin()
	clientID := primitive.NewObjectID().Hex()
	s, m := newTestService(t)

	m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
	m.storage.EXPECT().ListAttendees(gomock.Any(), storage.AttendeeFilter{
		TenantID: tenant,
		ClientID: clientID,
		Search:   "sales",
		Page:     storage.Page{Skip: 0, Limit: defaultLimit},
	}).Return([]*types.ClientAttendee{{}}, int64(1), nil)

	res, err := s.List(context.Background(), actor, ListFilter{Search: " sales ", ClientID: clientID})
	require.NoError(t, err)
	assert.Len(t, res.Attendees, 1)
	assert.Equal(t, int64(1), res.Pagination.TotalPages)
}

func TestServiceUpdate(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()
	oldClient := primitive.NewObjectID()
	newClient := primitive.NewObjectID()

	stored := func() *types.ClientAttendee {
		return &types.ClientAttendee{ID: id, Username: "Jane", Email: "jane@acme.io", ClientID: oldClient, IsActive: true}
	}

	t.Run("moved to another client", func(t *testing.T) {
		s, m := newTestService(t)
		target := newClient.Hex()

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetAttendee(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		m.storage.EXPECT().GetClient(gomock.Any(), target, tenant).Return(&types.Client{ID: newClient}, nil)
		m.storage.EXPECT().UpdateAttendee(gomock.Any(), gomock.Any()).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
				require.Len(t, e.Changes, 1)
				assert.Equal(t, "clientId", e.Changes[0].Field)
				assert.Equal(t, target, e.Changes[0].NewValue.String())
				return audit.Result{Success: true}
			},
		)

		a, err := s.Update(context.Background(), actor, id.Hex(), &UpdateAttendeeRequest{ClientID: &target})
		require.NoError(t, err)
		assert.Equal(t, newClient, a.ClientID)
	})

	t.Run("unknown client", func(t *testing.T) {
		s, m := newTestService(t)
		target := newClient.Hex()

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetAttendee(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		m.storage.EXPECT().GetClient(gomock.Any(), target, tenant).Return(nil, storage.ErrNotFound)

		_, err := s.Update(context.Background(), actor, id.Hex(), &UpdateAttendeeRequest{ClientID: &target})
		assert.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("no change is not audited", func(t *testing.T) {
		s, m := newTestService(t)
		same := oldClient.Hex()
		username := "Jane"

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetAttendee(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		m.storage.EXPECT().UpdateAttendee(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.Update(context.Background(), actor, id.Hex(), &UpdateAttendeeRequest{ClientID: &same, Username: &username})
		assert.NoError(t, err)
	})
}

func TestServiceDelete(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()

	t.Run("other tenant", func(t *testing.T) {
		s, m := newTestService(t)

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetAttendee(gomock.Any(), id.Hex(), tenant).Return(nil, storage.ErrNotFound)

		assert.ErrorIs(t, s.Delete(context.Background(), actor, id.Hex()), storage.ErrNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		s, m := newTestService(t)

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetAttendee(gomock.Any(), id.Hex(), tenant).Return(&types.ClientAttendee{ID: id}, nil)
		m.storage.EXPECT().DeleteAttendee(gomock.Any(), id.Hex(), tenant).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).Return(audit.Result{Success: true})

		assert.NoError(t, s.Delete(context.Background(), actor, id.Hex()))
	})
}
