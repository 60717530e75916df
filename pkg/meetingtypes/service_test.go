// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetingtypes

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

//go:generate mockgen -build_flags=--mod=mod -package meetingtypes -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package meetingtypes -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package meetingtypes -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package meetingtypes -destination ./mock_meetingtypes.go -source=./interfaces.go

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

	tests := []struct {
		name     string
		setup    func(mocks)
		expected error
	}{
		{
			name: "title taken in the tenant",
			setup: func(m mocks) {
				m.storage.EXPECT().GetMeetingTypeByTitle(gomock.Any(), "Kickoff", tenant).Return(&types.MeetingType{ID: primitive.NewObjectID()}, nil)
			},
			expected: storage.ErrDuplicateKey,
		},
		{
			name: "created",
			setup: func(m mocks) {
				m.storage.EXPECT().GetMeetingTypeByTitle(gomock.Any(), "Kickoff", tenant).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateMeetingType(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mt *types.MeetingType) (*types.MeetingType, error) {
						assert.Equal(t, tenant, mt.RefAdmin.Hex())
						assert.Equal(t, "First call", mt.Description)
						mt.ID = primitive.NewObjectID()
						return mt, nil
					},
				)
				m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
						assert.Equal(t, "CREATE", e.Action)
						assert.Equal(t, ModuleMeetingType, e.Module)
						assert.Len(t, e.Changes, 2)
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

			_, err := s.Create(context.Background(), actor, &CreateMeetingTypeRequest{Title: "Kickoff", Description: " First call "})
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServiceList(t *testing.T) {
	actor, tenant := admin()

	tests := []struct {
		name     string
		filter   ListFilter
		expected storage.Page
	}{
		{name: "defaults", filter: ListFilter{}, expected: storage.Page{Limit: defaultLimit}},
		{name: "negative offset", filter: ListFilter{Limit: 5, Offset: -3}, expected: storage.Page{Limit: 5}},
		{name: "window", filter: ListFilter{Limit: 5, Offset: 10}, expected: storage.Page{Skip: 10, Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)

			m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
			m.storage.EXPECT().ListMeetingTypes(gomock.Any(), storage.MeetingTypeFilter{TenantID: tenant, Page: tt.expected}).Return([]*types.MeetingType{}, int64(0), nil)

			res, err := s.List(context.Background(), actor, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Limit, res.Limit)
			assert.Equal(t, tt.expected.Skip, res.Offset)
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()
	tenantOID, _ := primitive.ObjectIDFromHex(tenant)

	stored := func() *types.MeetingType {
		return &types.MeetingType{ID: id, Title: "Kickoff", RefAdmin: tenantOID, IsActive: true}
	}

	t.Run("case change skips the duplicate check", func(t *testing.T) {
		s, m := newTestService(t)
		title := "KICKOFF"

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetMeetingType(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		m.storage.EXPECT().UpdateMeetingType(gomock.Any(), gomock.Any()).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).Return(audit.Result{Success: true})

		mt, err := s.Update(context.Background(), actor, id.Hex(), &UpdateMeetingTypeRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "KICKOFF", mt.Title)
	})

	t.Run("duplicate title", func(t *testing.T) {
		s, m := newTestService(t)
		title := "Review"

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetMeetingType(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		m.storage.EXPECT().GetMeetingTypeByTitle(gomock.Any(), "Review", tenant).Return(&types.MeetingType{ID: primitive.NewObjectID()}, nil)

		_, err := s.Update(context.Background(), actor, id.Hex(), &UpdateMeetingTypeRequest{Title: &title})
		assert.ErrorIs(t, err, ErrTitleTaken)
	})

	t.Run("deactivated", func(t *testing.T) {
		s, m := newTestService(t)
		inactive := false

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetMeetingType(gomock.Any(), id.Hex(), tenant).Return(stored(), nil)
		m.storage.EXPECT().UpdateMeetingType(gomock.Any(), gomock.Any()).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
				require.Len(t, e.Changes, 1)
				assert.Equal(t, "isActive", e.Changes[0].Field)
				return audit.Result{Success: true}
			},
		)

		mt, err := s.Update(context.Background(), actor, id.Hex(), &UpdateMeetingTypeRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, mt.IsActive)
	})
}

func TestServiceDelete(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()
	s, m := newTestService(t)

	m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
	m.storage.EXPECT().GetMeetingType(gomock.Any(), id.Hex(), tenant).Return(&types.MeetingType{ID: id, Title: "Kickoff"}, nil)
	m.storage.EXPECT().DeleteMeetingType(gomock.Any(), id.Hex(), tenant).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
			assert.Equal(t, "DELETE", e.Action)
			assert.Equal(t, "Kickoff", e.Changes[0].OldValue.String())
			return audit.Result{Success: true}
		},
	)

	assert.NoError(t, s.Delete(context.Background(), actor, id.Hex()))
}
