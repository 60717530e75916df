// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

//go:generate mockgen -build_flags=--mod=mod -package meetings -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package meetings -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package meetings -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package meetings -destination ./mock_meetings.go -source=./interfaces.go

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	storage *MockStorageInterface
	authz   *MockAuthorizerInterface
	audit   *MockAuditInterface
	logger  *MockLoggerInterface
}

func newTestService(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)

	m := &mocks{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
		audit:   NewMockAuditInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	s := NewService(m.storage, m.authz, m.audit, tracer, NewMockMonitorInterface(ctrl), m.logger)
	s.now = func() time.Time { return testNow }

	return s, m
}

func admin() (*types.Actor, string) {
	id := primitive.NewObjectID().Hex()
	return &types.Actor{ID: id, Role: types.RoleAdmin, CompanyID: id}, id
}

func TestServiceCreate(t *testing.T) {
	actor, tenant := admin()
	clientID := primitive.NewObjectID()

	t.Run("status derived and defaults applied", func(t *testing.T) {
		s, m := newTestService(t)

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetClient(gomock.Any(), clientID.Hex(), tenant).Return(&types.Client{ID: clientID}, nil)
		m.storage.EXPECT().CreateMeet(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, meet *types.Meet) (*types.Meet, error) {
				assert.Equal(t, types.MeetingOngoing, meet.Status)
				assert.Equal(t, "09:00", meet.StartTime)
				assert.Equal(t, "10:00", meet.EndTime)
				assert.Equal(t, actor.CompanyObjectID(), meet.RefAdmin)
				assert.True(t, meet.IsActive)
				assert.Equal(t, &clientID, meet.ClientID)
				meet.ID = primitive.NewObjectID()
				return meet, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
				assert.Equal(t, "CREATE", e.Action)
				assert.Equal(t, ModuleMeet, e.Module)
				return audit.Result{Success: true}
			},
		)

		meet, err := s.Create(context.Background(), actor, &CreateMeetRequest{
			Title: " Kickoff ", StartDate: "2025-10-01", EndDate: "2025-10-01", Organizer: "Jane", ClientID: clientID.Hex(),
		})
		require.NoError(t, err)
		assert.Equal(t, "Kickoff", meet.Title)
	})

	t.Run("same day with a start time", func(t *testing.T) {
		s, m := newTestService(t)

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().CreateMeet(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, meet *types.Meet) (*types.Meet, error) {
				assert.Equal(t, types.MeetingOngoing, meet.Status)
				meet.ID = primitive.NewObjectID()
				return meet, nil
			},
		)
		m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).Return(audit.Result{Success: true})

		_, err := s.Create(context.Background(), actor, &CreateMeetRequest{
			Title: "Standup", StartDate: "2025-10-01T10:00:00Z", EndDate: "2025-10-01", Organizer: "Jane",
		})
		require.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		s, m := newTestService(t)
		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)

		_, err := s.Create(context.Background(), actor, &CreateMeetRequest{
			Title: "x", StartDate: "2025-10-02", EndDate: "2025-10-01", Organizer: "Jane",
		})
		assert.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("client from another tenant", func(t *testing.T) {
		s, m := newTestService(t)
		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().GetClient(gomock.Any(), clientID.Hex(), tenant).Return(nil, storage.ErrNotFound)

		_, err := s.Create(context.Background(), actor, &CreateMeetRequest{
			Title: "x", StartDate: "2025-10-02", EndDate: "2025-10-02", Organizer: "Jane", ClientID: clientID.Hex(),
		})
		assert.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("unknown attendee", func(t *testing.T) {
		s, m := newTestService(t)
		a1, a2 := primitive.NewObjectID(), primitive.NewObjectID()

		m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
		m.storage.EXPECT().ListAttendeesByIDs(gomock.Any(), []string{a1.Hex(), a2.Hex()}, tenant).Return(
			[]*types.ClientAttendee{{ID: a1}}, nil,
		)

		_, err := s.Create(context.Background(), actor, &CreateMeetRequest{
			Title: "x", StartDate: "2025-10-02", EndDate: "2025-10-02", Organizer: "Jane",
			AttendeeIDs: []string{a1.Hex(), a2.Hex(), a1.Hex()},
		})
		assert.ErrorIs(t, err, types.ErrValidation)
	})
}

func TestServiceUpdateRecomputesStatus(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()

	tests := []struct {
		name     string
		stored   types.Meet
		req      UpdateMeetRequest
		expected types.MeetingStatus
		changes  []string
	}{
		{
			name:     "end date moved uses persisted start",
			stored:   types.Meet{ID: id, Title: "Review", StartDate: day("2025-09-28"), EndDate: day("2025-09-29"), Status: types.MeetingPrevious},
			req:      UpdateMeetRequest{EndDate: strPtr("2025-10-05")},
			expected: types.MeetingOngoing,
			changes:  []string{"endDate", "status"},
		},
		{
			name:     "start date moved into the future",
			stored:   types.Meet{ID: id, Title: "Review", StartDate: day("2025-10-01"), EndDate: day("2025-10-10"), Status: types.MeetingOngoing},
			req:      UpdateMeetRequest{StartDate: strPtr("2025-10-03")},
			expected: types.MeetingIncoming,
			changes:  []string{"startDate", "status"},
		},
		{
			name:     "dates win over explicit status",
			stored:   types.Meet{ID: id, Title: "Review", StartDate: day("2025-10-01"), EndDate: day("2025-10-01"), Status: types.MeetingOngoing},
			req:      UpdateMeetRequest{EndDate: strPtr("2025-10-02"), Status: strPtr("previous")},
			expected: types.MeetingOngoing,
			changes:  []string{"endDate"},
		},
		{
			name:     "same day end keeps a timed start",
			stored:   types.Meet{ID: id, Title: "Review", StartDate: time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC), EndDate: day("2025-10-03"), Status: types.MeetingOngoing},
			req:      UpdateMeetRequest{EndDate: strPtr("2025-10-01")},
			expected: types.MeetingOngoing,
			changes:  []string{"endDate"},
		},
		{
			name:     "cancelled meeting keeps previous when dates move",
			stored:   types.Meet{ID: id, Title: "Review", StartDate: day("2025-09-28"), EndDate: day("2025-09-29"), Status: types.MeetingPrevious, Cancelled: true},
			req:      UpdateMeetRequest{EndDate: strPtr("2025-10-05")},
			expected: types.MeetingPrevious,
			changes:  []string{"endDate"},
		},
		{
			name:     "status without dates is kept",
			stored:   types.Meet{ID: id, Title: "Review", StartDate: day("2025-10-01"), EndDate: day("2025-10-01"), Status: types.MeetingOngoing},
			req:      UpdateMeetRequest{Status: strPtr("previous"), Title: strPtr("Retro")},
			expected: types.MeetingPrevious,
			changes:  []string{"title", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			stored := tt.stored

			m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
			m.storage.EXPECT().GetMeet(gomock.Any(), id.Hex(), tenant).Return(&stored, nil)
			m.storage.EXPECT().UpdateMeet(gomock.Any(), gomock.Any()).Return(nil)
			m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
					fields := make([]string, 0, len(e.Changes))
					for _, c := range e.Changes {
						fields = append(fields, c.Field)
					}
					assert.Equal(t, tt.changes, fields)
					return audit.Result{Success: true}
				},
			)

			meet, err := s.Update(context.Background(), actor, id.Hex(), &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, meet.Status)
		})
	}
}

func TestServiceUpdateRejections(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		cancelled bool
		req       UpdateMeetRequest
	}{
		{name: "invalid status", req: UpdateMeetRequest{Status: strPtr("cancelled")}},
		{name: "malformed date", req: UpdateMeetRequest{StartDate: strPtr("soon")}},
		{name: "end before persisted start", req: UpdateMeetRequest{EndDate: strPtr("2025-09-01")}},
		{name: "end day before a timed start", req: UpdateMeetRequest{StartDate: strPtr("2025-10-02T10:00:00Z"), EndDate: strPtr("2025-10-01")}},
		{name: "status on a cancelled meeting", cancelled: true, req: UpdateMeetRequest{Status: strPtr("incoming")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)

			m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
			m.storage.EXPECT().GetMeet(gomock.Any(), id.Hex(), tenant).Return(
				&types.Meet{ID: id, StartDate: day("2025-10-01"), EndDate: day("2025-10-02"), Cancelled: tt.cancelled}, nil,
			)

			_, err := s.Update(context.Background(), actor, id.Hex(), &tt.req)
			assert.ErrorIs(t, err, types.ErrValidation)
		})
	}
}

func TestServiceTransitions(t *testing.T) {
	actor, tenant := admin()
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		call      func(*Service) (*types.Meet, error)
		stored    types.Meet
		action    string
		expected  types.MeetingStatus
		cancelled bool
		wantErr   bool
	}{
		{
			name:     "start forces ongoing",
			call:     func(s *Service) (*types.Meet, error) { return s.Start(context.Background(), actor, id.Hex()) },
			stored:   types.Meet{ID: id, Status: types.MeetingIncoming},
			action:   "START",
			expected: types.MeetingOngoing,
		},
		{
			name:     "complete forces previous",
			call:     func(s *Service) (*types.Meet, error) { return s.Complete(context.Background(), actor, id.Hex()) },
			stored:   types.Meet{ID: id, Status: types.MeetingOngoing},
			action:   "COMPLETE",
			expected: types.MeetingPrevious,
		},
		{
			name:      "cancel forces previous and flags",
			call:      func(s *Service) (*types.Meet, error) { return s.Cancel(context.Background(), actor, id.Hex()) },
			stored:    types.Meet{ID: id, Status: types.MeetingIncoming},
			action:    "CANCEL",
			expected:  types.MeetingPrevious,
			cancelled: true,
		},
		{
			name:    "cancelled meeting cannot start",
			call:    func(s *Service) (*types.Meet, error) { return s.Start(context.Background(), actor, id.Hex()) },
			stored:  types.Meet{ID: id, Status: types.MeetingPrevious, Cancelled: true},
			wantErr: true,
		},
		{
			name:    "cancel twice",
			call:    func(s *Service) (*types.Meet, error) { return s.Cancel(context.Background(), actor, id.Hex()) },
			stored:  types.Meet{ID: id, Status: types.MeetingPrevious, Cancelled: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			stored := tt.stored

			m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
			m.storage.EXPECT().GetMeet(gomock.Any(), id.Hex(), tenant).Return(&stored, nil)

			if !tt.wantErr {
				m.storage.EXPECT().UpdateMeet(gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.Actor, e audit.Entry) audit.Result {
						assert.Equal(t, tt.action, e.Action)
						assert.Equal(t, "status", e.Changes[0].Field)
						return audit.Result{Success: true}
					},
				)
			}

			meet, err := tt.call(s)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, meet.Status)
			assert.Equal(t, tt.cancelled, meet.Cancelled)
			if tt.cancelled {
				require.NotNil(t, meet.CancelledAt)
				assert.Equal(t, testNow, *meet.CancelledAt)
			}
		})
	}
}

func TestServiceListPopulates(t *testing.T) {
	actor, tenant := admin()

	typeID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()
	goneClientID := primitive.NewObjectID()
	a1, a2 := primitive.NewObjectID(), primitive.NewObjectID()

	s, m := newTestService(t)

	m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
	m.storage.EXPECT().ListMeets(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f storage.MeetFilter) ([]*types.Meet, int64, error) {
			assert.Equal(t, tenant, f.TenantID)
			assert.Equal(t, types.MeetingOngoing, f.Status)
			assert.Equal(t, storage.Page{Skip: 40, Limit: 20}, f.Page)
			require.NotNil(t, f.From)

			return []*types.Meet{
				{ID: primitive.NewObjectID(), MeetingTypeID: &typeID, ClientID: &clientID, AttendeeIDs: []primitive.ObjectID{a1, a2}},
				{ID: primitive.NewObjectID(), ClientID: &goneClientID},
			}, 41, nil
		},
	)
	m.storage.EXPECT().ListMeetingTypesByIDs(gomock.Any(), []string{typeID.Hex()}, tenant).Return(
		[]*types.MeetingType{{ID: typeID, Title: "Demo"}}, nil,
	)
	m.storage.EXPECT().ListClientsByIDs(gomock.Any(), []string{clientID.Hex(), goneClientID.Hex()}, tenant).Return(
		[]*types.Client{{ID: clientID, Username: "acme", Email: "ops@acme.io"}}, nil,
	)
	m.storage.EXPECT().ListAttendeesByIDs(gomock.Any(), []string{a1.Hex(), a2.Hex()}, tenant).Return(
		[]*types.ClientAttendee{{ID: a2, Username: "bob"}}, nil,
	)

	res, err := s.List(context.Background(), actor, ListFilter{Offset: 40, Status: "ongoing", From: "2025-09-01"})
	require.NoError(t, err)

	assert.Equal(t, int64(41), res.Total)
	assert.Equal(t, int64(3), res.Page)
	require.Len(t, res.Schedules, 2)

	first := res.Schedules[0]
	assert.Equal(t, MeetingTypeRef{ID: typeID.Hex(), Title: "Demo"}, first.MeetingTypeID)
	assert.Equal(t, ClientRef{ID: clientID.Hex(), Username: "acme", Email: "ops@acme.io"}, first.ClientID)
	assert.Equal(t, first.ClientID, first.Client)
	assert.Equal(t, []interface{}{a1.Hex(), AttendeeRef{ID: a2.Hex(), Username: "bob"}}, first.AttendeeIDs)

	second := res.Schedules[1]
	assert.Equal(t, goneClientID.Hex(), second.ClientID)
	assert.Nil(t, second.Client)
	assert.Nil(t, second.MeetingTypeID)
	assert.Empty(t, second.AttendeeIDs)
}

func TestServiceListRejectsUnknownStatus(t *testing.T) {
	actor, tenant := admin()
	s, m := newTestService(t)

	m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)

	_, err := s.List(context.Background(), actor, ListFilter{Status: "done"})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestServiceGetOtherTenant(t *testing.T) {
	actor, tenant := admin()
	s, m := newTestService(t)
	id := primitive.NewObjectID().Hex()

	m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
	m.storage.EXPECT().GetMeet(gomock.Any(), id, tenant).Return(nil, storage.ErrNotFound)

	_, err := s.Get(context.Background(), actor, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestServiceDelete(t *testing.T) {
	actor, tenant := admin()
	s, m := newTestService(t)
	id := primitive.NewObjectID()

	m.authz.EXPECT().TenantScope(gomock.Any(), actor).Return(tenant, nil)
	m.storage.EXPECT().GetMeet(gomock.Any(), id.Hex(), tenant).Return(&types.Meet{ID: id, Title: "Sync"}, nil)
	m.storage.EXPECT().DeleteMeet(gomock.Any(), id.Hex(), tenant).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), actor, gomock.Any()).Return(audit.Result{Success: true})

	assert.NoError(t, s.Delete(context.Background(), actor, id.Hex()))
}

func strPtr(s string) *string {
	return &s
}
