// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

const (
	ModuleMeet = "MEET"

	defaultLimit     = 20
	defaultStartTime = "09:00"
	defaultEndTime   = "10:00"
)

var (
	ErrMeetCancelled  = errors.New("meeting is cancelled")
	ErrEndBeforeStart = errors.New("endDate must not be before startDate")
)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	audit   AuditInterface
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func parseDate(field, v string) (time.Time, error) {
	t, err := types.ParseDate(strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, types.NewValidationError("%s must be a date", field)
	}
	return t, nil
}

func optionalObjectID(hex string) *primitive.ObjectID {
	if hex == "" {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil
	}
	return &oid
}

// objectIDs converts and de-duplicates ids, keeping their first occurrence order
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]bool, len(ids))

	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil || seen[oid] {
			continue
		}
		seen[oid] = true
		out = append(out, oid)
	}
	return out
}

func hexes(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

// checkReferences makes sure every document m points to exists in the tenant.
func (s *Service) checkReferences(ctx context.Context, tenantID string, m *types.Meet) error {
	if m.MeetingTypeID != nil {
		if _, err := s.storage.GetMeetingType(ctx, m.MeetingTypeID.Hex(), tenantID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.NewValidationError("meetingTypeId does not reference an existing meeting type")
			}
			return err
		}
	}

	if m.ClientID != nil {
		if _, err := s.storage.GetClient(ctx, m.ClientID.Hex(), tenantID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.NewValidationError("clientId does not reference an existing client")
			}
			return err
		}
	}

	if len(m.AttendeeIDs) > 0 {
		attendees, err := s.storage.ListAttendeesByIDs(ctx, hexes(m.AttendeeIDs), tenantID)
		if err != nil {
			return err
		}
		if len(attendees) != len(m.AttendeeIDs) {
			return types.NewValidationError("attendeeIds reference unknown attendees")
		}
	}

	return nil
}

func (s *Service) Create(ctx context.Context, actor *types.Actor, req *CreateMeetRequest) (*types.Meet, error) {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.Create")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}

	if endOfDay(end).Before(start) {
		return nil, types.NewValidationError("%v", ErrEndBeforeStart)
	}

	m := &types.Meet{
		Title:          strings.TrimSpace(req.Title),
		MeetingTypeID:  optionalObjectID(req.MeetingTypeID),
		StartDate:      start,
		EndDate:        end,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Location:       strings.TrimSpace(req.Location),
		ClientID:       optionalObjectID(req.ClientID),
		AttendeeIDs:    objectIDs(req.AttendeeIDs),
		Agenda:         strings.TrimSpace(req.Agenda),
		MeetingPoints:  meetingPoints(req.MeetingPoints),
		ClosureReport:  strings.TrimSpace(req.ClosureReport),
		OtherAttendees: strings.TrimSpace(req.OtherAttendees),
		Organizer:      strings.TrimSpace(req.Organizer),
		Status:         DeriveStatus(start, end, s.now()),
		RefAdmin:       actor.CompanyObjectID(),
		MeetingLink:    strings.TrimSpace(req.MeetingLink),
		Notes:          strings.TrimSpace(req.Notes),
		IsActive:       true,
	}

	if m.StartTime == "" {
		m.StartTime = defaultStartTime
	}
	if m.EndTime == "" {
		m.EndTime = defaultEndTime
	}

	if err := s.checkReferences(ctx, tenantID, m); err != nil {
		return nil, err
	}

	m, err = s.storage.CreateMeet(ctx, m)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "CREATE",
		Module:      ModuleMeet,
		Description: fmt.Sprintf("Meeting created - %s", m.Title),
		DocumentID:  m.ID.Hex(),
		Changes: audit.NewDiff().
			Created("title", m.Title).
			Created("startDate", m.StartDate).
			Created("endDate", m.EndDate).
			Created("status", string(m.Status)).
			Created("organizer", m.Organizer).
			Changes(),
	})

	return m, nil
}

func (s *Service) List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error) {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.List")
	defer span.End()

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	filter := storage.MeetFilter{
		TenantID: tenantID,
		ClientID: f.ClientID,
		IsActive: f.IsActive,
		Search:   strings.TrimSpace(f.Search),
		Page:     storage.Page{Skip: f.Offset, Limit: f.Limit},
	}

	if f.Status != "" {
		if filter.Status, err = ParseStatus(f.Status); err != nil {
			return nil, err
		}
	}

	if f.From != "" {
		from, err := parseDate("startDate", f.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}

	if f.To != "" {
		to, err := parseDate("endDate", f.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}

	meets, total, err := s.storage.ListMeets(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Schedules: s.populate(ctx, tenantID, meets...),
		Total:     total,
		Page:      f.Offset/f.Limit + 1,
		Limit:     f.Limit,
	}, nil
}

func (s *Service) Get(ctx context.Context, actor *types.Actor, id string) (*PopulatedMeet, error) {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.Get")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	m, err := s.storage.GetMeet(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	return s.populate(ctx, tenantID, m)[0], nil
}

func (s *Service) Update(ctx context.Context, actor *types.Actor, id string, req *UpdateMeetRequest) (*types.Meet, error) {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.Update")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	m, err := s.storage.GetMeet(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	previous := *m

	if err := s.apply(m, req); err != nil {
		return nil, err
	}

	if req.MeetingTypeID != nil || req.ClientID != nil || req.AttendeeIDs != nil {
		if err := s.checkReferences(ctx, tenantID, m); err != nil {
			return nil, err
		}
	}

	if err := s.storage.UpdateMeet(ctx, m); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "UPDATE",
		Module:      ModuleMeet,
		Description: fmt.Sprintf("Meeting updated - %s", m.Title),
		DocumentID:  m.ID.Hex(),
		Changes:     diffMeet(&previous, m).Changes(),
	})

	return m, nil
}

// apply copies the present fields of req onto m. Status follows the dates
// whenever either of them is part of the update, except on a cancelled
// meeting, which stays previous.
func (s *Service) apply(m *types.Meet, req *UpdateMeetRequest) error {
	if m.Cancelled && req.Status != nil {
		return types.NewValidationError("%v", ErrMeetCancelled)
	}

	if req.Title != nil {
		m.Title = strings.TrimSpace(*req.Title)
	}
	if req.MeetingTypeID != nil {
		m.MeetingTypeID = optionalObjectID(*req.MeetingTypeID)
	}
	if req.StartTime != nil {
		m.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		m.EndTime = *req.EndTime
	}
	if req.Location != nil {
		m.Location = strings.TrimSpace(*req.Location)
	}
	if req.ClientID != nil {
		m.ClientID = optionalObjectID(*req.ClientID)
	}
	if req.AttendeeIDs != nil {
		m.AttendeeIDs = objectIDs(*req.AttendeeIDs)
	}
	if req.Agenda != nil {
		m.Agenda = strings.TrimSpace(*req.Agenda)
	}
	if req.MeetingPoints != nil {
		m.MeetingPoints = meetingPoints(*req.MeetingPoints)
	}
	if req.ClosureReport != nil {
		m.ClosureReport = strings.TrimSpace(*req.ClosureReport)
	}
	if req.OtherAttendees != nil {
		m.OtherAttendees = strings.TrimSpace(*req.OtherAttendees)
	}
	if req.Organizer != nil {
		m.Organizer = strings.TrimSpace(*req.Organizer)
	}
	if req.MeetingLink != nil {
		m.MeetingLink = strings.TrimSpace(*req.MeetingLink)
	}
	if req.Notes != nil {
		m.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if req.Status != nil {
		status, err := ParseStatus(*req.Status)
		if err != nil {
			return err
		}
		m.Status = status
	}

	if req.StartDate == nil && req.EndDate == nil {
		return nil
	}

	if req.StartDate != nil {
		start, err := parseDate("startDate", *req.StartDate)
		if err != nil {
			return err
		}
		m.StartDate = start
	}

	if req.EndDate != nil {
		end, err := parseDate("endDate", *req.EndDate)
		if err != nil {
			return err
		}
		m.EndDate = end
	}

	if endOfDay(m.EndDate).Before(m.StartDate) {
		return types.NewValidationError("%v", ErrEndBeforeStart)
	}

	if !m.Cancelled {
		m.Status = DeriveStatus(m.StartDate, m.EndDate, s.now())
	}
	return nil
}

func diffMeet(before, after *types.Meet) *audit.Diff {
	return audit.NewDiff().
		Compare("title", before.Title, after.Title).
		Compare("meetingTypeId", before.MeetingTypeID, after.MeetingTypeID).
		Compare("startDate", before.StartDate, after.StartDate).
		Compare("endDate", before.EndDate, after.EndDate).
		Compare("startTime", before.StartTime, after.StartTime).
		Compare("endTime", before.EndTime, after.EndTime).
		Compare("location", before.Location, after.Location).
		Compare("clientId", before.ClientID, after.ClientID).
		Compare("attendeeIds", before.AttendeeIDs, after.AttendeeIDs).
		Compare("agenda", before.Agenda, after.Agenda).
		Compare("meetingPoints", before.MeetingPoints, after.MeetingPoints).
		Compare("closureReport", before.ClosureReport, after.ClosureReport).
		Compare("otherAttendees", before.OtherAttendees, after.OtherAttendees).
		Compare("organizer", before.Organizer, after.Organizer).
		Compare("status", string(before.Status), string(after.Status)).
		Compare("cancelled", before.Cancelled, after.Cancelled).
		Compare("meetingLink", before.MeetingLink, after.MeetingLink).
		Compare("notes", before.Notes, after.Notes).
		Compare("isActive", before.IsActive, after.IsActive)
}

func (s *Service) Delete(ctx context.Context, actor *types.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.Delete")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return err
	}

	m, err := s.storage.GetMeet(ctx, id, tenantID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteMeet(ctx, id, tenantID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "DELETE",
		Module:      ModuleMeet,
		Description: fmt.Sprintf("Meeting deleted - %s", m.Title),
		DocumentID:  m.ID.Hex(),
		Changes: audit.NewDiff().
			Removed("title", m.Title).
			Removed("status", string(m.Status)).
			Changes(),
	})

	return nil
}

func (s *Service) Start(ctx context.Context, actor *types.Actor, id string) (*types.Meet, error) {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.Start")
	defer span.End()

	return s.transition(ctx, actor, id, "START", func(m *types.Meet) error {
		if m.Cancelled {
			return types.NewValidationError("%v", ErrMeetCancelled)
		}
		m.Status = types.MeetingOngoing
		return nil
	})
}

func (s *Service) Complete(ctx context.Context, actor *types.Actor, id string) (*types.Meet, error) {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.Complete")
	defer span.End()

	return s.transition(ctx, actor, id, "COMPLETE", func(m *types.Meet) error {
		if m.Cancelled {
			return types.NewValidationError("%v", ErrMeetCancelled)
		}
		m.Status = types.MeetingPrevious
		return nil
	})
}

// Cancel closes the meeting as previous and flags it, so a cancelled meeting
// can be told apart from one that took place.
func (s *Service) Cancel(ctx context.Context, actor *types.Actor, id string) (*types.Meet, error) {
	ctx, span := s.tracer.Start(ctx, "meetings.Service.Cancel")
	defer span.End()

	return s.transition(ctx, actor, id, "CANCEL", func(m *types.Meet) error {
		if m.Cancelled {
			return types.NewValidationError("meeting is already cancelled")
		}
		now := s.now().UTC()
		m.Status = types.MeetingPrevious
		m.Cancelled = true
		m.CancelledAt = &now
		return nil
	})
}

func (s *Service) transition(ctx context.Context, actor *types.Actor, id, action string, mutate func(*types.Meet) error) (*types.Meet, error) {
	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	m, err := s.storage.GetMeet(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	previous := *m

	if err := mutate(m); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateMeet(ctx, m); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      action,
		Module:      ModuleMeet,
		Description: fmt.Sprintf("Meeting %s - %s", strings.ToLower(action), m.Title),
		DocumentID:  m.ID.Hex(),
		Changes:     diffMeet(&previous, m).Changes(),
	})

	return m, nil
}

// populate resolves the references of meets in three batched lookups, a
// failed lookup leaves the raw ids in place.
func (s *Service) populate(ctx context.Context, tenantID string, meets ...*types.Meet) []*PopulatedMeet {
	var typeIDs, clientIDs, attendeeIDs []string

	for _, m := range meets {
		if m.MeetingTypeID != nil {
			typeIDs = append(typeIDs, m.MeetingTypeID.Hex())
		}
		if m.ClientID != nil {
			clientIDs = append(clientIDs, m.ClientID.Hex())
		}
		attendeeIDs = append(attendeeIDs, hexes(m.AttendeeIDs)...)
	}

	meetingTypes := make(map[string]MeetingTypeRef)
	if len(typeIDs) > 0 {
		found, err := s.storage.ListMeetingTypesByIDs(ctx, typeIDs, tenantID)
		if err != nil {
			s.logger.Warnf("failed to populate meeting types: %v", err)
		}
		for _, mt := range found {
			meetingTypes[mt.ID.Hex()] = MeetingTypeRef{ID: mt.ID.Hex(), Title: mt.Title, Description: mt.Description}
		}
	}

	clients := make(map[string]ClientRef)
	if len(clientIDs) > 0 {
		found, err := s.storage.ListClientsByIDs(ctx, clientIDs, tenantID)
		if err != nil {
			s.logger.Warnf("failed to populate clients: %v", err)
		}
		for _, c := range found {
			clients[c.ID.Hex()] = ClientRef{ID: c.ID.Hex(), Username: c.Username, Email: c.Email}
		}
	}

	attendees := make(map[string]AttendeeRef)
	if len(attendeeIDs) > 0 {
		found, err := s.storage.ListAttendeesByIDs(ctx, attendeeIDs, tenantID)
		if err != nil {
			s.logger.Warnf("failed to populate attendees: %v", err)
		}
		for _, a := range found {
			attendees[a.ID.Hex()] = AttendeeRef{
				ID:          a.ID.Hex(),
				Username:    a.Username,
				Email:       a.Email,
				PhoneNumber: a.PhoneNumber,
				Designation: a.Designation,
				Department:  a.Department,
			}
		}
	}

	out := make([]*PopulatedMeet, 0, len(meets))
	for _, m := range meets {
		p := &PopulatedMeet{Meet: m, AttendeeIDs: make([]interface{}, 0, len(m.AttendeeIDs))}

		if m.MeetingTypeID != nil {
			id := m.MeetingTypeID.Hex()
			if mt, ok := meetingTypes[id]; ok {
				p.MeetingTypeID = mt
			} else {
				p.MeetingTypeID = id
			}
		}

		if m.ClientID != nil {
			id := m.ClientID.Hex()
			if c, ok := clients[id]; ok {
				p.ClientID = c
				p.Client = c
			} else {
				p.ClientID = id
			}
		}

		for _, oid := range m.AttendeeIDs {
			id := oid.Hex()
			if a, ok := attendees[id]; ok {
				p.AttendeeIDs = append(p.AttendeeIDs, a)
			} else {
				p.AttendeeIDs = append(p.AttendeeIDs, id)
			}
		}

		out = append(out, p)
	}

	return out
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	audit AuditInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		audit:   audit,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
