// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package attendees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/crm-service/internal/db"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

const (
	ModuleAttendee = "CLIENT_ATTENDEE"

	defaultLimit = 10
)

var ErrEmailTaken = fmt.Errorf("a client attendee with this email already exists: %w", storage.ErrDuplicateKey)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	audit   AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) checkEmailFree(ctx context.Context, email string, self *types.ClientAttendee) error {
	existing, err := s.storage.GetAttendeeByEmail(ctx, email)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil
	case err != nil:
		return err
	case self != nil && existing.ID == self.ID:
		return nil
	}
	return ErrEmailTaken
}

// client resolves the owning client inside the tenant, a client elsewhere is
// reported as a validation failure rather than a missing route.
func (s *Service) client(ctx context.Context, id, tenantID string) (*types.Client, error) {
	c, err := s.storage.GetClient(ctx, id, tenantID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.NewValidationError("client %s not found", id)
	}
	return c, err
}

func (s *Service) Create(ctx context.Context, actor *types.Actor, req *CreateAttendeeRequest) (*types.ClientAttendee, error) {
	ctx, span := s.tracer.Start(ctx, "attendees.Service.Create")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	c, err := s.client(ctx, req.ClientID, tenantID)
	if err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, req.Email, nil); err != nil {
		return nil, err
	}

	a, err := s.storage.CreateAttendee(ctx, &types.ClientAttendee{
		Username:    strings.TrimSpace(req.Username),
		Email:       req.Email,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		ClientID:    c.ID,
		Designation: strings.TrimSpace(req.Designation),
		Department:  strings.TrimSpace(req.Department),
		RefAdmin:    actor.CompanyObjectID(),
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "CREATE",
		Module:      ModuleAttendee,
		Description: fmt.Sprintf("Created client attendee: %s (%s) for %s", a.Username, a.Email, c.Username),
		DocumentID:  a.ID.Hex(),
		Changes: audit.NewDiff().
			Created("username", a.Username).
			Created("email", a.Email).
			Created("phoneNumber", a.PhoneNumber).
			Created("clientId", a.ClientID.Hex()).
			Created("designation", a.Designation).
			Created("department", a.Department).
			Changes(),
	})

	return a, nil
}

func (s *Service) List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error) {
	ctx, span := s.tracer.Start(ctx, "attendees.Service.List")
	defer span.End()

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	attendees, total, err := s.storage.ListAttendees(ctx, storage.AttendeeFilter{
		TenantID: tenantID,
		ClientID: f.ClientID,
		IsActive: f.IsActive,
		Search:   strings.TrimSpace(f.Search),
		Page:     storage.Page{Skip: db.Offset(f.Page, f.Limit), Limit: f.Limit},
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{Attendees: attendees, Pagination: types.NewPagination(f.Page, f.Limit, total)}, nil
}

func (s *Service) Get(ctx context.Context, actor *types.Actor, id string) (*types.ClientAttendee, error) {
	ctx, span := s.tracer.Start(ctx, "attendees.Service.Get")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	return s.storage.GetAttendee(ctx, id, tenantID)
}

func (s *Service) Update(ctx context.Context, actor *types.Actor, id string, req *UpdateAttendeeRequest) (*types.ClientAttendee, error) {
	ctx, span := s.tracer.Start(ctx, "attendees.Service.Update")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	a, err := s.storage.GetAttendee(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	previous := *a

	if req.ClientID != nil && *req.ClientID != a.ClientID.Hex() {
		c, err := s.client(ctx, *req.ClientID, tenantID)
		if err != nil {
			return nil, err
		}
		a.ClientID = c.ID
	}

	if req.Email != nil {
		if err := s.checkEmailFree(ctx, *req.Email, a); err != nil {
			return nil, err
		}
		a.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if req.Username != nil {
		a.Username = strings.TrimSpace(*req.Username)
	}
	if req.PhoneNumber != nil {
		a.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Designation != nil {
		a.Designation = strings.TrimSpace(*req.Designation)
	}
	if req.Department != nil {
		a.Department = strings.TrimSpace(*req.Department)
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.storage.UpdateAttendee(ctx, a); err != nil {
		return nil, err
	}

	diff := audit.NewDiff().
		Compare("username", previous.Username, a.Username).
		Compare("email", previous.Email, a.Email).
		Compare("phoneNumber", previous.PhoneNumber, a.PhoneNumber).
		Compare("clientId", previous.ClientID.Hex(), a.ClientID.Hex()).
		Compare("designation", previous.Designation, a.Designation).
		Compare("department", previous.Department, a.Department).
		Compare("isActive", previous.IsActive, a.IsActive)

	if !diff.Empty() {
		s.audit.Record(ctx, actor, audit.Entry{
			Action:      "UPDATE",
			Module:      ModuleAttendee,
			Description: fmt.Sprintf("Updated client attendee: %s (%s)", a.Username, a.Email),
			DocumentID:  a.ID.Hex(),
			Changes:     diff.Changes(),
		})
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, actor *types.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "attendees.Service.Delete")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return err
	}

	a, err := s.storage.GetAttendee(ctx, id, tenantID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteAttendee(ctx, a.ID.Hex(), tenantID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "DELETE",
		Module:      ModuleAttendee,
		Description: fmt.Sprintf("Deleted client attendee: %s (%s)", a.Username, a.Email),
		DocumentID:  a.ID.Hex(),
		Changes: audit.NewDiff().
			Removed("username", a.Username).
			Removed("email", a.Email).
			Removed("clientId", a.ClientID.Hex()).
			Changes(),
	})

	return nil
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
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
