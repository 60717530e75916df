// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetingtypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

const (
	ModuleMeetingType = "MEETING_TYPE"

	defaultLimit = 20
)

var ErrTitleTaken = fmt.Errorf("a meeting type with this title already exists: %w", storage.ErrDuplicateKey)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	audit   AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// checkTitleFree looks the title up in the tenant that will own the record,
// titles are compared case insensitively.
func (s *Service) checkTitleFree(ctx context.Context, title, tenantID string, self *types.MeetingType) error {
	existing, err := s.storage.GetMeetingTypeByTitle(ctx, title, tenantID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil
	case err != nil:
		return err
	case self != nil && existing.ID == self.ID:
		return nil
	}
	return ErrTitleTaken
}

func (s *Service) Create(ctx context.Context, actor *types.Actor, req *CreateMeetingTypeRequest) (*types.MeetingType, error) {
	ctx, span := s.tracer.Start(ctx, "meetingtypes.Service.Create")
	defer span.End()

	if _, err := s.authz.TenantScope(ctx, actor); err != nil {
		return nil, err
	}

	refAdmin := actor.CompanyObjectID()

	if err := s.checkTitleFree(ctx, req.Title, refAdmin.Hex(), nil); err != nil {
		return nil, err
	}

	mt, err := s.storage.CreateMeetingType(ctx, &types.MeetingType{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		RefAdmin:    refAdmin,
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "CREATE",
		Module:      ModuleMeetingType,
		Description: fmt.Sprintf("Created meeting type: %s", mt.Title),
		DocumentID:  mt.ID.Hex(),
		Changes: audit.NewDiff().
			Created("title", mt.Title).
			Created("description", mt.Description).
			Changes(),
	})

	return mt, nil
}

func (s *Service) List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error) {
	ctx, span := s.tracer.Start(ctx, "meetingtypes.Service.List")
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

	mts, total, err := s.storage.ListMeetingTypes(ctx, storage.MeetingTypeFilter{
		TenantID: tenantID,
		IsActive: f.IsActive,
		Search:   strings.TrimSpace(f.Search),
		Page:     storage.Page{Skip: f.Offset, Limit: f.Limit},
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{MeetingTypes: mts, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}

func (s *Service) Get(ctx context.Context, actor *types.Actor, id string) (*types.MeetingType, error) {
	ctx, span := s.tracer.Start(ctx, "meetingtypes.Service.Get")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	return s.storage.GetMeetingType(ctx, id, tenantID)
}

func (s *Service) Update(ctx context.Context, actor *types.Actor, id string, req *UpdateMeetingTypeRequest) (*types.MeetingType, error) {
	ctx, span := s.tracer.Start(ctx, "meetingtypes.Service.Update")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	mt, err := s.storage.GetMeetingType(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	previous := *mt

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if !strings.EqualFold(title, mt.Title) {
			if err := s.checkTitleFree(ctx, title, mt.RefAdmin.Hex(), mt); err != nil {
				return nil, err
			}
		}
		mt.Title = title
	}
	if req.Description != nil {
		mt.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsActive != nil {
		mt.IsActive = *req.IsActive
	}

	if err := s.storage.UpdateMeetingType(ctx, mt); err != nil {
		return nil, err
	}

	diff := audit.NewDiff().
		Compare("title", previous.Title, mt.Title).
		Compare("description", previous.Description, mt.Description).
		Compare("isActive", previous.IsActive, mt.IsActive)

	if !diff.Empty() {
		s.audit.Record(ctx, actor, audit.Entry{
			Action:      "UPDATE",
			Module:      ModuleMeetingType,
			Description: fmt.Sprintf("Updated meeting type: %s", mt.Title),
			DocumentID:  mt.ID.Hex(),
			Changes:     diff.Changes(),
		})
	}

	return mt, nil
}

func (s *Service) Delete(ctx context.Context, actor *types.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "meetingtypes.Service.Delete")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return err
	}

	mt, err := s.storage.GetMeetingType(ctx, id, tenantID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteMeetingType(ctx, mt.ID.Hex(), tenantID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "DELETE",
		Module:      ModuleMeetingType,
		Description: fmt.Sprintf("Deleted meeting type: %s", mt.Title),
		DocumentID:  mt.ID.Hex(),
		Changes: audit.NewDiff().
			Removed("title", mt.Title).
			Removed("description", mt.Description).
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
