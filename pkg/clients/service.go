// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

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
	ModuleClient = "CLIENT"

	defaultLimit = 10
)

var ErrEmailTaken = fmt.Errorf("a client with this email already exists: %w", storage.ErrDuplicateKey)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	audit   AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// checkEmailFree fails when email belongs to a client other than self
func (s *Service) checkEmailFree(ctx context.Context, email string, self *types.Client) error {
	existing, err := s.storage.GetClientByEmail(ctx, email)
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

func (s *Service) Create(ctx context.Context, actor *types.Actor, req *CreateClientRequest) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.Create")
	defer span.End()

	if _, err := s.authz.TenantScope(ctx, actor); err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, req.Email, nil); err != nil {
		return nil, err
	}

	c, err := s.storage.CreateClient(ctx, &types.Client{
		Username:    strings.TrimSpace(req.Username),
		Email:       req.Email,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Company:     strings.TrimSpace(req.Company),
		Address:     strings.TrimSpace(req.Address),
		RefAdmin:    actor.CompanyObjectID(),
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "CREATE",
		Module:      ModuleClient,
		Description: fmt.Sprintf("Created client: %s (%s)", c.Username, c.Email),
		DocumentID:  c.ID.Hex(),
		Changes: audit.NewDiff().
			Created("username", c.Username).
			Created("email", c.Email).
			Created("phoneNumber", c.PhoneNumber).
			Created("company", c.Company).
			Created("address", c.Address).
			Changes(),
	})

	return c, nil
}

func (s *Service) List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.List")
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

	clients, total, err := s.storage.ListClients(ctx, storage.ClientFilter{
		TenantID: tenantID,
		IsActive: f.IsActive,
		Search:   strings.TrimSpace(f.Search),
		Page:     storage.Page{Skip: db.Offset(f.Page, f.Limit), Limit: f.Limit},
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{Clients: clients, Pagination: types.NewPagination(f.Page, f.Limit, total)}, nil
}

func (s *Service) Get(ctx context.Context, actor *types.Actor, id string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.Get")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	return s.storage.GetClient(ctx, id, tenantID)
}

func (s *Service) Update(ctx context.Context, actor *types.Actor, id string, req *UpdateClientRequest) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.Update")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	c, err := s.storage.GetClient(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	previous := *c

	if req.Email != nil {
		if err := s.checkEmailFree(ctx, *req.Email, c); err != nil {
			return nil, err
		}
		c.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if req.Username != nil {
		c.Username = strings.TrimSpace(*req.Username)
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Company != nil {
		c.Company = strings.TrimSpace(*req.Company)
	}
	if req.Address != nil {
		c.Address = strings.TrimSpace(*req.Address)
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.storage.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	diff := audit.NewDiff().
		Compare("username", previous.Username, c.Username).
		Compare("email", previous.Email, c.Email).
		Compare("phoneNumber", previous.PhoneNumber, c.PhoneNumber).
		Compare("company", previous.Company, c.Company).
		Compare("address", previous.Address, c.Address).
		Compare("isActive", previous.IsActive, c.IsActive)

	if !diff.Empty() {
		s.audit.Record(ctx, actor, audit.Entry{
			Action:      "UPDATE",
			Module:      ModuleClient,
			Description: fmt.Sprintf("Updated client: %s (%s)", c.Username, c.Email),
			DocumentID:  c.ID.Hex(),
			Changes:     diff.Changes(),
		})
	}

	return c, nil
}

// Delete removes a client, refusing while meets still reference it.
func (s *Service) Delete(ctx context.Context, actor *types.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "clients.Service.Delete")
	defer span.End()

	tenantID, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return err
	}

	c, err := s.storage.GetClient(ctx, id, tenantID)
	if err != nil {
		return err
	}

	n, err := s.storage.CountMeetsByClient(ctx, c.ID.Hex())
	if err != nil {
		return err
	}

	if n > 0 {
		return types.NewValidationError("Cannot delete client. It has %d meets associated with it.", n)
	}

	if err := s.storage.DeleteClient(ctx, c.ID.Hex(), tenantID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, audit.Entry{
		Action:      "DELETE",
		Module:      ModuleClient,
		Description: fmt.Sprintf("Deleted client: %s (%s)", c.Username, c.Email),
		DocumentID:  c.ID.Hex(),
		Changes: audit.NewDiff().
			Removed("username", c.Username).
			Removed("email", c.Email).
			Removed("phoneNumber", c.PhoneNumber).
			Removed("company", c.Company).
			Removed("address", c.Address).
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
