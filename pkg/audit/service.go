// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/db"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
)

const (
	ModuleLog = "LOG"

	defaultListLimit = 50
)

type CreateLogRequest struct {
	Action      string          `json:"action" validate:"required"`
	Module      string          `json:"module" validate:"required"`
	Description string          `json:"description" validate:"required"`
	UserRole    types.RoleField `json:"userRole"`
	UserID      string          `json:"userId"`
	DocumentID  string          `json:"documentId"`
	CompanyID   string          `json:"companyId"`
	Changes     []types.Change  `json:"changes"`
}

type UpdateLogRequest struct {
	Action      *string          `json:"action"`
	Module      *string          `json:"module"`
	Description *string          `json:"description"`
	UserRole    *types.RoleField `json:"userRole"`
}

type ListFilter struct {
	Page      int64      `json:"page"`
	Limit     int64      `json:"limit"`
	Action    string     `json:"action,omitempty"`
	Module    string     `json:"module,omitempty"`
	UserRole  string     `json:"userRole,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	Search    string     `json:"search,omitempty"`
	From      *time.Time `json:"fromDate,omitempty"`
	To        *time.Time `json:"toDate,omitempty"`
	CompanyID string     `json:"companyId,omitempty"`
	SortBy    string     `json:"sortBy,omitempty"`
	SortOrder string     `json:"sortOrder,omitempty"`
}

type StatsFilter struct {
	From      *time.Time
	To        *time.Time
	CompanyID string
}

// EnrichedLog is a log entry with its userId replaced by the resolved user when known
type EnrichedLog struct {
	*types.Log
	UserID interface{} `json:"userId"`
}

type Pagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalLogs   int64 `json:"totalLogs"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type ListResult struct {
	Logs       []*EnrichedLog `json:"logs"`
	Pagination Pagination     `json:"pagination"`
	Filters    ListFilter     `json:"filters"`
}

type DateRange struct {
	FromDate *time.Time `json:"fromDate"`
	ToDate   *time.Time `json:"toDate"`
}

type Summary struct {
	TotalLogs int64     `json:"totalLogs"`
	TodayLogs int64     `json:"todayLogs"`
	DateRange DateRange `json:"dateRange"`
}

type Distributions struct {
	Actions   []types.CountBucket `json:"actions"`
	Modules   []types.CountBucket `json:"modules"`
	UserRoles []types.CountBucket `json:"userRoles"`
}

type Trends struct {
	Daily []types.CountBucket `json:"daily"`
}

type TopUser struct {
	User  interface{} `json:"_id"`
	Count int64       `json:"count"`
}

type Statistics struct {
	Summary       Summary       `json:"summary"`
	Distributions Distributions `json:"distributions"`
	Trends        Trends        `json:"trends"`
	TopUsers      []TopUser     `json:"topUsers"`
}

type Service struct {
	storage  StorageInterface
	authz    AuthorizerInterface
	recorder RecorderInterface
	enricher *Enricher
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// companyScope resolves which company the actor may read. Superadmins see
// every company unless they ask for one; everybody else is pinned to their
// tenant root whatever they ask for.
func (s *Service) companyScope(ctx context.Context, actor *types.Actor, requested string) (string, bool, error) {
	root, err := s.authz.TenantScope(ctx, actor)
	if err != nil {
		return "", false, err
	}

	if root != "" {
		return root, false, nil
	}

	requested = strings.TrimSpace(requested)
	return requested, requested == "", nil
}

func (s *Service) enrich(ctx context.Context, logs ...*types.Log) []*EnrichedLog {
	ids := make([]string, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, l.UserID)
	}

	resolved := s.enricher.Resolve(ctx, ids)

	out := make([]*EnrichedLog, 0, len(logs))
	for _, l := range logs {
		out = append(out, &EnrichedLog{Log: l, UserID: Display(resolved, l.UserID)})
	}
	return out
}

func (s *Service) Create(ctx context.Context, actor *types.Actor, req *CreateLogRequest) (*types.Log, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.Create")
	defer span.End()

	companyID, _, err := s.companyScope(ctx, actor, req.CompanyID)
	if err != nil {
		return nil, err
	}

	if req.CompanyID != "" && req.CompanyID != companyID {
		return nil, authorization.ErrAccessDenied
	}

	if companyID == "" {
		companyID = actor.CompanyID
	}

	for i, c := range req.Changes {
		if strings.TrimSpace(c.Field) == "" || (c.OldValue == nil && c.NewValue == nil) {
			return nil, types.NewValidationError("change %d: %v", i, ErrInvalidChange)
		}
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = actor.ID
	}

	l := &types.Log{
		CompanyID:   companyID,
		Action:      strings.ToUpper(strings.TrimSpace(req.Action)),
		Module:      strings.ToUpper(strings.TrimSpace(req.Module)),
		Description: req.Description,
		UserRole:    resolveRole(actor, req.UserRole.String()),
		UserID:      userID,
		DocumentID:  req.DocumentID,
		Changes:     req.Changes,
	}

	l, err = s.storage.CreateLog(ctx, l)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, Entry{
		Action:      "CREATE",
		Module:      ModuleLog,
		Description: fmt.Sprintf("Manual log entry created - Action: %s, Module: %s", l.Action, l.Module),
		DocumentID:  l.ID.Hex(),
		Changes: NewDiff().
			Created("action", l.Action).
			Created("module", l.Module).
			Created("description", l.Description).
			Created("userRole", l.UserRole).
			Created("userId", l.UserID).
			Created("companyId", l.CompanyID).
			Changes(),
	})

	return l, nil
}

func (s *Service) List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.List")
	defer span.End()

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}

	companyID, all, err := s.companyScope(ctx, actor, f.CompanyID)
	if err != nil {
		return nil, err
	}
	f.CompanyID = companyID

	logs, total, err := s.storage.ListLogs(ctx, storage.LogFilter{
		CompanyID:    companyID,
		AllCompanies: all,
		Action:       strings.ToUpper(f.Action),
		Module:       strings.ToUpper(f.Module),
		UserRole:     f.UserRole,
		UserID:       f.UserID,
		Search:       f.Search,
		From:         f.From,
		To:           f.To,
		SortBy:       f.SortBy,
		SortAsc:      strings.EqualFold(f.SortOrder, "asc"),
		Page:         storage.Page{Skip: db.Offset(f.Page, f.Limit), Limit: f.Limit},
	})
	if err != nil {
		return nil, err
	}

	pages := (total + f.Limit - 1) / f.Limit

	return &ListResult{
		Logs: s.enrich(ctx, logs...),
		Pagination: Pagination{
			CurrentPage: f.Page,
			TotalPages:  pages,
			TotalLogs:   total,
			HasNextPage: f.Page < pages,
			HasPrevPage: f.Page > 1,
		},
		Filters: f,
	}, nil
}

func (s *Service) Get(ctx context.Context, actor *types.Actor, id string) (*EnrichedLog, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.Get")
	defer span.End()

	companyID, _, err := s.companyScope(ctx, actor, "")
	if err != nil {
		return nil, err
	}

	l, err := s.storage.GetLog(ctx, id, companyID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, l)[0], nil
}

func (s *Service) Update(ctx context.Context, actor *types.Actor, id string, req *UpdateLogRequest) (*types.Log, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.Update")
	defer span.End()

	if err := s.authz.CheckRole(ctx, actor, types.RoleSuperAdmin, types.RoleAdmin); err != nil {
		return nil, err
	}

	companyID, _, err := s.companyScope(ctx, actor, "")
	if err != nil {
		return nil, err
	}

	l, err := s.storage.GetLog(ctx, id, companyID)
	if err != nil {
		return nil, err
	}

	previous := *l
	diff := NewDiff()

	if req.Action != nil && strings.TrimSpace(*req.Action) != "" {
		l.Action = strings.ToUpper(strings.TrimSpace(*req.Action))
		diff.Compare("action", previous.Action, l.Action)
	}
	if req.Module != nil && strings.TrimSpace(*req.Module) != "" {
		l.Module = strings.ToUpper(strings.TrimSpace(*req.Module))
		diff.Compare("module", previous.Module, l.Module)
	}
	if req.Description != nil {
		l.Description = *req.Description
		diff.Compare("description", previous.Description, l.Description)
	}
	if req.UserRole != nil && req.UserRole.String() != "" {
		l.UserRole = req.UserRole.String()
		diff.Compare("userRole", previous.UserRole, l.UserRole)
	}

	if err := s.storage.UpdateLog(ctx, l); err != nil {
		return nil, err
	}

	diff.Compare("updatedAt", previous.UpdatedAt, l.UpdatedAt)

	s.recorder.Record(ctx, actor, Entry{
		Action:      "UPDATE",
		Module:      ModuleLog,
		Description: fmt.Sprintf("Log entry updated - ID: %s, Action: %s, Module: %s", id, l.Action, l.Module),
		DocumentID:  l.ID.Hex(),
		Changes:     diff.Changes(),
	})

	return l, nil
}

func (s *Service) Delete(ctx context.Context, actor *types.Actor, id string) (*types.Log, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.Delete")
	defer span.End()

	if err := s.authz.CheckRole(ctx, actor, types.RoleSuperAdmin, types.RoleAdmin); err != nil {
		return nil, err
	}

	companyID, _, err := s.companyScope(ctx, actor, "")
	if err != nil {
		return nil, err
	}

	l, err := s.storage.GetLog(ctx, id, companyID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.DeleteLog(ctx, id, companyID); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, Entry{
		Action:      "DELETE",
		Module:      ModuleLog,
		Description: fmt.Sprintf("Log entry deleted - ID: %s, Action: %s, Module: %s", id, l.Action, l.Module),
		DocumentID:  l.ID.Hex(),
		Changes: NewDiff().
			Set("log", l.Description, "DELETED").
			Created("deletedAt", s.now()).
			Changes(),
	})

	return l, nil
}

func (s *Service) Statistics(ctx context.Context, actor *types.Actor, f StatsFilter) (*Statistics, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.Statistics")
	defer span.End()

	companyID, all, err := s.companyScope(ctx, actor, f.CompanyID)
	if err != nil {
		return nil, err
	}

	raw, err := s.storage.LogStatistics(
		ctx,
		storage.LogFilter{CompanyID: companyID, AllCompanies: all, From: f.From, To: f.To},
		s.now(),
	)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(raw.TopUsers))
	for _, b := range raw.TopUsers {
		ids = append(ids, b.Key)
	}

	resolved := s.enricher.Resolve(ctx, ids)

	top := make([]TopUser, 0, len(raw.TopUsers))
	for _, b := range raw.TopUsers {
		top = append(top, TopUser{User: Display(resolved, b.Key), Count: b.Count})
	}

	return &Statistics{
		Summary: Summary{
			TotalLogs: raw.TotalLogs,
			TodayLogs: raw.TodayLogs,
			DateRange: DateRange{FromDate: f.From, ToDate: f.To},
		},
		Distributions: Distributions{
			Actions:   nonNil(raw.Actions),
			Modules:   nonNil(raw.Modules),
			UserRoles: nonNil(raw.UserRoles),
		},
		Trends:   Trends{Daily: nonNil(raw.Daily)},
		TopUsers: top,
	}, nil
}

func nonNil(b []types.CountBucket) []types.CountBucket {
	if b == nil {
		return []types.CountBucket{}
	}
	return b
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	recorder RecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		recorder: recorder,
		enricher: NewEnricher(storage, tracer, logger),
		now:      time.Now,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
