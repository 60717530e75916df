// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"time"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
)

// RecorderInterface is what every mutating service writes its audit trail through
type RecorderInterface interface {
	Record(ctx context.Context, actor *types.Actor, entry Entry) Result
}

type ServiceInterface interface {
	Create(ctx context.Context, actor *types.Actor, req *CreateLogRequest) (*types.Log, error)
	List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error)
	Get(ctx context.Context, actor *types.Actor, id string) (*EnrichedLog, error)
	Update(ctx context.Context, actor *types.Actor, id string, req *UpdateLogRequest) (*types.Log, error)
	Delete(ctx context.Context, actor *types.Actor, id string) (*types.Log, error)
	Statistics(ctx context.Context, actor *types.Actor, f StatsFilter) (*Statistics, error)
}

type StorageInterface interface {
	CreateLog(ctx context.Context, l *types.Log) (*types.Log, error)
	GetLog(ctx context.Context, id, companyID string) (*types.Log, error)
	ListLogs(ctx context.Context, f storage.LogFilter) ([]*types.Log, int64, error)
	UpdateLog(ctx context.Context, l *types.Log) error
	DeleteLog(ctx context.Context, id, companyID string) error
	LogStatistics(ctx context.Context, f storage.LogFilter, now time.Time) (*types.LogStatistics, error)
	ListUsersByIDs(ctx context.Context, ids []string) ([]*types.User, error)
}

type AuthorizerInterface interface {
	CheckRole(ctx context.Context, actor *types.Actor, roles ...types.Role) error
	TenantScope(ctx context.Context, actor *types.Actor) (string, error)
}

var (
	_ RecorderInterface = (*Engine)(nil)
	_ ServiceInterface  = (*Service)(nil)
)
