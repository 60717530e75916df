// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetingtypes

import (
	"context"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

type ServiceInterface interface {
	Create(ctx context.Context, actor *types.Actor, req *CreateMeetingTypeRequest) (*types.MeetingType, error)
	List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error)
	Get(ctx context.Context, actor *types.Actor, id string) (*types.MeetingType, error)
	Update(ctx context.Context, actor *types.Actor, id string, req *UpdateMeetingTypeRequest) (*types.MeetingType, error)
	Delete(ctx context.Context, actor *types.Actor, id string) error
}

type StorageInterface interface {
	CreateMeetingType(ctx context.Context, mt *types.MeetingType) (*types.MeetingType, error)
	GetMeetingType(ctx context.Context, id, tenantID string) (*types.MeetingType, error)
	GetMeetingTypeByTitle(ctx context.Context, title, tenantID string) (*types.MeetingType, error)
	ListMeetingTypes(ctx context.Context, f storage.MeetingTypeFilter) ([]*types.MeetingType, int64, error)
	UpdateMeetingType(ctx context.Context, mt *types.MeetingType) error
	DeleteMeetingType(ctx context.Context, id, tenantID string) error
}

type AuthorizerInterface interface {
	TenantScope(ctx context.Context, actor *types.Actor) (string, error)
}

type AuditInterface interface {
	Record(ctx context.Context, actor *types.Actor, entry audit.Entry) audit.Result
}

var _ ServiceInterface = (*Service)(nil)
