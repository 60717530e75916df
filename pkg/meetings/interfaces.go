// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetings

import (
	"context"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

type ServiceInterface interface {
	Create(ctx context.Context, actor *types.Actor, req *CreateMeetRequest) (*types.Meet, error)
	List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error)
	Get(ctx context.Context, actor *types.Actor, id string) (*PopulatedMeet, error)
	Update(ctx context.Context, actor *types.Actor, id string, req *UpdateMeetRequest) (*types.Meet, error)
	Delete(ctx context.Context, actor *types.Actor, id string) error
	Start(ctx context.Context, actor *types.Actor, id string) (*types.Meet, error)
	Complete(ctx context.Context, actor *types.Actor, id string) (*types.Meet, error)
	Cancel(ctx context.Context, actor *types.Actor, id string) (*types.Meet, error)
}

type StorageInterface interface {
	CreateMeet(ctx context.Context, meet *types.Meet) (*types.Meet, error)
	GetMeet(ctx context.Context, id, tenantID string) (*types.Meet, error)
	ListMeets(ctx context.Context, f storage.MeetFilter) ([]*types.Meet, int64, error)
	UpdateMeet(ctx context.Context, meet *types.Meet) error
	DeleteMeet(ctx context.Context, id, tenantID string) error

	GetClient(ctx context.Context, id, tenantID string) (*types.Client, error)
	GetMeetingType(ctx context.Context, id, tenantID string) (*types.MeetingType, error)
	ListClientsByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.Client, error)
	ListAttendeesByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.ClientAttendee, error)
	ListMeetingTypesByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.MeetingType, error)
}

type AuditInterface interface {
	Record(ctx context.Context, actor *types.Actor, entry audit.Entry) audit.Result
}

type AuthorizerInterface interface {
	TenantScope(ctx context.Context, actor *types.Actor) (string, error)
}

var _ ServiceInterface = (*Service)(nil)

