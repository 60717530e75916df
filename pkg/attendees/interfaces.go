// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package attendees

import (
	"context"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

type ServiceInterface interface {
	Create(ctx context.Context, actor *types.Actor, req *CreateAttendeeRequest) (*types.ClientAttendee, error)
	List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error)
	Get(ctx context.Context, actor *types.Actor, id string) (*types.ClientAttendee, error)
	Update(ctx context.Context, actor *types.Actor, id string, req *UpdateAttendeeRequest) (*types.ClientAttendee, error)
	Delete(ctx context.Context, actor *types.Actor, id string) error
}

type StorageInterface interface {
	GetClient(ctx context.Context, id, tenantID string) (*types.Client, error)

	CreateAttendee(ctx context.Context, a *types.ClientAttendee) (*types.ClientAttendee, error)
	GetAttendee(ctx context.Context, id, tenantID string) (*types.ClientAttendee, error)
	GetAttendeeByEmail(ctx context.Context, email string) (*types.ClientAttendee, error)
	ListAttendees(ctx context.Context, f storage.AttendeeFilter) ([]*types.ClientAttendee, int64, error)
	UpdateAttendee(ctx context.Context, a *types.ClientAttendee) error
	DeleteAttendee(ctx context.Context, id, tenantID string) error
}

type AuthorizerInterface interface {
	TenantScope(ctx context.Context, actor *types.Actor) (string, error)
}

type AuditInterface interface {
	Record(ctx context.Context, actor *types.Actor, entry audit.Entry) audit.Result
}

var _ ServiceInterface = (*Service)(nil)
