// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/audit"
)

type ServiceInterface interface {
	Create(ctx context.Context, actor *types.Actor, req *CreateClientRequest) (*types.Client, error)
	List(ctx context.Context, actor *types.Actor, f ListFilter) (*ListResult, error)
	Get(ctx context.Context, actor *types.Actor, id string) (*types.Client, error)
	Update(ctx context.Context, actor *types.Actor, id string, req *UpdateClientRequest) (*types.Client, error)
	Delete(ctx context.Context, actor *types.Actor, id string) error
}

type StorageInterface interface {
	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClient(ctx context.Context, id, tenantID string) (*types.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*types.Client, error)
	ListClients(ctx context.Context, f storage.ClientFilter) ([]*types.Client, int64, error)
	UpdateClient(ctx context.Context, c *types.Client) error
	DeleteClient(ctx context.Context, id, tenantID string) error
	CountMeetsByClient(ctx context.Context, clientID string) (int64, error)
}

type AuthorizerInterface interface {
	TenantScope(ctx context.Context, actor *types.Actor) (string, error)
}

type AuditInterface interface {
	Record(ctx context.Context, actor *types.Actor, entry audit.Entry) audit.Result
}

var _ ServiceInterface = (*Service)(nil)
