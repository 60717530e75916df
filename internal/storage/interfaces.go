// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/crm-service/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	ListUsers(ctx context.Context, f UserFilter) ([]*types.User, int64, error)
	ListUsersByIDs(ctx context.Context, ids []string) ([]*types.User, error)
	UpdateUser(ctx context.Context, u *types.User) error
	DeleteUser(ctx context.Context, id string) error

	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClient(ctx context.Context, id, tenantID string) (*types.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*types.Client, error)
	ListClients(ctx context.Context, f ClientFilter) ([]*types.Client, int64, error)
	ListClientsByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.Client, error)
	UpdateClient(ctx context.Context, c *types.Client) error
	DeleteClient(ctx context.Context, id, tenantID string) error

	CreateAttendee(ctx context.Context, a *types.ClientAttendee) (*types.ClientAttendee, error)
	GetAttendee(ctx context.Context, id, tenantID string) (*types.ClientAttendee, error)
	GetAttendeeByEmail(ctx context.Context, email string) (*types.ClientAttendee, error)
	ListAttendees(ctx context.Context, f AttendeeFilter) ([]*types.ClientAttendee, int64, error)
	ListAttendeesByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.ClientAttendee, error)
	UpdateAttendee(ctx context.Context, a *types.ClientAttendee) error
	DeleteAttendee(ctx context.Context, id, tenantID string) error

	CreateMeetingType(ctx context.Context, mt *types.MeetingType) (*types.MeetingType, error)
	GetMeetingType(ctx context.Context, id, tenantID string) (*types.MeetingType, error)
	GetMeetingTypeByTitle(ctx context.Context, title, tenantID string) (*types.MeetingType, error)
	ListMeetingTypes(ctx context.Context, f MeetingTypeFilter) ([]*types.MeetingType, int64, error)
	ListMeetingTypesByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.MeetingType, error)
	UpdateMeetingType(ctx context.Context, mt *types.MeetingType) error
	DeleteMeetingType(ctx context.Context, id, tenantID string) error

	CreateMeet(ctx context.Context, m *types.Meet) (*types.Meet, error)
	GetMeet(ctx context.Context, id, tenantID string) (*types.Meet, error)
	ListMeets(ctx context.Context, f MeetFilter) ([]*types.Meet, int64, error)
	CountMeetsByClient(ctx context.Context, clientID string) (int64, error)
	UpdateMeet(ctx context.Context, m *types.Meet) error
	DeleteMeet(ctx context.Context, id, tenantID string) error

	CreateLog(ctx context.Context, l *types.Log) (*types.Log, error)
	GetLog(ctx context.Context, id, companyID string) (*types.Log, error)
	ListLogs(ctx context.Context, f LogFilter) ([]*types.Log, int64, error)
	UpdateLog(ctx context.Context, l *types.Log) error
	DeleteLog(ctx context.Context, id, companyID string) error
	LogStatistics(ctx context.Context, f LogFilter, now time.Time) (*types.LogStatistics, error)

	CreateToken(ctx context.Context, t *types.Token) (*types.Token, error)
	GetToken(ctx context.Context, token string) (*types.Token, error)
	DeleteToken(ctx context.Context, token string) error
	DeleteUserTokens(ctx context.Context, userID string) (int64, error)

	EnsureIndexes(ctx context.Context) ([]string, error)
}

var _ StorageInterface = (*Storage)(nil)
