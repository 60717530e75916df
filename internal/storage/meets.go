// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/canonical/crm-service/internal/types"
)

func (s *Storage) CreateMeet(ctx context.Context, m *types.Meet) (*types.Meet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMeet")
	defer span.End()

	now := s.now()
	m.CreatedAt = now
	m.UpdatedAt = now

	id, err := s.insert(ctx, meetsCollection, m, "meet")
	if err != nil {
		return nil, err
	}

	m.ID = id
	return m, nil
}

func (s *Storage) GetMeet(ctx context.Context, id, tenantID string) (*types.Meet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMeet")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var m types.Meet
	if err := s.findOne(ctx, meetsCollection, tenantScope(bson.M{"_id": oid}, tenantID), &m, "meet"); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Storage) ListMeets(ctx context.Context, f MeetFilter) ([]*types.Meet, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMeets")
	defer span.End()

	meets, total, err := findPage[types.Meet](
		ctx,
		s.collection(meetsCollection),
		f.bson(),
		bson.D{{Key: "startDate", Value: -1}, {Key: "createdAt", Value: -1}},
		f.Page,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meets: %w", err)
	}

	return meets, total, nil
}

// CountMeetsByClient counts the meets that reference a client.
func (s *Storage) CountMeetsByClient(ctx context.Context, clientID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMeetsByClient")
	defer span.End()

	oid, err := objectID(clientID)
	if err != nil {
		return 0, err
	}

	n, err := s.collection(meetsCollection).CountDocuments(ctx, bson.M{"clientId": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to count meets: %w", err)
	}

	return n, nil
}

func (s *Storage) UpdateMeet(ctx context.Context, m *types.Meet) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMeet")
	defer span.End()

	m.UpdatedAt = s.now()

	return s.replace(ctx, meetsCollection, m.ID, m, "meet")
}

func (s *Storage) DeleteMeet(ctx context.Context, id, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMeet")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	return s.deleteOne(ctx, meetsCollection, tenantScope(bson.M{"_id": oid}, tenantID), "meet")
}
