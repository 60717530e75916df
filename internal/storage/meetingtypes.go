// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/canonical/crm-service/internal/types"
)

func (s *Storage) CreateMeetingType(ctx context.Context, mt *types.MeetingType) (*types.MeetingType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMeetingType")
	defer span.End()

	now := s.now()
	mt.Title = strings.TrimSpace(mt.Title)
	mt.CreatedAt = now
	mt.UpdatedAt = now

	id, err := s.insert(ctx, meetingTypesCollection, mt, "meeting type")
	if err != nil {
		return nil, err
	}

	mt.ID = id
	return mt, nil
}

func (s *Storage) GetMeetingType(ctx context.Context, id, tenantID string) (*types.MeetingType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMeetingType")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var mt types.MeetingType
	if err := s.findOne(ctx, meetingTypesCollection, tenantScope(bson.M{"_id": oid}, tenantID), &mt, "meeting type"); err != nil {
		return nil, err
	}

	return &mt, nil
}

// GetMeetingTypeByTitle matches the title case insensitively within one tenant.
func (s *Storage) GetMeetingTypeByTitle(ctx context.Context, title, tenantID string) (*types.MeetingType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMeetingTypeByTitle")
	defer span.End()

	filter := tenantScope(bson.M{
		"title": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(title)) + "$", Options: "i"},
	}, tenantID)

	var mt types.MeetingType
	if err := s.findOne(ctx, meetingTypesCollection, filter, &mt, "meeting type"); err != nil {
		return nil, err
	}

	return &mt, nil
}

func (s *Storage) ListMeetingTypes(ctx context.Context, f MeetingTypeFilter) ([]*types.MeetingType, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMeetingTypes")
	defer span.End()

	mts, total, err := findPage[types.MeetingType](
		ctx,
		s.collection(meetingTypesCollection),
		f.bson(),
		bson.D{{Key: "createdAt", Value: -1}},
		f.Page,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meeting types: %w", err)
	}

	return mts, total, nil
}

func (s *Storage) ListMeetingTypesByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.MeetingType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMeetingTypesByIDs")
	defer span.End()

	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*types.MeetingType{}, nil
	}

	filter := tenantScope(bson.M{"_id": bson.M{"$in": oids}}, tenantID)

	mts, err := findAll[types.MeetingType](ctx, s.collection(meetingTypesCollection), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting types by id: %w", err)
	}

	return mts, nil
}

func (s *Storage) UpdateMeetingType(ctx context.Context, mt *types.MeetingType) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMeetingType")
	defer span.End()

	mt.Title = strings.TrimSpace(mt.Title)
	mt.UpdatedAt = s.now()

	return s.replace(ctx, meetingTypesCollection, mt.ID, mt, "meeting type")
}

func (s *Storage) DeleteMeetingType(ctx context.Context, id, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMeetingType")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	return s.deleteOne(ctx, meetingTypesCollection, tenantScope(bson.M{"_id": oid}, tenantID), "meeting type")
}
