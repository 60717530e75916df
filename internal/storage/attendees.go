// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/canonical/crm-service/internal/types"
)

func (s *Storage) CreateAttendee(ctx context.Context, a *types.ClientAttendee) (*types.ClientAttendee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAttendee")
	defer span.End()

	now := s.now()
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.CreatedAt = now
	a.UpdatedAt = now

	id, err := s.insert(ctx, attendeesCollection, a, "client attendee")
	if err != nil {
		return nil, err
	}

	a.ID = id
	return a, nil
}

func (s *Storage) GetAttendee(ctx context.Context, id, tenantID string) (*types.ClientAttendee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAttendee")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var a types.ClientAttendee
	if err := s.findOne(ctx, attendeesCollection, tenantScope(bson.M{"_id": oid}, tenantID), &a, "client attendee"); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Storage) GetAttendeeByEmail(ctx context.Context, email string) (*types.ClientAttendee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAttendeeByEmail")
	defer span.End()

	var a types.ClientAttendee
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := s.findOne(ctx, attendeesCollection, filter, &a, "client attendee"); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Storage) ListAttendees(ctx context.Context, f AttendeeFilter) ([]*types.ClientAttendee, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAttendees")
	defer span.End()

	attendees, total, err := findPage[types.ClientAttendee](
		ctx,
		s.collection(attendeesCollection),
		f.bson(),
		bson.D{{Key: "createdAt", Value: -1}},
		f.Page,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list client attendees: %w", err)
	}

	return attendees, total, nil
}

func (s *Storage) ListAttendeesByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.ClientAttendee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAttendeesByIDs")
	defer span.End()

	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*types.ClientAttendee{}, nil
	}

	filter := tenantScope(bson.M{"_id": bson.M{"$in": oids}}, tenantID)

	attendees, err := findAll[types.ClientAttendee](ctx, s.collection(attendeesCollection), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list client attendees by id: %w", err)
	}

	return attendees, nil
}

func (s *Storage) UpdateAttendee(ctx context.Context, a *types.ClientAttendee) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAttendee")
	defer span.End()

	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.UpdatedAt = s.now()

	return s.replace(ctx, attendeesCollection, a.ID, a, "client attendee")
}

func (s *Storage) DeleteAttendee(ctx context.Context, id, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAttendee")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	return s.deleteOne(ctx, attendeesCollection, tenantScope(bson.M{"_id": oid}, tenantID), "client attendee")
}
