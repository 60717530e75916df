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

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	now := s.now()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.CreatedAt = now
	u.UpdatedAt = now

	id, err := s.insert(ctx, usersCollection, u, "user")
	if err != nil {
		return nil, err
	}

	u.ID = id
	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var u types.User
	if err := s.findOne(ctx, usersCollection, bson.M{"_id": oid}, &u, "user"); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	var u types.User
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := s.findOne(ctx, usersCollection, filter, &u, "user"); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByUsername")
	defer span.End()

	var u types.User
	if err := s.findOne(ctx, usersCollection, bson.M{"username": username}, &u, "user"); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) ListUsers(ctx context.Context, f UserFilter) ([]*types.User, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	users, total, err := findPage[types.User](
		ctx,
		s.collection(usersCollection),
		f.bson(),
		bson.D{{Key: "createdAt", Value: -1}},
		f.Page,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// ListUsersByIDs returns the users matching the given ids, malformed ids are skipped.
func (s *Storage) ListUsersByIDs(ctx context.Context, ids []string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByIDs")
	defer span.End()

	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*types.User{}, nil
	}

	users, err := findAll[types.User](ctx, s.collection(usersCollection), bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("failed to list users by id: %w", err)
	}

	return users, nil
}

func (s *Storage) UpdateUser(ctx context.Context, u *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.UpdatedAt = s.now()

	return s.replace(ctx, usersCollection, u.ID, u, "user")
}

func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	return s.deleteOne(ctx, usersCollection, bson.M{"_id": oid}, "user")
}
