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

func (s *Storage) CreateClient(ctx context.Context, c *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClient")
	defer span.End()

	now := s.now()
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.CreatedAt = now
	c.UpdatedAt = now

	id, err := s.insert(ctx, clientsCollection, c, "client")
	if err != nil {
		return nil, err
	}

	c.ID = id
	return c, nil
}

// GetClient fetches a client, scoped to tenantID unless it is empty.
func (s *Storage) GetClient(ctx context.Context, id, tenantID string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClient")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var c types.Client
	if err := s.findOne(ctx, clientsCollection, tenantScope(bson.M{"_id": oid}, tenantID), &c, "client"); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Storage) GetClientByEmail(ctx context.Context, email string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClientByEmail")
	defer span.End()

	var c types.Client
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := s.findOne(ctx, clientsCollection, filter, &c, "client"); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Storage) ListClients(ctx context.Context, f ClientFilter) ([]*types.Client, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClients")
	defer span.End()

	clients, total, err := findPage[types.Client](
		ctx,
		s.collection(clientsCollection),
		f.bson(),
		bson.D{{Key: "createdAt", Value: -1}},
		f.Page,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, total, nil
}

func (s *Storage) ListClientsByIDs(ctx context.Context, ids []string, tenantID string) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClientsByIDs")
	defer span.End()

	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*types.Client{}, nil
	}

	filter := tenantScope(bson.M{"_id": bson.M{"$in": oids}}, tenantID)

	clients, err := findAll[types.Client](ctx, s.collection(clientsCollection), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients by id: %w", err)
	}

	return clients, nil
}

func (s *Storage) UpdateClient(ctx context.Context, c *types.Client) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateClient")
	defer span.End()

	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.UpdatedAt = s.now()

	return s.replace(ctx, clientsCollection, c.ID, c, "client")
}

func (s *Storage) DeleteClient(ctx context.Context, id, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClient")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	return s.deleteOne(ctx, clientsCollection, tenantScope(bson.M{"_id": oid}, tenantID), "client")
}
