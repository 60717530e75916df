// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/canonical/crm-service/internal/types"
)

func (s *Storage) CreateToken(ctx context.Context, t *types.Token) (*types.Token, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateToken")
	defer span.End()

	t.CreatedAt = s.now()

	id, err := s.insert(ctx, tokensCollection, t, "token")
	if err != nil {
		return nil, err
	}

	t.ID = id
	return t, nil
}

func (s *Storage) GetToken(ctx context.Context, token string) (*types.Token, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetToken")
	defer span.End()

	var t types.Token
	if err := s.findOne(ctx, tokensCollection, bson.M{"token": token}, &t, "token"); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Storage) DeleteToken(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteToken")
	defer span.End()

	return s.deleteOne(ctx, tokensCollection, bson.M{"token": token}, "token")
}

// DeleteUserTokens revokes every refresh token issued to a user.
func (s *Storage) DeleteUserTokens(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUserTokens")
	defer span.End()

	oid, err := objectID(userID)
	if err != nil {
		return 0, err
	}

	res, err := s.collection(tokensCollection).DeleteMany(ctx, bson.M{"userId": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete tokens: %w", err)
	}

	return res.DeletedCount, nil
}
