// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// caseInsensitive compares strings ignoring case and diacritics
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

var indexes = map[string][]mongo.IndexModel{
	usersCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "refAdmin", Value: 1}, {Key: "role", Value: 1}}},
	},
	clientsCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "refAdmin", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	attendeesCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "refAdmin", Value: 1}, {Key: "clientId", Value: 1}}},
	},
	meetingTypesCollection: {
		{
			Keys:    bson.D{{Key: "refAdmin", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(caseInsensitive),
		},
	},
	meetsCollection: {
		{Keys: bson.D{{Key: "refAdmin", Value: 1}, {Key: "startDate", Value: -1}}},
		{Keys: bson.D{{Key: "clientId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	},
	logsCollection: {
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "action", Value: 1}, {Key: "module", Value: 1}}},
	},
	tokensCollection: {
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	},
}

// EnsureIndexes creates the indexes every collection relies on, it is idempotent.
func (s *Storage) EnsureIndexes(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EnsureIndexes")
	defer span.End()

	created := make([]string, 0)

	for _, coll := range []string{
		usersCollection,
		clientsCollection,
		attendeesCollection,
		meetingTypesCollection,
		meetsCollection,
		logsCollection,
		tokensCollection,
	} {
		names, err := s.collection(coll).Indexes().CreateMany(ctx, indexes[coll])
		if err != nil {
			return created, fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}

		for _, n := range names {
			created = append(created, coll+"."+n)
		}

		s.logger.Debugf("ensured %d indexes on %s", len(names), coll)
	}

	return created, nil
}
