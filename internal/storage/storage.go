// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/canonical/crm-service/internal/db"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
)

const (
	usersCollection        = "users"
	clientsCollection      = "clients"
	attendeesCollection    = "clientattendees"
	meetingTypesCollection = "meetingtypes"
	meetsCollection        = "meets"
	logsCollection         = "logs"
	tokensCollection       = "tokens"
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface

	now func() time.Time
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	s.now = func() time.Time { return time.Now().UTC() }

	return s
}

func (s *Storage) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// objectID parses a hex id, malformed ids are reported as not found so they
// are indistinguishable from missing records
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, ErrNotFound)
	}
	return oid, nil
}

func objectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}

// findOne decodes the single document matching the filter into out
func (s *Storage) findOne(ctx context.Context, coll string, filter bson.M, out interface{}, what string) error {
	if err := s.collection(coll).FindOne(ctx, filter).Decode(out); err != nil {
		return wrapNotFound(err, "get "+what)
	}
	return nil
}

// findPage runs a sorted, paginated query and the matching count
func findPage[T any](ctx context.Context, c *mongo.Collection, filter bson.M, sort bson.D, page Page) ([]*T, int64, error) {
	total, err := c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := page.apply(options.Find().SetSort(sort))

	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	results := make([]*T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func findAll[T any](ctx context.Context, c *mongo.Collection, filter bson.M) ([]*T, error) {
	cursor, err := c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]*T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// replace overwrites the document identified by id, reporting missing documents as ErrNotFound
func (s *Storage) replace(ctx context.Context, coll string, id primitive.ObjectID, doc interface{}, what string) error {
	res, err := s.collection(coll).ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return WrapDuplicateKeyError(err, what)
		}
		return fmt.Errorf("failed to update %s: %w", what, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("update %s: %w", what, ErrNotFound)
	}

	return nil
}

func (s *Storage) deleteOne(ctx context.Context, coll string, filter bson.M, what string) error {
	res, err := s.collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("delete %s: %w", what, ErrNotFound)
	}

	return nil
}

func (s *Storage) insert(ctx context.Context, coll string, doc interface{}, what string) (primitive.ObjectID, error) {
	res, err := s.collection(coll).InsertOne(ctx, doc)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return primitive.NilObjectID, WrapDuplicateKeyError(err, what)
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert %s: %w", what, err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}
