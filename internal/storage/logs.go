// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/canonical/crm-service/internal/types"
)

const (
	statsTrendDays = 30
	statsTopUsers  = 10
)

func (s *Storage) CreateLog(ctx context.Context, l *types.Log) (*types.Log, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLog")
	defer span.End()

	now := s.now()
	l.CreatedAt = now
	l.UpdatedAt = now

	if l.Changes == nil {
		l.Changes = []types.Change{}
	}

	id, err := s.insert(ctx, logsCollection, l, "log")
	if err != nil {
		return nil, err
	}

	l.ID = id
	return l, nil
}

func logScope(filter bson.M, companyID string) bson.M {
	if companyID != "" {
		filter["companyId"] = companyID
	}
	return filter
}

// GetLog fetches a log entry, scoped to companyID unless it is empty.
func (s *Storage) GetLog(ctx context.Context, id, companyID string) (*types.Log, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLog")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var l types.Log
	if err := s.findOne(ctx, logsCollection, logScope(bson.M{"_id": oid}, companyID), &l, "log"); err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *Storage) ListLogs(ctx context.Context, f LogFilter) ([]*types.Log, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLogs")
	defer span.End()

	logs, total, err := findPage[types.Log](ctx, s.collection(logsCollection), f.bson(), f.sort(), f.Page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list logs: %w", err)
	}

	return logs, total, nil
}

func (s *Storage) UpdateLog(ctx context.Context, l *types.Log) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLog")
	defer span.End()

	l.UpdatedAt = s.now()

	return s.replace(ctx, logsCollection, l.ID, l, "log")
}

func (s *Storage) DeleteLog(ctx context.Context, id, companyID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLog")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	return s.deleteOne(ctx, logsCollection, logScope(bson.M{"_id": oid}, companyID), "log")
}

// LogStatistics aggregates the entries matched by the filter. Today's count
// and the daily trend are further restricted to the UTC day of now and the
// trailing thirty days respectively.
func (s *Storage) LogStatistics(ctx context.Context, f LogFilter, now time.Time) (*types.LogStatistics, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LogStatistics")
	defer span.End()

	c := s.collection(logsCollection)
	match := f.bson()
	now = now.UTC()

	stats := new(types.LogStatistics)

	total, err := c.CountDocuments(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("failed to count logs: %w", err)
	}
	stats.TotalLogs = total

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := c.CountDocuments(ctx, bson.M{"$and": bson.A{
		match,
		bson.M{"createdAt": bson.M{"$gte": dayStart, "$lt": dayStart.Add(24 * time.Hour)}},
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to count today's logs: %w", err)
	}
	stats.TodayLogs = today

	groups := []struct {
		field string
		out   *[]types.CountBucket
	}{
		{"$action", &stats.Actions},
		{"$module", &stats.Modules},
		{"$userRole", &stats.UserRoles},
	}

	for _, g := range groups {
		buckets, err := aggregateBuckets(ctx, c, mongo.Pipeline{
			{{Key: "$match", Value: match}},
			{{Key: "$group", Value: bson.M{"_id": g.field, "count": bson.M{"$sum": 1}}}},
			{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		})
		if err != nil {
			return nil, err
		}
		*g.out = buckets
	}

	daily, err := aggregateBuckets(ctx, c, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": now.Add(-statsTrendDays * 24 * time.Hour)}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, err
	}
	stats.Daily = daily

	top, err := aggregateBuckets(ctx, c, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$userId", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: statsTopUsers}},
	})
	if err != nil {
		return nil, err
	}
	stats.TopUsers = top

	return stats, nil
}

func aggregateBuckets(ctx context.Context, c *mongo.Collection, pipeline mongo.Pipeline) ([]types.CountBucket, error) {
	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate logs: %w", err)
	}

	buckets := make([]types.CountBucket, 0)
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode log aggregate: %w", err)
	}

	return buckets, nil
}
