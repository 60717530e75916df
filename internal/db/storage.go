// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
)

const (
	defaultPage         int64 = 1
	defaultPageSize     int64 = 100
	defaultCloseTimeout       = time.Second * 10
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// Offset calculates the number of documents to skip for the provided page and page size.
func Offset(pageParam int64, pageSize int64) int64 {
	if pageParam <= 0 {
		return (defaultPage - 1) * pageSize
	}
	return (pageParam - 1) * pageSize
}

// PageSize calculates the page size for pagination based on the provided size parameter.
func PageSize(sizeParam int64) int64 {
	if sizeParam <= 0 {
		return defaultPageSize
	}
	return sizeParam
}

type DBClient struct {
	client   *mongo.Client
	database *mongo.Database

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Collection returns a handle on the named collection of the configured database.
func (d *DBClient) Collection(name string) *mongo.Collection {
	return d.database.Collection(name)
}

func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.client.Ping(ctx, readpref.Primary())

	available := 1.0
	if err != nil {
		available = 0.0
	}

	if merr := d.monitor.SetDependencyAvailability(map[string]string{"component": "mongodb"}, available); merr != nil {
		d.logger.Debugf("failed to record mongodb availability: %v", merr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultCloseTimeout)
	defer cancel()

	if err := d.client.Disconnect(ctx); err != nil {
		d.logger.Errorf("failed to disconnect from mongodb: %v", err)
	}
}

// poolMonitor reports connection pool health on the dependency availability gauge
func (d *DBClient) poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			var available float64

			switch e.Type {
			case event.ConnectionReady, event.PoolReady:
				available = 1.0
			case event.GetFailed, event.PoolCleared:
				available = 0.0
			default:
				return
			}

			_ = d.monitor.SetDependencyAvailability(map[string]string{"component": "mongodb"}, available)
		},
	}
}

// NewDBClient connects to MongoDB and verifies the connection with a ping.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	d := new(DBClient)
	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetPoolMonitor(d.poolMonitor())

	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	if err := opts.Validate(); err != nil {
		logger.Fatalf("mongo URI validation failed, shutting down, err: %v", err)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultCloseTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %v", err)
	}

	d.client = client
	d.database = client.Database(cfg.Database)

	if err := d.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	return d, nil
}

// NewDBClientFromDatabase wraps an already connected database handle.
func NewDBClientFromDatabase(database *mongo.Database, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.client = database.Client()
	d.database = database
	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
