// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/crm-service/internal/config"
	"github.com/canonical/crm-service/internal/db"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
)

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %s", err)
	}
	return specs, nil
}

func connectDB(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*db.DBClient, error) {
	dbClient, err := db.NewDBClient(
		db.Config{
			URI:            specs.MongoURI,
			Database:       specs.MongoDatabase,
			ConnectTimeout: specs.MongoConnectTimeout,
			MaxPoolSize:    specs.MongoMaxPoolSize,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}
	return dbClient, nil
}
