// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type DBClientInterface interface {
	Collection(string) *mongo.Collection
	Ping(context.Context) error
	Close()
}
