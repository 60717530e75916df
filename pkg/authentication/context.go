// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/crm-service/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var actorContextKey = contextKey{}

// WithActor returns a new context carrying the authenticated actor.
func WithActor(ctx context.Context, actor *types.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// GetActor retrieves the actor from the context.
// Returns nil and false for anonymous requests.
func GetActor(ctx context.Context) (*types.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(*types.Actor)
	return actor, ok && actor != nil
}
