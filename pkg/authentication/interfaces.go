// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/crm-service/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw access token and returns its claims
	VerifyToken(ctx context.Context, rawToken string) (*Claims, error)
}

// UserStoreInterface resolves the subject of a verified token to a stored user
type UserStoreInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}
