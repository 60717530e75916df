// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
)

func subject(id string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{Subject: id}
}

func newTestManager() *JWTManager {
	logger := logging.NewNoopLogger()

	return NewJWTManager(
		Config{AccessSecret: "access-secret", RefreshSecret: "refresh-secret", AccessTTL: time.Hour, RefreshTTL: 7 * 24 * time.Hour},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestJWTManagerAccessToken(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	token, expiresAt, err := m.GenerateAccessToken(ctx, "user-1", types.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected expiry in the future, got %v", expiresAt)
	}

	claims, err := m.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.Subject != "user-1" || claims.Role != types.RoleAdmin || claims.ID == "" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestJWTManagerRejectsWrongKind(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	refresh, _, err := m.GenerateRefreshToken(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.VerifyToken(ctx, refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("refresh token must not verify as access token, got %v", err)
	}

	if _, err := m.VerifyRefreshToken(ctx, refresh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTManagerExpired(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.GenerateAccessToken(ctx, "user-1", types.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.now = time.Now
	if _, err := m.VerifyToken(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to fail, got %v", err)
	}
}

func TestJWTManagerRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()

	other := newTestManager()
	other.accessSecret = []byte("someone-else")

	token, _, err := other.GenerateAccessToken(ctx, "user-1", types.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := newTestManager().VerifyToken(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected signature failure, got %v", err)
	}
}

func TestJWTManagerEmptyInputs(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, _, err := m.GenerateAccessToken(ctx, " ", types.RoleUser); err == nil {
		t.Fatal("expected error for empty subject")
	}

	if _, err := m.VerifyToken(ctx, ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestContextActor(t *testing.T) {
	if _, ok := GetActor(context.Background()); ok {
		t.Fatal("expected no actor")
	}

	actor := &types.Actor{ID: "a1", Role: types.RoleAdmin}
	got, ok := GetActor(WithActor(context.Background(), actor))
	if !ok || got != actor {
		t.Fatal("expected actor round trip")
	}

	if _, ok := GetActor(WithActor(context.Background(), nil)); ok {
		t.Fatal("nil actor must read as anonymous")
	}
}
