// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
)

const issuer = "crm-service"

// ErrInvalidToken indicates the token failed validation.
var ErrInvalidToken = errors.New("invalid token")

type tokenKind string

const (
	accessToken  tokenKind = "access"
	refreshToken tokenKind = "refresh"
)

// Claims carried by both token kinds, Kind keeps one from being replayed as the other.
type Claims struct {
	Role types.Role `json:"role,omitempty"`
	Kind tokenKind  `json:"kind"`
	jwt.RegisteredClaims
}

type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// JWTManager signs and verifies HS256 access and refresh tokens.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *JWTManager) sign(kind tokenKind, userID string, role types.Role) (string, time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", time.Time{}, errors.New("userID is required")
	}

	secret, ttl := m.accessSecret, m.accessTTL
	if kind == refreshToken {
		secret, ttl = m.refreshSecret, m.refreshTTL
	}

	now := m.now().UTC()
	expiresAt := now.Add(ttl)

	claims := Claims{
		Role: role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (m *JWTManager) parse(kind tokenKind, raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}

	secret := m.accessSecret
	if kind == refreshToken {
		secret = m.refreshSecret
	}

	parsed, err := jwt.ParseWithClaims(
		raw,
		&Claims{},
		func(t *jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Kind != kind || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (m *JWTManager) GenerateAccessToken(ctx context.Context, userID string, role types.Role) (string, time.Time, error) {
	_, span := m.tracer.Start(ctx, "authentication.JWTManager.GenerateAccessToken")
	defer span.End()

	return m.sign(accessToken, userID, role)
}

func (m *JWTManager) GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	_, span := m.tracer.Start(ctx, "authentication.JWTManager.GenerateRefreshToken")
	defer span.End()

	return m.sign(refreshToken, userID, "")
}

// VerifyToken verifies an access token and returns its claims.
func (m *JWTManager) VerifyToken(ctx context.Context, raw string) (*Claims, error) {
	_, span := m.tracer.Start(ctx, "authentication.JWTManager.VerifyToken")
	defer span.End()

	return m.parse(accessToken, raw)
}

func (m *JWTManager) VerifyRefreshToken(ctx context.Context, raw string) (*Claims, error) {
	_, span := m.tracer.Start(ctx, "authentication.JWTManager.VerifyRefreshToken")
	defer span.End()

	return m.parse(refreshToken, raw)
}

func NewJWTManager(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTManager {
	m := new(JWTManager)

	m.accessSecret = []byte(cfg.AccessSecret)
	m.refreshSecret = []byte(cfg.RefreshSecret)
	m.accessTTL = cfg.AccessTTL
	m.refreshTTL = cfg.RefreshTTL
	m.now = time.Now

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
