// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	MongoURI            string        `envconfig:"mongo_uri" required:"true"`
	MongoDatabase       string        `envconfig:"mongo_database" default:"crm"`
	MongoConnectTimeout time.Duration `envconfig:"mongo_connect_timeout" default:"10s"`
	MongoMaxPoolSize    uint64        `envconfig:"mongo_max_pool_size" default:"25"`

	JWTAccessSecret    string        `envconfig:"jwt_access_secret" required:"true"`
	JWTRefreshSecret   string        `envconfig:"jwt_refresh_secret" required:"true"`
	AccessTokenExpiry  time.Duration `envconfig:"access_token_expiry" default:"1h"`
	RefreshTokenExpiry time.Duration `envconfig:"refresh_token_expiry" default:"168h"`

	SuperAdminEmail    string `envconfig:"super_admin_email"`
	SuperAdminPassword string `envconfig:"super_admin_password"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	RateLimitPerSecond float64 `envconfig:"rate_limit_per_second" default:"20"`
	RateLimitBurst     int     `envconfig:"rate_limit_burst" default:"40"`
	TrustProxyHeaders  bool    `envconfig:"trust_proxy_headers" default:"false"`
}
