// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/db"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/accounts"
	"github.com/canonical/crm-service/pkg/attendees"
	"github.com/canonical/crm-service/pkg/audit"
	"github.com/canonical/crm-service/pkg/authentication"
	"github.com/canonical/crm-service/pkg/clients"
	"github.com/canonical/crm-service/pkg/meetings"
	"github.com/canonical/crm-service/pkg/meetingtypes"
	"github.com/canonical/crm-service/pkg/metrics"
	"github.com/canonical/crm-service/pkg/status"
)

const APIPrefix = "/api/v1"

type Config struct {
	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int
	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// friends, only enable it behind a proxy that sets them.
	TrustProxyHeaders bool
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tokens *authentication.JWTManager,
	authorizer *authorization.Authorizer,
	recorder audit.RecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	if cfg.TrustProxyHeaders {
		middlewares = append(middlewares, middleware.RealIP)
	}
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	if cfg.RateLimitPerSecond > 0 {
		middlewares = append(middlewares, newRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst).Middleware)
	}

	router.Use(middlewares...)

	guard := authentication.NewMiddleware(tokens, s, tracer, monitor, logger)

	accountService := accounts.NewService(s, tokens, authorizer, recorder, tracer, monitor, logger)
	auditService := audit.NewService(s, authorizer, recorder, tracer, monitor, logger)
	clientService := clients.NewService(s, authorizer, recorder, tracer, monitor, logger)
	attendeeService := attendees.NewService(s, authorizer, recorder, tracer, monitor, logger)
	meetingTypeService := meetingtypes.NewService(s, authorizer, recorder, tracer, monitor, logger)
	meetingService := meetings.NewService(s, authorizer, recorder, tracer, monitor, logger)

	router.Route(APIPrefix, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(r)

		accounts.NewAPI(accountService, guard, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(guard.Authenticate(), guard.RequireRole(types.RoleAdmin, types.RoleSuperAdmin))

			clients.NewAPI(clientService, logger).RegisterEndpoints(r)
			attendees.NewAPI(attendeeService, logger).RegisterEndpoints(r)
			meetingtypes.NewAPI(meetingTypeService, logger).RegisterEndpoints(r)
			meetings.NewAPI(meetingService, logger).RegisterEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(guard.Authenticate())

			audit.NewAPI(auditService, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
