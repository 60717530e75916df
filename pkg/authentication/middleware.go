// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/canonical/crm-service/internal/authorization"
	httptypes "github.com/canonical/crm-service/internal/http/types"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/types"
)

type Middleware struct {
	verifier TokenVerifierInterface
	users    UserStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// resolve verifies the token and loads the actor it was issued to. Every
// request re-reads the user so deactivation takes effect immediately.
func (m *Middleware) resolve(ctx context.Context, token string) (*types.Actor, error) {
	claims, err := m.verifier.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := m.users.GetUserByID(ctx, claims.Subject)
	if err != nil {
		m.logger.Security().AuthnFailure(claims.Subject, "unknown user")
		return nil, err
	}

	if !user.IsActive {
		m.logger.Security().AuthnFailure(claims.Subject, "inactive user")
		return nil, authorization.ErrAccessDenied
	}

	return types.ActorFromUser(user), nil
}

// Authenticate rejects requests without a valid bearer token.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				httptypes.WriteError(w, authorization.ErrAuthenticationRequired, m.logger)
				return
			}

			actor, err := m.resolve(ctx, token)
			if err != nil {
				m.logger.Debugf("token verification failed: %v", err)
				httptypes.WriteError(w, authorization.ErrAuthenticationRequired, m.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// OptionalAuthenticate attaches the actor when a valid token is present and
// lets every other request through anonymously.
func (m *Middleware) OptionalAuthenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.OptionalAuthenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := m.resolve(ctx, token)
			if err != nil {
				m.logger.Debugf("ignoring invalid optional token: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireRole admits only authenticated actors holding one of roles.
func (m *Middleware) RequireRole(roles ...types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActor(r.Context())
			if !ok {
				httptypes.WriteError(w, authorization.ErrAuthenticationRequired, m.logger)
				return
			}

			if !slices.Contains(roles, actor.Role) {
				m.logger.Security().AuthzFailure(actor.ID, r.Method+" "+r.URL.Path)
				httptypes.WriteError(w, authorization.ErrInsufficientRole, m.logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func NewMiddleware(verifier TokenVerifierInterface, users UserStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		users:    users,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RequestActor returns the actor of r, answering 401 itself when there is none.
func RequestActor(w http.ResponseWriter, r *http.Request, logger logging.LoggerInterface) (*types.Actor, bool) {
	actor, ok := GetActor(r.Context())
	if !ok {
		httptypes.WriteError(w, authorization.ErrAuthenticationRequired, logger)
		return nil, false
	}
	return actor, true
}
