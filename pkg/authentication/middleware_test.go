// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	adminID := primitive.NewObjectID()

	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface, *MockUserStoreInterface, *MockSecurityLoggerInterface)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "Missing token - rejects request",
			authHeader:         "",
			setupMocks:         func(*MockTokenVerifierInterface, *MockUserStoreInterface, *MockSecurityLoggerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface, *MockUserStoreInterface, *MockSecurityLoggerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockUserStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return(nil, fmt.Errorf("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Unknown user - rejects request",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserStoreInterface, s *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Claims{Role: types.RoleAdmin, RegisteredClaims: subject(adminID.Hex())}, nil)
				u.EXPECT().GetUserByID(gomock.Any(), adminID.Hex()).Return(nil, storage.ErrNotFound)
				s.EXPECT().AuthnFailure(adminID.Hex(), "unknown user")
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Inactive user - rejects request",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserStoreInterface, s *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Claims{RegisteredClaims: subject(adminID.Hex())}, nil)
				u.EXPECT().GetUserByID(gomock.Any(), adminID.Hex()).Return(&types.User{ID: adminID, Role: types.RoleAdmin}, nil)
				s.EXPECT().AuthnFailure(adminID.Hex(), "inactive user")
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Claims{RegisteredClaims: subject(adminID.Hex())}, nil)
				u.EXPECT().GetUserByID(gomock.Any(), adminID.Hex()).Return(&types.User{ID: adminID, Role: types.RoleAdmin, IsActive: true}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "admin:" + adminID.Hex(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockUsers := NewMockUserStoreInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

			tt.setupMocks(mockVerifier, mockUsers, mockSecurity)

			middleware := NewMiddleware(mockVerifier, mockUsers, mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				actor, _ := GetActor(r.Context())
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(actor.Role.String() + ":" + actor.CompanyID))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestMiddleware_OptionalAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		setupMocks    func(*MockTokenVerifierInterface)
		expectedActor bool
	}{
		{
			name:       "No token passes anonymously",
			setupMocks: func(*MockTokenVerifierInterface) {},
		},
		{
			name:       "Invalid token passes anonymously",
			authHeader: "Bearer broken",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "broken").Return(nil, ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockUsers := NewMockUserStoreInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.OptionalAuthenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			tt.setupMocks(mockVerifier)

			middleware := NewMiddleware(mockVerifier, mockUsers, mockTracer, mockMonitor, mockLogger)

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if _, ok := GetActor(r.Context()); ok != tt.expectedActor {
					t.Errorf("expected actor presence %v", tt.expectedActor)
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			middleware.OptionalAuthenticate()(handler).ServeHTTP(httptest.NewRecorder(), req)

			if !called {
				t.Fatal("expected next handler to be called")
			}
		})
	}
}

func TestMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name               string
		actor              *types.Actor
		expectedStatusCode int
	}{
		{name: "anonymous", actor: nil, expectedStatusCode: http.StatusUnauthorized},
		{name: "allowed role", actor: &types.Actor{ID: "a1", Role: types.RoleAdmin}, expectedStatusCode: http.StatusOK},
		{name: "forbidden role", actor: &types.Actor{ID: "u1", Role: types.RoleUser}, expectedStatusCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			if tt.expectedStatusCode == http.StatusForbidden {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(tt.actor.ID, "GET /clients")
			}

			middleware := NewMiddleware(NewMockTokenVerifierInterface(ctrl), NewMockUserStoreInterface(ctrl), mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/clients", nil)
			if tt.actor != nil {
				req = req.WithContext(WithActor(req.Context(), tt.actor))
			}
			rr := httptest.NewRecorder()

			middleware.RequireRole(types.RoleAdmin, types.RoleSuperAdmin)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(
				NewMockTokenVerifierInterface(ctrl),
				NewMockUserStoreInterface(ctrl),
				NewMockTracingInterface(ctrl),
				NewMockMonitorInterface(ctrl),
				NewMockLoggerInterface(ctrl),
			)

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}
