// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*MockPingerInterface, *MockLoggerInterface)
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "alive",
			path:           "/",
			setupMocks:     func(*MockPingerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name: "database reachable",
			path: "/status",
			setupMocks: func(p *MockPingerInterface, _ *MockLoggerInterface) {
				p.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  statusOK,
		},
		{
			name: "database down",
			path: "/status",
			setupMocks: func(p *MockPingerInterface, l *MockLoggerInterface) {
				p.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  statusDegraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pinger := NewMockPingerInterface(ctrl)
			logger := NewMockLoggerInterface(ctrl)
			tracer := NewMockTracingInterface(ctrl)
			tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
			tt.setupMocks(pinger, logger)

			mux := chi.NewMux()
			NewAPI(pinger, tracer, NewMockMonitorInterface(ctrl), logger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedState != "" {
				var s Status
				require.NoError(t, json.NewDecoder(w.Body).Decode(&s))
				assert.Equal(t, tt.expectedState, s.Status)
			}
		})
	}
}
