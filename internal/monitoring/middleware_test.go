// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/crm-service/internal/logging"
)

type recordingMonitor struct {
	NoopMonitor

	tags []map[string]string
	err  error
}

func (m *recordingMonitor) SetResponseTimeMetric(tags map[string]string, _ float64) error {
	m.tags = append(m.tags, tags)
	return m.err
}

func TestResponseTime(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		expected map[string]string
	}{
		{
			name:     "labelled by route pattern",
			path:     "/clients/66ff0000aaaabbbbccccdddd",
			expected: map[string]string{"route": "/clients/{id}", "method": http.MethodGet, "status": "200"},
		},
		{
			name:     "unmatched route",
			path:     "/missing",
			expected: map[string]string{"route": "/missing", "method": http.MethodGet, "status": "404"},
		},
		{
			name:     "monitor failure does not break the request",
			path:     "/clients/1",
			err:      errors.New("histogram not registered"),
			expected: map[string]string{"route": "/clients/{id}", "method": http.MethodGet, "status": "200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitor := &recordingMonitor{err: tt.err}

			mux := chi.NewMux()
			mux.Use(NewMiddleware(monitor, logging.NewNoopLogger()).ResponseTime())
			mux.Get("/clients/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Len(t, monitor.tags, 1)
			assert.Equal(t, tt.expected, monitor.tags[0])
		})
	}
}
