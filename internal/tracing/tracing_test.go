// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/crm-service/internal/logging"
)

func TestNewTracerDisabled(t *testing.T) {
	tr := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	ctx, span := tr.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected context")
	}
	if span.SpanContext().IsValid() {
		t.Error("noop tracer should not produce valid span contexts")
	}
}

func TestNewTracerStdout(t *testing.T) {
	tr := NewTracer(NewConfig(true, "", "", logging.NewNoopLogger()))

	_, span := tr.Start(context.Background(), "tracing.Test")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("expected a recording span from the sdk tracer")
	}
}

func TestMiddlewareOpenTelemetry(t *testing.T) {
	called := false
	h := NewMiddleware(nil, logging.NewNoopLogger()).OpenTelemetry(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	if !called {
		t.Fatal("wrapped handler not called")
	}
	if rr.Code != http.StatusTeapot {
		t.Errorf("expected %d, got %d", http.StatusTeapot, rr.Code)
	}
}

func TestConfigExporter(t *testing.T) {
	tests := []struct {
		name     string
		grpc     string
		http     string
		expected exporterKind
	}{
		{name: "no endpoints", expected: exporterStdout},
		{name: "grpc only", grpc: "collector:4317", expected: exporterGRPC},
		{name: "http only", http: "collector:4318", expected: exporterHTTP},
		{name: "grpc preferred", grpc: "collector:4317", http: "collector:4318", expected: exporterGRPC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig(true, tt.grpc, tt.http, logging.NewNoopLogger())
			if got := c.exporter(); got != tt.expected {
				t.Errorf("expected exporter %d, got %d", tt.expected, got)
			}
		})
	}
}
