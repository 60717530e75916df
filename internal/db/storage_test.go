// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"testing"

	"go.mongodb.org/mongo-driver/event"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		page, size int64
		expected   int64
	}{
		{page: 0, size: 10, expected: 0},
		{page: -3, size: 10, expected: 0},
		{page: 1, size: 10, expected: 0},
		{page: 3, size: 20, expected: 40},
	}

	for _, tt := range tests {
		if got := Offset(tt.page, tt.size); got != tt.expected {
			t.Errorf("Offset(%d, %d) = %d, expected %d", tt.page, tt.size, got, tt.expected)
		}
	}
}

func TestPageSize(t *testing.T) {
	if got := PageSize(0); got != defaultPageSize {
		t.Errorf("expected default page size, got %d", got)
	}
	if got := PageSize(25); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
}

type availabilityMonitor struct {
	*monitoring.NoopMonitor
	values []float64
}

func (m *availabilityMonitor) SetDependencyAvailability(_ map[string]string, v float64) error {
	m.values = append(m.values, v)
	return nil
}

func TestPoolMonitor(t *testing.T) {
	monitor := &availabilityMonitor{NoopMonitor: monitoring.NewNoopMonitor("test", logging.NewNoopLogger())}
	d := &DBClient{monitor: monitor, logger: logging.NewNoopLogger()}

	pm := d.poolMonitor()
	for _, typ := range []string{event.PoolReady, event.ConnectionCreated, event.GetFailed, event.ConnectionReady, event.PoolCleared} {
		pm.Event(&event.PoolEvent{Type: typ})
	}

	expected := []float64{1, 0, 1, 0}
	if len(monitor.values) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, monitor.values)
	}
	for i := range expected {
		if monitor.values[i] != expected[i] {
			t.Errorf("event %d: expected %v, got %v", i, expected[i], monitor.values[i])
		}
	}
}
