// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	auditWriteFailures     *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.labels(tags, "route", "method", "status")).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(m.labels(tags, "component")).Set(value)

	return nil
}

func (m *Monitor) IncAuditWriteFailure(tags map[string]string) error {
	if m.auditWriteFailures == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.auditWriteFailures.With(m.labels(tags, "action", "module")).Inc()

	return nil
}

// labels projects tags onto the declared label set, missing keys become empty
// values so With never panics on a partial map
func (m *Monitor) labels(tags map[string]string, keys ...string) prometheus.Labels {
	l := prometheus.Labels{"service": m.service}

	for _, k := range keys {
		l[k] = tags[k]
	}

	return l
}

func (m *Monitor) register(registerer prometheus.Registerer) {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"service", "route", "method", "status"},
	)

	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"service", "component"},
	)

	m.auditWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_write_failures_total",
			Help: "Audit log entries that failed validation or persistence.",
		},
		[]string{"service", "action", "module"},
	)

	for _, c := range []prometheus.Collector{m.responseTime, m.dependencyAvailability, m.auditWriteFailures} {
		if err := registerer.Register(c); err != nil {
			m.logger.Debugf("metric already registered: %v", err)
		}
	}
}

// NewMonitor registers the service metrics with the default prometheus registry
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	return NewMonitorWithRegisterer(service, prometheus.DefaultRegisterer, logger)
}

func NewMonitorWithRegisterer(service string, registerer prometheus.Registerer, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.register(registerer)

	return m
}
