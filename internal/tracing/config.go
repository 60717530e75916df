// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/crm-service/internal/logging"
)

type exporterKind int

const (
	exporterStdout exporterKind = iota
	exporterGRPC
	exporterHTTP
)

// Config selects the span exporter, an empty endpoint pair means spans are
// produced but discarded locally
type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

func (c *Config) exporter() exporterKind {
	switch {
	case c.OtelGRPCEndpoint != "":
		return exporterGRPC
	case c.OtelHTTPEndpoint != "":
		return exporterHTTP
	default:
		return exporterStdout
	}
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.Logger = logger
	c.Enabled = enabled

	return c
}

func NewNoopConfig() *Config {
	c := new(Config)
	c.Enabled = false
	c.Logger = logging.NewNoopLogger()
	return c
}
