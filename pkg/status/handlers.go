// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crm-service/internal/http/types"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/internal/version"
)

const pingTimeout = 2 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "unavailable"
)

type Status struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type API struct {
	database PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/", a.alive)
	mux.Get("/status", a.status)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteData(w, http.StatusOK, "CRM service is running", Status{Status: statusOK, Version: version.Version})
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	s := Status{Status: statusOK, Version: version.Version, Dependencies: map[string]string{"mongodb": statusOK}}
	code := http.StatusOK

	if err := a.database.Ping(ctx); err != nil {
		a.logger.Errorf("mongodb ping failed: %v", err)
		s.Status = statusDegraded
		s.Dependencies["mongodb"] = statusDown
		code = http.StatusServiceUnavailable
	}

	httptypes.WriteJSON(w, code, s)
}

func NewAPI(database PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		database: database,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
