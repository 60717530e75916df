// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetings

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crm-service/internal/http/types"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/authentication"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/schedules", a.create)
	mux.Get("/schedules", a.list)
	mux.Get("/schedules/{id}", a.get)
	mux.Put("/schedules/{id}", a.update)
	mux.Delete("/schedules/{id}", a.delete)
	mux.Post("/schedules/{id}/start", a.transition(ServiceInterface.Start, "Schedule started"))
	mux.Post("/schedules/{id}/complete", a.transition(ServiceInterface.Complete, "Schedule completed"))
	mux.Post("/schedules/{id}/cancel", a.transition(ServiceInterface.Cancel, "Schedule cancelled"))
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(CreateMeetRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	m, err := a.service.Create(r.Context(), actor, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "Schedule created", m)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	res, err := a.service.List(r.Context(), actor, ListFilter{
		Limit:    httptypes.QueryInt(r, "limit", defaultLimit),
		Offset:   httptypes.QueryInt(r, "offset", 0),
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		From:     q.Get("startDate"),
		To:       q.Get("endDate"),
		ClientID: q.Get("clientId"),
		IsActive: httptypes.QueryBool(r, "isActive"),
	})
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Schedules retrieved successfully", res)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	m, err := a.service.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Schedule retrieved successfully", m)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(UpdateMeetRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	m, err := a.service.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Schedule updated", m)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	if err := a.service.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Schedule deleted", nil)
}

type transitionFunc func(ServiceInterface, context.Context, *types.Actor, string) (*types.Meet, error)

func (a *API) transition(fn transitionFunc, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := authentication.RequestActor(w, r, a.logger)
		if !ok {
			return
		}

		m, err := fn(a.service, r.Context(), actor, chi.URLParam(r, "id"))
		if err != nil {
			httptypes.WriteError(w, err, a.logger)
			return
		}

		httptypes.WriteData(w, http.StatusOK, message, m)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
