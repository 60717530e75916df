// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crm-service/internal/http/types"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/pkg/authentication"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/clients", a.create)
	mux.Get("/clients", a.list)
	mux.Get("/clients/{id}", a.get)
	mux.Put("/clients/{id}", a.update)
	mux.Delete("/clients/{id}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(CreateClientRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	c, err := a.service.Create(r.Context(), actor, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "Client created successfully", c)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	res, err := a.service.List(r.Context(), actor, ListFilter{
		Page:     httptypes.QueryInt(r, "page", 1),
		Limit:    httptypes.QueryInt(r, "limit", defaultLimit),
		Search:   r.URL.Query().Get("search"),
		IsActive: httptypes.QueryBool(r, "isActive"),
	})
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Clients retrieved successfully", res)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	c, err := a.service.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Client retrieved successfully", c)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(UpdateClientRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	c, err := a.service.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Client updated successfully", c)
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

	httptypes.WriteData(w, http.StatusOK, "Client deleted successfully", nil)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
