// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crm-service/internal/http/types"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/pkg/authentication"
)

type DeletedLog struct {
	ID          string `json:"id"`
	Action      string `json:"action"`
	Module      string `json:"module"`
	Description string `json:"description"`
}

type DeleteResponse struct {
	Message    string     `json:"message"`
	DeletedLog DeletedLog `json:"deletedLog"`
}

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/logs", a.create)
	mux.Get("/logs", a.list)
	mux.Get("/logs/statistics", a.statistics)
	mux.Get("/logs/{id}", a.get)
	mux.Put("/logs/{id}", a.update)
	mux.Delete("/logs/{id}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(CreateLogRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	l, err := a.service.Create(r.Context(), actor, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, l)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	from, err := httptypes.QueryTime(r, "fromDate")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	to, err := httptypes.QueryTime(r, "toDate")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	q := r.URL.Query()
	res, err := a.service.List(r.Context(), actor, ListFilter{
		Page:      httptypes.QueryInt(r, "page", 1),
		Limit:     httptypes.QueryInt(r, "limit", defaultListLimit),
		Action:    q.Get("action"),
		Module:    q.Get("module"),
		UserRole:  q.Get("userRole"),
		UserID:    q.Get("userId"),
		Search:    q.Get("search"),
		From:      from,
		To:        to,
		CompanyID: q.Get("companyId"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, res)
}

func (a *API) statistics(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	from, err := httptypes.QueryTime(r, "fromDate")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	to, err := httptypes.QueryTime(r, "toDate")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	stats, err := a.service.Statistics(r.Context(), actor, StatsFilter{
		From:      from,
		To:        to,
		CompanyID: r.URL.Query().Get("companyId"),
	})
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, stats)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	l, err := a.service.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, l)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(UpdateLogRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	l, err := a.service.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, l)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	l, err := a.service.Delete(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, DeleteResponse{
		Message: "Log deleted successfully",
		DeletedLog: DeletedLog{
			ID:          l.ID.Hex(),
			Action:      l.Action,
			Module:      l.Module,
			Description: l.Description,
		},
	})
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
