// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crm-service/internal/http/types"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/authentication"
)

const refreshCookie = "refreshToken"

// GuardInterface provides the authentication middlewares the account routes
// are mounted behind.
type GuardInterface interface {
	Authenticate() func(http.Handler) http.Handler
	OptionalAuthenticate() func(http.Handler) http.Handler
	RequireRole(roles ...types.Role) func(http.Handler) http.Handler
}

type API struct {
	service ServiceInterface
	guard   GuardInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.With(a.guard.OptionalAuthenticate()).Post("/auth/register", a.register)
	mux.Post("/auth/login", a.login)
	mux.Post("/auth/refresh-token", a.refresh)
	mux.With(a.guard.Authenticate()).Post("/auth/logout", a.logout)

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.Authenticate(), a.guard.RequireRole(types.RoleAdmin, types.RoleUser))
		r.Get("/users/current", a.getCurrentUser)
		r.Put("/users/current", a.updateCurrentUser)
		r.Delete("/users/current", a.deleteCurrentUser)
	})

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.Authenticate(), a.guard.RequireRole(types.RoleAdmin, types.RoleSuperAdmin))
		r.Post("/users", a.createUser)
		r.Get("/users", a.searchUsers)
		r.Get("/users/search", a.searchUsers)
		r.Get("/users/admins", a.listAdmins)
		r.Get("/users/{id}", a.getUser)
		r.Put("/users/{id}", a.updateUser)
		r.Delete("/users/{id}", a.deleteUser)
	})
}

func secureRequest(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

func setRefreshCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secureRequest(r),
		SameSite: http.SameSiteStrictMode,
	})
}

// requestRefreshToken reads the refresh token from its cookie, falling back to the body.
func requestRefreshToken(r *http.Request) string {
	if c, err := r.Cookie(refreshCookie); err == nil && c.Value != "" {
		return c.Value
	}

	req := new(RefreshRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		return ""
	}
	return req.RefreshToken
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req := new(RegisterRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	creator, _ := authentication.GetActor(r.Context())

	res, err := a.service.Register(r.Context(), creator, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	setRefreshCookie(w, r, res.RefreshToken, res.RefreshExpiresAt)
	httptypes.WriteData(w, http.StatusCreated, "User registered successfully", res)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	req := new(LoginRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	res, err := a.service.Login(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	setRefreshCookie(w, r, res.RefreshToken, res.RefreshExpiresAt)
	httptypes.WriteData(w, http.StatusOK, "Login successful", res)
}

func (a *API) refresh(w http.ResponseWriter, r *http.Request) {
	res, err := a.service.Refresh(r.Context(), requestRefreshToken(r))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Token refreshed", res)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	if err := a.service.Logout(r.Context(), actor, requestRefreshToken(r)); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secureRequest(r),
		SameSite: http.SameSiteStrictMode,
	})
	httptypes.WriteData(w, http.StatusOK, "Logged out successfully", nil)
}

func (a *API) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	u, err := a.service.GetCurrentUser(r.Context(), actor)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "User retrieved successfully", u)
}

func (a *API) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(UpdateProfileRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	u, err := a.service.UpdateCurrentUser(r.Context(), actor, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "User updated successfully", u)
}

func (a *API) deleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	if err := a.service.DeleteCurrentUser(r.Context(), actor); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "User deleted successfully", nil)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(CreateUserRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	u, err := a.service.CreateUser(r.Context(), actor, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "User created successfully", u)
}

func (a *API) searchUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	res, err := a.service.SearchUsers(r.Context(), actor, SearchFilter{
		Search:   q.Get("search"),
		Role:     types.Role(q.Get("role")),
		IsActive: httptypes.QueryBool(r, "isActive"),
		Limit:    httptypes.QueryInt(r, "limit", defaultLimit),
		Offset:   httptypes.QueryInt(r, "offset", 0),
	})
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Users retrieved successfully", res)
}

func (a *API) listAdmins(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	res, err := a.service.ListAdmins(
		r.Context(),
		actor,
		httptypes.QueryInt(r, "limit", defaultLimit),
		httptypes.QueryInt(r, "offset", 0),
	)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Admins retrieved successfully", res)
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	u, err := a.service.GetUser(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "User retrieved successfully", u)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	req := new(UpdateUserRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	u, err := a.service.UpdateUser(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "User updated successfully", u)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequestActor(w, r, a.logger)
	if !ok {
		return
	}

	if err := a.service.DeleteUser(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "User deleted successfully", nil)
}

func NewAPI(service ServiceInterface, guard GuardInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		guard:   guard,
		logger:  logger,
	}
}
