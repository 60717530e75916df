// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"net/http"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/storage"
	domain "github.com/canonical/crm-service/internal/types"
)

const (
	CodeAuthentication = "AuthenticationError"
	CodeAuthorization  = "AuthorizationError"
	CodeNotFound       = "NotFoundError"
	CodeConflict       = "ConflictError"
	CodeValidation     = "ValidationError"
	CodeRateLimit      = "RateLimitError"
	CodeInternal       = "InternalServerError"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusFromError maps the error taxonomy onto an HTTP status and error code.
func StatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, authorization.ErrAuthenticationRequired):
		return http.StatusUnauthorized, CodeAuthentication
	case errors.Is(err, authorization.ErrInsufficientRole), errors.Is(err, authorization.ErrAccessDenied):
		return http.StatusForbidden, CodeAuthorization
	case errors.Is(err, authorization.ErrResourceNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	}

	return http.StatusInternalServerError, CodeInternal
}

// message returns what the caller is allowed to see about err. Tenant
// mismatches and missing records read the same.
func message(status int, err error) string {
	switch status {
	case http.StatusUnauthorized:
		return "Authentication required"
	case http.StatusForbidden:
		if errors.Is(err, authorization.ErrAccessDenied) {
			return "Access denied"
		}
		return "Insufficient permissions"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusInternalServerError:
		return "Internal server error"
	}

	return err.Error()
}

// WriteError writes the structured error body for err, server side failures are logged.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	status, code := StatusFromError(err)

	if status == http.StatusInternalServerError && logger != nil {
		logger.Errorf("request failed: %v", err)
	}

	WriteJSON(w, status, ErrorResponse{Code: code, Message: message(status, err)})
}
