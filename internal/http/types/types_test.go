// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/storage"
	domain "github.com/canonical/crm-service/internal/types"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: authorization.ErrAuthenticationRequired, status: http.StatusUnauthorized, code: CodeAuthentication},
		{err: fmt.Errorf("wrapped: %w", authorization.ErrInsufficientRole), status: http.StatusForbidden, code: CodeAuthorization},
		{err: authorization.ErrAccessDenied, status: http.StatusForbidden, code: CodeAuthorization},
		{err: authorization.ErrResourceNotFound, status: http.StatusNotFound, code: CodeNotFound},
		{err: fmt.Errorf("get client: %w", storage.ErrNotFound), status: http.StatusNotFound, code: CodeNotFound},
		{err: storage.ErrDuplicateKey, status: http.StatusConflict, code: CodeConflict},
		{err: domain.NewValidationError("bad"), status: http.StatusBadRequest, code: CodeValidation},
		{err: errors.New("boom"), status: http.StatusInternalServerError, code: CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.err.Error(), func(t *testing.T) {
			status, code := StatusFromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestWriteErrorHidesInternals(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, errors.New("mongo: connection refused"), logging.NewNoopLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: CodeInternal, Message: "Internal server error"}, body)
}

func TestWriteErrorValidationMessage(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, domain.NewValidationError("title is required"), nil)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, CodeValidation, body.Code)
	assert.Contains(t, body.Message, "title is required")
}

type sampleRequest struct {
	Title     string `json:"title" validate:"required,max=10"`
	Email     string `json:"email" validate:"omitempty,email"`
	StartTime string `json:"startTime" validate:"omitempty,hhmm"`
	ClientID  string `json:"clientId" validate:"omitempty,objectid"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"title":"kickoff","email":"a@b.io","startTime":"09:30","clientId":"64b7f0c2a1b2c3d4e5f60718"}`},
		{name: "empty body", body: ``, wantErr: "request body is empty"},
		{name: "malformed", body: `{"title":`, wantErr: "invalid request body"},
		{name: "missing title", body: `{}`, wantErr: "title is required"},
		{name: "bad email", body: `{"title":"x","email":"nope"}`, wantErr: "email must be a valid email"},
		{name: "bad time", body: `{"title":"x","startTime":"9am"}`, wantErr: "startTime must use the HH:MM format"},
		{name: "bad id", body: `{"title":"x","clientId":"123"}`, wantErr: "clientId must be a valid id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst sampleRequest
			err := DecodeJSON(r, &dst)

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&limit=abc&isActive=false&fromDate=2025-10-01&toDate=nope", nil)

	assert.Equal(t, int64(3), QueryInt(r, "page", 1))
	assert.Equal(t, int64(10), QueryInt(r, "limit", 10))
	assert.Equal(t, int64(7), QueryInt(r, "offset", 7))

	active := QueryBool(r, "isActive")
	require.NotNil(t, active)
	assert.False(t, *active)
	assert.Nil(t, QueryBool(r, "missing"))

	from, err := QueryTime(r, "fromDate")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-01T00:00:00Z", from.Format("2006-01-02T15:04:05Z07:00"))

	_, err = QueryTime(r, "toDate")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
