// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	actor, _ := admin()
	clientID := primitive.NewObjectID()

	tests := []struct {
		name           string
		actor          *types.Actor
		method         string
		path           string
		body           interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "anonymous",
			method:         http.MethodGet,
			path:           "/clients",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "list defaults",
			actor:  actor,
			method: http.MethodGet,
			path:   "/clients?search=acme",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().List(gomock.Any(), actor, ListFilter{Page: 1, Limit: defaultLimit, Search: "acme"}).Return(&ListResult{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "create validates phone number",
			actor:          actor,
			method:         http.MethodPost,
			path:           "/clients",
			body:           map[string]string{"username": "Acme", "email": "ops@acme.io"},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create conflict",
			actor:  actor,
			method: http.MethodPost,
			path:   "/clients",
			body:   map[string]string{"username": "Acme", "email": "ops@acme.io", "phoneNumber": "555"},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Create(gomock.Any(), actor, gomock.Any()).Return(nil, ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "get other tenant",
			actor:  actor,
			method: http.MethodGet,
			path:   "/clients/" + clientID.Hex(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Get(gomock.Any(), actor, clientID.Hex()).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "update",
			actor:  actor,
			method: http.MethodPut,
			path:   "/clients/" + clientID.Hex(),
			body:   map[string]interface{}{"isActive": false},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Update(gomock.Any(), actor, clientID.Hex(), gomock.Any()).Return(&types.Client{ID: clientID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete blocked",
			actor:  actor,
			method: http.MethodDelete,
			path:   "/clients/" + clientID.Hex(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Delete(gomock.Any(), actor, clientID.Hex()).Return(types.NewValidationError("has meets"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			var body bytes.Buffer
			if tt.body != nil {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.body))
			}

			req := httptest.NewRequest(tt.method, tt.path, &body)
			if tt.actor != nil {
				req = req.WithContext(authentication.WithActor(req.Context(), tt.actor))
			}
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			NewAPI(mockService, NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
