// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetingtypes

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
	id := primitive.NewObjectID().Hex()

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
			path:           "/meeting-types",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "list window",
			actor:  actor,
			method: http.MethodGet,
			path:   "/meeting-types?limit=5&offset=15&search=kick",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().List(gomock.Any(), actor, ListFilter{Limit: 5, Offset: 15, Search: "kick"}).Return(&ListResult{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "create requires a title",
			actor:          actor,
			method:         http.MethodPost,
			path:           "/meeting-types",
			body:           map[string]string{"description": "no title"},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create duplicate",
			actor:  actor,
			method: http.MethodPost,
			path:   "/meeting-types",
			body:   map[string]string{"title": "Kickoff"},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Create(gomock.Any(), actor, &CreateMeetingTypeRequest{Title: "Kickoff"}).Return(nil, ErrTitleTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "get missing",
			actor:  actor,
			method: http.MethodGet,
			path:   "/meeting-types/" + id,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Get(gomock.Any(), actor, id).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "update",
			actor:  actor,
			method: http.MethodPut,
			path:   "/meeting-types/" + id,
			body:   map[string]interface{}{"isActive": false},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Update(gomock.Any(), actor, id, gomock.Any()).Return(&types.MeetingType{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete",
			actor:  actor,
			method: http.MethodDelete,
			path:   "/meeting-types/" + id,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Delete(gomock.Any(), actor, id).Return(nil)
			},
			expectedStatus: http.StatusOK,
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
