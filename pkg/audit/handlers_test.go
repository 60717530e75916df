// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/types"
	"github.com/canonical/crm-service/pkg/authentication"
)

func newTestRouter(api *API, actor *types.Actor) *chi.Mux {
	mux := chi.NewMux()
	if actor != nil {
		mux.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(authentication.WithActor(r.Context(), actor)))
			})
		})
	}
	api.RegisterEndpoints(mux)
	return mux
}

func TestAPI(t *testing.T) {
	adminID := primitive.NewObjectID().Hex()
	logID := primitive.NewObjectID()
	admin := &types.Actor{ID: adminID, Role: types.RoleAdmin, CompanyID: adminID}

	tests := []struct {
		name           string
		actor          *types.Actor
		method         string
		path           string
		body           interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "anonymous list",
			method:         http.MethodGet,
			path:           "/logs",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "list parses query",
			actor:  admin,
			method: http.MethodGet,
			path:   "/logs?page=2&limit=5&action=LOGIN&fromDate=2025-10-01&sortOrder=asc",
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().List(gomock.Any(), admin, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.Actor, f ListFilter) (*ListResult, error) {
						assert.Equal(t, int64(2), f.Page)
						assert.Equal(t, int64(5), f.Limit)
						assert.Equal(t, "LOGIN", f.Action)
						assert.Equal(t, "asc", f.SortOrder)
						require.NotNil(t, f.From)
						return &ListResult{Logs: []*EnrichedLog{}, Filters: f}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list rejects malformed date",
			actor:          admin,
			method:         http.MethodGet,
			path:           "/logs?toDate=yesterday",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create validates body",
			actor:          admin,
			method:         http.MethodPost,
			path:           "/logs",
			body:           map[string]string{"action": "CREATE"},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create accepts nested role",
			actor:  admin,
			method: http.MethodPost,
			path:   "/logs",
			body: map[string]interface{}{
				"action": "EXPORT", "module": "CLIENT", "description": "exported",
				"userRole": map[string]string{"role": "admin"},
			},
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Create(gomock.Any(), admin, &CreateLogRequest{
					Action: "EXPORT", Module: "CLIENT", Description: "exported", UserRole: "admin",
				}).Return(&types.Log{ID: logID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "create keeps explicit null side",
			actor:  admin,
			method: http.MethodPost,
			path:   "/logs",
			body: map[string]interface{}{
				"action": "UPDATE", "module": "MEET", "description": "client linked",
				"changes": []map[string]interface{}{{"field": "clientId", "oldValue": nil, "newValue": "abc"}},
			},
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Create(gomock.Any(), admin, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.Actor, req *CreateLogRequest) (*types.Log, error) {
						require.Len(t, req.Changes, 1)
						require.NotNil(t, req.Changes[0].OldValue)
						assert.Equal(t, types.KindNull, req.Changes[0].OldValue.Kind)
						return &types.Log{ID: logID}, nil
					},
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "get in another tenant",
			actor:  admin,
			method: http.MethodGet,
			path:   "/logs/" + logID.Hex(),
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Get(gomock.Any(), admin, logID.Hex()).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "statistics",
			actor:  admin,
			method: http.MethodGet,
			path:   "/logs/statistics",
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Statistics(gomock.Any(), admin, StatsFilter{}).Return(&Statistics{Summary: Summary{TotalLogs: 4}}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body map[string]map[string]interface{}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, float64(4), body["summary"]["totalLogs"])
			},
		},
		{
			name:   "update refused",
			actor:  admin,
			method: http.MethodPut,
			path:   "/logs/" + logID.Hex(),
			body:   map[string]string{"description": "x"},
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Update(gomock.Any(), admin, logID.Hex(), gomock.Any()).Return(nil, authorization.ErrInsufficientRole)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "delete",
			actor:  admin,
			method: http.MethodDelete,
			path:   "/logs/" + logID.Hex(),
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Delete(gomock.Any(), admin, logID.Hex()).Return(
					&types.Log{ID: logID, Action: "LOGIN", Module: "AUTH", Description: "in"}, nil,
				)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body DeleteResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, DeletedLog{ID: logID.Hex(), Action: "LOGIN", Module: "AUTH", Description: "in"}, body.DeletedLog)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			var body bytes.Buffer
			if tt.body != nil {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.body))
			}

			req := httptest.NewRequest(tt.method, tt.path, &body)
			w := httptest.NewRecorder()

			newTestRouter(NewAPI(mockService, mockLogger), tt.actor).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}
