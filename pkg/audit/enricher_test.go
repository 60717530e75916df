// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/types"
)

func TestEnricherResolve(t *testing.T) {
	named := primitive.NewObjectID()
	bare := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	tests := []struct {
		name       string
		ids        []string
		setupMocks func(*MockStorageInterface, *MockLoggerInterface)
		expected   map[string]interface{}
	}{
		{
			name: "users resolved and placeholders applied",
			ids:  []string{named.Hex(), bare.Hex(), "anonymous", "legacy-id", missing.Hex(), named.Hex()},
			setupMocks: func(s *MockStorageInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListUsersByIDs(gomock.Any(), []string{named.Hex(), bare.Hex(), missing.Hex()}).Return(
					[]*types.User{
						{ID: named, Username: "jdoe", Email: "j@acme.io", Role: types.RoleAdmin, FirstName: "Jane", LastName: " Doe "},
						{ID: bare, Email: "x@acme.io", Role: types.RoleUser},
					},
					nil,
				)
			},
			expected: map[string]interface{}{
				named.Hex():   UserInfo{ID: named.Hex(), EmpCode: "jdoe", EmpName: "Jane  Doe", Email: "j@acme.io", Role: "admin"},
				bare.Hex():    UserInfo{ID: bare.Hex(), EmpCode: "N/A", EmpName: "N/A", Email: "x@acme.io", Role: "user"},
				"anonymous":   UserInfo{ID: "anonymous", EmpCode: "N/A", EmpName: "Anonymous User", Email: "N/A", Role: "anonymous"},
				"legacy-id":   "legacy-id",
				missing.Hex(): missing.Hex(),
			},
		},
		{
			name: "lookup failure keeps raw ids",
			ids:  []string{named.Hex()},
			setupMocks: func(s *MockStorageInterface, l *MockLoggerInterface) {
				s.EXPECT().ListUsersByIDs(gomock.Any(), []string{named.Hex()}).Return(nil, errors.New("timeout"))
				l.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expected: map[string]interface{}{named.Hex(): named.Hex()},
		},
		{
			name:       "only placeholders skip the lookup",
			ids:        []string{"anonymous"},
			setupMocks: func(*MockStorageInterface, *MockLoggerInterface) {},
			expected:   map[string]interface{}{"anonymous": anonymousUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			expectSpan(mockTracer, "audit.Enricher.Resolve")
			tt.setupMocks(mockStorage, mockLogger)

			resolved := NewEnricher(mockStorage, mockTracer, mockLogger).Resolve(context.Background(), tt.ids)

			for id, want := range tt.expected {
				assert.Equal(t, want, Display(resolved, id), id)
			}
		})
	}
}
