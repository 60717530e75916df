// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

var (
	superAdmin = &types.Actor{ID: "s1", Role: types.RoleSuperAdmin, CompanyID: "s1"}
	admin      = &types.Actor{ID: "a1", Role: types.RoleAdmin, CompanyID: "a1"}
	user       = &types.Actor{ID: "u1", Role: types.RoleUser, TenantRef: "a1", CompanyID: "a1"}
	orphan     = &types.Actor{ID: "u2", Role: types.RoleUser}
)

func TestCanProvision(t *testing.T) {
	roles := []types.Role{types.RoleSuperAdmin, types.RoleAdmin, types.RoleUser}

	allowed := map[[2]types.Role]bool{
		{types.RoleSuperAdmin, types.RoleAdmin}: true,
		{types.RoleSuperAdmin, types.RoleUser}:  true,
		{types.RoleAdmin, types.RoleUser}:       true,
	}

	for _, creator := range roles {
		for _, target := range roles {
			expected := allowed[[2]types.Role{creator, target}]
			if got := CanProvision(creator, target); got != expected {
				t.Errorf("CanProvision(%s, %s) = %v, expected %v", creator, target, got, expected)
			}
		}
	}

	if CanProvision(types.Role("owner"), types.RoleUser) {
		t.Error("unknown creator role must not provision")
	}
}

func TestCanAccessTenantResource(t *testing.T) {
	tests := []struct {
		name     string
		actor    *types.Actor
		owner    string
		expected bool
	}{
		{name: "superadmin any owner", actor: superAdmin, owner: "zzz", expected: true},
		{name: "superadmin empty owner", actor: superAdmin, owner: "", expected: true},
		{name: "admin own tenant", actor: admin, owner: "a1", expected: true},
		{name: "admin other tenant", actor: admin, owner: "a2", expected: false},
		{name: "user own admin", actor: user, owner: "a1", expected: true},
		{name: "user other admin", actor: user, owner: "a2", expected: false},
		{name: "user owner equal to own id", actor: user, owner: "u1", expected: false},
		{name: "unlinked user", actor: orphan, owner: "", expected: false},
		{name: "nil actor", actor: nil, owner: "a1", expected: false},
		{name: "unknown role", actor: &types.Actor{ID: "a1", Role: "owner"}, owner: "a1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessTenantResource(tt.actor, tt.owner); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestResolveTenantRoot(t *testing.T) {
	tests := []struct {
		name       string
		actor      *types.Actor
		expectedID string
		expectedOK bool
	}{
		{name: "admin is its own root", actor: admin, expectedID: "a1", expectedOK: true},
		{name: "user resolves to admin", actor: user, expectedID: "a1", expectedOK: true},
		{name: "superadmin is unfiltered", actor: superAdmin, expectedID: "", expectedOK: false},
		{name: "unlinked user", actor: orphan, expectedID: "", expectedOK: false},
		{name: "nil", actor: nil, expectedID: "", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveTenantRoot(tt.actor)
			if id != tt.expectedID || ok != tt.expectedOK {
				t.Errorf("expected (%q, %v), got (%q, %v)", tt.expectedID, tt.expectedOK, id, ok)
			}
		})
	}
}

func TestAuthorizer_CheckProvision(t *testing.T) {
	testCases := []struct {
		name        string
		creator     *types.Actor
		target      types.Role
		denied      bool
		expectedErr error
	}{
		{name: "superadmin creates admin", creator: superAdmin, target: types.RoleAdmin},
		{name: "admin creates user", creator: admin, target: types.RoleUser},
		{name: "superadmin target refused for superadmin", creator: superAdmin, target: types.RoleSuperAdmin, denied: true, expectedErr: ErrInsufficientRole},
		{name: "superadmin target refused before authentication", creator: nil, target: types.RoleSuperAdmin, denied: true, expectedErr: ErrInsufficientRole},
		{name: "anonymous creator", creator: nil, target: types.RoleUser, expectedErr: ErrAuthenticationRequired},
		{name: "admin creates admin", creator: admin, target: types.RoleAdmin, denied: true, expectedErr: ErrInsufficientRole},
		{name: "user creates user", creator: user, target: types.RoleUser, denied: true, expectedErr: ErrInsufficientRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			a := NewAuthorizer(mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckProvision").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			if tc.denied {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(gomock.Any(), "provision:"+tc.target.String())
			}

			err := a.CheckProvision(context.Background(), tc.creator, tc.target)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_CheckRole(t *testing.T) {
	testCases := []struct {
		name        string
		actor       *types.Actor
		roles       []types.Role
		denied      bool
		expectedErr error
	}{
		{name: "allowed", actor: admin, roles: []types.Role{types.RoleAdmin, types.RoleSuperAdmin}},
		{name: "anonymous", actor: nil, roles: []types.Role{types.RoleAdmin}, expectedErr: ErrAuthenticationRequired},
		{name: "wrong role", actor: user, roles: []types.Role{types.RoleAdmin}, denied: true, expectedErr: ErrInsufficientRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			a := NewAuthorizer(mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckRole").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			if tc.denied {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(tc.actor.ID, gomock.Any())
			}

			err := a.CheckRole(context.Background(), tc.actor, tc.roles...)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_CheckTenantAccess(t *testing.T) {
	testCases := []struct {
		name        string
		actor       *types.Actor
		owner       string
		found       bool
		denied      bool
		expectedErr error
	}{
		{name: "admin own record", actor: admin, owner: "a1", found: true},
		{name: "superadmin foreign record", actor: superAdmin, owner: "a9", found: true},
		{name: "missing record", actor: admin, owner: "", found: false, expectedErr: ErrResourceNotFound},
		{name: "foreign record", actor: user, owner: "a9", found: true, denied: true, expectedErr: ErrResourceNotFound},
		{name: "admin foreign record", actor: admin, owner: "a9", found: true, denied: true, expectedErr: ErrResourceNotFound},
		{name: "anonymous", actor: nil, owner: "a1", found: true, expectedErr: ErrAuthenticationRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			a := NewAuthorizer(mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckTenantAccess").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			if tc.denied {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(tc.actor.ID, "tenant:"+tc.owner)
			}

			err := a.CheckTenantAccess(context.Background(), tc.actor, tc.owner, tc.found)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_TenantScope(t *testing.T) {
	testCases := []struct {
		name        string
		actor       *types.Actor
		denied      bool
		expected    string
		expectedErr error
	}{
		{name: "admin", actor: admin, expected: "a1"},
		{name: "user", actor: user, expected: "a1"},
		{name: "superadmin unfiltered", actor: superAdmin, expected: ""},
		{name: "unlinked user", actor: orphan, denied: true, expectedErr: ErrAccessDenied},
		{name: "anonymous", actor: nil, expectedErr: ErrAuthenticationRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			a := NewAuthorizer(mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.TenantScope").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			if tc.denied {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(tc.actor.ID, gomock.Any())
			}

			root, err := a.TenantScope(context.Background(), tc.actor)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
			if root != tc.expected {
				t.Fatalf("expected root %q, got %q", tc.expected, root)
			}
		})
	}
}
