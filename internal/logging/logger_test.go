// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestLoggerLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", "bogus"} {
		t.Run(lvl, func(t *testing.T) {
			l := NewLogger(lvl)
			if l.Security() == nil {
				t.Fatal("expected security logger")
			}
		})
	}
}

func TestSecurityLoggerEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := newSecurityLogger(zap.New(core))

	s.SystemStartup()
	s.AuthnSuccess("user-1")
	s.AuthnFailure("user-2", "bad password")
	s.AuthzFailure("user-3", "client:abc")
	s.AdminAction("user-4", "delete", "log:xyz")
	s.SystemShutdown()

	if logs.Len() != 6 {
		t.Fatalf("expected 6 entries, got %d", logs.Len())
	}

	entry := logs.All()[3]
	if entry.ContextMap()["event"] != "authz_fail:user-3,client:abc" {
		t.Errorf("unexpected event field %v", entry.ContextMap()["event"])
	}
	if entry.ContextMap()["resource"] != "client:abc" {
		t.Errorf("unexpected resource field %v", entry.ContextMap()["resource"])
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Errorf("nothing %s", "happens")
	l.Security().AuthzFailure("u", "r")
	_ = l.Sync()
}
