// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthnSuccess   = "authn_login_success"
	eventAuthnFailure   = "authn_login_fail"
	eventAuthzFailure   = "authz_fail"
	eventAdminAction    = "admin_action"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system started", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutting down", zap.String("event", eventSystemShutdown))
}

func (s *SecurityLogger) AuthnSuccess(userID string) {
	s.l.Info("user authenticated",
		zap.String("event", eventAuthnSuccess+":"+userID),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) AuthnFailure(userID, reason string) {
	s.l.Warn("authentication failed",
		zap.String("event", eventAuthnFailure+":"+userID),
		zap.String("user_id", userID),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn("authorization denied",
		zap.String("event", eventAuthzFailure+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.l.Warn("administrative action",
		zap.String("event", eventAdminAction+":"+userID+","+action+","+resource),
		zap.String("user_id", userID),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
