// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInsufficientRole       = errors.New("insufficient role")
	ErrResourceNotFound       = errors.New("resource not found")
	ErrAccessDenied           = errors.New("access denied")
)
