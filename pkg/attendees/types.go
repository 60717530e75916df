// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package attendees

import (
	"github.com/canonical/crm-service/internal/types"
)

type CreateAttendeeRequest struct {
	Username    string `json:"username" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"max=15"`
	ClientID    string `json:"clientId" validate:"required,objectid"`
	Designation string `json:"designation" validate:"max=100"`
	Department  string `json:"department" validate:"max=100"`
}

type UpdateAttendeeRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=15"`
	ClientID    *string `json:"clientId" validate:"omitempty,objectid"`
	Designation *string `json:"designation" validate:"omitempty,max=100"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	IsActive    *bool   `json:"isActive"`
}

type ListFilter struct {
	Page     int64
	Limit    int64
	Search   string
	ClientID string
	IsActive *bool
}

type ListResult struct {
	Attendees  []*types.ClientAttendee `json:"attendees"`
	Pagination types.Pagination        `json:"pagination"`
}
