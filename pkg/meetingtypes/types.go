// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetingtypes

import (
	"github.com/canonical/crm-service/internal/types"
)

type CreateMeetingTypeRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateMeetingTypeRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

type ListFilter struct {
	Limit    int64
	Offset   int64
	Search   string
	IsActive *bool
}

type ListResult struct {
	MeetingTypes []*types.MeetingType `json:"meetingTypes"`
	Total        int64                `json:"total"`
	Limit        int64                `json:"limit"`
	Offset       int64                `json:"offset"`
}
