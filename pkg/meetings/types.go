// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetings

import (
	"github.com/canonical/crm-service/internal/types"
)

type MeetingPoint struct {
	PointsDiscussed string `json:"pointsDiscussed" validate:"max=2000"`
	PlanOfAction    string `json:"planOfAction" validate:"max=2000"`
	Accountability  string `json:"accountability" validate:"max=200"`
	Status          string `json:"status" validate:"omitempty,oneof=pending complete"`
}

type CreateMeetRequest struct {
	Title          string         `json:"title" validate:"required,max=100"`
	MeetingTypeID  string         `json:"meetingTypeId" validate:"omitempty,objectid"`
	StartDate      string         `json:"startDate" validate:"required"`
	EndDate        string         `json:"endDate" validate:"required"`
	StartTime      string         `json:"startTime" validate:"omitempty,hhmm"`
	EndTime        string         `json:"endTime" validate:"omitempty,hhmm"`
	Location       string         `json:"location" validate:"max=200"`
	ClientID       string         `json:"clientId" validate:"omitempty,objectid"`
	AttendeeIDs    []string       `json:"attendeeIds" validate:"dive,objectid"`
	Agenda         string         `json:"agenda" validate:"max=500"`
	MeetingPoints  []MeetingPoint `json:"meetingPoints" validate:"dive"`
	ClosureReport  string         `json:"closureReport" validate:"max=5000"`
	OtherAttendees string         `json:"otherAttendees" validate:"max=500"`
	Organizer      string         `json:"organizer" validate:"required,max=50"`
	MeetingLink    string         `json:"meetingLink" validate:"max=200"`
	Notes          string         `json:"notes" validate:"max=1000"`
}

// UpdateMeetRequest only touches the fields that are present
type UpdateMeetRequest struct {
	Title          *string         `json:"title" validate:"omitempty,min=1,max=100"`
	MeetingTypeID  *string         `json:"meetingTypeId" validate:"omitempty,objectid"`
	StartDate      *string         `json:"startDate"`
	EndDate        *string         `json:"endDate"`
	StartTime      *string         `json:"startTime" validate:"omitempty,hhmm"`
	EndTime        *string         `json:"endTime" validate:"omitempty,hhmm"`
	Location       *string         `json:"location" validate:"omitempty,max=200"`
	ClientID       *string         `json:"clientId" validate:"omitempty,objectid"`
	AttendeeIDs    *[]string       `json:"attendeeIds" validate:"omitempty,dive,objectid"`
	Agenda         *string         `json:"agenda" validate:"omitempty,max=500"`
	MeetingPoints  *[]MeetingPoint `json:"meetingPoints" validate:"omitempty,dive"`
	ClosureReport  *string         `json:"closureReport" validate:"omitempty,max=5000"`
	OtherAttendees *string         `json:"otherAttendees" validate:"omitempty,max=500"`
	Organizer      *string         `json:"organizer" validate:"omitempty,min=1,max=50"`
	Status         *string         `json:"status"`
	MeetingLink    *string         `json:"meetingLink" validate:"omitempty,max=200"`
	Notes          *string         `json:"notes" validate:"omitempty,max=1000"`
	IsActive       *bool           `json:"isActive"`
}

type ListFilter struct {
	Limit    int64
	Offset   int64
	Search   string
	Status   string
	From     string
	To       string
	ClientID string
	IsActive *bool
}

type MeetingTypeRef struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ClientRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AttendeeRef struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
}

// PopulatedMeet replaces the references of a meet with the documents they
// point to. A reference that cannot be resolved keeps its raw id.
type PopulatedMeet struct {
	*types.Meet
	MeetingTypeID interface{}   `json:"meetingTypeId,omitempty"`
	ClientID      interface{}   `json:"clientId,omitempty"`
	Client        interface{}   `json:"client,omitempty"`
	AttendeeIDs   []interface{} `json:"attendeeIds"`
}

type ListResult struct {
	Schedules []*PopulatedMeet `json:"schedules"`
	Total     int64            `json:"total"`
	Page      int64            `json:"page"`
	Limit     int64            `json:"limit"`
}

func meetingPoints(in []MeetingPoint) []types.MeetingPoint {
	out := make([]types.MeetingPoint, 0, len(in))
	for _, p := range in {
		status := types.MeetingPointStatus(p.Status)
		if status == "" {
			status = types.PointPending
		}

		out = append(out, types.MeetingPoint{
			PointsDiscussed: p.PointsDiscussed,
			PlanOfAction:    p.PlanOfAction,
			Accountability:  p.Accountability,
			Status:          status,
		})
	}
	return out
}
