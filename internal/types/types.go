// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialLinks struct {
	Website   string `bson:"website,omitempty" json:"website,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	X         string `bson:"x,omitempty" json:"x,omitempty"`
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

type User struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Username        string              `bson:"username" json:"username"`
	Email           string              `bson:"email" json:"email"`
	Password        string              `bson:"password" json:"-"`
	Role            Role                `bson:"role" json:"role"`
	FirstName       string              `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName        string              `bson:"lastName,omitempty" json:"lastName,omitempty"`
	RefAdmin        *primitive.ObjectID `bson:"refAdmin,omitempty" json:"refAdmin,omitempty"`
	Company         string              `bson:"company,omitempty" json:"company,omitempty"`
	Designation     string              `bson:"designation,omitempty" json:"designation,omitempty"`
	PhoneNumber     string              `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	IsEmailVerified bool                `bson:"isEmailVerified" json:"isEmailVerified"`
	IsActive        bool                `bson:"isActive" json:"isActive"`
	SocialLinks     *SocialLinks        `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type Client struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	RefAdmin    primitive.ObjectID `bson:"refAdmin" json:"refAdmin"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ClientAttendee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	ClientID    primitive.ObjectID `bson:"clientId" json:"clientId"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Department  string             `bson:"department,omitempty" json:"department,omitempty"`
	RefAdmin    primitive.ObjectID `bson:"refAdmin" json:"refAdmin"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type MeetingType struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	RefAdmin    primitive.ObjectID `bson:"refAdmin" json:"refAdmin"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type MeetingStatus string

const (
	MeetingIncoming MeetingStatus = "incoming"
	MeetingOngoing  MeetingStatus = "ongoing"
	MeetingPrevious MeetingStatus = "previous"
)

type MeetingPointStatus string

const (
	PointPending  MeetingPointStatus = "pending"
	PointComplete MeetingPointStatus = "complete"
)

type MeetingPoint struct {
	PointsDiscussed string             `bson:"pointsDiscussed" json:"pointsDiscussed"`
	PlanOfAction    string             `bson:"planOfAction" json:"planOfAction"`
	Accountability  string             `bson:"accountability" json:"accountability"`
	Status          MeetingPointStatus `bson:"status" json:"status"`
}

type Meet struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title          string               `bson:"title" json:"title"`
	MeetingTypeID  *primitive.ObjectID  `bson:"meetingTypeId,omitempty" json:"meetingTypeId,omitempty"`
	StartDate      time.Time            `bson:"startDate" json:"startDate"`
	EndDate        time.Time            `bson:"endDate" json:"endDate"`
	StartTime      string               `bson:"startTime" json:"startTime"`
	EndTime        string               `bson:"endTime" json:"endTime"`
	Location       string               `bson:"location,omitempty" json:"location,omitempty"`
	ClientID       *primitive.ObjectID  `bson:"clientId,omitempty" json:"clientId,omitempty"`
	AttendeeIDs    []primitive.ObjectID `bson:"attendeeIds" json:"attendeeIds"`
	Agenda         string               `bson:"agenda,omitempty" json:"agenda,omitempty"`
	MeetingPoints  []MeetingPoint       `bson:"meetingPoints" json:"meetingPoints"`
	ClosureReport  string               `bson:"closureReport,omitempty" json:"closureReport,omitempty"`
	OtherAttendees string               `bson:"otherAttendees,omitempty" json:"otherAttendees,omitempty"`
	Organizer      string               `bson:"organizer" json:"organizer"`
	Status         MeetingStatus        `bson:"status" json:"status"`
	Cancelled      bool                 `bson:"cancelled" json:"cancelled"`
	CancelledAt    *time.Time           `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	RefAdmin       primitive.ObjectID   `bson:"refAdmin" json:"refAdmin"`
	MeetingLink    string               `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	Notes          string               `bson:"notes,omitempty" json:"notes,omitempty"`
	IsActive       bool                 `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Change is one field level difference recorded by an audit entry. A nil side
// means the value was absent, a KindNull side is an explicit null. Both
// decoders (value.go) preserve the distinction.
type Change struct {
	Field    string `bson:"field" json:"field"`
	OldValue *Value `bson:"oldValue,omitempty" json:"oldValue,omitempty"`
	NewValue *Value `bson:"newValue,omitempty" json:"newValue,omitempty"`
}

type Log struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID   string             `bson:"companyId,omitempty" json:"companyId,omitempty"`
	Action      string             `bson:"action" json:"action"`
	Module      string             `bson:"module" json:"module"`
	Description string             `bson:"description" json:"description"`
	UserRole    string             `bson:"userRole" json:"userRole"`
	UserID      string             `bson:"userId" json:"userId"`
	DocumentID  string             `bson:"documentId,omitempty" json:"documentId,omitempty"`
	Changes     []Change           `bson:"changes" json:"changes"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Token struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Token     string             `bson:"token" json:"-"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Pagination is the page metadata returned alongside list results
type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int64 `json:"itemsPerPage"`
}

func NewPagination(page, limit, total int64) Pagination {
	p := Pagination{CurrentPage: page, TotalItems: total, ItemsPerPage: limit}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}

// CountBucket is one group of an aggregated count, keyed by the grouped value
type CountBucket struct {
	Key   string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

// LogStatistics holds the raw aggregates over a filtered set of log entries
type LogStatistics struct {
	TotalLogs int64
	TodayLogs int64
	Actions   []CountBucket
	Modules   []CountBucket
	UserRoles []CountBucket
	Daily     []CountBucket
	TopUsers  []CountBucket
}
