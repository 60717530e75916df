// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/canonical/crm-service/internal/types"
)

// Page selects a window of a sorted result set, a zero Limit means no limit.
type Page struct {
	Skip  int64
	Limit int64
}

func (p Page) apply(opts *options.FindOptions) *options.FindOptions {
	if p.Skip > 0 {
		opts.SetSkip(p.Skip)
	}
	if p.Limit > 0 {
		opts.SetLimit(p.Limit)
	}
	return opts
}

type UserFilter struct {
	// TenantID restricts results to users provisioned by this admin, empty means every tenant.
	TenantID string
	Roles    []types.Role
	IsActive *bool
	Search   string

	Page
}

type ClientFilter struct {
	TenantID string
	IsActive *bool
	Search   string

	Page
}

type AttendeeFilter struct {
	TenantID string
	ClientID string
	IsActive *bool
	Search   string

	Page
}

type MeetingTypeFilter struct {
	TenantID string
	IsActive *bool
	Search   string

	Page
}

type MeetFilter struct {
	TenantID string
	ClientID string
	Status   types.MeetingStatus
	IsActive *bool
	Search   string
	From     *time.Time
	To       *time.Time

	Page
}

type LogFilter struct {
	// CompanyID is matched exactly, an empty value matches entries filed without a company.
	CompanyID string
	// AllCompanies disables the company match altogether.
	AllCompanies bool
	Action       string
	Module       string
	UserRole     string
	UserID       string
	Search       string
	From         *time.Time
	To           *time.Time
	SortBy       string
	SortAsc      bool

	Page
}

// searchRegex builds a case insensitive regex matching the literal term
func searchRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func searchAny(term string, fields ...string) bson.A {
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: searchRegex(term)})
	}
	return or
}

// tenantScope adds the refAdmin match for a tenant root, leaving the filter
// unscoped when tenantID is empty. A malformed tenant id never matches.
func tenantScope(filter bson.M, tenantID string) bson.M {
	if tenantID == "" {
		return filter
	}

	oid, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		filter["refAdmin"] = primitive.NilObjectID
		return filter
	}

	filter["refAdmin"] = oid
	return filter
}

func dateRange(from, to *time.Time) bson.M {
	if from == nil && to == nil {
		return nil
	}

	r := bson.M{}
	if from != nil {
		r["$gte"] = *from
	}
	if to != nil {
		r["$lte"] = *to
	}
	return r
}

func (f UserFilter) bson() bson.M {
	filter := tenantScope(bson.M{}, f.TenantID)

	if len(f.Roles) == 1 {
		filter["role"] = f.Roles[0]
	} else if len(f.Roles) > 1 {
		filter["role"] = bson.M{"$in": f.Roles}
	}

	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	if f.Search != "" {
		filter["$or"] = searchAny(f.Search, "username", "email", "firstName", "lastName", "company", "designation")
	}

	return filter
}

func (f ClientFilter) bson() bson.M {
	filter := tenantScope(bson.M{}, f.TenantID)

	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	if f.Search != "" {
		filter["$or"] = searchAny(f.Search, "username", "email", "company")
	}

	return filter
}

func (f AttendeeFilter) bson() bson.M {
	filter := tenantScope(bson.M{}, f.TenantID)

	if f.ClientID != "" {
		oid, err := primitive.ObjectIDFromHex(f.ClientID)
		if err != nil {
			oid = primitive.NilObjectID
		}
		filter["clientId"] = oid
	}

	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	if f.Search != "" {
		filter["$or"] = searchAny(f.Search, "username", "email", "designation", "department")
	}

	return filter
}

func (f MeetingTypeFilter) bson() bson.M {
	filter := tenantScope(bson.M{}, f.TenantID)

	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	if f.Search != "" {
		filter["$or"] = searchAny(f.Search, "title", "description")
	}

	return filter
}

func (f MeetFilter) bson() bson.M {
	filter := tenantScope(bson.M{}, f.TenantID)

	if f.ClientID != "" {
		oid, err := primitive.ObjectIDFromHex(f.ClientID)
		if err != nil {
			oid = primitive.NilObjectID
		}
		filter["clientId"] = oid
	}

	if f.Status != "" {
		filter["status"] = f.Status
	}

	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	if r := dateRange(f.From, f.To); r != nil {
		filter["startDate"] = r
	}

	if f.Search != "" {
		filter["$or"] = searchAny(f.Search, "title", "location")
	}

	return filter
}

func (f LogFilter) bson() bson.M {
	filter := bson.M{}

	if !f.AllCompanies {
		if f.CompanyID == "" {
			filter["companyId"] = bson.M{"$in": bson.A{nil, ""}}
		} else {
			filter["companyId"] = f.CompanyID
		}
	}

	if f.Action != "" {
		filter["action"] = f.Action
	}
	if f.Module != "" {
		filter["module"] = f.Module
	}
	if f.UserRole != "" {
		filter["userRole"] = f.UserRole
	}
	if f.UserID != "" {
		filter["userId"] = f.UserID
	}

	if r := dateRange(f.From, f.To); r != nil {
		filter["createdAt"] = r
	}

	if f.Search != "" {
		filter["$or"] = searchAny(f.Search, "description", "changes.field", "changes.oldValue", "changes.newValue")
	}

	return filter
}

var logSortFields = map[string]bool{
	"createdAt":  true,
	"updatedAt":  true,
	"action":     true,
	"module":     true,
	"userRole":   true,
	"userId":     true,
	"companyId":  true,
	"documentId": true,
}

func (f LogFilter) sort() bson.D {
	field := f.SortBy
	if !logSortFields[field] {
		field = "createdAt"
	}

	order := -1
	if f.SortAsc {
		order = 1
	}

	return bson.D{{Key: field, Value: order}, {Key: "_id", Value: order}}
}
