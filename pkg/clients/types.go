// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"github.com/canonical/crm-service/internal/types"
)

type CreateClientRequest struct {
	Username    string `json:"username" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=15"`
	Company     string `json:"company" validate:"max=100"`
	Address     string `json:"address" validate:"max=200"`
}

type UpdateClientRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=1,max=15"`
	Company     *string `json:"company" validate:"omitempty,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	IsActive    *bool   `json:"isActive"`
}

type ListFilter struct {
	Page     int64
	Limit    int64
	Search   string
	IsActive *bool
}

type ListResult struct {
	Clients    []*types.Client  `json:"clients"`
	Pagination types.Pagination `json:"pagination"`
}
