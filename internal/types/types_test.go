// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, limit, total int64
		pages              int64
	}{
		{page: 1, limit: 10, total: 0, pages: 0},
		{page: 1, limit: 10, total: 10, pages: 1},
		{page: 2, limit: 10, total: 11, pages: 2},
		{page: 1, limit: 0, total: 5, pages: 0},
	}

	for _, tt := range tests {
		p := NewPagination(tt.page, tt.limit, tt.total)
		if p.TotalPages != tt.pages {
			t.Errorf("limit %d total %d: expected %d pages, got %d", tt.limit, tt.total, tt.pages, p.TotalPages)
		}
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("field %s is required", "title")

	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected ErrValidation in chain")
	}
	if err.Error() != "validation error: field title is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-10-01", want: "2025-10-01T00:00:00Z"},
		{in: "2025-10-01T09:30:00", want: "2025-10-01T09:30:00Z"},
		{in: "2025-10-01T09:30:00+05:30", want: "2025-10-01T04:00:00Z"},
		{in: "01/10/2025", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("%s: expected validation error, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.in, err)
		}
		if got.Format("2006-01-02T15:04:05Z07:00") != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.in, tt.want, got.Format("2006-01-02T15:04:05Z07:00"))
		}
	}
}
