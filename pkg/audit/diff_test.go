// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/crm-service/internal/types"
)

func TestDiff(t *testing.T) {
	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	d := NewDiff().
		Compare("username", "acme", "acme").
		Compare("company", "Acme", "Acme Ltd").
		Compare("startDate", day, day.In(time.FixedZone("IST", 5*3600+1800))).
		Compare("endDate", day, day.Add(24*time.Hour)).
		Compare("isActive", true, false).
		Compare("phoneNumber", nil, "").
		Set("password", "[HIDDEN]", "[UPDATED]")

	assert.Equal(t, []types.Change{
		{Field: "company", OldValue: types.StringValue("Acme"), NewValue: types.StringValue("Acme Ltd")},
		{Field: "endDate", OldValue: types.DateValue(day), NewValue: types.DateValue(day.Add(24 * time.Hour))},
		{Field: "isActive", OldValue: types.BoolValue(true), NewValue: types.BoolValue(false)},
		{Field: "phoneNumber", OldValue: types.NullValue(), NewValue: types.StringValue("")},
		{Field: "password", OldValue: types.StringValue("[HIDDEN]"), NewValue: types.StringValue("[UPDATED]")},
	}, d.Changes())
}

func TestDiffCreatedRemoved(t *testing.T) {
	d := NewDiff()
	assert.True(t, d.Empty())

	d.Created("title", "Kickoff").Removed("title", "Kickoff")

	assert.False(t, d.Empty())
	assert.Nil(t, d.Changes()[0].OldValue)
	assert.Equal(t, types.StringValue("Kickoff"), d.Changes()[1].OldValue)
	assert.Equal(t, types.NullValue(), d.Changes()[1].NewValue)

	d.Compare("clientId", nil, "abc")
	assert.Equal(t, types.NullValue(), d.Changes()[2].OldValue)
}
