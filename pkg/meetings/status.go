// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package meetings

import (
	"strings"
	"time"

	"github.com/canonical/crm-service/internal/types"
)

// endOfDay is the last millisecond of t's UTC calendar day
func endOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

// DeriveStatus places now relative to a meeting spanning start to the end of
// end's day. The end day is inclusive.
func DeriveStatus(start, end, now time.Time) types.MeetingStatus {
	switch {
	case now.Before(start):
		return types.MeetingIncoming
	case !now.After(endOfDay(end)):
		return types.MeetingOngoing
	default:
		return types.MeetingPrevious
	}
}

// ParseStatus validates a status supplied by a client.
func ParseStatus(s string) (types.MeetingStatus, error) {
	switch st := types.MeetingStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case types.MeetingIncoming, types.MeetingOngoing, types.MeetingPrevious:
		return st, nil
	}
	return "", types.NewValidationError("%q is not a valid status", s)
}
