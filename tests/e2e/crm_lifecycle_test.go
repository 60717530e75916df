// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// newTenant registers a fresh admin through the superadmin and logs in as it
func newTenant(t *testing.T) (*apiClient, string) {
	c := newClient(t)
	root := c.withToken(c.login(superAdminEmail, superAdminPassword))

	email := uniqueEmail("admin")
	var registered struct {
		User entity `json:"user"`
	}
	root.data(http.MethodPost, "/auth/register", map[string]string{
		"email": email, "password": "admin-password", "role": "admin",
	}, http.StatusCreated, &registered)
	require.NotEmpty(t, registered.User.ID)

	return c.withToken(c.login(email, "admin-password")), registered.User.ID
}

func TestScheduleLifecycle(t *testing.T) {
	admin, _ := newTenant(t)

	var client entity
	admin.data(http.MethodPost, "/clients", map[string]string{
		"username": "Acme", "email": uniqueEmail("acme"), "phoneNumber": "555-0100",
	}, http.StatusCreated, &client)

	var attendee entity
	admin.data(http.MethodPost, "/client-attendees", map[string]string{
		"username": "Jane", "email": uniqueEmail("jane"), "clientId": client.ID,
	}, http.StatusCreated, &attendee)

	var meetingType entity
	admin.data(http.MethodPost, "/meeting-types", map[string]string{"title": "Kickoff"}, http.StatusCreated, &meetingType)

	code, _ := admin.do(http.MethodPost, "/meeting-types", map[string]string{"title": "KICKOFF"})
	assert.Equal(t, http.StatusConflict, code, "titles are unique per tenant")

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	var schedule entity
	admin.data(http.MethodPost, "/schedules", map[string]interface{}{
		"title":         "Quarterly review",
		"meetingTypeId": meetingType.ID,
		"clientId":      client.ID,
		"attendeeIds":   []string{attendee.ID},
		"startDate":     tomorrow,
		"endDate":       tomorrow,
		"organizer":     "Jane",
	}, http.StatusCreated, &schedule)
	assert.Equal(t, "incoming", schedule.Status)

	code, _ = admin.do(http.MethodDelete, "/clients/"+client.ID, nil)
	assert.Equal(t, http.StatusBadRequest, code, "a client with meets cannot be deleted")

	var started entity
	admin.data(http.MethodPost, "/schedules/"+schedule.ID+"/start", nil, http.StatusOK, &started)
	assert.Equal(t, "ongoing", started.Status)

	admin.data(http.MethodPost, "/schedules/"+schedule.ID+"/cancel", nil, http.StatusOK, nil)

	code, _ = admin.do(http.MethodPost, "/schedules/"+schedule.ID+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	admin.data(http.MethodDelete, "/schedules/"+schedule.ID, nil, http.StatusOK, nil)
	admin.data(http.MethodDelete, "/clients/"+client.ID, nil, http.StatusOK, nil)
}

func TestTenantIsolation(t *testing.T) {
	first, firstID := newTenant(t)
	second, _ := newTenant(t)

	var client entity
	first.data(http.MethodPost, "/clients", map[string]string{
		"username": "Globex", "email": uniqueEmail("globex"), "phoneNumber": "555-0101",
	}, http.StatusCreated, &client)

	code, _ := second.do(http.MethodGet, "/clients/"+client.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = second.do(http.MethodDelete, "/clients/"+client.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = second.do(http.MethodGet, "/users/"+firstID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = second.do(http.MethodGet, "/users/ffffffffffffffffffffffff", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAuditTrail(t *testing.T) {
	admin, _ := newTenant(t)

	admin.data(http.MethodPost, "/meeting-types", map[string]string{"title": "Audit check"}, http.StatusCreated, nil)

	code, raw := admin.do(http.MethodGet, "/logs?module=MEETING_TYPE&action=CREATE", nil)
	require.Equal(t, http.StatusOK, code, string(raw))
	assert.Contains(t, string(raw), "Audit check")

	code, _ = admin.do(http.MethodGet, "/logs/statistics", nil)
	assert.Equal(t, http.StatusOK, code)
}
