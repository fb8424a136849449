package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-console/internal/domain"
)

func adminActor() Actor {
	return Actor{ID: 1, Email: "adm@x.com", UserType: domain.RoleAdmin, IsAdmin: true}
}

func TestEventQueryRequiresAdmin(t *testing.T) {
	f := newFixture(t)

	var fe *ForbiddenError
	_, err := f.eventSvc.Query(Actor{UserType: domain.RoleRegular}, EventQuery{})
	assert.True(t, errors.As(err, &fe))
	_, err = f.eventSvc.ExportCSV(Actor{UserType: domain.RoleRegular}, EventQuery{})
	assert.True(t, errors.As(err, &fe))
}

func TestEventFilters(t *testing.T) {
	f := newFixture(t)
	f.eventSvc.Record("a@x.com", "login")
	f.eventSvc.Record("a@x.com", "failed_login")
	f.eventSvc.Record("b@x.com", "failed_login")
	f.eventSvc.Record("b@x.com", "create_user:c@x.com")

	all, err := f.eventSvc.Query(adminActor(), EventQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// email is an exact match
	byEmail, err := f.eventSvc.Query(adminActor(), EventQuery{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)

	// event is a substring match, so "login" also hits "failed_login"
	byEvent, err := f.eventSvc.Query(adminActor(), EventQuery{Event: "login"})
	require.NoError(t, err)
	assert.Len(t, byEvent, 3)

	// filters combine conjunctively
	both, err := f.eventSvc.Query(adminActor(), EventQuery{Email: "b@x.com", Event: "failed_login"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "b@x.com", both[0].Email)
}

func TestEventQueryOrderAndPaging(t *testing.T) {
	f := newFixture(t)
	f.eventSvc.Record("a@x.com", "first")
	f.eventSvc.Record("a@x.com", "second")
	f.eventSvc.Record("a@x.com", "third")

	events, err := f.eventSvc.Query(adminActor(), EventQuery{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	// newest first, id breaks same-second ties
	assert.Equal(t, "third", events[0].Event)
	assert.Equal(t, "first", events[2].Event)

	page, err := f.eventSvc.Query(adminActor(), EventQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Event)
}

func TestEventQueryBadTimestamp(t *testing.T) {
	f := newFixture(t)

	var ve *ValidationError
	_, err := f.eventSvc.Query(adminActor(), EventQuery{From: "not-a-date"})
	assert.True(t, errors.As(err, &ve))
	_, err = f.eventSvc.Query(adminActor(), EventQuery{To: "also bad"})
	assert.True(t, errors.As(err, &ve))
}

func TestEventExportCSV(t *testing.T) {
	f := newFixture(t)
	f.eventSvc.Record("a@x.com", "login")
	f.eventSvc.Record("b@x.com", "failed_login")

	csv, err := f.eventSvc.ExportCSV(adminActor(), EventQuery{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,email,event,event_time", lines[0])
	assert.Contains(t, lines[1], `"failed_login"`)
	assert.Contains(t, lines[2], `"a@x.com"`)
}
