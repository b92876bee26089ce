package core

import (
	"testing"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bound domain.ChannelID = 900

func newTestRoster() (*Roster, *fakeDirectory) {
	dir := newFakeDirectory()
	dir.addUser(101, "alice")
	dir.addUser(202, "bob")
	dir.addUser(303, "carol")
	return NewRoster(bound, dir), dir
}

func TestOnConnectIsIdempotent(t *testing.T) {
	r, _ := newTestRoster()
	assert.True(t, r.OnConnect(101, bound))
	assert.False(t, r.OnConnect(101, bound))
	assert.Equal(t, []domain.UserID{101}, r.IDs())
}

func TestOnDisconnectMissingIsNoop(t *testing.T) {
	r, _ := newTestRoster()
	r.Seed([]domain.UserID{101})

	assert.NotPanics(t, func() {
		assert.False(t, r.OnDisconnect(202, bound))
	})
	assert.Equal(t, []domain.UserID{101}, r.IDs())
}

func TestOtherChannelIsIgnored(t *testing.T) {
	r, _ := newTestRoster()
	r.Seed([]domain.UserID{101})

	assert.False(t, r.OnConnect(202, bound+1))
	assert.False(t, r.OnDisconnect(101, bound+1))
	assert.Equal(t, []domain.UserID{101}, r.IDs())
}

func TestSeedThenForEachVisitsEachOnce(t *testing.T) {
	r, _ := newTestRoster()
	r.Seed([]domain.UserID{101, 202, 303})

	seen := map[domain.UserID]int{}
	r.ForEach(func(e *Entry) { seen[e.ID()]++ })
	assert.Equal(t, map[domain.UserID]int{101: 1, 202: 1, 303: 1}, seen)
}

func TestSeedWithUnknownUserDoesNotFail(t *testing.T) {
	r, _ := newTestRoster()
	r.Seed([]domain.UserID{101, 404})

	e, ok := r.Get(404)
	require.True(t, ok)
	assert.Equal(t, domain.UnknownUsername, e.Name())
	assert.Equal(t, 2, r.Len())
}

func TestSeedRacesWithEvents(t *testing.T) {
	r, _ := newTestRoster()
	// connect for 202 delivered before the snapshot that already contains it
	r.OnConnect(202, bound)
	r.Seed([]domain.UserID{101, 202})
	assert.Equal(t, []domain.UserID{101, 202}, r.IDs())
}

func TestRosterScenarioConnectDisconnect(t *testing.T) {
	r, _ := newTestRoster()
	r.Seed([]domain.UserID{101, 202})
	assert.Equal(t, 2, r.Len())

	r.OnConnect(303, bound)
	assert.Equal(t, 3, r.Len())

	r.OnDisconnect(202, bound)
	assert.Equal(t, []domain.UserID{101, 303}, r.IDs())
}

func TestApplyRoutesEvents(t *testing.T) {
	r, _ := newTestRoster()
	assert.True(t, r.Apply(domain.VoiceEvent{Kind: domain.UserConnected, User: 101, Channel: bound}))
	assert.True(t, r.Apply(domain.VoiceEvent{Kind: domain.UserDisconnected, User: 101, Channel: bound}))
	assert.False(t, r.Apply(domain.VoiceEvent{Kind: domain.EventKind(42), User: 101, Channel: bound}))
	assert.Zero(t, r.Len())
}

func TestAddedAndRemovedSignals(t *testing.T) {
	r, _ := newTestRoster()
	var added, removed []domain.UserID
	r.Added().Connect(func(e *Entry) { added = append(added, e.ID()) })
	r.Removed().Connect(func(id domain.UserID) { removed = append(removed, id) })

	r.OnConnect(101, bound)
	r.OnConnect(101, bound)
	r.OnDisconnect(101, bound)
	r.OnDisconnect(101, bound)

	assert.Equal(t, []domain.UserID{101}, added)
	assert.Equal(t, []domain.UserID{101}, removed)
}

func TestRemovedEntryIsReleased(t *testing.T) {
	r, _ := newTestRoster()
	r.Seed([]domain.UserID{101})
	e, _ := r.Get(101)
	e.MuteChanged().Connect(func(bool) {})
	e.VolumeChanged().Connect(func(float64) {})

	r.OnDisconnect(101, bound)
	assert.Zero(t, e.MuteChanged().Len())
	assert.Zero(t, e.VolumeChanged().Len())
}

func TestClearReleasesEverything(t *testing.T) {
	r, _ := newTestRoster()
	r.Added().Connect(func(*Entry) {})
	r.Seed([]domain.UserID{101, 202})

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Added().Len())
}
