package core

import "github.com/dkeye/voicepanel/internal/domain"

type fakeDirectory struct {
	users    map[domain.UserID]*domain.User
	ssrcs    map[domain.UserID]domain.SSRC
	channels map[domain.ChannelID][]domain.UserID
	lookups  int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users:    make(map[domain.UserID]*domain.User),
		ssrcs:    make(map[domain.UserID]domain.SSRC),
		channels: make(map[domain.ChannelID][]domain.UserID),
	}
}

func (f *fakeDirectory) addUser(id domain.UserID, name string) {
	f.users[id] = &domain.User{ID: id, Username: name}
}

func (f *fakeDirectory) UsersInChannel(ch domain.ChannelID) []domain.UserID {
	return f.channels[ch]
}

func (f *fakeDirectory) User(id domain.UserID) (*domain.User, bool) {
	f.lookups++
	u, ok := f.users[id]
	return u, ok
}

func (f *fakeDirectory) SSRCOf(id domain.UserID) (domain.SSRC, bool) {
	s, ok := f.ssrcs[id]
	return s, ok
}

type fakeLevels struct {
	capture float64
	levels  map[domain.SSRC]float64
}

func (f *fakeLevels) CaptureLevel() float64 { return f.capture }

func (f *fakeLevels) SSRCLevel(ssrc domain.SSRC) (float64, bool) {
	l, ok := f.levels[ssrc]
	return l, ok
}
