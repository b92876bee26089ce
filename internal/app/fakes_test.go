package app

import (
	"sync"

	"github.com/dkeye/voicepanel/internal/domain"
)

type fakeSession struct {
	mu       sync.Mutex
	users    map[domain.UserID]*domain.User
	ssrcs    map[domain.UserID]domain.SSRC
	channels map[domain.ChannelID][]domain.UserID
	events   chan domain.VoiceEvent
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		users:    make(map[domain.UserID]*domain.User),
		ssrcs:    make(map[domain.UserID]domain.SSRC),
		channels: make(map[domain.ChannelID][]domain.UserID),
		events:   make(chan domain.VoiceEvent, 16),
	}
}

func (f *fakeSession) UsersInChannel(ch domain.ChannelID) []domain.UserID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.channels[ch]
}

func (f *fakeSession) User(id domain.UserID) (*domain.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	return u, ok
}

func (f *fakeSession) SSRCOf(id domain.UserID) (domain.SSRC, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.ssrcs[id]
	return s, ok
}

func (f *fakeSession) Events() <-chan domain.VoiceEvent { return f.events }

type fakeLevels struct {
	mu      sync.Mutex
	capture float64
	levels  map[domain.SSRC]float64
}

func (f *fakeLevels) CaptureLevel() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.capture
}

func (f *fakeLevels) SSRCLevel(ssrc domain.SSRC) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.levels[ssrc]
	return l, ok
}

// forgettingSink records intents and forgotten users.
type forgettingSink struct {
	muted     map[domain.UserID]bool
	forgotten []domain.UserID
}

func (s *forgettingSink) SetChannelMute(bool)                      {}
func (s *forgettingSink) SetChannelDeafen(bool)                    {}
func (s *forgettingSink) SetCaptureGate(float64)                   {}
func (s *forgettingSink) SetUserVolume(domain.UserID, float64)     {}
func (s *forgettingSink) SetUserMute(id domain.UserID, muted bool) { s.muted[id] = muted }
func (s *forgettingSink) ForgetUser(id domain.UserID) {
	delete(s.muted, id)
	s.forgotten = append(s.forgotten, id)
}
