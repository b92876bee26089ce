package audio

import (
	"sync"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/rs/zerolog/log"
)

// UserMix is the requested playback state of one participant.
type UserMix struct {
	Muted  bool
	Volume float64
}

// Mixer records control intent for the audio engine. It does not mix audio
// itself; the engine polls it.
type Mixer struct {
	mu       sync.RWMutex
	muted    bool
	deafened bool
	gate     float64
	users    map[domain.UserID]UserMix
}

func NewMixer() *Mixer {
	return &Mixer{users: make(map[domain.UserID]UserMix)}
}

func (m *Mixer) SetChannelMute(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
	log.Info().Str("module", "audio.mixer").Bool("muted", muted).Msg("capture mute")
}

func (m *Mixer) SetChannelDeafen(deafened bool) {
	m.mu.Lock()
	m.deafened = deafened
	m.mu.Unlock()
	log.Info().Str("module", "audio.mixer").Bool("deafened", deafened).Msg("playback deafen")
}

// SetCaptureGate takes the threshold on the 0-100 scale.
func (m *Mixer) SetCaptureGate(threshold float64) {
	m.mu.Lock()
	m.gate = threshold
	m.mu.Unlock()
	log.Debug().Str("module", "audio.mixer").Float64("threshold", threshold).Msg("capture gate")
}

func (m *Mixer) SetUserMute(id domain.UserID, muted bool) {
	m.mu.Lock()
	u := m.userLocked(id)
	u.Muted = muted
	m.users[id] = u
	m.mu.Unlock()
	log.Info().Str("module", "audio.mixer").Stringer("user", id).Bool("muted", muted).Msg("user mute")
}

func (m *Mixer) SetUserVolume(id domain.UserID, volume float64) {
	m.mu.Lock()
	u := m.userLocked(id)
	u.Volume = volume
	m.users[id] = u
	m.mu.Unlock()
	log.Debug().Str("module", "audio.mixer").Stringer("user", id).Float64("volume", volume).Msg("user volume")
}

// ForgetUser drops the user's mute and volume so a rejoin starts from the
// defaults, matching the fresh roster row.
func (m *Mixer) ForgetUser(id domain.UserID) {
	m.mu.Lock()
	delete(m.users, id)
	m.mu.Unlock()
	log.Debug().Str("module", "audio.mixer").Stringer("user", id).Msg("user forgotten")
}

func (m *Mixer) User(id domain.UserID) UserMix {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.userLocked(id)
}

// Gain is the linear playback gain for a user: 0 when muted or deafened,
// volume/100 otherwise.
func (m *Mixer) Gain(id domain.UserID) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u := m.userLocked(id)
	if m.deafened || u.Muted {
		return 0
	}
	return u.Volume / 100
}

// PassCapture reports whether a capture frame at level (0-1) should be sent.
func (m *Mixer) PassCapture(level float64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.muted {
		return false
	}
	return level*100 >= m.gate
}

func (m *Mixer) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

func (m *Mixer) Deafened() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deafened
}

func (m *Mixer) userLocked(id domain.UserID) UserMix {
	if u, ok := m.users[id]; ok {
		return u
	}
	return UserMix{Volume: 100}
}
