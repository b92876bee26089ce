package core

import (
	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	MinVolume     = 0.0
	MaxVolume     = 200.0
	DefaultVolume = 100.0
)

// Entry is one participant's row: display state plus two outbound intent
// signals. It holds no authority over mute or volume, it only reports them.
type Entry struct {
	id     domain.UserID
	name   string
	avatar string

	muted  bool
	volume float64
	meter  float64

	muteChanged   Signal[bool]
	volumeChanged Signal[float64]
}

// NewEntry resolves display metadata with a single lookup. A directory miss
// yields the placeholder name and no avatar.
func NewEntry(id domain.UserID, dir SessionDirectory) *Entry {
	e := &Entry{id: id, name: domain.UnknownUsername, volume: DefaultVolume}
	if dir == nil {
		return e
	}
	if u, ok := dir.User(id); ok && u != nil {
		e.name = u.Username
		e.avatar = u.AvatarURL("png", domain.AvatarSize)
	} else {
		log.Debug().Str("module", "core.entry").Stringer("user", id).Msg("user lookup miss, using placeholder")
	}
	return e
}

func (e *Entry) ID() domain.UserID { return e.id }
func (e *Entry) Name() string      { return e.name }
func (e *Entry) AvatarURL() string { return e.avatar }
func (e *Entry) Muted() bool       { return e.muted }
func (e *Entry) Volume() float64   { return e.volume }
func (e *Entry) Meter() float64    { return e.meter }

// MuteChanged fires with the new value each time the user flips the toggle.
func (e *Entry) MuteChanged() *Signal[bool] { return &e.muteChanged }

// VolumeChanged fires with the new value each time the user moves the slider.
func (e *Entry) VolumeChanged() *Signal[float64] { return &e.volumeChanged }

// SetVolumeMeter updates the rendered level only.
func (e *Entry) SetVolumeMeter(frac float64) {
	e.meter = clamp(frac, 0, 1)
}

// SetMuted applies user input to the mute toggle.
// Setting the current value is not a flip and emits nothing.
func (e *Entry) SetMuted(muted bool) {
	if e.muted == muted {
		return
	}
	e.muted = muted
	e.muteChanged.Emit(muted)
}

func (e *Entry) ToggleMute() { e.SetMuted(!e.muted) }

// SetVolume applies user input to the volume slider, clamped to [0,200].
func (e *Entry) SetVolume(v float64) {
	v = clamp(v, MinVolume, MaxVolume)
	if e.volume == v {
		return
	}
	e.volume = v
	e.volumeChanged.Emit(v)
}

func (e *Entry) release() {
	e.muteChanged.DisconnectAll()
	e.volumeChanged.DisconnectAll()
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v != v: // NaN
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
