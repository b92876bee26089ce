package core

import "github.com/dkeye/voicepanel/internal/domain"

// SessionDirectory is the read side of the remote voice session.
// Implementations answer from cached state and must not block on network I/O.
type SessionDirectory interface {
	// UsersInChannel returns the participants currently known in ch.
	UsersInChannel(ch domain.ChannelID) []domain.UserID
	// User resolves display metadata. ok is false for unknown users.
	User(id domain.UserID) (*domain.User, bool)
	// SSRCOf returns the active stream source of a user, if any.
	SSRCOf(id domain.UserID) (domain.SSRC, bool)
}

// EventSource delivers connect/disconnect events in arrival order.
type EventSource interface {
	Events() <-chan domain.VoiceEvent
}

// AudioLevels is the read side of the audio engine. Levels are in [0,1].
type AudioLevels interface {
	CaptureLevel() float64
	SSRCLevel(ssrc domain.SSRC) (float64, bool)
}

// IntentSink receives user-originated control changes.
// It reports intent only; whether a change takes effect is up to the sink.
type IntentSink interface {
	SetChannelMute(muted bool)
	SetChannelDeafen(deafened bool)
	SetCaptureGate(threshold float64)
	SetUserMute(id domain.UserID, muted bool)
	SetUserVolume(id domain.UserID, volume float64)
}

// UserForgetter is implemented by sinks that keep per-user state. ForgetUser
// is called once the user's row is gone, so a rejoin starts from defaults.
type UserForgetter interface {
	ForgetUser(id domain.UserID)
}

// UserMuteChange is emitted when a roster row's mute toggle flips.
type UserMuteChange struct {
	User  domain.UserID
	Muted bool
}

// UserVolumeChange is emitted when a roster row's volume is adjusted.
type UserVolumeChange struct {
	User   domain.UserID
	Volume float64
}
