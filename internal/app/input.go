package app

import (
	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/rs/zerolog/log"
)

// Input is a user interaction with the window. Inputs are applied on the
// window goroutine in submission order.
type Input interface {
	apply(w *Window)
}

// ToggleUserMute flips the mute toggle of one roster row.
type ToggleUserMute struct{ User domain.UserID }

// SetUserMute sets the mute toggle of one roster row.
type SetUserMute struct {
	User  domain.UserID
	Muted bool
}

// SetUserVolume moves the volume slider of one roster row.
type SetUserVolume struct {
	User   domain.UserID
	Volume float64
}

// AdjustUserVolume moves the volume slider of one roster row by Delta.
type AdjustUserVolume struct {
	User  domain.UserID
	Delta float64
}

type SetChannelMute struct{ Muted bool }

type SetChannelDeafen struct{ Deafened bool }

type ToggleChannelMute struct{}

type ToggleChannelDeafen struct{}

// SetCaptureGate moves the gate slider, 0-100.
type SetCaptureGate struct{ Threshold float64 }

type AdjustCaptureGate struct{ Delta float64 }

func (in ToggleUserMute) apply(w *Window) {
	if e, ok := w.roster.Get(in.User); ok {
		e.ToggleMute()
		return
	}
	logMissingRow(in.User)
}

func (in SetUserMute) apply(w *Window) {
	if e, ok := w.roster.Get(in.User); ok {
		e.SetMuted(in.Muted)
		return
	}
	logMissingRow(in.User)
}

func (in SetUserVolume) apply(w *Window) {
	if e, ok := w.roster.Get(in.User); ok {
		e.SetVolume(in.Volume)
		return
	}
	logMissingRow(in.User)
}

func (in AdjustUserVolume) apply(w *Window) {
	if e, ok := w.roster.Get(in.User); ok {
		e.SetVolume(e.Volume() + in.Delta)
		return
	}
	logMissingRow(in.User)
}

func (in SetChannelMute) apply(w *Window)   { w.panel.SetMuted(in.Muted) }
func (in SetChannelDeafen) apply(w *Window) { w.panel.SetDeafened(in.Deafened) }
func (ToggleChannelMute) apply(w *Window)   { w.panel.SetMuted(!w.panel.State().ChannelMuted) }
func (ToggleChannelDeafen) apply(w *Window) { w.panel.SetDeafened(!w.panel.State().ChannelDeafened) }
func (in SetCaptureGate) apply(w *Window)   { w.panel.SetGate(in.Threshold) }
func (in AdjustCaptureGate) apply(w *Window) {
	w.panel.SetGate(w.panel.State().CaptureGateThreshold + in.Delta)
}

// input may race with a disconnect, the row is simply gone
func logMissingRow(id domain.UserID) {
	log.Debug().Str("module", "app.window").Stringer("user", id).Msg("input for missing row dropped")
}
