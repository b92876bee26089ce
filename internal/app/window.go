package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dkeye/voicepanel/internal/core"
	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrWindowRunning = errors.New("window already running")

const defaultInputBuffer = 64

type Options struct {
	MeterPeriod time.Duration
	InputBuffer int
}

// Window is the live view of one voice channel. It owns the roster, the
// control panel and the metering loop; all of them are only touched from the
// goroutine running Run, which serializes session events, user input and
// metering ticks.
type Window struct {
	roster *core.Roster
	panel  *core.ControlPanel
	meter  *core.MeteringLoop
	events <-chan domain.VoiceEvent
	inputs chan Input
	hub    *Hub
	seq    uint64

	userMute   core.Signal[core.UserMuteChange]
	userVolume core.Signal[core.UserVolumeChange]
	userLeft   core.Signal[domain.UserID]

	logger  zerolog.Logger
	running atomic.Bool
}

// NewWindow seeds the roster from the session snapshot of channel. Signals
// must be connected before Run is called.
func NewWindow(
	channel domain.ChannelID,
	session core.SessionDirectory,
	events core.EventSource,
	audio core.AudioLevels,
	opts Options,
) *Window {
	if opts.InputBuffer <= 0 {
		opts.InputBuffer = defaultInputBuffer
	}
	w := &Window{
		roster: core.NewRoster(channel, session),
		panel:  core.NewControlPanel(),
		inputs: make(chan Input, opts.InputBuffer),
		hub:    NewHub(),
		logger: log.With().Str("module", "app.window").Stringer("channel", channel).Logger(),
	}
	if events != nil {
		w.events = events.Events()
	}
	w.roster.Added().Connect(w.bindEntry)
	w.roster.Removed().Connect(w.userLeft.Emit)
	w.roster.Seed(session.UsersInChannel(channel))
	w.meter = core.NewMeteringLoop(opts.MeterPeriod, session, audio, w.roster, w.panel)
	w.publish(false)
	return w
}

func (w *Window) Channel() domain.ChannelID { return w.roster.Channel() }
func (w *Window) Hub() *Hub                 { return w.hub }

func (w *Window) ChannelMute() *core.Signal[bool]                 { return w.panel.Mute() }
func (w *Window) ChannelDeafen() *core.Signal[bool]               { return w.panel.Deafen() }
func (w *Window) CaptureGate() *core.Signal[float64]              { return w.panel.Gate() }
func (w *Window) UserMute() *core.Signal[core.UserMuteChange]     { return &w.userMute }
func (w *Window) UserVolume() *core.Signal[core.UserVolumeChange] { return &w.userVolume }

// UserLeft fires with the user id after a row has been removed.
func (w *Window) UserLeft() *core.Signal[domain.UserID] { return &w.userLeft }

// Bind forwards every outward signal to sink.
func (w *Window) Bind(sink core.IntentSink) {
	w.panel.Mute().Connect(sink.SetChannelMute)
	w.panel.Deafen().Connect(sink.SetChannelDeafen)
	w.panel.Gate().Connect(sink.SetCaptureGate)
	w.userMute.Connect(func(c core.UserMuteChange) { sink.SetUserMute(c.User, c.Muted) })
	w.userVolume.Connect(func(c core.UserVolumeChange) { sink.SetUserVolume(c.User, c.Volume) })
	if f, ok := sink.(core.UserForgetter); ok {
		w.userLeft.Connect(f.ForgetUser)
	}
}

// Submit queues user input for the window goroutine. It reports false if
// the queue is full.
func (w *Window) Submit(in Input) bool {
	select {
	case w.inputs <- in:
		return true
	default:
		w.logger.Warn().Msg("input queue full, dropping input")
		return false
	}
}

// Run drives the window until ctx is done, then tears it down. A window
// runs at most once.
func (w *Window) Run(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return ErrWindowRunning
	}
	ticks := w.meter.Start()
	defer w.teardown()

	w.logger.Info().Int("entries", w.roster.Len()).Dur("meter_period", w.meter.Period()).Msg("window running")
	if w.panel.Mute().Len() == 0 && w.userMute.Len() == 0 {
		w.logger.Warn().Msg("no intent sink bound, controls only change the display")
	}
	events := w.events
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				w.logger.Warn().Msg("session event stream closed")
				events = nil
				continue
			}
			w.handleEvent(ev)
		case in := <-w.inputs:
			in.apply(w)
			w.publish(false)
		case <-ticks:
			w.meter.Tick()
			w.publish(false)
		}
	}
}

func (w *Window) handleEvent(ev domain.VoiceEvent) {
	if w.roster.Apply(ev) {
		w.publish(false)
		return
	}
	w.logger.Debug().Stringer("kind", ev.Kind).Stringer("user", ev.User).Stringer("event_channel", ev.Channel).Msg("event ignored")
}

func (w *Window) bindEntry(e *core.Entry) {
	id := e.ID()
	e.MuteChanged().Connect(func(muted bool) {
		w.userMute.Emit(core.UserMuteChange{User: id, Muted: muted})
	})
	e.VolumeChanged().Connect(func(volume float64) {
		w.userVolume.Emit(core.UserVolumeChange{User: id, Volume: volume})
	})
}

func (w *Window) publish(closed bool) {
	w.seq++
	w.hub.Publish(takeSnapshot(w.seq, w.roster, w.panel, closed))
}

func (w *Window) teardown() {
	w.meter.Stop()
	w.roster.Clear()
	w.publish(true)
	w.logger.Info().Msg("window closed")
}
