package core

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultMeterPeriod is the reference refresh cadence of the meters.
const DefaultMeterPeriod = 40 * time.Millisecond

type MeterState int

const (
	MeterIdle MeterState = iota
	MeterRunning
)

func (s MeterState) String() string {
	if s == MeterRunning {
		return "running"
	}
	return "idle"
}

// MeteringLoop refreshes the capture meter and every roster entry's meter on
// a fixed period. It only reads cached levels; any miss skips the entry for
// this tick and leaves its meter at the last known value.
type MeteringLoop struct {
	period  time.Duration
	session SessionDirectory
	audio   AudioLevels
	roster  *Roster
	panel   *ControlPanel

	state   MeterState
	ticker  *time.Ticker
	stopped bool
}

func NewMeteringLoop(period time.Duration, session SessionDirectory, audio AudioLevels, roster *Roster, panel *ControlPanel) *MeteringLoop {
	if period <= 0 {
		period = DefaultMeterPeriod
	}
	return &MeteringLoop{
		period:  period,
		session: session,
		audio:   audio,
		roster:  roster,
		panel:   panel,
	}
}

func (m *MeteringLoop) State() MeterState     { return m.state }
func (m *MeteringLoop) Period() time.Duration { return m.period }

// Start moves Idle to Running and returns the tick channel. Later calls
// return the same channel. After Stop it returns nil.
func (m *MeteringLoop) Start() <-chan time.Time {
	if m.stopped {
		return nil
	}
	if m.state == MeterIdle {
		m.ticker = time.NewTicker(m.period)
		m.state = MeterRunning
		log.Debug().Str("module", "core.metering").Dur("period", m.period).Msg("metering started")
	}
	return m.ticker.C
}

// Stop cancels the ticker. Only the first call has an effect.
func (m *MeteringLoop) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	if m.ticker != nil {
		m.ticker.Stop()
	}
	log.Debug().Str("module", "core.metering").Msg("metering stopped")
}

// Tick performs one refresh.
func (m *MeteringLoop) Tick() {
	if m.audio == nil {
		return
	}
	if m.panel != nil {
		m.panel.Capture().SetVolume(m.audio.CaptureLevel())
	}
	if m.roster == nil || m.session == nil {
		return
	}
	m.roster.ForEach(func(e *Entry) {
		ssrc, ok := m.session.SSRCOf(e.ID())
		if !ok {
			return
		}
		level, ok := m.audio.SSRCLevel(ssrc)
		if !ok {
			return
		}
		e.SetVolumeMeter(level)
	})
}
