package core

const (
	MinGate = 0.0
	MaxGate = 100.0
)

// ControlState is the channel-wide control state of the panel.
type ControlState struct {
	ChannelMuted         bool    `json:"channel_muted"`
	ChannelDeafened      bool    `json:"channel_deafened"`
	CaptureGateThreshold float64 `json:"capture_gate_threshold"`
}

// CaptureMeter is the local capture indicator: a level bar plus a tick
// marker, both in [0,1].
type CaptureMeter struct {
	level float64
	tick  float64
}

func (c *CaptureMeter) SetVolume(level float64) { c.level = clamp(level, 0, 1) }
func (c *CaptureMeter) SetTick(t float64)       { c.tick = clamp(t, 0, 1) }
func (c *CaptureMeter) Level() float64          { return c.level }
func (c *CaptureMeter) Tick() float64           { return c.tick }

// ControlPanel holds channel mute, deafen and the capture gate. Each user
// change emits exactly one signal with the new value.
type ControlPanel struct {
	state   ControlState
	capture CaptureMeter

	mute   Signal[bool]
	deafen Signal[bool]
	gate   Signal[float64]
}

func NewControlPanel() *ControlPanel {
	return &ControlPanel{}
}

func (p *ControlPanel) State() ControlState    { return p.state }
func (p *ControlPanel) Capture() *CaptureMeter { return &p.capture }
func (p *ControlPanel) Mute() *Signal[bool]    { return &p.mute }
func (p *ControlPanel) Deafen() *Signal[bool]  { return &p.deafen }
func (p *ControlPanel) Gate() *Signal[float64] { return &p.gate }

func (p *ControlPanel) SetMuted(muted bool) {
	if p.state.ChannelMuted == muted {
		return
	}
	p.state.ChannelMuted = muted
	p.mute.Emit(muted)
}

func (p *ControlPanel) SetDeafened(deafened bool) {
	if p.state.ChannelDeafened == deafened {
		return
	}
	p.state.ChannelDeafened = deafened
	p.deafen.Emit(deafened)
}

// SetGate emits the raw 0-100 threshold and moves the capture tick marker
// to threshold/100.
func (p *ControlPanel) SetGate(threshold float64) {
	threshold = clamp(threshold, MinGate, MaxGate)
	if p.state.CaptureGateThreshold == threshold {
		return
	}
	p.state.CaptureGateThreshold = threshold
	p.gate.Emit(threshold)
	p.capture.SetTick(threshold / 100.0)
}
