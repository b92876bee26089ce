package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateEmitsRawValueAndSetsTick(t *testing.T) {
	p := NewControlPanel()
	var got []float64
	p.Gate().Connect(func(v float64) { got = append(got, v) })

	p.SetGate(37)

	assert.Equal(t, []float64{37.0}, got)
	assert.InDelta(t, 0.37, p.Capture().Tick(), 1e-9)
	assert.Equal(t, 37.0, p.State().CaptureGateThreshold)
}

func TestGateIsClamped(t *testing.T) {
	p := NewControlPanel()
	var got []float64
	p.Gate().Connect(func(v float64) { got = append(got, v) })

	p.SetGate(140)
	p.SetGate(100)

	assert.Equal(t, []float64{MaxGate}, got)
	assert.Equal(t, 1.0, p.Capture().Tick())
}

func TestMuteAndDeafenEmitOncePerChange(t *testing.T) {
	p := NewControlPanel()
	var mutes, deafens []bool
	p.Mute().Connect(func(v bool) { mutes = append(mutes, v) })
	p.Deafen().Connect(func(v bool) { deafens = append(deafens, v) })

	p.SetMuted(true)
	p.SetMuted(true)
	p.SetDeafened(true)
	p.SetMuted(false)

	assert.Equal(t, []bool{true, false}, mutes)
	assert.Equal(t, []bool{true}, deafens)
	assert.Equal(t, ControlState{ChannelMuted: false, ChannelDeafened: true}, p.State())
}

func TestControlsAreIndependent(t *testing.T) {
	p := NewControlPanel()
	fired := 0
	p.Mute().Connect(func(bool) { fired++ })
	p.Deafen().Connect(func(bool) { fired++ })

	p.SetGate(10)
	assert.Zero(t, fired)
}
