package rtc

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dkeye/voicepanel/internal/adapters/audio"
	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/pion/interceptor"
	"github.com/pion/rtp"
	"github.com/pion/sdp/v3"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedTrack struct {
	packets []*rtp.Packet
	onDrain func()
}

func (s *scriptedTrack) ReadRTP() (*rtp.Packet, interceptor.Attributes, error) {
	if len(s.packets) == 0 {
		if s.onDrain != nil {
			s.onDrain()
		}
		return nil, nil, io.EOF
	}
	p := s.packets[0]
	s.packets = s.packets[1:]
	return p, nil, nil
}

func packet(t *testing.T, ssrc uint32, dbov uint8) *rtp.Packet {
	t.Helper()
	raw, err := rtp.AudioLevelExtension{Level: dbov}.Marshal()
	require.NoError(t, err)
	p := &rtp.Packet{Header: rtp.Header{Version: 2, SSRC: ssrc}}
	require.NoError(t, p.SetExtension(3, raw))
	return p
}

func TestReadLevelsFeedsTrackerAndForgets(t *testing.T) {
	tracker := audio.NewLevelTracker(time.Minute)
	var seen float64
	track := &scriptedTrack{
		packets: []*rtp.Packet{packet(t, 55, 60), packet(t, 55, 30)},
		onDrain: func() { seen, _ = tracker.SSRCLevel(55) },
	}

	readLevels(context.Background(), track, 3, tracker, zerolog.Nop())

	assert.InDelta(t, 0.5, seen, 1e-9)
	_, ok := tracker.SSRCLevel(domain.SSRC(55))
	assert.False(t, ok, "ended stream is forgotten")
}

func TestReadLevelsStopsOnCancel(t *testing.T) {
	tracker := audio.NewLevelTracker(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	track := &scriptedTrack{packets: []*rtp.Packet{packet(t, 1, 0)}}
	readLevels(ctx, track, 3, tracker, zerolog.Nop())

	assert.Len(t, track.packets, 1)
}

func TestAudioLevelExtID(t *testing.T) {
	_, ok := audioLevelExtID(nil)
	assert.False(t, ok)

	id, ok := audioLevelExtID([]webrtc.RTPHeaderExtensionParameter{
		{URI: "urn:ietf:params:rtp-hdrext:sdes:mid", ID: 1},
		{URI: sdp.AudioLevelURI, ID: 4},
	})
	assert.True(t, ok)
	assert.Equal(t, uint8(4), id)
}

func TestDefaultWebRTCConfig(t *testing.T) {
	assert.Equal(t, []string{"stun:stun.l.google.com:19302"}, DefaultWebRTCConfig("").ICEServers[0].URLs)
	assert.Equal(t, []string{"stun:example.org:3478"}, DefaultWebRTCConfig("stun:example.org:3478").ICEServers[0].URLs)
}

func TestNewConnectionOffersRecvOnlyAudio(t *testing.T) {
	c, err := NewConnection(webrtc.Configuration{}, audio.NewLevelTracker(0))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Start(context.Background()))
	var closed atomic.Int32
	c.OnClosed(func() { closed.Add(1) })

	offer, err := c.CreateOffer()
	require.NoError(t, err)
	assert.Contains(t, offer.SDP, "m=audio")
	assert.Contains(t, offer.SDP, "a=recvonly")
	assert.Contains(t, offer.SDP, "ssrc-audio-level")

	c.Close()
	assert.Eventually(t, func() bool { return closed.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestCloseWaitsForReadersAndRefusesNewOnes(t *testing.T) {
	c, err := NewConnection(webrtc.Configuration{}, audio.NewLevelTracker(0))
	require.NoError(t, err)
	require.NoError(t, c.Start(context.Background()))

	release := make(chan struct{})
	var finished atomic.Bool
	require.True(t, c.goReader(func() {
		<-release
		finished.Store(true)
	}))

	done := make(chan struct{})
	go func() {
		c.Close()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Close returned while a reader was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.True(t, finished.Load())

	ran := false
	assert.False(t, c.goReader(func() { ran = true }))
	assert.False(t, ran)
}
