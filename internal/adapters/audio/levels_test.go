package audio

import (
	"testing"
	"time"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/pion/rtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const audioLevelExtID = 1

func levelPacket(t *testing.T, ssrc uint32, dbov uint8) *rtp.Packet {
	t.Helper()
	raw, err := rtp.AudioLevelExtension{Level: dbov, Voice: true}.Marshal()
	require.NoError(t, err)
	pkt := &rtp.Packet{Header: rtp.Header{Version: 2, SSRC: ssrc, PayloadType: 111}}
	require.NoError(t, pkt.SetExtension(audioLevelExtID, raw))
	return pkt
}

func TestObserveRTP(t *testing.T) {
	tr := NewLevelTracker(time.Second)

	require.NoError(t, tr.ObserveRTP(levelPacket(t, 55, 0), audioLevelExtID))
	level, ok := tr.SSRCLevel(55)
	assert.True(t, ok)
	assert.Equal(t, 1.0, level)

	require.NoError(t, tr.ObserveRTP(levelPacket(t, 55, 30), audioLevelExtID))
	level, _ = tr.SSRCLevel(55)
	assert.InDelta(t, 0.5, level, 1e-9)
}

func TestObserveRTPWithoutExtension(t *testing.T) {
	tr := NewLevelTracker(time.Second)
	pkt := &rtp.Packet{Header: rtp.Header{Version: 2, SSRC: 9}}
	assert.ErrorIs(t, tr.ObserveRTP(pkt, audioLevelExtID), ErrNoAudioLevel)

	_, ok := tr.SSRCLevel(9)
	assert.False(t, ok)
}

func TestStaleStreamReadsSilent(t *testing.T) {
	now := time.Unix(1000, 0)
	tr := NewLevelTracker(100 * time.Millisecond)
	tr.now = func() time.Time { return now }

	tr.SetSSRCLevel(7, 0.8)
	now = now.Add(50 * time.Millisecond)
	level, ok := tr.SSRCLevel(7)
	assert.True(t, ok)
	assert.Equal(t, 0.8, level)

	now = now.Add(time.Second)
	level, ok = tr.SSRCLevel(7)
	assert.True(t, ok)
	assert.Zero(t, level)

	tr.Forget(7)
	_, ok = tr.SSRCLevel(domain.SSRC(7))
	assert.False(t, ok)
}

func TestLevelFromDBov(t *testing.T) {
	assert.Equal(t, 1.0, LevelFromDBov(0))
	assert.InDelta(t, 0.5, LevelFromDBov(30), 1e-9)
	assert.Zero(t, LevelFromDBov(60))
	assert.Zero(t, LevelFromDBov(127))
}

func TestObservePCM(t *testing.T) {
	tr := NewLevelTracker(0)

	tr.ObservePCM(make([]int16, 480))
	assert.Zero(t, tr.CaptureLevel())

	loud := make([]int16, 480)
	for i := range loud {
		loud[i] = 32767
		if i%2 == 1 {
			loud[i] = -32767
		}
	}
	tr.ObservePCM(loud)
	assert.InDelta(t, 1.0, tr.CaptureLevel(), 1e-6)

	tr.ObservePCM(nil)
	assert.Zero(t, tr.CaptureLevel())
}
