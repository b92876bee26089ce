package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/pion/rtp"
)

var ErrNoAudioLevel = errors.New("packet carries no audio level")

const (
	// levels at or below this many dB under full scale render as silence
	meterFloorDB = 60.0
	// DefaultStaleAfter is how long a stream may go without packets before
	// it reads as silent.
	DefaultStaleAfter = 500 * time.Millisecond
)

type sample struct {
	level float64
	at    time.Time
}

// LevelTracker keeps the last observed level per stream source and for the
// local capture. It is safe for concurrent use: RTP readers write, the window
// loop reads.
type LevelTracker struct {
	mu         sync.RWMutex
	streams    map[domain.SSRC]sample
	capture    float64
	staleAfter time.Duration
	now        func() time.Time
}

func NewLevelTracker(staleAfter time.Duration) *LevelTracker {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &LevelTracker{
		streams:    make(map[domain.SSRC]sample),
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// CaptureLevel returns the last local capture level.
func (t *LevelTracker) CaptureLevel() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.capture
}

// SSRCLevel returns the last level of a stream. Streams that went quiet
// read as 0; streams never seen are reported as missing.
func (t *LevelTracker) SSRCLevel(ssrc domain.SSRC) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.streams[ssrc]
	if !ok {
		return 0, false
	}
	if t.now().Sub(s.at) > t.staleAfter {
		return 0, true
	}
	return s.level, true
}

// ObserveRTP records the RFC 6464 audio level carried in the packet's header
// extension extID.
func (t *LevelTracker) ObserveRTP(pkt *rtp.Packet, extID uint8) error {
	raw := pkt.GetExtension(extID)
	if raw == nil {
		return ErrNoAudioLevel
	}
	var ext rtp.AudioLevelExtension
	if err := ext.Unmarshal(raw); err != nil {
		return err
	}
	t.SetSSRCLevel(domain.SSRC(pkt.SSRC), LevelFromDBov(ext.Level))
	return nil
}

func (t *LevelTracker) SetSSRCLevel(ssrc domain.SSRC, level float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.streams[ssrc] = sample{level: clamp01(level), at: t.now()}
}

// ObservePCM sets the capture level from one frame of 16-bit samples.
func (t *LevelTracker) ObservePCM(frame []int16) {
	level := LevelFromPCM(frame)
	t.mu.Lock()
	t.capture = level
	t.mu.Unlock()
}

// Forget drops a stream, e.g. when its track ends.
func (t *LevelTracker) Forget(ssrc domain.SSRC) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.streams, ssrc)
}

// LevelFromDBov maps -dBov (0 loudest, 127 silent) to a meter fraction.
func LevelFromDBov(dbov uint8) float64 {
	return clamp01(1 - float64(dbov)/meterFloorDB)
}

// LevelFromPCM maps the RMS of a frame to a meter fraction on the same
// scale as LevelFromDBov.
func LevelFromPCM(frame []int16) float64 {
	if len(frame) == 0 {
		return 0
	}
	var sum float64
	for _, s := range frame {
		v := float64(s) / math.MaxInt16
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(len(frame)))
	if rms == 0 {
		return 0
	}
	db := -20 * math.Log10(rms)
	return clamp01(1 - db/meterFloorDB)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
