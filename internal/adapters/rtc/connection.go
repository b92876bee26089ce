package rtc

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/pion/rtp"
	"github.com/pion/sdp/v3"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelObserver consumes RTP packets that carry an audio level extension.
type LevelObserver interface {
	ObserveRTP(pkt *rtp.Packet, extID uint8) error
	Forget(ssrc domain.SSRC)
}

func DefaultWebRTCConfig(stunURL string) webrtc.Configuration {
	if stunURL == "" {
		stunURL = "stun:stun.l.google.com:19302"
	}
	return webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{
			{
				URLs: []string{stunURL},
			},
		},
	}
}

// Connection is a receive-only audio peer connection. Every remote audio
// track is read until it ends and its audio levels are handed to the
// observer.
type Connection struct {
	pc       *webrtc.PeerConnection
	observer LevelObserver
	logger   zerolog.Logger

	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	onICE    func(webrtc.ICECandidateInit)
	onClosed func()
	closed   bool
	closing  bool
	readers  sync.WaitGroup
}

func NewConnection(cfg webrtc.Configuration, observer LevelObserver) (*Connection, error) {
	m := &webrtc.MediaEngine{}
	if err := m.RegisterDefaultCodecs(); err != nil {
		return nil, fmt.Errorf("register codecs: %w", err)
	}
	if err := m.RegisterHeaderExtension(webrtc.RTPHeaderExtensionCapability{URI: sdp.AudioLevelURI}, webrtc.RTPCodecTypeAudio); err != nil {
		return nil, fmt.Errorf("register audio level extension: %w", err)
	}
	api := webrtc.NewAPI(webrtc.WithMediaEngine(m))
	pc, err := api.NewPeerConnection(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := pc.AddTransceiverFromKind(webrtc.RTPCodecTypeAudio, webrtc.RTPTransceiverInit{
		Direction: webrtc.RTPTransceiverDirectionRecvonly,
	}); err != nil {
		_ = pc.Close()
		return nil, fmt.Errorf("add transceiver: %w", err)
	}
	return &Connection{
		pc:       pc,
		observer: observer,
		logger:   log.With().Str("module", "rtc").Logger(),
	}, nil
}

func (c *Connection) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.ctx, c.cancel = ctx, cancel
	c.mu.Unlock()

	c.pc.OnICEConnectionStateChange(func(s webrtc.ICEConnectionState) {
		c.logger.Info().Str("ice_state", s.String()).Msg("ICE state")
	})

	c.pc.OnConnectionStateChange(func(s webrtc.PeerConnectionState) {
		c.logger.Info().Str("peer_connection_state", s.String()).Msg("Peer state")
		if s == webrtc.PeerConnectionStateFailed ||
			s == webrtc.PeerConnectionStateClosed {
			c.fireClosed()
		}
	})

	c.pc.OnICECandidate(func(cand *webrtc.ICECandidate) {
		c.mu.Lock()
		fn := c.onICE
		c.mu.Unlock()
		if cand != nil && fn != nil {
			fn(cand.ToJSON())
		}
	})

	c.pc.OnTrack(func(track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver) {
		c.logger.Info().
			Str("kind", track.Kind().String()).
			Str("track_id", track.ID()).
			Uint32("ssrc", uint32(track.SSRC())).
			Msg("OnTrack received")
		if track.Kind() != webrtc.RTPCodecTypeAudio {
			return
		}
		extID, ok := audioLevelExtID(receiver.GetParameters().HeaderExtensions)
		if !ok {
			c.logger.Warn().Uint32("ssrc", uint32(track.SSRC())).Msg("audio level extension not negotiated")
			return
		}
		if !c.goReader(func() { readLevels(ctx, track, extID, c.observer, c.logger) }) {
			c.logger.Debug().Uint32("ssrc", uint32(track.SSRC())).Msg("track after close, not read")
		}
	})

	return nil
}

// CreateOffer sets and returns the local offer once ICE gathering is done.
func (c *Connection) CreateOffer() (*webrtc.SessionDescription, error) {
	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return nil, err
	}
	gatherComplete := webrtc.GatheringCompletePromise(c.pc)
	if err := c.pc.SetLocalDescription(offer); err != nil {
		return nil, err
	}
	<-gatherComplete
	return c.pc.LocalDescription(), nil
}

func (c *Connection) ApplyAnswer(answer webrtc.SessionDescription) error {
	return c.pc.SetRemoteDescription(answer)
}

func (c *Connection) AddICECandidate(ci webrtc.ICECandidateInit) error {
	return c.pc.AddICECandidate(ci)
}

func (c *Connection) OnICECandidate(fn func(webrtc.ICECandidateInit)) {
	c.mu.Lock()
	c.onICE = fn
	c.mu.Unlock()
}

// OnClosed sets a callback fired once when the peer connection goes away.
func (c *Connection) OnClosed(fn func()) {
	c.mu.Lock()
	c.onClosed = fn
	c.mu.Unlock()
}

// goReader runs fn as a tracked reader unless Close has begun.
func (c *Connection) goReader(fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closing {
		return false
	}
	c.readers.Add(1)
	go func() {
		defer c.readers.Done()
		fn()
	}()
	return true
}

func (c *Connection) Close() {
	c.mu.Lock()
	c.closing = true
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if err := c.pc.Close(); err != nil {
		c.logger.Error().Err(err).Msg("close error")
	} else {
		c.logger.Info().Msg("closed")
	}
	c.readers.Wait()
	c.fireClosed()
}

func (c *Connection) fireClosed() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	fn := c.onClosed
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func audioLevelExtID(exts []webrtc.RTPHeaderExtensionParameter) (uint8, bool) {
	for _, e := range exts {
		if e.URI == sdp.AudioLevelURI {
			return uint8(e.ID), true
		}
	}
	return 0, false
}
