package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotConnected = errors.New("session not connected")
	ErrBackpressure = errors.New("backpressure")
	ErrClosed       = errors.New("session closed")
)

const (
	writeWait   = 5 * time.Second
	sendBuffer  = 32
	eventBuffer = 64

	DefaultReadLimit  = 32768
	DefaultPingPeriod = 54 * time.Second
)

type Config struct {
	URL        string
	ReadLimit  int64
	PingPeriod time.Duration
}

// Client is the websocket leg to the voice signal server. It keeps a cached
// view of channels, users and stream sources that the window reads without
// touching the network, and turns membership messages into voice events.
type Client struct {
	cfg    Config
	token  string
	logger zerolog.Logger

	conn *websocket.Conn
	send chan []byte

	events chan domain.VoiceEvent
	dir    *directory

	mu          sync.RWMutex
	selfMute    bool
	selfDeaf    bool
	onAnswer    func(webrtc.SessionDescription)
	onCandidate func(webrtc.ICECandidateInit)

	closeOnce sync.Once
	closed    chan struct{}
}

func NewClient(cfg Config) *Client {
	if cfg.ReadLimit <= 0 {
		cfg.ReadLimit = DefaultReadLimit
	}
	if cfg.PingPeriod <= 0 {
		cfg.PingPeriod = DefaultPingPeriod
	}
	token := uuid.NewString()
	return &Client{
		cfg:    cfg,
		token:  token,
		logger: log.With().Str("module", "session").Str("token", token).Logger(),
		send:   make(chan []byte, sendBuffer),
		events: make(chan domain.VoiceEvent, eventBuffer),
		dir:    newDirectory(),
		closed: make(chan struct{}),
	}
}

// Token is the client token presented to the server as the "ct" cookie.
func (c *Client) Token() string { return c.token }

// Events implements core.EventSource. The channel is closed when Run returns.
func (c *Client) Events() <-chan domain.VoiceEvent { return c.events }

// Dial opens the websocket. Run must be called afterwards to pump it.
func (c *Client) Dial(ctx context.Context) error {
	header := http.Header{}
	header.Add("Cookie", (&http.Cookie{Name: "ct", Value: c.token}).String())
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.cfg.URL, header)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.cfg.URL, err)
	}
	conn.SetReadLimit(c.cfg.ReadLimit)
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.logger.Info().Str("url", c.cfg.URL).Msg("connected")
	return nil
}

// Run pumps the connection until ctx is done or the server goes away.
func (c *Client) Run(ctx context.Context) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}
	defer close(c.events)
	defer c.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		c.Close()
	}()
	go c.writePump(ctx, conn)
	return c.readPump(ctx, conn)
}

func (c *Client) readPump(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-ctx.Done():
				c.logger.Info().Msg("readPump ctx done")
				return nil
			default:
			}
			c.logger.Error().Err(err).Msg("readPump read error")
			return fmt.Errorf("read: %w", err)
		}
		c.handleMessage(ctx, data)
	}
}

func (c *Client) writePump(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		case data := <-c.send:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("writePump set deadline")
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Error().Err(err).Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.sendJSON(envelope{Type: TypePing}); err != nil {
				c.logger.Warn().Err(err).Msg("ping not queued")
			}
		}
	}
}

// TrySend queues a frame without blocking.
func (c *Client) TrySend(data []byte) error {
	select {
	case <-c.closed:
		return ErrClosed
	default:
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrBackpressure
	}
}

func (c *Client) sendJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return c.TrySend(b)
}

// Close shuts the connection down. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()
		if conn != nil {
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			_ = conn.Close()
		}
		c.logger.Info().Msg("closed")
	})
}

// Join asks the server to place this client in ch.
func (c *Client) Join(ch domain.ChannelID) error {
	c.logger.Info().Stringer("channel", ch).Msg("join")
	return c.sendJSON(joinPayload{Type: TypeJoin, Channel: ch})
}

// WaitState blocks until the member list of ch has been received.
func (c *Client) WaitState(ctx context.Context, ch domain.ChannelID) error {
	select {
	case <-c.dir.synced(ch):
		return nil
	case <-c.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetChannelMute forwards the self-mute intent to the server.
func (c *Client) SetChannelMute(muted bool) {
	c.mu.Lock()
	c.selfMute = muted
	p := voiceStatePayload{Type: TypeVoiceState, SelfMute: c.selfMute, SelfDeaf: c.selfDeaf}
	c.mu.Unlock()
	if err := c.sendJSON(p); err != nil {
		c.logger.Warn().Err(err).Msg("voice_state not sent")
	}
}

// SetChannelDeafen forwards the self-deafen intent to the server.
func (c *Client) SetChannelDeafen(deafened bool) {
	c.mu.Lock()
	c.selfDeaf = deafened
	p := voiceStatePayload{Type: TypeVoiceState, SelfMute: c.selfMute, SelfDeaf: c.selfDeaf}
	c.mu.Unlock()
	if err := c.sendJSON(p); err != nil {
		c.logger.Warn().Err(err).Msg("voice_state not sent")
	}
}

// SendOffer sends the local media offer.
func (c *Client) SendOffer(offer webrtc.SessionDescription) error {
	return c.sendJSON(sdpPayload{Type: TypeOffer, SDP: offer.SDP})
}

// SendCandidate sends a local ICE candidate.
func (c *Client) SendCandidate(ci webrtc.ICECandidateInit) error {
	return c.sendJSON(candidatePayload{
		Type:          TypeCandidate,
		Candidate:     ci.Candidate,
		SDPMid:        ci.SDPMid,
		SDPMLineIndex: ci.SDPMLineIndex,
	})
}

// OnAnswer sets the callback for the server's media answer.
func (c *Client) OnAnswer(fn func(webrtc.SessionDescription)) {
	c.mu.Lock()
	c.onAnswer = fn
	c.mu.Unlock()
}

// OnCandidate sets the callback for remote ICE candidates.
func (c *Client) OnCandidate(fn func(webrtc.ICECandidateInit)) {
	c.mu.Lock()
	c.onCandidate = fn
	c.mu.Unlock()
}

func (c *Client) UsersInChannel(ch domain.ChannelID) []domain.UserID {
	return c.dir.usersIn(ch)
}

func (c *Client) User(id domain.UserID) (*domain.User, bool) {
	return c.dir.user(id)
}

func (c *Client) SSRCOf(id domain.UserID) (domain.SSRC, bool) {
	return c.dir.ssrcOf(id)
}

func (c *Client) emit(ctx context.Context, evs []domain.VoiceEvent) {
	for _, ev := range evs {
		select {
		case c.events <- ev:
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		}
	}
}
