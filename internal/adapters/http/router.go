package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dkeye/voicepanel/internal/app"
	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	requestLimit    = 20
	requestInterval = time.Second
)

// SnapshotSource is satisfied by *app.Hub.
type SnapshotSource interface {
	Latest() app.Snapshot
}

// MixSource is satisfied by *audio.Mixer.
type MixSource interface {
	Gain(domain.UserID) float64
	PassCapture(level float64) bool
}

type mixEntry struct {
	ID   domain.UserID `json:"id"`
	Gain float64       `json:"gain"`
}

type controlsResponse struct {
	Channel      domain.ChannelID `json:"channel"`
	Muted        bool             `json:"muted"`
	Deafened     bool             `json:"deafened"`
	Gate         float64          `json:"gate"`
	CaptureLevel float64          `json:"capture_level"`
	CaptureTick  float64          `json:"capture_tick"`
}

// SetupRouter exposes a read-only view of the panel for debugging. mix may
// be nil.
func SetupRouter(mode string, src SnapshotSource, mix MixSource) *gin.Engine {
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(RateLimitMiddleware(NewRateLimiter(requestLimit, requestInterval)))

	api.GET("/snapshot", func(c *gin.Context) {
		c.JSON(http.StatusOK, src.Latest())
	})

	api.GET("/roster", func(c *gin.Context) {
		s := src.Latest()
		entries := s.Entries
		if entries == nil {
			entries = []app.EntryView{}
		}
		c.JSON(http.StatusOK, gin.H{"channel": s.Channel, "seq": s.Seq, "entries": entries})
	})

	api.GET("/roster/:id", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		e, ok := src.Latest().Entry(domain.UserID(id))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "not in channel"})
			return
		}
		c.JSON(http.StatusOK, e)
	})

	api.GET("/controls", func(c *gin.Context) {
		s := src.Latest()
		c.JSON(http.StatusOK, controlsResponse{
			Channel:      s.Channel,
			Muted:        s.Controls.ChannelMuted,
			Deafened:     s.Controls.ChannelDeafened,
			Gate:         s.Controls.CaptureGateThreshold,
			CaptureLevel: s.CaptureLevel,
			CaptureTick:  s.CaptureTick,
		})
	})

	if mix != nil {
		api.GET("/mix", func(c *gin.Context) {
			s := src.Latest()
			gains := make([]mixEntry, 0, len(s.Entries))
			for _, e := range s.Entries {
				gains = append(gains, mixEntry{ID: e.ID, Gain: mix.Gain(e.ID)})
			}
			c.JSON(http.StatusOK, gin.H{
				"capture_open": mix.PassCapture(s.CaptureLevel),
				"users":        gains,
			})
		})
	}

	log.Info().Str("module", "adapters.http").Str("mode", mode).Msg("router setup")
	return r
}
