package rtc

import (
	"context"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/pion/interceptor"
	"github.com/pion/rtp"
	"github.com/rs/zerolog"
)

// RTPReader is the part of *webrtc.TrackRemote the level reader needs.
type RTPReader interface {
	ReadRTP() (*rtp.Packet, interceptor.Attributes, error)
}

// readLevels reads packets from track until it fails or ctx is done and
// feeds their audio levels to observer. The stream is forgotten on exit.
func readLevels(ctx context.Context, track RTPReader, extID uint8, observer LevelObserver, logger zerolog.Logger) {
	var ssrc domain.SSRC
	defer func() {
		if ssrc != 0 {
			observer.Forget(ssrc)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("level reader ctx done")
			return
		default:
		}
		pkt, _, err := track.ReadRTP()
		if err != nil {
			logger.Info().Err(err).Uint32("ssrc", uint32(ssrc)).Msg("level reader stopped")
			return
		}
		ssrc = domain.SSRC(pkt.SSRC)
		if err := observer.ObserveRTP(pkt, extID); err != nil {
			logger.Debug().Err(err).Uint32("ssrc", pkt.SSRC).Msg("packet without level")
		}
	}
}
