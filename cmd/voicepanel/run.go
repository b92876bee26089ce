package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dkeye/voicepanel/internal/adapters/audio"
	router "github.com/dkeye/voicepanel/internal/adapters/http"
	"github.com/dkeye/voicepanel/internal/adapters/rtc"
	"github.com/dkeye/voicepanel/internal/adapters/session"
	"github.com/dkeye/voicepanel/internal/adapters/tui"
	"github.com/dkeye/voicepanel/internal/app"
	"github.com/dkeye/voicepanel/internal/config"
	"github.com/dkeye/voicepanel/internal/core"
	"github.com/dkeye/voicepanel/internal/domain"
)

const (
	joinTimeout     = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Join the channel and show the live panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			headless, _ := cmd.Flags().GetBool("headless")
			return runPanel(cmd.Context(), cfg, headless)
		},
	}
	f := cmd.Flags()
	f.Bool("headless", false, "run without the terminal UI")
	f.String("http_addr", "", "serve the debug API on this address")
	f.Duration("meter_period", 0, "metering interval")
	return cmd
}

func newSessionClient(cfg *config.Config) *session.Client {
	return session.NewClient(session.Config{
		URL:        cfg.ServerURL,
		ReadLimit:  cfg.ReadLimit,
		PingPeriod: cfg.PingPeriod,
	})
}

// joinChannel dials the server, starts pumping it in g and waits for the
// member list of the channel.
func joinChannel(ctx context.Context, g *errgroup.Group, client *session.Client, ch domain.ChannelID) error {
	if err := client.Dial(ctx); err != nil {
		return err
	}
	g.Go(func() error { return client.Run(ctx) })

	if err := client.Join(ch); err != nil {
		return fmt.Errorf("join: %w", err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, joinTimeout)
	defer cancel()
	if err := client.WaitState(waitCtx, ch); err != nil {
		return fmt.Errorf("wait for channel %s: %w", ch, err)
	}
	return nil
}

func runPanel(parent context.Context, cfg *config.Config, headless bool) error {
	if !headless {
		f, err := logToFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	channel := domain.ChannelID(cfg.ChannelID)
	client := newSessionClient(cfg)
	if err := joinChannel(ctx, g, client, channel); err != nil {
		cancel()
		client.Close()
		_ = g.Wait()
		return err
	}

	levels := audio.NewLevelTracker(0)
	mixer := audio.NewMixer()

	win := app.NewWindow(channel, client, client, levels, app.Options{MeterPeriod: cfg.MeterPeriod})
	win.Bind(mixer)
	win.ChannelMute().Connect(client.SetChannelMute)
	win.ChannelDeafen().Connect(client.SetChannelDeafen)

	g.Go(func() error { return win.Run(ctx) })
	g.Go(func() error {
		return serveMedia(ctx, func(ctx context.Context) (core.MediaConnection, error) {
			return startMedia(ctx, cfg, client, levels)
		})
	})

	if cfg.HTTPAddr != "" {
		srv := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router.SetupRouter(cfg.Mode, win.Hub(), mixer),
		}
		g.Go(func() error {
			log.Info().Str("module", "main").Str("addr", cfg.HTTPAddr).Msg("debug api started")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("debug api: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if !headless {
		snaps, unsubscribe := win.Hub().Subscribe()
		g.Go(func() error {
			defer cancel()
			defer unsubscribe()
			return tui.Run(tui.NewModel(win, snaps), tea.WithAltScreen(), tea.WithContext(ctx))
		})
	}

	err := g.Wait()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info().Str("module", "main").Msg("voicepanel exited")
	return err
}

// serveMedia negotiates the media leg and holds it until ctx is done. It runs
// beside the window so session events keep flowing during ICE gathering.
func serveMedia(ctx context.Context, start func(context.Context) (core.MediaConnection, error)) error {
	media, err := start(ctx)
	if err != nil {
		// Meters stay at their last value without media; the roster still works.
		log.Warn().Str("module", "main").Err(err).Msg("media unavailable")
		return nil
	}
	<-ctx.Done()
	media.Close()
	return nil
}

// startMedia negotiates the receive-only media leg through the session.
func startMedia(ctx context.Context, cfg *config.Config, client *session.Client, levels *audio.LevelTracker) (core.MediaConnection, error) {
	conn, err := rtc.NewConnection(rtc.DefaultWebRTCConfig(cfg.STUNURL), levels)
	if err != nil {
		return nil, err
	}
	if err := conn.Start(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	logger := log.With().Str("module", "main.media").Logger()
	client.OnAnswer(func(answer webrtc.SessionDescription) {
		if err := conn.ApplyAnswer(answer); err != nil {
			logger.Error().Err(err).Msg("apply answer")
		}
	})
	client.OnCandidate(func(ci webrtc.ICECandidateInit) {
		if err := conn.AddICECandidate(ci); err != nil {
			logger.Warn().Err(err).Msg("add candidate")
		}
	})
	conn.OnICECandidate(func(ci webrtc.ICECandidateInit) {
		if err := client.SendCandidate(ci); err != nil {
			logger.Warn().Err(err).Msg("send candidate")
		}
	})
	conn.OnClosed(func() {
		logger.Warn().Msg("media connection closed")
	})

	offer, err := conn.CreateOffer()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := client.SendOffer(*offer); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
