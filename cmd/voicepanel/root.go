package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dkeye/voicepanel/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "voicepanel",
		Short:         "Live participant panel for a voice channel",
		Long:          `voicepanel joins a voice channel on a signal server and shows who is in it, how loud each participant is, and your own mute, deafen and capture gate controls.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.String("server_url", "", "signal server websocket URL")
	pf.Uint64("channel_id", 0, "voice channel to join")
	pf.String("log_level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(), newRosterCmd())
	return root
}

// loadConfig reads configuration with cmd's flags taking precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

// logToFile moves the global logger off the terminal while the TUI owns it.
func logToFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
}
