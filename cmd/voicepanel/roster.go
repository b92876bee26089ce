package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dkeye/voicepanel/internal/domain"
)

type rosterRow struct {
	ID     domain.UserID
	Name   string
	SSRC   domain.SSRC
	Avatar string
}

// userSource is the part of the session used for a one-shot listing.
type userSource interface {
	UsersInChannel(domain.ChannelID) []domain.UserID
	User(domain.UserID) (*domain.User, bool)
	SSRCOf(domain.UserID) (domain.SSRC, bool)
}

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Print who is in the channel and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			channel := domain.ChannelID(cfg.ChannelID)
			client := newSessionClient(cfg)
			joinErr := joinChannel(ctx, g, client, channel)
			var rows []rosterRow
			if joinErr == nil {
				rows = collectRoster(client, channel)
			}
			cancel()
			client.Close()
			_ = g.Wait()
			if joinErr != nil {
				return joinErr
			}
			return writeRoster(cmd.OutOrStdout(), channel, rows, format)
		},
	}
	cmd.Flags().StringP("format", "f", "table", "output format: table, csv or markdown")
	return cmd
}

func collectRoster(src userSource, ch domain.ChannelID) []rosterRow {
	ids := src.UsersInChannel(ch)
	rows := make([]rosterRow, 0, len(ids))
	for _, id := range ids {
		row := rosterRow{ID: id, Name: domain.UnknownUsername}
		if u, ok := src.User(id); ok {
			row.Name = u.Username
			row.Avatar = u.AvatarURL("png", domain.AvatarSize)
		}
		if ssrc, ok := src.SSRCOf(id); ok {
			row.SSRC = ssrc
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRoster(w io.Writer, ch domain.ChannelID, rows []rosterRow, format string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "User", "Name", "SSRC", "Avatar"})
	for i, r := range rows {
		ssrc := "-"
		if r.SSRC != 0 {
			ssrc = fmt.Sprintf("%d", r.SSRC)
		}
		t.AppendRow(table.Row{i + 1, r.ID.String(), r.Name, ssrc, r.Avatar})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("channel %s", ch), fmt.Sprintf("%d users", len(rows)), ""})

	switch format {
	case "table", "":
		t.SetStyle(table.StyleRounded)
		t.Render()
	case "csv":
		t.RenderCSV()
	case "markdown", "md":
		t.RenderMarkdown()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
