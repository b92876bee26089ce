package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dkeye/voicepanel/internal/app"
	"github.com/dkeye/voicepanel/internal/core"
)

const (
	volumeStep  = 10.0
	gateStep    = 5.0
	captureBarW = 30
)

// Submitter accepts user input for the window goroutine.
type Submitter interface {
	Submit(app.Input) bool
}

type snapshotMsg app.Snapshot

type closedMsg struct{}

// Model renders window snapshots and turns key presses into window input.
// It never touches the roster directly.
type Model struct {
	window Submitter
	snaps  <-chan app.Snapshot
	snap   app.Snapshot
	cursor int
	meter  progress.Model
	width  int
}

func NewModel(w Submitter, snaps <-chan app.Snapshot) *Model {
	return &Model{
		window: w,
		snaps:  snaps,
		meter: progress.New(
			progress.WithGradient(MeterStart, MeterEnd),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		width: 80,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.listen()
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-m.snaps
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(s)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = app.Snapshot(msg)
		if m.snap.Closed {
			return m, tea.Quit
		}
		m.clampCursor()
		return m, m.listen()

	case closedMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.meter.Width = max(10, min(30, msg.Width-60))

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "M":
		m.window.Submit(app.ToggleChannelMute{})
	case "d", "D":
		m.window.Submit(app.ToggleChannelDeafen{})
	case "]":
		m.window.Submit(app.AdjustCaptureGate{Delta: gateStep})
	case "[":
		m.window.Submit(app.AdjustCaptureGate{Delta: -gateStep})
	default:
		m.handleRowKey(key)
	}
	return nil
}

func (m *Model) handleRowKey(key string) {
	row, ok := m.selected()
	if !ok {
		return
	}
	switch key {
	case "m", " ":
		m.window.Submit(app.ToggleUserMute{User: row.ID})
	case "+", "=", "right", "l":
		m.window.Submit(app.AdjustUserVolume{User: row.ID, Delta: volumeStep})
	case "-", "left", "h":
		m.window.Submit(app.AdjustUserVolume{User: row.ID, Delta: -volumeStep})
	case "0":
		m.window.Submit(app.SetUserVolume{User: row.ID, Volume: core.DefaultVolume})
	}
}

func (m *Model) selected() (app.EntryView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Entries) {
		return app.EntryView{}, false
	}
	return m.snap.Entries[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Entries) {
		m.cursor = len(m.snap.Entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Voice channel %s", m.snap.Channel)))
	b.WriteString("\n")

	c := m.snap.Controls
	b.WriteString(fmt.Sprintf("%s  %s  gate %3.0f\n",
		toggle("Mute", c.ChannelMuted),
		toggle("Deafen", c.ChannelDeafened),
		c.CaptureGateThreshold,
	))
	b.WriteString(captureBar(m.snap.CaptureLevel, m.snap.CaptureTick, captureBarW))
	b.WriteString("\n\n")

	if len(m.snap.Entries) == 0 {
		b.WriteString(mutedStyle.Render("Nobody here"))
		b.WriteString("\n")
	}
	for i, e := range m.snap.Entries {
		style := nameStyle
		cursor := "  "
		if i == m.cursor {
			style = selectedStyle
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(truncate(e.Name, 18)))
		b.WriteString(" ")
		b.WriteString(toggle("M", e.Muted))
		b.WriteString(fmt.Sprintf(" %3.0f%% ", e.Volume))
		b.WriteString(m.meter.ViewAs(e.Meter))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("↑/↓ select · m mute · +/- volume · M mute all · d deafen · [/] gate · q quit"))
	return b.String()
}

func toggle(label string, on bool) string {
	if on {
		return onStyle.Render("[x] " + label)
	}
	return offStyle.Render("[ ] " + label)
}

// captureBar draws the capture level with the gate tick marker on top.
func captureBar(level, tick float64, width int) string {
	filled := int(level * float64(width))
	mark := int(tick * float64(width))
	if mark >= width {
		mark = width - 1
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == mark && tick > 0:
			b.WriteString(tickStyle.Render("|"))
		case i < filled:
			b.WriteString(filledStyle.Render("█"))
		default:
			b.WriteString(mutedStyle.Render("░"))
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// Run blocks until the user quits or the window closes.
func Run(m *Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
