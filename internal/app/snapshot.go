package app

import (
	"cmp"
	"slices"

	"github.com/dkeye/voicepanel/internal/core"
	"github.com/dkeye/voicepanel/internal/domain"
)

// EntryView is a read-only copy of one roster row.
type EntryView struct {
	ID     domain.UserID `json:"id"`
	Name   string        `json:"name"`
	Avatar string        `json:"avatar,omitempty"`
	Muted  bool          `json:"muted"`
	Volume float64       `json:"volume"`
	Meter  float64       `json:"meter"`
}

// Snapshot is an immutable copy of the window state for renderers that
// live off the window goroutine.
type Snapshot struct {
	Seq          uint64            `json:"seq"`
	Channel      domain.ChannelID  `json:"channel"`
	Entries      []EntryView       `json:"entries"`
	Controls     core.ControlState `json:"controls"`
	CaptureLevel float64           `json:"capture_level"`
	CaptureTick  float64           `json:"capture_tick"`
	Closed       bool              `json:"closed"`
}

// Entry finds a row by id.
func (s Snapshot) Entry(id domain.UserID) (EntryView, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return EntryView{}, false
}

// IDs lists row ids in display order.
func (s Snapshot) IDs() []domain.UserID {
	out := make([]domain.UserID, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.ID
	}
	return out
}

func takeSnapshot(seq uint64, roster *core.Roster, panel *core.ControlPanel, closed bool) Snapshot {
	s := Snapshot{
		Seq:          seq,
		Channel:      roster.Channel(),
		Entries:      make([]EntryView, 0, roster.Len()),
		Controls:     panel.State(),
		CaptureLevel: panel.Capture().Level(),
		CaptureTick:  panel.Capture().Tick(),
		Closed:       closed,
	}
	roster.ForEach(func(e *core.Entry) {
		s.Entries = append(s.Entries, EntryView{
			ID:     e.ID(),
			Name:   e.Name(),
			Avatar: e.AvatarURL(),
			Muted:  e.Muted(),
			Volume: e.Volume(),
			Meter:  e.Meter(),
		})
	})
	// display order is incidental; keep it stable for renderers
	slices.SortFunc(s.Entries, func(a, b EntryView) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return s
}
