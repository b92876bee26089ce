package core

import (
	"slices"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/rs/zerolog/log"
)

// Roster owns one Entry per participant of a single voice channel.
// Its key set tracks the channel's participants: inserts and removals are
// idempotent, so duplicate or late events leave it unchanged.
type Roster struct {
	channel domain.ChannelID
	dir     SessionDirectory
	entries map[domain.UserID]*Entry

	added   Signal[*Entry]
	removed Signal[domain.UserID]
}

func NewRoster(channel domain.ChannelID, dir SessionDirectory) *Roster {
	return &Roster{
		channel: channel,
		dir:     dir,
		entries: make(map[domain.UserID]*Entry),
	}
}

func (r *Roster) Channel() domain.ChannelID { return r.channel }

// Added fires after an entry is inserted, before any other code sees it.
func (r *Roster) Added() *Signal[*Entry] { return &r.added }

// Removed fires after an entry has been erased and released.
func (r *Roster) Removed() *Signal[domain.UserID] { return &r.removed }

// Seed creates one entry per id. Ids already present are skipped.
func (r *Roster) Seed(ids []domain.UserID) {
	for _, id := range ids {
		r.insert(id)
	}
	log.Info().Str("module", "core.roster").Stringer("channel", r.channel).Int("entries", len(r.entries)).Msg("roster seeded")
}

// OnConnect inserts an entry if the user joined this channel and is not
// already present. It reports whether an entry was created.
func (r *Roster) OnConnect(user domain.UserID, to domain.ChannelID) bool {
	if to != r.channel {
		return false
	}
	return r.insert(user)
}

// OnDisconnect removes the user's entry if they left this channel.
// It reports whether an entry was removed.
func (r *Roster) OnDisconnect(user domain.UserID, from domain.ChannelID) bool {
	if from != r.channel {
		return false
	}
	e, ok := r.entries[user]
	if !ok {
		return false
	}
	delete(r.entries, user)
	e.release()
	log.Info().Str("module", "core.roster").Stringer("channel", r.channel).Stringer("user", user).Msg("entry removed")
	r.removed.Emit(user)
	return true
}

// Apply routes a session event to OnConnect or OnDisconnect.
func (r *Roster) Apply(ev domain.VoiceEvent) bool {
	switch ev.Kind {
	case domain.UserConnected:
		return r.OnConnect(ev.User, ev.Channel)
	case domain.UserDisconnected:
		return r.OnDisconnect(ev.User, ev.Channel)
	default:
		log.Warn().Str("module", "core.roster").Int("kind", int(ev.Kind)).Msg("unknown event kind")
		return false
	}
}

// ForEach visits every entry once. Order is unspecified.
func (r *Roster) ForEach(fn func(*Entry)) {
	for _, e := range r.entries {
		fn(e)
	}
}

func (r *Roster) Get(id domain.UserID) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

func (r *Roster) Len() int { return len(r.entries) }

// IDs returns the current keys in ascending order.
func (r *Roster) IDs() []domain.UserID {
	out := make([]domain.UserID, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Clear releases every entry. Used only at window teardown.
func (r *Roster) Clear() {
	for id, e := range r.entries {
		e.release()
		delete(r.entries, id)
	}
	r.added.DisconnectAll()
	r.removed.DisconnectAll()
}

func (r *Roster) insert(id domain.UserID) bool {
	if _, ok := r.entries[id]; ok {
		return false
	}
	e := NewEntry(id, r.dir)
	r.entries[id] = e
	log.Info().Str("module", "core.roster").Stringer("channel", r.channel).Stringer("user", id).Str("name", e.Name()).Msg("entry added")
	r.added.Emit(e)
	return true
}
