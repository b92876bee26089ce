package session

import (
	"cmp"
	"slices"
	"sync"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/rs/zerolog/log"
)

// directory is the client's cached view of the server: who is where, what
// they are called and which stream source they transmit on.
type directory struct {
	mu       sync.RWMutex
	users    map[domain.UserID]*domain.User
	ssrcs    map[domain.UserID]domain.SSRC
	members  map[domain.ChannelID]map[domain.UserID]struct{}
	location map[domain.UserID]domain.ChannelID
	ready    map[domain.ChannelID]chan struct{}
}

func newDirectory() *directory {
	return &directory{
		users:    make(map[domain.UserID]*domain.User),
		ssrcs:    make(map[domain.UserID]domain.SSRC),
		members:  make(map[domain.ChannelID]map[domain.UserID]struct{}),
		location: make(map[domain.UserID]domain.ChannelID),
		ready:    make(map[domain.ChannelID]chan struct{}),
	}
}

func (d *directory) usersIn(ch domain.ChannelID) []domain.UserID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	set := d.members[ch]
	out := make([]domain.UserID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (d *directory) user(id domain.UserID) (*domain.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (d *directory) ssrcOf(id domain.UserID) (domain.SSRC, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.ssrcs[id]
	return s, ok && s != 0
}

// synced returns a channel closed once ch's member list has arrived.
func (d *directory) synced(ch domain.ChannelID) <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readyLocked(ch)
}

func (d *directory) readyLocked(ch domain.ChannelID) chan struct{} {
	r, ok := d.ready[ch]
	if !ok {
		r = make(chan struct{})
		d.ready[ch] = r
	}
	return r
}

// replace installs a full member list for ch. When ch was already known the
// difference is returned as events so no participant is dropped silently.
func (d *directory) replace(ch domain.ChannelID, members []MemberDTO) []domain.VoiceEvent {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev, known := d.members[ch]
	next := make(map[domain.UserID]struct{}, len(members))
	for _, m := range members {
		d.rememberLocked(m)
		next[m.ID] = struct{}{}
		d.location[m.ID] = ch
	}
	d.members[ch] = next

	var evs []domain.VoiceEvent
	if known {
		for id := range prev {
			if _, ok := next[id]; !ok {
				delete(d.ssrcs, id)
				if d.location[id] == ch {
					delete(d.location, id)
				}
				evs = append(evs, domain.VoiceEvent{Kind: domain.UserDisconnected, User: id, Channel: ch})
			}
		}
		for id := range next {
			if _, ok := prev[id]; !ok {
				evs = append(evs, domain.VoiceEvent{Kind: domain.UserConnected, User: id, Channel: ch})
			}
		}
		slices.SortFunc(evs, func(a, b domain.VoiceEvent) int {
			if c := cmp.Compare(b.Kind, a.Kind); c != 0 {
				return c // disconnects first
			}
			return cmp.Compare(a.User, b.User)
		})
	}

	r := d.readyLocked(ch)
	select {
	case <-r:
	default:
		close(r)
	}
	return evs
}

// join records m in ch. A user still listed elsewhere is moved, which
// yields a disconnect from the old channel first.
func (d *directory) join(ch domain.ChannelID, m MemberDTO) []domain.VoiceEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rememberLocked(m)

	var evs []domain.VoiceEvent
	if old, ok := d.location[m.ID]; ok && old != ch {
		delete(d.members[old], m.ID)
		evs = append(evs, domain.VoiceEvent{Kind: domain.UserDisconnected, User: m.ID, Channel: old})
	}
	set, ok := d.members[ch]
	if !ok {
		set = make(map[domain.UserID]struct{})
		d.members[ch] = set
	}
	set[m.ID] = struct{}{}
	d.location[m.ID] = ch
	return append(evs, domain.VoiceEvent{Kind: domain.UserConnected, User: m.ID, Channel: ch})
}

func (d *directory) leave(ch domain.ChannelID, id domain.UserID) []domain.VoiceEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	if set, ok := d.members[ch]; ok {
		delete(set, id)
	}
	if d.location[id] == ch {
		delete(d.location, id)
		delete(d.ssrcs, id)
	}
	return []domain.VoiceEvent{{Kind: domain.UserDisconnected, User: id, Channel: ch}}
}

func (d *directory) update(m MemberDTO) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rememberLocked(m)
}

func (d *directory) setSSRC(id domain.UserID, s domain.SSRC) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s == 0 {
		delete(d.ssrcs, id)
		return
	}
	d.ssrcs[id] = s
}

// rememberLocked stores the member's metadata. An invalid name keeps the
// previous one, or leaves a new user unresolved.
func (d *directory) rememberLocked(m MemberDTO) {
	if u, ok := d.users[m.ID]; ok {
		if err := u.SetUsername(m.Username); err != nil {
			log.Debug().Err(err).Str("module", "session.directory").Stringer("user", m.ID).Msg("rename rejected")
		}
		if m.Avatar != "" {
			u.Avatar = m.Avatar
		}
	} else if u, err := domain.NewUser(m.ID, m.Username); err != nil {
		log.Debug().Err(err).Str("module", "session.directory").Stringer("user", m.ID).Msg("user left unresolved")
	} else {
		u.Avatar = m.Avatar
		d.users[m.ID] = u
	}
	if m.SSRC != 0 {
		d.ssrcs[m.ID] = m.SSRC
	}
}
