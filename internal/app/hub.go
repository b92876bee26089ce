package app

import "sync"

// Hub hands window snapshots to any number of renderers. Each subscriber
// sees the latest snapshot; intermediate ones are dropped if it falls behind.
type Hub struct {
	mu     sync.RWMutex
	latest Snapshot
	subs   map[int]chan Snapshot
	nextID int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Snapshot)}
}

// Publish never blocks.
func (h *Hub) Publish(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = s
	for _, ch := range h.subs {
		select {
		case ch <- s:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
}

func (h *Hub) Latest() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Subscribe returns a channel primed with the latest snapshot and a func
// that unsubscribes and closes it.
func (h *Hub) Subscribe() (<-chan Snapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	ch := make(chan Snapshot, 1)
	ch <- h.latest
	h.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}
