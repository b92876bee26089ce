package core

// Signal fans a value out to every connected slot, synchronously and in
// connection order. It is not safe for concurrent use; like the rest of the
// core it lives on the window goroutine.
type Signal[T any] struct {
	slots  []slot[T]
	nextID int
}

type slot[T any] struct {
	id int
	fn func(T)
}

// Connect registers fn and returns a func that disconnects it.
func (s *Signal[T]) Connect(fn func(T)) (disconnect func()) {
	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[T]{id: id, fn: fn})
	return func() { s.disconnect(id) }
}

func (s *Signal[T]) disconnect(id int) {
	// build a new slice so an in-flight Emit keeps its view
	out := make([]slot[T], 0, len(s.slots))
	for _, sl := range s.slots {
		if sl.id != id {
			out = append(out, sl)
		}
	}
	s.slots = out
}

// Emit calls every slot with v.
func (s *Signal[T]) Emit(v T) {
	for _, sl := range s.slots {
		sl.fn(v)
	}
}

// Len reports the number of connected slots.
func (s *Signal[T]) Len() int { return len(s.slots) }

// DisconnectAll drops every slot.
func (s *Signal[T]) DisconnectAll() { s.slots = nil }
