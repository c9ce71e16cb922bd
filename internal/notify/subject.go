package notify

import "sync"

// Subject fans a value out to subscribers. Publish calls listeners
// synchronously, in subscription order, outside the subject's lock.
//
// Stores publish after releasing their own lock, so two concurrent
// mutations may reach subscribers in either order. Each published value is
// a full snapshot; with a single session driving the stores that is enough.
type Subject[T any] struct {
	mu   sync.Mutex
	next int
	subs map[int]func(T)
	ord  []int
}

// Subscribe registers fn and returns a function that removes it.
func (s *Subject[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = map[int]func(T){}
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	s.ord = append(s.ord, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.ord {
				if v == id {
					s.ord = append(s.ord[:i], s.ord[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.ord))
	for _, id := range s.ord {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}
