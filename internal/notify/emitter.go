// Package notify holds the transient notification surface each store
// pushes messages into, and the small subject type stores use to announce
// state changes.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hwstore/internal/domain"
)

// Emitter keeps at most one visible notification. A new Show replaces the
// current message and restarts the hide timer; a timer only hides the
// notification it was started for.
type Emitter struct {
	name     string
	duration time.Duration

	mu      sync.Mutex
	current domain.Notification
	timer   *time.Timer

	changes Subject[domain.Notification]
}

// NewEmitter builds an emitter that hides each notification after d.
// d <= 0 keeps notifications visible until replaced or hidden.
func NewEmitter(name string, d time.Duration) *Emitter {
	return &Emitter{name: name, duration: d}
}

func (e *Emitter) Name() string { return e.name }

func (e *Emitter) Show(message string, kind domain.NotificationType) domain.Notification {
	n := domain.Notification{ID: uuid.NewString(), Message: message, Type: kind, Show: true}

	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.current = n
	if e.duration > 0 {
		id := n.ID
		e.timer = time.AfterFunc(e.duration, func() { e.expire(id) })
	}
	e.mu.Unlock()

	e.changes.Publish(n)
	return n
}

// expire hides the notification only if it is still the one identified by
// id. A timer that lost the race with Stop must not hide a newer message.
func (e *Emitter) expire(id string) {
	e.mu.Lock()
	if e.current.ID != id || !e.current.Show {
		e.mu.Unlock()
		return
	}
	e.current.Show = false
	e.timer = nil
	n := e.current
	e.mu.Unlock()

	e.changes.Publish(n)
}

// Hide clears the current notification immediately.
func (e *Emitter) Hide() {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if !e.current.Show {
		e.mu.Unlock()
		return
	}
	e.current.Show = false
	n := e.current
	e.mu.Unlock()

	e.changes.Publish(n)
}

func (e *Emitter) Current() domain.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

func (e *Emitter) Subscribe(fn func(domain.Notification)) (cancel func()) {
	return e.changes.Subscribe(fn)
}
