// Package notify holds user-facing notifications for the lifetime of the
// daemon. One Notifier owns the queue; UIs either drain it or subscribe.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"

	DefaultCapacity  = 64
	subscriberBuffer = 16
)

type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier is a bounded FIFO of notifications plus a set of subscribers.
// When the queue is full the oldest entry is dropped. Publish never blocks:
// a subscriber whose buffer is full misses the event.
type Notifier struct {
	mu       sync.Mutex
	capacity int
	queue    []Notification
	subs     map[string]chan Notification
	closed   bool
	now      func() time.Time
}

func New(capacity int) *Notifier {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Notifier{
		capacity: capacity,
		subs:     make(map[string]chan Notification),
		now:      time.Now,
	}
}

// Publish queues a notification and fans it out to subscribers
func (n *Notifier) Publish(level Level, message string) Notification {
	note := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return note
	}
	if len(n.queue) == n.capacity {
		n.queue = n.queue[1:]
	}
	n.queue = append(n.queue, note)

	for _, ch := range n.subs {
		select {
		case ch <- note:
		default:
		}
	}
	return note
}

// Subscribe returns a channel receiving every later notification.
// The channel is closed by Unsubscribe or Close.
func (n *Notifier) Subscribe() (string, <-chan Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Notification, subscriberBuffer)
	if n.closed {
		close(ch)
		return id, ch
	}
	n.subs[id] = ch
	return id, ch
}

func (n *Notifier) Unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.subs[id]; ok {
		delete(n.subs, id)
		close(ch)
	}
}

// Drain returns and removes every queued notification, oldest first
func (n *Notifier) Drain() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.queue
	n.queue = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// Pending returns the number of queued notifications
func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.queue)
}

// Close drops the queue and closes every subscriber channel
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	n.queue = nil
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
