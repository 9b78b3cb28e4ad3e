// Package notifier fans out change pings to connected browsers. The
// server broadcasts after the document tree is rebuilt; SSE handlers
// subscribe and tell their page to refresh.
package notifier

import (
	"sync"

	"github.com/google/uuid"
)

// Notifier broadcasts update signals to all subscribed listeners. It
// carries no payload: a ping means "the tree changed, re-read it".
type Notifier struct {
	mu        sync.RWMutex
	listeners map[string]chan struct{}
}

// New creates an empty Notifier.
func New() *Notifier {
	return &Notifier{listeners: make(map[string]chan struct{})}
}

// Subscribe registers a listener and returns its id plus the ping channel.
// Callers must Unsubscribe with the id when done.
func (n *Notifier) Subscribe() (string, <-chan struct{}) {
	id := uuid.NewString()
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.listeners[id] = ch
	n.mu.Unlock()
	return id, ch
}

// Unsubscribe removes a listener and closes its channel.
func (n *Notifier) Unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if ch, ok := n.listeners[id]; ok {
		delete(n.listeners, id)
		close(ch)
	}
}

// Broadcast pings every listener without blocking: a listener whose
// buffer is full already has a pending ping and will catch up.
func (n *Notifier) Broadcast() {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, ch := range n.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of connected listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
