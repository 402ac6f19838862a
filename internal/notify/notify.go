// Package notify carries in-process change notifications between services.
// The contract is invalidation, not delta delivery: a publish for a client
// means "whatever you cached for this client is stale, refetch on next
// read". Subscribers must not assume anything about what changed.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

type Hub struct {
	mu   sync.RWMutex
	subs []func(clientID uuid.UUID)
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a callback invoked synchronously on every publish.
// Callbacks must be cheap; heavy work belongs in the next read.
func (h *Hub) Subscribe(fn func(clientID uuid.UUID)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

func (h *Hub) Publish(clientID uuid.UUID) {
	h.mu.RLock()
	subs := make([]func(uuid.UUID), len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	for _, fn := range subs {
		fn(clientID)
	}
}
