package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	var first, second []uuid.UUID
	hub.Subscribe(func(id uuid.UUID) { first = append(first, id) })
	hub.Subscribe(func(id uuid.UUID) { second = append(second, id) })

	clientA := uuid.New()
	clientB := uuid.New()
	hub.Publish(clientA)
	hub.Publish(clientB)
	hub.Publish(clientA)

	want := []uuid.UUID{clientA, clientB, clientA}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}

func TestHubWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() { hub.Publish(uuid.New()) })
}
