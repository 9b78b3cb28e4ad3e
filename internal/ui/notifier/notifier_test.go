package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeBroadcastUnsubscribe(t *testing.T) {
	n := New()

	id, ch := n.Subscribe()
	assert.Equal(t, 1, n.Len())

	n.Broadcast()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a ping after Broadcast")
	}

	n.Unsubscribe(id)
	assert.Equal(t, 0, n.Len())

	// Channel is closed after unsubscribe.
	_, open := <-ch
	assert.False(t, open)
}

func TestBroadcastDoesNotBlockOnFullBuffer(t *testing.T) {
	n := New()
	id, ch := n.Subscribe()
	defer n.Unsubscribe(id)

	// Two broadcasts with nobody draining: second must not block.
	done := make(chan struct{})
	go func() {
		n.Broadcast()
		n.Broadcast()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a full listener buffer")
	}

	// Exactly one pending ping survives.
	<-ch
	select {
	case <-ch:
		t.Fatal("expected coalesced pings")
	default:
	}
}

func TestUnsubscribeUnknownID(t *testing.T) {
	n := New()
	n.Unsubscribe("not-there") // must not panic
	assert.Equal(t, 0, n.Len())
}
