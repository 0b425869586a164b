package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewEventBus[CartUpdated]()
	defer bus.Close()

	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Publish(CartUpdated{CartID: "c1", Count: 3})

	select {
	case ev := <-a:
		assert.Equal(t, 3, ev.Count)
	case <-time.After(time.Second):
		t.Fatal("subscriber a never received the event")
	}

	select {
	case ev := <-b:
		assert.Equal(t, "c1", ev.CartID)
	case <-time.After(time.Second):
		t.Fatal("subscriber b never received the event")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewEventBus[CartUpdated]()
	defer bus.Close()

	sub := bus.Subscribe()
	bus.Unsubscribe(sub)

	_, open := <-sub
	assert.False(t, open)

	// double unsubscribe must not panic
	bus.Unsubscribe(sub)
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	bus := NewEventBus[CartUpdated]()
	defer bus.Close()

	sub := bus.Subscribe()
	for i := 0; i < subscriberBuffer+10; i++ {
		bus.Publish(CartUpdated{Count: i})
	}

	// the buffered events are intact, the overflow was dropped
	require.Len(t, sub, subscriberBuffer)
	ev := <-sub
	assert.Equal(t, 0, ev.Count)
}

func TestSubscribeAfterClose(t *testing.T) {
	bus := NewEventBus[CartUpdated]()
	bus.Close()

	sub := bus.Subscribe()
	_, open := <-sub
	assert.False(t, open)
}
