package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus(16)

	var mu sync.Mutex
	var got []Event
	bus.Subscribe(EpisodeWatched, func(e Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	})

	bus.Start()
	defer bus.Stop()

	bus.Publish(Event{Type: EpisodeWatched, UserID: 1, EpisodeID: 7, Timestamp: time.Now()})
	bus.Publish(Event{Type: RatingChanged, UserID: 1, SeriesID: 3, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, uint(1), got[0].UserID)
	assert.Equal(t, uint(7), got[0].EpisodeID)
}

func TestBusDropsWhenStopped(t *testing.T) {
	bus := NewBus(16)

	delivered := false
	bus.Subscribe(EpisodeWatched, func(Event) { delivered = true })

	// never started: publish is a no-op
	bus.Publish(Event{Type: EpisodeWatched, UserID: 1})
	time.Sleep(20 * time.Millisecond)
	assert.False(t, delivered)
}

func TestBusStopDrainsQueue(t *testing.T) {
	bus := NewBus(64)

	var mu sync.Mutex
	count := 0
	bus.Subscribe(EpisodeWatched, func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	bus.Start()
	for i := 0; i < 10; i++ {
		bus.Publish(Event{Type: EpisodeWatched, UserID: 1})
	}
	bus.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, count)
}

func TestBusSurvivesHandlerPanic(t *testing.T) {
	bus := NewBus(16)

	var mu sync.Mutex
	reached := false
	bus.Subscribe(EpisodeWatched, func(Event) { panic("boom") })
	bus.Subscribe(EpisodeWatched, func(Event) {
		mu.Lock()
		reached = true
		mu.Unlock()
	})

	bus.Start()
	defer bus.Stop()

	bus.Publish(Event{Type: EpisodeWatched, UserID: 1})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return reached
	}, time.Second, 10*time.Millisecond)
}
