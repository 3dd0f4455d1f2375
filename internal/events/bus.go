// Package events is a small in-process bus for best-effort side effects.
// Publishing never blocks the caller and a failed or dropped event is logged,
// never surfaced to the request that triggered it.
package events

import (
	"log"
	"sync"
	"time"
)

type Type string

const (
	EpisodeWatched Type = "episode.watched"
	RatingChanged  Type = "rating.changed"
	UserRegistered Type = "user.registered"
)

type Event struct {
	Type      Type      `json:"type"`
	UserID    uint      `json:"user_id"`
	SeriesID  uint      `json:"series_id,omitempty"`
	EpisodeID uint      `json:"episode_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler func(Event)

// Bus fans events out to subscribed handlers from a single worker goroutine.
// The channel is bounded; when it is full, Publish drops the event.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	ch       chan Event
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
}

func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Bus{
		handlers: make(map[Type][]Handler),
		ch:       make(chan Event, bufferSize),
		stopCh:   make(chan struct{}),
	}
}

func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish enqueues the event without blocking. A full buffer means the event
// is dropped and logged; delivery is best effort.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	running := b.running
	b.mu.RUnlock()
	if !running {
		return
	}

	select {
	case b.ch <- e:
	default:
		log.Printf("events: buffer full, dropping %s", e.Type)
	}
}

func (b *Bus) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return
	}
	b.running = true
	b.stopCh = make(chan struct{})

	b.wg.Add(1)
	go b.run()
}

func (b *Bus) Stop() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.running = false
	b.mu.Unlock()

	close(b.stopCh)
	b.wg.Wait()
}

func (b *Bus) run() {
	defer b.wg.Done()
	for {
		select {
		case e := <-b.ch:
			b.dispatch(e)
		case <-b.stopCh:
			// drain what is already queued
			for {
				select {
				case e := <-b.ch:
					b.dispatch(e)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) dispatch(e Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[e.Type]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("events: handler panic on %s: %v", e.Type, r)
				}
			}()
			h(e)
		}()
	}
}
