package order

import (
	"context"
	"sync"
)

// Event is a single change pushed to live subscribers.
type Event struct {
	Order Order
}

const subscriberBuffer = 64

// Broker fans order changes out to live subscribers. Subscriptions are tied
// to a context and removed when it is cancelled; a subscriber that stops
// draining its channel is dropped instead of blocking publishers.
type Broker struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[*Subscription]struct{})}
}

// Subscription is a live feed handle. Close releases it; the channel is
// closed when the subscription ends, however that happens.
type Subscription struct {
	broker *Broker
	ch     chan Event
	once   sync.Once
}

// Events is the delta stream.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.remove(s)
		close(s.ch)
	})
}

// Subscribe registers a new live feed. It is released when ctx is cancelled
// or Close is called, whichever comes first.
func (b *Broker) Subscribe(ctx context.Context) *Subscription {
	sub := &Subscription{
		broker: b,
		ch:     make(chan Event, subscriberBuffer),
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub
}

// Publish delivers an event to every live subscriber.
func (b *Broker) Publish(ev Event) {
	b.mu.Lock()
	slow := make([]*Subscription, 0)
	for sub := range b.subs {
		select {
		case sub.ch <- ev:
		default:
			// subscriber stopped draining; drop it
			slow = append(slow, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range slow {
		sub.Close()
	}
}

func (b *Broker) remove(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
}
