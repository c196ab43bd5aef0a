// Package pubsub implements the driver's named-topic publish/subscribe bus.
//
// Subscriptions are owned by the subscriber: a Subscription stays
// registered, and its listener keeps receiving events, until the
// subscriber calls Unsubscribe. The bus holds every live Subscription, so
// dropping the last outside reference to one does not unsubscribe it.
package pubsub

import (
	"sync"
)

// ErrNotYet signals that a listener cannot process an event right now.
// During Sync, an event whose listener returns ErrNotYet is dropped from
// the current pass; it is not retried until the topic is sent to again.
var ErrNotYet = notYetError{}

type notYetError struct{}

func (notYetError) Error() string { return "listener not ready yet" }

// Listener handles one event delivered to a topic.
type Listener func(topic string, event any) error

// Topic is a named channel events can be sent to and listened on.
type Topic struct {
	name string
	bus  *Bus
}

// Bus is the process-wide registry of named topics.
type Bus struct {
	mu     sync.Mutex
	topics map[string]*topicState
}

type topicState struct {
	mu      sync.Mutex
	subs    map[*Subscription]Listener
	pending []any // events queued for the next Sync, in send order
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{topics: make(map[string]*topicState)}
}

func (b *Bus) state(name string) *topicState {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.topics[name]
	if !ok {
		t = &topicState{subs: make(map[*Subscription]Listener)}
		b.topics[name] = t
	}
	return t
}

// Topic returns a handle for the named topic, creating it if needed.
func (b *Bus) Topic(name string) *Topic {
	b.state(name) // ensure it exists
	return &Topic{name: name, bus: b}
}

// Subscription is a live registration of a Listener on a Topic. The
// subscriber owns it and must call Unsubscribe when it no longer wants
// events.
type Subscription struct {
	topic *Topic
}

// Subscribe registers fn to receive events sent immediately via Send, or
// queued for delivery via Sync.
func (t *Topic) Subscribe(fn Listener) *Subscription {
	st := t.bus.state(t.name)
	sub := &Subscription{topic: t}
	st.mu.Lock()
	st.subs[sub] = fn
	st.mu.Unlock()
	return sub
}

// Unsubscribe removes the subscription from its topic.
func (s *Subscription) Unsubscribe() {
	st := s.topic.bus.state(s.topic.name)
	st.mu.Lock()
	delete(st.subs, s)
	st.mu.Unlock()
}

// Send delivers event to every current subscriber of the topic immediately,
// synchronously, in no particular order (subscribers are held in a map).
// A listener returning ErrNotYet is
// simply skipped for this send; it is not queued for later delivery.
func (t *Topic) Send(event any) error {
	st := t.bus.state(t.name)
	st.mu.Lock()
	listeners := make([]Listener, 0, len(st.subs))
	for _, fn := range st.subs {
		listeners = append(listeners, fn)
	}
	st.mu.Unlock()
	var firstErr error
	for _, fn := range listeners {
		if err := fn(t.name, event); err != nil && err != ErrNotYet && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Defer queues event for delivery on the next call to Sync, instead of
// delivering it immediately.
func (t *Topic) Defer(event any) {
	st := t.bus.state(t.name)
	st.mu.Lock()
	st.pending = append(st.pending, event)
	st.mu.Unlock()
}

// Sync delivers every event queued since the last Sync to the topic's
// current subscribers, then clears the queue. The pending slice is swapped
// out before delivery begins, matching the original driver's behavior:
// a listener returning ErrNotYet drops that event from this pass rather
// than re-queuing it for the following Sync.
func (t *Topic) Sync() error {
	st := t.bus.state(t.name)
	st.mu.Lock()
	events := st.pending
	st.pending = nil
	listeners := make([]Listener, 0, len(st.subs))
	for _, fn := range st.subs {
		listeners = append(listeners, fn)
	}
	st.mu.Unlock()

	var firstErr error
	for _, event := range events {
		for _, fn := range listeners {
			if err := fn(t.name, event); err != nil && err != ErrNotYet && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// SyncAll drains every topic registered on the bus, in unspecified order.
func (b *Bus) SyncAll() error {
	b.mu.Lock()
	names := make([]string, 0, len(b.topics))
	for name := range b.topics {
		names = append(names, name)
	}
	b.mu.Unlock()
	var firstErr error
	for _, name := range names {
		if err := b.Topic(name).Sync(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Well-known driver topics.
const (
	TopicTick     = "driver.tick"
	TopicShutdown = "driver.shutdown"
	TopicIdle     = "driver.idle-check"
)

// WiretapTopic returns the name of the per-entity wiretap topic an observer
// subscribes to in order to overhear everything said to or near an entity.
// Wiretap events are (senderName, message) pairs.
func WiretapTopic(entityName string) string {
	return "wiretap:" + entityName
}

// WiretapEvent is the payload delivered on a wiretap topic.
type WiretapEvent struct {
	Sender  string
	Message string
}
