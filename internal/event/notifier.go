package event

import "sync"

// Handler receives committed change notifications.
type Handler func(Change)

// Subscription identifies a registered handler.
type Subscription uint64

// Notifier delivers change notifications to subscribers, synchronously and
// in subscription order. It is safe for concurrent use, but delivery
// happens on the publisher's goroutine: handlers should hand off long work
// rather than block the engine.
type Notifier struct {
	mu     sync.RWMutex
	nextID Subscription
	subs   []entry
}

type entry struct {
	id Subscription
	h  Handler
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a handler and returns its subscription handle.
func (n *Notifier) Subscribe(h Handler) Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	n.subs = append(n.subs, entry{id: n.nextID, h: h})
	return n.nextID
}

// Unsubscribe removes a handler. Unknown subscriptions are ignored.
func (n *Notifier) Unsubscribe(s Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.subs {
		if e.id == s {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers a change to every subscriber in subscription order.
func (n *Notifier) Publish(c Change) {
	n.mu.RLock()
	subs := make([]entry, len(n.subs))
	copy(subs, n.subs)
	n.mu.RUnlock()

	for _, e := range subs {
		e.h(c)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
