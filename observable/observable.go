// Package observable provides a small conflated multicast state cell used to
// expose coordinator and engine state to UI layers. A Value holds the latest
// value of type T; any number of subscribers can observe updates without side
// effects on the producer or on each other.
//
// Delivery is conflated: each subscription buffers at most one pending value
// and a newer update replaces an undelivered older one. Publishers therefore
// never block, and slow observers always converge on the latest state rather
// than an ever-growing backlog. This matches state-stream semantics (current
// value matters, intermediate values do not) as opposed to event-stream
// semantics.
package observable

import "sync"

// Value is a multicast cell holding the latest value of type T.
//
// Contract:
//   - Get returns the current value at any time
//   - Set publishes a new value to all live subscriptions
//   - Subscribe delivers the current value immediately, then updates
//   - Safe for concurrent use by multiple goroutines.
type Value[T any] struct {
	mu        sync.Mutex
	value     T
	subs      map[int]*Subscription[T]
	listeners map[int]func(T)
	next      int
}

// New creates a Value initialized with the given value.
func New[T any](initial T) *Value[T] {
	return &Value[T]{
		value:     initial,
		subs:      map[int]*Subscription[T]{},
		listeners: map[int]func(T){},
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores a new value and publishes it to all subscriptions. Derived cells
// (see Map) are recomputed before Set returns.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = val
	for _, sub := range v.subs {
		sub.push(val)
	}
	for _, fn := range v.listeners {
		fn(val)
	}
}

// Subscribe registers a new observer. The current value is delivered
// immediately on the returned subscription's channel. Callers must Close the
// subscription when done observing.
func (v *Value[T]) Subscribe() *Subscription[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	sub := &Subscription[T]{ch: make(chan T, 1), cancel: v.unsubscribe, id: v.next}
	v.subs[v.next] = sub
	v.next++
	sub.push(v.value)
	return sub
}

func (v *Value[T]) unsubscribe(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.subs, id)
}

// Subscription is a single observer registration on a Value.
type Subscription[T any] struct {
	mu     sync.Mutex
	ch     chan T
	closed bool
	cancel func(id int)
	id     int
}

// Updates returns the channel on which values are delivered. The channel is
// closed by Close.
func (s *Subscription[T]) Updates() <-chan T {
	return s.ch
}

// Close detaches the subscription from its Value and closes the update
// channel. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	s.cancel(s.id)
	s.mu.Lock()
	close(s.ch)
	s.mu.Unlock()
}

// push delivers a value, replacing any pending undelivered one.
func (s *Subscription[T]) push(val T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- val
}

// Map derives a read-only downstream Value recomputed from src on every Set.
// Recomputation is synchronous: by the time Set on src returns, Get on the
// derived cell already yields the recomputed value, so snapshot readers never
// observe the two out of sync. The derivation fn must be pure and must not
// call back into src. The returned stop function detaches the derivation.
func Map[T, U any](src *Value[T], fn func(T) U) (*Value[U], func()) {
	src.mu.Lock()
	defer src.mu.Unlock()
	out := New(fn(src.value))
	id := src.next
	src.next++
	src.listeners[id] = func(val T) { out.Set(fn(val)) }
	stop := func() {
		src.mu.Lock()
		defer src.mu.Unlock()
		delete(src.listeners, id)
	}
	return out, stop
}
