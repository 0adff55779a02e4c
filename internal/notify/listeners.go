// Package notify holds callback registries with independent unsubscribe.
package notify

import (
	"sort"
	"sync"
)

// Listeners is a set of callbacks. The zero value is ready to use.
type Listeners[T any] struct {
	fns  map[uint64]func(T)
	next uint64
	mu   sync.Mutex
}

// Add registers fn and returns a function removing exactly this registration.
// The returned function may be called any number of times.
func (l *Listeners[T]) Add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[uint64]func(T))
	}
	l.next++
	id := l.next
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// Notify calls every registered callback with v in registration order.
// Callbacks run outside the lock and may unsubscribe themselves.
func (l *Listeners[T]) Notify(v T) {
	for _, fn := range l.snapshot() {
		fn(v)
	}
}

// Len returns the number of registered callbacks.
func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.fns)
}

// Clear removes all callbacks.
func (l *Listeners[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fns = nil
}

func (l *Listeners[T]) snapshot() []func(T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]uint64, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, l.fns[id])
	}
	return fns
}

// Topics groups listeners by key.
type Topics[K comparable, T any] struct {
	topics map[K]*Listeners[T]
	mu     sync.Mutex
}

// Add registers fn under key.
func (t *Topics[K, T]) Add(key K, fn func(T)) func() {
	return t.listeners(key).Add(fn)
}

// Notify calls the callbacks registered under key.
func (t *Topics[K, T]) Notify(key K, v T) {
	t.mu.Lock()
	l, ok := t.topics[key]
	t.mu.Unlock()

	if ok {
		l.Notify(v)
	}
}

// Len returns the number of callbacks registered under key.
func (t *Topics[K, T]) Len(key K) int {
	t.mu.Lock()
	l, ok := t.topics[key]
	t.mu.Unlock()

	if !ok {
		return 0
	}
	return l.Len()
}

// Clear removes every callback under every key.
func (t *Topics[K, T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.topics = nil
}

func (t *Topics[K, T]) listeners(key K) *Listeners[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.topics == nil {
		t.topics = make(map[K]*Listeners[T])
	}
	l, ok := t.topics[key]
	if !ok {
		l = &Listeners[T]{}
		t.topics[key] = l
	}
	return l
}
