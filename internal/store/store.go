// Package store holds the process-lifetime collections behind the API.
// A Collection is the substitution seam for a persistent backing store:
// checkout, auth and catalog only see Append/Find/All.
package store

import "sync"

// Collection is an append-only in-memory collection safe for concurrent
// use. Iteration order is insertion order.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

func New[T any]() *Collection[T] {
	return &Collection[T]{}
}

func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// AppendIf appends item only when no existing element matches exists. The
// check and the append happen under one critical section, so two concurrent
// callers cannot both insert.
func (c *Collection[T]) AppendIf(item T, exists func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if exists(it) {
			return false
		}
	}
	c.items = append(c.items, item)
	return true
}

// Find returns the first element matching the predicate.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// FindAll returns every element matching the predicate, in insertion order.
func (c *Collection[T]) FindAll(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, it := range c.items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// All returns a copy of the collection.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
