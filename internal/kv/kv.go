// Package kv defines the persistent key-value store the timesheet collections
// live in. Values are JSON documents; writes replace the whole value for a
// key. Every backend broadcasts a best-effort change signal per key so other
// consumers in the same process can re-read instead of trusting a cache.
package kv

import (
	"encoding/json"
	"sync"
)

// Store is the persistence contract. Get reports absence through the bool
// rather than an error; Set serializes the value to JSON and replaces
// whatever was stored under the key.
type Store interface {
	Get(key string) (json.RawMessage, bool, error)
	Set(key string, value any) error
	// Watch returns a channel that receives a signal after each Set on key.
	// Signals are best-effort: a slow receiver may miss intermediate writes,
	// but a signal always means "re-read the key".
	Watch(key string) <-chan struct{}
}

// Notifier implements the Watch side of a Store. Backends embed it and call
// Notify after each successful write.
type Notifier struct {
	mu       sync.Mutex
	watchers map[string][]chan struct{}
}

// Watch registers a new watcher channel for key.
func (n *Notifier) Watch(key string) <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.watchers == nil {
		n.watchers = make(map[string][]chan struct{})
	}
	ch := make(chan struct{}, 1)
	n.watchers[key] = append(n.watchers[key], ch)
	return ch
}

// Notify signals every watcher of key without blocking. A watcher whose
// buffer is full already has a pending signal, which is enough.
func (n *Notifier) Notify(key string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.watchers[key] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
