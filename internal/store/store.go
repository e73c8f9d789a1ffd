// Package store holds the current parse result in process memory.
//
// There is deliberately no ambient singleton: callers own a ResultStore
// handle and pass it to whatever needs read or write access. A new parse
// replaces the stored result wholesale; there is no in-place merge.
package store

import (
	"sync"

	"github.com/JonMunkholm/exportparse/internal/core"
)

// ResultStore is an explicit handle for the single live Result.
type ResultStore struct {
	mu     sync.RWMutex
	result *core.Result
}

// New creates an empty ResultStore.
func New() *ResultStore {
	return &ResultStore{}
}

// Set replaces the stored result with r.
func (s *ResultStore) Set(r *core.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = r
}

// Get returns the stored result, or false when none is set.
func (s *ResultStore) Get() (*core.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.result != nil
}

// Clear drops the stored result.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
}
