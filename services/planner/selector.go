package planner

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned for a fetch whose date is no longer selected.
var ErrSuperseded = errors.New("selection superseded by a newer one")

// Selector tracks the currently selected key (a date) and makes sure only
// the latest selection's fetch result is delivered. Starting a new selection
// cancels the previous fetch's context.
type Selector[T any] struct {
	mu     sync.Mutex
	gen    uint64
	key    string
	cancel context.CancelFunc
}

// Select runs fetch for key. If another Select starts before fetch returns,
// the result is dropped and ErrSuperseded is returned.
func (s *Selector[T]) Select(ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.key = key
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	v, err := fetch(fetchCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		cancel()
		return zero, ErrSuperseded
	}
	s.cancel = nil
	cancel()
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Current returns the key of the latest selection.
func (s *Selector[T]) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

// Reset cancels any in-flight fetch and clears the selection.
func (s *Selector[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.key = ""
}
