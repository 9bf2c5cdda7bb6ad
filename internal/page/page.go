// Package page tracks the lifecycle of one page load: it starts Loading and is resolved
// exactly once, either to Ready with the fetched rows or to Error.
package page

import (
	"errors"
	"sync"
)

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

var ErrAlreadyResolved = errors.New("page already resolved")

type Page[T any] struct {
	mu    sync.RWMutex
	state State
	rows  []T
	err   error
}

// New returns a page in the Loading state.
func New[T any]() *Page[T] {
	return &Page[T]{state: StateLoading}
}

// Resolve settles the page. A nil err makes it Ready with rows (an empty result is still
// Ready). A non-nil err makes it Error and drops rows.
func (p *Page[T]) Resolve(rows []T, err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateLoading {
		return ErrAlreadyResolved
	}
	if err != nil {
		p.state = StateError
		p.err = err
		return nil
	}
	if rows == nil {
		rows = []T{}
	}
	p.state = StateReady
	p.rows = rows
	return nil
}

func (p *Page[T]) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Rows returns the loaded rows; nil unless the page is Ready.
func (p *Page[T]) Rows() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rows
}

func (p *Page[T]) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}
