/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package singleton

import (
	"sync"
)

// Singleton holds at most one live instance of T. The instance is built
// on first access through the constructor given to New, so a package can
// keep the constructor of T unexported and only hand out the holder.
//
// The holder lock only guards the instance pointer. It's never held while
// the managed value is used, so T is free to use its own lock (and to call
// back into code that reaches the holder) without a lock ordering cycle
// against construction.
type Singleton[T any] struct {
	mux      sync.Mutex
	instance *T

	ctor func() *T
	dtor func(*T)

	autoClose  bool
	registered bool
}

type Option func(*options)

type options struct {
	autoClose bool
}

// WithAutoClose registers Close with the exit hooks the first time an
// instance is created.
func WithAutoClose() Option {
	return func(o *options) {
		o.autoClose = true
	}
}

func New[T any](ctor func() *T, dtor func(*T), opts ...Option) *Singleton[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if ctor == nil {
		ctor = func() *T { return new(T) }
	}

	return &Singleton[T]{
		ctor:      ctor,
		dtor:      dtor,
		autoClose: o.autoClose,
	}
}

// Instance returns the live instance, creating it when needed.
func (s *Singleton[T]) Instance() *T {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.instance == nil {
		s.instance = s.ctor()
		if s.autoClose && !s.registered {
			AtExit(s.exitHook)
			s.registered = true
		}
	}

	return s.instance
}

// Close destroys the instance if present. A later Instance call builds
// a new one.
func (s *Singleton[T]) Close() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.instance != nil {
		if s.dtor != nil {
			s.dtor(s.instance)
		}
		s.instance = nil
	}
}

// exitHook closes the instance and lets a later Instance call register
// again, since RunExitHooks forgets the hooks it ran.
func (s *Singleton[T]) exitHook() {
	s.mux.Lock()
	s.registered = false
	s.mux.Unlock()

	s.Close()
}

func (s *Singleton[T]) IsConstructed() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.instance != nil
}
