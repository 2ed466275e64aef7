// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"errors"
	"sync/atomic"
)

// ErrReleased is the panic value when a guard is used after its release.
var ErrReleased = errors.New("guard: use of released guard")

// state is shared between all copies of a guard.
type state[T any] struct {
	value  atomic.Pointer[T]
	unlock func()
}

func newState[T any](value *T, unlock func()) *state[T] {
	s := &state[T]{unlock: unlock}
	s.value.Store(value)

	return s
}

func (s *state[T]) ptr() *T {
	if s == nil {
		panic(ErrReleased)
	}

	v := s.value.Load()
	if v == nil {
		panic(ErrReleased)
	}

	return v
}

// release unlocks once, even when copies are released concurrently.
func (s *state[T]) release() {
	if s == nil || s.value.Swap(nil) == nil {
		return
	}

	s.unlock()
}

func (s *state[T]) released() bool {
	return s == nil || s.value.Load() == nil
}

// Guard grants exclusive access to the value of a locked [Mutex] or [RWMutex].
//
// Copies of a Guard share the lock; releasing any of them releases all.
// Release may be called concurrently from several copies.
type Guard[T any] struct {
	s *state[T]
}

func newGuard[T any](value *T, unlock func()) Guard[T] {
	return Guard[T]{newState(value, unlock)}
}

// Get returns the protected value.
func (g Guard[T]) Get() T { return *g.s.ptr() }

// Set replaces the protected value.
func (g Guard[T]) Set(value T) { *g.s.ptr() = value }

// Ptr returns a pointer to the protected value. It is valid until the guard is released.
func (g Guard[T]) Ptr() *T { return g.s.ptr() }

// Released reports whether the lock has been released.
func (g Guard[T]) Released() bool { return g.s.released() }

// Release unlocks the mutex. Subsequent calls are no-ops.
func (g Guard[T]) Release() { g.s.release() }

// ReadGuard grants shared read access to the value of a read-locked [RWMutex].
type ReadGuard[T any] struct {
	s *state[T]
}

// Get returns the protected value.
func (g ReadGuard[T]) Get() T { return *g.s.ptr() }

// Released reports whether the read lock has been released.
func (g ReadGuard[T]) Released() bool { return g.s.released() }

// Release unlocks the read lock. Subsequent calls are no-ops.
func (g ReadGuard[T]) Release() { g.s.release() }
