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

import "sync"

// Mutex is a value of type T protected by a [sync.Mutex].
//
// The zero value holds the zero T and is unlocked. A Mutex must not be copied after first use.
type Mutex[T any] struct {
	mu    sync.Mutex
	value T
}

// New returns a [Mutex] protecting value.
func New[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock locks m and returns a [Guard] that unlocks it on release.
func (m *Mutex[T]) Lock() Guard[T] {
	m.mu.Lock()

	return newGuard(&m.value, m.mu.Unlock)
}

// TryLock tries to lock m and reports whether it succeeded.
func (m *Mutex[T]) TryLock() (Guard[T], bool) {
	if !m.mu.TryLock() {
		return Guard[T]{}, false
	}

	return newGuard(&m.value, m.mu.Unlock), true
}

// RWMutex is a value of type T protected by a [sync.RWMutex].
//
// The zero value holds the zero T and is unlocked. An RWMutex must not be copied after first use.
type RWMutex[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewRW returns a [RWMutex] protecting value.
func NewRW[T any](value T) *RWMutex[T] {
	return &RWMutex[T]{value: value}
}

// Lock locks m for writing and returns a [Guard] that unlocks it on release.
func (m *RWMutex[T]) Lock() Guard[T] {
	m.mu.Lock()

	return newGuard(&m.value, m.mu.Unlock)
}

// TryLock tries to lock m for writing and reports whether it succeeded.
func (m *RWMutex[T]) TryLock() (Guard[T], bool) {
	if !m.mu.TryLock() {
		return Guard[T]{}, false
	}

	return newGuard(&m.value, m.mu.Unlock), true
}

// RLock locks m for reading and returns a [ReadGuard] that unlocks it on release.
func (m *RWMutex[T]) RLock() ReadGuard[T] {
	m.mu.RLock()

	return ReadGuard[T]{newState(&m.value, m.mu.RUnlock)}
}

// TryRLock tries to lock m for reading and reports whether it succeeded.
func (m *RWMutex[T]) TryRLock() (ReadGuard[T], bool) {
	if !m.mu.TryRLock() {
		return ReadGuard[T]{}, false
	}

	return ReadGuard[T]{newState(&m.value, m.mu.RUnlock)}, true
}
