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

// Package analyzer implements the withcheck static analysis pass.
//
// # Overview
//
// The binders of [fillmore-labs.com/with] hand a value to a block and release
// it when the block returns. Go's type system can neither keep a block from
// modifying a read-only view nor from keeping the binding after its release.
// withcheck reports both.
//
// # Example
//
//	v := with.Ref(m.Lock, func(db guard.Guard[map[string]int]) int {
//	    db.Get()["hits"]++ // Mutation of read-only binding 'db' (wc:ro)
//	    return db.Get()["hits"]
//	})
//
//	p := with.Mut(m.Lock, func(db *guard.Guard[map[string]int]) *map[string]int {
//	    return db.Ptr() // Binding 'db' escapes its block by return (wc:esc)
//	})
//
// # Checks
//
//   - wc:ro: assignment, increment, delete, clear, address operator, pointer
//     method call, guard Set or a call returning a pointer through a binding
//     of [fillmore-labs.com/with.Ref].
//   - wc:esc: a binding, its address or a pointer into its resource is
//     returned, stored outside the block (also inside a composite literal or
//     appended to a slice), sent on a channel or captured by a goroutine. The -escape level selects the bindings checked: "full"
//     checks mutable views and bindings implementing Releaser, "resource"
//     only the latter.
//   - wc:rel: Release called on a binding that the binder releases anyway.
//   - wc:unu: a named binding never used; the suggested fix renames it to _.
//
// Diagnostics can be suppressed with a //nolint:withcheck comment on the
// line, function or file.
//
// # Configuration
//
// Checks are configured with [Option]s, command line flags or a TOML file
// passed with -config:
//
//	escape   = "resource"
//	readonly = true
//	release  = true
//	unused   = false
package analyzer
