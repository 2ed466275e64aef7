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

/*
Package with binds a value to a short-lived name for the duration of a block.

The binders evaluate an expression once, hand the result to a single-parameter
block and return the block's result. Whatever the expression produced is
released as soon as the block returns or panics, which keeps resources like
lock guards alive only as long as they are needed:

	m := guard.New(make(map[int]string))

	with.Mut(m.Lock, func(db *guard.Guard[map[int]string]) struct{} {
	    db.Get()[42] = "meaning of life"
	    return struct{}{}
	})

	// the lock is released here

# Binding Modes

  - [Owned] hands the value itself to the block.
  - [Ref] hands a read-only view of a temporary holding the value.
  - [Mut] hands a pointer to a temporary holding the value, so the block may
    modify it and everything the value aliases.

Each binder has an error-returning counterpart ([TryOwned], [TryRef], [TryMut])
for expressions and blocks that follow Go's (value, error) convention.

# Release

When the bound value, or a pointer to it, implements [Releaser], its Release
method is called exactly once after the block completes. The Try variants
additionally close values implementing [io.Closer] and report the close error.

# Misuse

Go cannot prevent a block from mutating a read-only view or from retaining its
binding after the block returns. The withcheck analyzer in
[fillmore-labs.com/with/analyzer] reports both at vet time.
*/
package with
