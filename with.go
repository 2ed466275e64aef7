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

package with

import "reflect"

// Releaser is implemented by values that hold a resource for as long as they are bound.
type Releaser interface {
	// Release frees the resource. The binders call it exactly once per binding.
	Release()
}

// Owned evaluates expr once, passes the result to block and returns block's result.
//
// The block owns x. When x implements [Releaser] it is released after block
// returns or panics.
func Owned[T, R any](expr func() T, block func(x T) R) R {
	x := expr()
	defer release(&x)

	return block(x)
}

// Ref evaluates expr once, passes a read-only view of the result to block and
// returns block's result.
//
// The result is held by a temporary that is released after block returns or
// panics. The block must not modify x; this is checked by the withcheck analyzer.
func Ref[T, R any](expr func() T, block func(x T) R) R {
	tmp := expr()
	defer release(&tmp)

	return block(tmp)
}

// Mut evaluates expr once, passes an exclusive pointer to the result to block
// and returns block's result.
//
// The result is held by a temporary that is released after block returns or
// panics. Writes through x are visible to everything the value aliases.
// The pointer must not be retained after block returns.
func Mut[T, R any](expr func() T, block func(x *T) R) R {
	tmp := expr()
	defer release(&tmp)

	return block(&tmp)
}

// release calls Release on the value or its address, whichever implements [Releaser].
func release[T any](p *T) {
	if r, ok := releaser(p); ok {
		r.Release()
	}
}

// releaser returns the [Releaser] of *p. A nil pointer holds no resource and is never released.
func releaser[T any](p *T) (Releaser, bool) {
	if r, ok := any(*p).(Releaser); ok {
		return r, !nilPointer(r)
	}

	r, ok := any(p).(Releaser)

	return r, ok
}

// nilPointer reports whether v holds a nil pointer.
func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
