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

import (
	"errors"
	"io"
)

// TryOwned is [Owned] for expressions and blocks that can fail.
//
// An error from expr is returned unchanged and block is not invoked.
// Otherwise x is released after block completes; a value implementing only
// [io.Closer] is closed and the close error is joined with block's error.
func TryOwned[T, R any](expr func() (T, error), block func(x T) (R, error)) (result R, err error) {
	x, err := expr()
	if err != nil {
		return result, err
	}
	defer closeOrRelease(&x, &err)

	return block(x)
}

// TryRef is [Ref] for expressions and blocks that can fail.
//
// Errors and release follow [TryOwned].
func TryRef[T, R any](expr func() (T, error), block func(x T) (R, error)) (result R, err error) {
	tmp, err := expr()
	if err != nil {
		return result, err
	}
	defer closeOrRelease(&tmp, &err)

	return block(tmp)
}

// TryMut is [Mut] for expressions and blocks that can fail.
//
// Errors and release follow [TryOwned].
func TryMut[T, R any](expr func() (T, error), block func(x *T) (R, error)) (result R, err error) {
	tmp, err := expr()
	if err != nil {
		return result, err
	}
	defer closeOrRelease(&tmp, &err)

	return block(&tmp)
}

// closeOrRelease releases *p. A value that is only an [io.Closer] is closed
// and a close error is joined into *err. Nil pointers are left alone.
func closeOrRelease[T any](p *T, err *error) {
	if r, ok := releaser(p); ok {
		r.Release()

		return
	}

	c, ok := any(*p).(io.Closer)
	if !ok || nilPointer(c) {
		return
	}

	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, cerr)
	}
}
