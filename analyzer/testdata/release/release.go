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

package release

import (
	"fillmore-labs.com/with"
	"fillmore-labs.com/with/guard"
)

type handle struct{ closed bool }

func (h *handle) Release() { h.closed = true }

func deferred(m *guard.Mutex[int]) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int {
		defer g.Release() // want "Binding 'g' is released inside its block \\(wc:rel\\)"

		return g.Get()
	})
}

func explicit(m *guard.Mutex[int]) int {
	return with.Mut(m.Lock, func(g *guard.Guard[int]) int {
		n := g.Get()
		g.Release() // want "Binding 'g' is released inside its block"

		return n
	})
}

func dereferenced(m *guard.Mutex[int]) int {
	return with.Mut(m.Lock, func(g *guard.Guard[int]) int {
		(*g).Release() // want "Binding 'g' is released inside its block"

		return 0
	})
}

func pointerReceiver() bool {
	return with.Mut(func() handle { return handle{} }, func(h *handle) bool {
		h.Release() // want "Binding 'h' is released inside its block"

		return h.closed
	})
}

func other(m, n *guard.Mutex[int]) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int {
		o := n.Lock()
		o.Release()

		return g.Get()
	})
}
