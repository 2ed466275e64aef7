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

package escape

import (
	"fillmore-labs.com/with"
	"fillmore-labs.com/with/guard"
)

type holder struct{ g guard.Guard[int] }

var (
	leaked  guard.Guard[int]
	pointer *int
	value   int
	list    []guard.Guard[int]
	held    holder
	byName  map[string]guard.Guard[int]
)

func returned(m *guard.Mutex[int]) guard.Guard[int] {
	return with.Ref(m.Lock, func(g guard.Guard[int]) guard.Guard[int] {
		return g // want "Binding 'g' escapes its block by return \\(wc:esc\\)"
	})
}

func pointerReturned(m *guard.Mutex[int]) *int {
	return with.Mut(m.Lock, func(g *guard.Guard[int]) *int {
		return g.Ptr() // want "Binding 'g' escapes its block by return"
	})
}

func assigned(m *guard.Mutex[int]) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int {
		leaked = g // want "Binding 'g' escapes its block by assignment"
		local := g

		return local.Get()
	})
}

func dereferenced(m *guard.Mutex[int]) int {
	return with.Mut(m.Lock, func(g *guard.Guard[int]) int {
		leaked = *g          // want "Binding 'g' escapes its block by assignment"
		pointer = (*g).Ptr() // want "Binding 'g' escapes its block by assignment"

		return 0
	})
}

func stored(m *guard.Mutex[int]) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int {
		list = append(list, g)                          // want "Binding 'g' escapes its block by assignment"
		held = holder{g}                                // want "Binding 'g' escapes its block by assignment"
		byName = map[string]guard.Guard[int]{"lock": g} // want "Binding 'g' escapes its block by assignment"
		local := []guard.Guard[int]{g}

		return len(local)
	})
}

func wrapped(m *guard.Mutex[int]) holder {
	return with.Ref(m.Lock, func(g guard.Guard[int]) holder {
		return holder{g: g} // want "Binding 'g' escapes its block by return"
	})
}

func wrappedPointer(m *guard.Mutex[int]) *holder {
	return with.Ref(m.Lock, func(g guard.Guard[int]) *holder {
		return &holder{g} // want "Binding 'g' escapes its block by return"
	})
}

func parenthesized(m *guard.Mutex[int]) guard.Guard[int] {
	return with.Ref(m.Lock, (func(g guard.Guard[int]) guard.Guard[int] {
		return g // want "Binding 'g' escapes its block by return"
	}))
}

func sent(m *guard.Mutex[int], ch chan<- guard.Guard[int]) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int {
		ch <- g // want "Binding 'g' escapes its block by channel send"

		return 0
	})
}

func spawned(m *guard.Mutex[int], done chan<- int) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int {
		go func() { done <- g.Get() }() // want "Binding 'g' escapes its block by goroutine"

		return 0
	})
}

func mutable() *int {
	return with.Mut(func() int { return 0 }, func(x *int) *int {
		return x // want "Binding 'x' escapes its block by return"
	})
}

func fallible(m *guard.Mutex[int]) (guard.Guard[int], error) {
	return with.TryOwned(func() (guard.Guard[int], error) { return m.Lock(), nil },
		func(g guard.Guard[int]) (guard.Guard[int], error) {
			return g, nil // want "Binding 'g' escapes its block by return"
		})
}

func allowed(m *guard.Mutex[int]) int {
	a := with.Ref(m.Lock, func(g guard.Guard[int]) int {
		value = g.Get()

		return g.Get()
	})

	b := with.Owned(func() int { return 1 }, func(x int) int {
		value = x

		return x
	})

	c := with.Mut(func() int { return 2 }, func(x *int) int {
		value = *x

		return *x
	})

	return a + b + c
}
