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

package readonly

import (
	"fillmore-labs.com/with"
	"fillmore-labs.com/with/guard"
)

type counter struct{ n int }

func (c *counter) Inc() { c.n++ }

func (c counter) Value() int { return c.n }

func newCounter() counter { return counter{} }

func fields() int {
	return with.Ref(newCounter, func(c counter) int {
		c.n = 1   // want "Mutation of read-only binding 'c' by assignment \\(wc:ro\\)"
		c.n++     // want "Mutation of read-only binding 'c' by \\+\\+ \\(wc:ro\\)"
		c.Inc()   // want "Mutation of read-only binding 'c' by pointer method Inc \\(wc:ro\\)"
		p := &c.n // want "Mutation of read-only binding 'c' by address operator \\(wc:ro\\)"

		return *p + c.Value()
	})
}

func collections() int {
	with.Ref(func() map[string]int { return map[string]int{"a": 1} }, func(m map[string]int) int {
		m["b"] = 2     // want "Mutation of read-only binding 'm' by assignment"
		delete(m, "a") // want "Mutation of read-only binding 'm' by delete"
		clear(m)       // want "Mutation of read-only binding 'm' by clear"

		return len(m)
	})

	return with.Ref(func() []int { return make([]int, 3) }, func(s []int) int {
		for s[0] = range s { // want "Mutation of read-only binding 's' by range assignment"
			break
		}

		return s[0]
	})
}

func guarded(m *guard.Mutex[map[string]int]) int {
	return with.Ref(m.Lock, func(db guard.Guard[map[string]int]) int {
		db.Get()["hits"]++ // want "Mutation of read-only binding 'db' by \\+\\+"

		return db.Get()["hits"]
	})
}

func fallible() (int, error) {
	return with.TryRef(func() (counter, error) { return counter{}, nil }, func(c counter) (int, error) {
		c.n = 2 // want "Mutation of read-only binding 'c' by assignment"

		return c.n, nil
	})
}

func allowed(m *guard.Mutex[int]) int {
	a := with.Owned(newCounter, func(c counter) int {
		c.n = 1
		c.Inc()

		return c.n
	})

	b := with.Mut(newCounter, func(c *counter) int {
		c.n = 1
		c.Inc()

		return c.n
	})

	d := with.Ref(newCounter, func(c counter) int {
		n := c.n
		n++

		return n + c.Value()
	})

	e := with.Ref(m.Lock, func(g guard.Guard[int]) int {
		return g.Get() + 1
	})

	return a + b + d + e
}

func guardMutation(m *guard.Mutex[int]) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int {
		g.Set(g.Get() + 1) // want "Mutation of read-only binding 'g' by method Set \\(wc:ro\\)"
		p := g.Ptr()       // want "Mutation of read-only binding 'g' by pointer result of Ptr \\(wc:ro\\)"
		*p = 6

		return g.Get()
	})
}

func guardMutable(m *guard.Mutex[int]) int {
	return with.Mut(m.Lock, func(g *guard.Guard[int]) int {
		g.Set(g.Get() + 1)
		*g.Ptr() = 6

		return g.Get()
	})
}
