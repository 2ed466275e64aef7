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

package resource

import (
	"fillmore-labs.com/with"
	"fillmore-labs.com/with/guard"
)

func returned(m *guard.Mutex[int]) guard.Guard[int] {
	return with.Ref(m.Lock, func(g guard.Guard[int]) guard.Guard[int] {
		return g // want "Binding 'g' escapes its block by return"
	})
}

func pointerReturned(m *guard.Mutex[int]) *int {
	return with.Mut(m.Lock, func(g *guard.Guard[int]) *int {
		return g.Ptr() // want "Binding 'g' escapes its block by return"
	})
}

func mutable() *int {
	return with.Mut(func() int { return 0 }, func(x *int) *int {
		return x
	})
}
