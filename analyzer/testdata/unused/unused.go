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

package unused

import (
	"fillmore-labs.com/with"
	"fillmore-labs.com/with/guard"
)

func locked(m *guard.Mutex[int]) int {
	return with.Ref(m.Lock, func(g guard.Guard[int]) int { // want "Binding 'g' is never used \\(wc:unu\\)"
		return 0
	})
}

func fallible() (int, error) {
	return with.TryMut(func() (int, error) { return 1, nil }, func(x *int) (int, error) { // want "Binding 'x' is never used"
		return 2, nil
	})
}

func used() int {
	a := with.Owned(func() int { return 1 }, func(_ int) int { return 2 })
	b := with.Mut(func() int { return 3 }, func(x *int) int { return *x })

	return a + b
}
