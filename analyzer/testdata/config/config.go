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

package config

import (
	"fillmore-labs.com/with"
	"fillmore-labs.com/with/guard"
)

func configured(m *guard.Mutex[map[string]int]) guard.Guard[map[string]int] {
	return with.Ref(m.Lock, func(db guard.Guard[map[string]int]) guard.Guard[map[string]int] {
		db.Get()["hits"]++ // want "Mutation of read-only binding 'db' by \\+\\+"
		db.Release()

		return db
	})
}

func ignored() int {
	return with.Ref(func() int { return 0 }, func(x int) int { return 1 })
}
