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

// Package guard provides values protected by a mutex.
//
// Locking returns a guard giving access to the protected value until it is
// released. Guards implement [fillmore-labs.com/with.Releaser], so binding a
// lock call keeps the critical section as small as the block:
//
//	m := guard.New(map[string]string{"key": "value"})
//
//	v := with.Ref(m.Lock, func(db guard.Guard[map[string]string]) string {
//	    return db.Get()["key"]
//	})
package guard
