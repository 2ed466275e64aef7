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

package check

// Kind classifies a [Finding].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// ReadOnly is a mutation through a read-only binding.
	ReadOnly Kind = iota // ro

	// Escape is a binding that outlives its block.
	Escape // esc

	// Release is an explicit release of a binding inside its block.
	Release // rel

	// Unused is a named binding never used by its block.
	Unused // unu
)
