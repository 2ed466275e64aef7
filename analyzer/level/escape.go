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

// Package level defines the levels of checks that are more than on or off.
package level

import (
	"fmt"
	"strings"
)

// Escape specifies which bindings are checked for escaping their block.
type Escape uint8

const (
	// EscapeFull checks mutable views and all bindings holding a resource.
	EscapeFull Escape = iota

	// EscapeResource only checks bindings holding a resource, i.e. implementing Releaser.
	EscapeResource

	// EscapeOff disables escape checks.
	EscapeOff
)

// MarshalText implements [encoding.TextMarshaler].
func (o Escape) MarshalText() ([]byte, error) {
	switch o {
	case EscapeFull:
		return []byte("full"), nil

	case EscapeResource:
		return []byte("resource"), nil

	case EscapeOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown escape level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Escape) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "full":
		*o = EscapeFull

	case "resource":
		*o = EscapeResource

	case "off", "false":
		*o = EscapeOff

	default:
		return fmt.Errorf("unknown escape level %q", string(text))
	}

	return nil
}

// String returns the textual representation of the level.
func (o Escape) String() string {
	b, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Escape(%d)", uint8(o))
	}

	return string(b)
}
