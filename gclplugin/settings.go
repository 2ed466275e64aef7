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

package gclplugin

import (
	"log/slog"

	withcheck "fillmore-labs.com/with/analyzer"
	"fillmore-labs.com/with/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Escape selects which bindings are checked for escaping their block.
	Escape *level.Escape `json:"escape,omitzero"`
	// ReadOnly enables checks for mutations of read-only bindings.
	ReadOnly *bool `json:"readonly,omitzero"`
	// Release enables checks for explicit releases inside a block.
	Release *bool `json:"release,omitzero"`
	// Unused enables checks for unused bindings.
	Unused *bool `json:"unused,omitzero"`
}

// LogValue implements [slog.LogValuer], listing the settings present.
func (s Settings) LogValue() slog.Value {
	var as []slog.Attr

	if s.Escape != nil {
		as = append(as, slog.String("escape", s.Escape.String()))
	}

	as = appendBool(as, "readonly", s.ReadOnly)
	as = appendBool(as, "release", s.Release)
	as = appendBool(as, "unused", s.Unused)

	return slog.GroupValue(as...)
}

func appendBool(as []slog.Attr, key string, value *bool) []slog.Attr {
	if value == nil {
		return as
	}

	return append(as, slog.Bool(key, *value))
}

// Options converts [Settings] into a list of [withcheck.Option] for the withcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []withcheck.Option {
	var opts []withcheck.Option

	opts = appendOption(opts, s.Escape, withcheck.WithEscape)
	opts = appendOption(opts, s.ReadOnly, withcheck.WithReadOnly)
	opts = appendOption(opts, s.Release, withcheck.WithRelease)
	opts = appendOption(opts, s.Unused, withcheck.WithUnused)

	return opts
}

// appendOption appends a non-nil setting to a [withcheck.Option] list.
func appendOption[T any](opts []withcheck.Option, value *T, constructor func(T) withcheck.Option) []withcheck.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
