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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/with/analyzer/level"
	"fillmore-labs.com/with/internal/config"
	"fillmore-labs.com/with/internal/run"
)

// Option configures specific behavior of a [New] withcheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithEscape is an [Option] to configure which bindings are checked for escaping their block.
func WithEscape(escape level.Escape) Option { return escapeOption{escape: escape} }

type escapeOption struct{ escape level.Escape }

func (o escapeOption) apply(r *run.Options) {
	r.Escape = o.escape
}

func (o escapeOption) LogAttr() slog.Attr {
	return slog.String("escape", o.escape.String())
}

// WithReadOnly is an [Option] to configure whether mutations of read-only bindings are reported.
func WithReadOnly(readOnly bool) Option { return checkOption{flag: config.ReadOnlyCheck, key: "readonly", enabled: readOnly} }

// WithRelease is an [Option] to configure whether explicit releases inside a block are reported.
func WithRelease(release bool) Option { return checkOption{flag: config.ReleaseCheck, key: "release", enabled: release} }

// WithUnused is an [Option] to configure whether unused bindings are reported.
func WithUnused(unused bool) Option { return checkOption{flag: config.UnusedCheck, key: "unused", enabled: unused} }

type checkOption struct {
	flag    config.CheckFlags
	key     string
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.flag, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}
