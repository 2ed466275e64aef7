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
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/with/internal/run"
)

// Public API constants for the withcheck analyzer.
const (
	name = "withcheck"
	url  = "https://pkg.go.dev/fillmore-labs.com/with/analyzer"
)

const doc = `withcheck reports misuse of bindings created by fillmore-labs.com/with

The binders Owned, Ref and Mut (and their Try variants) hand a value to a
function literal and release it afterwards. withcheck reports:

	wc:ro   mutation of a Ref binding
	wc:esc  a binding outliving its block (see -escape)
	wc:rel  Release called on a binding inside its block
	wc:unu  a named binding the block never uses`

// New returns a withcheck analyzer configured by opts, applied in order over the defaults.
//
// Each analyzer owns its settings, so analyzers built with different options
// can run side by side. Command line flags and -config modify the same settings.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is the withcheck analyzer with default settings, as used by cmd/withcheck.
var Analyzer = New()
