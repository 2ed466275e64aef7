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

// Package report turns check findings into diagnostics.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/with/internal/astutil"
	"fillmore-labs.com/with/internal/binder"
	"fillmore-labs.com/with/internal/check"
)

// Findings emits diagnostics for the findings in the block of binding b.
//
// Findings on a line carrying a //nolint:withcheck comment are suppressed.
func Findings(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, b binder.Binding, findings []check.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		if currentFile.NoLintComment(f.Node.Pos()) {
			continue
		}

		p.Report(createDiagnostic(b, f))
	}
}

// createDiagnostic constructs the diagnostic for a single finding.
func createDiagnostic(b binder.Binding, f check.Finding) analysis.Diagnostic {
	name := b.Param.Name

	diagnostic := analysis.Diagnostic{
		Pos:      f.Node.Pos(),
		End:      f.Node.End(),
		Category: f.Kind.String(),
		Related: []analysis.RelatedInformation{{
			Pos:     b.Call.Pos(),
			End:     b.Call.Fun.End(),
			Message: fmt.Sprintf("Bound by %s in %s mode", b.Name, b.Mode),
		}},
	}

	switch f.Kind {
	case check.ReadOnly:
		diagnostic.Message = fmt.Sprintf("Mutation of read-only binding '%s' by %s (wc:%s)", name, f.Via, f.Kind)

	case check.Escape:
		diagnostic.Message = fmt.Sprintf("Binding '%s' escapes its block by %s (wc:%s)", name, f.Via, f.Kind)

	case check.Release:
		diagnostic.Message = fmt.Sprintf("Binding '%s' is released inside its block (wc:%s)", name, f.Kind)

	case check.Unused:
		diagnostic.Message = fmt.Sprintf("Binding '%s' is never used (wc:%s)", name, f.Kind)
		diagnostic.SuggestedFixes = blankFix(b)

	default:
		diagnostic.Message = fmt.Sprintf("Unknown finding %s for binding '%s' (wc:int)", f.Kind, name)
	}

	return diagnostic
}
