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

// Package run drives the withcheck pipeline over a package.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/with/analyzer/level"
	"fillmore-labs.com/with/internal/astutil"
	"fillmore-labs.com/with/internal/binder"
	"fillmore-labs.com/with/internal/check"
	"fillmore-labs.com/with/internal/config"
	"fillmore-labs.com/with/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the withcheck analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("withcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if o.Checks.None() && o.Escape == level.EscapeOff {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "WithCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	checker := check.New(p.TypesInfo, o.Checks, o.Escape)

	types := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.CallExpr)(nil),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		// Loop over all binder calls, skipping functions with nolint comment
		f.Inspect(types, func(c inspector.Cursor) bool {
			switch node := c.Node().(type) {
			case *ast.FuncDecl:
				return node.Body != nil && !astutil.DocHasNoLint(node.Doc)

			case *ast.CallExpr:
				b, ok := binder.Of(p.TypesInfo, node)
				if !ok {
					return true
				}

				block := c.ChildAt(edge.CallExpr_Args, 1)
				if block.Node() != b.Block { // parenthesized
					if block, ok = findBlock(c, b.Block); !ok {
						astutil.InternalError(p, node, "Block of %s not found", b.Name)

						return true
					}
				}

				findings := checker.Check(ctx, b, block)

				report.Findings(ctx, p, currentFile, b, findings)

				return true

			default:
				astutil.InternalError(p, node, "Unexpected node type: %T", node)

				return false
			}
		})
	}

	return nil, nil
}

// findBlock locates the cursor of a parenthesized function literal block.
func findBlock(call inspector.Cursor, lit *ast.FuncLit) (inspector.Cursor, bool) {
	for c := range call.Preorder((*ast.FuncLit)(nil)) {
		if c.Node() == lit {
			return c, true
		}
	}

	return call, false
}
