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

package astutil

import "go/ast"

// Root returns the variable an expression accesses storage through.
//
// It follows selectors, index, slice and star expressions as well as method
// call receivers, so the root of `*db.Ptr()` and `db.Get()["k"]` is `db`.
// It returns nil when the expression has no such identifier, e.g. for calls
// of package-level functions.
func Root(e ast.Expr) *ast.Ident {
	for {
		switch x := e.(type) {
		case *ast.Ident:
			return x

		case *ast.ParenExpr:
			e = x.X

		case *ast.SelectorExpr:
			e = x.X

		case *ast.IndexExpr:
			e = x.X

		case *ast.IndexListExpr:
			e = x.X

		case *ast.SliceExpr:
			e = x.X

		case *ast.StarExpr:
			e = x.X

		case *ast.CallExpr:
			sel, ok := ast.Unparen(x.Fun).(*ast.SelectorExpr)
			if !ok {
				return nil
			}

			e = sel.X

		default:
			return nil
		}
	}
}
