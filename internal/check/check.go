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

// Package check inspects the blocks of binder calls.
package check

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/with/analyzer/level"
	"fillmore-labs.com/with/internal/astutil"
	"fillmore-labs.com/with/internal/binder"
	"fillmore-labs.com/with/internal/config"
)

// Finding is a problem in the block of a binding.
type Finding struct {
	// Kind classifies the problem.
	Kind Kind

	// Node is where the problem occurs.
	Node ast.Node

	// Via describes how the problem occurs, e.g. "return" for an escape.
	Via string
}

// Checker runs the enabled checks on binder blocks.
type Checker struct {
	info   *types.Info
	checks config.Checks
	escape level.Escape
}

// New creates a [Checker] running checks with the given escape level.
func New(info *types.Info, checks config.Checks, escape level.Escape) Checker {
	return Checker{info: info, checks: checks, escape: escape}
}

// Check returns the findings for the binding b, whose function literal block is at cursor block.
func (c Checker) Check(ctx context.Context, b binder.Binding, block inspector.Cursor) []Finding {
	if b.Var == nil {
		return nil // unnamed or blank
	}

	defer trace.StartRegion(ctx, "Check").End()

	if c.checks.Enabled(config.UnusedCheck) && !c.used(b, block) {
		return []Finding{{Kind: Unused, Node: b.Param}}
	}

	var findings []Finding

	if b.Mode == binder.Ref && c.checks.Enabled(config.ReadOnlyCheck) {
		findings = c.readOnly(findings, b, block)
	}

	if c.escapeChecked(b) {
		findings = c.escapes(findings, b, block)
	}

	if b.Releasable && c.checks.Enabled(config.ReleaseCheck) {
		findings = c.releases(findings, b, block)
	}

	return findings
}

// used reports whether the block references the binding.
func (c Checker) used(b binder.Binding, block inspector.Cursor) bool {
	for n := range block.Preorder((*ast.Ident)(nil)) {
		if c.is(b, n.Node().(*ast.Ident)) {
			return true
		}
	}

	return false
}

// readOnly collects mutations through a read-only binding.
func (c Checker) readOnly(findings []Finding, b binder.Binding, block inspector.Cursor) []Finding {
	filter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.CallExpr)(nil),
	}

	for n := range block.Preorder(filter...) {
		switch node := n.Node().(type) {
		case *ast.AssignStmt:
			for _, lhs := range node.Lhs {
				if c.rooted(b, lhs) {
					findings = append(findings, Finding{Kind: ReadOnly, Node: lhs, Via: "assignment"})
				}
			}

		case *ast.IncDecStmt:
			if c.rooted(b, node.X) {
				findings = append(findings, Finding{Kind: ReadOnly, Node: node.X, Via: node.Tok.String()})
			}

		case *ast.RangeStmt:
			if node.Tok != token.ASSIGN {
				continue
			}

			for _, e := range [...]ast.Expr{node.Key, node.Value} {
				if e != nil && c.rooted(b, e) {
					findings = append(findings, Finding{Kind: ReadOnly, Node: e, Via: "range assignment"})
				}
			}

		case *ast.UnaryExpr:
			if node.Op == token.AND && c.rooted(b, node.X) {
				findings = append(findings, Finding{Kind: ReadOnly, Node: node, Via: "address operator"})
			}

		case *ast.CallExpr:
			if via, ok := c.mutatingCall(b, node); ok {
				findings = append(findings, Finding{Kind: ReadOnly, Node: node, Via: via})
			}
		}
	}

	return findings
}

// mutatingCall reports whether call modifies storage reached through the binding.
func (c Checker) mutatingCall(b binder.Binding, call *ast.CallExpr) (string, bool) {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		switch name := c.builtin(fun); name {
		case "delete", "clear":
			return name, len(call.Args) > 0 && c.rooted(b, call.Args[0])
		}

	case *ast.SelectorExpr:
		if !c.rooted(b, fun.X) {
			return "", false
		}

		if sel, ok := c.info.Selections[fun]; ok && sel.Kind() == types.MethodVal {
			if mutator(sel) {
				return "method " + fun.Sel.Name, true
			}

			// The receiver is addressed implicitly.
			if sig, ok := sel.Obj().Type().(*types.Signature); ok && sig.Recv() != nil &&
				isPointer(sig.Recv().Type()) && !isPointer(c.info.TypeOf(fun.X)) {
				return "pointer method " + fun.Sel.Name, true
			}
		}

		// A pointer result is a mutable handle.
		if isPointer(c.info.TypeOf(call)) {
			return "pointer result of " + fun.Sel.Name, true
		}
	}

	return "", false
}

// mutators are value receiver methods writing through shared state, by receiver type.
var mutators = map[string][]string{
	binder.GuardPath + ".Guard": {"Set"},
}

// mutator reports whether the method selection sel is listed in mutators.
func mutator(sel *types.Selection) bool {
	t := sel.Recv()
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}

	key := named.Obj().Pkg().Path() + "." + named.Obj().Name()

	return slices.Contains(mutators[key], sel.Obj().Name())
}

// escapeChecked reports whether escapes of b are checked at the configured level.
func (c Checker) escapeChecked(b binder.Binding) bool {
	switch c.escape {
	case level.EscapeOff:
		return false

	case level.EscapeResource:
		return b.Releasable

	default:
		return b.Releasable || b.Mode == binder.Mut
	}
}

// escapes collects places where the binding outlives its block.
func (c Checker) escapes(findings []Finding, b binder.Binding, block inspector.Cursor) []Finding {
	filter := []ast.Node{
		(*ast.ReturnStmt)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.SendStmt)(nil),
		(*ast.GoStmt)(nil),
	}

	for n := range block.Preorder(filter...) {
		switch node := n.Node().(type) {
		case *ast.ReturnStmt:
			if enclosingFunc(n) != b.Block {
				continue // returns from a nested function literal
			}

			for _, r := range node.Results {
				if c.escaping(b, r) {
					findings = append(findings, Finding{Kind: Escape, Node: r, Via: "return"})
				}
			}

		case *ast.AssignStmt:
			if len(node.Lhs) != len(node.Rhs) {
				continue
			}

			for i, rhs := range node.Rhs {
				if c.escaping(b, rhs) && c.outside(b, node.Lhs[i]) {
					findings = append(findings, Finding{Kind: Escape, Node: rhs, Via: "assignment"})
				}
			}

		case *ast.SendStmt:
			if c.escaping(b, node.Value) {
				findings = append(findings, Finding{Kind: Escape, Node: node.Value, Via: "channel send"})
			}

		case *ast.GoStmt:
			if c.captured(b, n) {
				findings = append(findings, Finding{Kind: Escape, Node: node, Via: "goroutine"})
			}
		}
	}

	return findings
}

// escaping reports whether e carries the binding, or storage only valid while it is bound.
func (c Checker) escaping(b binder.Binding, e ast.Expr) bool {
	switch x := ast.Unparen(e).(type) {
	case *ast.Ident:
		return c.is(b, x)

	case *ast.StarExpr: // copy of a resource bound by Mut
		return b.Releasable && c.direct(b, x.X)

	case *ast.UnaryExpr:
		return x.Op == token.AND && (c.rooted(b, x.X) || c.escaping(b, x.X))

	case *ast.CompositeLit:
		for _, elt := range x.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				elt = kv.Value
			}

			if c.escaping(b, elt) {
				return true
			}
		}

		return false

	case *ast.CallExpr:
		if id, ok := ast.Unparen(x.Fun).(*ast.Ident); ok && c.builtin(id) == "append" {
			for i, arg := range x.Args {
				if i > 0 && c.escaping(b, arg) {
					return true
				}
			}

			return false
		}

		// pointer into a held resource
		return b.Releasable && c.rooted(b, x) && isPointer(c.info.TypeOf(x))

	default:
		return false
	}
}

// outside reports whether the assignment target lhs lives outside the block.
func (c Checker) outside(b binder.Binding, lhs ast.Expr) bool {
	id := astutil.Root(lhs)
	if id == nil {
		return true
	}

	obj := c.info.ObjectOf(id)
	if obj == nil {
		return false // blank identifier
	}

	return obj.Pos() < b.Block.Pos() || b.Block.End() <= obj.Pos()
}

// captured reports whether the go statement at n references the binding.
func (c Checker) captured(b binder.Binding, n inspector.Cursor) bool {
	for id := range n.Preorder((*ast.Ident)(nil)) {
		if c.is(b, id.Node().(*ast.Ident)) {
			return true
		}
	}

	return false
}

// releases collects explicit Release calls on a releasable binding.
func (c Checker) releases(findings []Finding, b binder.Binding, block inspector.Cursor) []Finding {
	for n := range block.Preorder((*ast.CallExpr)(nil)) {
		call := n.Node().(*ast.CallExpr)

		sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Release" || len(call.Args) != 0 {
			continue
		}

		if s, ok := c.info.Selections[sel]; ok && s.Kind() == types.MethodVal && c.direct(b, sel.X) {
			findings = append(findings, Finding{Kind: Release, Node: call, Via: "call"})
		}
	}

	return findings
}

// builtin returns the name of the builtin function id refers to, or "".
func (c Checker) builtin(id *ast.Ident) string {
	if b, ok := c.info.Uses[id].(*types.Builtin); ok {
		return b.Name()
	}

	return ""
}

// is reports whether id refers to the binding.
func (c Checker) is(b binder.Binding, id *ast.Ident) bool {
	return c.info.Uses[id] == types.Object(b.Var)
}

// direct reports whether e is the binding or, for Mut, its dereference.
func (c Checker) direct(b binder.Binding, e ast.Expr) bool {
	e = ast.Unparen(e)
	if star, ok := e.(*ast.StarExpr); ok {
		e = ast.Unparen(star.X)
	}

	id, ok := e.(*ast.Ident)

	return ok && c.is(b, id)
}

// rooted reports whether e accesses storage through the binding.
func (c Checker) rooted(b binder.Binding, e ast.Expr) bool {
	id := astutil.Root(e)

	return id != nil && c.is(b, id)
}

// enclosingFunc returns the innermost function literal enclosing n.
func enclosingFunc(n inspector.Cursor) ast.Node {
	for p := n.Parent(); p.Node() != nil; p = p.Parent() {
		if lit, ok := p.Node().(*ast.FuncLit); ok {
			return lit
		}
	}

	return nil
}

func isPointer(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Pointer)

	return ok
}
