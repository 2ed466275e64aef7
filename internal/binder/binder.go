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

// Package binder recognizes calls of the binders in [fillmore-labs.com/with].
package binder

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Path is the import path of the binder package.
const Path = "fillmore-labs.com/with"

// GuardPath is the import path of the guard package.
const GuardPath = Path + "/guard"

// releaserName is the name of the interface implemented by values released after their block.
const releaserName = "Releaser"

var binders = map[string]Mode{
	"Owned":    Owned,
	"Ref":      Ref,
	"Mut":      Mut,
	"TryOwned": Owned,
	"TryRef":   Ref,
	"TryMut":   Mut,
}

// Binding describes a binder call with a function literal block.
type Binding struct {
	// Name is the name of the called binder, e.g. "TryMut".
	Name string

	// Mode is the ownership mode of the binding.
	Mode Mode

	// Call is the binder call.
	Call *ast.CallExpr

	// Block is the function literal passed as block.
	Block *ast.FuncLit

	// Param is the identifier of the block parameter, nil when unnamed.
	Param *ast.Ident

	// Var is the bound variable, nil when unnamed or blank.
	Var *types.Var

	// Releasable indicates that the bound value implements the Releaser interface.
	Releasable bool
}

// Of returns the [Binding] for call, if call is a binder call with a function literal block.
func Of(info *types.Info, call *ast.CallExpr) (Binding, bool) {
	fun, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fun.Pkg() == nil || fun.Pkg().Path() != Path {
		return Binding{}, false
	}

	mode, ok := binders[fun.Name()]
	if !ok || len(call.Args) != 2 {
		return Binding{}, false
	}

	block, ok := ast.Unparen(call.Args[1]).(*ast.FuncLit)
	if !ok || block.Type.Params == nil || len(block.Type.Params.List) != 1 {
		return Binding{}, false
	}

	b := Binding{
		Name:  fun.Name(),
		Mode:  mode,
		Call:  call,
		Block: block,
	}

	field := block.Type.Params.List[0]
	if len(field.Names) == 1 {
		b.Param = field.Names[0]

		if v, ok := info.Defs[b.Param].(*types.Var); ok && b.Param.Name != "_" {
			b.Var = v
		}
	}

	if t := info.TypeOf(field.Type); t != nil {
		b.Releasable = releasable(fun.Pkg(), valueType(t, mode))
	}

	return b, true
}

// valueType returns the type of the bound value for a block parameter of type t.
func valueType(t types.Type, mode Mode) types.Type {
	if mode != Mut {
		return t
	}

	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}

// releasable reports whether t or *t implements the Releaser interface of pkg.
func releasable(pkg *types.Package, t types.Type) bool {
	obj, ok := pkg.Scope().Lookup(releaserName).(*types.TypeName)
	if !ok {
		return false
	}

	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return false
	}

	if types.Implements(t, iface) {
		return true
	}

	if _, ok := t.Underlying().(*types.Interface); ok {
		return false
	}

	return types.Implements(types.NewPointer(t), iface)
}
