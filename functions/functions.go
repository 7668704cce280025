// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package functions is the thunk builder (component 9): it looks up a
// called function's name against a closed registry of call shapes and
// validates the argument count at construction time, so that once a
// *ast.Thunk exists its arity is already known-good.
package functions

import (
	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/errs"
)

// Registry maps a builtin function name to its call shape. It mirrors
// the real command runner's `Function::{Nullary,Unary,UnaryOpt,Binary,
// BinaryPlus,Ternary}` enum: the call shape is a small closed set, not an
// arbitrary min/max pair, so a switch over it is exhaustive.
var Registry = map[string]ast.ArityKind{
	"arch":                  ast.Nullary,
	"os":                    ast.Nullary,
	"os_family":             ast.Nullary,
	"invocation_directory":  ast.Nullary,
	"justfile":              ast.Nullary,
	"justfile_directory":    ast.Nullary,
	"uuid":                  ast.Nullary,

	"env_var":            ast.Unary,
	"quote":              ast.Unary,
	"trim":               ast.Unary,
	"lowercase":          ast.Unary,
	"uppercase":          ast.Unary,
	"absolute_path":      ast.Unary,
	"parent_directory":   ast.Unary,
	"file_stem":          ast.Unary,
	"extension":          ast.Unary,
	"without_extension":  ast.Unary,

	"env_var_or_default": ast.Binary,
	"join":               ast.BinaryVariadic,
	"replace":            ast.Ternary,

	"env":         ast.UnaryOptional,
	"path_exists": ast.Unary,
}

// bounds returns the minimum and maximum number of arguments an arity
// kind accepts; a maximum of -1 means unbounded.
func bounds(kind ast.ArityKind) (min, max int) {
	switch kind {
	case ast.Nullary:
		return 0, 0
	case ast.Unary:
		return 1, 1
	case ast.UnaryOptional:
		return 1, 2
	case ast.Binary:
		return 2, 2
	case ast.BinaryVariadic:
		return 2, -1
	case ast.Ternary:
		return 3, 3
	default:
		return 0, 0
	}
}

// New constructs a validated Thunk for a call to name with the given
// arguments, in already-parsed expression form. It is the thunk
// builder's sole entry point: nothing else in this package is reachable
// without going through an arity check first.
func New(name ast.Token, args []ast.Expression) (*ast.Thunk, error) {
	kind, ok := Registry[name.Lexeme]
	if !ok {
		return nil, errs.NewUnknownFunction(name.Pos(), name.Lexeme)
	}

	min, max := bounds(kind)
	found := len(args)
	if found < min || (max >= 0 && found > max) {
		return nil, errs.NewFunctionArgumentCountMismatch(name.Pos(), name.Lexeme, found, kind.String())
	}

	return &ast.Thunk{Name: name, Arity: kind, Args: args}, nil
}
