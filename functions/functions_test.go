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

package functions

import (
	"testing"

	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(name string) ast.Token {
	return ast.Token{Lexeme: name, Line: 0, Column: 0, Offset: 0}
}

func lit(s string) ast.Expression {
	return ast.StringLiteral{Cooked: s}
}

func TestNewUnknownFunction(t *testing.T) {
	t.Parallel()

	_, err := New(tok("nonexistent"), nil)
	require.Error(t, err)

	unknown, ok := err.(errs.UnknownFunction)
	require.True(t, ok, "expected UnknownFunction, got %T", err)
	assert.Equal(t, "nonexistent", unknown.Function)
}

func TestNewNullaryRejectsArguments(t *testing.T) {
	t.Parallel()

	_, err := New(tok("arch"), []ast.Expression{lit("x")})
	require.Error(t, err)

	mismatch, ok := err.(errs.FunctionArgumentCountMismatch)
	require.True(t, ok, "expected FunctionArgumentCountMismatch, got %T", err)
	assert.Equal(t, 1, mismatch.Found)
}

func TestNewUnaryRequiresExactlyOne(t *testing.T) {
	t.Parallel()

	_, err := New(tok("trim"), nil)
	require.Error(t, err)
	_, ok := err.(errs.FunctionArgumentCountMismatch)
	require.True(t, ok)

	_, err = New(tok("trim"), []ast.Expression{lit("x"), lit("y")})
	require.Error(t, err)
	_, ok = err.(errs.FunctionArgumentCountMismatch)
	require.True(t, ok)

	thunk, err := New(tok("trim"), []ast.Expression{lit("x")})
	require.NoError(t, err)
	assert.Equal(t, ast.Unary, thunk.Arity)
}

func TestNewUnaryOptionalAcceptsOneOrTwo(t *testing.T) {
	t.Parallel()

	_, err := New(tok("env"), []ast.Expression{lit("PATH")})
	require.NoError(t, err)

	_, err = New(tok("env"), []ast.Expression{lit("PATH"), lit("default")})
	require.NoError(t, err)

	_, err = New(tok("env"), nil)
	require.Error(t, err)

	_, err = New(tok("env"), []ast.Expression{lit("a"), lit("b"), lit("c")})
	require.Error(t, err)
}

func TestNewBinaryRequiresExactlyTwo(t *testing.T) {
	t.Parallel()

	_, err := New(tok("env_var_or_default"), []ast.Expression{lit("x")})
	require.Error(t, err)

	thunk, err := New(tok("env_var_or_default"), []ast.Expression{lit("x"), lit("y")})
	require.NoError(t, err)
	assert.Len(t, thunk.Args, 2)
}

func TestNewBinaryVariadicAcceptsMoreThanTwo(t *testing.T) {
	t.Parallel()

	_, err := New(tok("join"), []ast.Expression{lit("a")})
	require.Error(t, err)

	thunk, err := New(tok("join"), []ast.Expression{lit("a"), lit("b"), lit("c"), lit("d")})
	require.NoError(t, err)
	assert.Len(t, thunk.Args, 4)
}

func TestNewTernaryRequiresExactlyThree(t *testing.T) {
	t.Parallel()

	_, err := New(tok("replace"), []ast.Expression{lit("a"), lit("b")})
	require.Error(t, err)

	thunk, err := New(tok("replace"), []ast.Expression{lit("a"), lit("b"), lit("c")})
	require.NoError(t, err)
	assert.Equal(t, ast.Ternary, thunk.Arity)
}
