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

package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/attrs"
	"github.com/kralicky/recipec/errs"
)

const root = "justfile"

func tok(lexeme string, line, column, offset int) ast.Token {
	return ast.Token{Lexeme: lexeme, Path: root, Line: line, Column: column, Offset: offset}
}

func analyze(t *testing.T, items ...ast.Item) (*Justfile, error) {
	t.Helper()
	asts := map[string]*ast.Ast{root: {Items: items}}
	a := New(asts, attrs.Linux)
	return a.Analyze(root, []string{root})
}

func TestDuplicateAliasIsRedefinition(t *testing.T) {
	t.Parallel()

	// alias foo := bar\nalias foo := baz
	_, err := analyze(t,
		ast.AliasItem{Alias: ast.Alias{Name: tok("foo", 0, 6, 6), Target: tok("bar", 0, 13, 13)}},
		ast.AliasItem{Alias: ast.Alias{Name: tok("foo", 1, 6, 23), Target: tok("baz", 1, 13, 30)}},
	)
	require.Error(t, err)

	redef, ok := err.(errs.Redefinition)
	require.True(t, ok, "expected Redefinition, got %T", err)
	assert.Equal(t, "alias", redef.FirstKind)
	assert.Equal(t, "alias", redef.SecondKind)
	assert.Equal(t, "foo", redef.Name)
	assert.Equal(t, 0, redef.FirstLine)
	assert.Equal(t, 23, redef.Position().Offset)
	assert.Equal(t, 1, redef.Position().Line)
	assert.Equal(t, 6, redef.Position().Column)
	assert.Equal(t, 3, redef.Position().Width)
}

func TestAliasWithUnknownTarget(t *testing.T) {
	t.Parallel()

	_, err := analyze(t,
		ast.AliasItem{Alias: ast.Alias{Name: tok("foo", 0, 6, 6), Target: tok("bar", 0, 13, 13)}},
	)
	require.Error(t, err)

	target, ok := err.(errs.UnknownAliasTarget)
	require.True(t, ok, "expected UnknownAliasTarget, got %T", err)
	assert.Equal(t, "foo", target.Alias)
	assert.Equal(t, "bar", target.Target)
	assert.Equal(t, 6, target.Position().Offset)
}

func TestCircularRecipeDependency(t *testing.T) {
	t.Parallel()

	// a: b\nb: a
	recipeA := ast.Recipe{
		Name:         tok("a", 0, 0, 0),
		Dependencies: []ast.Dependency{{Recipe: tok("b", 0, 3, 3)}},
	}
	recipeB := ast.Recipe{
		Name:         tok("b", 1, 0, 5),
		Dependencies: []ast.Dependency{{Recipe: tok("a", 1, 3, 8)}},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipeA}, ast.RecipeItem{Recipe: recipeB})
	require.Error(t, err)

	circular, ok := err.(errs.CircularRecipeDependency)
	require.True(t, ok, "expected CircularRecipeDependency, got %T", err)
	assert.Equal(t, "b", circular.Recipe)
	assert.Equal(t, []string{"a", "b", "a"}, circular.Circle)
	assert.Equal(t, 8, circular.Position().Offset)
}

func TestSelfRecipeDependency(t *testing.T) {
	t.Parallel()

	// a: a
	recipeA := ast.Recipe{
		Name:         tok("a", 0, 0, 0),
		Dependencies: []ast.Dependency{{Recipe: tok("a", 0, 3, 3)}},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipeA})
	require.Error(t, err)

	circular, ok := err.(errs.CircularRecipeDependency)
	require.True(t, ok, "expected CircularRecipeDependency, got %T", err)
	assert.Equal(t, "a", circular.Recipe)
	assert.Equal(t, []string{"a", "a"}, circular.Circle)
}

func TestUnknownDependency(t *testing.T) {
	t.Parallel()

	// a: b
	recipeA := ast.Recipe{
		Name:         tok("a", 0, 0, 0),
		Dependencies: []ast.Dependency{{Recipe: tok("b", 0, 3, 3)}},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipeA})
	require.Error(t, err)

	unknown, ok := err.(errs.UnknownDependency)
	require.True(t, ok, "expected UnknownDependency, got %T", err)
	assert.Equal(t, "a", unknown.Recipe)
	assert.Equal(t, "b", unknown.Unknown)
}

func TestRequiredParameterFollowsDefaultParameter(t *testing.T) {
	t.Parallel()

	// hello arg='foo' bar:
	recipe := ast.Recipe{
		Name: tok("hello", 0, 0, 0),
		Parameters: []ast.Parameter{
			{Name: tok("arg", 0, 6, 6), Default: ast.StringLiteral{Token: tok(`'foo'`, 0, 10, 10), Cooked: "foo"}},
			{Name: tok("bar", 0, 16, 16), Kind: ast.Singular},
		},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipe})
	require.Error(t, err)

	required, ok := err.(errs.RequiredParameterFollowsDefaultParameter)
	require.True(t, ok, "expected RequiredParameterFollowsDefaultParameter, got %T", err)
	assert.Equal(t, "bar", required.Parameter)
	assert.Equal(t, 16, required.Position().Offset)
}

func TestExtraLeadingWhitespace(t *testing.T) {
	t.Parallel()

	// a:\n blah\n  blarg
	recipe := ast.Recipe{
		Name: tok("a", 0, 0, 0),
		Body: []ast.Line{
			{Fragments: []ast.Fragment{ast.Text{Token: tok("blah", 1, 1, 4)}}},
			{Fragments: []ast.Fragment{ast.Text{Token: tok(" blarg", 2, 1, 10)}}},
		},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipe})
	require.Error(t, err)

	whitespace, ok := err.(errs.ExtraLeadingWhitespace)
	require.True(t, ok, "expected ExtraLeadingWhitespace, got %T", err)
	assert.Equal(t, 10, whitespace.Position().Offset)
	assert.Equal(t, 6, whitespace.Position().Width)
}

func TestUnknownInterpolationVariable(t *testing.T) {
	t.Parallel()

	// x:\n {{   hello}}
	recipe := ast.Recipe{
		Name: tok("x", 0, 0, 0),
		Body: []ast.Line{
			{Fragments: []ast.Fragment{ast.Interpolation{
				Expression: ast.Variable{Token: tok("hello", 1, 6, 9)},
			}}},
		},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipe})
	require.Error(t, err)

	undefined, ok := err.(errs.UndefinedVariable)
	require.True(t, ok, "expected UndefinedVariable, got %T", err)
	assert.Equal(t, "hello", undefined.Variable)
	assert.Equal(t, 9, undefined.Position().Offset)
}

func TestUnknownVariableInDefault(t *testing.T) {
	t.Parallel()

	// a f=foo:
	recipe := ast.Recipe{
		Name: tok("a", 0, 0, 0),
		Parameters: []ast.Parameter{
			{Name: tok("f", 0, 2, 2), Default: ast.Variable{Token: tok("foo", 0, 4, 4)}},
		},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipe})
	require.Error(t, err)

	undefined, ok := err.(errs.UndefinedVariable)
	require.True(t, ok, "expected UndefinedVariable, got %T", err)
	assert.Equal(t, "foo", undefined.Variable)
	assert.Equal(t, 4, undefined.Position().Offset)
}

func TestUnknownVariableInDependencyArgument(t *testing.T) {
	t.Parallel()

	// bar x:\nfoo: (bar baz)
	recipeBar := ast.Recipe{
		Name:       tok("bar", 0, 0, 0),
		Parameters: []ast.Parameter{{Name: tok("x", 0, 4, 4)}},
	}
	recipeFoo := ast.Recipe{
		Name: tok("foo", 1, 0, 7),
		Dependencies: []ast.Dependency{{
			Recipe:    tok("bar", 1, 6, 13),
			Arguments: []ast.Expression{ast.Variable{Token: tok("baz", 1, 10, 17)}},
		}},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipeBar}, ast.RecipeItem{Recipe: recipeFoo})
	require.Error(t, err)

	undefined, ok := err.(errs.UndefinedVariable)
	require.True(t, ok, "expected UndefinedVariable, got %T", err)
	assert.Equal(t, "baz", undefined.Variable)
	assert.Equal(t, 17, undefined.Position().Offset)
}

func TestDuplicateParameter(t *testing.T) {
	t.Parallel()

	recipe := ast.Recipe{
		Name: tok("a", 0, 0, 0),
		Parameters: []ast.Parameter{
			{Name: tok("x", 0, 2, 2)},
			{Name: tok("x", 0, 4, 4)},
		},
	}

	_, err := analyze(t, ast.RecipeItem{Recipe: recipe})
	require.Error(t, err)

	dup, ok := err.(errs.DuplicateParameter)
	require.True(t, ok, "expected DuplicateParameter, got %T", err)
	assert.Equal(t, "a", dup.Recipe)
	assert.Equal(t, "x", dup.Parameter)
}

func TestDuplicateVariable(t *testing.T) {
	t.Parallel()

	_, err := analyze(t,
		ast.AssignmentItem{Assignment: ast.Assignment{Name: tok("x", 0, 0, 0), Value: ast.StringLiteral{Token: tok(`"1"`, 0, 5, 5)}}},
		ast.AssignmentItem{Assignment: ast.Assignment{Name: tok("x", 1, 0, 10), Value: ast.StringLiteral{Token: tok(`"2"`, 1, 5, 15)}}},
	)
	require.Error(t, err)

	dup, ok := err.(errs.DuplicateVariable)
	require.True(t, ok, "expected DuplicateVariable, got %T", err)
	assert.Equal(t, "x", dup.Variable)
}

// AliasShadowsRecipe is exercised directly against resolveAliases: in a
// full analysis the alias and the recipe it shadows would already have
// collided as a Redefinition in the shared definition table (the same
// name, two different kinds), so this path only triggers when a caller
// drives alias resolution against a recipe set that bypassed that check.
func TestAliasShadowsRecipe(t *testing.T) {
	t.Parallel()

	build := &SharedRecipe{Name: tok("build", 0, 0, 0)}
	recipes := map[string]*SharedRecipe{"build": build}
	aliases := map[string]ast.Alias{
		"build": {Name: tok("build", 1, 6, 10), Target: tok("build", 1, 14, 18)},
	}

	_, err := resolveAliases(aliases, recipes)
	require.Error(t, err)

	shadow, ok := err.(errs.AliasShadowsRecipe)
	require.True(t, ok, "expected AliasShadowsRecipe, got %T", err)
	assert.Equal(t, "build", shadow.Alias)
	assert.Equal(t, 0, shadow.RecipeLine)
}

func TestSuccessfulAnalysisPicksDefaultRecipe(t *testing.T) {
	t.Parallel()

	first := ast.Recipe{Name: tok("build", 1, 0, 0)}
	second := ast.Recipe{Name: tok("test", 3, 0, 20)}

	jf, err := analyze(t, ast.RecipeItem{Recipe: second}, ast.RecipeItem{Recipe: first})
	require.NoError(t, err)
	require.NotNil(t, jf.DefaultRecipe)
	assert.Equal(t, "build", jf.DefaultRecipe.Name.Lexeme)
	assert.Len(t, jf.Recipes, 2)
}

func TestIdempotentAnalysis(t *testing.T) {
	t.Parallel()

	items := []ast.Item{
		ast.RecipeItem{Recipe: ast.Recipe{Name: tok("build", 0, 0, 0)}},
		ast.AliasItem{Alias: ast.Alias{Name: tok("b", 1, 6, 10), Target: tok("build", 1, 10, 14)}},
	}

	first, err := analyze(t, items...)
	require.NoError(t, err)
	second, err := analyze(t, items...)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-analyzing the same Ast set was not idempotent (-first +second):\n%s", diff)
	}
}
