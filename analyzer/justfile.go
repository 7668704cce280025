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

// Package analyzer implements Phase A: folding a set of parsed ASTs
// rooted at one file into a resolved Justfile tree (component 5), with
// the assignment resolver (6), recipe resolver (7), and alias resolver
// (8) run in that fixed order for each module.
package analyzer

import "github.com/kralicky/recipec/ast"

// Justfile is one resolved module: the top-level module if Name is nil,
// or a nested module reached through `mod name`.
type Justfile struct {
	Name          *string
	Doc           *string
	SourcePath    string
	LoadedPaths   []string
	Modules       map[string]*Justfile
	Aliases       map[string]ResolvedAlias
	Assignments   map[string]ast.Assignment
	Recipes       map[string]*SharedRecipe
	DefaultRecipe *SharedRecipe
	Settings      Settings
	Unexports     map[string]struct{}
	Warnings      []ast.Warning
}

// ResolvedAlias is an alias with its target bound to a shared handle to
// a resolved recipe (§4.8).
type ResolvedAlias struct {
	Name    ast.Name
	Target  *SharedRecipe
	Private bool
}

// ResolvedDependency is one entry of a SharedRecipe's dependency list,
// with the dependency's name replaced by a shared handle to its own
// resolved form.
type ResolvedDependency struct {
	Recipe    *SharedRecipe
	Arguments []ast.Expression
}

// SharedRecipe is the resolved form of a recipe: its dependency list
// carries shared handles to other resolved recipes rather than bare
// names, so that every alias and dependent observes the same object.
// Recipe resolution forbids cycles by construction (§4.7), so the
// dependency graph reachable from any SharedRecipe is acyclic.
type SharedRecipe struct {
	Name         ast.Name
	Doc          *string
	Attributes   []ast.Attribute
	Parameters   []ast.Parameter
	Dependencies []ResolvedDependency
	Body         []ast.Line
	Shebang      bool
	Private      bool
	FileDepth    int
}

// LineNumber is the recipe's defining line, used for default-recipe
// tie-breaks and shadow diagnostics.
func (r *SharedRecipe) LineNumber() int {
	return r.Name.Line
}
