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
	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/attrs"
	"github.com/kralicky/recipec/errs"
	"github.com/kralicky/recipec/reporter"
)

// Analyzer folds a set of parsed ASTs, keyed by absolute source path,
// into a resolved Justfile tree (Phase A, §4.2). The ASTs and the
// platform to gate recipe enablement against are supplied by the
// compilation driver; the Analyzer itself performs no file I/O.
type Analyzer struct {
	Asts     map[string]*ast.Ast
	Platform attrs.Platform
}

// New constructs an Analyzer over the given AST set.
func New(asts map[string]*ast.Ast, platform attrs.Platform) *Analyzer {
	return &Analyzer{Asts: asts, Platform: platform}
}

// Analyze folds the module rooted at rootPath, recursing into every
// `mod` item it encounters, and returns the resolved Justfile.
func (a *Analyzer) Analyze(rootPath string, loadedPaths []string) (*Justfile, error) {
	return a.analyzeModule(nil, nil, rootPath, loadedPaths)
}

func (a *Analyzer) analyzeModule(name, doc *string, rootPath string, loadedPaths []string) (*Justfile, error) {
	jf := &Justfile{
		Name:        name,
		Doc:         doc,
		SourcePath:  rootPath,
		LoadedPaths: loadedPaths,
		Modules:     make(map[string]*Justfile),
		Unexports:   make(map[string]struct{}),
	}

	defs := newDefinitionTable()
	var warnings reporter.Handler

	var localSets []ast.Set
	var localAssignments []ast.Assignment
	var localRecipes []ast.Recipe
	var localAliases []ast.Alias

	stack := []*ast.Ast{a.Asts[rootPath]}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}

		for _, item := range cur.Items {
			switch it := item.(type) {
			case ast.AliasItem:
				if err := defs.define(it.Alias.Name, DefAlias, false); err != nil {
					return nil, err
				}
				if err := validateAlias(it.Alias); err != nil {
					return nil, err
				}
				localAliases = append(localAliases, it.Alias)

			case ast.AssignmentItem:
				localAssignments = append(localAssignments, it.Assignment)

			case ast.CommentItem:
				// No semantic weight.

			case *ast.ImportItem:
				if it.ResolvedAbsolute != nil {
					stack = append(stack, a.Asts[*it.ResolvedAbsolute])
				}

			case *ast.ModuleItem:
				if it.ResolvedAbsolute != nil {
					if err := defs.define(it.Name, DefModule, false); err != nil {
						return nil, err
					}
					child, err := a.analyzeModule(strPtr(it.Name.Lexeme), it.Doc, *it.ResolvedAbsolute, nil)
					if err != nil {
						return nil, err
					}
					jf.Modules[it.Name.Lexeme] = child
				}

			case ast.RecipeItem:
				if !attrs.Enabled(it.Recipe.Attributes, a.Platform) {
					continue
				}
				recipe := it.Recipe
				recipe.Enabled = true
				if err := validateRecipe(recipe); err != nil {
					return nil, err
				}
				localRecipes = append(localRecipes, recipe)

			case ast.SetItem:
				localSets = append(localSets, it.Set)

			case ast.UnexportItem:
				if _, dup := jf.Unexports[it.Name.Lexeme]; dup {
					return nil, errs.NewDuplicateUnexport(it.Name.Pos(), it.Name.Lexeme)
				}
				jf.Unexports[it.Name.Lexeme] = struct{}{}
			}
		}

		warnings.Extend(cur.Warnings)
	}
	jf.Warnings = warnings.Warnings()

	settings, err := foldSettings(localSets)
	if err != nil {
		return nil, err
	}
	jf.Settings = settings

	assignments := make(map[string]ast.Assignment)
	for _, assignment := range localAssignments {
		variable := assignment.Name.Lexeme

		if _, exists := assignments[variable]; exists && !settings.AllowDuplicateVariables {
			return nil, errs.NewDuplicateVariable(assignment.Name.Pos(), variable)
		}

		if existing, exists := assignments[variable]; !exists || assignment.FileDepth <= existing.FileDepth {
			assignments[variable] = assignment
		}

		if _, unexported := jf.Unexports[variable]; unexported {
			return nil, errs.NewExportUnexported(assignment.Name.Pos(), variable)
		}
	}
	jf.Assignments = assignments

	assignmentScope, err := resolveAssignments(assignments)
	if err != nil {
		return nil, err
	}

	recipeTable := make(map[string]ast.Recipe)
	for _, recipe := range localRecipes {
		if err := defs.define(recipe.Name, DefRecipe, settings.AllowDuplicateRecipes); err != nil {
			return nil, err
		}
		if existing, exists := recipeTable[recipe.Name.Lexeme]; !exists || recipe.FileDepth <= existing.FileDepth {
			recipeTable[recipe.Name.Lexeme] = recipe
		}
	}

	recipes, err := resolveRecipes(recipeTable, assignmentScope)
	if err != nil {
		return nil, err
	}
	jf.Recipes = recipes

	aliasTable := make(map[string]ast.Alias, len(localAliases))
	for _, alias := range localAliases {
		aliasTable[alias.Name.Lexeme] = alias
	}
	resolvedAliases, err := resolveAliases(aliasTable, recipes)
	if err != nil {
		return nil, err
	}
	jf.Aliases = resolvedAliases

	jf.DefaultRecipe = pickDefaultRecipe(recipes, rootPath)

	return jf, nil
}

// pickDefaultRecipe selects the recipe with the lowest line number among
// those defined directly in rootPath (§4.2 step 9).
func pickDefaultRecipe(recipes map[string]*SharedRecipe, rootPath string) *SharedRecipe {
	var best *SharedRecipe
	for _, recipe := range recipes {
		if recipe.Name.Path != rootPath {
			continue
		}
		if best == nil || recipe.LineNumber() < best.LineNumber() {
			best = recipe
		}
	}
	return best
}

func strPtr(s string) *string { return &s }
