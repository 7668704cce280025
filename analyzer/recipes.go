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
	"sort"

	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/errs"
)

// recipeResolver holds the working state of pass 1 (§4.7): recipes not
// yet resolved, recipes already resolved, keyed by name.
type recipeResolver struct {
	unresolved map[string]ast.Recipe
	resolved   map[string]*SharedRecipe
}

// resolveRecipes runs both passes of §4.7 over the merged recipe table:
// structural (dependency graph) resolution, then a variable-use check
// against the resolved assignment scope.
func resolveRecipes(recipes map[string]ast.Recipe, assignmentScope *Scope) (map[string]*SharedRecipe, error) {
	rr := &recipeResolver{
		unresolved: make(map[string]ast.Recipe, len(recipes)),
		resolved:   make(map[string]*SharedRecipe, len(recipes)),
	}
	for name, r := range recipes {
		rr.unresolved[name] = r
	}

	for len(rr.unresolved) > 0 {
		name := rr.nextUnresolvedName()
		recipe := rr.unresolved[name]
		delete(rr.unresolved, name)
		if _, err := rr.resolve(nil, recipe); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(rr.resolved))
	for name := range rr.resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := checkRecipeVariableUse(rr.resolved[name], assignmentScope); err != nil {
			return nil, err
		}
	}

	return rr.resolved, nil
}

// nextUnresolvedName picks a deterministic next name to resolve so that
// error reporting (when ambiguous) is stable across runs.
func (rr *recipeResolver) nextUnresolvedName() string {
	var chosen string
	first := true
	for name := range rr.unresolved {
		if first || name < chosen {
			chosen = name
			first = false
		}
	}
	return chosen
}

// resolve recursively resolves recipe's dependencies, following the
// stack-based circular-dependency detection of the original recipe
// resolver: on finding a dependency already on the stack, the circle is
// built from the first stack entry equal to the offending name through
// to the end of the stack with the chain's root appended again.
func (rr *recipeResolver) resolve(stack []string, recipe ast.Recipe) (*SharedRecipe, error) {
	if shared, ok := rr.resolved[recipe.Name.Lexeme]; ok {
		return shared, nil
	}

	stack = append(stack, recipe.Name.Lexeme)

	deps := make([]ResolvedDependency, 0, len(recipe.Dependencies))
	for _, dep := range recipe.Dependencies {
		depName := dep.Recipe.Lexeme

		switch {
		case rr.resolved[depName] != nil:
			deps = append(deps, ResolvedDependency{Recipe: rr.resolved[depName], Arguments: dep.Arguments})

		case indexOf(stack, depName) >= 0:
			augmented := append(append([]string{}, stack...), stack[0])
			idx := indexOf(augmented, depName)
			circle := append([]string{}, augmented[idx:]...)
			return nil, errs.NewCircularRecipeDependency(dep.Recipe.Pos(), recipe.Name.Lexeme, circle)

		default:
			child, ok := rr.unresolved[depName]
			if !ok {
				return nil, errs.NewUnknownDependency(dep.Recipe.Pos(), recipe.Name.Lexeme, depName)
			}
			delete(rr.unresolved, depName)
			resolvedChild, err := rr.resolve(stack, child)
			if err != nil {
				return nil, err
			}
			deps = append(deps, ResolvedDependency{Recipe: resolvedChild, Arguments: dep.Arguments})
		}
	}

	shared := &SharedRecipe{
		Name:         recipe.Name,
		Doc:          recipe.Doc,
		Attributes:   recipe.Attributes,
		Parameters:   recipe.Parameters,
		Dependencies: deps,
		Body:         recipe.Body,
		Shebang:      recipe.Shebang,
		Private:      recipe.Private,
		FileDepth:    recipe.FileDepth,
	}
	rr.resolved[recipe.Name.Lexeme] = shared
	return shared, nil
}

// checkRecipeVariableUse is pass 2 of §4.7: every free variable in a
// parameter default, dependency argument, or body interpolation must
// resolve to an assignment or (outside of defaults) a parameter of the
// recipe itself.
func checkRecipeVariableUse(recipe *SharedRecipe, assignmentScope *Scope) error {
	for _, param := range recipe.Parameters {
		if param.Default == nil {
			continue
		}
		for _, ref := range param.Default.Variables() {
			if !assignmentScope.Bound(ref.Lexeme) {
				return errs.NewUndefinedVariable(ref.Pos(), ref.Lexeme)
			}
		}
	}

	paramNames := make(map[string]bool, len(recipe.Parameters))
	for _, param := range recipe.Parameters {
		paramNames[param.Name.Lexeme] = true
	}
	checkRef := func(ref ast.Token) error {
		if assignmentScope.Bound(ref.Lexeme) || paramNames[ref.Lexeme] {
			return nil
		}
		return errs.NewUndefinedVariable(ref.Pos(), ref.Lexeme)
	}

	for _, dep := range recipe.Dependencies {
		for _, arg := range dep.Arguments {
			for _, ref := range arg.Variables() {
				if err := checkRef(ref); err != nil {
					return err
				}
			}
		}
	}

	for _, line := range recipe.Body {
		for _, frag := range line.Fragments {
			interp, ok := frag.(ast.Interpolation)
			if !ok {
				continue
			}
			for _, ref := range interp.Expression.Variables() {
				if err := checkRef(ref); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
