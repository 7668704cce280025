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

// resolveAssignments walks the free-variable references of every
// assignment's value expression, failing on an unknown reference or a
// cycle (§4.6). It returns a root Scope binding every assignment, for
// use by the recipe resolver's variable-use check.
func resolveAssignments(assignments map[string]ast.Assignment) (*Scope, error) {
	names := make([]string, 0, len(assignments))
	for name := range assignments {
		names = append(names, name)
	}
	sort.Strings(names)

	scope := NewScope(nil)
	resolved := make(map[string]bool, len(assignments))

	var resolve func(stack []string, name string) error
	resolve = func(stack []string, name string) error {
		if resolved[name] {
			return nil
		}
		assignment := assignments[name]
		stack = append(stack, name)

		for _, ref := range assignment.Value.Variables() {
			dep := ref.Lexeme

			if idx := indexOf(stack, dep); idx >= 0 {
				circle := append([]string{}, stack[idx:]...)
				circle = append(circle, dep)
				return errs.NewCircularVariableDependency(ref.Pos(), name, circle)
			}
			if _, ok := assignments[dep]; !ok {
				return errs.NewUndefinedVariable(ref.Pos(), dep)
			}
			if !resolved[dep] {
				if err := resolve(stack, dep); err != nil {
					return err
				}
			}
		}

		resolved[name] = true
		scope.Bind(assignment.Name, assignment.Export, assignment.Value, assignment.FileDepth)
		return nil
	}

	for _, name := range names {
		if err := resolve(nil, name); err != nil {
			return nil, err
		}
	}

	return scope, nil
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}
