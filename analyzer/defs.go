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
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/errs"
)

// DefKind is one of the three top-level names a single definition table
// tracks across a module (§4.2 step 2). Assignments are tracked
// separately, since variable redefinition has its own policy (§4.2
// step 4) independent of this table.
type DefKind string

const (
	DefAlias  DefKind = "alias"
	DefRecipe DefKind = "recipe"
	DefModule DefKind = "module"
)

type defEntry struct {
	kind  DefKind
	token ast.Token
}

// definitionTable maps lexeme to (kind, first-occurrence token), backed
// by an adaptive radix tree so that a future caller iterating it (e.g.
// for a deterministic dump of a module's declared names) sees them in
// sorted order for free.
type definitionTable struct {
	tree art.Tree
}

func newDefinitionTable() *definitionTable {
	return &definitionTable{tree: art.New()}
}

// define records name as kind, or fails if that collides with an
// existing definition under the decision table from §9: redefinition is
// permitted only when both occurrences are the same kind AND that kind
// allows duplicates (recipes, gated by allowDuplicateRecipes; aliases
// and modules never allow it).
func (t *definitionTable) define(name ast.Token, kind DefKind, allowDuplicateRecipes bool) error {
	key := art.Key(name.Lexeme)
	if v, found := t.tree.Search(key); found {
		first := v.(defEntry)
		if !redefinitionAllowed(first.kind, kind, allowDuplicateRecipes) {
			original, redefinition := first.token, name
			firstKind, secondKind := first.kind, kind
			if name.Line < first.token.Line ||
				(name.Line == first.token.Line && name.Column < first.token.Column) {
				original, redefinition = name, first.token
				firstKind, secondKind = kind, first.kind
			}
			return errs.NewRedefinition(redefinition.Pos(), string(firstKind), string(secondKind), name.Lexeme, original.Line)
		}
		return nil
	}
	t.tree.Insert(key, defEntry{kind: kind, token: name})
	return nil
}

// redefinitionAllowed is the decision table called out in §9: a single
// predicate over (first kind, second kind, allow-duplicates-for-kind)
// rather than ad-hoc branching.
func redefinitionAllowed(first, second DefKind, allowDuplicateRecipes bool) bool {
	if first != second {
		return false
	}
	switch first {
	case DefRecipe:
		return allowDuplicateRecipes
	default:
		return false
	}
}
