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

// resolveAliases binds each alias to a shared handle of its target
// recipe (§4.8), in alias-name order for deterministic error reporting.
func resolveAliases(aliases map[string]ast.Alias, recipes map[string]*SharedRecipe) (map[string]ResolvedAlias, error) {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]ResolvedAlias, len(aliases))
	for _, name := range names {
		alias := aliases[name]

		if shadowed, ok := recipes[alias.Name.Lexeme]; ok {
			return nil, errs.NewAliasShadowsRecipe(alias.Name.Pos(), alias.Name.Lexeme, shadowed.LineNumber())
		}

		target, ok := recipes[alias.Target.Lexeme]
		if !ok {
			return nil, errs.NewUnknownAliasTarget(alias.Name.Pos(), alias.Name.Lexeme, alias.Target.Lexeme)
		}

		out[name] = ResolvedAlias{
			Name:    alias.Name,
			Target:  target,
			Private: hasPrivateAttribute(alias.Attributes),
		}
	}

	return out, nil
}

func hasPrivateAttribute(attributes []ast.Attribute) bool {
	for _, a := range attributes {
		if a.Kind == ast.AttributePrivate {
			return true
		}
	}
	return false
}
