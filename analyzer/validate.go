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
	"github.com/kralicky/recipec/errs"
)

// validateAlias enforces §4.2.2: the only attribute permitted on an
// alias is "private".
func validateAlias(alias ast.Alias) error {
	for _, a := range alias.Attributes {
		if a.Kind != ast.AttributePrivate {
			return errs.NewAliasInvalidAttribute(a.Token.Pos(), alias.Name.Lexeme, string(a.Kind))
		}
	}
	return nil
}

// validateRecipe enforces §4.2.3: unique parameter names, no required
// parameter following a defaulted one, and leading-whitespace discipline
// on non-shebang, non-continuation body lines.
func validateRecipe(recipe ast.Recipe) error {
	seen := make(map[string]bool, len(recipe.Parameters))
	passedDefault := false

	for _, param := range recipe.Parameters {
		if seen[param.Name.Lexeme] {
			return errs.NewDuplicateParameter(param.Name.Pos(), recipe.Name.Lexeme, param.Name.Lexeme)
		}
		seen[param.Name.Lexeme] = true

		if param.Default != nil {
			passedDefault = true
		} else if passedDefault && param.Kind == ast.Singular {
			return errs.NewRequiredParameterFollowsDefaultParameter(param.Name.Pos(), param.Name.Lexeme)
		}
	}

	if recipe.Shebang {
		return nil
	}

	for _, line := range recipe.Body {
		if line.Continuation {
			continue
		}
		if len(line.Fragments) == 0 {
			continue
		}
		text, ok := line.Fragments[0].(ast.Text)
		if !ok {
			continue
		}
		if len(text.Token.Lexeme) > 0 {
			c := text.Token.Lexeme[0]
			if c == ' ' || c == '\t' {
				return errs.NewExtraLeadingWhitespace(text.Token.Pos())
			}
		}
	}

	return nil
}
