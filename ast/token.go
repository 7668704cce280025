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

// Package ast defines the node shapes that a lexer/parser front end is
// expected to produce for one recipefile source, and that the compiler's
// analysis phase consumes. Lexing and parsing themselves are external
// collaborators; this package only fixes the data they hand off.
package ast

import (
	"unicode/utf8"

	"github.com/kralicky/recipec/errs"
)

// Token is a single lexeme together with its source position. Equality
// between tokens, for the purposes of name resolution, is by Lexeme alone;
// Line/Column/Path/Offset exist only to produce diagnostics.
type Token struct {
	Lexeme string
	Path   string
	Line   int
	Column int
	Offset int
}

// Name is an identifier token: a recipe, alias, variable, module, or
// parameter name. It is a plain alias for Token because the data model
// draws no distinction between "a token that happens to be a name" and
// "a name"; only the position in the grammar does.
type Name = Token

// Width reports the display width of the lexeme, used to underline a
// diagnostic caret beneath it.
func (t Token) Width() int {
	return utf8.RuneCountInString(t.Lexeme)
}

// Pos converts the token to the position type used by the errs package,
// so construction code can build a positioned error without errs needing
// to depend on ast.
func (t Token) Pos() errs.Pos {
	return errs.Pos{
		Path:   t.Path,
		Line:   t.Line,
		Column: t.Column,
		Offset: t.Offset,
		Width:  t.Width(),
		Lexeme: t.Lexeme,
	}
}
