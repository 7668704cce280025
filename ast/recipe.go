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

package ast

// ParameterKind distinguishes a plain parameter from the two variadic
// shapes a recipe parameter list may end with.
type ParameterKind int

const (
	Singular ParameterKind = iota
	VariadicStar
	VariadicPlus
)

// Parameter is one formal parameter of an unresolved recipe.
type Parameter struct {
	Name    Name
	Kind    ParameterKind
	Default Expression // nil if the parameter has no default
}

// Dependency is one entry in a recipe's dependency list, e.g. the `b(x)`
// in `a: b(x)`.
type Dependency struct {
	Recipe    Name
	Arguments []Expression
}

// Fragment is one piece of a recipe body line: literal text or an
// interpolated expression.
type Fragment interface {
	isFragment()
}

// Text is a literal run of characters in a recipe body line.
type Text struct {
	Token Token
}

func (Text) isFragment() {}

// Interpolation is a `{{ expression }}` embedded in a recipe body line.
type Interpolation struct {
	Expression Expression
}

func (Interpolation) isFragment() {}

// Line is one line of a recipe body.
type Line struct {
	Fragments []Fragment
	// Continuation is true when this line continues the previous one,
	// i.e. the previous line's last fragment ended with a trailing
	// backslash. A continuation line is exempt from the leading-whitespace
	// check (§4.2.3).
	Continuation bool
}

// Recipe is the unresolved form of a recipe, as produced directly by the
// front end, before dependency and variable-use resolution (§4.7).
type Recipe struct {
	Name        Name
	Doc         *string
	Attributes  []Attribute
	Parameters  []Parameter
	Dependencies []Dependency
	Body        []Line
	Shebang     bool
	Private     bool
	FileDepth   int
	Enabled     bool
}

// LineNumber is the recipe's defining line, used for default-recipe and
// same-file redefinition tie-breaks.
func (r Recipe) LineNumber() int {
	return r.Name.Line
}
