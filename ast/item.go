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

// Assignment is a top-level variable binding, e.g. `x := "1"` or
// `export y := x`.
type Assignment struct {
	Name      Name
	Export    bool
	Value     Expression
	FileDepth int
}

// Alias is the unresolved form of an alias: `alias foo := bar`.
type Alias struct {
	Name       Name
	Target     Name
	Attributes []Attribute
}

// Set is a `set name := value` configuration directive. Value is left as
// a loosely-typed union since the recognized settings (§6) have distinct
// value shapes (bool, string, string list); analyzer/settings.go decodes
// it according to the setting's name.
type Set struct {
	Name  Name
	Value SettingValue
}

// SettingValue is the parsed right-hand side of a `set` directive.
type SettingValue struct {
	Bool    *bool
	String  *string
	List    []string
	Implied bool // `set foo` with no value, implying `true` for bool settings
}

// Item is one top-level declaration of a recipefile. It is a closed
// tagged union: the unexported isItem marker restricts it to the variant
// types below, and consumers tell them apart with a type switch.
type Item interface {
	isItem()
}

// AliasItem wraps an unresolved Alias as a top-level Item.
type AliasItem struct{ Alias Alias }

func (AliasItem) isItem() {}

// AssignmentItem wraps an Assignment as a top-level Item.
type AssignmentItem struct{ Assignment Assignment }

func (AssignmentItem) isItem() {}

// CommentItem is a source comment; it carries no semantic weight beyond
// being skipped during analysis.
type CommentItem struct{ Token Token }

func (CommentItem) isItem() {}

// ImportItem is `import "path"` or `import? "path"`.
type ImportItem struct {
	RelativePath     Token
	ResolvedAbsolute *string
	Optional         bool
	Attributes       []Attribute
}

func (*ImportItem) isItem() {}

// ModuleItem is `mod name` or `mod name "path"`.
type ModuleItem struct {
	Name             Name
	Doc              *string
	RelativePath     *Token
	ResolvedAbsolute *string
	Optional         bool
}

func (*ModuleItem) isItem() {}

// RecipeItem wraps an unresolved Recipe as a top-level Item.
type RecipeItem struct{ Recipe Recipe }

func (RecipeItem) isItem() {}

// SetItem wraps a Set directive as a top-level Item.
type SetItem struct{ Set Set }

func (SetItem) isItem() {}

// UnexportItem is `unexport NAME`.
type UnexportItem struct{ Name Name }

func (UnexportItem) isItem() {}

// Ast is the parsed form of one source file: an ordered item list plus
// any warnings the front end chose to attach (e.g. a transposed shebang).
type Ast struct {
	Items    []Item
	Warnings []Warning
}

// Warning is a non-fatal diagnostic produced while parsing or analyzing
// a file. It travels with the Ast it was raised against and is merged
// into the resolved Justfile's warning list without aborting compilation.
type Warning struct {
	Token   Token
	Message string
}
