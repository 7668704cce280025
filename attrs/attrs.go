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

// Package attrs is the attribute validator (component 4): a closed
// registry of recognized bracketed attributes, each with a declared
// inclusive argument-count range and a declared set of item kinds it may
// apply to.
package attrs

import (
	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/errs"
)

// AppliesTo is the set of item kinds an attribute is valid on.
type AppliesTo int

const (
	Recipe AppliesTo = 1 << iota
	Alias
)

type entry struct {
	min, max  int
	appliesTo AppliesTo
}

// registry is the closed table of recognized attributes. Unlisted names
// are UnknownAttribute.
var registry = map[ast.AttributeKind]entry{
	ast.AttributeConfirm:             {0, 1, Recipe},
	ast.AttributeDoc:                 {0, 1, Recipe},
	ast.AttributeGroup:               {1, 1, Recipe},
	ast.AttributeLinux:               {0, 0, Recipe},
	ast.AttributeMacos:               {0, 0, Recipe},
	ast.AttributeUnix:                {0, 0, Recipe},
	ast.AttributeWindows:             {0, 0, Recipe},
	ast.AttributeNoCd:                {0, 0, Recipe},
	ast.AttributeNoExitMessage:       {0, 0, Recipe},
	ast.AttributeNoQuiet:             {0, 0, Recipe},
	ast.AttributePositionalArguments: {0, 0, Recipe},
	ast.AttributePrivate:             {0, 0, Recipe | Alias},
}

// New constructs an Attribute from its name token and optional single
// string argument, validating the name against the registry and the
// argument count against the attribute's declared arity.
func New(name ast.Token, argument *string) (ast.Attribute, error) {
	kind := ast.AttributeKind(name.Lexeme)
	e, ok := registry[kind]
	if !ok {
		return ast.Attribute{}, errs.NewUnknownAttribute(name.Pos(), name.Lexeme)
	}

	found := 0
	if argument != nil {
		found = 1
	}
	if found < e.min || found > e.max {
		return ast.Attribute{}, errs.NewAttributeArgumentCountMismatch(name.Pos(), name.Lexeme, e.min, e.max, found)
	}

	return ast.Attribute{Token: name, Kind: kind, Argument: argument}, nil
}

// AppliesToRecipe reports whether kind may be attached to a recipe.
func AppliesToRecipe(kind ast.AttributeKind) bool {
	e, ok := registry[kind]
	return ok && e.appliesTo&Recipe != 0
}

// AppliesToAlias reports whether kind may be attached to an alias.
func AppliesToAlias(kind ast.AttributeKind) bool {
	e, ok := registry[kind]
	return ok && e.appliesTo&Alias != 0
}
