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

// Package errs is the compiler's closed error taxonomy. Every error the
// front end can return is one of the small struct types defined here; each
// carries the source position that a caret diagnostic would underline.
package errs

import "fmt"

// Pos is the position of a single token in a loaded source file. It is
// deliberately independent of the ast package so that ast can depend on
// errs (to build these errors) without a dependency cycle.
type Pos struct {
	Path   string
	Line   int
	Column int
	Offset int
	Width  int
	Lexeme string
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line+1, p.Column+1)
}

// Error is satisfied by every error kind in this package.
type Error interface {
	error
	Position() Pos
}

// base is embedded by every concrete error kind to avoid repeating the
// Position() accessor.
type base struct {
	Pos Pos
}

func (b base) Position() Pos { return b.Pos }

// Structural errors (driver, §4.1).

type UnstableFeature struct {
	base
	Feature string
}

func (e UnstableFeature) Error() string {
	return fmt.Sprintf("%s: unstable feature %q used without the unstable flag", e.Pos, e.Feature)
}

func NewUnstableFeature(pos Pos, feature string) UnstableFeature {
	return UnstableFeature{base{pos}, feature}
}

type CircularImport struct {
	base
	Current string
	Import  string
}

func (e CircularImport) Error() string {
	return fmt.Sprintf("%s: circular import: %q imports %q, which was already on the import chain", e.Pos, e.Current, e.Import)
}

func NewCircularImport(pos Pos, current, imp string) CircularImport {
	return CircularImport{base{pos}, current, imp}
}

type MissingImportFile struct {
	base
	Path string
}

func (e MissingImportFile) Error() string {
	return fmt.Sprintf("%s: could not find imported source file %q", e.Pos, e.Path)
}

func NewMissingImportFile(pos Pos, path string) MissingImportFile {
	return MissingImportFile{base{pos}, path}
}

type MissingModuleFile struct {
	base
	Module string
}

func (e MissingModuleFile) Error() string {
	return fmt.Sprintf("%s: could not find source file for module %q", e.Pos, e.Module)
}

func NewMissingModuleFile(pos Pos, module string) MissingModuleFile {
	return MissingModuleFile{base{pos}, module}
}

type AmbiguousModuleFile struct {
	base
	Module string
	Found  []string
}

func (e AmbiguousModuleFile) Error() string {
	return fmt.Sprintf("%s: found multiple source file candidates for module %q: %v", e.Pos, e.Module, e.Found)
}

func NewAmbiguousModuleFile(pos Pos, module string, found []string) AmbiguousModuleFile {
	return AmbiguousModuleFile{base{pos}, module, found}
}

type HomeDirectoryUnavailable struct {
	base
}

func (e HomeDirectoryUnavailable) Error() string {
	return fmt.Sprintf("%s: could not determine home directory for tilde expansion", e.Pos)
}

func NewHomeDirectoryUnavailable(pos Pos) HomeDirectoryUnavailable {
	return HomeDirectoryUnavailable{base{pos}}
}

// Definition errors (analyzer, §4.2).

type Redefinition struct {
	base
	FirstKind  string
	SecondKind string
	Name       string
	FirstLine  int
}

func (e Redefinition) Error() string {
	return fmt.Sprintf("%s: %s %q redefined as %s (first defined on line %d)", e.Pos, e.FirstKind, e.Name, e.SecondKind, e.FirstLine+1)
}

func NewRedefinition(pos Pos, firstKind, secondKind, name string, firstLine int) Redefinition {
	return Redefinition{base{pos}, firstKind, secondKind, name, firstLine}
}

type DuplicateParameter struct {
	base
	Recipe    string
	Parameter string
}

func (e DuplicateParameter) Error() string {
	return fmt.Sprintf("%s: recipe %q has duplicate parameter %q", e.Pos, e.Recipe, e.Parameter)
}

func NewDuplicateParameter(pos Pos, recipe, parameter string) DuplicateParameter {
	return DuplicateParameter{base{pos}, recipe, parameter}
}

type DuplicateVariable struct {
	base
	Variable string
}

func (e DuplicateVariable) Error() string {
	return fmt.Sprintf("%s: variable %q is defined more than once", e.Pos, e.Variable)
}

func NewDuplicateVariable(pos Pos, variable string) DuplicateVariable {
	return DuplicateVariable{base{pos}, variable}
}

type DuplicateSet struct {
	base
	Setting   string
	FirstLine int
}

func (e DuplicateSet) Error() string {
	return fmt.Sprintf("%s: setting %q is set more than once (first set on line %d)", e.Pos, e.Setting, e.FirstLine+1)
}

func NewDuplicateSet(pos Pos, setting string, firstLine int) DuplicateSet {
	return DuplicateSet{base{pos}, setting, firstLine}
}

type DuplicateUnexport struct {
	base
	Variable string
}

func (e DuplicateUnexport) Error() string {
	return fmt.Sprintf("%s: variable %q is unexported more than once", e.Pos, e.Variable)
}

func NewDuplicateUnexport(pos Pos, variable string) DuplicateUnexport {
	return DuplicateUnexport{base{pos}, variable}
}

type ExportUnexported struct {
	base
	Variable string
}

func (e ExportUnexported) Error() string {
	return fmt.Sprintf("%s: variable %q is both assigned and unexported", e.Pos, e.Variable)
}

func NewExportUnexported(pos Pos, variable string) ExportUnexported {
	return ExportUnexported{base{pos}, variable}
}

type RequiredParameterFollowsDefaultParameter struct {
	base
	Parameter string
}

func (e RequiredParameterFollowsDefaultParameter) Error() string {
	return fmt.Sprintf("%s: required parameter %q follows a parameter with a default value", e.Pos, e.Parameter)
}

func NewRequiredParameterFollowsDefaultParameter(pos Pos, parameter string) RequiredParameterFollowsDefaultParameter {
	return RequiredParameterFollowsDefaultParameter{base{pos}, parameter}
}

type ExtraLeadingWhitespace struct {
	base
}

func (e ExtraLeadingWhitespace) Error() string {
	return fmt.Sprintf("%s: recipe line has extra leading whitespace", e.Pos)
}

func NewExtraLeadingWhitespace(pos Pos) ExtraLeadingWhitespace {
	return ExtraLeadingWhitespace{base{pos}}
}

// Attribute errors (§4.3, §4.4).

type UnknownAttribute struct {
	base
	Attribute string
}

func (e UnknownAttribute) Error() string {
	return fmt.Sprintf("%s: unknown attribute %q", e.Pos, e.Attribute)
}

func NewUnknownAttribute(pos Pos, attribute string) UnknownAttribute {
	return UnknownAttribute{base{pos}, attribute}
}

type AttributeArgumentCountMismatch struct {
	base
	Attribute string
	Min       int
	Max       int
	Found     int
}

func (e AttributeArgumentCountMismatch) Error() string {
	return fmt.Sprintf("%s: attribute %q expects between %d and %d arguments, found %d", e.Pos, e.Attribute, e.Min, e.Max, e.Found)
}

func NewAttributeArgumentCountMismatch(pos Pos, attribute string, min, max, found int) AttributeArgumentCountMismatch {
	return AttributeArgumentCountMismatch{base{pos}, attribute, min, max, found}
}

type AliasInvalidAttribute struct {
	base
	Alias     string
	Attribute string
}

func (e AliasInvalidAttribute) Error() string {
	return fmt.Sprintf("%s: alias %q has invalid attribute %q; only 'private' is permitted", e.Pos, e.Alias, e.Attribute)
}

func NewAliasInvalidAttribute(pos Pos, alias, attribute string) AliasInvalidAttribute {
	return AliasInvalidAttribute{base{pos}, alias, attribute}
}

// Reference errors (§4.6-4.8).

type UndefinedVariable struct {
	base
	Variable string
}

func (e UndefinedVariable) Error() string {
	return fmt.Sprintf("%s: variable %q is not defined", e.Pos, e.Variable)
}

func NewUndefinedVariable(pos Pos, variable string) UndefinedVariable {
	return UndefinedVariable{base{pos}, variable}
}

type UnknownDependency struct {
	base
	Recipe  string
	Unknown string
}

func (e UnknownDependency) Error() string {
	return fmt.Sprintf("%s: recipe %q depends on unknown recipe %q", e.Pos, e.Recipe, e.Unknown)
}

func NewUnknownDependency(pos Pos, recipe, unknown string) UnknownDependency {
	return UnknownDependency{base{pos}, recipe, unknown}
}

type UnknownAliasTarget struct {
	base
	Alias  string
	Target string
}

func (e UnknownAliasTarget) Error() string {
	return fmt.Sprintf("%s: alias %q targets unknown recipe %q", e.Pos, e.Alias, e.Target)
}

func NewUnknownAliasTarget(pos Pos, alias, target string) UnknownAliasTarget {
	return UnknownAliasTarget{base{pos}, alias, target}
}

type AliasShadowsRecipe struct {
	base
	Alias      string
	RecipeLine int
}

func (e AliasShadowsRecipe) Error() string {
	return fmt.Sprintf("%s: alias %q has the same name as a recipe defined on line %d", e.Pos, e.Alias, e.RecipeLine+1)
}

func NewAliasShadowsRecipe(pos Pos, alias string, recipeLine int) AliasShadowsRecipe {
	return AliasShadowsRecipe{base{pos}, alias, recipeLine}
}

type CircularRecipeDependency struct {
	base
	Recipe string
	Circle []string
}

func (e CircularRecipeDependency) Error() string {
	return fmt.Sprintf("%s: recipe %q has a circular dependency: %v", e.Pos, e.Recipe, e.Circle)
}

func NewCircularRecipeDependency(pos Pos, recipe string, circle []string) CircularRecipeDependency {
	return CircularRecipeDependency{base{pos}, recipe, circle}
}

type CircularVariableDependency struct {
	base
	Variable string
	Circle   []string
}

func (e CircularVariableDependency) Error() string {
	return fmt.Sprintf("%s: variable %q has a circular dependency: %v", e.Pos, e.Variable, e.Circle)
}

func NewCircularVariableDependency(pos Pos, variable string, circle []string) CircularVariableDependency {
	return CircularVariableDependency{base{pos}, variable, circle}
}

// Function errors (§4.9).

type UnknownFunction struct {
	base
	Function string
}

func (e UnknownFunction) Error() string {
	return fmt.Sprintf("%s: call to unknown function %q", e.Pos, e.Function)
}

func NewUnknownFunction(pos Pos, function string) UnknownFunction {
	return UnknownFunction{base{pos}, function}
}

type FunctionArgumentCountMismatch struct {
	base
	Function string
	Found    int
	Expected string
}

func (e FunctionArgumentCountMismatch) Error() string {
	return fmt.Sprintf("%s: function %q called with %d arguments, expected %s", e.Pos, e.Function, e.Found, e.Expected)
}

func NewFunctionArgumentCountMismatch(pos Pos, function string, found int, expected string) FunctionArgumentCountMismatch {
	return FunctionArgumentCountMismatch{base{pos}, function, found, expected}
}
