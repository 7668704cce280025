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

import "github.com/kralicky/recipec/ast"

// Binding is one name bound within a Scope frame (§4.5).
type Binding struct {
	Export    bool
	NameToken ast.Token
	Value     ast.Expression
	Depth     int
}

// Scope is a singly-linked chain of binding frames. The parent link is a
// back-reference only, never an ownership edge: scopes are built on the
// call stack and never stored inside their parent.
type Scope struct {
	parent   *Scope
	bindings map[string]Binding
}

// NewScope creates a scope with the given parent, which may be nil for a
// root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, bindings: make(map[string]Binding)}
}

// Bind records a binding in this frame, shadowing any binding of the
// same name in an ancestor frame.
func (s *Scope) Bind(name ast.Token, export bool, value ast.Expression, depth int) {
	s.bindings[name.Lexeme] = Binding{Export: export, NameToken: name, Value: value, Depth: depth}
}

// Bound reports whether name is defined anywhere in this chain.
func (s *Scope) Bound(name string) bool {
	for frame := s; frame != nil; frame = frame.parent {
		if _, ok := frame.bindings[name]; ok {
			return true
		}
	}
	return false
}

// Lookup walks from leaf to root looking for name.
func (s *Scope) Lookup(name string) (Binding, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if b, ok := frame.bindings[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}
