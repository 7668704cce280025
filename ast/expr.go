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

// Expression is the parsed form of a value: a string literal, a variable
// reference, a concatenation of two sub-expressions, a conditional, or a
// function call (Thunk). Resolvers never walk an Expression's internal shape directly;
// they only need the free variable references it contains, via Variables.
type Expression interface {
	// Variables returns the tokens of every free variable reference
	// reachable from this expression, in left-to-right order.
	Variables() []Token
	isExpression()
}

// StringLiteral is a quoted or backtick literal. Cooked holds the value
// after escape processing; Token.Lexeme holds the raw source text.
type StringLiteral struct {
	Token  Token
	Cooked string
}

func (StringLiteral) isExpression()          {}
func (StringLiteral) Variables() []Token     { return nil }

// Variable is a reference to an assignment or parameter name.
type Variable struct {
	Token Token
}

func (Variable) isExpression()      {}
func (v Variable) Variables() []Token { return []Token{v.Token} }

// Concatenation joins two expressions with the `+` operator, as in
// `"a" + b`.
type Concatenation struct {
	Left, Right Expression
}

func (Concatenation) isExpression() {}

func (c Concatenation) Variables() []Token {
	vars := append([]Token{}, c.Left.Variables()...)
	return append(vars, c.Right.Variables()...)
}

// Conditional is an `if a == b { c } else { d }` expression.
type Conditional struct {
	Lhs, Rhs   Expression
	Negated    bool
	Then, Else Expression
}

func (Conditional) isExpression() {}

func (c Conditional) Variables() []Token {
	var vars []Token
	vars = append(vars, c.Lhs.Variables()...)
	vars = append(vars, c.Rhs.Variables()...)
	vars = append(vars, c.Then.Variables()...)
	vars = append(vars, c.Else.Variables()...)
	return vars
}

// Thunk (see thunk.go) also implements Expression directly: a function
// call is itself an expression, not a wrapper around one.
