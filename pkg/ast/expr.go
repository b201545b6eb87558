// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"strings"
)

// Expr represents an arbitrary expression tree.  Expression trees are never
// shared: every node has exactly one parent.  Nodes are never modified after
// construction, hence a rewrite always builds new nodes (taking ownership of any
// unchanged subtrees).
type Expr interface {
	// Equals checks whether two expressions are structurally identical.
	Equals(e Expr) bool
	// Size returns the number of nodes in this expression tree.
	Size() uint
	// String returns an (infix) string representation of this expression.
	String() string
}

// ===================================================================
// Literal
// ===================================================================

// Literal represents a constant value within an expression.
type Literal struct {
	Value Value
}

// NewLiteral constructs an expression representing a constant value.
func NewLiteral(value Value) *Literal {
	return &Literal{value}
}

// Equals implementation for the Expr interface.
func (p *Literal) Equals(e Expr) bool {
	if e, ok := e.(*Literal); ok {
		return p.Value.Equals(e.Value)
	}
	//
	return false
}

// Size implementation for the Expr interface.
func (p *Literal) Size() uint {
	return 1
}

func (p *Literal) String() string {
	return String(p)
}

// ===================================================================
// Variable
// ===================================================================

// Var represents a free variable within an expression, whose value is not known
// at optimisation time.
type Var struct {
	Name string
}

// NewVar constructs an expression representing a variable access.
func NewVar(name string) *Var {
	return &Var{name}
}

// Equals implementation for the Expr interface.
func (p *Var) Equals(e Expr) bool {
	if e, ok := e.(*Var); ok {
		return p.Name == e.Name
	}
	//
	return false
}

// Size implementation for the Expr interface.
func (p *Var) Size() uint {
	return 1
}

func (p *Var) String() string {
	return String(p)
}

// ===================================================================
// Binary Operation
// ===================================================================

// BinaryOp represents the application of a binary operator to two
// subexpressions.
type BinaryOp struct {
	// Operator being applied
	Operator Operator
	// Left-hand side
	Left Expr
	// Right-hand side
	Right Expr
}

// NewBinary constructs an expression representing a binary operation.
func NewBinary(op Operator, lhs Expr, rhs Expr) *BinaryOp {
	if lhs == nil || rhs == nil {
		panic("binary operation requires two operands")
	}
	//
	return &BinaryOp{op, lhs, rhs}
}

// Equals implementation for the Expr interface.
func (p *BinaryOp) Equals(e Expr) bool {
	if e, ok := e.(*BinaryOp); ok {
		return p.Operator == e.Operator && p.Left.Equals(e.Left) && p.Right.Equals(e.Right)
	}
	//
	return false
}

// Size implementation for the Expr interface.
func (p *BinaryOp) Size() uint {
	return 1 + p.Left.Size() + p.Right.Size()
}

func (p *BinaryOp) String() string {
	return String(p)
}

// ===================================================================
// Helpers
// ===================================================================

// String provides a generic facility for converting an expression into a
// suitable (infix) string.  Nested binary operations are always bracketed, so
// the grouping of the original tree is visible.
func String(e Expr) string {
	var builder strings.Builder
	//
	writeExpr(&builder, e)
	//
	return builder.String()
}

func writeExpr(builder *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Literal:
		builder.WriteString(e.Value.String())
	case *Var:
		builder.WriteString(e.Name)
	case *BinaryOp:
		writeOperand(builder, e.Left)
		builder.WriteString(" ")
		builder.WriteString(e.Operator.String())
		builder.WriteString(" ")
		writeOperand(builder, e.Right)
	default:
		panic("unreachable")
	}
}

func writeOperand(builder *strings.Builder, e Expr) {
	if _, ok := e.(*BinaryOp); ok {
		builder.WriteString("(")
		writeExpr(builder, e)
		builder.WriteString(")")
	} else {
		writeExpr(builder, e)
	}
}
