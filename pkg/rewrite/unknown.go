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
package rewrite

import (
	"github.com/consensys/go-reassoc/pkg/ast"
)

// FoldBracketedConstants rewrites "(x1 op1 c1) op (x2 op2 c2)" (in any of the
// four arrangements of literal positions) into "(x1 op x2) op c", where c is
// obtained by folding c1 and c2.  This only applies to operators which can be
// regrouped over unknown operands, and the newly formed "x1 op x2" is
// reoptimized.  For example, "(a && true) && (b && true)" becomes "(a && b) &&
// true".
type FoldBracketedConstants struct {
	evaluator Evaluator
}

// NewFoldBracketedConstants constructs the rule using a given evaluator for
// folding constants.
func NewFoldBracketedConstants(evaluator Evaluator) *FoldBracketedConstants {
	return &FoldBracketedConstants{evaluator}
}

// Name implementation for Rule interface.
func (p *FoldBracketedConstants) Name() string {
	return "fold-bracketed"
}

// Apply implementation for Rule interface.
func (p *FoldBracketedConstants) Apply(node ast.Expr, reopt Reoptimizer) ast.Expr {
	e, ok := node.(*ast.BinaryOp)
	if !ok {
		return node
	}
	//
	shape := Classify(e)
	//
	if !shape.Left.IsBracket() || !shape.Right.IsBracket() {
		return node
	}
	//
	var (
		op  = e.Operator
		lhs = asBracket(e.Left, shape.Left)
		rhs = asBracket(e.Right, shape.Right)
	)
	// Check preconditions
	if !AllowedForUnknownRewrite(lhs.operator, op, rhs.operator) ||
		!AssociatesRight(lhs.operator, op) || !AssociatesRight(op, rhs.operator) || !Commutes(op) {
		return node
	}
	//
	folded, err := p.evaluator(op, lhs.constant.Value, rhs.constant.Value)
	if err != nil {
		return abandon(p, node, err)
	}
	//
	unknowns := reopt(ast.NewBinary(op, lhs.unknown, rhs.unknown))
	constant := ast.NewLiteral(folded)
	// Folded constant goes where the constant of the left bracket was.
	if shape.Left == BRACKET_RIGHT {
		return ast.NewBinary(op, unknowns, constant)
	}
	//
	return ast.NewBinary(op, constant, unknowns)
}

// AbsorbUnknown regroups an expression with exactly one bracketed constant so
// that the constant moves to the outermost level, and the two unknowns are
// combined (and reoptimized).  For example, "(x && true) && y" becomes "(x &&
// y) && true".  No constants are folded.
type AbsorbUnknown struct{}

// NewAbsorbUnknown constructs the rule.
func NewAbsorbUnknown() *AbsorbUnknown {
	return &AbsorbUnknown{}
}

// Name implementation for Rule interface.
func (p *AbsorbUnknown) Name() string {
	return "absorb-unknown"
}

// Apply implementation for Rule interface.
func (p *AbsorbUnknown) Apply(node ast.Expr, reopt Reoptimizer) ast.Expr {
	e, ok := node.(*ast.BinaryOp)
	if !ok {
		return node
	}
	//
	var (
		shape = Classify(e)
		op    = e.Operator
	)
	//
	switch {
	case shape.Left.IsBracket() && shape.Right == OPAQUE:
		var (
			inner = asBracket(e.Left, shape.Left)
			y     = e.Right
		)
		//
		if !AllowedForUnknownRewrite(inner.operator, op) || !AssociatesRight(inner.operator, op) {
			return node
		} else if shape.Left == BRACKET_LEFT {
			// (c op1 x) op y => c op1 (x op y)
			return ast.NewBinary(inner.operator, inner.constant, reopt(ast.NewBinary(op, inner.unknown, y)))
		} else if Commutes(op) {
			// (x op1 c) op y => (x op1 y) op c
			return ast.NewBinary(op, reopt(ast.NewBinary(inner.operator, inner.unknown, y)), inner.constant)
		}
	case shape.Left == OPAQUE && shape.Right.IsBracket():
		var (
			inner = asBracket(e.Right, shape.Right)
			y     = e.Left
		)
		//
		if !AllowedForUnknownRewrite(op, inner.operator) || !AssociatesRight(op, inner.operator) {
			return node
		} else if shape.Right == BRACKET_RIGHT {
			// y op (x op2 c) => (y op x) op2 c
			return ast.NewBinary(inner.operator, reopt(ast.NewBinary(op, y, inner.unknown)), inner.constant)
		} else if Commutes(op) {
			// y op (c op2 x) => c op (y op2 x)
			return ast.NewBinary(op, inner.constant, reopt(ast.NewBinary(inner.operator, y, inner.unknown)))
		}
	}
	//
	return node
}
