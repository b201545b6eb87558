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

// ArithmeticRule folds two constants across an associativity or commutativity
// step over "+", "-" and "*", provided a safety condition certifies that the
// rewrite cannot change which inputs overflow.  For example, "(x + 5) + 3"
// becomes "x + 8", whilst "(x + 5) - 8" is left untouched (since "x + 5" can
// overflow where "x - 3" does not).
type ArithmeticRule struct {
	evaluator Evaluator
}

// NewArithmeticRule constructs a new arithmetic rule using a given evaluator
// for folding constants.
func NewArithmeticRule(evaluator Evaluator) *ArithmeticRule {
	return &ArithmeticRule{evaluator}
}

// Name implementation for Rule interface.
func (p *ArithmeticRule) Name() string {
	return "arithmetic"
}

// Apply implementation for Rule interface.  No reoptimization is required, since
// no two unknowns are ever juxtaposed.
func (p *ArithmeticRule) Apply(node ast.Expr, _ Reoptimizer) ast.Expr {
	var (
		inner bracket
		outer *ast.Literal
		cell  transform
		found bool
	)
	//
	e, ok := node.(*ast.BinaryOp)
	//
	if !ok || !IsArithmeticFoldable(e.Operator) {
		return node
	}
	//
	shape := Classify(e)
	topology := shape.Topology()
	//
	switch topology {
	case LEFT_ASSOCIATE:
		inner, outer = asBracket(e.Left, shape.Left), e.Right.(*ast.Literal)
		cell, found = leftAssociate.lookup(inner.operator, e.Operator)
	case LEFT_COMMUTE:
		inner, outer = asBracket(e.Left, shape.Left), e.Right.(*ast.Literal)
		cell, found = leftCommute.lookup(inner.operator, e.Operator)
	case RIGHT_COMMUTE:
		inner, outer = asBracket(e.Right, shape.Right), e.Left.(*ast.Literal)
		cell, found = rightCommute.lookup(e.Operator, inner.operator)
	case RIGHT_ASSOCIATE:
		inner, outer = asBracket(e.Right, shape.Right), e.Left.(*ast.Literal)
		cell, found = rightAssociate.lookup(e.Operator, inner.operator)
	}
	// Check whether there is a sound rewrite for this operator pair.
	if !found {
		return node
	}
	//
	desc, err := cell.apply(inner.constant.Value, outer.Value, p.evaluator)
	//
	if err != nil {
		return abandon(p, node, err)
	}
	//
	folded := ast.NewLiteral(desc.Folded)
	// Place the unknown according to the shape.
	if topology == LEFT_ASSOCIATE || topology == RIGHT_COMMUTE {
		return ast.NewBinary(desc.Operator, inner.unknown, folded)
	}
	//
	return ast.NewBinary(desc.Operator, folded, inner.unknown)
}
