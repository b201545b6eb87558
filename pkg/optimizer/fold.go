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
package optimizer

import (
	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/rewrite"
)

// ConstantFold collapses a binary operation over two literals into a single
// literal.  Operations which cannot be evaluated (e.g. because they would trap)
// are left as they are, so that the trap is preserved.
type ConstantFold struct {
	evaluator rewrite.Evaluator
}

// NewConstantFold constructs a constant folding rule for a given evaluator.
func NewConstantFold(evaluator rewrite.Evaluator) *ConstantFold {
	return &ConstantFold{evaluator}
}

// Name implementation for Rule interface.
func (p *ConstantFold) Name() string {
	return "constant-fold"
}

// Apply implementation for Rule interface.
func (p *ConstantFold) Apply(node ast.Expr, _ rewrite.Reoptimizer) ast.Expr {
	if e, ok := node.(*ast.BinaryOp); ok {
		lhs, ok1 := e.Left.(*ast.Literal)
		rhs, ok2 := e.Right.(*ast.Literal)
		//
		if ok1 && ok2 {
			if val, err := p.evaluator(e.Operator, lhs.Value, rhs.Value); err == nil {
				return ast.NewLiteral(val)
			}
		}
	}
	//
	return node
}
