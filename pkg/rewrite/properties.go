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

import "github.com/consensys/go-reassoc/pkg/ast"

// associatesRight maps each operator op1 to the set of operators op2 for which
// "(a op1 b) op2 c == a op1 (b op2 c)" holds for all well-defined operands.
// Operators not listed (e.g. division and remainder) associate with nothing.
var associatesRight = [ast.NumOperators]ast.OperatorSet{
	ast.ADD: ast.NewOperatorSet(ast.ADD, ast.SUB),
	ast.MUL: ast.NewOperatorSet(ast.MUL, ast.SHL),
	ast.AND: ast.NewOperatorSet(ast.AND),
	ast.OR:  ast.NewOperatorSet(ast.OR),
}

// commutative identifies those operators for which "a op b == b op a".
var commutative = ast.NewOperatorSet(ast.ADD, ast.MUL, ast.NEQ, ast.EQ, ast.AND, ast.OR)

// allowedForUnknownRewrite identifies those operators for which regrouping
// completely unknown operands cannot change which (if any) subexpression traps.
// Arithmetic operators are excluded: regrouping "+", "-", "*" or "/" over
// unknown operands can change which intermediate result overflows.
var allowedForUnknownRewrite = ast.NewOperatorSet(ast.AND, ast.OR)

// arithmeticFoldable identifies those operators covered by the overflow-safe
// arithmetic rule.
var arithmeticFoldable = ast.NewOperatorSet(ast.ADD, ast.SUB, ast.MUL)

// AssociatesRight determines whether "(a op1 b) op2 c == a op1 (b op2 c)" holds
// for all well-defined operands.
func AssociatesRight(op1 ast.Operator, op2 ast.Operator) bool {
	return op1 < ast.NumOperators && associatesRight[op1].Contains(op2)
}

// Commutes determines whether "a op b == b op a" holds for all operands.
func Commutes(op ast.Operator) bool {
	return commutative.Contains(op)
}

// AllowedForUnknownRewrite determines whether operands of the given operator
// can be regrouped when their values are completely unknown.
func AllowedForUnknownRewrite(ops ...ast.Operator) bool {
	for _, op := range ops {
		if !allowedForUnknownRewrite.Contains(op) {
			return false
		}
	}
	//
	return true
}

// IsArithmeticFoldable determines whether the given operator is covered by the
// overflow-safe arithmetic rule.
func IsArithmeticFoldable(op ast.Operator) bool {
	return arithmeticFoldable.Contains(op)
}
