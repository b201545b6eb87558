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
	"errors"

	"github.com/consensys/go-reassoc/pkg/ast"
)

var (
	errNotInteger = errors.New("constant is not an integer")
	errUnsafe     = errors.New("safety condition failed")
	errUnsigned   = errors.New("unknown operand would be subtracted from an unsigned constant")
)

// Evaluator computes the result of applying an operator to two concrete values,
// or returns an error if this is not possible (e.g. mismatched types, division
// by zero, or overflow).
type Evaluator func(op ast.Operator, lhs ast.Value, rhs ast.Value) (ast.Value, error)

// Descriptor is the outcome of successfully folding two constants across a
// rewrite boundary: the operator to apply between the unknown operand and the
// folded constant.
type Descriptor struct {
	Operator ast.Operator
	Folded   *ast.Int
}

// transform is a single cell of a transform table.  The zero value is an absent
// cell, indicating there is no known sound rewrite for the given operator pair.
type transform struct {
	// Operator applied between the unknown and the folded constant.
	operator ast.Operator
	// Operator used to fold the two constants.
	fold ast.Operator
	// Fold as "c2 fold c1" rather than "c1 fold c2".
	swap bool
	// Restrict this transform to signed types.  This is used where the unknown
	// remains subtracted from the folded constant, since an unsigned
	// subtrahend can underflow in ways the safety condition does not bound.
	signed bool
	// Safety condition which must hold.
	condition Condition
}

// table holds one transform for each ordered pair of operators.
type table [ast.NumOperators][ast.NumOperators]transform

// lookup a transform for a given pair of operators, returning false if there is
// none.
func (p *table) lookup(first ast.Operator, second ast.Operator) (transform, bool) {
	if first >= ast.NumOperators || second >= ast.NumOperators {
		return transform{}, false
	}
	//
	cell := p[first][second]
	//
	return cell, cell.condition != nil
}

// apply this transform to an original constant c1 (i.e. the constant nested
// within the bracket) and outer constant c2.
func (p transform) apply(c1 ast.Value, c2 ast.Value, evaluator Evaluator) (Descriptor, error) {
	var (
		original, ok1 = c1.(*ast.Int)
		other, ok2    = c2.(*ast.Int)
		folded        ast.Value
		err           error
	)
	//
	if !ok1 || !ok2 {
		return Descriptor{}, errNotInteger
	} else if p.signed && !original.IntType().Signed() {
		return Descriptor{}, errUnsigned
	} else if p.swap {
		folded, err = evaluator(p.fold, other, original)
	} else {
		folded, err = evaluator(p.fold, original, other)
	}
	//
	if err != nil {
		return Descriptor{}, err
	}
	//
	result, ok := folded.(*ast.Int)
	//
	if !ok {
		return Descriptor{}, errNotInteger
	} else if !p.condition(original, result) {
		return Descriptor{}, errUnsafe
	}
	//
	return Descriptor{p.operator, result}, nil
}

// leftAssociate rewrites "(x op1 c1) op c2" into "x op1 f", and is indexed by
// (op1, op).
var leftAssociate = table{
	ast.ADD: {
		ast.ADD: {operator: ast.ADD, fold: ast.ADD, condition: Additive},
		ast.SUB: {operator: ast.ADD, fold: ast.SUB, condition: AdditiveWithZero},
	},
	ast.SUB: {
		ast.ADD: {operator: ast.SUB, fold: ast.SUB, condition: AdditiveWithZero},
		ast.SUB: {operator: ast.SUB, fold: ast.ADD, condition: Additive},
	},
	ast.MUL: {
		ast.MUL: {operator: ast.MUL, fold: ast.MUL, condition: Multiplicative},
	},
}

// leftCommute rewrites "(c1 op1 x) op c2" into "f op1 x", and is indexed by
// (op1, op).
var leftCommute = table{
	ast.ADD: {
		ast.ADD: {operator: ast.ADD, fold: ast.ADD, condition: Additive},
		ast.SUB: {operator: ast.ADD, fold: ast.SUB, condition: AdditiveWithZero},
	},
	ast.SUB: {
		ast.ADD: {operator: ast.SUB, fold: ast.ADD, signed: true, condition: AdditiveWithZero},
		ast.SUB: {operator: ast.SUB, fold: ast.SUB, signed: true, condition: AdditiveWithZero},
	},
	ast.MUL: {
		ast.MUL: {operator: ast.MUL, fold: ast.MUL, condition: Multiplicative},
	},
}

// rightAssociate rewrites "c2 op (c1 op1 x)" into "f op1 x", and is indexed by
// (op, op1).  Subtraction as the outer operator is unsound for all op1.
var rightAssociate = table{
	ast.ADD: {
		ast.ADD: {operator: ast.ADD, fold: ast.ADD, swap: true, condition: Additive},
		ast.SUB: {operator: ast.SUB, fold: ast.ADD, swap: true, signed: true, condition: AdditiveWithZero},
	},
	ast.MUL: {
		ast.MUL: {operator: ast.MUL, fold: ast.MUL, swap: true, condition: Multiplicative},
	},
}

// rightCommute rewrites "c2 op (x op1 c1)" into "x op1 f", and is indexed by
// (op, op1).  Subtraction as the outer operator is unsound for all op1.
var rightCommute = table{
	ast.ADD: {
		ast.ADD: {operator: ast.ADD, fold: ast.ADD, condition: Additive},
		ast.SUB: {operator: ast.SUB, fold: ast.SUB, condition: AdditiveWithZero},
	},
	ast.MUL: {
		ast.MUL: {operator: ast.MUL, fold: ast.MUL, condition: Multiplicative},
	},
}
