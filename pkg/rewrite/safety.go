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

// Condition is a safety predicate over the original constant of a rewrite, and
// the constant obtained by folding it with the other constant.  A rewrite may
// only be applied when its condition holds.  Each condition ensures the
// effective coefficient applied to the unknown operand cannot shrink (or
// vanish), and hence that the rewritten expression traps exactly when the
// original does.
type Condition func(original *ast.Int, folded *ast.Int) bool

// Additive is the condition for folds through "+" and "-".  A zero original
// constant contributes nothing and is always safe.  Otherwise, the folded
// constant must push the unknown in the same direction and at least as far.
func Additive(original *ast.Int, folded *ast.Int) bool {
	if original.Sign() == 0 {
		return true
	}
	//
	return original.Sign() == folded.Sign() && folded.CmpAbs(original) >= 0
}

// AdditiveWithZero is as for Additive, except that a zero original constant is
// only safe when the folded constant is non-negative.  This covers shapes where
// a negative fold introduces a subtraction which could flip a trap.
func AdditiveWithZero(original *ast.Int, folded *ast.Int) bool {
	if original.Sign() == 0 {
		return folded.Sign() >= 0
	}
	//
	return Additive(original, folded)
}

// Multiplicative is the condition for folds through "*".  A zero original
// constant annihilates the unknown, and is always safe.  Otherwise, the folded
// constant must not be zero and its magnitude must not shrink (or must strictly
// grow, if the sign flips).
func Multiplicative(original *ast.Int, folded *ast.Int) bool {
	switch {
	case original.Sign() == 0:
		return true
	case folded.Sign() == 0:
		return false
	case original.Sign() == folded.Sign():
		return folded.CmpAbs(original) >= 0
	default:
		return folded.CmpAbs(original) > 0
	}
}
