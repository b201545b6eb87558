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

// IsLiteral checks whether a given expression is a literal.
func IsLiteral(e Expr) bool {
	_, ok := e.(*Literal)
	return ok
}

// IsBinary checks whether a given expression is a binary operation.
func IsBinary(e Expr) bool {
	_, ok := e.(*BinaryOp)
	return ok
}

// LeftBinaryWithLeftLiteral checks whether the left child of a binary operation
// is itself a binary operation with a literal on its left, i.e. "(c op1 x) op y".
func LeftBinaryWithLeftLiteral(e *BinaryOp) bool {
	return hasLiteralOn(e.Left, true)
}

// LeftBinaryWithRightLiteral checks whether the left child of a binary
// operation is itself a binary operation with a literal on its right, i.e. "(x
// op1 c) op y".
func LeftBinaryWithRightLiteral(e *BinaryOp) bool {
	return hasLiteralOn(e.Left, false)
}

// RightBinaryWithLeftLiteral checks whether the right child of a binary
// operation is itself a binary operation with a literal on its left, i.e. "y op
// (c op2 x)".
func RightBinaryWithLeftLiteral(e *BinaryOp) bool {
	return hasLiteralOn(e.Right, true)
}

// RightBinaryWithRightLiteral checks whether the right child of a binary
// operation is itself a binary operation with a literal on its right, i.e. "y
// op (x op2 c)".
func RightBinaryWithRightLiteral(e *BinaryOp) bool {
	return hasLiteralOn(e.Right, false)
}

func hasLiteralOn(e Expr, left bool) bool {
	if b, ok := e.(*BinaryOp); ok {
		if left {
			return IsLiteral(b.Left)
		}
		//
		return IsLiteral(b.Right)
	}
	//
	return false
}
