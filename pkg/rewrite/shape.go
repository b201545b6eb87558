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

const (
	// OPAQUE describes an operand which is neither a literal nor a bracket.
	OPAQUE Side = iota
	// LITERAL describes an operand which is a literal.
	LITERAL
	// BRACKET_LEFT describes an operand "c op x", i.e. a binary operation whose
	// left operand is a literal and whose right operand is not.
	BRACKET_LEFT
	// BRACKET_RIGHT describes an operand "x op c", i.e. a binary operation
	// whose right operand is a literal and whose left operand is not.
	BRACKET_RIGHT
)

// Side classifies one operand of a binary operation.
type Side uint8

// IsBracket checks whether this side is a binary operation holding exactly one
// literal.
func (s Side) IsBracket() bool {
	return s == BRACKET_LEFT || s == BRACKET_RIGHT
}

func (s Side) String() string {
	switch s {
	case OPAQUE:
		return "opaque"
	case LITERAL:
		return "literal"
	case BRACKET_LEFT:
		return "(c op x)"
	case BRACKET_RIGHT:
		return "(x op c)"
	default:
		panic("unreachable")
	}
}

const (
	// NO_TOPOLOGY indicates the shape has one constant on neither (or both)
	// sides, and is not handled by the arithmetic rule.
	NO_TOPOLOGY Topology = iota
	// LEFT_ASSOCIATE is the shape "(x op1 c1) op c2".
	LEFT_ASSOCIATE
	// LEFT_COMMUTE is the shape "(c1 op1 x) op c2".
	LEFT_COMMUTE
	// RIGHT_COMMUTE is the shape "c2 op (x op1 c1)".
	RIGHT_COMMUTE
	// RIGHT_ASSOCIATE is the shape "c2 op (c1 op1 x)".
	RIGHT_ASSOCIATE
)

// Topology identifies which of the canonical shapes with exactly one constant
// per side a binary operation matches.
type Topology uint8

func (t Topology) String() string {
	switch t {
	case NO_TOPOLOGY:
		return "none"
	case LEFT_ASSOCIATE:
		return "left-associate"
	case LEFT_COMMUTE:
		return "left-commute"
	case RIGHT_COMMUTE:
		return "right-commute"
	case RIGHT_ASSOCIATE:
		return "right-associate"
	default:
		panic("unreachable")
	}
}

// Shape describes the structure of a binary operation, in terms of the
// structure of its two operands.
type Shape struct {
	Left  Side
	Right Side
}

// Classify determines the shape of a given binary operation.
func Classify(e *ast.BinaryOp) Shape {
	var shape Shape
	// Left-hand side
	switch {
	case ast.IsLiteral(e.Left):
		shape.Left = LITERAL
	case ast.LeftBinaryWithLeftLiteral(e) && !ast.LeftBinaryWithRightLiteral(e):
		shape.Left = BRACKET_LEFT
	case ast.LeftBinaryWithRightLiteral(e) && !ast.LeftBinaryWithLeftLiteral(e):
		shape.Left = BRACKET_RIGHT
	}
	// Right-hand side
	switch {
	case ast.IsLiteral(e.Right):
		shape.Right = LITERAL
	case ast.RightBinaryWithLeftLiteral(e) && !ast.RightBinaryWithRightLiteral(e):
		shape.Right = BRACKET_LEFT
	case ast.RightBinaryWithRightLiteral(e) && !ast.RightBinaryWithLeftLiteral(e):
		shape.Right = BRACKET_RIGHT
	}
	//
	return shape
}

// Topology determines which (if any) of the one-constant-per-side shapes this
// shape matches.
func (s Shape) Topology() Topology {
	switch {
	case s.Left == BRACKET_RIGHT && s.Right == LITERAL:
		return LEFT_ASSOCIATE
	case s.Left == BRACKET_LEFT && s.Right == LITERAL:
		return LEFT_COMMUTE
	case s.Left == LITERAL && s.Right == BRACKET_RIGHT:
		return RIGHT_COMMUTE
	case s.Left == LITERAL && s.Right == BRACKET_LEFT:
		return RIGHT_ASSOCIATE
	default:
		return NO_TOPOLOGY
	}
}

func (s Shape) String() string {
	return s.Left.String() + " op " + s.Right.String()
}

// bracket is the destructured form of a binary operation holding exactly one
// literal, as identified by the classifier.
type bracket struct {
	operator ast.Operator
	unknown  ast.Expr
	constant *ast.Literal
}

// asBracket destructures an operand which the classifier has identified as a
// bracket.
func asBracket(e ast.Expr, side Side) bracket {
	b := e.(*ast.BinaryOp)
	//
	switch side {
	case BRACKET_LEFT:
		return bracket{b.Operator, b.Right, b.Left.(*ast.Literal)}
	case BRACKET_RIGHT:
		return bracket{b.Operator, b.Left, b.Right.(*ast.Literal)}
	default:
		panic("unreachable")
	}
}
