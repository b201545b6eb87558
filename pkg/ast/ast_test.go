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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Types
// ============================================================================

func Test_Type_01(t *testing.T) {
	checkBounds(t, I8, -128, 127)
}

func Test_Type_02(t *testing.T) {
	checkBounds(t, U8, 0, 255)
}

func Test_Type_03(t *testing.T) {
	checkBounds(t, NewIntType(1, true), -1, 0)
}

func Test_Type_04(t *testing.T) {
	checkBounds(t, NewIntType(16, false), 0, 65535)
}

func Test_Type_05(t *testing.T) {
	assert.True(t, I8.Contains(big.NewInt(-128)))
	assert.False(t, I8.Contains(big.NewInt(128)))
	assert.False(t, U8.Contains(big.NewInt(-1)))
	assert.True(t, U8.Contains(big.NewInt(255)))
}

func Test_Type_06(t *testing.T) {
	assert.True(t, I8.Equals(NewIntType(8, true)))
	assert.False(t, I8.Equals(U8))
	assert.False(t, I8.Equals(BOOL))
	assert.True(t, BOOL.Equals(&BoolType{}))
}

func Test_ParseType_01(t *testing.T) {
	checkParseType(t, "i8", I8)
	checkParseType(t, "u8", U8)
	checkParseType(t, "i32", I32)
	checkParseType(t, "u256", NewIntType(256, false))
	checkParseType(t, "bool", BOOL)
}

func Test_ParseType_02(t *testing.T) {
	for _, name := range []string{"", "i", "u0", "i08", "i257", "x8", "int", "i-8"} {
		_, err := ParseType(name)
		assert.Error(t, err, "type \"%s\" should not parse", name)
	}
}

// ============================================================================
// Values
// ============================================================================

func Test_Value_01(t *testing.T) {
	v := NewInt64(I8, -5)
	//
	assert.Equal(t, "-5", v.String())
	assert.Equal(t, "-5:i8", v.TypedString())
	assert.Equal(t, -1, v.Sign())
}

func Test_Value_02(t *testing.T) {
	assert.True(t, NewInt64(I8, 5).Equals(NewInt64(I8, 5)))
	assert.False(t, NewInt64(I8, 5).Equals(NewInt64(U8, 5)))
	assert.False(t, NewInt64(I8, 1).Equals(Bool(true)))
	assert.True(t, Bool(false).Equals(Bool(false)))
}

func Test_Value_03(t *testing.T) {
	// Values must not alias their source
	n := big.NewInt(3)
	v := NewInt(I8, n)
	n.SetInt64(4)
	v.BigInt().SetInt64(5)
	//
	assert.Equal(t, "3", v.String())
}

func Test_Value_04(t *testing.T) {
	assert.Equal(t, 0, NewInt64(I8, -3).CmpAbs(NewInt64(I8, 3)))
	assert.Equal(t, 1, NewInt64(I8, -4).CmpAbs(NewInt64(I8, 3)))
	assert.Equal(t, -1, NewInt64(I8, 0).CmpAbs(NewInt64(I8, -1)))
}

// ============================================================================
// Operators
// ============================================================================

func Test_Operator_01(t *testing.T) {
	for _, op := range Operators() {
		parsed, err := ParseOperator(op.String())
		//
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}
}

func Test_Operator_02(t *testing.T) {
	_, err := ParseOperator("**")
	assert.Error(t, err)
}

func Test_Operator_03(t *testing.T) {
	assert.True(t, LT.IsComparison())
	assert.False(t, SUB.IsComparison())
}

func Test_OperatorSet_01(t *testing.T) {
	set := NewOperatorSet(ADD, AND)
	//
	assert.True(t, set.Contains(ADD))
	assert.True(t, set.Contains(AND))
	assert.False(t, set.Contains(SUB))
	assert.False(t, set.Contains(NumOperators))
	assert.Equal(t, "{+,&&}", set.String())
}

// ============================================================================
// Expressions
// ============================================================================

func Test_Expr_01(t *testing.T) {
	// (x + 5) + 3
	e := NewBinary(ADD, NewBinary(ADD, NewVar("x"), lit(5)), lit(3))
	//
	assert.Equal(t, "(x + 5) + 3", e.String())
	assert.Equal(t, uint(5), e.Size())
}

func Test_Expr_02(t *testing.T) {
	// 2 * (x * 3)
	e := NewBinary(MUL, lit(2), NewBinary(MUL, NewVar("x"), lit(3)))
	//
	assert.Equal(t, "2 * (x * 3)", e.String())
	assert.True(t, e.Equals(NewBinary(MUL, lit(2), NewBinary(MUL, NewVar("x"), lit(3)))))
	assert.False(t, e.Equals(NewBinary(MUL, lit(2), NewBinary(MUL, lit(3), NewVar("x")))))
}

func Test_Expr_03(t *testing.T) {
	assert.Panics(t, func() { NewBinary(ADD, nil, lit(1)) })
}

func Test_Expr_04(t *testing.T) {
	assert.True(t, lit(1).Equals(lit(1)))
	assert.False(t, lit(1).Equals(NewVar("x")))
	assert.False(t, NewVar("x").Equals(NewVar("y")))
}

// ============================================================================
// Predicates
// ============================================================================

func Test_Predicate_01(t *testing.T) {
	// (x + 5) + 3
	e := NewBinary(ADD, NewBinary(ADD, NewVar("x"), lit(5)), lit(3))
	//
	assert.False(t, LeftBinaryWithLeftLiteral(e))
	assert.True(t, LeftBinaryWithRightLiteral(e))
	assert.False(t, RightBinaryWithLeftLiteral(e))
	assert.False(t, RightBinaryWithRightLiteral(e))
}

func Test_Predicate_02(t *testing.T) {
	// y * (2 * x)
	e := NewBinary(MUL, NewVar("y"), NewBinary(MUL, lit(2), NewVar("x")))
	//
	assert.False(t, LeftBinaryWithLeftLiteral(e))
	assert.False(t, LeftBinaryWithRightLiteral(e))
	assert.True(t, RightBinaryWithLeftLiteral(e))
	assert.False(t, RightBinaryWithRightLiteral(e))
}

func Test_Predicate_03(t *testing.T) {
	e := NewBinary(ADD, lit(1), NewVar("x"))
	//
	assert.True(t, IsLiteral(e.Left))
	assert.False(t, IsLiteral(e.Right))
	assert.True(t, IsBinary(e))
	assert.False(t, IsBinary(e.Left))
}

// ============================================================================
// Helpers
// ============================================================================

func lit(n int64) *Literal {
	return NewLiteral(NewInt64(I8, n))
}

func checkBounds(t *testing.T, typ *IntType, lower int64, upper int64) {
	lo, hi := typ.Bounds()
	//
	assert.Equal(t, big.NewInt(lower).String(), lo.String(), "lower bound of %s", typ)
	assert.Equal(t, big.NewInt(upper).String(), hi.String(), "upper bound of %s", typ)
}

func checkParseType(t *testing.T, name string, expected Type) {
	typ, err := ParseType(name)
	//
	require.NoError(t, err)
	assert.True(t, expected.Equals(typ), "expected %s, got %s", expected, typ)
	assert.Equal(t, name, typ.String())
}
