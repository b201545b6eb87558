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
	"testing"

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Safety Conditions
// ============================================================================

func Test_Additive_01(t *testing.T) {
	checkCondition(t, Additive, 0, -5, true)
	checkCondition(t, Additive, 5, 8, true)
	checkCondition(t, Additive, 5, 5, true)
	checkCondition(t, Additive, 5, 3, false)
	checkCondition(t, Additive, 5, -3, false)
	checkCondition(t, Additive, -5, -8, true)
	checkCondition(t, Additive, -5, -3, false)
}

func Test_AdditiveWithZero_01(t *testing.T) {
	checkCondition(t, AdditiveWithZero, 0, -3, false)
	checkCondition(t, AdditiveWithZero, 0, 0, true)
	checkCondition(t, AdditiveWithZero, 0, 3, true)
	checkCondition(t, AdditiveWithZero, 5, 3, false)
	checkCondition(t, AdditiveWithZero, -5, -8, true)
}

func Test_Multiplicative_01(t *testing.T) {
	checkCondition(t, Multiplicative, 0, 0, true)
	checkCondition(t, Multiplicative, 2, 0, false)
	checkCondition(t, Multiplicative, 2, 6, true)
	checkCondition(t, Multiplicative, 2, 2, true)
	checkCondition(t, Multiplicative, 3, 2, false)
	checkCondition(t, Multiplicative, -2, 6, true)
	checkCondition(t, Multiplicative, -2, 2, false)
	checkCondition(t, Multiplicative, 2, -2, false)
}

// ============================================================================
// Transform Tables
// ============================================================================

func Test_Table_01(t *testing.T) {
	cell, ok := leftAssociate.lookup(ast.ADD, ast.ADD)
	require.True(t, ok)
	//
	desc, err := cell.apply(i8(5), i8(3), eval.BinaryOperation)
	require.NoError(t, err)
	assert.Equal(t, ast.ADD, desc.Operator)
	assert.True(t, i8(8).Equals(desc.Folded))
	assert.Equal(t, "+ 8", desc.String())
}

func Test_Table_02(t *testing.T) {
	cell, ok := leftAssociate.lookup(ast.ADD, ast.SUB)
	require.True(t, ok)
	//
	_, err := cell.apply(i8(5), i8(8), eval.BinaryOperation)
	assert.ErrorIs(t, err, errUnsafe)
}

func Test_Table_03(t *testing.T) {
	// c2 + (c1 - x) folds as c2 + c1
	cell, ok := rightAssociate.lookup(ast.ADD, ast.SUB)
	require.True(t, ok)
	//
	desc, err := cell.apply(i8(3), i8(4), eval.BinaryOperation)
	require.NoError(t, err)
	assert.Equal(t, ast.SUB, desc.Operator)
	assert.True(t, i8(7).Equals(desc.Folded))
	// ... but never for unsigned types
	_, err = cell.apply(u8(3), u8(4), eval.BinaryOperation)
	assert.ErrorIs(t, err, errUnsigned)
}

func Test_Table_04(t *testing.T) {
	cell, ok := leftCommute.lookup(ast.SUB, ast.ADD)
	require.True(t, ok)
	//
	_, err := cell.apply(u8(10), u8(20), eval.BinaryOperation)
	assert.ErrorIs(t, err, errUnsigned)
}

func Test_Table_05(t *testing.T) {
	cell, ok := leftAssociate.lookup(ast.ADD, ast.ADD)
	require.True(t, ok)
	// Folding overflows
	_, err := cell.apply(i8(100), i8(100), eval.BinaryOperation)
	//
	var evalErr *eval.Error
	//
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, eval.Overflow, evalErr.Kind())
	// Constants must be integers
	_, err = cell.apply(ast.Bool(true), i8(1), eval.BinaryOperation)
	assert.ErrorIs(t, err, errNotInteger)
}

func Test_Table_06(t *testing.T) {
	// Subtraction as the outer operator never has a right-hand rewrite.
	for _, op1 := range ast.Operators() {
		_, ok1 := rightAssociate.lookup(ast.SUB, op1)
		_, ok2 := rightCommute.lookup(ast.SUB, op1)
		//
		assert.False(t, ok1 || ok2, "unexpected cell for - and %s", op1)
	}
	//
	_, ok := leftAssociate.lookup(ast.DIV, ast.DIV)
	assert.False(t, ok)
	_, ok = leftAssociate.lookup(ast.NumOperators, ast.ADD)
	assert.False(t, ok)
}

func Test_Table_07(t *testing.T) {
	// Only arithmetic operators are ever present.
	for _, tbl := range []*table{&leftAssociate, &leftCommute, &rightAssociate, &rightCommute} {
		for _, op1 := range ast.Operators() {
			for _, op2 := range ast.Operators() {
				if _, ok := tbl.lookup(op1, op2); ok {
					assert.True(t, IsArithmeticFoldable(op1) && IsArithmeticFoldable(op2))
				}
			}
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

func i8(n int64) *ast.Int {
	return ast.NewInt64(ast.I8, n)
}

func u8(n int64) *ast.Int {
	return ast.NewInt64(ast.U8, n)
}

func checkCondition(t *testing.T, cond Condition, original int64, folded int64, expected bool) {
	t.Helper()
	//
	assert.Equal(t, expected, cond(i8(original), i8(folded)), "original %d, folded %d", original, folded)
}
