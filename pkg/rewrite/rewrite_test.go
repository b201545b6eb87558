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
	"testing"

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/eval"
	"github.com/consensys/go-reassoc/pkg/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Arithmetic
// ============================================================================

func Test_Arith_01(t *testing.T) {
	checkRewrite(t, arithmetic(), "(+ (+ x 5) 3)", "(+ x 8)")
}

func Test_Arith_02(t *testing.T) {
	// x + 5 overflows for x in [123,127], whereas x - 3 never does.
	checkUnchanged(t, arithmetic(), "(- (+ x 5) 8)")
}

func Test_Arith_03(t *testing.T) {
	checkRewrite(t, arithmetic(), "(* (* 2 x) 3)", "(* 6 x)")
}

func Test_Arith_04(t *testing.T) {
	// x - 3 traps at x = -128, whereas x + 0 never does.
	checkUnchanged(t, arithmetic(), "(- (+ x 0) 3)")
}

func Test_Arith_05(t *testing.T) {
	checkUnchanged(t, arithmetic(), "(+ (+ x true) 3)")
}

func Test_Arith_06(t *testing.T) {
	checkRewrite(t, arithmetic(), "(- (- x 5) 3)", "(- x 8)")
	checkRewrite(t, arithmetic(), "(- (- x -5) -3)", "(- x -8)")
	checkUnchanged(t, arithmetic(), "(- (- x 5) -3)")
}

func Test_Arith_07(t *testing.T) {
	checkRewrite(t, arithmetic(), "(+ (+ 5 x) 3)", "(+ 8 x)")
	checkRewrite(t, arithmetic(), "(- (- -5 x) 3)", "(- -8 x)")
	// 5 - x overflows for x = -123, whereas 2 - x does not.
	checkUnchanged(t, arithmetic(), "(- (- 5 x) 3)")
	checkUnchanged(t, arithmetic(), "(- (- 5:u8 x) 3:u8)")
}

func Test_Arith_08(t *testing.T) {
	checkRewrite(t, arithmetic(), "(+ 3 (+ x 5))", "(+ x 8)")
	checkRewrite(t, arithmetic(), "(* 3 (* x 5))", "(* x 15)")
	checkUnchanged(t, arithmetic(), "(- 3 (+ x 5))")
}

func Test_Arith_09(t *testing.T) {
	checkRewrite(t, arithmetic(), "(+ 3 (+ 5 x))", "(+ 8 x)")
	checkRewrite(t, arithmetic(), "(+ 4 (- 3 x))", "(- 7 x)")
	checkUnchanged(t, arithmetic(), "(+ 4:u8 (- 3:u8 x))")
}

func Test_Arith_10(t *testing.T) {
	// Folding would overflow.
	checkUnchanged(t, arithmetic(), "(+ (+ x 100) 100)")
	// Folding would shrink the coefficient.
	checkUnchanged(t, arithmetic(), "(* (* x 2) -1)")
	// Folding would annihilate the unknown.
	checkUnchanged(t, arithmetic(), "(* (* x 2) 0)")
	// Zero annihilates the unknown anyway.
	checkRewrite(t, arithmetic(), "(* (* x 0) 5)", "(* x 0)")
}

func Test_Arith_11(t *testing.T) {
	// Not one constant per side
	checkUnchanged(t, arithmetic(), "(+ (+ x y) 3)")
	checkUnchanged(t, arithmetic(), "(+ (+ x 1) (+ y 2))")
	// Not foldable
	checkUnchanged(t, arithmetic(), "(/ (/ x 2) 3)")
	checkUnchanged(t, arithmetic(), "(+ (/ x 2) 3)")
	// Mismatched types
	checkUnchanged(t, arithmetic(), "(+ (+ x 1:i8) 2:i16)")
}

// ============================================================================
// Bracketed Constants
// ============================================================================

func Test_Bracketed_01(t *testing.T) {
	var calls []string
	//
	reopt := func(e ast.Expr) ast.Expr {
		calls = append(calls, e.String())
		return e
	}
	//
	checkRewriteWith(t, foldBracketed(), reopt, "(&& (&& a true) (&& b true))", "(&& (&& a b) true)")
	assert.Equal(t, []string{"a && b"}, calls)
}

func Test_Bracketed_02(t *testing.T) {
	checkRewrite(t, foldBracketed(), "(|| (|| false a) (|| b true))", "(|| true (|| a b))")
	checkRewrite(t, foldBracketed(), "(&& (&& a true) (&& false b))", "(&& (&& a b) false)")
}

func Test_Bracketed_03(t *testing.T) {
	// Mixed connectives do not associate
	checkUnchanged(t, foldBracketed(), "(&& (|| a true) (&& b true))")
	checkUnchanged(t, foldBracketed(), "(|| (&& a true) (&& b true))")
	// Arithmetic cannot be regrouped over unknowns
	checkUnchanged(t, foldBracketed(), "(+ (+ x 1) (+ y 2))")
}

func Test_Bracketed_04(t *testing.T) {
	// The reoptimizer is given the regrouped unknowns, and its result is used.
	reopt := func(e ast.Expr) ast.Expr {
		return ast.NewVar("z")
	}
	//
	checkRewriteWith(t, foldBracketed(), reopt, "(&& (&& a true) (&& b true))", "(&& z true)")
}

func Test_Bracketed_05(t *testing.T) {
	var calls int
	//
	reopt := func(e ast.Expr) ast.Expr {
		calls++
		return e
	}
	// Constants which cannot be folded leave the tree untouched, and the
	// unknowns are never regrouped.
	for _, input := range []string{
		"(&& (&& a true) (&& b 5))",
		"(|| (|| false a) (|| b 1:u8))",
		"(&& (&& 3:i8 a) (&& b 3:u8))",
	} {
		e := parse(t, input)
		actual := foldBracketed().Apply(e, reopt)
		//
		assert.Same(t, e, actual, "expected %s unchanged, got %s", e, actual)
	}
	//
	assert.Equal(t, 0, calls)
}

// ============================================================================
// Absorb Unknown
// ============================================================================

func Test_Absorb_01(t *testing.T) {
	checkRewrite(t, absorbUnknown(), "(&& (&& x true) y)", "(&& (&& x y) true)")
	checkRewrite(t, absorbUnknown(), "(&& (&& true x) y)", "(&& true (&& x y))")
}

func Test_Absorb_02(t *testing.T) {
	checkRewrite(t, absorbUnknown(), "(|| y (|| x false))", "(|| (|| y x) false)")
	checkRewrite(t, absorbUnknown(), "(|| y (|| false x))", "(|| false (|| y x))")
}

func Test_Absorb_03(t *testing.T) {
	checkUnchanged(t, absorbUnknown(), "(&& (|| x true) y)")
	checkUnchanged(t, absorbUnknown(), "(+ (+ x 1) y)")
	checkUnchanged(t, absorbUnknown(), "(&& (&& x true) true)")
	checkUnchanged(t, absorbUnknown(), "(&& (&& x true) (&& y true))")
}

func Test_Absorb_04(t *testing.T) {
	var calls int
	//
	reopt := func(e ast.Expr) ast.Expr {
		calls++
		return e
	}
	//
	checkRewriteWith(t, absorbUnknown(), reopt, "(&& (&& x true) (== a b))", "(&& (&& x (== a b)) true)")
	assert.Equal(t, 1, calls)
}

// ============================================================================
// Classification
// ============================================================================

func Test_Classify_01(t *testing.T) {
	checkShape(t, "(+ (+ x 5) 3)", BRACKET_RIGHT, LITERAL, LEFT_ASSOCIATE)
	checkShape(t, "(+ (+ 5 x) 3)", BRACKET_LEFT, LITERAL, LEFT_COMMUTE)
	checkShape(t, "(+ 3 (+ x 5))", LITERAL, BRACKET_RIGHT, RIGHT_COMMUTE)
	checkShape(t, "(+ 3 (+ 5 x))", LITERAL, BRACKET_LEFT, RIGHT_ASSOCIATE)
}

func Test_Classify_02(t *testing.T) {
	checkShape(t, "(+ x y)", OPAQUE, OPAQUE, NO_TOPOLOGY)
	checkShape(t, "(+ (+ 1 2) x)", OPAQUE, OPAQUE, NO_TOPOLOGY)
	checkShape(t, "(+ (+ x y) 1)", OPAQUE, LITERAL, NO_TOPOLOGY)
	checkShape(t, "(+ 1 2)", LITERAL, LITERAL, NO_TOPOLOGY)
	checkShape(t, "(+ (+ x 1) (- 2 y))", BRACKET_RIGHT, BRACKET_LEFT, NO_TOPOLOGY)
}

// ============================================================================
// Operator Properties
// ============================================================================

func Test_Properties_01(t *testing.T) {
	assert.True(t, AssociatesRight(ast.ADD, ast.SUB))
	assert.True(t, AssociatesRight(ast.MUL, ast.SHL))
	assert.True(t, AssociatesRight(ast.AND, ast.AND))
	assert.True(t, AssociatesRight(ast.OR, ast.OR))
	assert.False(t, AssociatesRight(ast.SUB, ast.ADD))
	assert.False(t, AssociatesRight(ast.AND, ast.OR))
	assert.False(t, AssociatesRight(ast.DIV, ast.DIV))
	assert.False(t, AssociatesRight(ast.NumOperators, ast.ADD))
}

func Test_Properties_02(t *testing.T) {
	for _, op := range ast.Operators() {
		switch op {
		case ast.ADD, ast.MUL, ast.EQ, ast.NEQ, ast.AND, ast.OR:
			assert.True(t, Commutes(op), "%s should commute", op)
		default:
			assert.False(t, Commutes(op), "%s should not commute", op)
		}
	}
}

func Test_Properties_03(t *testing.T) {
	assert.True(t, AllowedForUnknownRewrite())
	assert.True(t, AllowedForUnknownRewrite(ast.AND, ast.OR))
	assert.False(t, AllowedForUnknownRewrite(ast.AND, ast.ADD))
	assert.True(t, IsArithmeticFoldable(ast.SUB))
	assert.False(t, IsArithmeticFoldable(ast.DIV))
}

func Test_Rules_01(t *testing.T) {
	var names []string
	//
	for _, rule := range Rules(eval.BinaryOperation) {
		names = append(names, rule.Name())
	}
	//
	assert.Equal(t, []string{"fold-bracketed", "absorb-unknown", "arithmetic"}, names)
}

// ============================================================================
// Helpers
// ============================================================================

func arithmetic() Rule {
	return NewArithmeticRule(eval.BinaryOperation)
}

func foldBracketed() Rule {
	return NewFoldBracketedConstants(eval.BinaryOperation)
}

func absorbUnknown() Rule {
	return NewAbsorbUnknown()
}

func parse(t *testing.T, input string) ast.Expr {
	t.Helper()
	//
	e, err := syntax.NewParser(ast.I8).ParseString(input)
	require.NoError(t, err, "parsing %s", input)
	//
	return e
}

func checkRewrite(t *testing.T, rule Rule, input string, expected string) {
	t.Helper()
	checkRewriteWith(t, rule, Identity, input, expected)
}

func checkRewriteWith(t *testing.T, rule Rule, reopt Reoptimizer, input string, expected string) {
	t.Helper()
	//
	var (
		e      = parse(t, input)
		before = e.String()
		want   = parse(t, expected)
		actual = rule.Apply(e, reopt)
	)
	//
	assert.True(t, want.Equals(actual), "%s: expected %s, got %s", rule.Name(), want, actual)
	// Input must not be modified
	assert.Equal(t, before, e.String())
}

func checkUnchanged(t *testing.T, rule Rule, input string) {
	t.Helper()
	//
	e := parse(t, input)
	actual := rule.Apply(e, Identity)
	//
	assert.Same(t, e, actual, "%s: expected %s unchanged, got %s", rule.Name(), e, actual)
}

func checkShape(t *testing.T, input string, left Side, right Side, topology Topology) {
	t.Helper()
	//
	e, ok := parse(t, input).(*ast.BinaryOp)
	require.True(t, ok)
	//
	shape := Classify(e)
	//
	assert.Equal(t, Shape{left, right}, shape, "shape of %s", input)
	assert.Equal(t, topology, shape.Topology(), "topology of %s", input)
}
