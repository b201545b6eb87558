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
	"math/big"
	"testing"

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/eval"
	"github.com/stretchr/testify/assert"
)

// Every rewrite made by the arithmetic rule must preserve the outcome (value or
// trap) for every possible value of the unknown.  The unknown ranges over its
// entire type, whilst the constants are sampled across it (including the
// extremes).
func Test_Soundness_Arith_I8(t *testing.T) {
	checkArithmeticSoundness(t, ast.I8)
}

func Test_Soundness_Arith_U8(t *testing.T) {
	checkArithmeticSoundness(t, ast.U8)
}

// Every rewrite over booleans must preserve the outcome for every assignment of
// the unknowns.
func Test_Soundness_Bool(t *testing.T) {
	var (
		ops       = []ast.Operator{ast.AND, ast.OR, ast.EQ}
		constants = []ast.Value{ast.Bool(false), ast.Bool(true)}
		rules     = []Rule{foldBracketed(), absorbUnknown()}
		envs      = boolEnvs("x", "y")
		rewrites  = 0
	)
	//
	for _, op := range ops {
		for _, op1 := range ops {
			for _, op2 := range ops {
				for _, c1 := range constants {
					for _, c2 := range constants {
						for _, e := range boolShapes(op, op1, op2, c1, c2) {
							for _, rule := range rules {
								if checkPreserved(t, rule, e, envs) {
									rewrites++
								}
							}
						}
					}
				}
			}
		}
	}
	// Sanity check that rewrites were actually exercised.
	assert.Greater(t, rewrites, 0)
}

func checkArithmeticSoundness(t *testing.T, typ *ast.IntType) {
	if testing.Short() {
		t.Skip()
	}
	//
	var (
		rule      = arithmetic()
		ops       = []ast.Operator{ast.ADD, ast.SUB, ast.MUL}
		constants = sampleValues(typ, 13)
		envs      = intEnvs(typ, "x")
		x         = ast.NewVar("x")
		rewrites  = 0
	)
	//
	for _, op := range ops {
		for _, op1 := range ops {
			for _, c1 := range constants {
				for _, c2 := range constants {
					l1, l2 := ast.NewLiteral(c1), ast.NewLiteral(c2)
					shapes := []ast.Expr{
						ast.NewBinary(op, ast.NewBinary(op1, x, l1), l2),
						ast.NewBinary(op, ast.NewBinary(op1, l1, x), l2),
						ast.NewBinary(op, l2, ast.NewBinary(op1, x, l1)),
						ast.NewBinary(op, l2, ast.NewBinary(op1, l1, x)),
					}
					//
					for _, e := range shapes {
						if checkPreserved(t, rule, e, envs) {
							rewrites++
						}
					}
				}
			}
		}
	}
	//
	assert.Greater(t, rewrites, 0)
}

// Apply a rule to a given expression and, if it was rewritten, check the
// outcome is unchanged under every environment.  Returns true if a rewrite
// occurred.
func checkPreserved(t *testing.T, rule Rule, e ast.Expr, envs []eval.Env) bool {
	t.Helper()
	//
	rewritten := rule.Apply(e, Identity)
	//
	if rewritten == e {
		return false
	}
	//
	for _, env := range envs {
		before := eval.Observe(e, env)
		after := eval.Observe(rewritten, env)
		//
		if !before.Equals(after) {
			t.Errorf("%s: %s => %s changes outcome under %v (%s vs %s)", rule.Name(), e, rewritten,
				env.Names(), before, after)
			//
			return true
		}
	}
	//
	return true
}

// Construct every arrangement of two bracketed boolean constants, and of a
// single bracketed constant alongside an unknown.
func boolShapes(op, op1, op2 ast.Operator, c1, c2 ast.Value) []ast.Expr {
	var (
		x, y   = ast.NewVar("x"), ast.NewVar("y")
		l1, l2 = ast.NewLiteral(c1), ast.NewLiteral(c2)
		lhs    = []ast.Expr{ast.NewBinary(op1, x, l1), ast.NewBinary(op1, l1, x)}
		rhs    = []ast.Expr{ast.NewBinary(op2, y, l2), ast.NewBinary(op2, l2, y)}
		shapes []ast.Expr
	)
	//
	for _, l := range lhs {
		shapes = append(shapes, ast.NewBinary(op, l, y))
		//
		for _, r := range rhs {
			shapes = append(shapes, ast.NewBinary(op, l, r))
		}
	}
	//
	for _, r := range rhs {
		shapes = append(shapes, ast.NewBinary(op, x, r))
	}
	//
	return shapes
}

func boolEnvs(names ...string) []eval.Env {
	envs := []eval.Env{eval.NewEnv()}
	//
	for _, name := range names {
		var next []eval.Env
		//
		for _, env := range envs {
			next = append(next, env.Bind(name, ast.Bool(false)), env.Bind(name, ast.Bool(true)))
		}
		//
		envs = next
	}
	//
	return envs
}

func intEnvs(typ *ast.IntType, name string) []eval.Env {
	var (
		envs         []eval.Env
		lower, upper = typ.Bounds()
	)
	//
	for i := new(big.Int).Set(&lower); i.Cmp(&upper) <= 0; i.Add(i, big.NewInt(1)) {
		envs = append(envs, eval.NewEnv().Bind(name, ast.NewInt(typ, i)))
	}
	//
	return envs
}

// Sample values across the range of a given type, taking every nth value along
// with those at (or adjacent to) the extremes and zero.
func sampleValues(typ *ast.IntType, n int64) []ast.Value {
	var (
		values       []ast.Value
		seen         = make(map[string]bool)
		lower, upper = typ.Bounds()
		step         = big.NewInt(n)
		one          = big.NewInt(1)
		candidates   []*big.Int
	)
	//
	for i := new(big.Int).Set(&lower); i.Cmp(&upper) <= 0; i.Add(i, step) {
		candidates = append(candidates, new(big.Int).Set(i))
	}
	//
	candidates = append(candidates,
		new(big.Int).Add(&lower, one), new(big.Int).Sub(&upper, one), &upper,
		big.NewInt(-2), big.NewInt(-1), big.NewInt(0), big.NewInt(1), big.NewInt(2))
	//
	for _, c := range candidates {
		if typ.Contains(c) && !seen[c.String()] {
			seen[c.String()] = true
			values = append(values, ast.NewInt(typ, c))
		}
	}
	//
	return values
}
