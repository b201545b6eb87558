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
package eval

import (
	"math/big"

	"github.com/consensys/go-reassoc/pkg/ast"
)

// BinaryOperation computes the result of applying a given operator to two
// concrete values.  Integer arithmetic is checked against the range of the
// operand type, and both operands must have the same type.  An error is
// returned when the operation traps, or when it is undefined for the given
// operands.
func BinaryOperation(op ast.Operator, lhs ast.Value, rhs ast.Value) (ast.Value, error) {
	switch l := lhs.(type) {
	case *ast.Int:
		if r, ok := rhs.(*ast.Int); ok && l.IntType().Equals(r.IntType()) {
			return intOperation(op, l, r)
		}
	case ast.Bool:
		if r, ok := rhs.(ast.Bool); ok {
			return boolOperation(op, l, r)
		}
	}
	//
	return nil, errorf(TypeMismatch, "%s %s %s (%s vs %s)", lhs, op, rhs, lhs.Type(), rhs.Type())
}

func intOperation(op ast.Operator, lhs *ast.Int, rhs *ast.Int) (ast.Value, error) {
	var (
		typ = lhs.IntType()
		l   = lhs.BigInt()
		r   = rhs.BigInt()
		res big.Int
	)
	//
	if op.IsComparison() {
		return ast.Bool(compare(op, l.Cmp(r))), nil
	}
	//
	switch op {
	case ast.ADD:
		res.Add(l, r)
	case ast.SUB:
		res.Sub(l, r)
	case ast.MUL:
		res.Mul(l, r)
	case ast.DIV:
		if r.Sign() == 0 {
			return nil, errorf(DivisionByZero, "%s / %s", l, r)
		}
		// Go's Quo truncates towards zero, as required.
		res.Quo(l, r)
	case ast.REM:
		if r.Sign() == 0 {
			return nil, errorf(DivisionByZero, "%s %% %s", l, r)
		}
		//
		res.Rem(l, r)
	case ast.SHL, ast.SHR:
		if r.Sign() < 0 || r.Cmp(big.NewInt(int64(typ.Width()))) >= 0 {
			return nil, errorf(Overflow, "shift amount %s out of range for %s", r, typ)
		}
		//
		if op == ast.SHL {
			res.Lsh(l, uint(r.Uint64()))
		} else {
			res.Rsh(l, uint(r.Uint64()))
		}
	case ast.BITAND:
		res.And(l, r)
	case ast.BITOR:
		res.Or(l, r)
	case ast.BITXOR:
		res.Xor(l, r)
	default:
		return nil, errorf(UndefinedOperator, "%s not defined for %s", op, typ)
	}
	// Check result is within bounds
	if !typ.Contains(&res) {
		return nil, errorf(Overflow, "%s %s %s out of range for %s", l, op, r, typ)
	}
	//
	return ast.NewInt(typ, &res), nil
}

func boolOperation(op ast.Operator, lhs ast.Bool, rhs ast.Bool) (ast.Value, error) {
	switch op {
	case ast.AND:
		return lhs && rhs, nil
	case ast.OR:
		return lhs || rhs, nil
	case ast.EQ:
		return ast.Bool(lhs == rhs), nil
	case ast.NEQ:
		return ast.Bool(lhs != rhs), nil
	default:
		return nil, errorf(UndefinedOperator, "%s not defined for bool", op)
	}
}

func compare(op ast.Operator, c int) bool {
	switch op {
	case ast.EQ:
		return c == 0
	case ast.NEQ:
		return c != 0
	case ast.LT:
		return c < 0
	case ast.LTEQ:
		return c <= 0
	case ast.GT:
		return c > 0
	case ast.GTEQ:
		return c >= 0
	default:
		panic("unreachable")
	}
}
