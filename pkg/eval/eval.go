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
	"errors"
	"fmt"

	"github.com/consensys/go-reassoc/pkg/ast"
)

// Eval evaluates an expression tree under a given environment.  Both operands
// of every binary operation are evaluated (including for the logical
// connectives) from left to right, and the first error encountered is
// returned.
func Eval(e ast.Expr, env Env) (ast.Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Var:
		if val, ok := env.Lookup(e.Name); ok {
			return val, nil
		}
		//
		return nil, errorf(UnboundVariable, "%s", e.Name)
	case *ast.BinaryOp:
		lhs, err := Eval(e.Left, env)
		if err != nil {
			return nil, err
		}
		//
		rhs, err := Eval(e.Right, env)
		if err != nil {
			return nil, err
		}
		//
		return BinaryOperation(e.Operator, lhs, rhs)
	default:
		panic("unreachable")
	}
}

// Outcome captures the observable behaviour of evaluating an expression.  This
// is either a value, a trap or (for expressions which are not well-formed) some
// other error.
type Outcome struct {
	// Value produced (if evaluation succeeded).
	Value ast.Value
	// Error produced (if evaluation failed).
	Err error
}

// Observe evaluates an expression and records its outcome.
func Observe(e ast.Expr, env Env) Outcome {
	val, err := Eval(e, env)
	//
	return Outcome{val, err}
}

// Trapped checks whether this outcome is a trap.
func (p Outcome) Trapped() bool {
	var err *Error
	//
	return errors.As(p.Err, &err) && err.IsTrap()
}

// Equals checks whether two outcomes are observably the same.  Values must be
// identical, whilst traps are considered the same regardless of their cause,
// since a program cannot distinguish one trap from another.
func (p Outcome) Equals(o Outcome) bool {
	switch {
	case p.Err == nil && o.Err == nil:
		return p.Value.Equals(o.Value)
	case p.Trapped() && o.Trapped():
		return true
	case p.Err != nil && o.Err != nil:
		return !p.Trapped() && !o.Trapped()
	default:
		return false
	}
}

func (p Outcome) String() string {
	switch {
	case p.Err == nil:
		return p.Value.String()
	case p.Trapped():
		return fmt.Sprintf("trap (%s)", p.Err)
	default:
		return fmt.Sprintf("error (%s)", p.Err)
	}
}
