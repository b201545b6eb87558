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
package syntax

import (
	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/util/source/sexp"
)

// Lisp converts an expression into an S-Expression, such that parsing the
// result yields an identical expression.  Integer literals of the default type
// are written without a type annotation.
func Lisp(e ast.Expr, intType *ast.IntType) sexp.SExp {
	switch e := e.(type) {
	case *ast.Literal:
		if v, ok := e.Value.(*ast.Int); ok && !v.IntType().Equals(intType) {
			return sexp.NewSymbol(v.TypedString())
		}
		//
		return sexp.NewSymbol(e.Value.String())
	case *ast.Var:
		return sexp.NewSymbol(e.Name)
	case *ast.BinaryOp:
		return sexp.NewList([]sexp.SExp{
			sexp.NewSymbol(e.Operator.String()),
			Lisp(e.Left, intType),
			Lisp(e.Right, intType),
		})
	default:
		panic("unreachable")
	}
}
