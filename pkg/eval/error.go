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

import "fmt"

const (
	// TypeMismatch indicates an operator was applied to operands of differing
	// (or otherwise incompatible) types.
	TypeMismatch Kind = iota
	// UndefinedOperator indicates an operator was applied to operands for which
	// it has no definition (e.g. "&&" over integers).
	UndefinedOperator
	// UnboundVariable indicates a variable was accessed for which the
	// environment provides no value.
	UnboundVariable
	// DivisionByZero indicates a division or remainder by zero.
	DivisionByZero
	// Overflow indicates an arithmetic result fell outside the range of its
	// type (or a shift amount fell outside the width of its type).
	Overflow
)

// Kind classifies the various ways in which evaluation can fail.
type Kind uint8

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case UndefinedOperator:
		return "undefined operator"
	case UnboundVariable:
		return "unbound variable"
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "overflow"
	default:
		panic("unreachable")
	}
}

// Error is returned when an expression cannot be evaluated.  Some errors are
// traps (i.e. runtime failures of a well-typed program), whilst others signal
// that the expression was not well-formed in the first place.
type Error struct {
	kind Kind
	msg  string
}

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{kind, fmt.Sprintf(format, args...)}
}

// Kind returns the kind of this error.
func (p *Error) Kind() Kind {
	return p.kind
}

// IsTrap determines whether this error corresponds to a runtime trap of a
// well-typed program, such as an overflow or division by zero.
func (p *Error) IsTrap() bool {
	return p.kind == DivisionByZero || p.kind == Overflow
}

// Error implements the error interface.
func (p *Error) Error() string {
	return fmt.Sprintf("%s: %s", p.kind.String(), p.msg)
}
