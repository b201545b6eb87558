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
	"fmt"
	"strings"
)

const (
	// ADD represents integer addition.
	ADD Operator = iota
	// SUB represents integer subtraction.
	SUB
	// MUL represents integer multiplication.
	MUL
	// DIV represents (truncating) integer division.
	DIV
	// REM represents the integer remainder.
	REM
	// SHL represents a left shift.
	SHL
	// SHR represents an arithmetic (signed) or logical (unsigned) right shift.
	SHR
	// BITAND represents bitwise conjunction.
	BITAND
	// BITOR represents bitwise disjunction.
	BITOR
	// BITXOR represents bitwise exclusive-or.
	BITXOR
	// AND represents logical conjunction.
	AND
	// OR represents logical disjunction.
	OR
	// EQ represents an equality comparison.
	EQ
	// NEQ represents a non-equality comparison.
	NEQ
	// LT represents a less-than comparison.
	LT
	// LTEQ represents a less-than-or-equals comparison.
	LTEQ
	// GT represents a greater-than comparison.
	GT
	// GTEQ represents a greater-than-or-equals comparison.
	GTEQ
	// NumOperators is one past the largest operator ordinal.  Tables indexed by
	// operator are sized using this.
	NumOperators
)

// Operator identifies one of the fixed set of binary operators.
type Operator uint8

var operatorSymbols = [NumOperators]string{
	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	DIV:    "/",
	REM:    "%",
	SHL:    "<<",
	SHR:    ">>",
	BITAND: "&",
	BITOR:  "|",
	BITXOR: "^",
	AND:    "&&",
	OR:     "||",
	EQ:     "==",
	NEQ:    "!=",
	LT:     "<",
	LTEQ:   "<=",
	GT:     ">",
	GTEQ:   ">=",
}

// Operators returns every operator in ordinal order.
func Operators() []Operator {
	ops := make([]Operator, NumOperators)
	//
	for i := range ops {
		ops[i] = Operator(i)
	}
	//
	return ops
}

// ParseOperator converts a symbol (e.g. "+" or "&&") into the operator it
// denotes.
func ParseOperator(symbol string) (Operator, error) {
	for i, s := range operatorSymbols {
		if s == symbol {
			return Operator(i), nil
		}
	}
	//
	return 0, fmt.Errorf("unknown operator \"%s\"", symbol)
}

// IsComparison determines whether this operator compares two values, thus
// producing a boolean.
func (op Operator) IsComparison() bool {
	return op >= EQ && op <= GTEQ
}

func (op Operator) String() string {
	if op < NumOperators {
		return operatorSymbols[op]
	}
	//
	return fmt.Sprintf("op%d", uint8(op))
}

// OperatorSet is a set of operators, represented as a bitset indexed by
// operator ordinal.
type OperatorSet uint32

// NewOperatorSet constructs a set containing the given operators.
func NewOperatorSet(ops ...Operator) OperatorSet {
	var set OperatorSet
	//
	for _, op := range ops {
		set |= 1 << op
	}
	//
	return set
}

// Contains checks whether a given operator is a member of this set.
func (p OperatorSet) Contains(op Operator) bool {
	return op < NumOperators && p&(1<<op) != 0
}

func (p OperatorSet) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for _, op := range Operators() {
		if p.Contains(op) {
			if builder.Len() > 1 {
				builder.WriteString(",")
			}
			//
			builder.WriteString(op.String())
		}
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
