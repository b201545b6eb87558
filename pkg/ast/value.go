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
	"math/big"
)

// Value represents a fully evaluated constant, such as an integer or a boolean.
// Values are immutable: operations over them always construct new values.
type Value interface {
	fmt.Stringer
	// Type returns the type of this value.
	Type() Type
	// Equals checks whether two values are identical (including their types).
	Equals(Value) bool
}

// Int represents an integer value of a given integer type.
type Int struct {
	typ   *IntType
	value big.Int
}

// NewInt constructs a new integer value of the given type.  This does not check
// that the value is within bounds of the type, since this is the
// responsibility of the evaluator.
func NewInt(typ *IntType, value *big.Int) *Int {
	var val Int
	//
	val.typ = typ
	val.value.Set(value)
	//
	return &val
}

// NewInt64 constructs a new integer value from a machine integer.
func NewInt64(typ *IntType, value int64) *Int {
	return NewInt(typ, big.NewInt(value))
}

// IntType returns the integer type of this value.
func (p *Int) IntType() *IntType {
	return p.typ
}

// Type implementation for Value interface.
func (p *Int) Type() Type {
	return p.typ
}

// BigInt returns a copy of the underlying integer.
func (p *Int) BigInt() *big.Int {
	return new(big.Int).Set(&p.value)
}

// Sign returns -1, 0 or 1 depending on whether this value is negative, zero or
// positive.
func (p *Int) Sign() int {
	return p.value.Sign()
}

// CmpAbs compares the magnitudes of two integer values, returning -1, 0 or 1.
func (p *Int) CmpAbs(o *Int) int {
	return p.value.CmpAbs(&o.value)
}

// Equals implementation for Value interface.
func (p *Int) Equals(v Value) bool {
	if v, ok := v.(*Int); ok {
		return p.typ.Equals(v.typ) && p.value.Cmp(&v.value) == 0
	}
	//
	return false
}

func (p *Int) String() string {
	return p.value.String()
}

// TypedString returns a string representation of this value which includes its
// type (e.g. "5:i8").
func (p *Int) TypedString() string {
	return fmt.Sprintf("%s:%s", p.value.String(), p.typ.String())
}

// Bool represents a boolean value.
type Bool bool

// Type implementation for Value interface.
func (p Bool) Type() Type {
	return BOOL
}

// Equals implementation for Value interface.
func (p Bool) Equals(v Value) bool {
	if v, ok := v.(Bool); ok {
		return p == v
	}
	//
	return false
}

func (p Bool) String() string {
	if p {
		return "true"
	}
	//
	return "false"
}
