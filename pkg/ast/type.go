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
	"strconv"
	"strings"
)

// Type represents the type of a value in the source language.  This is either
// a fixed-width integer type, or the boolean type.
type Type interface {
	fmt.Stringer
	// Equals checks whether two types are identical.
	Equals(Type) bool
}

// ===================================================================
// Integer Types
// ===================================================================

// IntType represents a fixed-width integer type which is either signed (two's
// complement) or unsigned.  Arithmetic on such types is checked: any operation
// whose result falls outside the range of the type traps.
type IntType struct {
	width  uint
	signed bool
}

// NewIntType constructs an integer type of a given bitwidth and signedness.
func NewIntType(width uint, signed bool) *IntType {
	if width == 0 {
		panic("integer type requires non-zero width")
	}
	//
	return &IntType{width, signed}
}

// I8 is the signed 8-bit integer type.
var I8 = NewIntType(8, true)

// I32 is the signed 32-bit integer type.
var I32 = NewIntType(32, true)

// U8 is the unsigned 8-bit integer type.
var U8 = NewIntType(8, false)

// Width returns the number of bits used to represent values of this type.
func (p *IntType) Width() uint {
	return p.width
}

// Signed indicates whether or not this type is signed.
func (p *IntType) Signed() bool {
	return p.signed
}

// Bounds returns the smallest and largest values of this type (inclusive).
func (p *IntType) Bounds() (big.Int, big.Int) {
	var lower, upper big.Int
	//
	if p.signed {
		// [-2^(n-1), 2^(n-1)-1]
		upper.Lsh(big.NewInt(1), p.width-1)
		lower.Neg(&upper)
		upper.Sub(&upper, big.NewInt(1))
	} else {
		// [0, 2^n-1]
		upper.Lsh(big.NewInt(1), p.width)
		upper.Sub(&upper, big.NewInt(1))
	}
	//
	return lower, upper
}

// Contains checks whether a given integer lies within the range of this type.
func (p *IntType) Contains(val *big.Int) bool {
	lower, upper := p.Bounds()
	//
	return val.Cmp(&lower) >= 0 && val.Cmp(&upper) <= 0
}

// Equals implementation for Type interface.
func (p *IntType) Equals(t Type) bool {
	if t, ok := t.(*IntType); ok {
		return p.width == t.width && p.signed == t.signed
	}
	//
	return false
}

func (p *IntType) String() string {
	if p.signed {
		return fmt.Sprintf("i%d", p.width)
	}
	//
	return fmt.Sprintf("u%d", p.width)
}

// ===================================================================
// Boolean Type
// ===================================================================

// BoolType represents the type of boolean values.
type BoolType struct{}

// BOOL is the one and only boolean type.
var BOOL = &BoolType{}

// Equals implementation for Type interface.
func (p *BoolType) Equals(t Type) bool {
	_, ok := t.(*BoolType)
	return ok
}

func (p *BoolType) String() string {
	return "bool"
}

// ParseType parses a type name, such as "i8", "u256" or "bool".
func ParseType(name string) (Type, error) {
	if name == "bool" {
		return BOOL, nil
	} else if len(name) < 2 || (name[0] != 'i' && name[0] != 'u') {
		return nil, fmt.Errorf("unknown type \"%s\"", name)
	}
	// Determine bitwidth
	width, err := strconv.ParseUint(name[1:], 10, 16)
	//
	if err != nil || width == 0 || width > 256 || strings.HasPrefix(name[1:], "0") {
		return nil, fmt.Errorf("invalid integer type \"%s\"", name)
	}
	//
	return NewIntType(uint(width), name[0] == 'i'), nil
}
