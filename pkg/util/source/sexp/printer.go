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
package sexp

import "strings"

// Printer lays out S-Expressions so that (where possible) no line exceeds a
// given width.  A list which does not fit on the current line is split so that
// its head and first argument remain on the opening line, whilst every
// remaining argument starts a new line indented beneath the head:
//
//	(+ (* x 2)
//	  (- y 1))
type Printer struct {
	// Maximum desired width
	width uint
	// Number of spaces per indentation level
	indent uint
}

// NewPrinter constructs a printer which aims to fit its output within a given
// width.
func NewPrinter(width uint) *Printer {
	return &Printer{width, 2}
}

// Print an S-Expression, returning the (possibly multi-line) result.  There is
// no trailing newline.
func (p *Printer) Print(sexp SExp) string {
	var builder strings.Builder
	//
	p.print(sexp, 0, &builder)
	//
	return builder.String()
}

// Print a term where the current line already holds column characters.
func (p *Printer) print(sexp SExp, column uint, builder *strings.Builder) {
	var (
		flat = sexp.String(true)
		list = sexp.AsList()
	)
	// Does it fit?
	if list == nil || list.Len() < 3 || column+uint(len(flat)) <= p.width {
		builder.WriteString(flat)
		return
	}
	// Opening line holds head and first argument
	head := list.Get(0).String(true)
	//
	builder.WriteString("(")
	builder.WriteString(head)
	builder.WriteString(" ")
	p.print(list.Get(1), column+uint(len(head))+2, builder)
	// Remaining arguments go on their own lines
	for _, arg := range list.Elements[2:] {
		builder.WriteString("\n")
		builder.WriteString(strings.Repeat(" ", int(column+p.indent)))
		p.print(arg, column+p.indent, builder)
	}
	//
	builder.WriteString(")")
}
