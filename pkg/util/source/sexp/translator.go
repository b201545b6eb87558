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

import (
	"fmt"

	"github.com/consensys/go-reassoc/pkg/util/source"
)

// SymbolRule is responsible for converting a terminating expression (i.e. a
// symbol) into an expression of type T.  For example, a number or a variable.
// The boolean indicates whether the rule matched the symbol at all.
type SymbolRule[T comparable] func(string) (T, bool, error)

// RecursiveRule is responsible for converting a list whose elements have already
// been translated (by recursively reusing the enclosing translator) into an
// expression of type T.  The rule is given the head symbol of the list.
type RecursiveRule[T comparable] func(string, []T) (T, error)

// Translator is a generic mechanism for translating S-Expressions into a
// structured form.
type Translator[T comparable] struct {
	srcfile *source.File
	// Rules for translating lists, indexed by their head symbol.
	lists map[string]RecursiveRule[T]
	// Rules for translating symbols, tried in order.
	symbols []SymbolRule[T]
	// Maps S-Expressions to their spans in the original source file.
	oldSrcmap *source.Map[SExp]
	// Maps translated terms to their spans in the original source file.
	newSrcmap *source.Map[T]
}

// NewTranslator constructs a new Translator instance.
func NewTranslator[T comparable](srcfile *source.File, srcmap *source.Map[SExp]) *Translator[T] {
	return &Translator[T]{
		srcfile:   srcfile,
		lists:     make(map[string]RecursiveRule[T]),
		symbols:   nil,
		oldSrcmap: srcmap,
		newSrcmap: source.NewSourceMap[T](srcmap.Source()),
	}
}

// SourceMap returns the source map maintained for terms constructed by this
// translator.
func (p *Translator[T]) SourceMap() *source.Map[T] {
	return p.newSrcmap
}

// AddRecursiveListRule adds a rule for translating lists with a given head.
func (p *Translator[T]) AddRecursiveListRule(name string, rule RecursiveRule[T]) {
	p.lists[name] = rule
}

// AddSymbolRule adds a new symbol rule to this translator.
func (p *Translator[T]) AddSymbolRule(rule SymbolRule[T]) {
	p.symbols = append(p.symbols, rule)
}

// Translate a given S-Expression into the structured representation T.
func (p *Translator[T]) Translate(sexp SExp) (T, []source.SyntaxError) {
	var empty T
	//
	switch e := sexp.(type) {
	case *List:
		return p.translateList(e)
	case *Symbol:
		for _, rule := range p.symbols {
			node, ok, err := rule(e.Value)
			//
			if ok && err != nil {
				return empty, p.SyntaxErrors(sexp, err.Error())
			} else if ok {
				p.newSrcmap.Put(node, p.oldSrcmap.Get(sexp))
				return node, nil
			}
		}
		//
		return empty, p.SyntaxErrors(sexp, fmt.Sprintf("unknown symbol \"%s\"", e.Value))
	default:
		panic("unreachable")
	}
}

func (p *Translator[T]) translateList(l *List) (T, []source.SyntaxError) {
	var (
		empty  T
		errors []source.SyntaxError
		head   = l.Head()
		rule   = p.lists[head]
	)
	//
	if head == "" {
		return empty, p.SyntaxErrors(l, "invalid list")
	} else if rule == nil {
		return empty, p.SyntaxErrors(l, fmt.Sprintf("unknown list \"%s\"", head))
	}
	// Translate arguments
	args := make([]T, len(l.Elements)-1)
	//
	for i, s := range l.Elements[1:] {
		var errs []source.SyntaxError
		args[i], errs = p.Translate(s)
		errors = append(errors, errs...)
	}
	// Only construct the term when all arguments were translated.
	if len(errors) > 0 {
		return empty, errors
	}
	//
	term, err := rule(head, args)
	if err != nil {
		return empty, p.SyntaxErrors(l, err.Error())
	}
	//
	p.newSrcmap.Put(term, p.oldSrcmap.Get(l))
	//
	return term, nil
}

// SyntaxError constructs a suitable syntax error for a given S-Expression.
func (p *Translator[T]) SyntaxError(s SExp, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(p.oldSrcmap.Get(s), msg)
}

// SyntaxErrors constructs a syntax error for a given S-Expression, and places
// it into an array of size one.
func (p *Translator[T]) SyntaxErrors(s SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(s, msg)}
}
