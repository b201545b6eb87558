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
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/util/source"
	"github.com/consensys/go-reassoc/pkg/util/source/sexp"
)

// Parser translates S-Expressions into expression trees.  Every operator is
// written in prefix form, e.g. "(+ (* x 2) 1)".  Lists with more than two
// arguments associate to the left, so "(+ a b c)" is "(a + b) + c".  Integer
// literals take the default integer type unless a type is given explicitly
// (e.g. "5:i8", "0xff:u8"), the symbols "true" and "false" are boolean literals,
// and any other identifier is a variable.
type Parser struct {
	intType *ast.IntType
}

// NewParser constructs a parser where untyped integer literals are given a
// particular type.
func NewParser(intType *ast.IntType) *Parser {
	return &Parser{intType}
}

// ParseString parses a string containing exactly one expression.
func (p *Parser) ParseString(text string) (ast.Expr, error) {
	srcfile := source.NewSourceFile("<string>", []byte(text))
	exprs, _, errs := p.Parse(srcfile)
	//
	if len(errs) > 0 {
		return nil, &errs[0]
	} else if len(exprs) != 1 {
		return nil, fmt.Errorf("expected one expression, found %d", len(exprs))
	}
	//
	return exprs[0], nil
}

// Parse a source file into zero or more expressions, or produce one or more
// syntax errors.  The returned source map records the span of every expression
// node, so later errors (e.g. a rewrite changing the outcome of an expression)
// can be reported against the original text.
func (p *Parser) Parse(srcfile *source.File) ([]ast.Expr, *source.Map[ast.Expr], []source.SyntaxError) {
	var (
		exprs  []ast.Expr
		errors []source.SyntaxError
	)
	//
	terms, srcmap, err := sexp.ParseAll(srcfile)
	//
	if err != nil {
		return nil, nil, []source.SyntaxError{*err}
	}
	//
	translator := p.newTranslator(srcfile, srcmap)
	//
	for _, term := range terms {
		e, errs := translator.Translate(term)
		//
		if len(errs) > 0 {
			errors = append(errors, errs...)
		} else {
			exprs = append(exprs, e)
		}
	}
	//
	if len(errors) > 0 {
		return nil, nil, errors
	}
	//
	return exprs, translator.SourceMap(), nil
}

func (p *Parser) newTranslator(srcfile *source.File, srcmap *source.Map[sexp.SExp]) *sexp.Translator[ast.Expr] {
	t := sexp.NewTranslator[ast.Expr](srcfile, srcmap)
	//
	for _, op := range ast.Operators() {
		t.AddRecursiveListRule(op.String(), binaryRule(op))
	}
	//
	t.AddSymbolRule(booleanRule)
	t.AddSymbolRule(p.integerRule)
	t.AddSymbolRule(variableRule)
	//
	return t
}

func binaryRule(op ast.Operator) sexp.RecursiveRule[ast.Expr] {
	return func(_ string, args []ast.Expr) (ast.Expr, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("%s requires at least two operands", op)
		}
		//
		e := args[0]
		//
		for _, arg := range args[1:] {
			e = ast.NewBinary(op, e, arg)
		}
		//
		return e, nil
	}
}

func booleanRule(symbol string) (ast.Expr, bool, error) {
	switch symbol {
	case "true":
		return ast.NewLiteral(ast.Bool(true)), true, nil
	case "false":
		return ast.NewLiteral(ast.Bool(false)), true, nil
	default:
		return nil, false, nil
	}
}

func (p *Parser) integerRule(symbol string) (ast.Expr, bool, error) {
	var (
		number, suffix, typed = strings.Cut(symbol, ":")
		value                 big.Int
		typ                   = p.intType
	)
	// Literals must start with a digit (possibly after a minus sign).
	if digits := strings.TrimPrefix(number, "-"); digits == "" || !unicode.IsDigit(rune(digits[0])) {
		return nil, false, nil
	} else if _, ok := value.SetString(number, 0); !ok {
		return nil, true, fmt.Errorf("invalid integer literal \"%s\"", number)
	}
	//
	if typed {
		t, err := ast.ParseType(suffix)
		if err != nil {
			return nil, true, err
		}
		//
		it, ok := t.(*ast.IntType)
		if !ok {
			return nil, true, errors.New("integer literal requires integer type")
		}
		//
		typ = it
	}
	//
	if !typ.Contains(&value) {
		return nil, true, fmt.Errorf("literal %s out of range for %s", number, typ)
	}
	//
	return ast.NewLiteral(ast.NewInt(typ, &value)), true, nil
}

func variableRule(symbol string) (ast.Expr, bool, error) {
	for i, r := range symbol {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return nil, false, nil
		}
	}
	//
	return ast.NewVar(symbol), true, nil
}
