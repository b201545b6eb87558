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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/optimizer"
	"github.com/consensys/go-reassoc/pkg/syntax"
	"github.com/consensys/go-reassoc/pkg/util/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errSyntax = errors.New("syntax error(s) encountered")

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array flag, or panic if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Determine the type given to untyped integer literals.
func getIntType(cmd *cobra.Command) *ast.IntType {
	name := GetString(cmd, "int-type")
	typ, err := ast.ParseType(name)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	} else if it, ok := typ.(*ast.IntType); ok {
		return it
	}
	//
	fmt.Printf("invalid integer type \"%s\"\n", name)
	os.Exit(2)
	// unreachable
	return nil
}

// Construct an optimizer configured according to the given command.
func newOptimizer(cmd *cobra.Command) *optimizer.Optimizer {
	return optimizer.Default().WithMaxIterations(GetUint(cmd, "max-iterations"))
}

// Parse all expressions in the given source files.  Syntax errors are printed as
// they are found, in which case errSyntax is returned.
func parseFiles(out io.Writer, parser *syntax.Parser, filenames ...string) ([]ast.Expr, sourceMaps, error) {
	var (
		exprs   []ast.Expr
		srcmaps sourceMaps
		fails   bool
	)
	//
	srcfiles, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, nil, err
	}
	//
	for i := range srcfiles {
		es, srcmap, errs := parser.Parse(&srcfiles[i])
		//
		for _, e := range errs {
			printSyntaxError(out, &e)
		}
		//
		if srcmap != nil {
			srcmaps = append(srcmaps, srcmap)
		}
		//
		fails = fails || len(errs) > 0
		exprs = append(exprs, es...)
	}
	//
	if fails {
		return nil, nil, errSyntax
	}
	//
	return exprs, srcmaps, nil
}

// Parse all expressions in the given source files, or exit.
func readExpressions(cmd *cobra.Command, filenames ...string) ([]ast.Expr, sourceMaps) {
	exprs, srcmaps, err := parseFiles(os.Stdout, syntax.NewParser(getIntType(cmd)), filenames...)
	//
	if errors.Is(err, errSyntax) {
		os.Exit(4)
	} else if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return exprs, srcmaps
}

// sourceMaps locates expressions parsed from one or more source files.
type sourceMaps []*source.Map[ast.Expr]

// Error constructs an error for a given expression against the span from which
// it was parsed, or returns nil if the expression was not parsed from any of
// these files.
func (p sourceMaps) Error(e ast.Expr, msg string) *source.SyntaxError {
	for _, srcmap := range p {
		if srcmap.Has(e) {
			srcfile := srcmap.Source()
			return srcfile.SyntaxError(srcmap.Get(e), msg)
		}
	}
	//
	return nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight (in red, when writing to a terminal)
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(out, "\033[31m%s\033[0m\n", strings.Repeat("^", length))
	} else {
		fmt.Fprintln(out, strings.Repeat("^", length))
	}
}
