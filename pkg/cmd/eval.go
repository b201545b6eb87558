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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/eval"
	"github.com/consensys/go-reassoc/pkg/optimizer"
	"github.com/consensys/go-reassoc/pkg/syntax"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [flags] file1.lisp file2.lisp ...",
	Short: "Evaluate expressions before and after rewriting.",
	Long: `Evaluate every expression in the given source files under a set of variable
	bindings, both before and after rewriting.  Any difference in the observed
	outcome (either a value or a trap) is reported as an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		intType := getIntType(cmd)
		env := parseBindings(syntax.NewParser(intType), GetStringArray(cmd, "bind"))
		exprs, srcmaps := readExpressions(cmd, args...)
		//
		log.Debugf("evaluating %d expression(s) under %d binding(s)", len(exprs), env.Len())
		//
		if evalExpressions(os.Stdout, newOptimizer(cmd), env, exprs, srcmaps) > 0 {
			os.Exit(3)
		}
	},
}

// Evaluate each expression before and after rewriting, writing both outcomes
// to out.  Any expression whose outcome is changed by rewriting is reported
// against its source, and the number of such expressions is returned.
func evalExpressions(out io.Writer, opt *optimizer.Optimizer, env eval.Env, exprs []ast.Expr,
	srcmaps sourceMaps) uint {
	var mismatches uint
	//
	for _, e := range exprs {
		rewritten := opt.ApplyRules(e)
		before := eval.Observe(e, env)
		after := eval.Observe(rewritten, env)
		//
		fmt.Fprintf(out, "%s => %s\n", before, e.String())
		//
		if rewritten.Equals(e) {
			continue
		}
		//
		fmt.Fprintf(out, "%s => %s\n", after, rewritten.String())
		//
		if !before.Equals(after) {
			msg := fmt.Sprintf("outcome changed by rewriting (%s vs %s)", before, after)
			//
			if err := srcmaps.Error(e, msg); err != nil {
				printSyntaxError(out, err)
			} else {
				log.Errorf("%s: %s", e.String(), msg)
			}
			//
			mismatches++
		}
	}
	//
	return mismatches
}

// Parse a set of bindings of the form "name=value", where each value is a
// literal in the usual syntax (e.g. "x=5:i8" or "b=true").
func parseBindings(parser *syntax.Parser, bindings []string) eval.Env {
	env := eval.NewEnv()
	//
	for _, binding := range bindings {
		name, text, ok := strings.Cut(binding, "=")
		if !ok || name == "" {
			fmt.Printf("invalid binding \"%s\" (expected name=value)\n", binding)
			os.Exit(2)
		}
		//
		e, err := parser.ParseString(text)
		if err != nil {
			fmt.Printf("invalid binding \"%s\" (%s)\n", binding, err)
			os.Exit(2)
		}
		//
		lit, ok := e.(*ast.Literal)
		if !ok {
			fmt.Printf("invalid binding \"%s\" (value is not a literal)\n", binding)
			os.Exit(2)
		}
		//
		env = env.Bind(name, lit.Value)
	}
	//
	return env
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayP("bind", "b", []string{}, "bind a variable to a value (e.g. x=5:i8)")
}
