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

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/optimizer"
	"github.com/consensys/go-reassoc/pkg/syntax"
	"github.com/consensys/go-reassoc/pkg/util"
	"github.com/consensys/go-reassoc/pkg/util/source/sexp"
	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rewriteCmd represents the rewrite command
var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] file1.lisp file2.lisp ...",
	Short: "Rewrite the expressions in one or more source files.",
	Long: `Parse every expression in the given source files, apply the rewrite rules
	bottom-up until no rule fires, and print the results one per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := rewriteConfig{
			intType:       getIntType(cmd),
			maxIterations: GetUint(cmd, "max-iterations"),
			lisp:          GetFlag(cmd, "lisp"),
			width:         GetUint(cmd, "width"),
			dump:          GetFlag(cmd, "dump"),
			stats:         GetFlag(cmd, "stats"),
		}
		//
		if !GetFlag(cmd, "watch") {
			if err := rewriteFiles(os.Stdout, config, args...); errors.Is(err, errSyntax) {
				os.Exit(4)
			} else if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			return
		}
		// Watch mode: syntax errors are reported but never fatal.
		onChange := func() {
			if err := rewriteFiles(os.Stdout, config, args...); err != nil && !errors.Is(err, errSyntax) {
				log.Error(err)
			}
		}
		//
		onChange()
		//
		if err := watchFiles(args, onChange); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

type rewriteConfig struct {
	intType *ast.IntType
	// Bound on rewrites at any single node.
	maxIterations uint
	// Print results as s-expressions rather than infix.
	lisp bool
	// Desired width when printing s-expressions.
	width uint
	// Dump the internal structure of each result.
	dump bool
	// Report how often each rule fired.
	stats bool
}

// Rewrite every expression in the given files, writing the results to out.
func rewriteFiles(out io.Writer, config rewriteConfig, filenames ...string) error {
	exprs, _, err := parseFiles(out, syntax.NewParser(config.intType), filenames...)
	if err != nil {
		return err
	}
	//
	var (
		opt   = optimizer.Default().WithMaxIterations(config.maxIterations)
		perf  = util.NewPerfStats()
		nodes uint
	)
	//
	for _, e := range exprs {
		nodes += e.Size()
		result := opt.ApplyRules(e)
		//
		if config.lisp {
			fmt.Fprintln(out, sexp.NewPrinter(config.width).Print(syntax.Lisp(result, config.intType)))
		} else {
			fmt.Fprintln(out, result.String())
		}
		//
		if config.dump {
			spew.Fdump(out, result)
		}
	}
	//
	perf.Log("Rewriting", nodes)
	//
	if config.stats {
		printStats(out, opt.Stats())
	}
	//
	return nil
}

func printStats(out io.Writer, stats optimizer.Stats) {
	fmt.Fprintf(out, "%d rewrite(s) applied", stats.Total())
	//
	if stats.Total() > 0 {
		fmt.Fprintf(out, ": %s", stats.String())
	}
	//
	fmt.Fprintln(out)
}

// Watch the given files, invoking onChange whenever any of them is written.
// This only returns if the watcher could not be established, or has been
// closed.
func watchFiles(filenames []string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	//
	defer watcher.Close()
	//
	for _, filename := range filenames {
		if err := watcher.Add(filename); err != nil {
			return err
		}
	}
	//
	log.Infof("watching %d file(s) for changes", len(filenames))
	//
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			//
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				log.Debugf("%s changed (%s)", ev.Name, ev.Op)
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			//
			log.Errorf("watch error: %v", err)
		}
	}
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().Bool("lisp", false, "print results as s-expressions")
	rewriteCmd.Flags().Uint("width", 80, "maximum line width when printing s-expressions")
	rewriteCmd.Flags().Bool("dump", false, "dump the structure of each result")
	rewriteCmd.Flags().Bool("stats", false, "report how many times each rule fired")
	rewriteCmd.Flags().BoolP("watch", "w", false, "rewrite again whenever an input file changes")
}
