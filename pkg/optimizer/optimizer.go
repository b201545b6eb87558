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
package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/consensys/go-reassoc/pkg/ast"
	"github.com/consensys/go-reassoc/pkg/eval"
	"github.com/consensys/go-reassoc/pkg/rewrite"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxIterations bounds the number of rewrites applied at any single node.
// Every rule in the catalogue either shrinks the tree or moves a literal
// strictly closer to the root, so this is never reached in practice.
const DefaultMaxIterations = 64

// Optimizer applies an ordered catalogue of rewrite rules to an expression
// tree, bottom-up, until no rule applies.
type Optimizer struct {
	rules         []rewrite.Rule
	maxIterations uint
	stats         Stats
}

// New constructs an optimizer for a given set of rules, which are tried in the
// given order.
func New(rules ...rewrite.Rule) *Optimizer {
	return &Optimizer{rules, DefaultMaxIterations, make(Stats)}
}

// Default constructs an optimizer with constant folding followed by the full
// catalogue of algebraic rewrite rules.
func Default() *Optimizer {
	rules := []rewrite.Rule{NewConstantFold(eval.BinaryOperation)}
	//
	return New(append(rules, rewrite.Rules(eval.BinaryOperation)...)...)
}

// WithMaxIterations sets the maximum number of rewrites applied at any single
// node.  At least one rewrite is always permitted.
func (p *Optimizer) WithMaxIterations(n uint) *Optimizer {
	p.maxIterations = max(1, n)
	return p
}

// Stats returns the number of successful rewrites made by each rule so far.
func (p *Optimizer) Stats() Stats {
	return p.stats
}

// ApplyRules optimises a given tree, first optimising its children and then
// repeatedly applying the rules at the root until none applies.  The original
// tree is never modified.  This is also the reoptimizer handed to each rule.
func (p *Optimizer) ApplyRules(e ast.Expr) ast.Expr {
	if b, ok := e.(*ast.BinaryOp); ok {
		lhs := p.ApplyRules(b.Left)
		rhs := p.ApplyRules(b.Right)
		//
		if lhs != b.Left || rhs != b.Right {
			e = ast.NewBinary(b.Operator, lhs, rhs)
		}
	}
	//
	for i := uint(0); i < p.maxIterations; i++ {
		next, rule := p.applyOnce(e)
		//
		if rule == nil {
			return e
		}
		//
		log.Debugf("%s: %s => %s", rule.Name(), e, next)
		p.stats[rule.Name()]++
		e = next
	}
	//
	log.Warnf("rewriting of %s did not converge after %d iterations", e, p.maxIterations)
	//
	return e
}

// Apply the first rule which changes the given node, returning the result and
// the rule applied (or nil if no rule applied).
func (p *Optimizer) applyOnce(e ast.Expr) (ast.Expr, rewrite.Rule) {
	for _, rule := range p.rules {
		if next := rule.Apply(e, p.ApplyRules); next != e {
			return next, rule
		}
	}
	//
	return e, nil
}

// Stats records the number of successful rewrites made by each rule.
type Stats map[string]uint

// Total returns the total number of rewrites made across all rules.
func (p Stats) Total() uint {
	var total uint
	//
	for _, n := range p {
		total += n
	}
	//
	return total
}

func (p Stats) String() string {
	var (
		names   = make([]string, 0, len(p))
		builder strings.Builder
	)
	//
	for name := range p {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	for i, name := range names {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%s=%d", name, p[name]))
	}
	//
	return builder.String()
}
