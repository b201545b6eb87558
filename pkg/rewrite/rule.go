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
package rewrite

import (
	"github.com/consensys/go-reassoc/pkg/ast"
	log "github.com/sirupsen/logrus"
)

// Reoptimizer re-runs the full rule catalogue over a (strictly smaller)
// subtree, returning the (possibly unchanged) result.  Rules use this after a
// rewrite juxtaposes two previously separated unknown operands.
type Reoptimizer func(ast.Expr) ast.Expr

// Rule represents a single rewrite rule.  Applying a rule either returns an
// equivalent (and simpler) tree, or returns exactly the given node.  Rules
// never modify their input.
type Rule interface {
	// Name returns a short identifier for this rule, used for reporting.
	Name() string
	// Apply this rule to a given node.
	Apply(node ast.Expr, reopt Reoptimizer) ast.Expr
}

// Rules returns the catalogue of rewrite rules, using a given evaluator to fold
// constants.
func Rules(evaluator Evaluator) []Rule {
	return []Rule{
		NewFoldBracketedConstants(evaluator),
		NewAbsorbUnknown(),
		NewArithmeticRule(evaluator),
	}
}

// Identity is a reoptimizer which leaves its argument unchanged.  This is
// useful for applying rules in isolation.
func Identity(e ast.Expr) ast.Expr {
	return e
}

func abandon(rule Rule, node ast.Expr, err error) ast.Expr {
	log.Debugf("%s: abandoned rewrite of %s (%s)", rule.Name(), node, err)
	//
	return node
}
