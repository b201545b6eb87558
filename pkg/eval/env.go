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
package eval

import (
	"sort"

	"github.com/benbjohnson/immutable"
	"github.com/consensys/go-reassoc/pkg/ast"
)

// Env binds variable names to values for the purposes of evaluation.  An
// environment is persistent: binding a variable returns a new environment and
// leaves the original untouched, so environments can be shared freely (e.g.
// when enumerating many assignments which differ in only one variable).
type Env struct {
	bindings *immutable.Map[string, ast.Value]
}

// NewEnv constructs an empty environment.
func NewEnv() Env {
	return Env{immutable.NewMap[string, ast.Value](nil)}
}

// Bind returns a new environment which extends this environment with a binding
// for the given variable.  Any existing binding for that variable is replaced.
func (p Env) Bind(name string, value ast.Value) Env {
	return Env{p.bindings.Set(name, value)}
}

// Lookup returns the value bound to a given variable, if any.
func (p Env) Lookup(name string) (ast.Value, bool) {
	return p.bindings.Get(name)
}

// Len returns the number of variables bound in this environment.
func (p Env) Len() int {
	return p.bindings.Len()
}

// Names returns the (sorted) names of all variables bound in this environment.
func (p Env) Names() []string {
	var (
		names []string
		iter  = p.bindings.Iterator()
	)
	//
	for !iter.Done() {
		name, _, _ := iter.Next()
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}
