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
	"github.com/consensys/go-reassoc/pkg/optimizer"
	"github.com/xyproto/env/v2"
)

// Config holds the defaults for command-line flags.  These can be overridden
// through the environment, which is useful when the tool is driven from build
// scripts.
type Config struct {
	// Type given to untyped integer literals ($REASSOC_INT_TYPE).
	IntType string
	// Enable debug logging ($REASSOC_VERBOSE).
	Verbose bool
	// Bound on rewrites applied at a single node ($REASSOC_MAX_ITERATIONS).
	MaxIterations uint
}

// LoadConfig reads the configuration defaults from the environment.
func LoadConfig() Config {
	return Config{
		IntType:       env.Str("REASSOC_INT_TYPE", "i32"),
		Verbose:       env.Bool("REASSOC_VERBOSE"),
		MaxIterations: uint(max(1, env.Int("REASSOC_MAX_ITERATIONS", optimizer.DefaultMaxIterations))),
	}
}
