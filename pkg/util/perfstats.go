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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats captures a snapshot of time and memory, so that the cost of some
// phase of work can later be reported.
type PerfStats struct {
	// Time when snapshot was taken
	startTime time.Time
	// Total bytes allocated when snapshot was taken
	startMem uint64
	// Number of gc events when snapshot was taken
	startGc uint32
}

// NewPerfStats takes a snapshot of the current time and memory usage.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log reports (at debug level) the time taken and memory allocated since this
// snapshot was taken, along with the number of expression nodes processed.
func (p *PerfStats) Log(prefix string, nodes uint) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	var (
		alloc = (m.TotalAlloc - p.startMem) / 1024
		gcs   = m.NumGC - p.startGc
		ms    = time.Since(p.startTime).Milliseconds()
	)
	//
	log.Debugf("%s %d node(s) took %dms using %vKb (%v GC events)", prefix, nodes, ms, alloc, gcs)
}
