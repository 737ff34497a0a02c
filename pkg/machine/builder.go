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
package machine

import (
	"github.com/yokoyolk/valida/pkg/util/field"
)

// Builder exposes a two-row window of main and auxiliary trace, the
// randomness channel, and the public cumulative sum to constraint
// evaluation.  Values are expressed in E, which may be a concrete extension
// field (execution-time trace checking) or a symbolic expression type
// (polynomial constraint construction).  The evaluation algorithm is
// identical either way, being phrased purely in ring operations and
// zero-assertions.
type Builder[F field.Element[F], E field.Extension[F, E]] interface {
	// Main returns the main-trace row at a given offset from the current row
	// (0 = current, 1 = next), lifted into E.
	Main(offset int) []E
	// Permutation returns the auxiliary-trace row at a given offset.
	Permutation(offset int) []E
	// Randomness returns the three interaction challenges.
	Randomness() [3]E
	// CumulativeSum returns the declared machine-wide total which the
	// running sum is anchored to on the final row.
	CumulativeSum() E
	// AssertZero requires an expression to vanish on every row.
	AssertZero(e E, handle string)
	// AssertZeroFirstRow requires an expression to vanish on the first row
	// only.
	AssertZeroFirstRow(e E, handle string)
	// AssertZeroTransition requires an expression to vanish on every
	// non-final row window.
	AssertZeroTransition(e E, handle string)
	// AssertZeroLastRow requires an expression to vanish on the last row
	// only.
	AssertZeroLastRow(e E, handle string)
}
