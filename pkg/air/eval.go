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
package air

import (
	"fmt"

	"github.com/yokoyolk/valida/pkg/trace"
	"github.com/yokoyolk/valida/pkg/util/field"
)

// Window is the concrete evaluation environment for symbolic expressions: a
// main and auxiliary trace pair, the interaction challenges, and the
// declared public cumulative sum.  Row accesses wrap around the trace, as on
// the cyclic evaluation domain of the outer proof system.
type Window[F field.Element[F], E field.Extension[F, E]] struct {
	// Main trace over the base field.
	Main *trace.Matrix[F]
	// Auxiliary (permutation) trace over the extension field.
	Perm *trace.Matrix[E]
	// Randomness holds the three interaction challenges.
	Randomness [3]E
	// CumulativeSum declared for the machine-wide argument.
	CumulativeSum E
}

// EvalAt evaluates a symbolic expression at row k of this window.
func (p *Window[F, E]) EvalAt(e Expr[F], k uint) E {
	switch n := e.node.(type) {
	case *constant[F]:
		return field.Lift[F, E](n.value)
	case *mainAccess[F]:
		return field.Lift[F, E](p.Main.Get(n.column, wrapRow(k, n.shift, p.Main.Height())))
	case *permAccess[F]:
		return p.Perm.Get(n.column, wrapRow(k, n.shift, p.Perm.Height()))
	case *challengeAccess[F]:
		return p.Randomness[n.index]
	case *publicAccess[F]:
		return p.CumulativeSum
	case *add[F]:
		return p.EvalAt(n.left, k).Add(p.EvalAt(n.right, k))
	case *sub[F]:
		return p.EvalAt(n.left, k).Sub(p.EvalAt(n.right, k))
	case *mul[F]:
		return p.EvalAt(n.left, k).Mul(p.EvalAt(n.right, k))
	case *inv[F]:
		return p.EvalAt(n.arg, k).Inverse()
	default:
		panic(fmt.Sprintf("unknown expression %v", e))
	}
}

func wrapRow(k uint, shift int, height uint) uint {
	return (k + uint(shift)) % height
}
