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
	"fmt"

	"github.com/yokoyolk/valida/pkg/trace"
	"github.com/yokoyolk/valida/pkg/util/field"
)

// EvalPermutationConstraints asserts, over the builder's two-row window, the
// constraints governing a chip's auxiliary trace:
//
//   - reciprocal consistency, one per occurrence per row: the committed
//     column entry is the inverse of the re-derived random linear
//     combination, i.e. rlc·q - 1 vanishes;
//   - the running-sum transition on every non-final window: φ(next) - φ =
//     Σ_m ±mult_m·q_m, signed by send/receive;
//   - φ = 0 on the first row;
//   - φ equals the declared public cumulative sum on the last row, anchoring
//     the otherwise free-floating global running sum to a value every
//     verifier can check independently.
//
// The challenge tables are re-derived here through the same routine used by
// trace generation; the two sides must never diverge.
func EvalPermutationConstraints[F field.Element[F], E field.Extension[F, E], B Builder[F, E]](m *Machine[F, E],
	id uint, builder B) {
	//
	var (
		index      = m.Index(id)
		challenges = deriveChallenges(index, builder.Randomness())
		mainLocal  = builder.Main(0)
		permLocal  = builder.Permutation(0)
		permNext   = builder.Permutation(1)
		width      = index.Width()
		one        = field.One[E]()
		phiLocal   = permLocal[width-1]
		phiNext    = permNext[width-1]
	)
	//
	index.Verify()
	//
	lhs := phiNext.Sub(phiLocal)
	rhs := field.Zero[E]()
	//
	for n, ith := range index.Interactions() {
		// Re-derive the random linear combination for this occurrence.
		values := make([]E, len(ith.Interaction.Fields))
		for j, f := range ith.Interaction.Fields {
			values[j] = applyLifted(f, mainLocal)
		}
		//
		rlc := reduceFields(challenges.alpha(ith.Interaction.Argument), challenges.betas, values)
		// Reciprocal consistency
		builder.AssertZero(rlc.Mul(permLocal[ith.Column]).Sub(one),
			fmt.Sprintf("reciprocal/%s/%d", ith.Interaction.Argument, n))
		// Accumulate this occurrence's running-sum contribution.
		mult := applyLifted(ith.Interaction.Count, mainLocal)
		term := mult.Mul(permLocal[ith.Column])
		//
		if ith.Type.IsSend() {
			rhs = rhs.Add(term)
		} else {
			rhs = rhs.Sub(term)
		}
	}
	// Running sum constraints
	builder.AssertZeroTransition(lhs.Sub(rhs), "running-sum/transition")
	builder.AssertZeroFirstRow(phiLocal, "running-sum/first-row")
	builder.AssertZeroLastRow(phiLocal.Sub(builder.CumulativeSum()), "running-sum/last-row")
}

// Accepts checks every row window of a generated (main, auxiliary) trace
// pair against the permutation constraints, returning a structured failure
// for the first violated constraint, or nil.  This is the execution-time
// sanity check; a prover would instead evaluate the same constraints
// symbolically.
func Accepts[F field.Element[F], E field.Extension[F, E]](m *Machine[F, E], id uint,
	main *trace.Matrix[F], perm *trace.Matrix[E], randomness [3]E, cumulativeSum E) Failure {
	//
	for k := uint(0); k < main.Height(); k++ {
		builder := &rowBuilder[F, E]{
			chip:          m.Index(id).Chip(),
			main:          main,
			perm:          perm,
			row:           k,
			randomness:    randomness,
			cumulativeSum: cumulativeSum,
		}
		//
		EvalPermutationConstraints(m, id, builder)
		//
		if builder.failure != nil {
			return builder.failure
		}
	}
	//
	return nil
}

// rowBuilder is the concrete Builder used when checking generated traces: it
// lifts a two-row window into the extension field and records the first
// constraint violation.  Row windows wrap around the trace, as on the cyclic
// evaluation domain of the outer proof system; assertions scoped to first,
// transition or last rows are filtered accordingly.
type rowBuilder[F field.Element[F], E field.Extension[F, E]] struct {
	chip          string
	main          *trace.Matrix[F]
	perm          *trace.Matrix[E]
	row           uint
	randomness    [3]E
	cumulativeSum E
	// First recorded violation (if any).
	failure Failure
}

// Main returns the main-trace row at a given offset, lifted into E.
func (p *rowBuilder[F, E]) Main(offset int) []E {
	var (
		row    = p.main.Row(p.wrap(offset, p.main.Height()))
		lifted = make([]E, len(row))
	)
	//
	for i, v := range row {
		lifted[i] = field.Lift[F, E](v)
	}
	//
	return lifted
}

// Permutation returns the auxiliary-trace row at a given offset.
func (p *rowBuilder[F, E]) Permutation(offset int) []E {
	return p.perm.Row(p.wrap(offset, p.perm.Height()))
}

// Randomness returns the three interaction challenges.
func (p *rowBuilder[F, E]) Randomness() [3]E {
	return p.randomness
}

// CumulativeSum returns the declared machine-wide total.
func (p *rowBuilder[F, E]) CumulativeSum() E {
	return p.cumulativeSum
}

// AssertZero requires an expression to vanish on every row.
func (p *rowBuilder[F, E]) AssertZero(e E, handle string) {
	p.assertZero(e, handle)
}

// AssertZeroFirstRow requires an expression to vanish on the first row only.
func (p *rowBuilder[F, E]) AssertZeroFirstRow(e E, handle string) {
	if p.row == 0 {
		p.assertZero(e, handle)
	}
}

// AssertZeroTransition requires an expression to vanish on every non-final
// row window.
func (p *rowBuilder[F, E]) AssertZeroTransition(e E, handle string) {
	if p.row+1 < p.main.Height() {
		p.assertZero(e, handle)
	}
}

// AssertZeroLastRow requires an expression to vanish on the last row only.
func (p *rowBuilder[F, E]) AssertZeroLastRow(e E, handle string) {
	if p.row+1 == p.main.Height() {
		p.assertZero(e, handle)
	}
}

func (p *rowBuilder[F, E]) assertZero(e E, handle string) {
	if !e.IsZero() && p.failure == nil {
		p.failure = &ConstraintFailure{p.chip, handle, p.row}
	}
}

func (p *rowBuilder[F, E]) wrap(offset int, height uint) uint {
	return (p.row + uint(offset)) % height
}
