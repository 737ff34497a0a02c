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
	"runtime"
	"sync"

	"github.com/yokoyolk/valida/pkg/trace"
	"github.com/yokoyolk/valida/pkg/util"
	"github.com/yokoyolk/valida/pkg/util/field"
)

// GeneratePermutationTrace builds the auxiliary trace for the chip in a given
// slot: one reciprocal column per interaction occurrence, plus a trailing
// running-sum column.  This is called once per chip per proving session,
// after every chip's main trace has been generated, with randomness drawn
// after those traces were committed.
//
// Row: | q_1 | q_2 | ... | q_n | φ |
//   - q_m = 1 / (α_m + Σⱼ βʲ·f_{m,j})
//   - f_{m,j} is the jth field projection of the mth occurrence
//   - φ is the running sum, with φ of row 0 always zero
func GeneratePermutationTrace[F field.Element[F], E field.Extension[F, E]](m *Machine[F, E],
	id uint, main *trace.Matrix[F], randomness [3]E) *trace.Matrix[E] {
	//
	var (
		stats      = util.NewPerfStats()
		index      = m.Index(id)
		challenges = deriveChallenges(index, randomness)
		height     = main.Height()
		width      = index.Width()
		// Flat row-major buffer; the final column of every row stays zero
		// until the running sum is written, and passes through the batch
		// inversion unchanged.
		values = make([]E, height*width)
	)
	//
	index.Verify()
	// Compute the reciprocal inputs.  Every entry depends only on its own
	// main-trace row and the challenge tables, so rows are filled in
	// parallel.
	fillReciprocalInputs(index, &challenges, main, values)
	// One field inversion for the entire buffer.
	field.BatchInvert(values)
	//
	perm := trace.NewMatrix(values, width)
	// Accumulate the running sum.  This phase is strictly sequential across
	// rows: each φ depends on its predecessor.
	phi := field.Zero[E]()
	//
	for n := uint(0); n < height; n++ {
		var (
			mainRow = main.Row(n)
			permRow = perm.Row(n)
			next    = phi
		)
		//
		for _, ith := range index.Interactions() {
			mult := field.Lift[F, E](ith.Interaction.Count.Apply(mainRow))
			term := mult.Mul(permRow[ith.Column])
			//
			if ith.Type.IsSend() {
				next = next.Add(term)
			} else {
				next = next.Sub(term)
			}
		}
		// Row n holds the sum over all preceding rows; row 0 is therefore
		// always zero.
		permRow[width-1] = phi
		phi = next
	}
	//
	stats.Log("Generated permutation trace for chip " + index.Chip())
	//
	return perm
}

// CumulativeSum reads the running-sum column on the final row of an
// auxiliary trace.  This is the value anchored to the public input: the
// machine-wide total over all chips' cumulative sums is what a verifier
// checks independently.
func CumulativeSum[E any](perm *trace.Matrix[E]) E {
	return perm.Get(perm.Width()-1, perm.Height()-1)
}

func fillReciprocalInputs[F field.Element[F], E field.Extension[F, E]](index *InteractionIndex[F],
	challenges *rlcChallenges[E], main *trace.Matrix[F], values []E) {
	//
	var (
		height = main.Height()
		width  = index.Width()
		wg     sync.WaitGroup
	)
	//
	if height == 0 {
		return
	}
	// Split rows into contiguous chunks, one goroutine each.  Chunks write
	// disjoint slices of the buffer, so the result is identical to the
	// sequential evaluation.
	chunk := max(height/uint(runtime.NumCPU()), 1)
	//
	for lo := uint(0); lo < height; lo += chunk {
		hi := min(lo+chunk, height)
		//
		wg.Add(1)
		//
		go func(lo, hi uint) {
			defer wg.Done()
			//
			for k := lo; k < hi; k++ {
				row := main.Row(k)
				out := values[k*width : (k+1)*width]
				//
				for _, ith := range index.Interactions() {
					out[ith.Column] = reduceRow(row, &ith.Interaction, challenges)
				}
			}
		}(lo, hi)
	}
	//
	wg.Wait()
}

// reduceRow folds one interaction's field list over a concrete main-trace
// row into a single reciprocal input: α + Σⱼ βʲ·fⱼ(row).
func reduceRow[F field.Element[F], E field.Extension[F, E]](row []F, interaction *Interaction[F],
	challenges *rlcChallenges[E]) E {
	//
	rlc := challenges.alpha(interaction.Argument)
	//
	for j, f := range interaction.Fields {
		rlc = rlc.Add(challenges.betas[j].Mul(field.Lift[F, E](f.Apply(row))))
	}
	//
	return rlc
}
