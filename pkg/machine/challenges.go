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

// rlcChallenges holds the challenge tables derived from the three
// interaction randomness values: one separating constant per local bus
// index, one per global bus index, and the beta powers folding an
// interaction's field list into a single element.
//
// This derivation is the single routine shared between permutation trace
// generation and constraint evaluation.  If the two sides ever derived these
// tables differently the argument would be unsound, so neither side is
// allowed its own copy.
type rlcChallenges[E field.Element[E]] struct {
	// alphasLocal[i] = r0^(i+1), covering local bus indices 1..maxLocal.
	alphasLocal []E
	// alphasGlobal[i] = r1^(i+1), covering global bus indices 1..maxGlobal.
	alphasGlobal []E
	// betas[j] = r2^(j+1), one per field-list position.
	betas []E
}

// deriveChallenges expands the three randomness values into the challenge
// tables sized by the given index.  A scope with no interactions yields an
// empty table rather than aborting.
func deriveChallenges[F field.Element[F], E field.Extension[F, E]](index *InteractionIndex[F],
	randomness [3]E) rlcChallenges[E] {
	//
	return rlcChallenges[E]{
		alphasLocal:  challengePowers(randomness[0], index.maxLocal),
		alphasGlobal: challengePowers(randomness[1], index.maxGlobal),
		betas:        challengePowers(randomness[2], index.maxFields),
	}
}

// alpha returns the separating constant for a given bus argument.  Argument
// indices are validated at machine construction, so the lookup cannot go out
// of bounds for a well-formed index.
func (p *rlcChallenges[E]) alpha(arg BusArgument) E {
	if arg.IsLocal() {
		return p.alphasLocal[arg.Index-1]
	}
	//
	return p.alphasGlobal[arg.Index-1]
}

// challengePowers derives the table (r¹, …, rⁿ).  The zeroth power is
// skipped so that a separating constant is never the multiplicative
// identity.
func challengePowers[E field.Element[E]](r E, n uint) []E {
	return field.Powers(r, n+1)[1:]
}

// reduceFields folds a separating constant and beta-weighted field values
// into one element: alpha + Σⱼ betaⱼ·vⱼ.
func reduceFields[E field.Element[E]](alpha E, betas []E, values []E) E {
	rlc := alpha
	//
	for j, v := range values {
		rlc = rlc.Add(betas[j].Mul(v))
	}
	//
	return rlc
}
