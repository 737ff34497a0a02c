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
	"github.com/yokoyolk/valida/pkg/util/field"
)

// Domain identifies the subset of rows over which a constraint must vanish.
type Domain uint

const (
	// AllRows indicates a constraint applying to every row.
	AllRows Domain = iota
	// FirstRow indicates a constraint applying to the first row only.
	FirstRow
	// Transition indicates a constraint applying to every non-final two-row
	// window.
	Transition
	// LastRow indicates a constraint applying to the last row only.
	LastRow
)

func (d Domain) String() string {
	switch d {
	case AllRows:
		return "all"
	case FirstRow:
		return "first"
	case Transition:
		return "transition"
	case LastRow:
		return "last"
	}
	//
	return "???"
}

// Constraint pairs a symbolic expression required to vanish with the domain
// on which it must do so and a handle for diagnostics.
type Constraint[F field.Element[F]] struct {
	// Handle uniquely identifying this constraint within its chip.
	Handle string
	// Domain over which the expression must vanish.
	Domain Domain
	// Expr required to vanish.
	Expr Expr[F]
}

// Active determines whether this constraint applies at row k of a trace of a
// given height.
func (p *Constraint[F]) Active(k uint, height uint) bool {
	switch p.Domain {
	case FirstRow:
		return k == 0
	case Transition:
		return k+1 < height
	case LastRow:
		return k+1 == height
	default:
		return true
	}
}

// ConstraintBuilder collects the symbolic constraints asserted during an
// evaluation pass.  It satisfies the builder interface of pkg/machine over
// Expr[F], with trace accesses becoming leaf nodes rather than values.
type ConstraintBuilder[F field.Element[F]] struct {
	mainWidth   uint
	permWidth   uint
	constraints []Constraint[F]
}

// NewConstraintBuilder constructs an empty builder for a chip whose main and
// auxiliary traces have the given widths.
func NewConstraintBuilder[F field.Element[F]](mainWidth uint, permWidth uint) *ConstraintBuilder[F] {
	return &ConstraintBuilder[F]{mainWidth: mainWidth, permWidth: permWidth}
}

// Constraints returns the constraints collected so far.
func (p *ConstraintBuilder[F]) Constraints() []Constraint[F] {
	return p.constraints
}

// Main returns the main-trace row at a given offset, as access leaves.
func (p *ConstraintBuilder[F]) Main(offset int) []Expr[F] {
	row := make([]Expr[F], p.mainWidth)
	for i := range row {
		row[i] = NewMainAccess[F](uint(i), offset)
	}
	//
	return row
}

// Permutation returns the auxiliary-trace row at a given offset, as access
// leaves.
func (p *ConstraintBuilder[F]) Permutation(offset int) []Expr[F] {
	row := make([]Expr[F], p.permWidth)
	for i := range row {
		row[i] = NewPermAccess[F](uint(i), offset)
	}
	//
	return row
}

// Randomness returns the three interaction challenges, as challenge leaves.
func (p *ConstraintBuilder[F]) Randomness() [3]Expr[F] {
	return [3]Expr[F]{NewChallenge[F](0), NewChallenge[F](1), NewChallenge[F](2)}
}

// CumulativeSum returns the public cumulative sum, as a public-input leaf.
func (p *ConstraintBuilder[F]) CumulativeSum() Expr[F] {
	return NewPublicInput[F]()
}

// AssertZero requires an expression to vanish on every row.
func (p *ConstraintBuilder[F]) AssertZero(e Expr[F], handle string) {
	p.constraints = append(p.constraints, Constraint[F]{handle, AllRows, e})
}

// AssertZeroFirstRow requires an expression to vanish on the first row only.
func (p *ConstraintBuilder[F]) AssertZeroFirstRow(e Expr[F], handle string) {
	p.constraints = append(p.constraints, Constraint[F]{handle, FirstRow, e})
}

// AssertZeroTransition requires an expression to vanish on every non-final
// two-row window.
func (p *ConstraintBuilder[F]) AssertZeroTransition(e Expr[F], handle string) {
	p.constraints = append(p.constraints, Constraint[F]{handle, Transition, e})
}

// AssertZeroLastRow requires an expression to vanish on the last row only.
func (p *ConstraintBuilder[F]) AssertZeroLastRow(e Expr[F], handle string) {
	p.constraints = append(p.constraints, Constraint[F]{handle, LastRow, e})
}
