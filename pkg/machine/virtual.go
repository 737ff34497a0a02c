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

// ColumnWeight scales the value of a given trace column by a constant
// weight.
type ColumnWeight[F field.Element[F]] struct {
	// Column index within the (main) trace.
	Column uint
	// Weight applied to the column's value.
	Weight F
}

// VirtualColumn is an affine projection of one trace row: a weighted sum of
// named trace cells plus a constant.  It is never materialised as a stored
// column, and evaluates identically whether the row holds concrete field
// elements or symbolic expressions.
type VirtualColumn[F field.Element[F]] struct {
	// Terms of the weighted sum.
	Terms []ColumnWeight[F]
	// Constant offset of the projection.
	Constant F
}

// SingleColumn constructs a projection reading one column verbatim.
func SingleColumn[F field.Element[F]](column uint) VirtualColumn[F] {
	return VirtualColumn[F]{
		Terms:    []ColumnWeight[F]{{column, field.One[F]()}},
		Constant: field.Zero[F](),
	}
}

// ConstantColumn constructs a projection yielding a fixed value on every
// row.
func ConstantColumn[F field.Element[F]](val F) VirtualColumn[F] {
	return VirtualColumn[F]{Constant: val}
}

// Apply evaluates this projection over a concrete base-field row.
func (p VirtualColumn[F]) Apply(row []F) F {
	acc := p.Constant
	//
	for _, t := range p.Terms {
		acc = acc.Add(t.Weight.Mul(row[t.Column]))
	}
	//
	return acc
}

// applyLifted evaluates a projection over a row already lifted into an
// extension (or symbolic expression) domain, lifting the projection's
// weights and constant alongside.
func applyLifted[F field.Element[F], E field.Extension[F, E]](p VirtualColumn[F], row []E) E {
	acc := field.Lift[F, E](p.Constant)
	//
	for _, t := range p.Terms {
		acc = acc.Add(field.Lift[F, E](t.Weight).Mul(row[t.Column]))
	}
	//
	return acc
}
