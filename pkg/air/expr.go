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

// Package air provides symbolic expressions over a two-row trace window, the
// interaction challenges and the public cumulative sum.  Expr implements the
// extension-field interface by node construction, so the generic constraint
// evaluator of pkg/machine runs over expressions exactly as it runs over
// concrete field elements.  That is what guarantees the prover and verifier
// agree on the constraint system.
package air

import (
	"fmt"

	"github.com/yokoyolk/valida/pkg/util/field"
)

// Expr is a symbolic expression over the base field F.  The zero value is
// not a valid expression; leaves are built through the constructors below or
// through the field.Element operations.
type Expr[F field.Element[F]] struct {
	node node[F]
}

type node[F field.Element[F]] interface {
	isNode()
}

type (
	constant[F field.Element[F]] struct{ value F }
	// mainAccess reads a main-trace column at the current row, shifted up by
	// a given amount.
	mainAccess[F field.Element[F]] struct {
		column uint
		shift  int
	}
	// permAccess reads an auxiliary-trace column.
	permAccess[F field.Element[F]] struct {
		column uint
		shift  int
	}
	// challengeAccess reads one of the three interaction challenges.
	challengeAccess[F field.Element[F]] struct{ index uint }
	// publicAccess reads the declared public cumulative sum.
	publicAccess[F field.Element[F]] struct{}

	add[F field.Element[F]] struct{ left, right Expr[F] }
	sub[F field.Element[F]] struct{ left, right Expr[F] }
	mul[F field.Element[F]] struct{ left, right Expr[F] }
	inv[F field.Element[F]] struct{ arg Expr[F] }
)

func (*constant[F]) isNode()        {}
func (*mainAccess[F]) isNode()      {}
func (*permAccess[F]) isNode()      {}
func (*challengeAccess[F]) isNode() {}
func (*publicAccess[F]) isNode()    {}
func (*add[F]) isNode()             {}
func (*sub[F]) isNode()             {}
func (*mul[F]) isNode()             {}
func (*inv[F]) isNode()             {}

// NewConstant constructs an expression representing a given constant.
func NewConstant[F field.Element[F]](val F) Expr[F] {
	return Expr[F]{&constant[F]{val}}
}

// NewMainAccess constructs an expression reading a main-trace column, with
// shift 0 denoting the current row and shift 1 the next.
func NewMainAccess[F field.Element[F]](column uint, shift int) Expr[F] {
	return Expr[F]{&mainAccess[F]{column, shift}}
}

// NewPermAccess constructs an expression reading an auxiliary-trace column.
func NewPermAccess[F field.Element[F]](column uint, shift int) Expr[F] {
	return Expr[F]{&permAccess[F]{column, shift}}
}

// NewChallenge constructs an expression reading the ith interaction
// challenge.
func NewChallenge[F field.Element[F]](index uint) Expr[F] {
	return Expr[F]{&challengeAccess[F]{index}}
}

// NewPublicInput constructs an expression reading the public cumulative sum.
func NewPublicInput[F field.Element[F]]() Expr[F] {
	return Expr[F]{&publicAccess[F]{}}
}

// Add two expressions together, producing a third.
func (p Expr[F]) Add(q Expr[F]) Expr[F] {
	return Expr[F]{&add[F]{p, q}}
}

// Sub (subtract) one expression from another.
func (p Expr[F]) Sub(q Expr[F]) Expr[F] {
	return Expr[F]{&sub[F]{p, q}}
}

// Mul (multiply) two expressions together, producing a third.
func (p Expr[F]) Mul(q Expr[F]) Expr[F] {
	return Expr[F]{&mul[F]{p, q}}
}

// Inverse produces the (symbolic) multiplicative inverse of an expression.
func (p Expr[F]) Inverse() Expr[F] {
	return Expr[F]{&inv[F]{p}}
}

// IsZero checks whether this expression is the constant zero.  No
// simplification is performed.
func (p Expr[F]) IsZero() bool {
	c, ok := p.node.(*constant[F])
	//
	return ok && c.value.IsZero()
}

// IsOne checks whether this expression is the constant one.  No
// simplification is performed.
func (p Expr[F]) IsOne() bool {
	c, ok := p.node.(*constant[F])
	//
	return ok && c.value.IsOne()
}

// SetUint64 constructs a constant expression from a given natural number.
func (p Expr[F]) SetUint64(val uint64) Expr[F] {
	return NewConstant(field.Uint64[F](val))
}

// FromBase lifts a base-field value into a constant expression.
func (p Expr[F]) FromBase(val F) Expr[F] {
	return NewConstant(val)
}

func (p Expr[F]) String() string {
	switch n := p.node.(type) {
	case *constant[F]:
		return n.value.String()
	case *mainAccess[F]:
		return fmt.Sprintf("main[%d;%+d]", n.column, n.shift)
	case *permAccess[F]:
		return fmt.Sprintf("perm[%d;%+d]", n.column, n.shift)
	case *challengeAccess[F]:
		return fmt.Sprintf("challenge[%d]", n.index)
	case *publicAccess[F]:
		return "public"
	case *add[F]:
		return fmt.Sprintf("(+ %s %s)", n.left, n.right)
	case *sub[F]:
		return fmt.Sprintf("(- %s %s)", n.left, n.right)
	case *mul[F]:
		return fmt.Sprintf("(* %s %s)", n.left, n.right)
	case *inv[F]:
		return fmt.Sprintf("(inv %s)", n.arg)
	}
	//
	return "???"
}
