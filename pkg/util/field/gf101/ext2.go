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
package gf101

import "fmt"

// nonResidue is a quadratic non-residue mod 101 (2^50 ≡ -1 mod 101), making
// u² - 2 irreducible over GF(101).
const nonResidue uint32 = 2

// Ext2 is an element a0 + a1·u of the quadratic extension GF(101²) =
// GF(101)[u]/(u² - 2).
type Ext2 struct {
	A0 Element
	A1 Element
}

// NewExt2 constructs the extension element a0 + a1·u.
func NewExt2(a0 uint32, a1 uint32) Ext2 {
	return Ext2{New(a0), New(a1)}
}

// Add x + y
func (x Ext2) Add(y Ext2) Ext2 {
	return Ext2{x.A0.Add(y.A0), x.A1.Add(y.A1)}
}

// Sub x - y
func (x Ext2) Sub(y Ext2) Ext2 {
	return Ext2{x.A0.Sub(y.A0), x.A1.Sub(y.A1)}
}

// Mul x * y, reducing u² to the non-residue.
func (x Ext2) Mul(y Ext2) Ext2 {
	var (
		nr = Element{nonResidue}
		a0 = x.A0.Mul(y.A0).Add(nr.Mul(x.A1).Mul(y.A1))
		a1 = x.A0.Mul(y.A1).Add(x.A1.Mul(y.A0))
	)
	//
	return Ext2{a0, a1}
}

// Inverse x⁻¹, or 0 if x = 0.  Uses the norm: (a0 + a1·u)⁻¹ =
// (a0 - a1·u) / (a0² - 2·a1²).
func (x Ext2) Inverse() Ext2 {
	var (
		nr   = Element{nonResidue}
		norm = x.A0.Mul(x.A0).Sub(nr.Mul(x.A1).Mul(x.A1))
		inv  = norm.Inverse()
	)
	//
	return Ext2{x.A0.Mul(inv), Element{}.Sub(x.A1).Mul(inv)}
}

// IsZero checks whether this is the additive identity.
func (x Ext2) IsZero() bool {
	return x.A0.IsZero() && x.A1.IsZero()
}

// IsOne checks whether this is the multiplicative identity.
func (x Ext2) IsOne() bool {
	return x.A0.IsOne() && x.A1.IsZero()
}

// SetUint64 constructs an element representing a given natural number.
func (x Ext2) SetUint64(val uint64) Ext2 {
	return Ext2{Element{}.SetUint64(val), Element{}}
}

// FromBase implementation for the field.Extension interface.
func (x Ext2) FromBase(y Element) Ext2 {
	return Ext2{y, Element{}}
}

func (x Ext2) String() string {
	return fmt.Sprintf("%s+%s·u", x.A0, x.A1)
}
