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
package trace

import (
	"slices"
	"strings"
)

// Matrix is a rectangular, row-major trace of values.  Main traces hold
// base-field elements; auxiliary (permutation) traces hold extension-field
// elements.
type Matrix[T any] struct {
	// Holds the trace values in row-major order.
	data []T
	// Number of values per row.
	width uint
}

// NewMatrix constructs a matrix over the given row-major data.  The data
// length must be a multiple of the width.
func NewMatrix[T any](data []T, width uint) *Matrix[T] {
	if width == 0 {
		panic("zero-width matrix")
	} else if uint(len(data))%width != 0 {
		panic("ragged matrix")
	}
	//
	return &Matrix[T]{data, width}
}

// NewBlankMatrix constructs a matrix of the given dimensions whose entries
// all hold the zero value of T.
func NewBlankMatrix[T any](width uint, height uint) *Matrix[T] {
	return NewMatrix(make([]T, width*height), width)
}

// Width returns the number of columns in this matrix.
func (p *Matrix[T]) Width() uint {
	return p.width
}

// Height returns the number of rows in this matrix.
func (p *Matrix[T]) Height() uint {
	return uint(len(p.data)) / p.width
}

// Row returns the ith row of this matrix as a slice aliasing the underlying
// data.
func (p *Matrix[T]) Row(row uint) []T {
	return p.data[row*p.width : (row+1)*p.width]
}

// Get the value held at a given column and row.
func (p *Matrix[T]) Get(col uint, row uint) T {
	return p.data[row*p.width+col]
}

// Set the value held at a given column and row.
func (p *Matrix[T]) Set(col uint, row uint, val T) {
	p.data[row*p.width+col] = val
}

// Data returns the underlying row-major data of this matrix.
func (p *Matrix[T]) Data() []T {
	return p.data
}

// Clone creates an identical copy of this matrix.
func (p *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{slices.Clone(p.data), p.width}
}

func (p *Matrix[T]) String() string {
	// Use string builder to try and make this vaguely efficient.
	var id strings.Builder
	//
	id.WriteString("{")
	//
	for row := uint(0); row < p.Height(); row++ {
		if row != 0 {
			id.WriteString(",")
		}
		//
		id.WriteString("[")
		//
		for col := uint(0); col < p.width; col++ {
			if col != 0 {
				id.WriteString(",")
			}
			//
			id.WriteString(toString(p.Get(col, row)))
		}
		//
		id.WriteString("]")
	}
	//
	id.WriteString("}")
	//
	return id.String()
}

func toString(val any) string {
	if s, ok := val.(interface{ String() string }); ok {
		return s.String()
	}
	// Non-printable entry
	return "?"
}
