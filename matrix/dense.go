// SPDX-License-Identifier: MIT

// Package matrix - read-only accessors over the row-major buffer.
//
// Purpose:
//   - Expose dimensions and elements without handing out the backing slice.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//
// Complexity quicksheet:
//   - Rows/Cols/Shape/Len: O(1); At: O(1); Row: O(c); Elements: O(r*c); Equal: O(r*c).
package matrix

import (
	"fmt"
	"iter"
	"slices"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// accessErrorf wraps an error with a uniform Matrix context and callsite indices.
func accessErrorf(method string, idx string, err error) error {
	return fmt.Errorf("Matrix.%s(%s): %w", method, idx, err)
}

// Rows returns the number of rows as given to New.
// Complexity: O(1).
func (m *Matrix[T]) Rows() uint32 {
	return m.nrows
}

// Cols returns the number of columns as given to New.
// Complexity: O(1).
func (m *Matrix[T]) Cols() uint32 {
	return m.ncols
}

// Shape returns (Rows(), Cols()).
func (m *Matrix[T]) Shape() (rows, cols uint32) {
	return m.nrows, m.ncols
}

// Len returns the number of stored elements (Rows()*Cols()).
func (m *Matrix[T]) Len() int {
	return len(m.data)
}

// Elements returns a copy of all elements in row-major order.
// Writing to the result never affects m.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Elements() []T {
	return slices.Clone(m.data)
}

// At retrieves the element at (i, j).
// Returns a wrapped ErrOutOfRange if i >= Rows() or j >= Cols().
// Complexity: O(1).
func (m *Matrix[T]) At(i, j uint32) (T, error) {
	var zero T
	if err := ValidateIndex(i, m.nrows); err != nil {
		return zero, accessErrorf(ctxAt, fmt.Sprintf("%d,%d", i, j), err)
	}
	if err := ValidateIndex(j, m.ncols); err != nil {
		return zero, accessErrorf(ctxAt, fmt.Sprintf("%d,%d", i, j), err)
	}

	// Flat offset: i*cols + j.
	return m.data[uint64(i)*uint64(m.ncols)+uint64(j)], nil
}

// Row returns a copy of row i.
// Returns a wrapped ErrOutOfRange if i >= Rows().
func (m *Matrix[T]) Row(i uint32) ([]T, error) {
	if err := ValidateIndex(i, m.nrows); err != nil {
		return nil, accessErrorf(ctxRow, fmt.Sprint(i), err)
	}
	start := uint64(i) * uint64(m.ncols)

	return slices.Clone(m.data[start : start+uint64(m.ncols)]), nil
}

// All yields (flat index, element) pairs in row-major order.
//
// AI-Hints: recover (i, j) as (k / Cols(), k % Cols()).
func (m *Matrix[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k, v := range m.data {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Equal reports whether m and other have the same shape and elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.nrows == other.nrows && m.ncols == other.ncols && slices.Equal(m.data, other.data)
}
