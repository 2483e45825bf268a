// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the constructor, accessors and formatter.
// This file intentionally contains ONLY type declarations; errors and options live
// in dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Numeric is the capability constraint on matrix elements: every integer and
// floating-point kind. All of them support *, + and text conversion through fmt.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Matrix is an immutable nrows×ncols container of T stored in row-major order.
//   - nrows, ncols hold the dimensions exactly as given to New.
//   - data holds nrows*ncols elements (offset = i*ncols + j).
//
// The zero value is an empty 0×0 matrix that only renders; real instances come from New.
type Matrix[T Numeric] struct {
	nrows, ncols uint32 // dimensions, stored verbatim
	data         []T    // private row-major storage, len == nrows*ncols
}

// Event describes one construction attempt, delivered to an Observer.
type Event struct {
	Rows uint32 // requested number of rows
	Cols uint32 // requested number of columns
	Len  int    // number of supplied elements
	Err  error  // nil on success, otherwise matches a MatrixErr sentinel via errors.Is
}

// Observer receives construction events. It runs synchronously inside New and FromRows.
type Observer func(Event)
