// SPDX-License-Identifier: MIT

// Package matrix - construction of immutable row-major matrices.
//
// Purpose:
//   - Validate (nrows, ncols, data) once, in a fixed priority order, and never repair input.
//   - Take ownership of the elements so later writes by the caller cannot reach the matrix.
//   - Report each construction attempt to optional observers instead of printing.
//
// Complexity quicksheet:
//   - New: O(n) copy; FromRows: O(n) flatten + O(n) copy.
package matrix

import (
	"fmt"
	"math"
)

// ctxFromRows tags errors produced by FromRows.
const ctxFromRows = "FromRows"

// New builds an nrows×ncols matrix over data (row-major).
// MAIN DESCRIPTION:
//   - Public constructor with strict validation; the only way to obtain a non-zero Matrix.
//
// Implementation:
//   - Stage 1: ValidateShape (empty data → both dims zero → nrows*ncols != len(data)).
//   - Stage 2: copy data into private storage.
//   - Stage 3: notify observers with the outcome.
//
// Errors (returned unwrapped, first match wins):
//   - ErrEmptyVectorFound, ErrBothNcolsAndNrowsCannotBeZero, ErrNotEnoughDataInVector.
//
// Notes:
//   - A single zero dimension can never succeed: it needs len(data)==0, which the empty
//     check rejects first. Such input reports ErrNotEnoughDataInVector.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Numeric](nrows, ncols uint32, data []T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)

	if err := ValidateShape(nrows, ncols, len(data)); err != nil {
		o.notify(Event{Rows: nrows, Cols: ncols, Len: len(data), Err: err})
		return nil, err
	}

	// Own a private buffer; the caller keeps its slice.
	buf := make([]T, len(data))
	copy(buf, data)

	o.notify(Event{Rows: nrows, Cols: ncols, Len: len(data)})

	return &Matrix[T]{nrows: nrows, ncols: ncols, data: buf}, nil
}

// FromRows builds a matrix from a slice of equally sized rows.
// nrows = len(rows), ncols = len(rows[0]) (0 when rows is empty).
//
// Errors:
//   - "FromRows: row i: MatrixErr::NotEnoughDataInVector" for a ragged row i.
//   - "FromRows: shape exceeds uint32: MatrixErr::NotEnoughDataInVector" when a
//     dimension does not fit the stored uint32.
//   - otherwise exactly what New returns for the flattened data.
//
// Observers receive one Event on every path, including the rejections above.
func FromRows[T Numeric](rows [][]T, opts ...Option) (*Matrix[T], error) {
	var ncols int
	if len(rows) > 0 {
		ncols = len(rows[0])
	}
	var total int
	for _, row := range rows {
		total += len(row)
	}

	nrows, okRows := dimFromLen(len(rows))
	cols, okCols := dimFromLen(ncols)
	if !okRows || !okCols {
		err := matrixErrorf(ctxFromRows+": shape exceeds uint32", ErrNotEnoughDataInVector)
		gatherOptions(opts...).notify(Event{Rows: nrows, Cols: cols, Len: total, Err: err})
		return nil, err
	}

	flat := make([]T, 0, total)
	for i, row := range rows {
		if len(row) != ncols {
			err := matrixErrorf(fmt.Sprintf("%s: row %d", ctxFromRows, i), ErrNotEnoughDataInVector)
			gatherOptions(opts...).notify(Event{Rows: nrows, Cols: cols, Len: total, Err: err})
			return nil, err
		}
		flat = append(flat, row...)
	}

	return New(nrows, cols, flat, opts...)
}

// dimFromLen converts a slice length to a dimension, refusing values above MaxUint32.
func dimFromLen(n int) (uint32, bool) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, false
	}

	return uint32(n), true
}
