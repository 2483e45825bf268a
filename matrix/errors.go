// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level errors used across the matrix package.
// Construction MUST return the MatrixErr sentinels unwrapped and tests MUST check
// them via errors.Is. No function in this package panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// MatrixErr is the closed set of reasons a matrix cannot be constructed.
// The zero value is not a valid reason; only the three constants below are.
type MatrixErr uint8

// ERROR PRIORITY (documented, enforced in tests):
// empty data -> both dimensions zero -> element count mismatch.
const (
	// EmptyVectorFound: the supplied element slice has zero length.
	EmptyVectorFound MatrixErr = iota + 1

	// BothNcolsAndNrowsCannotBeZero: nrows == 0 and ncols == 0 at the same time.
	BothNcolsAndNrowsCannotBeZero

	// NotEnoughDataInVector: nrows*ncols != len(data), too few or too many elements.
	NotEnoughDataInVector
)

// matrixErrNames maps each reason to its variant name (index == value).
var matrixErrNames = [...]string{
	EmptyVectorFound:              "EmptyVectorFound",
	BothNcolsAndNrowsCannotBeZero: "BothNcolsAndNrowsCannotBeZero",
	NotEnoughDataInVector:         "NotEnoughDataInVector",
}

// String renders the reason as "MatrixErr::<VariantName>".
// Unknown values render as "MatrixErr(<n>)" so they stay distinguishable in logs.
func (e MatrixErr) String() string {
	if e == 0 || int(e) >= len(matrixErrNames) {
		return fmt.Sprintf("MatrixErr(%d)", uint8(e))
	}

	return "MatrixErr::" + matrixErrNames[e]
}

// Error implements the error interface with the same text as String.
func (e MatrixErr) Error() string { return e.String() }

var (
	// ErrEmptyVectorFound is returned by New when data is empty, whatever the dimensions.
	ErrEmptyVectorFound error = EmptyVectorFound

	// ErrBothNcolsAndNrowsCannotBeZero is returned by New for a 0×0 shape with data present.
	ErrBothNcolsAndNrowsCannotBeZero error = BothNcolsAndNrowsCannotBeZero

	// ErrNotEnoughDataInVector is returned by New when nrows*ncols != len(data).
	ErrNotEnoughDataInVector error = NotEnoughDataInVector
)

// ErrOutOfRange indicates that a row or column index is outside valid bounds.
// Indexed accessors (At/Row) MUST return this, not panic.
var ErrOutOfRange = errors.New("matrix: index out of range")

// matrixErrorf wraps err with a call-site tag, preserving it for errors.Is/As.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
