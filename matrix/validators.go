// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction and index checks.
//  - Keep New/FromRows/At minimal by delegating guards here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - ValidateShape follows a fixed sequence (Data → Dims → Len); the first failure wins.

package matrix

// ValidateData rejects an empty element sequence.
//
// Inputs: n, the number of supplied elements.
// Returns ErrEmptyVectorFound if n == 0.
// Complexity: O(1).
func ValidateData(n int) error {
	if n == 0 {
		return ErrEmptyVectorFound
	}

	return nil
}

// ValidateDims rejects a shape where both dimensions are zero.
// A single zero dimension is left to ValidateLen.
// Complexity: O(1).
func ValidateDims(nrows, ncols uint32) error {
	if nrows == 0 && ncols == 0 {
		return ErrBothNcolsAndNrowsCannotBeZero
	}

	return nil
}

// ValidateLen ensures nrows*ncols equals n.
// The product is taken in 64 bits, so 65536×65536 cannot wrap to 0.
// Complexity: O(1).
func ValidateLen(nrows, ncols uint32, n int) error {
	if n < 0 || uint64(nrows)*uint64(ncols) != uint64(n) {
		return ErrNotEnoughDataInVector
	}

	return nil
}

// ValidateShape runs the full construction check in priority order:
// empty data, then both dimensions zero, then element count.
//
// AI-Hints: Use it to pre-check user input without allocating a Matrix.
func ValidateShape(nrows, ncols uint32, n int) error {
	if err := ValidateData(n); err != nil {
		return err
	}
	if err := ValidateDims(nrows, ncols); err != nil {
		return err
	}

	return ValidateLen(nrows, ncols, n)
}

// ValidateIndex ensures 0 <= i < bound.
// Returns ErrOutOfRange otherwise.
func ValidateIndex(i, bound uint32) error {
	if i >= bound {
		return ErrOutOfRange
	}

	return nil
}
