// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Layout (one line per row, whole block prefixed with a newline):
//
//	\n| a00, a01, a02 |\n| a10, a11, a12 |\n
//
// The flat buffer is cut into consecutive chunks of Cols() elements; the first
// element of a chunk opens the row, the last one closes it, interior ones get a
// separator. Rendering is a pure function of the stored state.
package matrix

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtLead     = "\n"
	_fmtRowOpen  = "| "
	_fmtRowClose = " |\n"
	_fmtSep      = ", "
)

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer  = (*Matrix[int])(nil)
	_ fmt.Formatter = (*Matrix[float64])(nil)
)

// String implements fmt.Stringer using %v for every element.
// Example: a 2×3 matrix over 1..6 renders as "\n| 1, 2, 3 |\n| 4, 5, 6 |\n".
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.render(func(v T) string { return fmt.Sprint(v) })
}

// Format implements fmt.Formatter.
//   - %s and a bare %v produce String().
//   - Any other verb, or %v with flags/width/precision, is applied to each element:
//     fmt.Sprintf("%.2f", m) renders every element with "%.2f".
func (m *Matrix[T]) Format(f fmt.State, verb rune) {
	if verb == 's' || (verb == 'v' && !hasModifiers(f)) {
		_, _ = io.WriteString(f, m.String())
		return
	}

	layout := fmt.FormatString(f, verb) // rebuild "%<flags><width>.<prec><verb>"
	_, _ = io.WriteString(f, m.render(func(v T) string { return fmt.Sprintf(layout, v) }))
}

// render builds the row-chunked representation with elem converting each element.
// Stage 1: emit the leading newline.
// Stage 2: walk rows as Cols()-sized chunks and decorate by position.
//
// A zero column count (zero-value Matrix) renders just the leading newline.
func (m *Matrix[T]) render(elem func(T) string) string {
	var sb strings.Builder
	sb.WriteString(_fmtLead)
	if m.ncols == 0 {
		return sb.String()
	}

	for row := range slices.Chunk(m.data, int(m.ncols)) {
		last := len(row) - 1
		for j, v := range row {
			if j == 0 {
				sb.WriteString(_fmtRowOpen)
			}
			sb.WriteString(elem(v))
			if j == last {
				sb.WriteString(_fmtRowClose)
			} else {
				sb.WriteString(_fmtSep)
			}
		}
	}

	return sb.String()
}

// hasModifiers reports whether the verb carries flags, width or precision.
func hasModifiers(f fmt.State) bool {
	if _, ok := f.Width(); ok {
		return true
	}
	if _, ok := f.Precision(); ok {
		return true
	}
	for _, flag := range "+-# 0" {
		if f.Flag(int(flag)) {
			return true
		}
	}

	return false
}
