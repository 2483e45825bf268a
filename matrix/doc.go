// Package matrix provides a minimal generic, immutable, row-major matrix container.
//
// The matrix package provides:
//
//   - Matrix[T] over any integer or floating-point element type (Numeric).
//   - New / FromRows: strict constructors that reject bad shapes with a closed
//     set of MatrixErr reasons, checked in a fixed order.
//   - Read-only accessors (Rows, Cols, Elements, At, Row, All) that never expose
//     the backing storage.
//   - Text rendering via fmt.Stringer and fmt.Formatter:
//
//     m, _ := matrix.New(2, 3, []int{1, 2, 3, 4, 5, 6})
//     fmt.Print(m)
//     // | 1, 2, 3 |
//     // | 4, 5, 6 |
//
// There is no arithmetic between matrices. Matrices never change after
// construction, so they can be shared across goroutines without locking.
//
// See the examples in this package for usage patterns.
package matrix
