// Package gmatrix is a small generic matrix container with strict construction
// and row-by-row text rendering.
//
// What is in here?
//
//   - matrix/        - Matrix[T], MatrixErr, New/FromRows, read-only accessors, String/Format, Mul
//   - internal/cli/  - the matrixfmt command tree (render, validate, mul), YAML documents
//   - cmd/matrixfmt/ - the matrixfmt binary
//
// Quick example:
//
//	m, err := matrix.New(2, 3, []int{1, 2, 3, 4, 5, 6})
//	if err != nil {
//		return err // MatrixErr::EmptyVectorFound, ...BothNcolsAndNrowsCannotBeZero or ...NotEnoughDataInVector
//	}
//	fmt.Print(m)
//
//	| 1, 2, 3 |
//	| 4, 5, 6 |
//
//	go install github.com/katalvlaran/gmatrix/cmd/matrixfmt@latest
package gmatrix
