// Package matrix_test contains unit tests for construction and accessors of Matrix.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewValid verifies that a well-formed shape is accepted and stored verbatim.
func TestNewValid(t *testing.T) {
	m, err := matrix.New(2, 3, []int{1, 2, 3, 4, 5, 6}) // 2x3 over 1..6
	require.NoError(t, err)

	require.Equal(t, uint32(2), m.Rows())                   // rows as given
	require.Equal(t, uint32(3), m.Cols())                   // cols as given
	require.Equal(t, 4, m.Elements()[3])                    // row-major order preserved
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Elements()) // full sequence preserved
	require.Equal(t, 6, m.Len())

	r, c := m.Shape()
	require.Equal(t, uint32(2), r)
	require.Equal(t, uint32(3), c)
}

// TestNewErrors covers the validation order: empty → both zero → count mismatch.
func TestNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols uint32
		data       []int
		want       error
		text       string
	}{
		{"empty with dims", 3, 3, []int{}, matrix.ErrEmptyVectorFound, "MatrixErr::EmptyVectorFound"},
		{"nil with dims", 2, 2, nil, matrix.ErrEmptyVectorFound, "MatrixErr::EmptyVectorFound"},
		{"empty and both zero", 0, 0, nil, matrix.ErrEmptyVectorFound, "MatrixErr::EmptyVectorFound"},
		{"both zero", 0, 0, []int{1, 2, 3, 4}, matrix.ErrBothNcolsAndNrowsCannotBeZero, "MatrixErr::BothNcolsAndNrowsCannotBeZero"},
		{"too few", 3, 3, []int{1, 2, 3, 4}, matrix.ErrNotEnoughDataInVector, "MatrixErr::NotEnoughDataInVector"},
		{"too many", 1, 2, []int{1, 2, 3}, matrix.ErrNotEnoughDataInVector, "MatrixErr::NotEnoughDataInVector"},
		{"zero rows", 0, 5, []int{1, 2, 3, 4, 5}, matrix.ErrNotEnoughDataInVector, "MatrixErr::NotEnoughDataInVector"},
		{"zero cols", 5, 0, []int{1}, matrix.ErrNotEnoughDataInVector, "MatrixErr::NotEnoughDataInVector"},
		{"product would wrap in 32 bits", 1 << 16, 1 << 16, []int{1}, matrix.ErrNotEnoughDataInVector, "MatrixErr::NotEnoughDataInVector"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.New(tc.rows, tc.cols, tc.data)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
			require.EqualError(t, err, tc.text) // returned unwrapped

			var reason matrix.MatrixErr
			require.True(t, errors.As(err, &reason))
			require.Equal(t, tc.want, error(reason))
		})
	}
}

// TestNewFloat checks the constructor with a floating-point element type.
func TestNewFloat(t *testing.T) {
	m, err := matrix.New(1, 2, []float64{0.5, -1.25})
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1.25}, m.Elements())
}

// TestNewOwnsData ensures later writes to the input slice never reach the matrix.
func TestNewOwnsData(t *testing.T) {
	data := []uint8{1, 2, 3, 4}
	m, err := matrix.New(2, 2, data)
	require.NoError(t, err)

	data[0] = 99                                        // mutate caller's slice
	require.Equal(t, []uint8{1, 2, 3, 4}, m.Elements()) // matrix unchanged
}

// TestElementsReadOnly ensures callers cannot mutate storage through Elements or Row.
func TestElementsReadOnly(t *testing.T) {
	m, err := matrix.New(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	got := m.Elements()
	got[0] = 42
	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 42

	require.Equal(t, []int{1, 2, 3, 4}, m.Elements()) // both writes discarded
	require.Equal(t, m.Elements(), m.Elements())      // idempotent
}

// TestAtRow validates indexed access and bounds handling.
func TestAtRow(t *testing.T) {
	m, err := matrix.New(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	v, err = m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = m.At(2, 0) // row out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Matrix.At(2,0): matrix: index out of range")

	_, err = m.At(0, 3) // column out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAll checks row-major iteration and early termination.
func TestAll(t *testing.T) {
	m, err := matrix.New(2, 2, []int{10, 20, 30, 40})
	require.NoError(t, err)

	var idx, vals []int
	for k, v := range m.All() {
		idx = append(idx, k)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2, 3}, idx)
	require.Equal(t, []int{10, 20, 30, 40}, vals)

	var seen int
	for range m.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

// TestEqual compares shape and content.
func TestEqual(t *testing.T) {
	a, err := matrix.New(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := matrix.New(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	c, err := matrix.New(1, 4, []int{1, 2, 3, 4})
	require.NoError(t, err)
	d, err := matrix.New(2, 2, []int{1, 2, 3, 5})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c)) // same data, different shape
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(nil))

	var n *matrix.Matrix[int]
	require.True(t, n.Equal(nil))
}

// TestFromRows covers the row-slice constructor.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, uint32(2), m.Rows())
	require.Equal(t, uint32(3), m.Cols())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Elements())

	_, err = matrix.FromRows([][]int{{1, 2}, {3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNotEnoughDataInVector)
	require.EqualError(t, err, "FromRows: row 1: MatrixErr::NotEnoughDataInVector")

	_, err = matrix.FromRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrEmptyVectorFound)

	_, err = matrix.FromRows([][]int{{}, {}})
	require.ErrorIs(t, err, matrix.ErrEmptyVectorFound)
}

// TestMul checks the unsigned multiply helper, including wrap-around.
func TestMul(t *testing.T) {
	require.Equal(t, uint32(6), matrix.Mul(2, 3))
	require.Equal(t, uint32(8), matrix.Mul(2, 4))
	require.Equal(t, uint32(0), matrix.Mul(1<<16, 1<<16)) // 2^32 wraps to 0
}
