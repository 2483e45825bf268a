// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestWithObserver verifies one event per construction, success and failure alike.
func TestWithObserver(t *testing.T) {
	var events []matrix.Event
	obs := matrix.WithObserver(func(ev matrix.Event) { events = append(events, ev) })

	_, err := matrix.New(2, 2, []int{1, 2, 3, 4}, obs)
	require.NoError(t, err)
	_, err = matrix.New(3, 3, []int{1}, obs)
	require.Error(t, err)

	require.Len(t, events, 2)
	require.Equal(t, matrix.Event{Rows: 2, Cols: 2, Len: 4}, events[0])
	require.Equal(t, matrix.Event{Rows: 3, Cols: 3, Len: 1, Err: matrix.ErrNotEnoughDataInVector}, events[1])
}

// TestWithObserverOrderAndNil checks ordering across observers and that nil is ignored.
func TestWithObserverOrderAndNil(t *testing.T) {
	var order []string
	_, err := matrix.FromRows([][]float32{{1, 2}},
		matrix.WithObserver(func(matrix.Event) { order = append(order, "first") }),
		matrix.WithObserver(nil),
		nil,
		matrix.WithObserver(func(matrix.Event) { order = append(order, "second") }),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, order)
}

// TestObserverDoesNotChangeResult ensures options never alter validation.
func TestObserverDoesNotChangeResult(t *testing.T) {
	plain, err1 := matrix.New(0, 0, []int{1})
	hooked, err2 := matrix.New(0, 0, []int{1}, matrix.WithObserver(func(matrix.Event) {}))

	require.Nil(t, plain)
	require.Nil(t, hooked)
	require.Equal(t, err1, err2)
}

// TestWithObserverRaggedRows ensures FromRows reports a rejected ragged input.
func TestWithObserverRaggedRows(t *testing.T) {
	var events []matrix.Event
	m, err := matrix.FromRows([][]int{{1, 2}, {3}},
		matrix.WithObserver(func(ev matrix.Event) { events = append(events, ev) }))
	require.Nil(t, m)
	require.ErrorIs(t, err, matrix.ErrNotEnoughDataInVector)

	require.Len(t, events, 1)                                           // exactly one event per call
	require.Equal(t, uint32(2), events[0].Rows)                         // rows as supplied
	require.Equal(t, uint32(2), events[0].Cols)                         // width of the first row
	require.Equal(t, 3, events[0].Len)                                  // every supplied element counted
	require.ErrorIs(t, events[0].Err, matrix.ErrNotEnoughDataInVector) // same reason as the result
	require.Equal(t, err, events[0].Err)
}
