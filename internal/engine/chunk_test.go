package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEachNVisitsEveryFullChunkInOrder(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	var got [][]byte
	tail := EachN(3, b, func(chunk []byte) {
		got = append(got, append([]byte{}, chunk...))
	})
	require.Equal(t, [][]byte{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, got)
	require.Equal(t, []byte{9}, tail)
}

func TestEachNExactMultipleLeavesNoTail(t *testing.T) {
	b := make([]byte, 16)
	calls := 0
	tail := EachN(4, b, func(chunk []byte) { calls++ })
	require.Equal(t, 4, calls)
	require.Empty(t, tail)
}

func TestEachNShorterThanChunkCallsNothing(t *testing.T) {
	b := []byte{1, 2}
	called := false
	tail := EachN(8, b, func(chunk []byte) { called = true })
	require.False(t, called)
	require.Equal(t, b, tail)
}

func TestEachNEmptyInput(t *testing.T) {
	called := false
	tail := EachN(8, nil, func(chunk []byte) { called = true })
	require.False(t, called)
	require.Empty(t, tail)
}
