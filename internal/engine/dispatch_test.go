package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectIsMemoized(t *testing.T) {
	resetSelection()
	defer resetSelection()

	first := Select()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Select())
	}
}

func TestSelectConcurrentFirstCallersAgree(t *testing.T) {
	resetSelection()
	defer resetSelection()

	const n = 32
	results := make([]Backend, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = Select()
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		require.Equal(t, results[0], results[i])
	}
}

func TestSelectRespectsUseChorbaFallback(t *testing.T) {
	caps := ProbeCapabilities()
	if caps.CLMUL128 || caps.VCLMUL256 || caps.VCLMUL512 {
		t.Skip("machine has carryless-multiply hardware; fallback choice is not exercised by Select")
	}

	old := UseChorbaFallback
	defer func() { UseChorbaFallback = old }()

	UseChorbaFallback = true
	resetSelection()
	require.Equal(t, BackendChorba, Select())

	UseChorbaFallback = false
	resetSelection()
	require.Equal(t, BackendScalar, Select())

	resetSelection()
}
