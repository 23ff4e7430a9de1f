package engine

import "sync"

// UseChorbaFallback controls whether Select falls back to the Chorba
// backend (true) or plain scalar slice-by-8 (false) on hardware with no
// carryless-multiply unit. This is meant as a build-time choice rather than
// a runtime probe; it is a package variable instead of a build tag so tests
// can exercise both fallbacks on the same machine.
var UseChorbaFallback = true

var (
	selectOnce sync.Once
	selected   Backend
)

// Select returns the process-wide backend choice, probing CPU capabilities
// on the first call and memoizing the result for every subsequent caller,
// including concurrent first callers.
func Select() Backend {
	selectOnce.Do(func() {
		selected = ProbeCapabilities().Best(UseChorbaFallback)
	})
	return selected
}

// resetSelection is a test hook: it is not part of the public contract and
// must only be used by tests in this package that need Select to probe and
// choose again (for example after changing UseChorbaFallback).
func resetSelection() {
	selectOnce = sync.Once{}
}
