// Package engine implements the POSIX cksum CRC-32 computation core: the
// slice-by-8 constants table, a CPU capability probe, and the scalar,
// Chorba, and carryless-multiply ("fold") backends that all compute the
// identical unreflected CRC-32, together with the memoized backend selection
// (Select) and the length-fold and complement helpers.
//
// The stream driver (block reads, length tracking, and applying the final
// length-fold and complement) lives in the sibling pkg/cksum package, which
// is the only package outside of engine that needs to be imported.
package engine
