// Package cksum implements the POSIX cksum CRC-32 algorithm: a CRC-32 over
// the input bytes with generator polynomial 0x04C11DB7, the message length
// folded in as a minimal big-endian byte sequence, and the result
// bit-complemented.
//
// The arithmetic backends live in internal/engine; this package owns the
// stream driver (block reads, length tracking, the final fold and
// complement) and the public Sum/SumBytes entry points.
package cksum
