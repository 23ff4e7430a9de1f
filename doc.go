// Package coreutils is the root of a POSIX cksum CRC-32 implementation:
// table-driven scalar, wide-block, and carryless-multiply folding backends
// (internal/engine), dispatched at runtime from a CPU capability probe,
// wrapped by a stream driver (pkg/cksum) and a cksum(1)-compatible CLI
// (cmd/cksum).
package coreutils
