package cksum

import (
	"fmt"
	"io"
	"math"

	"github.com/samrussell/coreutils/internal/engine"
)

// Result is the outcome of summing a byte stream: the POSIX cksum value
// (data CRC, length folded in, bit-complemented) and the stream's total
// length in bytes.
type Result struct {
	CRC32  uint32
	Length uint64
}

// Sum reads r to completion and returns its POSIX cksum Result. It selects
// the process-wide backend via engine.Select on first use (see
// internal/engine's dispatcher) and reads in that backend's preferred block
// size.
//
// A nil r is a programmer error and returns ErrInvalidArgument. Any other
// read error is wrapped with "%w" so errors.Is/errors.As reach the
// underlying cause; a length that would overflow the 64-bit byte counter
// returns ErrLengthOverflow instead of a Result.
func Sum(r io.Reader) (Result, error) {
	if r == nil {
		return Result{}, ErrInvalidArgument
	}
	return sumWithBackend(r, engine.Select())
}

// sumWithBackend is Sum with an explicit backend choice, split out so tests
// (and benchmarks comparing backends) don't have to fight the memoized
// dispatcher.
func sumWithBackend(r io.Reader, backend engine.Backend) (Result, error) {
	k := engine.NewKernel(backend, 0)
	return sumFrom(r, k, 0)
}

// sumFrom drives the read loop from an arbitrary starting length. It is
// split out from sumWithBackend so tests can exercise the overflow branch
// by starting a few bytes short of the uint64 boundary instead of actually
// streaming exabytes through a real Reader.
func sumFrom(r io.Reader, k engine.Kernel, length uint64) (Result, error) {
	buf := make([]byte, k.BlockSize())

	for {
		n, err := r.Read(buf)
		if n > 0 {
			next, ok := addLength(length, n)
			if !ok {
				return Result{}, ErrLengthOverflow
			}
			length = next
			k.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("cksum: read: %w", err)
		}
	}

	return finish(k, length), nil
}

// addLength adds n to length, reporting ok=false instead of wrapping when
// the 64-bit byte counter would overflow: new := length+n wraps exactly
// when length > MaxUint64-n.
func addLength(length uint64, n int) (uint64, bool) {
	if length > math.MaxUint64-uint64(n) {
		return 0, false
	}
	return length + uint64(n), true
}

// SumBytes is Sum specialized to an in-memory buffer: there is no I/O to
// fail, so it returns only the Result.
func SumBytes(data []byte) Result {
	k := engine.NewKernel(engine.Select(), 0)
	k.Write(data)
	return finish(k, uint64(len(data)))
}

// finish applies the length fold and final complement, shared by both entry
// points above.
func finish(k engine.Kernel, length uint64) Result {
	crc := k.Sum32()
	crc = engine.UpdateBytes(crc, engine.AppendMinimalBigEndian(nil, length))
	crc = engine.Complement(crc)
	return Result{CRC32: crc, Length: length}
}
