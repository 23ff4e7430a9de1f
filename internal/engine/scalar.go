package engine

import "encoding/binary"

// Kernel is the common shape every backend exposes to the stream driver: a
// block-size hint, an append-only Write of at most that many bytes (the
// driver only ever hands it fewer on the final, end-of-stream block), and a
// Sum32 that can be read at any point to inspect the running CRC.
//
// A Kernel never returns an error: the only error kinds anywhere in this
// module are transport errors (owned by the byte source) and length
// overflow (owned by the stream driver); the arithmetic itself cannot fail.
type Kernel interface {
	BlockSize() int
	Write(p []byte)
	Sum32() uint32
}

// NewKernel constructs the Kernel for the given backend, starting from crc.
func NewKernel(b Backend, crc uint32) Kernel {
	switch b {
	case BackendChorba:
		return &chorbaKernel{crc: crc}
	case BackendCLMUL128:
		return newFoldKernel(fold128Params, crc)
	case BackendCLMUL256:
		return newFoldKernel(fold256Params, crc)
	case BackendCLMUL512:
		return newFoldKernel(fold512Params, crc)
	default:
		return &scalarKernel{crc: crc}
	}
}

// scalarBlockSize is the 1 MiB block the stream driver requests for the
// scalar backend.
const scalarBlockSize = 1 << 20

// scalarKernel is the slice-by-8 reference implementation: it is the
// backend every other Kernel must agree with bit-for-bit.
type scalarKernel struct {
	crc uint32
}

func (k *scalarKernel) BlockSize() int { return scalarBlockSize }

func (k *scalarKernel) Write(p []byte) {
	crc := k.crc
	t := &slice8Tables
	tail := EachN(8, p, func(chunk []byte) {
		w1 := binary.BigEndian.Uint32(chunk[0:4])
		w2 := binary.BigEndian.Uint32(chunk[4:8])
		crc ^= w1
		crc = t[7][byte(crc>>24)] ^ t[6][byte(crc>>16)] ^ t[5][byte(crc>>8)] ^ t[4][byte(crc)] ^
			t[3][byte(w2>>24)] ^ t[2][byte(w2>>16)] ^ t[1][byte(w2>>8)] ^ t[0][byte(w2)]
	})
	k.crc = updateBytes(crc, tail)
}

func (k *scalarKernel) Sum32() uint32 { return k.crc }
