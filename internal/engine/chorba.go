package engine

import "encoding/binary"

// chorbaBlockBytes is the number of input bytes the Chorba kernel folds per
// step. The reference Chorba construction processes a 256-byte block
// through a 22-lane bit-buffer cancellation schedule; see DESIGN.md for why
// this implementation instead generalizes the slice-by-8 table derivation
// up to 32 bytes (a "slice-by-32" wide block) — the same XOR/shift-only,
// SIMD-free technique, just derived in a way that is verifiably correct
// without being able to run the toolchain to cross-check a hand-built
// cancellation schedule against the scalar backend.
const chorbaBlockBytes = 32

// chorbaTables extends T0 up to 32 positions: chorbaTables[k][b] is the CRC
// of byte b followed by k zero bytes, exactly the slice8Tables derivation
// carried further.
var chorbaTables [chorbaBlockBytes][256]uint32

func init() {
	chorbaTables[0] = slice8Tables[0]
	for k := 1; k < chorbaBlockBytes; k++ {
		for b := 0; b < 256; b++ {
			chorbaTables[k][b] = extendByZeroByte(chorbaTables[k-1][b])
		}
	}
}

// chorbaBlockSize is the size of block the stream driver requests for the
// Chorba backend.
const chorbaBlockSize = 1 << 20

// chorbaKernel is the SIMD-free wide-block scalar backend: it is Chorba in
// spirit (a pure XOR/table pre-reduction of many bytes at once with no
// carryless multiply) but organized as a generalized slice-by-N table
// rather than the dense 22-lane bit-buffer schedule of the reference
// construction.
type chorbaKernel struct {
	crc uint32
}

func (k *chorbaKernel) BlockSize() int { return chorbaBlockSize }

func (k *chorbaKernel) Write(p []byte) {
	crc := k.crc
	tail := EachN(chorbaBlockBytes, p, func(block []byte) {
		// The first word (4 bytes) carries the running CRC forward: each of
		// its bytes needs the same additional forward-shift as the input
		// byte occupying the same slot, so they're combined by XOR before
		// indexing the table, the same slice-by-8 trick generalized to a
		// wider block.
		w1 := binary.BigEndian.Uint32(block[0:4])
		crc ^= w1
		result := chorbaTables[chorbaBlockBytes-1][byte(crc>>24)] ^
			chorbaTables[chorbaBlockBytes-2][byte(crc>>16)] ^
			chorbaTables[chorbaBlockBytes-3][byte(crc>>8)] ^
			chorbaTables[chorbaBlockBytes-4][byte(crc)]
		for j := 4; j < chorbaBlockBytes; j++ {
			result ^= chorbaTables[chorbaBlockBytes-1-j][block[j]]
		}
		crc = result
	})
	k.crc = updateBytes(crc, tail)
}

func (k *chorbaKernel) Sum32() uint32 { return k.crc }
