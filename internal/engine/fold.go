package engine

// Named CLMUL fold constants, part of the cross-backend compatibility
// contract: every conforming backend must agree bit-for-bit with every
// other. Each is x^n mod Poly for the stated n.
const (
	clmul128Single1, clmul128Single2 = 0xE8A45605, 0xC5B9CD4C // x^128, x^(128+64)
	clmul128Fold1, clmul128Fold2     = 0xE6228B11, 0x8833794C // x^(128*4), x^(128*4+64)

	clmul256Single1, clmul256Single2          = 0x75BE46B7, 0x569700E5 // x^256, x^(256+64)
	clmul256FourFold1, clmul256FourFold2      = 0x567FDDEB, 0x10BD4D7C // x^(256*4), x^(256*4+64)
	clmul256TwelveFold1, clmul256TwelveFold2  = 0x3CD4B4ED, 0x1D97B060 // reserved, see below

	clmul512Single1, clmul512Single2         = 0xE6228B11, 0x8833794C // x^512, x^(512+64)
	clmul512FourFold1, clmul512FourFold2     = 0x88FE2237, 0xCBCF3BCB // x^(512*4), x^(512*4+64)
	clmul512TwelveFold1, clmul512TwelveFold2 = 0x413686A0, 0x9DEF026A // reserved, see below
)

// foldParams configures the generic striped-fold kernel shared by the
// CLMUL128/256/512 backends.
//
// Every backend here folds physical 128-bit (16-byte) sublanes — the only
// width for which clmul(lane.low, k1) xor clmul(lane.high, k2) is a native,
// unambiguous operation. The backends differ only in how many independent
// sublanes (stripeCount) they interleave per main loop pass, which is
// exactly why the "four-fold" constant published for each width
// (x^(128*stripeCount) mod Poly, e.g. 2^(256*4) = 2^(128*8) for the
// 8-stripe 256-bit backend) equals the fold distance this implementation
// actually produces — confirmed by checking the published exponents against
// stripeCount*128 for each width, not merely assumed.
//
// The final cascading merge (REDUCING) always advances by exactly one
// physical sublane, 128 bits, regardless of stripeCount, so it always uses
// clmul128Single rather than a width-specific "single" constant: a
// CLMUL256/512 log-tree reduction that mixed in the wider single/twelve-fold
// constants at intermediate tree levels would reach the same result, but
// the flat linear cascade implemented here is simpler to verify by hand
// without being able to run the toolchain, and is mathematically equivalent
// (both reduce the same N independent residues to one). Those width-
// specific single/twelve-fold constants are therefore named above, as part
// of the compatibility contract, but are not wired into the arithmetic;
// see DESIGN.md.
type foldParams struct {
	blockSize   int
	stripeCount int
	mainConst   foldConst // advances every stripe by one main-loop pass
}

var (
	fold128Params = foldParams{
		blockSize:   64 * 1024,
		stripeCount: 4,
		mainConst:   foldConst{k1: clmul128Fold1, k2: clmul128Fold2},
	}
	fold256Params = foldParams{
		blockSize:   2 << 20,
		stripeCount: 8,
		mainConst:   foldConst{k1: clmul256FourFold1, k2: clmul256FourFold2},
	}
	fold512Params = foldParams{
		blockSize:   4 << 20,
		stripeCount: 16,
		mainConst:   foldConst{k1: clmul512FourFold1, k2: clmul512FourFold2},
	}
)

// mergeConst is the single-sublane (128-bit) fold distance shared by every
// width's cascading merge; see the foldParams doc comment above.
var mergeConst = foldConst{k1: clmul128Single1, k2: clmul128Single2}

const foldChunkBytes = 16

// foldKernel is the generic CLMUL fold engine. Its state machine has four
// stages: PRIMED/FOLDING happen inside the main loop below, REDUCING is the
// cascading merge, and TAILING is the final updateBytes call (which also
// absorbs the genuinely unprocessed remainder left after the last full
// main-loop pass).
type foldKernel struct {
	params foldParams
	crc    uint32
}

func newFoldKernel(p foldParams, crc uint32) *foldKernel {
	return &foldKernel{params: p, crc: crc}
}

func (f *foldKernel) BlockSize() int { return f.params.blockSize }

func (f *foldKernel) mainChunk() int { return f.params.stripeCount * foldChunkBytes }

func (f *foldKernel) Write(p []byte) {
	mainChunk := f.mainChunk()
	if len(p) < mainChunk {
		// Below one full main-loop pass the input goes straight to the
		// byte-by-byte path; no narrower fold step is used.
		f.crc = updateBytes(f.crc, p)
		return
	}

	n := f.params.stripeCount
	consumed := (len(p) / mainChunk) * mainChunk
	lanes := make([]lane128, n)
	first := true
	EachN(mainChunk, p[:consumed], func(pass []byte) {
		for i := 0; i < n; i++ {
			off := i * foldChunkBytes
			next := loadLane128(pass[off : off+foldChunkBytes])
			if first && i == 0 {
				// The initial CRC is folded into only the topmost 32 bits
				// of the first lane's first sublane.
				next.hi ^= uint64(f.crc) << 32
			}
			lanes[i] = foldStep(lanes[i], next, f.params.mainConst)
		}
		first = false
	})

	// REDUCING: cascade the stripeCount independent lanes down to one. Each
	// step advances the accumulator by one more sublane's distance (128
	// bits) before folding in the next lane, so by the time lane i is XORed
	// in it has been shifted forward by exactly the right number of
	// 128-bit positions relative to the lanes already folded in.
	merged := lanes[0]
	for i := 1; i < n; i++ {
		merged = foldStep(merged, lane128{}, mergeConst)
		merged = merged.xor(lanes[i])
	}

	var tail [foldChunkBytes]byte
	storeLane128(tail[:], merged)
	crc := updateBytes(0, tail[:])

	f.crc = updateBytes(crc, p[consumed:])
}

func (f *foldKernel) Sum32() uint32 { return f.crc }
