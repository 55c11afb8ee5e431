package huffman

import (
	"testing"

	"github.com/binkstream/bink/internal/bitio"
)

func TestIdentityTreeRoundTrip(t *testing.T) {
	// vlc_num == 0 selects the identity permutation with no header data;
	// decoding through tree 0 (all codes length 4) must return the
	// original nibble fed into a matching encoder for that table.
	for nibble := 0; nibble < SymbolsPerTree; nibble++ {
		symBits, symLen := encodeSymbol(t, 0, uint16(nibble))
		// vlc_num = 0 (4 bits), then the tree-0 canonical code for nibble.
		bits := uint64(0) | uint64(symBits)<<4
		n := 4 + symLen
		buf := packBits64(bits, n)
		r := bitio.NewReader(buf)
		tr, err := ReadTreeHeader(r)
		if err != nil {
			t.Fatalf("ReadTreeHeader: %v", err)
		}
		got, err := tr.Decode(r)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != uint16(nibble) {
			t.Fatalf("nibble %d: got %d", nibble, got)
		}
	}
}

func TestBuildTableRoundTrip(t *testing.T) {
	for treeIdx := 0; treeIdx < NumTrees; treeIdx++ {
		for sym := 0; sym < SymbolsPerTree; sym++ {
			bits, n := canonicalCode(codeLengths[treeIdx][:], sym)
			buf := packBits(bits, n)
			r := bitio.NewReader(buf)
			peek, err := r.ShowBits(15)
			if err != nil {
				t.Fatalf("tree %d sym %d: ShowBits: %v", treeIdx, sym, err)
			}
			gotSym, consumed := fixedTables[treeIdx].Lookup(peek)
			if int(gotSym) != sym {
				t.Fatalf("tree %d sym %d: got symbol %d", treeIdx, sym, gotSym)
			}
			if consumed != codeLengths[treeIdx][sym] {
				t.Fatalf("tree %d sym %d: consumed %d bits, want %d", treeIdx, sym, consumed, codeLengths[treeIdx][sym])
			}
		}
	}
}

// --- test helpers: a minimal canonical-code encoder mirroring BuildTable's
// bit-reversed key assignment, used only to produce bitstreams the decoder
// under test can consume. ---

func canonicalCode(lengths []int, symbol int) (key uint32, length int) {
	// Re-run the same sorted-by-length assignment BuildTable uses and
	// recover the bit-reversed key assigned to `symbol`.
	var count [MaxCodeLength + 1]int
	for _, cl := range lengths {
		count[cl]++
	}
	var offset [MaxCodeLength + 2]int
	for l := 1; l <= MaxCodeLength; l++ {
		offset[l+1] = offset[l] + count[l]
	}
	sorted := make([]int, len(lengths))
	cursor := offset
	for sym, cl := range lengths {
		if cl == 0 {
			continue
		}
		sorted[cursor[cl]] = sym
		cursor[cl]++
	}

	count = [MaxCodeLength + 1]int{}
	for _, cl := range lengths {
		count[cl]++
	}
	var key32 uint32
	idx := 0
	for l := 1; l <= MaxCodeLength; l++ {
		for c := 0; c < count[l]; c++ {
			if sorted[idx] == symbol {
				return key32, l
			}
			idx++
			key32 = nextKey(key32, l)
		}
	}
	return 0, 0
}

func encodeSymbol(t *testing.T, treeIdx, symbol uint16) (uint32, int) {
	t.Helper()
	key, length := canonicalCode(codeLengths[treeIdx][:], int(symbol))
	return key, length
}

// packBits writes the low n bits of bits into a little-endian byte buffer
// long enough for ShowBits(15) to always have a full window, LSB-first
// (bit i of bits is the i-th bit read from the stream).
func packBits(bits uint32, n int) []byte {
	return packBits64(uint64(bits), n)
}

func packBits64(bits uint64, n int) []byte {
	buf := make([]byte, 8)
	for i := 0; i < n; i++ {
		if bits&(1<<uint(i)) != 0 {
			buf[i/8] |= 1 << uint(i%8)
		}
	}
	return buf
}
