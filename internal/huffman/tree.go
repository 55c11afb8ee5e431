package huffman

import "github.com/binkstream/bink/internal/bitio"

// Tree is one bundle's Huffman decoder: a fixed table selected by vlc_num
// plus a 16-entry symbol permutation applied after table lookup.
type Tree struct {
	table Table
	syms  [SymbolsPerTree]uint16
}

// identityPerm is the natural-order permutation used when vlc_num == 0.
var identityPerm = func() [SymbolsPerTree]uint16 {
	var p [SymbolsPerTree]uint16
	for i := range p {
		p[i] = uint16(i)
	}
	return p
}()

// ReadTreeHeader parses a per-plane tree header from r: a
// 4-bit vlc_num selects one of the sixteen fixed tables, followed by
// either an explicit symbol list or a bit-controlled merge-built
// permutation.
func ReadTreeHeader(r *bitio.Reader) (*Tree, error) {
	vlcNum, err := r.GetBits(4)
	if err != nil {
		return nil, err
	}
	t := &Tree{table: fixedTables[vlcNum]}

	if vlcNum == 0 {
		t.syms = identityPerm
		return t, nil
	}

	explicit, err := r.GetBit()
	if err != nil {
		return nil, err
	}
	if explicit != 0 {
		if err := readExplicitPerm(r, t); err != nil {
			return nil, err
		}
		return t, nil
	}
	if err := readMergePerm(r, t); err != nil {
		return nil, err
	}
	return t, nil
}

// readExplicitPerm reads len+1 explicit 4-bit symbols, where len is itself
// read as a 3-bit count, then appends the unused 0..15 values in natural
// order.
func readExplicitPerm(r *bitio.Reader, t *Tree) error {
	length, err := r.GetBits(3)
	if err != nil {
		return err
	}
	used := [SymbolsPerTree]bool{}
	n := 0
	for i := 0; i <= int(length); i++ {
		v, err := r.GetBits(4)
		if err != nil {
			return err
		}
		t.syms[n] = uint16(v)
		used[v] = true
		n++
	}
	for v := 0; v < SymbolsPerTree && n < SymbolsPerTree; v++ {
		if !used[v] {
			t.syms[n] = uint16(v)
			n++
		}
	}
	return nil
}

// readMergePerm builds the permutation via Bink's iterated pairwise merge:
// start from identity, then for 2^i-sized groups (i = 0..len) run a bit-
// controlled stable merge of adjacent groups, where each output bit picks
// the next element from the left or right half. len is read as a 2-bit
// count, so groups grow from 1 up to at most 8 symbols.
func readMergePerm(r *bitio.Reader, t *Tree) error {
	length, err := r.GetBits(2)
	if err != nil {
		return err
	}
	perm := identityPerm

	for i := 0; i <= int(length); i++ {
		groupSize := 1 << uint(i)
		var merged [SymbolsPerTree]uint16
		for base := 0; base+2*groupSize <= SymbolsPerTree; base += 2 * groupSize {
			left, right := 0, 0
			out := 0
			for left < groupSize && right < groupSize {
				bit, err := r.GetBit()
				if err != nil {
					return err
				}
				if bit == 0 {
					merged[base+out] = perm[base+left]
					left++
				} else {
					merged[base+out] = perm[base+groupSize+right]
					right++
				}
				out++
			}
			for left < groupSize {
				merged[base+out] = perm[base+left]
				left++
				out++
			}
			for right < groupSize {
				merged[base+out] = perm[base+groupSize+right]
				right++
				out++
			}
		}
		perm = merged
	}
	t.syms = perm
	return nil
}

// Decode reads one symbol from r using t's table and permutation.
func (t *Tree) Decode(r *bitio.Reader) (uint16, error) {
	peek, err := r.ShowBits(15)
	if err != nil {
		// Fewer than 15 bits may remain near end of stream; peek however
		// many are left instead.
		peek, err = showBitsBestEffort(r)
		if err != nil {
			return 0, err
		}
	}
	vlc, bits := t.table.Lookup(peek)
	if err := r.Skip(bits); err != nil {
		return 0, err
	}
	return t.syms[vlc], nil
}

// showBitsBestEffort peeks as many bits as remain (up to 15) so Decode can
// still resolve a short code near the end of a packet.
func showBitsBestEffort(r *bitio.Reader) (uint32, error) {
	left := r.BitsLeft()
	if left <= 0 {
		return 0, &bitio.IoError{Op: "huffman: decode past end of stream"}
	}
	if left > 15 {
		left = 15
	}
	return r.ShowBits(left)
}
