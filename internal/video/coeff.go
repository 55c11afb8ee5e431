package video

import (
	"github.com/binkstream/bink/internal/bitio"
	"github.com/binkstream/bink/internal/dsp"
)

// coeffEntry is one live node in the DCT coefficient list walk: a
// position in scan order and the mode governing how it is expanded on its
// next active bit-plane.
type coeffEntry struct {
	pos  int
	mode int
}

// coeffList is the grow-left/grow-right deque the list walk operates on.
// New mode-3 entries are pushed to the head, new mode-2 entries (split
// out of a mode-1 parent) to the tail; the backing array is sized well
// beyond anything a 64-position block can produce.
type coeffList struct {
	entries    [192]coeffEntry
	active     [192]bool
	start, end int
}

func newCoeffList() *coeffList {
	return &coeffList{start: 96, end: 96}
}

func (l *coeffList) pushBack(pos, mode int) {
	l.entries[l.end] = coeffEntry{pos, mode}
	l.active[l.end] = true
	l.end++
}

func (l *coeffList) pushFront(pos, mode int) {
	l.start--
	l.entries[l.start] = coeffEntry{pos, mode}
	l.active[l.start] = true
}

func (l *coeffList) retire(i int) { l.active[i] = false }

// readCoeffMagnitude reads one signed coefficient magnitude: ±1 from a
// single sign bit when bits==0, else an explicit (1<<bits)|value with a
// trailing sign bit.
func readCoeffMagnitude(r *bitio.Reader, bits int) (int32, error) {
	if bits == 0 {
		b, err := r.GetBit()
		if err != nil {
			return 0, err
		}
		if b != 0 {
			return -1, nil
		}
		return 1, nil
	}
	mag, err := r.GetBits(bits)
	if err != nil {
		return 0, err
	}
	mag |= uint32(1) << uint(bits)
	sign, err := r.GetBit()
	if err != nil {
		return 0, err
	}
	v := int32(mag)
	if sign != 0 {
		v = -v
	}
	return v, nil
}

// DecodeDCTCoeffs runs the intra/inter coefficient list walk, dequantises
// the result against quantTable, and writes the 64 coefficients of block
// in raster order. block[0] (the DC term) must already hold the decoded
// DC value; this only touches the AC positions plus dequantises index 0.
func DecodeDCTCoeffs(r *bitio.Reader, block *[64]int32, quantTable *[16][64]int32) error {
	list := newCoeffList()
	list.pushBack(4, 0)
	list.pushBack(24, 0)
	list.pushBack(44, 0)
	list.pushBack(1, 3)
	list.pushBack(2, 3)
	list.pushBack(3, 3)

	var nz []int

	bitsHeader, err := r.GetBits(4)
	if err != nil {
		return err
	}

	for bits := int(bitsHeader) - 1; bits >= 0; bits-- {
		for pos := list.start; pos < list.end; pos++ {
			if !list.active[pos] {
				continue
			}
			gate, err := r.GetBit()
			if err != nil {
				return err
			}
			if gate == 0 {
				continue
			}
			entry := list.entries[pos]
			ccoef := entry.pos
			mode := entry.mode

			if mode == 0 {
				list.entries[pos].pos = ccoef + 4
				list.entries[pos].mode = 1
				mode = 2 // mode 0 falls through into mode-2 behaviour in the same pass
			}
			switch mode {
			case 2:
				if entry.mode == 2 {
					list.retire(pos)
				}
				for i := 0; i < 4; i++ {
					c := ccoef + i
					child, err := r.GetBit()
					if err != nil {
						return err
					}
					if child != 0 {
						list.pushFront(c, 3)
						continue
					}
					v, err := readCoeffMagnitude(r, bits)
					if err != nil {
						return err
					}
					block[zigzagScan[c]] = v
					nz = append(nz, c)
				}
			case 1:
				list.entries[pos].mode = 2
				for i := 1; i <= 3; i++ {
					list.pushBack(ccoef+4*i, 2)
				}
			case 3:
				v, err := readCoeffMagnitude(r, bits)
				if err != nil {
					return err
				}
				block[zigzagScan[ccoef]] = v
				nz = append(nz, ccoef)
				list.retire(pos)
			}
		}
	}

	quantIdx, err := r.GetBits(4)
	if err != nil {
		return err
	}
	q := &quantTable[quantIdx]
	block[0] = dsp.Dequant(block[0], q[0])
	for _, idx := range nz {
		raster := zigzagScan[idx]
		block[raster] = dsp.Dequant(block[raster], q[idx])
	}
	return nil
}

// DecodeResidue runs the residue list walk: magnitude-bitplane coding of
// ± the current mask value instead of quantised coefficients, with a
// refinement pass over already-placed nonzero coefficients at the head of
// every mask level and a global masksCount budget: it decrements on every
// placed bit and ends decoding (cleanly, not an error) the moment it goes
// negative.
func DecodeResidue(r *bitio.Reader, block *[64]int32, masksCount int) error {
	list := newCoeffList()
	list.pushBack(4, 0)
	list.pushBack(24, 0)
	list.pushBack(44, 0)
	list.pushBack(0, 2)

	var nzRaster []int

	maskBits, err := r.GetBits(3)
	if err != nil {
		return err
	}
	mask := int32(1) << maskBits

	for mask != 0 {
		for _, raster := range nzRaster {
			bit, err := r.GetBit()
			if err != nil {
				return err
			}
			if bit == 0 {
				continue
			}
			if block[raster] < 0 {
				block[raster] -= mask
			} else {
				block[raster] += mask
			}
			masksCount--
			if masksCount < 0 {
				return nil
			}
		}

		for pos := list.start; pos < list.end; pos++ {
			if !list.active[pos] {
				continue
			}
			gate, err := r.GetBit()
			if err != nil {
				return err
			}
			if gate == 0 {
				continue
			}
			entry := list.entries[pos]
			ccoef := entry.pos
			mode := entry.mode

			if mode == 0 {
				list.entries[pos].pos = ccoef + 4
				list.entries[pos].mode = 1
				mode = 2
			}
			switch mode {
			case 2:
				if entry.mode == 2 {
					list.retire(pos)
				}
				for i := 0; i < 4; i++ {
					c := ccoef + i
					child, err := r.GetBit()
					if err != nil {
						return err
					}
					if child != 0 {
						list.pushFront(c, 3)
						continue
					}
					raster := int(zigzagScan[c])
					sign, err := r.GetBit()
					if err != nil {
						return err
					}
					block[raster] = signedMask(mask, sign)
					nzRaster = append(nzRaster, raster)
					masksCount--
					if masksCount < 0 {
						return nil
					}
				}
			case 1:
				list.entries[pos].mode = 2
				for i := 1; i <= 3; i++ {
					list.pushBack(ccoef+4*i, 2)
				}
			case 3:
				raster := int(zigzagScan[ccoef])
				sign, err := r.GetBit()
				if err != nil {
					return err
				}
				block[raster] = signedMask(mask, sign)
				nzRaster = append(nzRaster, raster)
				list.retire(pos)
				masksCount--
				if masksCount < 0 {
					return nil
				}
			}
		}
		mask >>= 1
	}
	return nil
}

func signedMask(mask int32, sign uint32) int32 {
	if sign != 0 {
		return -mask
	}
	return mask
}
