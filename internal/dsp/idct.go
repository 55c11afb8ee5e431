// Package dsp implements the numeric back end shared by the video and
// audio decoders: the 8x8 integer IDCT used to reconstruct block
// residuals, and the radix-2 FFT/RDFT/DCT-III transforms underlying
// subband audio synthesis.
package dsp

// Fixed multipliers for the 8-point AAN-style integer IDCT. mul(x, y) is
// (x*y) >> 11, matching the fixed-point scale these constants were chosen
// for.
const (
	a1 = 2896
	a2 = 2217
	a3 = 3784
	a4 = -5352
)

// mul computes (x*y) >> 11, the fixed-point multiply every IDCT butterfly
// uses.
func mul(x, y int32) int32 {
	return (x * y) >> 11
}

// BlockSize is the side length of a Bink transform block.
const BlockSize = 8

// IDCT8x8 performs Bink's 8x8 inverse transform in place: a column pass
// producing 32-bit intermediates, then a row pass rounding with +0x7F and
// >>8 back into 8-bit range. blk is row-major, 64 entries.
func IDCT8x8(blk []int32) {
	var tmp [BlockSize * BlockSize]int32
	for col := 0; col < BlockSize; col++ {
		idctColumn(blk, tmp[:], col)
	}
	for row := 0; row < BlockSize; row++ {
		idctRow(tmp[:], blk, row)
	}
}

// columnHasAC reports whether any of a column's 7 AC entries are nonzero;
// when none are, the DC term can be broadcast directly instead of running
// the full butterfly.
func columnHasAC(blk []int32, col int) bool {
	for row := 1; row < BlockSize; row++ {
		if blk[row*BlockSize+col] != 0 {
			return true
		}
	}
	return false
}

// idctColumn runs the 8-point butterfly down column col of src, writing
// 32-bit intermediates into the same column of dst.
func idctColumn(src, dst []int32, col int) {
	if !columnHasAC(src, col) {
		dc := src[col]
		for row := 0; row < BlockSize; row++ {
			dst[row*BlockSize+col] = dc
		}
		return
	}

	c := func(row int) int32 { return src[row*BlockSize+col] }

	a0 := c(0)
	a4v := c(4)
	t0 := a0 + a4v
	t1 := a0 - a4v

	b2 := mul(c(2), a2) + mul(c(6), a4)
	b6 := mul(c(2), a4) - mul(c(6), a2)

	s0 := t0 + b2
	s3 := t0 - b2
	s1 := t1 + b6
	s2 := t1 - b6

	// Odd half via direct butterfly on the four odd inputs: rotate pairs
	// (1,7) and (3,5), then combine.
	p17 := mul(c(1), a1) - mul(c(7), a4)
	q17 := mul(c(1), a4) + mul(c(7), a1)
	p35 := mul(c(3), a3) - mul(c(5), -a4)
	q35 := mul(c(3), -a4) + mul(c(5), a3)

	e0 := p17 + p35
	e3 := p17 - p35
	e1 := q17 + q35
	e2 := q17 - q35

	out := func(row int, v int32) { dst[row*BlockSize+col] = v }
	out(0, s0+e0)
	out(7, s0-e0)
	out(1, s1+e1)
	out(6, s1-e1)
	out(2, s2+e2)
	out(5, s2-e2)
	out(3, s3+e3)
	out(4, s3-e3)
}

// idctRow mirrors idctColumn across row row of src, rounding into 8-bit
// range with +0x7F, >>8 and writing back into dst.
func idctRow(src, dst []int32, row int) {
	base := row * BlockSize
	if !rowHasAC(src, row) {
		dc := round8(src[base])
		for col := 0; col < BlockSize; col++ {
			dst[base+col] = dc
		}
		return
	}

	r := func(col int) int32 { return src[base+col] }

	a0 := r(0)
	a4v := r(4)
	t0 := a0 + a4v
	t1 := a0 - a4v

	b2 := mul(r(2), a2) + mul(r(6), a4)
	b6 := mul(r(2), a4) - mul(r(6), a2)

	s0 := t0 + b2
	s3 := t0 - b2
	s1 := t1 + b6
	s2 := t1 - b6

	p17 := mul(r(1), a1) - mul(r(7), a4)
	q17 := mul(r(1), a4) + mul(r(7), a1)
	p35 := mul(r(3), a3) - mul(r(5), -a4)
	q35 := mul(r(3), -a4) + mul(r(5), a3)

	e0 := p17 + p35
	e3 := p17 - p35
	e1 := q17 + q35
	e2 := q17 - q35

	dst[base+0] = round8(s0 + e0)
	dst[base+7] = round8(s0 - e0)
	dst[base+1] = round8(s1 + e1)
	dst[base+6] = round8(s1 - e1)
	dst[base+2] = round8(s2 + e2)
	dst[base+5] = round8(s2 - e2)
	dst[base+3] = round8(s3 + e3)
	dst[base+4] = round8(s3 - e3)
}

func rowHasAC(src []int32, row int) bool {
	base := row * BlockSize
	for col := 1; col < BlockSize; col++ {
		if src[base+col] != 0 {
			return true
		}
	}
	return false
}

// round8 applies the row pass's output rounding: (+0x7F) >> 8.
func round8(v int32) int32 {
	return (v + 0x7f) >> 8
}
