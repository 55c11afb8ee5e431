package audio

import (
	"math"

	"github.com/binkstream/bink/internal/bitio"
	"github.com/binkstream/bink/internal/dsp"
)

// DecodePacket consumes one audio sub-chunk, already stripped of the
// container's own per-chunk length prefix, and returns the decoded samples
// it produces as float32 PCM in [-1, 1], in post-fold channel order.
//
// Each packet carries its own leading 32-bit reported-size field (distinct
// from the container's length prefix) followed by a run of transform
// blocks, decoded until the bitstream is exhausted.
func (s *Stream) DecodePacket(data []byte) ([]float32, error) {
	r := bitio.NewReader(data)
	if err := r.Skip(32); err != nil {
		return nil, err
	}

	var out []float32
	for r.BitsLeft() > 0 {
		if err := s.decodeBlock(r); err != nil {
			return nil, err
		}
		out = append(out, s.output()...)
		if err := r.Align32(); err != nil {
			break
		}
	}
	return out, nil
}

// decodeBlock decodes one transform-length block across every (post-fold)
// channel.
func (s *Stream) decodeBlock(r *bitio.Reader) error {
	if s.isDCT {
		if _, err := r.GetBits(2); err != nil {
			return err
		}
	}
	for ch := 0; ch < s.channels; ch++ {
		if err := s.decodeChannel(r, ch); err != nil {
			return err
		}
	}
	return nil
}

// decodeChannel reads one channel's coefficient list, dequantizing each
// band against quantTable, runs the inverse transform, and cross-fades the
// result against the previous block's tail.
func (s *Stream) decodeChannel(r *bitio.Reader, ch int) error {
	coeffs := s.samples[ch]
	for i := range coeffs {
		coeffs[i] = 0
	}

	c0, c1, err := s.readLeadCoeffs(r)
	if err != nil {
		return err
	}
	coeffs[0] = c0
	coeffs[1] = c1

	bandScale := make([]float64, len(s.bands)-1)
	for b := range bandScale {
		idx, err := r.GetBits(8)
		if err != nil {
			return err
		}
		if idx > dsp.AudioQuantIndices-1 {
			idx = dsp.AudioQuantIndices - 1
		}
		bandScale[b] = s.quantTable[idx]
	}

	band := 0
	for i := 2; i < s.frameLen; {
		j, err := s.segmentEnd(r, i)
		if err != nil {
			return err
		}

		width, err := r.GetBits(4)
		if err != nil {
			return err
		}

		for ; i < j; i++ {
			for band+1 < len(s.bands) && i >= s.bands[band+1] {
				band++
			}
			if width == 0 {
				coeffs[i] = 0
				continue
			}
			mag, err := r.GetBits(int(width))
			if err != nil {
				return err
			}
			sign, err := r.GetBit()
			if err != nil {
				return err
			}
			v := float64(mag) * bandScale[band]
			if sign != 0 {
				v = -v
			}
			coeffs[i] = v
		}
	}

	var transformed []float64
	if s.isDCT {
		coeffs[0] /= 0.5
		transformed = dsp.DCTIII(coeffs)
	} else {
		transformed = dsp.RDFT(coeffs, false)
	}
	copy(s.samples[ch], transformed)

	s.crossFade(ch)
	return nil
}

// segmentEnd reads the next coefficient-group boundary starting at i: a
// fixed 16-coefficient step for the legacy revision-'b' stream, or a 1-bit
// flag selecting either an 8-coefficient step or an escape-coded run out of
// rleLengthTab, capped at the block's frame length.
func (s *Stream) segmentEnd(r *bitio.Reader, i int) (int, error) {
	var j int
	if s.legacyB {
		j = i + 16
	} else {
		useRLE, err := r.GetBit()
		if err != nil {
			return 0, err
		}
		if useRLE != 0 {
			code, err := r.GetBits(4)
			if err != nil {
				return 0, err
			}
			j = i + rleLengthTab[code]*8
		} else {
			j = i + 8
		}
	}
	if j > s.frameLen {
		j = s.frameLen
	}
	return j, nil
}

// readLeadCoeffs reads the two coefficients carried outside the banded
// list walk: a packed float for every revision but the legacy 'b' stream,
// which instead bit-casts a raw 32-bit read as IEEE-754.
func (s *Stream) readLeadCoeffs(r *bitio.Reader) (float64, float64, error) {
	read := r.GetFloat
	if s.legacyB {
		read = s.readLegacyFloat(r)
	}
	c0, err := read()
	if err != nil {
		return 0, 0, err
	}
	c1, err := read()
	if err != nil {
		return 0, 0, err
	}
	return c0 * s.root, c1 * s.root, nil
}

// readLegacyFloat returns a closure reinterpreting a raw 32-bit read as an
// IEEE-754 float, matching revision 'b''s pre-packed-float encoding.
func (s *Stream) readLegacyFloat(r *bitio.Reader) func() (float64, error) {
	return func() (float64, error) {
		raw, err := r.GetBits(32)
		if err != nil {
			return 0, err
		}
		return float64(math.Float32frombits(raw)), nil
	}
}

// crossFade linearly interpolates this block's leading overlapLen samples
// against the previous block's trailing overlapLen samples, then stores
// this block's own tail for the next call.
func (s *Stream) crossFade(ch int) {
	prev := s.previous[ch]
	cur := s.samples[ch]
	count := s.overlapLen
	for i := 0; i < count; i++ {
		w := float64(i) / float64(count)
		cur[i] = prev[i]*(1-w) + cur[i]*w
	}
	copy(prev, cur[s.frameLen-s.overlapLen:])
}

// output returns this block's samples past the cross-faded overlap region,
// scaled to [-1, 1] float32 PCM, interleaved across post-fold channels (the
// RDFT fold already interleaves original stereo pairs within one channel).
func (s *Stream) output() []float32 {
	n := s.frameLen - s.overlapLen
	out := make([]float32, n*s.channels)
	if s.channels == 1 {
		for i := 0; i < n; i++ {
			out[i] = float32(clampSample(s.samples[0][i]))
		}
		return out
	}
	for i := 0; i < n; i++ {
		out[2*i] = float32(clampSample(s.samples[0][i]))
		out[2*i+1] = float32(clampSample(s.samples[1][i]))
	}
	return out
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
