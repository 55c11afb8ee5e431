package audio

import (
	"math"

	"github.com/binkstream/bink/internal/container"
	"github.com/binkstream/bink/internal/dsp"
)

// Stream decodes one audio track: per-packet coefficient blocks synthesized
// through either a DCT-III or RDFT back end depending on the track's
// BINK_AUD_USEDCT flag, cross-faded against the previous block's trailing
// overlap region.
//
// The RDFT variant folds stereo into a single higher-rate channel at setup
// time (decodeAudioInit's stereo interleave): OrigChannels preserves the
// track's declared channel count for API reporting, while channels is the
// post-fold value every decode computation actually runs against.
type Stream struct {
	OrigChannels int
	SampleRate   int // post-fold processing rate
	channels     int
	isDCT        bool
	legacyB      bool

	frameLen   int
	overlapLen int
	root       float64
	quantTable [dsp.AudioQuantIndices]float64
	bands      []int

	samples  [2][]float64
	previous [2][]float64
}

// NewStream builds a decode stream for one audio track.
func NewStream(track container.AudioTrack, rev container.Revision) *Stream {
	s := &Stream{isDCT: track.UseDCT, legacyB: rev == container.RevisionB}

	sampleRate := track.SampleRate
	channels := 1
	if track.Stereo {
		channels = 2
	}
	s.OrigChannels = channels

	var frameLenBits int
	switch {
	case sampleRate < 22050:
		frameLenBits = 9
	case sampleRate < 44100:
		frameLenBits = 10
	default:
		frameLenBits = 11
	}

	if !s.isDCT {
		sampleRate *= channels
		if !s.legacyB {
			frameLenBits += log2Int(channels)
		}
		channels = 1
	}
	s.channels = channels
	s.SampleRate = sampleRate

	s.frameLen = 1 << frameLenBits
	s.overlapLen = s.frameLen / 16

	if s.isDCT {
		s.root = float64(s.frameLen) / (math.Sqrt(float64(s.frameLen)) * 32768)
	} else {
		s.root = 2 / (math.Sqrt(float64(s.frameLen)) * 32768)
	}
	s.quantTable = dsp.AudioQuantTable(s.root)
	s.bands = computeBands(s.frameLen, s.SampleRate)

	for ch := 0; ch < s.channels; ch++ {
		s.samples[ch] = make([]float64, s.frameLen)
		s.previous[ch] = make([]float64, s.overlapLen)
	}
	return s
}

// log2Int returns floor(log2(n)) for n >= 1.
func log2Int(n int) int {
	b := 0
	for n > 1 {
		n >>= 1
		b++
	}
	return b
}

// computeBands maps the critical-frequency table into coefficient-index
// band boundaries for this frame length and (post-fold) sample rate: band
// b covers coefficients [bands[b], bands[b+1]), starting at index 2 since
// the leading two coefficients are read directly rather than banded.
func computeBands(frameLen, sampleRate int) []int {
	half := frameLen / 2
	sampleRateHalf := (sampleRate + 1) / 2
	bands := []int{2}
	for _, freq := range criticalFreqs {
		if int(freq) >= sampleRateHalf {
			break
		}
		idx := (int(freq) * frameLen / sampleRate) &^ 1
		if idx > bands[len(bands)-1] && idx < half {
			bands = append(bands, idx)
		}
	}
	return append(bands, half)
}
