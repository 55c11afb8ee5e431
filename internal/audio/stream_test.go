package audio

import (
	"math"
	"testing"

	"github.com/binkstream/bink/internal/container"
)

func TestNewStreamFrameLenThresholds(t *testing.T) {
	cases := []struct {
		rate    int
		wantLen int
	}{
		{11025, 512},
		{22050, 1024},
		{44100, 2048},
	}
	for _, c := range cases {
		s := NewStream(container.AudioTrack{SampleRate: c.rate, UseDCT: true}, container.RevisionK)
		if s.frameLen != c.wantLen {
			t.Fatalf("rate %d: frameLen = %d, want %d", c.rate, s.frameLen, c.wantLen)
		}
		if s.overlapLen != c.wantLen/16 {
			t.Fatalf("rate %d: overlapLen = %d, want %d", c.rate, s.overlapLen, c.wantLen/16)
		}
	}
}

func TestNewStreamRDFTStereoFold(t *testing.T) {
	s := NewStream(container.AudioTrack{SampleRate: 22050, Stereo: true, UseDCT: false}, container.RevisionK)
	if s.OrigChannels != 2 {
		t.Fatalf("OrigChannels = %d, want 2", s.OrigChannels)
	}
	if s.channels != 1 {
		t.Fatalf("channels = %d, want 1 (folded)", s.channels)
	}
	if s.SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100 (22050*2)", s.SampleRate)
	}
	// frame_len_bits for 22050 is 10, plus log2(2) = 1, so frame_len = 2048.
	if s.frameLen != 2048 {
		t.Fatalf("frameLen = %d, want 2048", s.frameLen)
	}
}

func TestNewStreamDCTStereoNotFolded(t *testing.T) {
	s := NewStream(container.AudioTrack{SampleRate: 22050, Stereo: true, UseDCT: true}, container.RevisionK)
	if s.channels != 2 {
		t.Fatalf("channels = %d, want 2 (DCT never folds)", s.channels)
	}
	if s.SampleRate != 22050 {
		t.Fatalf("SampleRate = %d, want unchanged 22050", s.SampleRate)
	}
}

func TestQuantTableMatchesRoot(t *testing.T) {
	s := NewStream(container.AudioTrack{SampleRate: 44100, UseDCT: true}, container.RevisionK)
	if s.quantTable[0] != s.root {
		t.Fatalf("quantTable[0] = %v, want root %v", s.quantTable[0], s.root)
	}
	if s.quantTable[1] <= s.quantTable[0] {
		t.Fatalf("quantTable is not monotonically increasing: [0]=%v [1]=%v", s.quantTable[0], s.quantTable[1])
	}
}

func TestComputeBandsMonotonicAndBounded(t *testing.T) {
	bands := computeBands(2048, 44100)
	if bands[0] != 2 {
		t.Fatalf("bands[0] = %d, want 2", bands[0])
	}
	if bands[len(bands)-1] != 1024 {
		t.Fatalf("last band boundary = %d, want frameLen/2 = 1024", bands[len(bands)-1])
	}
	for i := 1; i < len(bands); i++ {
		if bands[i] <= bands[i-1] {
			t.Fatalf("bands not strictly increasing at %d: %v", i, bands)
		}
	}
}

func TestCrossFadeProducesFiniteOverlap(t *testing.T) {
	s := NewStream(container.AudioTrack{SampleRate: 22050, UseDCT: true}, container.RevisionK)
	for i := range s.samples[0] {
		s.samples[0][i] = 0.01 * float64(i%7)
	}
	s.crossFade(0)
	for i, v := range s.samples[0][:s.overlapLen] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("crossFade produced non-finite sample at %d: %v", i, v)
		}
	}
	if len(s.previous[0]) != s.overlapLen {
		t.Fatalf("previous tail length = %d, want %d", len(s.previous[0]), s.overlapLen)
	}
	for i, v := range s.previous[0] {
		want := s.samples[0][s.frameLen-s.overlapLen+i]
		if v != want {
			t.Fatalf("previous[%d] = %v, want %v (copied tail)", i, v, want)
		}
	}
}

func TestOutputLengthMatchesChannels(t *testing.T) {
	mono := NewStream(container.AudioTrack{SampleRate: 22050, UseDCT: true}, container.RevisionK)
	out := mono.output()
	if len(out) != mono.frameLen-mono.overlapLen {
		t.Fatalf("mono output length = %d, want %d", len(out), mono.frameLen-mono.overlapLen)
	}

	stereo := NewStream(container.AudioTrack{SampleRate: 22050, Stereo: true, UseDCT: true}, container.RevisionK)
	out = stereo.output()
	if len(out) != 2*(stereo.frameLen-stereo.overlapLen) {
		t.Fatalf("stereo output length = %d, want %d", len(out), 2*(stereo.frameLen-stereo.overlapLen))
	}
}
