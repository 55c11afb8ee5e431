package bink

import "github.com/binkstream/bink/internal/video"

// Frame is one decoded picture and its audio tracks' samples for that
// packet.
//
// Planes alias the Decoder's internal ping-pong buffers: each is valid
// until the next NextFrame call, which reuses the opposite buffer for the
// following frame's previous-frame prediction. Callers that need a frame
// to outlive the next NextFrame call must copy its Pixels.
type Frame struct {
	// Planes holds the Y, U, V, and (when the stream carries an alpha
	// channel) A planes, indexed 0..3 in that order. An absent plane is
	// nil.
	Planes [numPlanes]*video.Plane
	// Audio holds one entry per audio track, in header order.
	Audio []AudioTrackSamples
}

// AudioTrackSamples is one audio track's decoded output for a single
// frame packet: interleaved float32 PCM in [-1, 1].
type AudioTrackSamples struct {
	Samples []float32
}
