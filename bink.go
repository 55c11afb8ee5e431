// Package bink decodes the Bink container format: an indexed stream of
// frame packets carrying a block-based intra/inter video codec and a
// subband audio codec.
//
// Open a seekable byte source, then call NextFrame repeatedly until it
// returns ErrNoMoreFrames.
package bink

import (
	goerrors "errors"

	"github.com/binkstream/bink/internal/audio"
	"github.com/binkstream/bink/internal/bitio"
	"github.com/binkstream/bink/internal/container"
	"github.com/binkstream/bink/internal/video"
)

// planeY, planeU, planeV, planeA index Frame.Planes and the Decoder's
// per-plane state in the container's Y/U/V/A convention.
const (
	planeY = 0
	planeU = 1
	planeV = 2
	planeA = 3
	numPlanes = 4
)

// Decoder drives a Bink stream frame by frame: one demuxer, one plane
// decoder and ping-pong frame buffer per active plane, and one audio
// stream per track.
type Decoder struct {
	demux  *container.Demuxer
	header *container.Header

	planeDecoders [numPlanes]*video.PlaneDecoder
	current       [numPlanes]*video.Plane
	previous      [numPlanes]*video.Plane
	planeWidth    [numPlanes]int

	audio []*audio.Stream

	frameCounter int
}

// Open parses src's header and index and returns a Decoder positioned
// before frame 0. src must support Seek.
func Open(src container.Source) (*Decoder, error) {
	demux, err := container.NewDemuxer(src)
	if err != nil {
		return nil, err
	}
	h := demux.Header()

	d := &Decoder{demux: demux, header: h}

	widths, heights := planeDims(h)
	for i := 0; i < numPlanes; i++ {
		if widths[i] == 0 {
			continue
		}
		bw, bh := ceilDiv8(widths[i]), ceilDiv8(heights[i])
		d.planeDecoders[i] = video.NewPlaneDecoder(bw, bh)
		d.current[i] = video.NewPlane(widths[i], heights[i])
		d.previous[i] = video.NewPlane(widths[i], heights[i])
		d.planeWidth[i] = widths[i]
	}

	for _, track := range h.AudioTracks {
		d.audio = append(d.audio, audio.NewStream(track, h.Revision))
	}

	return d, nil
}

// planeDims derives each plane's pixel dimensions from the header: Y and A
// (when present) at full resolution, U and V at half resolution on each
// axis, rounded up.
func planeDims(h *container.Header) (widths, heights [numPlanes]int) {
	widths[planeY], heights[planeY] = h.Width, h.Height
	cw, ch := (h.Width+1)/2, (h.Height+1)/2
	widths[planeU], heights[planeU] = cw, ch
	widths[planeV], heights[planeV] = cw, ch
	if h.HasAlpha() {
		widths[planeA], heights[planeA] = h.Width, h.Height
	}
	return
}

func ceilDiv8(n int) int { return (n + 7) / 8 }

// FrameCount returns the number of frames in the stream.
func (d *Decoder) FrameCount() int { return d.demux.FrameCount() }

// planeOrder returns the plane indices in the bitstream's decode order:
// alpha (if present) first, then Y, then the chroma pair, swapped for
// revisions that reorder U/V.
func (d *Decoder) planeOrder() []int {
	order := make([]int, 0, numPlanes)
	if d.header.HasAlpha() {
		order = append(order, planeA)
	}
	order = append(order, planeY)
	if d.header.Revision.SwapsChroma() {
		order = append(order, planeV, planeU)
	} else {
		order = append(order, planeU, planeV)
	}
	return order
}

// NextFrame decodes and returns the next frame: its audio tracks' samples
// for this packet, and its decoded planes. Returns ErrNoMoreFrames
// once every indexed frame has been consumed.
func (d *Decoder) NextFrame() (*Frame, error) {
	pkt, err := d.demux.NextPacket()
	if err != nil {
		if goerrors.Is(err, container.ErrNoMoreFrames) {
			return nil, ErrNoMoreFrames
		}
		return nil, err
	}

	frame := &Frame{Audio: make([]AudioTrackSamples, len(d.audio))}
	for i, stream := range d.audio {
		var chunk []byte
		if i < len(pkt.AudioChunks) {
			chunk = pkt.AudioChunks[i]
		}
		if len(chunk) == 0 {
			continue
		}
		samples, err := stream.DecodePacket(chunk)
		if err != nil {
			return nil, newDecodingError("audio", err)
		}
		frame.Audio[i] = AudioTrackSamples{Samples: samples}
	}

	r := bitio.NewReader(pkt.Video)
	for _, idx := range d.planeOrder() {
		pd := d.planeDecoders[idx]
		if pd == nil {
			continue
		}
		if d.header.Revision.HasAlphaSkipPrefix() {
			if err := r.Skip(32); err != nil {
				return nil, newIOError("plane prefix", err)
			}
		}
		if err := pd.DecodePlane(r, d.header.Revision, d.current[idx], d.previous[idx], d.planeWidth[idx]); err != nil {
			return nil, newDecodingError("plane", err)
		}
	}

	for i := range d.current {
		if d.current[i] != nil {
			frame.Planes[i] = d.current[i]
		}
	}

	d.current, d.previous = d.previous, d.current
	d.frameCounter++
	return frame, nil
}
