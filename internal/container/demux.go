package container

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Structural errors raised while driving frames.
var (
	ErrNoMoreFrames  = errors.New("bink: no more frames")
	ErrShortPacket   = errors.New("bink: frame packet shorter than declared")
	ErrAudioSizeRead = errors.New("bink: short read of audio packet size")
)

// Packet is one demultiplexed frame's raw payload: the leading audio
// sub-chunks per track, in header order, followed by the video payload.
type Packet struct {
	AudioChunks [][]byte
	Video       []byte
	Keyframe    bool
}

// Demuxer drives per-frame access to a Bink stream: it owns the parsed
// header/index and the byte source, seeking to each frame's declared
// offset on demand.
type Demuxer struct {
	src    Source
	header *Header
	pos    int // next frame index to read
}

// NewDemuxer parses src's header and index and returns a Demuxer
// positioned before frame 0. src must support Seek; the demuxer reads
// forward from wherever src is currently positioned for the header, then
// seeks absolutely for each frame after that.
func NewDemuxer(src Source) (*Demuxer, error) {
	h, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	return &Demuxer{src: src, header: h}, nil
}

// Header returns the parsed file header.
func (d *Demuxer) Header() *Header { return d.header }

// FrameCount returns the number of frames in the stream.
func (d *Demuxer) FrameCount() int {
	if len(d.header.Index) == 0 {
		return 0
	}
	return len(d.header.Index) - 1
}

// HasNext reports whether another frame remains to be read.
func (d *Demuxer) HasNext() bool { return d.pos < d.FrameCount() }

// NextPacket seeks to the next frame's offset, reads its declared-length
// payload, and splits it into per-track audio sub-chunks and a trailing
// video payload.
func (d *Demuxer) NextPacket() (*Packet, error) {
	if !d.HasNext() {
		return nil, ErrNoMoreFrames
	}
	entry := d.header.Index[d.pos]
	d.pos++

	offset := entry.Offset + uint64(d.header.SmushOffset)
	if _, err := d.src.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "bink: seeking to frame")
	}

	buf := make([]byte, entry.PacketLen)
	if _, err := io.ReadFull(d.src, buf); err != nil {
		return nil, errors.Wrap(ErrShortPacket, "bink: reading frame packet")
	}

	pkt := &Packet{Keyframe: entry.Keyframe}
	cursor := buf
	for range d.header.AudioTracks {
		if len(cursor) < 4 {
			return nil, ErrAudioSizeRead
		}
		size := ReadLE32(cursor[:4])
		cursor = cursor[4:]
		if size >= 4 {
			if uint64(len(cursor)) < uint64(size) {
				return nil, ErrShortPacket
			}
			pkt.AudioChunks = append(pkt.AudioChunks, cursor[:size])
			cursor = cursor[size:]
		} else {
			pkt.AudioChunks = append(pkt.AudioChunks, nil)
		}
	}
	pkt.Video = cursor
	return pkt, nil
}

// Reset rewinds the demuxer back to frame 0 without re-reading the
// header, for callers that want to decode the same stream twice.
func (d *Demuxer) Reset() { d.pos = 0 }
