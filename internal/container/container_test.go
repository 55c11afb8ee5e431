package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// buildMinimalStream assembles a header-only Bink stream (no audio
// tracks, a single frame) for header/index round-trip tests.
func buildMinimalStream(t *testing.T, rev byte, videoPayload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("BIK")
	buf.WriteByte(rev)

	duration := uint32(1)

	buf.Write(le32(0))                         // file_size_minus8, patched below
	buf.Write(le32(duration))                  // duration
	buf.Write(le32(uint32(len(videoPayload)))) // max_frame_size
	buf.Write(le32(0))                         // unused
	buf.Write(le32(64))                        // width
	buf.Write(le32(64))                        // height
	buf.Write(le32(1))                         // fps_num
	buf.Write(le32(25))                        // fps_den
	buf.Write(le32(0))                         // flags
	buf.Write(le32(0))                         // num_audio

	if rev == 'k' {
		buf.Write(le32(0)) // smush offset
	}

	frameStart := buf.Len() + 2*4 // header so far plus two index entries
	frameEnd := frameStart + len(videoPayload)

	buf.Write(le32(uint32(frameStart)))
	buf.Write(le32(uint32(frameEnd) | 1))
	buf.Write(videoPayload)

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out))-8)
	return out
}

func TestReadHeaderRoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	data := buildMinimalStream(t, 'k', payload)

	h, err := ReadHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, h.Width)
	assert.Equal(t, 64, h.Height)
	assert.Equal(t, RevisionK, h.Revision)
	assert.Len(t, h.Index, 2)
}

func TestReadHeaderRejectsRevisionB(t *testing.T) {
	data := buildMinimalStream(t, 'b', []byte{0})
	_, err := ReadHeader(bytes.NewReader(data))
	assert.True(t, errors.Is(err, ErrRejectedRev))
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	data := buildMinimalStream(t, 'k', []byte{0})
	data[0] = 'X'
	_, err := ReadHeader(bytes.NewReader(data))
	assert.True(t, errors.Is(err, ErrBadMagic))
}

func TestDemuxerNextPacket(t *testing.T) {
	payload := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	data := buildMinimalStream(t, 'k', payload)

	d, err := NewDemuxer(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, d.FrameCount())

	pkt, err := d.NextPacket()
	require.NoError(t, err)
	assert.Equal(t, payload, pkt.Video)
	assert.False(t, d.HasNext())
}
