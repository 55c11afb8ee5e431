package bink

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/binkstream/bink/internal/video"
)

// bitWriter assembles test fixtures bit by bit, LSB-first within each byte
// and growing upward through the buffer, matching bitio.Reader's fetch
// convention.
type bitWriter struct {
	buf []byte
	pos int
}

func (w *bitWriter) writeBits(v uint32, n int) {
	for i := 0; i < n; i++ {
		bit := (v >> uint(i)) & 1
		byteIdx := w.pos >> 3
		for len(w.buf) <= byteIdx {
			w.buf = append(w.buf, 0)
		}
		w.buf[byteIdx] |= byte(bit) << uint(w.pos&7)
		w.pos++
	}
}

func (w *bitWriter) align32() {
	if rem := w.pos & 31; rem != 0 {
		w.writeBits(0, 32-rem)
	}
}

// wholePlaneFillSegment builds one plane's bitstream segment under the
// revision-'k' whole-plane-fill shortcut: a 32-bit prefix (skipped by every
// revision >= 'i'), the fill-shortcut bit, an 8-bit colour, and trailing
// alignment padding.
func wholePlaneFillSegment(color byte) []byte {
	w := &bitWriter{}
	w.writeBits(0, 32)
	w.writeBits(1, 1)
	w.writeBits(uint32(color), 8)
	w.align32()
	return w.buf
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// buildWholeFillStream assembles a single-frame, no-audio Bink stream whose
// Y/U/V planes each decode via the revision-'k' whole-plane-fill shortcut.
func buildWholeFillStream(t *testing.T, width, height int, colorY, colorU, colorV byte) []byte {
	t.Helper()
	var video bytes.Buffer
	video.Write(wholePlaneFillSegment(colorY))
	video.Write(wholePlaneFillSegment(colorU))
	video.Write(wholePlaneFillSegment(colorV))

	var buf bytes.Buffer
	buf.WriteString("BIK")
	buf.WriteByte('k')
	buf.Write(le32(0)) // file_size_minus8, patched below
	buf.Write(le32(1)) // duration
	buf.Write(le32(uint32(video.Len())))
	buf.Write(le32(0)) // unused
	buf.Write(le32(uint32(width)))
	buf.Write(le32(uint32(height)))
	buf.Write(le32(1))  // fps_num
	buf.Write(le32(25)) // fps_den
	buf.Write(le32(0))  // flags
	buf.Write(le32(0))  // num_audio
	buf.Write(le32(0))  // smush offset, required for ("BIK",'k')

	frameStart := buf.Len() + 2*4
	frameEnd := frameStart + video.Len()
	buf.Write(le32(uint32(frameStart)))
	buf.Write(le32(uint32(frameEnd) | 1))
	buf.Write(video.Bytes())

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out))-8)
	return out
}

func TestDecoderWholePlaneFill(t *testing.T) {
	data := buildWholeFillStream(t, 8, 8, 0x80, 0x40, 0x20)

	dec, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if dec.FrameCount() != 1 {
		t.Fatalf("FrameCount() = %d, want 1", dec.FrameCount())
	}

	frame, err := dec.NextFrame()
	if err != nil {
		t.Fatalf("NextFrame: %v", err)
	}

	if frame.Planes[planeA] != nil {
		t.Fatal("Planes[planeA] should be nil: stream has no alpha flag")
	}

	checkFill(t, "Y", frame.Planes[planeY], 0x80)
	checkFill(t, "U", frame.Planes[planeU], 0x40)
	checkFill(t, "V", frame.Planes[planeV], 0x20)

	if _, err := dec.NextFrame(); !errors.Is(err, ErrNoMoreFrames) {
		t.Fatalf("second NextFrame: err = %v, want ErrNoMoreFrames", err)
	}
}

func checkFill(t *testing.T, name string, plane *video.Plane, want byte) {
	t.Helper()
	if plane == nil {
		t.Fatalf("Planes[%s] is nil", name)
	}
	for i, v := range plane.Pixels {
		if v != want {
			t.Fatalf("%s pixel %d = %#x, want %#x", name, i, v, want)
		}
	}
}
