package container

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Source is the byte source the demuxer reads and seeks over. The
// standard io.ReadSeeker already expresses this contract.
type Source = io.ReadSeeker

// Structural errors.
var (
	ErrBadMagic       = errors.New("bink: bad magic")
	ErrRejectedRev    = errors.New("bink: revision 'b' is not supported")
	ErrBadFPS         = errors.New("bink: zero fps numerator or denominator")
	ErrBadIndex       = errors.New("bink: index entries out of order")
	ErrPacketTooLarge = errors.New("bink: largest packet exceeds file size")
	ErrTruncated      = errors.New("bink: truncated header")
)

// AudioTrack describes one audio track's header-declared properties.
type AudioTrack struct {
	SampleRate int
	Stereo     bool
	UseDCT     bool
	ID         uint32
}

// IndexEntry is one parsed frame-index slot: an absolute byte offset
// into the source, and whether the following frame is a keyframe.
type IndexEntry struct {
	Offset    uint64
	Keyframe  bool
	PacketLen uint64
}

// Header is Bink's fixed-layout file header plus its derived index
// table.
type Header struct {
	Revision     Revision
	FileSize     uint32
	Duration     uint32
	MaxFrameSize uint32
	Width        int
	Height       int
	FPSNum       uint32
	FPSDen       uint32
	Flags        uint32
	AudioTracks  []AudioTrack
	Index        []IndexEntry

	// SmushOffset is the extra 32-bit field present for ("BIK",'k') or
	// ("KB2", 'i'/'j'/'k'), added to every index offset before seeking
	// to a frame.
	SmushOffset uint32
}

// HasAlpha reports whether the video stream carries an alpha plane.
func (h *Header) HasAlpha() bool { return h.Flags&FlagAlpha != 0 }

// ReadHeader parses a Bink file header and its index table from src,
// which must be positioned at the start of the file.
func ReadHeader(src Source) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, errors.Wrap(ErrTruncated, "bink: reading header")
	}

	tag, rev, err := parseMagic(buf[0:4])
	if err != nil {
		return nil, err
	}
	if rev.Rejected() {
		return nil, ErrRejectedRev
	}

	h := &Header{Revision: rev}
	h.FileSize = ReadLE32(buf[4:8]) + 8
	h.Duration = ReadLE32(buf[8:12])
	h.MaxFrameSize = ReadLE32(buf[12:16])
	// buf[16:20] is the unused field.
	h.Width = int(ReadLE32(buf[20:24]))
	h.Height = int(ReadLE32(buf[24:28]))
	h.FPSNum = ReadLE32(buf[28:32])
	h.FPSDen = ReadLE32(buf[32:36])
	h.Flags = ReadLE32(buf[36:40])
	numAudio := ReadLE32(buf[40:44])

	if h.FPSNum == 0 || h.FPSDen == 0 {
		return nil, ErrBadFPS
	}

	if needsSmushOffset(tag, rev) {
		var b [4]byte
		if _, err := io.ReadFull(src, b[:]); err != nil {
			return nil, errors.Wrap(ErrTruncated, "bink: reading smush offset")
		}
		h.SmushOffset = ReadLE32(b[:])
	}

	if numAudio > 0 {
		if err := readAudioTracks(src, h, numAudio); err != nil {
			return nil, err
		}
	}

	if err := readIndex(src, h); err != nil {
		return nil, err
	}

	if uint64(h.MaxFrameSize) > uint64(h.FileSize) {
		return nil, ErrPacketTooLarge
	}

	return h, nil
}

// parseMagic validates the 24-bit "BIK" or "KB2" signature and extracts
// the trailing revision byte.
func parseMagic(b []byte) (tag uint32, rev Revision, err error) {
	sig := [3]byte{b[0], b[1], b[2]}
	rev = Revision(b[3])
	switch {
	case sig == [3]byte{'B', 'I', 'K'}:
		if rev != RevisionK && !rev.Rejected() && rev != RevisionH && rev != RevisionI && rev != RevisionJ {
			return 0, 0, ErrBadMagic
		}
		return TagBIK, rev, nil
	case sig == [3]byte{'K', 'B', '2'}:
		if rev != RevisionI && rev != RevisionJ && rev != RevisionK {
			return 0, 0, ErrBadMagic
		}
		return TagKB2, rev, nil
	default:
		return 0, 0, ErrBadMagic
	}
}

// needsSmushOffset reports whether this (tag, revision) combination
// carries the extra 32-bit field after the fixed header.
func needsSmushOffset(tag uint32, rev Revision) bool {
	if tag == TagBIK && rev == RevisionK {
		return true
	}
	if tag == TagKB2 && (rev == RevisionI || rev == RevisionJ || rev == RevisionK) {
		return true
	}
	return false
}

func readAudioTracks(src Source, h *Header, numAudio uint32) error {
	// num_audio x u32 max-decoded-size, skipped entirely.
	if err := skipBytes(src, int64(numAudio)*4); err != nil {
		return errors.Wrap(ErrTruncated, "bink: skipping audio max-decoded sizes")
	}

	rateFlags := make([]byte, int(numAudio)*AudioTrackFlagsSize)
	if _, err := io.ReadFull(src, rateFlags); err != nil {
		return errors.Wrap(ErrTruncated, "bink: reading audio track descriptors")
	}

	ids := make([]byte, int(numAudio)*AudioTrackIDSize)
	if _, err := io.ReadFull(src, ids); err != nil {
		return errors.Wrap(ErrTruncated, "bink: reading audio track ids")
	}

	h.AudioTracks = make([]AudioTrack, numAudio)
	for i := range h.AudioTracks {
		rate := ReadLE16(rateFlags[i*4 : i*4+2])
		flags := ReadLE16(rateFlags[i*4+2 : i*4+4])
		h.AudioTracks[i] = AudioTrack{
			SampleRate: int(rate),
			Stereo:     flags&AudioFlagStereo != 0,
			UseDCT:     flags&AudioFlagUseDCT != 0,
			ID:         ReadLE32(ids[i*4 : i*4+4]),
		}
	}
	return nil
}

func readIndex(src Source, h *Header) error {
	n := int(h.Duration) + 1
	raw := make([]byte, n*4)
	if _, err := io.ReadFull(src, raw); err != nil {
		return errors.Wrap(ErrTruncated, "bink: reading index table")
	}

	entries := make([]IndexEntry, n)
	var prevOffset uint64
	for i := 0; i < n; i++ {
		v := ReadLE32(raw[i*4 : i*4+4])
		offset, keyframe := DecodeIndexOffset(uint64(v))
		if i > 0 && offset < prevOffset {
			return ErrBadIndex
		}
		entries[i] = IndexEntry{Offset: offset, Keyframe: keyframe}
		prevOffset = offset
	}
	for i := 0; i < n-1; i++ {
		entries[i].PacketLen = entries[i+1].Offset - entries[i].Offset
	}
	if n > 0 && entries[n-1].Offset != uint64(h.FileSize) {
		return ErrBadIndex
	}

	h.Index = entries
	return nil
}

func skipBytes(src Source, n int64) error {
	if n == 0 {
		return nil
	}
	_, err := src.Seek(n, io.SeekCurrent)
	return err
}
