// Package container implements Bink's file header, frame index table, and
// revision-gated feature flags.
package container

import "encoding/binary"

// FourCC packs four bytes into a little-endian tag value, matching how
// the magic is laid out on disk (byte 0 is the least significant byte).
func FourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// Magic tag prefixes. The trailing revision byte of each magic selects
// the behavioural variant (§3).
var (
	TagBIK = FourCC('B', 'I', 'K', 0)
	TagKB2 = FourCC('K', 'B', '2', 0)
)

// Revision is the single ASCII byte embedded in the magic that gates
// behavioural variants.
type Revision byte

const (
	RevisionB Revision = 'b' // earliest revision, unsupported
	RevisionH Revision = 'h' // enables plane swap for U/V
	RevisionI Revision = 'i' // enables 32-bit alpha-skip prefixes, removes colour sign transform
	RevisionJ Revision = 'j'
	RevisionK Revision = 'k' // enables whole-plane fill and type-XOR with 0xBB
)

// SwapsChroma reports whether this revision swaps the U/V plane order.
func (r Revision) SwapsChroma() bool { return r == RevisionH }

// HasAlphaSkipPrefix reports whether this revision reads a 32-bit
// alpha-skip prefix and drops the colour sign transform.
func (r Revision) HasAlphaSkipPrefix() bool { return r >= RevisionI }

// HasWholePlaneFill reports whether this revision enables whole-plane
// fill and XORs block types with 0xBB.
func (r Revision) HasWholePlaneFill() bool { return r == RevisionK }

// Rejected reports whether this revision is explicitly unsupported.
func (r Revision) Rejected() bool { return r == RevisionB }

// Video flag bits.
const (
	FlagAlpha uint32 = 1 << 0
)

// Index entry layout: the low bit of the stored offset is repurposed as
// a keyframe marker.
const indexKeyframeBit = uint64(1)

// DecodeIndexOffset splits a raw index entry into its byte offset and
// keyframe flag.
func DecodeIndexOffset(raw uint64) (offset uint64, keyframe bool) {
	return raw &^ indexKeyframeBit, raw&indexKeyframeBit != 0
}

// HeaderSize is the fixed-layout portion of the file header: magic plus
// ten 32-bit fields (file_size_minus8, duration, max_frame_size, unused,
// width, height, fps_num, fps_den, flags, num_audio).
const HeaderSize = 4 + 10*4

// AudioTrackFlagsSize is the size of one packed {sample_rate, flags}
// pair in the per-track audio descriptor array.
const AudioTrackFlagsSize = 4

// AudioTrackIDSize is the size of one track-id entry in the per-track
// audio descriptor array.
const AudioTrackIDSize = 4

// Audio track flag bits.
const (
	AudioFlagStereo uint16 = 0x2000
	AudioFlagUseDCT uint16 = 0x1000
)

// MaxPacketSize bounds a single frame packet's declared size; used to
// reject corrupt index entries before trusting them for a seek.
const MaxPacketSize = 1 << 28

// ReadLE16 reads a little-endian uint16 from data.
func ReadLE16(data []byte) uint16 { return binary.LittleEndian.Uint16(data) }

// ReadLE32 reads a little-endian uint32 from data.
func ReadLE32(data []byte) uint32 { return binary.LittleEndian.Uint32(data) }

// ReadLE64 reads a little-endian uint64 from data.
func ReadLE64(data []byte) uint64 { return binary.LittleEndian.Uint64(data) }
