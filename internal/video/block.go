package video

import (
	"github.com/binkstream/bink/internal/bitio"
	"github.com/binkstream/bink/internal/dsp"
	"github.com/cockroachdb/errors"
)

// BlockType is one macroblock's coding mode, read from the BLOCK_TYPES
// (or, for a SCALED_BLOCK, SUB_BLOCK_TYPES) bundle.
type BlockType int

const (
	BlockSkip BlockType = iota
	BlockScaled
	BlockMotion
	BlockRun
	BlockResidue
	BlockIntra
	BlockFill
	BlockInter
	BlockPattern
	BlockRaw
)

// ErrUnsupportedSuperblock is raised for a nested SCALED_BLOCK or a
// scaled MOTION_BLOCK, neither of which the format produces in practice.
var ErrUnsupportedSuperblock = errors.New("bink: unsupported superblock nesting")

// ErrRunOutOfBounds is raised when a RUN block's run lengths overshoot
// the 64-pixel block.
var ErrRunOutOfBounds = errors.New("bink: run block exceeded block bounds")

// ErrUnknownBlockType is raised for a block-type symbol outside the
// ten known modes, and also when a bundle has no value left for the block
// being decoded.
var ErrUnknownBlockType = errors.New("bink: unknown block type")

// blockCtx bundles the per-row decoder state a single macroblock decode
// needs: the entropy bundles filled for this row, the previous frame's
// plane for prediction, and scratch space for the DCT path.
type blockCtx struct {
	colors   *ColorDecoder
	pattern  *Bundle
	xOff     *MotionBundle
	yOff     *MotionBundle
	intraDC  *DCBundle
	interDC  *DCBundle
	run      *Bundle
	prev     *Plane
	intraQ   *[16][64]int32
	interQ   *[16][64]int32
}

// decodeBlock decodes one macroblock of type blk at macroblock coordinates
// (bx, by) into dst, consuming whatever bundle values and raw bitstream
// bits that mode requires.
func decodeBlock(r *bitio.Reader, ctx *blockCtx, blk BlockType, bx, by int, dst *[64]byte) error {
	switch blk {
	case BlockScaled:
		return ErrUnsupportedSuperblock

	case BlockSkip:
		ctx.prev.GetBlock8x8(bx, by, dst)
		return nil

	case BlockFill:
		v, ok := ctx.colors.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		for i := range dst {
			dst[i] = v
		}
		return nil

	case BlockResidue:
		return decodeResidueBlock(r, ctx, bx, by, dst)

	case BlockIntra:
		return decodeDCTBlock(r, ctx, bx, by, dst, ctx.intraDC, ctx.intraQ, nil)

	case BlockInter:
		return decodeDCTBlock(r, ctx, bx, by, dst, ctx.interDC, ctx.interQ, predictFrom(ctx, bx, by))

	case BlockRun:
		return decodeRunBlock(r, ctx, dst)

	case BlockMotion:
		xoff, ok := ctx.xOff.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		yoff, ok := ctx.yOff.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		ctx.prev.GetPixels8x8(bx*8+int(xoff), by*8+int(yoff), dst)
		return nil

	case BlockPattern:
		return decodePatternBlock(r, ctx, dst)

	case BlockRaw:
		return decodeRawBlock(ctx, dst)

	default:
		return ErrUnknownBlockType
	}
}

// predictFrom reads the motion offset for an INTER block and returns the
// predicted 8x8 source block it residual-codes against.
func predictFrom(ctx *blockCtx, bx, by int) func() (*[64]byte, error) {
	return func() (*[64]byte, error) {
		xoff, ok := ctx.xOff.Next()
		if !ok {
			return nil, ErrUnknownBlockType
		}
		yoff, ok := ctx.yOff.Next()
		if !ok {
			return nil, ErrUnknownBlockType
		}
		var prev [64]byte
		ctx.prev.GetPixels8x8(bx*8+int(xoff), by*8+int(yoff), &prev)
		return &prev, nil
	}
}

// decodeResidueBlock handles RESIDUE_BLOCK: a motion-compensated
// prediction with a residue coded by the mask-bitplane list walk instead
// of quantised DCT coefficients.
func decodeResidueBlock(r *bitio.Reader, ctx *blockCtx, bx, by int, dst *[64]byte) error {
	xoff, ok := ctx.xOff.Next()
	if !ok {
		return ErrUnknownBlockType
	}
	yoff, ok := ctx.yOff.Next()
	if !ok {
		return ErrUnknownBlockType
	}
	var prev [64]byte
	ctx.prev.GetPixels8x8(bx*8+int(xoff), by*8+int(yoff), &prev)

	masks, err := r.GetBits(7)
	if err != nil {
		return err
	}
	var block [64]int32
	if err := DecodeResidue(r, &block, int(masks)); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = byte(int32(prev[i]) + block[i])
	}
	return nil
}

// decodeDCTBlock handles INTRA_BLOCK and INTER_BLOCK: a DC term from the
// bundle, an AC coefficient list walk dequantised against quantTable, an
// 8x8 IDCT, and (for INTER) addition onto a motion-compensated prediction.
func decodeDCTBlock(r *bitio.Reader, ctx *blockCtx, bx, by int, dst *[64]byte, dc *DCBundle, quantTable *[16][64]int32, predict func() (*[64]byte, error)) error {
	var block [64]int32
	dcVal, ok := dc.Next()
	if !ok {
		return ErrUnknownBlockType
	}
	block[0] = dcVal

	var prev *[64]byte
	if predict != nil {
		p, err := predict()
		if err != nil {
			return err
		}
		prev = p
	}

	if err := DecodeDCTCoeffs(r, &block, quantTable); err != nil {
		return err
	}
	dsp.IDCT8x8(block[:])

	if prev != nil {
		for i := range dst {
			dst[i] = byte(int32(prev[i]) + block[i])
		}
		return nil
	}
	for i := range dst {
		dst[i] = byte(block[i])
	}
	return nil
}

// decodeRunBlock handles RUN_BLOCK: a fixed pixel-scan order selected by
// a 4-bit pattern index, walked in runs whose lengths come from the RUN
// bundle and whose colours are either one shared value or individually
// streamed from the COLORS bundle.
func decodeRunBlock(r *bitio.Reader, ctx *blockCtx, dst *[64]byte) error {
	patIdx, err := r.GetBits(4)
	if err != nil {
		return err
	}
	scan := &blockPatterns[patIdx]

	i := 0
	pos := 0
	for {
		runLen, ok := ctx.run.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		run := int(runLen) + 1
		i += run
		if i > 64 {
			return ErrRunOutOfBounds
		}
		shared, err := r.GetBit()
		if err != nil {
			return err
		}
		if shared != 0 {
			v, ok := ctx.colors.Next()
			if !ok {
				return ErrUnknownBlockType
			}
			for j := 0; j < run; j++ {
				dst[scan[pos]] = v
				pos++
			}
		} else {
			for j := 0; j < run; j++ {
				v, ok := ctx.colors.Next()
				if !ok {
					return ErrUnknownBlockType
				}
				dst[scan[pos]] = v
				pos++
			}
		}
		if i >= 63 {
			break
		}
	}
	if i == 63 {
		v, ok := ctx.colors.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		dst[scan[pos]] = v
	}
	return nil
}

// decodePatternBlock handles PATTERN_BLOCK: a two-colour palette and one
// 8-bit row mask per row selecting, bit by bit, which of the two colours
// each pixel takes.
func decodePatternBlock(r *bitio.Reader, ctx *blockCtx, dst *[64]byte) error {
	var col [2]byte
	for i := range col {
		v, ok := ctx.colors.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		col[i] = v
	}
	for row := 0; row < 8; row++ {
		v, ok := ctx.pattern.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		mask := v
		for col2 := 0; col2 < 8; col2++ {
			dst[row*8+col2] = col[mask&1]
			mask >>= 1
		}
	}
	return nil
}

// decodeRawBlock handles RAW_BLOCK: 64 uncoded pixels copied directly
// out of the COLORS bundle's byte stream.
func decodeRawBlock(ctx *blockCtx, dst *[64]byte) error {
	for i := range dst {
		v, ok := ctx.colors.Next()
		if !ok {
			return ErrUnknownBlockType
		}
		dst[i] = v
	}
	return nil
}
