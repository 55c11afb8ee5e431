package video

import (
	"math/bits"

	"github.com/binkstream/bink/internal/bitio"
	"github.com/binkstream/bink/internal/container"
	"github.com/binkstream/bink/internal/dsp"
)

// PlaneDecoder drives one plane's macroblock grid: the nine entropy
// bundles it owns, filled a row at a time, and the block-mode dispatch
// that turns their symbols into pixels.
type PlaneDecoder struct {
	blockTypes    *Bundle
	subBlockTypes *Bundle
	colors        *ColorDecoder
	pattern       *Bundle
	xOff          *MotionBundle
	yOff          *MotionBundle
	intraDC       *DCBundle
	interDC       *DCBundle
	run           *Bundle

	bw, bh int
}

// NewPlaneDecoder allocates a plane decoder sized for a plane bw blocks
// wide by bh blocks tall.
func NewPlaneDecoder(bw, bh int) *PlaneDecoder {
	n := bw * bh
	return &PlaneDecoder{
		blockTypes:    NewBundle(n),
		subBlockTypes: NewBundle(n),
		colors:        NewColorDecoder(n * 64),
		pattern:       NewBundle(n * 8),
		xOff:          NewMotionBundle(n),
		yOff:          NewMotionBundle(n),
		intraDC:       NewDCBundle(n, dcStartBits, false),
		interDC:       NewDCBundle(n, dcStartBits, true),
		run:           NewBundle(n * 64),
		bw:            bw,
		bh:            bh,
	}
}

// dcStartBits is the header value width for both INTRA_DC and INTER_DC;
// INTER_DC additionally reads a sign bit, handled by DCBundle.signed.
const dcStartBits = 11

// setLenBits derives every bundle's per-row value-count width from plane
// geometry, matching the distinct av_log2 formulas the container uses per
// bundle. Each width is av_log2(x)+1, which is bits.Len(x).
func (p *PlaneDecoder) setLenBits(width int) {
	widthLen := bits.Len(uint((width >> 3) + 511))
	p.blockTypes.lenBits = widthLen
	p.subBlockTypes.lenBits = bits.Len(uint((width >> 4) + 511))
	p.colors.SetLenBits(p.bw * 64)
	p.pattern.lenBits = bits.Len(uint((p.bw << 3) + 511))
	p.xOff.bundle.lenBits = widthLen
	p.yOff.bundle.lenBits = widthLen
	p.intraDC.lenBits = widthLen
	p.interDC.lenBits = widthLen
	p.run.lenBits = bits.Len(uint(p.bw*48 + 511))
}

// readTrees reads the tree headers of the seven Huffman-coded bundles (the
// two DC bundles have none); COLORS reads seventeen, its own plus the
// sixteen col_high prediction trees.
func (p *PlaneDecoder) readTrees(r *bitio.Reader) error {
	if err := p.blockTypes.ReadTree(r); err != nil {
		return err
	}
	if err := p.subBlockTypes.ReadTree(r); err != nil {
		return err
	}
	if err := p.colors.ReadTrees(r); err != nil {
		return err
	}
	if err := p.pattern.ReadTree(r); err != nil {
		return err
	}
	if err := p.xOff.ReadTree(r); err != nil {
		return err
	}
	if err := p.yOff.ReadTree(r); err != nil {
		return err
	}
	if err := p.run.ReadTree(r); err != nil {
		return err
	}
	return nil
}

func (p *PlaneDecoder) reset() {
	p.blockTypes.Reset()
	p.subBlockTypes.Reset()
	p.colors.Reset()
	p.pattern.Reset()
	p.xOff.Reset()
	p.yOff.Reset()
	p.intraDC.Reset()
	p.interDC.Reset()
	p.run.Reset()
}

// fillRow runs every bundle's row producer once, matching the call order
// decodePlane uses at the top of each macroblock row.
func (p *PlaneDecoder) fillRow(r *bitio.Reader, rev container.Revision) error {
	if err := p.blockTypes.FillBlockTypes(r, rev); err != nil {
		return err
	}
	if err := p.subBlockTypes.FillBlockTypes(r, rev); err != nil {
		return err
	}
	if err := p.colors.Fill(r, rev); err != nil {
		return err
	}
	if err := p.pattern.FillPlain(r); err != nil {
		return err
	}
	if err := p.xOff.Fill(r); err != nil {
		return err
	}
	if err := p.yOff.Fill(r); err != nil {
		return err
	}
	if err := p.intraDC.Decode(r); err != nil {
		return err
	}
	if err := p.interDC.Decode(r); err != nil {
		return err
	}
	if err := p.run.FillPlain(r); err != nil {
		return err
	}
	return nil
}

// DecodePlane decodes one plane's macroblock grid into current, reading
// block types and residual data from r and predicting from prev (the
// previous frame's same plane). revision gates the whole-plane fill
// shortcut and the BLOCK_TYPES XOR.
func (p *PlaneDecoder) DecodePlane(r *bitio.Reader, rev container.Revision, current, prev *Plane, width int) error {
	if rev.HasWholePlaneFill() {
		bit, err := r.GetBit()
		if err != nil {
			return err
		}
		if bit != 0 {
			v, err := r.GetBits(8)
			if err != nil {
				return err
			}
			current.Fill(byte(v))
			return r.Align32()
		}
	}

	p.setLenBits(width)
	if err := p.readTrees(r); err != nil {
		return err
	}
	p.reset()

	ctx := &blockCtx{
		colors:  p.colors,
		pattern: p.pattern,
		xOff:    p.xOff,
		yOff:    p.yOff,
		intraDC: p.intraDC,
		interDC: p.interDC,
		run:     p.run,
		prev:    prev,
		intraQ:  &dsp.IntraQuant,
		interQ:  &dsp.InterQuant,
	}

	var dst [64]byte
	for by := 0; by < p.bh; by++ {
		if err := p.fillRow(r, rev); err != nil {
			return err
		}

		for bx := 0; bx < p.bw; bx++ {
			rawType, ok := p.blockTypes.Next()
			if !ok {
				return ErrUnknownBlockType
			}
			blk := BlockType(rawType)

			if by&1 != 0 && blk == BlockScaled {
				bx++
				continue
			}

			isScaled := false
			if blk == BlockScaled {
				sub, ok := p.subBlockTypes.Next()
				if !ok {
					return ErrUnknownBlockType
				}
				blk = BlockType(sub)
				if blk == BlockScaled || blk == BlockMotion {
					return ErrUnsupportedSuperblock
				}
				isScaled = true
			}

			if err := decodeBlock(r, ctx, blk, bx, by, &dst); err != nil {
				return err
			}

			if isScaled {
				current.PutScaledBlock(bx, by, &dst)
				bx++
			} else {
				current.PutBlock8x8(bx, by, &dst)
			}
		}
	}

	return r.Align32()
}
