package video

import (
	"github.com/binkstream/bink/internal/bitio"
	"github.com/binkstream/bink/internal/container"
	"github.com/binkstream/bink/internal/huffman"
)

// ColorDecoder owns the sixteen column-Huffman trees and the running
// high-nibble prediction state used to decode the COLORS bundle.
type ColorDecoder struct {
	bundle   Bundle
	colHigh  [16]*huffman.Tree
	lastHigh int
}

// NewColorDecoder allocates a COLORS bundle of capacity bytes.
// PlaneDecoder passes 64 bytes per block, since a RAW block consumes 64
// colours.
func NewColorDecoder(capacity int) *ColorDecoder {
	return &ColorDecoder{bundle: Bundle{data: make([]byte, capacity)}}
}

// ReadTrees reads the bundle's own low-nibble tree plus the sixteen
// col_high trees, one per possible high-nibble prediction context.
func (c *ColorDecoder) ReadTrees(r *bitio.Reader) error {
	if err := c.bundle.ReadTree(r); err != nil {
		return err
	}
	for i := range c.colHigh {
		tree, err := huffman.ReadTreeHeader(r)
		if err != nil {
			return err
		}
		c.colHigh[i] = tree
	}
	return nil
}

// SetLenBits forwards to the underlying bundle.
func (c *ColorDecoder) SetLenBits(blocksWide int) { c.bundle.SetLenBits(blocksWide) }

// Reset rewinds the bundle's read/decode cursors and the nibble
// prediction state for a new plane pass.
func (c *ColorDecoder) Reset() {
	c.bundle.Reset()
	c.lastHigh = 0
}

// Fill is the COLORS bundle's row producer: the high nibble
// is decoded through col_high[col_lastval], the low nibble through the
// bundle's own tree; for revision < 'i' the assembled byte is treated as
// signed, folded by its sign mask, and re-biased by 0x80.
func (c *ColorDecoder) Fill(r *bitio.Reader, rev container.Revision) error {
	if !c.bundle.needsFill() {
		return nil
	}
	t, err := c.bundle.fillCount(r)
	if err != nil {
		return err
	}
	if t == 0 {
		c.bundle.disabled = true
		return nil
	}
	fillMode, err := r.GetBit()
	if err != nil {
		return err
	}
	if fillMode != 0 {
		v, err := c.decodeOne(r)
		if err != nil {
			return err
		}
		v = c.postprocess(v, rev)
		for i := 0; i < t; i++ {
			if err := c.bundle.push(v); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i < t; i++ {
		v, err := c.decodeOne(r)
		if err != nil {
			return err
		}
		v = c.postprocess(v, rev)
		if err := c.bundle.push(v); err != nil {
			return err
		}
	}
	return nil
}

// decodeOne decodes one colour byte: high nibble from col_high[lastHigh],
// low nibble from the bundle's own tree.
func (c *ColorDecoder) decodeOne(r *bitio.Reader) (byte, error) {
	high, err := c.colHigh[c.lastHigh].Decode(r)
	if err != nil {
		return 0, err
	}
	low, err := c.bundle.tree.Decode(r)
	if err != nil {
		return 0, err
	}
	c.lastHigh = int(high)
	return byte(high<<4 | low), nil
}

// postprocess applies the historical sign-magnitude re-bias used before
// revision 'i'.
func (c *ColorDecoder) postprocess(v byte, rev container.Revision) byte {
	if rev.HasAlphaSkipPrefix() {
		return v
	}
	signed := int8(v)
	mask := int8(signed >> 7)
	folded := (int(v&0x7f) ^ int(mask)) - int(mask)
	return byte(folded + 0x80)
}

// Next consumes and returns the next decoded colour byte.
func (c *ColorDecoder) Next() (byte, bool) { return c.bundle.Next() }
