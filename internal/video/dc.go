package video

import "github.com/binkstream/bink/internal/bitio"

// DCOverflow is a DecodingError cause: the running DC accumulator moved
// outside the representable int16 range.
type DCOverflow struct{}

func (DCOverflow) Error() string { return "bink: dc accumulator overflow" }

// DCBundle decodes INTRA_DC / INTER_DC: a blocked delta stream, header
// value width, then groups of 8 values each prefixed by a 4-bit group
// bit-width. Like the plain bundles, each row producer call first reads
// its own per-row value count from the bitstream at lenBits width.
type DCBundle struct {
	values      []int32
	pos         int
	disabled    bool
	lenBits     int
	startBits   int
	signed      bool
	accumulator int32
}

// NewDCBundle allocates a DC value stream for up to n blocks. startBits
// is the combined magnitude+sign width (11 for both INTRA_DC and
// INTER_DC); signed reports whether a trailing sign bit follows the
// header's magnitude.
func NewDCBundle(n, startBits int, signed bool) *DCBundle {
	return &DCBundle{values: make([]int32, 0, n), startBits: startBits, signed: signed}
}

// Reset clears the decoded stream and running accumulator for a new plane
// pass.
func (d *DCBundle) Reset() {
	d.values = d.values[:0]
	d.pos = 0
	d.accumulator = 0
	d.disabled = false
}

// needsFill mirrors Bundle.needsFill: skip producing more values this row
// if the consumer hasn't caught up to the last row's production yet.
func (d *DCBundle) needsFill() bool {
	return !d.disabled && d.pos >= len(d.values)
}

// Decode reads this row's value count, then that many DC values,
// accumulating deltas group by group.
func (d *DCBundle) Decode(r *bitio.Reader) error {
	if !d.needsFill() {
		return nil
	}
	rawCount, err := r.GetBits(d.lenBits)
	if err != nil {
		return err
	}
	count := int(rawCount)
	if count == 0 {
		d.disabled = true
		return nil
	}

	magBits := d.startBits
	if d.signed {
		magBits--
	}
	header, err := r.GetBits(magBits)
	if err != nil {
		return err
	}
	d.accumulator = int32(header)
	if d.signed && header != 0 {
		if sign, err := r.GetBit(); err != nil {
			return err
		} else if sign != 0 {
			d.accumulator = -d.accumulator
		}
	}
	if err := d.emit(); err != nil {
		return err
	}

	for produced := 1; produced < count; {
		bsize, err := r.GetBits(4)
		if err != nil {
			return err
		}
		groupLen := 8
		if produced+groupLen > count {
			groupLen = count - produced
		}
		for i := 0; i < groupLen; i++ {
			if bsize != 0 {
				mag, err := r.GetBits(int(bsize))
				if err != nil {
					return err
				}
				sign, err := r.GetBit()
				if err != nil {
					return err
				}
				delta := int32(mag)
				if sign != 0 {
					delta = -delta
				}
				d.accumulator += delta
			}
			if err := d.emit(); err != nil {
				return err
			}
			produced++
		}
	}
	return nil
}

func (d *DCBundle) emit() error {
	if d.accumulator > 32767 || d.accumulator < -32768 {
		return DCOverflow{}
	}
	d.values = append(d.values, d.accumulator)
	return nil
}

// Next consumes and returns the next decoded DC value.
func (d *DCBundle) Next() (int32, bool) {
	if d.pos >= len(d.values) {
		return 0, false
	}
	v := d.values[d.pos]
	d.pos++
	return v, true
}
