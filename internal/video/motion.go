package video

import "github.com/binkstream/bink/internal/bitio"

// MotionBundle decodes X_OFF/Y_OFF: a 4-bit magnitude plus sign bit per
// value, run or streamed like the plain bundles, stored as signed bytes.
type MotionBundle struct {
	bundle Bundle
}

// NewMotionBundle allocates a motion-offset bundle sized for n blocks.
func NewMotionBundle(capacity int) *MotionBundle {
	return &MotionBundle{bundle: Bundle{data: make([]byte, capacity)}}
}

func (m *MotionBundle) ReadTree(r *bitio.Reader) error { return m.bundle.ReadTree(r) }
func (m *MotionBundle) SetLenBits(blocksWide int)      { m.bundle.SetLenBits(blocksWide) }
func (m *MotionBundle) Reset()                         { m.bundle.Reset() }

// Fill reads t values, each a 4-bit magnitude plus sign bit decoded
// through the bundle's Huffman tree, fill-mode or streamed exactly like
// FillPlain.
func (m *MotionBundle) Fill(r *bitio.Reader) error {
	if !m.bundle.needsFill() {
		return nil
	}
	t, err := m.bundle.fillCount(r)
	if err != nil {
		return err
	}
	if t == 0 {
		m.bundle.disabled = true
		return nil
	}
	fillMode, err := r.GetBit()
	if err != nil {
		return err
	}
	if fillMode != 0 {
		mag, err := r.GetBits(4)
		if err != nil {
			return err
		}
		v := int8(mag)
		sign, err := r.GetBit()
		if err != nil {
			return err
		}
		if sign != 0 {
			v = -v
		}
		for i := 0; i < t; i++ {
			if err := m.bundle.push(byte(v)); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i < t; i++ {
		v, err := m.decodeOne(r)
		if err != nil {
			return err
		}
		if err := m.bundle.push(byte(v)); err != nil {
			return err
		}
	}
	return nil
}

func (m *MotionBundle) decodeOne(r *bitio.Reader) (int8, error) {
	sym, err := m.bundle.tree.Decode(r)
	if err != nil {
		return 0, err
	}
	mag := int8(sym)
	sign, err := r.GetBit()
	if err != nil {
		return 0, err
	}
	if sign != 0 {
		mag = -mag
	}
	return mag, nil
}

// Next consumes and returns the next decoded signed offset.
func (m *MotionBundle) Next() (int8, bool) {
	v, ok := m.bundle.Next()
	return int8(v), ok
}
