package dsp

import "math"

// NumQuantIndices is the number of entries in each quant step table,
// indexed by the 4-bit quant field read alongside a block's coefficients.
// IntraQuant and InterQuant (in intra_quant.go / inter_quant.go) each hold
// one 64-entry per-coefficient table per index.
const NumQuantIndices = 16

// Dequant reverses integer quantisation for one coefficient: out = (in *
// quant) >> 11, where quant is the table entry for the coefficient's scan
// position at the block's quant index.
func Dequant(coeff int32, quant int32) int32 {
	return (coeff * quant) >> 11
}

// AudioQuantIndices is the width of the per-band audio dequantisation
// table: quant_table[i] = exp(i * 0.15289...) * root. Each audio stream
// builds its table once, from its own root scale.
const AudioQuantIndices = 96

const audioQuantExp = 0.15289164787221953823

// AudioQuantTable returns the 96-entry dequantisation LUT for a given
// per-track root scale; the caller clamps indices to 95 before lookup.
func AudioQuantTable(root float64) [AudioQuantIndices]float64 {
	var t [AudioQuantIndices]float64
	for i := range t {
		t[i] = math.Exp(float64(i)*audioQuantExp) * root
	}
	return t
}
