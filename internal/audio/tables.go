// Package audio implements Bink's subband audio codec: per-channel
// coefficient decode against a quantizer LUT, an inverse DCT-III or RDFT
// back end depending on the track's compression flavour, and overlap-add
// cross-fade between successive blocks.
package audio

// criticalFreqs are the WMA-derived critical-band edge frequencies (Hz)
// used to size the subband quantizer bands: the smallest band count whose
// highest edge covers half the sample rate is chosen, and intermediate
// edges are mapped into frame-length coefficient indices.
var criticalFreqs = [25]uint16{
	100, 200, 300, 400, 510, 630, 770, 920,
	1080, 1270, 1480, 1720, 2000, 2320, 2700, 3150,
	3700, 4400, 5300, 6400, 7700, 9500, 12000, 15500,
	24500,
}

// rleLengthTab maps a 4-bit run-length escape code to the coefficient
// count it repeats (multiplied by 8), used by the non-revision-'b'
// coefficient-group-length encoding.
var rleLengthTab = [16]int{
	2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 32, 64,
}
