package video

// zigzagScan maps a coefficient list position (the `ccoef` walked by the
// DCT list-walk in §4.6) to the raster index of the 8x8 block it belongs
// in. Index 0 is always the DC term; the table walks the block in 2x2
// cells (entries 0..3 are raster 0, 1, 8, 9) rather than a plain row-major
// zigzag.
var zigzagScan = [64]byte{
	0, 1, 8, 9, 2, 3, 10, 11, 4, 5, 12, 13, 6, 7, 14, 15,
	20, 21, 28, 29, 22, 23, 30, 31, 16, 17, 24, 25, 32, 33, 40, 41,
	34, 35, 42, 43, 48, 49, 56, 57, 50, 51, 58, 59, 18, 19, 26, 27,
	36, 37, 44, 45, 38, 39, 46, 47, 52, 53, 60, 61, 54, 55, 62, 63,
}
