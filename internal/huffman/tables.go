package huffman

// codeLengths holds the sixteen fixed code-length sets used by Bink's VLC
// decoder, selected per bundle by
// the tree header's vlc_num. Each row is a canonical prefix code over 16
// symbols, ranging from a flat 4-bit code to codes of up to 7 bits; every
// code fits within RootBits, so these tables resolve in the root table.
var codeLengths = [NumTrees][SymbolsPerTree]int{
	{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4},
	{1, 4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	{2, 2, 4, 4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	{2, 3, 3, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	{3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5, 5},
	{3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5},
	{2, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5},
	{1, 3, 3, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6},
	{1, 2, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6},
	{1, 3, 4, 4, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6},
	{2, 2, 3, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6},
	{1, 4, 4, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6},
	{2, 2, 2, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6},
	{1, 3, 3, 3, 6, 6, 6, 6, 7, 7, 7, 7, 7, 7, 7, 7},
	{1, 3, 3, 3, 5, 6, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{2, 2, 3, 3, 3, 6, 6, 6, 6, 6, 7, 7, 7, 7, 7, 7},
}

// fixedTables holds the built tables for codeLengths, created once at
// package init.
var fixedTables [NumTrees]Table

func init() {
	for i := range codeLengths {
		t, err := BuildTable(codeLengths[i][:], RootBits)
		if err != nil {
			panic("bink: invalid fixed huffman table " + string(rune('0'+i)) + ": " + err.Error())
		}
		fixedTables[i] = t
	}
}
