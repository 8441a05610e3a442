package compress

import "math"

// The optimal parser is the tree parser with the depth and accept
// limits removed, so every position weighs every match the trees can
// reach. On repetitive inputs this can take a very long time.

// ssparseWorkmemSize returns the number of uint32 words the optimal
// parse needs for srcSize bytes of input.
func ssparseWorkmemSize(srcSize int) int {
	return btparseWorkmemSize(srcSize)
}

// packSSParse compresses src into dst with the optimal parse and
// returns the compressed size.
func packSSParse(src, dst []byte, workmem []uint32) int {
	return packBTParse(src, dst, workmem, math.MaxInt, math.MaxInt)
}
