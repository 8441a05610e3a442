package compress

// Depack decompresses one LZ4 block from src into dst and returns the
// number of bytes written. len(dst) bounds the decoded output.
//
// Decoding is strictly left to right; back-references read bytes
// written earlier in the same call, and overlapping copies keep their
// byte-by-byte semantics.
func Depack(src, dst []byte) (int, error) {
	s := 0
	d := 0

	for {
		if s >= len(src) {
			return 0, ErrTruncated
		}

		token := src[s]
		s++

		// Literal run length, with 0xFF-chained extension bytes
		nlit := int(token >> 4)

		if nlit == 15 {
			for {
				if s >= len(src) {
					return 0, ErrTruncated
				}

				b := src[s]
				s++
				nlit += int(b)

				if b != 255 {
					break
				}
			}
		}

		if nlit > len(src)-s {
			return 0, ErrTruncated
		}
		if nlit > len(dst)-d {
			return 0, ErrOutputTooLarge
		}

		copy(dst[d:], src[s:s+nlit])
		s += nlit
		d += nlit

		// The final sequence carries only literals
		if s == len(src) {
			return d, nil
		}

		if len(src)-s < 2 {
			return 0, ErrTruncated
		}

		offset := int(src[s]) | int(src[s+1])<<8
		s += 2

		if offset == 0 || offset > d {
			return 0, ErrInvalidReference
		}

		matchLen := int(token & 0x0F)

		if matchLen == 15 {
			for {
				if s >= len(src) {
					return 0, ErrTruncated
				}

				b := src[s]
				s++
				matchLen += int(b)

				if b != 255 {
					break
				}
			}
		}

		matchLen += 4

		if matchLen > len(dst)-d {
			return 0, ErrOutputTooLarge
		}

		// Byte-by-byte so an offset smaller than the length
		// replicates the bytes it writes
		ref := d - offset
		for i := 0; i < matchLen; i++ {
			dst[d+i] = dst[ref+i]
		}

		d += matchLen
	}
}
