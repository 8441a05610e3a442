package compress

// emitSequence appends one LZ4 sequence to dst at offset d: the token,
// any literal length extension, the literals themselves, and for
// matchLen > 0 the two offset bytes and any match length extension.
// matchLen == 0 emits the final, literal-only sequence of a block. It
// returns the new output offset.
//
// The token byte is written once the sequence is complete; dst is
// never revisited beyond that.
func emitSequence(dst []byte, d int, lits []byte, offset, matchLen int) int {
	token := d
	d++

	nlit := len(lits)
	for nlit >= 15+255 {
		dst[d] = 255
		d++
		nlit -= 255
	}
	if nlit >= 15 {
		dst[d] = byte(nlit - 15)
		d++
		nlit = 15
	}

	d += copy(dst[d:], lits)

	if matchLen == 0 {
		dst[token] = byte(nlit << 4)
		return d
	}

	dst[d] = byte(offset)
	dst[d+1] = byte(offset >> 8)
	d += 2

	length := matchLen
	for length >= 19+255 {
		dst[d] = 255
		d++
		length -= 255
	}
	if length >= 19 {
		dst[d] = byte(length - 19)
		d++
		length = 19
	}

	dst[token] = byte(nlit<<4 | (length - 4))

	return d
}
