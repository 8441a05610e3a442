package compress

// literalCost returns the number of extension bytes needed after the
// token to encode a run of nlit literals. The literal bytes themselves
// are paid one-for-one.
func literalCost(nlit uint32) uint32 {
	var cost uint32

	for nlit >= 15+255 {
		cost++
		nlit -= 255
	}
	if nlit >= 15 {
		cost++
	}

	return cost
}

// matchCost returns the encoded size of a match of the given length,
// including its one-byte token share and two offset bytes.
func matchCost(length int) uint32 {
	cost := uint32(1 + 2)

	for length >= 19+255 {
		cost++
		length -= 255
	}
	if length >= 19 {
		cost++
	}

	return cost
}
