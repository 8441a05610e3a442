package matcher

// BuildChains threads the positions [0, last] of in through prev, so
// that following prev from any position yields strictly decreasing
// positions whose four leading bytes hash alike.
//
// lookup must hold at least 1<<bits entries and prev one entry per
// chained position; both are reinitialized here. Hash collisions are
// not filtered, callers verify bytes at match time.
func BuildChains(in []byte, prev, lookup []uint32, last int, bits uint) {
	lookup = lookup[:1<<bits]
	for i := range lookup {
		lookup[i] = NoMatch
	}

	for i := 0; i <= last; i++ {
		hash := Hash4(in, i, bits)
		prev[i] = lookup[hash]
		lookup[hash] = uint32(i)
	}
}
