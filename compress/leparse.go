package compress

import (
	"math"

	"github.com/jibsen/blz4/matcher"
	"github.com/jibsen/blz4/simd"
)

// leparseWorkmemSize returns the number of uint32 words the backwards
// parse needs for srcSize bytes of input.
func leparseWorkmemSize(srcSize int) int {
	if lookupSize < 2*srcSize {
		return 3 * srcSize
	}
	return srcSize + lookupSize
}

// packLEParse compresses src into dst with a backwards dynamic
// programming parse over hash chains, extending chosen matches to the
// left, and returns the compressed size.
//
// With a bit of careful ordering the arrays fit in 3 * srcSize words
// of workmem. The lookup table is only used in the first phase to
// build the hash chains, so it overlaps mpos and mlen. And since prev
// is consumed from right to left in the second phase, in the same
// order cost is filled in, cost overlaps prev. cost uses srcSize+1
// elements, with mpos placed after it, where the first element is not
// needed until the phases are over.
func packLEParse(src, dst []byte, workmem []uint32, maxDepth, acceptLen int) int {
	in := src
	n := len(src)

	// Empty input packs to a single zero token
	if n == 0 {
		dst[0] = 0
		return 1
	}

	// Input without room for a match is all literals
	if n < endMatchLimit+1 {
		dst[0] = byte(n << 4)
		copy(dst[1:], in)
		return 1 + n
	}

	lastMatchPos := n - endMatchLimit

	prev := workmem[0:n]
	mpos := workmem[n : 2*n]
	mlen := workmem[2*n : 3*n]
	cost := workmem[0 : n+1]
	lookup := workmem[n:]

	// Phase 1: build hash chains
	bits := uint(hashBits)
	if 2*n >= lookupSize {
		bits = log2(n)
	}

	matcher.BuildChains(in, prev, lookup, lastMatchPos, bits)

	// Initialize the last eleven positions as literals
	for i := 1; i < endMatchLimit; i++ {
		mlen[n-i] = 1
		mpos[n-i] = uint32(i)
		cost[n-i] = uint32(i)
	}
	cost[n] = 0

	// Phase 2: find the lowest cost path from each position to the end
	for cur := lastMatchPos; cur > 0; cur-- {
		// The chains were built to the end in the first phase, so
		// the previous position comes from prev directly, without
		// hashing.
		pos := prev[cur]

		// Start with a literal.
		//
		// For a run of literals, mpos holds the number of literals
		// from the current position up to the next match. The
		// marginal cost of one more literal includes the change in
		// encoding the length of that run.
		if mlen[cur+1] == 1 {
			cost[cur] = 1 + cost[cur+1] - literalCost(mpos[cur+1]) + literalCost(mpos[cur+1]+1)
			mlen[cur] = 1
			mpos[cur] = mpos[cur+1] + 1
		} else {
			cost[cur] = 1 + cost[cur+1]
			mlen[cur] = 1
			mpos[cur] = 1
		}

		maxLen := 3

		lenLimit := n - cur - endLiterals
		numChain := maxDepth

		// Walk the chain of earlier positions with the same hash
		for pos != matcher.NoMatch && numChain > 0 {
			numChain--

			p := int(pos)

			if cur-p > matcher.MaxDistance {
				break
			}

			length := 0

			// Only measure if this can be a longer match
			if maxLen < lenLimit && in[p+maxLen] == in[cur+maxLen] {
				length = simd.MatchLen(in[p:p+lenLimit], in[cur:cur+lenLimit])
			}

			// Matches are visited from the closest and back, so
			// for any length already attainable by a nearer
			// match, this one cannot encode shorter. Only the
			// extension beyond maxLen carries information.
			if length > maxLen {
				minCost := uint32(math.MaxUint32)
				minCostLen := 3

				// Find the lowest cost match length
				for i := maxLen + 1; i <= length; i++ {
					costHere := matchCost(i) + cost[cur+i]

					if costHere < minCost {
						minCost = costHere
						minCostLen = i
					}
				}

				maxLen = length

				if minCost < cost[cur] {
					cost[cur] = minCost
					mpos[cur] = uint32(p)
					mlen[cur] = uint32(minCostLen)

					// Extend the chosen match to the left while
					// the preceding bytes still agree, updating
					// each covered position directly. The outer
					// loop resumes below the extended match.
					if p > 0 && in[p-1] == in[cur-1] {
						for {
							cur--
							p--
							minCostLen++

							cost[cur] = matchCost(minCostLen) + cost[cur+minCostLen]
							mpos[cur] = uint32(p)
							mlen[cur] = uint32(minCostLen)

							if p == 0 || in[p-1] != in[cur-1] {
								break
							}
						}
						break
					}
				}
			}

			if length >= acceptLen || length == lenLimit {
				break
			}

			pos = prev[p]
		}
	}

	mpos[0] = 0
	mlen[0] = 1

	// Phase 3: output the sequences along the lowest cost path
	d := 0

	for i := 0; i < n; {
		litStart := i

		for i < n && mlen[i] == 1 {
			i++
		}

		if i == n {
			d = emitSequence(dst, d, in[litStart:i], 0, 0)
			break
		}

		d = emitSequence(dst, d, in[litStart:i], i-int(mpos[i]), int(mlen[i]))
		i += int(mlen[i])
	}

	return d
}
