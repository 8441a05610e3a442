package compress

import (
	"math"

	"github.com/jibsen/blz4/matcher"
)

// btparseWorkmemSize returns the number of uint32 words the forwards
// parse needs for srcSize bytes of input. The arrays cannot be
// overlapped in a forwards parse, so this is larger than the backwards
// parse.
func btparseWorkmemSize(srcSize int) int {
	return 5*srcSize + 3 + lookupSize
}

// packBTParse compresses src into dst with a forwards dynamic
// programming parse, checking all matches the per-hash binary search
// trees reach, and returns the compressed size.
func packBTParse(src, dst []byte, workmem []uint32, maxDepth, acceptLen int) int {
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

	cost := workmem[0 : n+1]
	mpos := workmem[n+1 : 2*(n+1)]
	mlen := workmem[2*(n+1) : 3*(n+1)]
	nodes := workmem[3*(n+1) : 3*(n+1)+2*n]
	lookup := workmem[3*(n+1)+2*n : 3*(n+1)+2*n+lookupSize]

	tree := matcher.NewTree(in, nodes, lookup, hashBits)

	// Initialize to all literals with infinite cost
	for i := 0; i <= n; i++ {
		cost[i] = math.MaxUint32
		mlen[i] = 1
		mpos[i] = 0
	}

	cost[0] = 0

	// relaxLiteral extends the lowest cost path arriving at cur by
	// one literal. For a run of literals, mpos holds the number of
	// literals up to the current position, so the marginal cost
	// includes the change in encoding the length of that run.
	relaxLiteral := func(cur int) {
		if mlen[cur] == 1 {
			litCost := 1 + literalCost(mpos[cur]+1) - literalCost(mpos[cur])

			if cost[cur+1] > cost[cur]+litCost {
				cost[cur+1] = cost[cur] + litCost
				mlen[cur+1] = 1
				mpos[cur+1] = mpos[cur] + 1
			}
		} else if cost[cur+1] > cost[cur]+1 {
			cost[cur+1] = cost[cur] + 1
			mlen[cur+1] = 1
			mpos[cur+1] = 1
		}
	}

	// Next position where matches are checked. Once a match of at
	// least acceptLen is found, the positions it covers still update
	// the trees but skip the match search.
	nextMatchCur := 0

	// Phase 1: find the lowest cost path arriving at each position
	for cur := 0; cur <= lastMatchPos; cur++ {
		relaxLiteral(cur)

		if cur > nextMatchCur {
			nextMatchCur = cur
		}

		searching := cur == nextMatchCur

		// When checking matches, allow lengths up to the end of
		// the input, otherwise compare only up to acceptLen.
		lenLimit := n - cur - endLiterals
		if !searching && acceptLen < lenLimit {
			lenLimit = acceptLen
		}

		bestPos, bestLen := tree.InsertFind(cur, lenLimit, acceptLen, maxDepth, searching)

		if bestPos < 0 {
			continue
		}

		if bestLen >= acceptLen {
			nextMatchCur = cur + bestLen
		}

		// Update costs for the longest match found.
		//
		// If the match is longer than 18, shortening it by up to
		// 255 saves one byte of length encoding. The best the
		// freed bytes can do is join a following match through
		// left-extension, which pays for at most 254 of them
		// before its own length encoding grows a byte. So only
		// the last 255 possible lengths need checking.
		//
		// This optimization is from lz4x by Ilya Muravyov.
		minLen := matcher.MinMatch
		if bestLen > 254+matcher.MinMatch {
			minLen = bestLen - 254
		}

		for i := minLen; i <= bestLen; i++ {
			costThere := cost[cur] + matchCost(i)

			// Between a literal and a match arriving at the
			// same cost, prefer the match, since it also
			// encodes the length of any literals before it.
			if costThere < cost[cur+i] ||
				(mlen[cur+i] == 1 && costThere == cost[cur+i]) {
				cost[cur+i] = costThere
				mpos[cur+i] = uint32(bestPos)
				mlen[cur+i] = uint32(i)
			}
		}
	}

	for cur := lastMatchPos + 1; cur < n; cur++ {
		relaxLiteral(cur)
	}

	// Phase 2: follow the lowest cost path backwards, gathering the
	// sequence of tokens at the tail end of mlen and mpos.
	nextToken := n

	for cur := n; cur > 0; {
		step := int(mlen[cur])

		mlen[nextToken] = mlen[cur]
		mpos[nextToken] = mpos[cur]

		cur -= step
		nextToken--
	}

	// Phase 3: output the sequences left to right
	d := 0
	cur := 0

	for i := nextToken + 1; i <= n; {
		litStart := cur

		for i <= n && mlen[i] == 1 {
			i++
			cur++
		}

		if i > n {
			d = emitSequence(dst, d, in[litStart:cur], 0, 0)
			break
		}

		d = emitSequence(dst, d, in[litStart:cur], cur-int(mpos[i]), int(mlen[i]))
		cur += int(mlen[i])
		i++
	}

	return d
}
