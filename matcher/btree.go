package matcher

import (
	"github.com/jibsen/blz4/simd"
)

// Tree maintains one binary search tree per hash bucket, ordered by
// the lexicographic order of the suffixes in the bucket. Each position
// owns two consecutive child slots in nodes.
//
// Inserting a position re-roots its bucket's tree at that position
// while descending from the previous root, which keeps recently
// inserted (closest) positions near the root. This does not give
// balanced trees on all inputs, but often works well in practice, and
// visits candidate matches from the closest and back. The same scheme
// is found in LZMA, libdeflate, and other libraries.
type Tree struct {
	in     []byte
	nodes  []uint32 // left and right child slot per position
	lookup []uint32 // tree root per hash bucket
	bits   uint
}

// NewTree returns a tree over in using the caller-owned nodes and
// lookup arrays. nodes needs two entries per position and lookup
// 1<<bits entries; lookup is reinitialized here.
func NewTree(in []byte, nodes, lookup []uint32, bits uint) Tree {
	lookup = lookup[:1<<bits]
	for i := range lookup {
		lookup[i] = NoMatch
	}

	return Tree{in: in, nodes: nodes, lookup: lookup, bits: bits}
}

// InsertFind inserts cur as the new root of its bucket and returns the
// position and length of the longest match encountered on the way
// down, or (-1, 3) if there is none.
//
// Match lengths are compared up to lenLimit. The descent stops at a
// leaf, after maxDepth nodes, past MaxDistance, or once a match
// reaches acceptLen or lenLimit. When searching is false the tree is
// still updated but no candidates are collected.
func (t *Tree) InsertFind(cur, lenLimit, acceptLen, maxDepth int, searching bool) (int, int) {
	in := t.in

	hash := Hash4(in, cur, t.bits)
	pos := t.lookup[hash]
	t.lookup[hash] = uint32(cur)

	// ltNode collects positions lexicographically less than cur,
	// gtNode those greater; they start at cur's own child slots.
	ltNode := 2 * cur
	gtNode := 2*cur + 1
	ltLen := 0
	gtLen := 0

	bestPos := -1
	bestLen := MinMatch - 1

	depth := maxDepth

	for {
		// At the bottom of the tree, mark leaf nodes. In case we
		// ran out of depth, this also prunes the subtree we have
		// not searched and do not know where belongs.
		if pos == NoMatch || cur-int(pos) > MaxDistance {
			t.nodes[ltNode] = NoMatch
			t.nodes[gtNode] = NoMatch

			break
		}
		if depth == 0 {
			t.nodes[ltNode] = NoMatch
			t.nodes[gtNode] = NoMatch

			break
		}
		depth--

		p := int(pos)

		// The string at p is lexicographically greater than a
		// string that matched in the first ltLen positions, and
		// less than a string that matched in the first gtLen
		// positions, so it matches at least the minimum of these.
		length := ltLen
		if gtLen < length {
			length = gtLen
		}

		length += simd.MatchLen(in[p+length:p+lenLimit], in[cur+length:cur+lenLimit])

		if searching && length > bestLen {
			bestPos = p
			bestLen = length
		}

		// If we reach the maximum match length, the string at p
		// equals cur, so we can adopt its subtrees. This removes
		// p from the tree, but cur is equal and closer for any
		// future match.
		if length >= acceptLen || length == lenLimit {
			t.nodes[ltNode] = t.nodes[2*p]
			t.nodes[gtNode] = t.nodes[2*p+1]

			break
		}

		// Re-root while descending: if the string at p is less
		// than cur, everything in p's left subtree is less than
		// cur as well, so p becomes the new ltNode and the search
		// continues in its right subtree. Symmetrically for
		// greater.
		if in[p+length] < in[cur+length] {
			t.nodes[ltNode] = pos
			ltNode = 2*p + 1
			pos = t.nodes[ltNode]
			ltLen = length
		} else {
			t.nodes[gtNode] = pos
			gtNode = 2 * p
			pos = t.nodes[gtNode]
			gtLen = length
		}
	}

	return bestPos, bestLen
}
