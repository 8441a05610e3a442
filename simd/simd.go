// Package simd provides architecture-tuned primitives shared by the
// match finders, along with the CPU feature detection used to select
// between them.
package simd

import (
	"encoding/binary"
	"math/bits"
	"runtime"
	"sync"
)

// CPU architecture and feature detection
var (
	// Architecture flags
	isAMD64 = runtime.GOARCH == "amd64"
	isARM64 = runtime.GOARCH == "arm64"

	// Feature flags
	hasSSE2          bool
	hasNEON          bool
	hasFastUnaligned bool

	// Initialization
	detectOnce sync.Once
)

// Implementation types
const (
	ImplGeneric = iota // Pure Go bytewise implementation
	ImplWide           // 8-byte wide compares via unaligned loads
)

// Features represents CPU feature flags
type Features struct {
	HasSSE2          bool
	HasNEON          bool
	HasFastUnaligned bool
}

// DetectFeatures initializes CPU feature detection
func DetectFeatures() Features {
	detectOnce.Do(detectCPUFeatures)

	return Features{
		HasSSE2:          hasSSE2,
		HasNEON:          hasNEON,
		HasFastUnaligned: hasFastUnaligned,
	}
}

// detectCPUFeatures performs CPU feature detection
func detectCPUFeatures() {
	// Both 64-bit mainstream architectures handle unaligned loads
	// efficiently; everything else uses the bytewise path.
	if isAMD64 || isARM64 {
		hasFastUnaligned = true
	}

	// Call architecture-specific detection
	// This function is implemented in CPU-specific files with build tags
	detectCPUFeaturesImpl()
}

// BestImplementation returns the best implementation available on this CPU
func BestImplementation() int {
	DetectFeatures()

	if hasFastUnaligned {
		return ImplWide
	}

	return ImplGeneric
}

// ImplementationName returns a string name for the implementation type
func ImplementationName(impl int) string {
	switch impl {
	case ImplGeneric:
		return "Generic"
	case ImplWide:
		return "Wide"
	default:
		return "Unknown"
	}
}

// MatchLen returns the length of the common prefix of a and b.
//
// It is the hot loop of every match finder, so the wide path compares
// 8 bytes at a time and locates the first differing byte with a
// trailing-zero count.
func MatchLen(a, b []byte) int {
	detectOnce.Do(detectCPUFeatures)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0

	if hasFastUnaligned {
		for i+8 <= n {
			x := binary.LittleEndian.Uint64(a[i:])
			y := binary.LittleEndian.Uint64(b[i:])
			if diff := x ^ y; diff != 0 {
				return i + bits.TrailingZeros64(diff)>>3
			}
			i += 8
		}
	}

	for i < n && a[i] == b[i] {
		i++
	}

	return i
}
