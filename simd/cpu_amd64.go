//go:build amd64
// +build amd64

package simd

import (
	"golang.org/x/sys/cpu"
)

// detectCPUFeaturesImpl is the architecture-specific implementation
// of CPU feature detection for AMD64
func detectCPUFeaturesImpl() {
	hasSSE2 = cpu.X86.HasSSE2 // Should always be true on amd64
}
