package compress

import "errors"

// Sentinel errors for compression and decompression. Callers match
// them with errors.Is.
var (
	// ErrInvalidLevel is returned when the compression level is outside 5..10.
	ErrInvalidLevel = errors.New("invalid compression level")
	// ErrCompressionFailure is returned when the compressor hits an internal
	// invariant violation.
	ErrCompressionFailure = errors.New("internal compressor error")
	// ErrDstTooSmall is returned when the destination buffer is smaller than
	// MaxPackedSize of the input.
	ErrDstTooSmall = errors.New("destination buffer too small")
	// ErrWorkmemTooSmall is returned when the work memory is smaller than
	// WorkmemSize for the input and level.
	ErrWorkmemTooSmall = errors.New("work memory too small")
	// ErrTruncated is returned when the decoder reaches the end of input in
	// the middle of a sequence.
	ErrTruncated = errors.New("truncated input")
	// ErrInvalidReference is returned when the decoder sees a match offset of
	// zero or one pointing before the start of the output.
	ErrInvalidReference = errors.New("invalid match reference")
	// ErrOutputTooLarge is returned when a decoded sequence would overrun the
	// output buffer.
	ErrOutputTooLarge = errors.New("output exceeds buffer")
	// ErrBadMagic is returned when a stream does not start with the LZ4
	// legacy frame magic.
	ErrBadMagic = errors.New("not an LZ4 legacy stream")
	// ErrBlockTooLarge is returned when a block header declares a compressed
	// size beyond the maximum packed block size.
	ErrBlockTooLarge = errors.New("compressed block too large")
	// ErrWriterClosed is returned when writing to a closed Writer.
	ErrWriterClosed = errors.New("writer is closed")
)
