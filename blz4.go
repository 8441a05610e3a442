// Package blz4 compresses and decompresses data in the LZ4 legacy
// frame format, using optimal-parsing compressors that trade CPU for
// ratio by exploring larger portions of the match space.
//
// The allocating helpers here cover the common cases; the compress
// package exposes the allocation-free core, and Reader and Writer
// stream whole legacy frames.
package blz4

import (
	"io"

	"github.com/jibsen/blz4/compress"
)

// Version constants
const (
	// Version of the library
	Version = "0.1.0"
	// VersionMajor is the major version number
	VersionMajor = 0
	// VersionMinor is the minor version number
	VersionMinor = 1
	// VersionPatch is the patch version number
	VersionPatch = 0
)

// MaxPackedSize returns a bound on the compressed size of srcSize
// bytes of input.
func MaxPackedSize(srcSize int) int {
	return compress.MaxPackedSize(srcSize)
}

// Pack compresses a single block at the default level, allocating the
// destination and work memory.
func Pack(src []byte) ([]byte, error) {
	return PackLevel(src, compress.DefaultLevel)
}

// PackLevel compresses a single block at the given level, allocating
// the destination and work memory. Levels 5 to 9 trade time for
// ratio; level 10 is optimal but very slow.
func PackLevel(src []byte, level compress.Level) ([]byte, error) {
	size, err := compress.WorkmemSize(len(src), level)
	if err != nil {
		return nil, err
	}

	workmem := make([]uint32, size)
	dst := make([]byte, compress.MaxPackedSize(len(src)))

	n, err := compress.PackLevel(src, dst, workmem, level)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Depack decompresses a single block produced by Pack or PackLevel.
// maxSize bounds the decompressed size.
func Depack(src []byte, maxSize int) ([]byte, error) {
	dst := make([]byte, maxSize)

	n, err := compress.Depack(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Reader is an io.Reader that decompresses an LZ4 legacy frame.
type Reader struct {
	r *compress.Reader
}

// NewReader creates a new Reader that decompresses from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: compress.NewReader(r)}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// Writer is an io.WriteCloser that compresses to an LZ4 legacy frame.
type Writer struct {
	w *compress.Writer
}

// NewWriter creates a new Writer that compresses to w at the default
// level.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: compress.NewWriter(w)}
}

// NewWriterLevel creates a new Writer that compresses to w at the
// given level.
func NewWriterLevel(w io.Writer, level compress.Level) (*Writer, error) {
	cw, err := compress.NewWriterLevel(w, level)
	if err != nil {
		return nil, err
	}

	return &Writer{w: cw}, nil
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Flush writes any buffered input as a block.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Close implements io.Closer, flushing any buffered input.
func (w *Writer) Close() error {
	return w.w.Close()
}
