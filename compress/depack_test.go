package compress

import (
	"bytes"
	"errors"
	"testing"
)

func TestDepack_Vectors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{
			name: "empty-block",
			src:  []byte{0x00},
			want: []byte{},
		},
		{
			name: "hello",
			src:  []byte{0x50, 'H', 'e', 'l', 'l', 'o'},
			want: []byte("Hello"),
		},
		{
			// Overlapping copy with offset 1 replicates the byte
			// it just wrote.
			name: "rle-overlap",
			src:  []byte{0x22, 'a', 'b', 0x01, 0x00, 0x10, 'x'},
			want: []byte("abbbbbbbx"),
		},
		{
			name: "offset-two",
			src:  []byte{0x24, 'a', 'b', 0x02, 0x00, 0x10, 'x'},
			want: []byte("abababababx"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, len(tt.want)+8)

			n, err := Depack(tt.src, dst)
			if err != nil {
				t.Fatalf("Depack failed: %v", err)
			}
			if !bytes.Equal(dst[:n], tt.want) {
				t.Fatalf("Depack = %q, want %q", dst[:n], tt.want)
			}
		})
	}
}

func TestDepack_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		dst  int
		want error
	}{
		{name: "empty-input", src: []byte{}, dst: 16, want: ErrTruncated},
		{name: "literals-cut-short", src: []byte{0x50, 'H', 'e'}, dst: 16, want: ErrTruncated},
		{name: "lit-extension-missing", src: []byte{0xF0}, dst: 512, want: ErrTruncated},
		{name: "lit-extension-mid-chain", src: []byte{0xF0, 0xFF}, dst: 1024, want: ErrTruncated},
		{name: "offset-cut-short", src: []byte{0x12, 'a', 0x01}, dst: 16, want: ErrTruncated},
		{name: "match-extension-missing", src: []byte{0x2F, 'a', 'b', 0x01, 0x00}, dst: 1024, want: ErrTruncated},
		{name: "offset-zero", src: []byte{0x12, 'a', 0x00, 0x00, 0x10, 'x'}, dst: 16, want: ErrInvalidReference},
		{name: "offset-before-start", src: []byte{0x12, 'a', 0x05, 0x00, 0x10, 'x'}, dst: 16, want: ErrInvalidReference},
		{name: "literals-overrun-output", src: []byte{0x50, 'H', 'e', 'l', 'l', 'o'}, dst: 3, want: ErrOutputTooLarge},
		{name: "match-overruns-output", src: []byte{0x22, 'a', 'b', 0x01, 0x00, 0x10, 'x'}, dst: 4, want: ErrOutputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.dst)

			if _, err := Depack(tt.src, dst); !errors.Is(err, tt.want) {
				t.Fatalf("Depack error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDepack_PrefillDoesNotLeak(t *testing.T) {
	src := []byte{0x22, 'a', 'b', 0x01, 0x00, 0x10, 'x'}
	want := []byte("abbbbbbbx")

	for _, fill := range []byte{0x00, 0xAA, 0xFF} {
		dst := make([]byte, 32)
		for i := range dst {
			dst[i] = fill
		}

		n, err := Depack(src, dst)
		if err != nil {
			t.Fatalf("Depack failed: %v", err)
		}
		if !bytes.Equal(dst[:n], want) {
			t.Fatalf("prefill %#x changed output: %q", fill, dst[:n])
		}
	}
}

func TestDepack_FarOffset(t *testing.T) {
	// Build a block by hand: a maximal literal run, then a match
	// reaching all the way back with offset 65535, then the closing
	// literals.
	lits := make([]byte, 65535)
	for i := range lits {
		lits[i] = byte(i * 7)
	}
	tail := []byte("tail!")

	dst := make([]byte, MaxPackedSize(len(lits)+8+len(tail)))

	d := emitSequence(dst, 0, lits, 65535, 8)
	d = emitSequence(dst, d, tail, 0, 0)

	want := append(append(append([]byte(nil), lits...), lits[:8]...), tail...)

	out := make([]byte, len(want))

	n, err := Depack(dst[:d], out)
	if err != nil {
		t.Fatalf("Depack failed: %v", err)
	}
	if !bytes.Equal(out[:n], want) {
		t.Fatal("far offset round-trip mismatch")
	}
}
