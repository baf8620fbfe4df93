package cbor

import "io"

// SliceWriter is a Writer backed by a pre-allocated, non-growing byte
// slice, adapted from oy3o-codec's BytesWriter (writer_bytes.go). Writing
// past capacity fails with io.ErrShortWrite rather than growing the slice.
type SliceWriter struct {
	b []byte
	n int
}

var _ Writer = (*SliceWriter)(nil)

// NewSliceWriter wraps b. b is used up to its capacity, not just its
// length, matching oy3o-codec's NewBytesWriter.
func NewSliceWriter(b []byte) *SliceWriter {
	return &SliceWriter{b: b[:cap(b)]}
}

// Write implements Writer.
func (w *SliceWriter) Write(p []byte) (int, error) {
	if w.n >= len(w.b) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortWrite
	}
	n := copy(w.b[w.n:], p)
	w.n += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Bytes returns a view of the data written so far.
func (w *SliceWriter) Bytes() []byte { return w.b[:w.n] }

// Len returns the number of bytes written so far.
func (w *SliceWriter) Len() int { return w.n }

// Available returns the remaining unwritten capacity.
func (w *SliceWriter) Available() int { return len(w.b) - w.n }
