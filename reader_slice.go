package cbor

import "io"

// SliceReader is a zero-copy Reader backed by an immutable byte slice,
// adapted from oy3o-codec's BytesReader (reader_bytes.go): a slice plus a
// cursor, no allocation, ReadBytes hands back a Borrowed view directly
// into the input.
type SliceReader struct {
	b []byte
	n int
}

var _ Reader = (*SliceReader)(nil)

// NewSliceReader wraps b for zero-copy decoding. Every []byte handed to a
// Visitor while decoding from a SliceReader remains valid for the
// lifetime of b.
func NewSliceReader(b []byte) *SliceReader {
	return &SliceReader{b: b}
}

// ReadBytes implements Reader. It fails with a backend-wrapped
// io.ErrUnexpectedEOF when the request would run past the end of the
// slice, or overflow the cursor.
func (r *SliceReader) ReadBytes(n int) (Bytes, error) {
	if n < 0 {
		return Bytes{}, messageError("negative read length", nil)
	}
	if n == 0 {
		return Bytes{Data: r.b[r.n:r.n], Borrowed: true}, nil
	}
	end := r.n + n
	if end < r.n || end > len(r.b) {
		return Bytes{}, backendError(io.ErrUnexpectedEOF)
	}
	out := r.b[r.n:end]
	r.n = end
	return Bytes{Data: out, Borrowed: true}, nil
}

// Len returns the number of bytes already consumed.
func (r *SliceReader) Len() int { return r.n }

// Size returns the size of the underlying slice.
func (r *SliceReader) Size() int { return len(r.b) }

// Available returns the number of unread bytes remaining.
func (r *SliceReader) Available() int { return len(r.b) - r.n }
