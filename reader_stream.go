package cbor

import (
	"errors"
	"io"
)

// StreamReader is a Reader backed by an arbitrary io.Reader, adapted from
// oy3o-codec's bufio-backed Reader (reader.go). It owns a reusable scratch
// buffer: ReadBytes grows it on demand (unless constructed with a
// capacity limit) and hands the payload back as Scratch, meaning the
// caller must treat it as valid only until the next call.
//
// ReadBytes uses io.ReadFull so a short read always surfaces as a wrapped
// io.ErrUnexpectedEOF (an io.EOF from the source is reported the same way)
// instead of silently returning fewer bytes than the header promised.
type StreamReader struct {
	r       io.Reader
	scratch []byte
	limited bool
}

var _ Reader = (*StreamReader)(nil)

// NewStreamReader wraps r with an unbounded, growable scratch buffer.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r, scratch: make([]byte, 0, 9)}
}

// NewLimitedStreamReader wraps r with a scratch buffer capped at
// capacity. A read requesting more than capacity fails with
// ErrBufferLimitExceeded instead of growing, bounding memory use against
// a maliciously large length field.
func NewLimitedStreamReader(r io.Reader, capacity int) *StreamReader {
	return &StreamReader{r: r, scratch: make([]byte, 0, capacity), limited: true}
}

// ErrBufferLimitExceeded indicates a StreamReader constructed with
// NewLimitedStreamReader was asked to read more bytes than its capacity.
var ErrBufferLimitExceeded = errors.New("cbor: buffer limit exceeded")

func (r *StreamReader) reserve(n int) error {
	if n > cap(r.scratch) {
		if r.limited {
			return messageError("buffer limit exceeded reading a stream element", ErrBufferLimitExceeded)
		}
		grown := make([]byte, n)
		r.scratch = grown
		return nil
	}
	r.scratch = r.scratch[:n]
	return nil
}

// ReadBytes implements Reader.
func (r *StreamReader) ReadBytes(n int) (Bytes, error) {
	if n < 0 {
		return Bytes{}, messageError("negative read length", nil)
	}
	if n == 0 {
		return Bytes{Data: r.scratch[:0]}, nil
	}
	if err := r.reserve(n); err != nil {
		return Bytes{}, err
	}
	if _, err := io.ReadFull(r.r, r.scratch[:n]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Bytes{}, backendError(io.ErrUnexpectedEOF)
		}
		return Bytes{}, backendError(err)
	}
	return Bytes{Data: r.scratch[:n]}, nil
}
