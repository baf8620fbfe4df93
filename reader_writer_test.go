//go:build test

package cbor

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SliceReaderTestSuite struct {
	suite.Suite
}

func TestSliceReaderSuite(t *testing.T) {
	suite.Run(t, new(SliceReaderTestSuite))
}

func (s *SliceReaderTestSuite) TestReadExactAndAvailable() {
	r := NewSliceReader([]byte{1, 2, 3, 4, 5})
	b, err := r.ReadBytes(2)
	s.Require().NoError(err)
	s.Equal([]byte{1, 2}, b.Data)
	s.True(b.Borrowed)
	s.Equal(3, r.Available())
}

func (s *SliceReaderTestSuite) TestReadPastEndFails() {
	r := NewSliceReader([]byte{1, 2})
	_, err := r.ReadBytes(3)
	s.Require().Error(err)
	s.ErrorIs(err, io.ErrUnexpectedEOF)
}

func (s *SliceReaderTestSuite) TestZeroLengthRead() {
	r := NewSliceReader([]byte{1, 2})
	b, err := r.ReadBytes(0)
	s.Require().NoError(err)
	s.Len(b.Data, 0)
	s.Equal(0, r.Len())
}

type StreamReaderTestSuite struct {
	suite.Suite
}

func TestStreamReaderSuite(t *testing.T) {
	suite.Run(t, new(StreamReaderTestSuite))
}

// shortReader returns fewer bytes than requested without an error on its
// first call, then io.EOF — the short-read shape a naive stream reader
// could silently accept as success.
type shortReader struct {
	data []byte
	done bool
}

func (r *shortReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	r.done = true
	n := copy(p, r.data)
	return n, nil
}

func (s *StreamReaderTestSuite) TestShortReadSurfacesAsError() {
	sr := NewStreamReader(&shortReader{data: []byte{1, 2}})
	_, err := sr.ReadBytes(5)
	s.Require().Error(err)
	s.ErrorIs(err, io.ErrUnexpectedEOF)
}

func (s *StreamReaderTestSuite) TestFullReadSucceeds() {
	sr := NewStreamReader(bytes.NewReader([]byte{1, 2, 3, 4}))
	b, err := sr.ReadBytes(4)
	s.Require().NoError(err)
	s.Equal([]byte{1, 2, 3, 4}, b.Data)
	s.False(b.Borrowed)
}

func (s *StreamReaderTestSuite) TestLimitedStreamRejectsOversizedRead() {
	sr := NewLimitedStreamReader(bytes.NewReader(make([]byte, 100)), 4)
	_, err := sr.ReadBytes(64)
	s.Require().Error(err)
	s.ErrorIs(err, ErrBufferLimitExceeded)
}

type SliceWriterTestSuite struct {
	suite.Suite
}

func TestSliceWriterSuite(t *testing.T) {
	suite.Run(t, new(SliceWriterTestSuite))
}

func (s *SliceWriterTestSuite) TestWriteWithinCapacity() {
	w := NewSliceWriter(make([]byte, 4))
	n, err := w.Write([]byte{1, 2, 3})
	s.Require().NoError(err)
	s.Equal(3, n)
	s.Equal([]byte{1, 2, 3}, w.Bytes())
	s.Equal(1, w.Available())
}

func (s *SliceWriterTestSuite) TestWritePastCapacityFails() {
	w := NewSliceWriter(make([]byte, 2))
	_, err := w.Write([]byte{1, 2, 3})
	s.Require().Error(err)
	s.ErrorIs(err, io.ErrShortWrite)
}

func TestStreamWriterForwards(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)
	n, err := w.Write([]byte("cbor"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("wrote %d bytes, want 4", n)
	}
	if buf.String() != "cbor" {
		t.Fatalf("buffer = %q, want %q", buf.String(), "cbor")
	}
}
