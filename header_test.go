//go:build test

package cbor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// HeaderTestSuite exercises minimal-encoding byte vectors: minimal
// encoding is a structural property of the fall-through ladder, not a
// special case per width.
type HeaderTestSuite struct {
	suite.Suite
}

func TestHeaderSuite(t *testing.T) {
	suite.Run(t, new(HeaderTestSuite))
}

func (s *HeaderTestSuite) encodeU(major byte, arg uint64) []byte {
	w := NewSliceWriter(make([]byte, 9))
	var buf [9]byte
	_, err := writeHeaderU64(w, &buf, major, arg)
	s.Require().NoError(err)
	return w.Bytes()
}

func (s *HeaderTestSuite) TestUnsignedZero() {
	s.Equal([]byte{0x00}, s.encodeU(majorPositive, 0))
}

func (s *HeaderTestSuite) TestUnsignedLargestInline() {
	s.Equal([]byte{0x17}, s.encodeU(majorPositive, 23))
}

func (s *HeaderTestSuite) TestUnsignedSmallest1Byte() {
	s.Equal([]byte{0x18, 0x18}, s.encodeU(majorPositive, 24))
}

func (s *HeaderTestSuite) TestUnsigned2ByteForm() {
	s.Equal([]byte{0x19, 0x03, 0xE8}, s.encodeU(majorPositive, 1000))
}

func (s *HeaderTestSuite) TestNegativeOne() {
	// Encoder.EncodeI64(-1) writes major 1, argument 0.
	buf := make([]byte, 16)
	out, err := EncodeToSlice(buf, marshalFunc(func(e *Encoder) error {
		return e.EncodeI64(-1)
	}))
	s.Require().NoError(err)
	s.Equal([]byte{0x20}, out)
}

func (s *HeaderTestSuite) TestNegative1000() {
	buf := make([]byte, 16)
	out, err := EncodeToSlice(buf, marshalFunc(func(e *Encoder) error {
		return e.EncodeI64(-1000)
	}))
	s.Require().NoError(err)
	s.Equal([]byte{0x39, 0x03, 0xE7}, out)
}

func (s *HeaderTestSuite) TestSplitHeader() {
	major, arg := splitHeader(0x83)
	s.Equal(majorArray, major)
	s.EqualValues(3, arg)
}

// marshalFunc adapts a plain function to Marshaler, used throughout the
// test suite in place of one-off named types for single-call encodes.
type marshalFunc func(e *Encoder) error

func (f marshalFunc) MarshalCBOR(e *Encoder) error { return f(e) }

// unmarshalFunc is marshalFunc's decode-side counterpart.
type unmarshalFunc func(d *Decoder) error

func (f unmarshalFunc) UnmarshalCBOR(d *Decoder) error { return f(d) }

func TestHeaderHelpersCompile(t *testing.T) {
	require.Equal(t, byte(0x18), header(majorPositive, sizeU8))
}
