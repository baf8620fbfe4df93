//go:build test

package cbor

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestFrameworkErrorFormatsDirection() {
	err := frameworkError(Serializing, "boom")
	s.Contains(err.Error(), "serializing")
	s.Contains(err.Error(), "boom")

	err2 := frameworkError(Deserializing, "bust")
	s.Contains(err2.Error(), "deserializing")
}

func (s *ErrorsTestSuite) TestBackendErrorWrapsCauseAndUnwraps() {
	err := backendError(io.ErrUnexpectedEOF)
	s.Require().Error(err)
	s.True(errors.Is(err, io.ErrUnexpectedEOF))

	var cerr *Error
	s.Require().ErrorAs(err, &cerr)
	s.Equal(KindBackend, cerr.Kind)
}

func (s *ErrorsTestSuite) TestBackendErrorNilCauseIsNil() {
	s.Nil(backendError(nil))
}

func (s *ErrorsTestSuite) TestUnsupportedErrorCarriesHeader() {
	err := unsupportedError(0x5F)
	var cerr *Error
	s.Require().ErrorAs(err, &cerr)
	s.Equal(KindUnsupported, cerr.Kind)
	s.EqualValues(0x5F, cerr.Header)
	s.Contains(err.Error(), "0x5f")
}

func (s *ErrorsTestSuite) TestUnassignedErrorCarriesHeader() {
	err := unassignedError(0xFF)
	var cerr *Error
	s.Require().ErrorAs(err, &cerr)
	s.Equal(KindUnassigned, cerr.Kind)
	s.EqualValues(0xFF, cerr.Header)
}

func (s *ErrorsTestSuite) TestUnexpectedErrorCarriesHeaderAndExpected() {
	err := unexpectedError(0x01, "string")
	var cerr *Error
	s.Require().ErrorAs(err, &cerr)
	s.Equal(KindUnexpected, cerr.Kind)
	s.EqualValues(0x01, cerr.Header)
	s.Equal("string", cerr.Expected)
	s.Contains(err.Error(), "string")
}

func (s *ErrorsTestSuite) TestMessageErrorWrapsSentinelForErrorsIs() {
	err := messageError("slice too small", ErrSliceBounds)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrSliceBounds))
	s.Contains(err.Error(), "slice too small")
}

func (s *ErrorsTestSuite) TestEncoderCustomErrorTagsSerializing() {
	e := NewEncoder(NewSliceWriter(make([]byte, 8)))
	err := e.CustomError("nope")
	var cerr *Error
	s.Require().ErrorAs(err, &cerr)
	s.Equal(KindFramework, cerr.Kind)
	s.Equal(Serializing, cerr.Direction)
}

func (s *ErrorsTestSuite) TestDecoderCustomErrorTagsDeserializing() {
	d := NewDecoder(NewSliceReader([]byte{0x00}))
	err := d.CustomError("nope")
	var cerr *Error
	s.Require().ErrorAs(err, &cerr)
	s.Equal(KindFramework, cerr.Kind)
	s.Equal(Deserializing, cerr.Direction)
}

func (s *ErrorsTestSuite) TestDirectionString() {
	s.Equal("serializing", Serializing.String())
	s.Equal("deserializing", Deserializing.String())
}
