//go:build test

package cbor

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// EnumTestSuite round-trips each of the four enum variant wire shapes
// spec.md §4.3/§4.4 describe: a unit variant (bare name string) and the
// three {variant: payload} map-of-one shapes (newtype/tuple/struct).
type EnumTestSuite struct {
	suite.Suite
}

func TestEnumSuite(t *testing.T) {
	suite.Run(t, new(EnumTestSuite))
}

// tupleVisitor decodes a TupleVariant payload (an array of int64).
type tupleVisitor struct {
	Unimplemented
	Values []int64
}

func (v *tupleVisitor) VisitSeq(s *SeqAccess) (any, error) {
	for {
		var x int64
		ok, err := s.Next(func(d *Decoder) error {
			n, err := d.DecodeI64()
			x = n
			return err
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		v.Values = append(v.Values, x)
	}
}

// structVisitor decodes a StructVariant payload (a map of string to int64).
type structVisitor struct {
	Unimplemented
	Fields map[string]int64
}

func (v *structVisitor) VisitMap(m *MapAccess) (any, error) {
	v.Fields = make(map[string]int64)
	for {
		var key string
		ok, err := m.NextKey(func(d *Decoder) error {
			k, err := d.DecodeIdentifier()
			key = k
			return err
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if err := m.NextValue(func(d *Decoder) error {
			n, err := d.DecodeI64()
			v.Fields[key] = n
			return err
		}); err != nil {
			return nil, err
		}
	}
}

func (s *EnumTestSuite) decodeVariantName(ea *EnumAccess) (string, *VariantAccess) {
	var name string
	va, err := ea.Variant(func(d *Decoder) error {
		n, err := d.DecodeIdentifier()
		name = n
		return err
	})
	s.Require().NoError(err)
	return name, va
}

func (s *EnumTestSuite) TestUnitVariant() {
	wire, err := EncodeToBytes(marshalFunc(func(e *Encoder) error {
		return e.EncodeUnitVariant("Stopped")
	}))
	s.Require().NoError(err)
	// major 3 (text), length 7: "Stopped" with no map wrapper.
	s.Equal([]byte{0x67, 'S', 't', 'o', 'p', 'p', 'e', 'd'}, wire)

	d := NewDecoder(NewSliceReader(wire))
	ea, err := d.DecodeEnum()
	s.Require().NoError(err)
	s.False(ea.Wrapped())

	name, va := s.decodeVariantName(ea)
	s.Equal("Stopped", name)
	s.Require().NoError(va.UnitVariant())
}

func (s *EnumTestSuite) TestNewtypeVariant() {
	wire, err := EncodeToBytes(marshalFunc(func(e *Encoder) error {
		if err := e.EncodeVariantHeader("Value"); err != nil {
			return err
		}
		return e.EncodeI64(42)
	}))
	s.Require().NoError(err)
	s.Equal(byte(headerMapOne), wire[0])

	d := NewDecoder(NewSliceReader(wire))
	ea, err := d.DecodeEnum()
	s.Require().NoError(err)
	s.True(ea.Wrapped())

	name, va := s.decodeVariantName(ea)
	s.Equal("Value", name)

	var payload int64
	s.Require().NoError(va.NewtypeVariant(func(d *Decoder) error {
		n, err := d.DecodeI64()
		payload = n
		return err
	}))
	s.EqualValues(42, payload)
}

func (s *EnumTestSuite) TestTupleVariant() {
	wire, err := EncodeToBytes(marshalFunc(func(e *Encoder) error {
		if err := e.EncodeVariantHeader("Point"); err != nil {
			return err
		}
		if err := e.EncodeArrayHeader(2); err != nil {
			return err
		}
		defer e.EndComposite()
		if err := e.EncodeI64(3); err != nil {
			return err
		}
		return e.EncodeI64(4)
	}))
	s.Require().NoError(err)
	s.Equal(byte(headerMapOne), wire[0])

	d := NewDecoder(NewSliceReader(wire))
	ea, err := d.DecodeEnum()
	s.Require().NoError(err)
	s.True(ea.Wrapped())

	name, va := s.decodeVariantName(ea)
	s.Equal("Point", name)

	tv := &tupleVisitor{}
	_, err = va.TupleVariant(tv)
	s.Require().NoError(err)
	s.Equal([]int64{3, 4}, tv.Values)
}

func (s *EnumTestSuite) TestStructVariant() {
	wire, err := EncodeToBytes(marshalFunc(func(e *Encoder) error {
		if err := e.EncodeVariantHeader("Circle"); err != nil {
			return err
		}
		if err := e.EncodeMapHeader(1); err != nil {
			return err
		}
		defer e.EndComposite()
		if err := e.EncodeString("radius"); err != nil {
			return err
		}
		return e.EncodeI64(5)
	}))
	s.Require().NoError(err)
	s.Equal(byte(headerMapOne), wire[0])

	d := NewDecoder(NewSliceReader(wire))
	ea, err := d.DecodeEnum()
	s.Require().NoError(err)
	s.True(ea.Wrapped())

	name, va := s.decodeVariantName(ea)
	s.Equal("Circle", name)

	sv := &structVisitor{}
	_, err = va.StructVariant(sv)
	s.Require().NoError(err)
	s.Equal(map[string]int64{"radius": 5}, sv.Fields)
}
