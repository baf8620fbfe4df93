package cbor

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bool, Float32, Float64, String, and ByteString give Go's predeclared
// scalar kinds a MarshalCBOR/UnmarshalCBOR pair without requiring a
// hand-written method on every field's own named type, the same role
// oy3o-codec's fixed-size Codec wrappers play for its binary formats
// (fixed.go, since deleted in favor of this CBOR-domain equivalent).

type Bool bool

func (v Bool) MarshalCBOR(e *Encoder) error { return e.EncodeBool(bool(v)) }

func (v *Bool) UnmarshalCBOR(d *Decoder) error {
	b, err := d.DecodeBool()
	if err != nil {
		return err
	}
	*v = Bool(b)
	return nil
}

type Float32 float32

func (v Float32) MarshalCBOR(e *Encoder) error { return e.EncodeF32(float32(v)) }

func (v *Float32) UnmarshalCBOR(d *Decoder) error {
	f, err := d.DecodeF32()
	if err != nil {
		return err
	}
	*v = Float32(f)
	return nil
}

type Float64 float64

func (v Float64) MarshalCBOR(e *Encoder) error { return e.EncodeF64(float64(v)) }

func (v *Float64) UnmarshalCBOR(d *Decoder) error {
	f, err := d.DecodeF64()
	if err != nil {
		return err
	}
	*v = Float64(f)
	return nil
}

type String string

func (v String) MarshalCBOR(e *Encoder) error { return e.EncodeString(string(v)) }

func (v *String) UnmarshalCBOR(d *Decoder) error {
	s, err := d.DecodeString()
	if err != nil {
		return err
	}
	*v = String(s)
	return nil
}

// ByteString is a byte slice that always copies out of the Decoder on
// decode. Callers that want the zero-copy borrow a byte string can offer
// should call Decoder.DecodeBytes directly and inspect Bytes.Borrowed
// instead of going through this wrapper.
type ByteString []byte

func (v ByteString) MarshalCBOR(e *Encoder) error { return e.EncodeBytes([]byte(v)) }

func (v *ByteString) UnmarshalCBOR(d *Decoder) error {
	b, err := d.DecodeBytes()
	if err != nil {
		return err
	}
	*v = append((*v)[:0], b.Data...)
	return nil
}

// Int is a generic signed-integer wrapper spanning int8 through int64,
// choosing the narrowest Encoder/Decoder call for T's width via
// unsafe.Sizeof rather than hand-writing Int8/Int16/Int32/Int64
// variants, generalizing the width-per-type pattern oy3o-codec's
// Roundup[T constraints.Integer] (util.go) applies to alignment.
type Int[T constraints.Signed] struct {
	Value T
}

func (v Int[T]) MarshalCBOR(e *Encoder) error {
	switch unsafe.Sizeof(v.Value) {
	case 1:
		return e.EncodeI8(int8(v.Value))
	case 2:
		return e.EncodeI16(int16(v.Value))
	case 4:
		return e.EncodeI32(int32(v.Value))
	default:
		return e.EncodeI64(int64(v.Value))
	}
}

func (v *Int[T]) UnmarshalCBOR(d *Decoder) error {
	switch unsafe.Sizeof(v.Value) {
	case 1:
		x, err := d.DecodeI8()
		if err != nil {
			return err
		}
		v.Value = T(x)
	case 2:
		x, err := d.DecodeI16()
		if err != nil {
			return err
		}
		v.Value = T(x)
	case 4:
		x, err := d.DecodeI32()
		if err != nil {
			return err
		}
		v.Value = T(x)
	default:
		x, err := d.DecodeI64()
		if err != nil {
			return err
		}
		v.Value = T(x)
	}
	return nil
}

// Uint is Int's unsigned counterpart, spanning uint8 through uint64 (and
// uint, treated as 64-bit width).
type Uint[T constraints.Unsigned] struct {
	Value T
}

func (v Uint[T]) MarshalCBOR(e *Encoder) error {
	switch unsafe.Sizeof(v.Value) {
	case 1:
		return e.EncodeU8(uint8(v.Value))
	case 2:
		return e.EncodeU16(uint16(v.Value))
	case 4:
		return e.EncodeU32(uint32(v.Value))
	default:
		return e.EncodeU64(uint64(v.Value))
	}
}

func (v *Uint[T]) UnmarshalCBOR(d *Decoder) error {
	switch unsafe.Sizeof(v.Value) {
	case 1:
		x, err := d.DecodeU8()
		if err != nil {
			return err
		}
		v.Value = T(x)
	case 2:
		x, err := d.DecodeU16()
		if err != nil {
			return err
		}
		v.Value = T(x)
	case 4:
		x, err := d.DecodeU32()
		if err != nil {
			return err
		}
		v.Value = T(x)
	default:
		x, err := d.DecodeU64()
		if err != nil {
			return err
		}
		v.Value = T(x)
	}
	return nil
}

// EncodeOption writes null for a nil v, or value's encoding otherwise.
// CBOR option values carry no Marshaler of their own (there's no type to
// hang a method on for "pointer to T, or nil"), so this and DecodeOption
// take the element encode/decode as callbacks, the same callback idiom
// SeqAccess.Next and MapAccess.NextValue use in decode.go.
func EncodeOption[T any](e *Encoder, v *T, encode func(e *Encoder, v T) error) error {
	if v == nil {
		return e.EncodeNil()
	}
	return encode(e, *v)
}

// DecodeOption reads either null (returning a nil *T) or a present value
// decoded via decode.
func DecodeOption[T any](d *Decoder, decode func(d *Decoder) (T, error)) (*T, error) {
	present, err := d.DecodeOption()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := decode(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
