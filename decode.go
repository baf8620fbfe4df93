package cbor

import (
	"math"
	"unicode/utf8"
)

// Visitor is the callback sub-protocol DecodeAny dispatches to once the
// wire type of the next item is known. Concrete visitors embed
// Unimplemented and override only the methods matching the Go type they
// produce; Unimplemented supplies a "wrong type" error for the rest. Go
// interfaces carry no default method bodies, so embedding stands in for
// that default-method override.
type Visitor interface {
	VisitBool(v bool) (any, error)
	VisitU8(v uint8) (any, error)
	VisitU16(v uint16) (any, error)
	VisitU32(v uint32) (any, error)
	VisitU64(v uint64) (any, error)
	VisitI8(v int8) (any, error)
	VisitI16(v int16) (any, error)
	VisitI32(v int32) (any, error)
	VisitI64(v int64) (any, error)
	VisitF32(v float32) (any, error)
	VisitF64(v float64) (any, error)
	VisitString(v string) (any, error)
	VisitBytes(v Bytes) (any, error)
	VisitNone() (any, error)
	VisitSome(d *Decoder) (any, error)
	VisitUnit() (any, error)
	VisitSeq(s *SeqAccess) (any, error)
	VisitMap(m *MapAccess) (any, error)
	VisitEnum(e *EnumAccess) (any, error)
}

// Unimplemented gives every Visitor method a "wrong type" default so a
// concrete visitor only has to override the handful it actually accepts.
type Unimplemented struct{}

func wrongType(label string) (any, error) {
	return nil, messageError("unexpected visited type: "+label, nil)
}

func (Unimplemented) VisitBool(bool) (any, error)       { return wrongType("bool") }
func (Unimplemented) VisitU8(uint8) (any, error)        { return wrongType("u8") }
func (Unimplemented) VisitU16(uint16) (any, error)      { return wrongType("u16") }
func (Unimplemented) VisitU32(uint32) (any, error)      { return wrongType("u32") }
func (Unimplemented) VisitU64(uint64) (any, error)      { return wrongType("u64") }
func (Unimplemented) VisitI8(int8) (any, error)         { return wrongType("i8") }
func (Unimplemented) VisitI16(int16) (any, error)       { return wrongType("i16") }
func (Unimplemented) VisitI32(int32) (any, error)       { return wrongType("i32") }
func (Unimplemented) VisitI64(int64) (any, error)       { return wrongType("i64") }
func (Unimplemented) VisitF32(float32) (any, error)     { return wrongType("f32") }
func (Unimplemented) VisitF64(float64) (any, error)     { return wrongType("f64") }
func (Unimplemented) VisitString(string) (any, error)   { return wrongType("string") }
func (Unimplemented) VisitBytes(Bytes) (any, error)     { return wrongType("bytes") }
func (Unimplemented) VisitNone() (any, error)           { return wrongType("option (none)") }
func (Unimplemented) VisitSome(*Decoder) (any, error)   { return wrongType("option (some)") }
func (Unimplemented) VisitUnit() (any, error)           { return wrongType("unit") }
func (Unimplemented) VisitSeq(*SeqAccess) (any, error)  { return wrongType("seq") }
func (Unimplemented) VisitMap(*MapAccess) (any, error)  { return wrongType("map") }
func (Unimplemented) VisitEnum(*EnumAccess) (any, error) { return wrongType("enum") }

// Unmarshaler is implemented by any type that decodes itself from a
// Decoder, in a pull style where the type being decoded calls back into
// the Decoder rather than the Decoder constructing a generic value tree.
type Unmarshaler interface {
	UnmarshalCBOR(d *Decoder) error
}

// Decoder reads CBOR items from a Reader, one byte of lookahead at a time.
// Every decode method peeks the next header byte before deciding how to
// consume it; peek-without-consume lets DecodeOption and the
// width-dispatch chain (DecodeU16 falling back to DecodeU8, etc.) inspect
// a header without committing to it.
type Decoder struct {
	r       Reader
	peeked  bool
	peekVal byte
	depth   depthGuard
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// WithDecoderMaxDepth overrides the default composite-nesting limit (256).
func WithDecoderMaxDepth(max int) DecoderOption {
	return func(d *Decoder) { d.depth = newDepthGuard(max) }
}

// NewDecoder wraps r.
func NewDecoder(r Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r, depth: newDepthGuard(defaultMaxDepth)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Decoder) peek() (byte, error) {
	if d.peeked {
		return d.peekVal, nil
	}
	b, err := readU8(d.r)
	if err != nil {
		return 0, err
	}
	d.peekVal = b
	d.peeked = true
	return b, nil
}

func (d *Decoder) consume() {
	d.peeked = false
}

func (d *Decoder) peekAndConsume() (byte, error) {
	b, err := d.peek()
	d.consume()
	return b, err
}

// CustomError wraps a Marshaler/Unmarshaler-raised message as a
// KindFramework error tagged Deserializing. See Encoder.CustomError for
// the serializing counterpart; keeping them separate methods means the
// direction tag is always correct for the call site.
func (d *Decoder) CustomError(msg string) error {
	return frameworkError(Deserializing, msg)
}

// decodeLength reads a definite-length argument for wantMajor, following
// the same inline/u8/u16/u32/u64 ladder write_header uses on encode,
// folding array/map/bytes/text length decoding (each a separate, near-
// duplicate match arm in deserialize.rs) into one helper.
func (d *Decoder) decodeLength(wantMajor byte, label string) (int, error) {
	peek, err := d.peekAndConsume()
	if err != nil {
		return 0, err
	}
	major, arg := splitHeader(peek)
	if major != wantMajor {
		return 0, unexpectedError(peek, label)
	}
	switch {
	case arg < sizeU8:
		return int(arg), nil
	case arg == sizeU8:
		v, err := readU8(d.r)
		return int(v), err
	case arg == sizeU16:
		v, err := readU16(d.r)
		return int(v), err
	case arg == sizeU32:
		v, err := readU32(d.r)
		return int(v), err
	case arg == sizeU64:
		v, err := readU64(d.r)
		if v > uint64(^uint(0)>>1) {
			return 0, messageError("length exceeds platform int range", nil)
		}
		return int(v), err
	case arg == sizeIndefinite:
		return 0, unsupportedError(peek)
	default:
		// argument 28-30: reserved, no defined meaning.
		return 0, unexpectedError(peek, label)
	}
}

// DecodeBool reads a CBOR true/false simple value.
func (d *Decoder) DecodeBool() (bool, error) {
	peek, err := d.peekAndConsume()
	if err != nil {
		return false, err
	}
	switch peek {
	case headerTrue:
		return true, nil
	case headerFalse:
		return false, nil
	default:
		return false, unexpectedError(peek, "boolean")
	}
}

// DecodeU8 reads an unsigned integer that fits u8, the base case of the
// width-dispatch chain DecodeU16/32/64 fall back into. Ported from
// deserialize_u8.
func (d *Decoder) DecodeU8() (uint8, error) {
	peek, err := d.peekAndConsume()
	if err != nil {
		return 0, err
	}
	if peek == headerPositiveU8 {
		return readU8(d.r)
	}
	if headerPositiveStart <= peek && peek < headerPositiveU8 {
		return peek & 0x1F, nil
	}
	return 0, unexpectedError(peek, "unsigned integer")
}

// DecodeU16 peeks for the exact u16 header, otherwise falls back to
// DecodeU8 (the peek is left in place, so DecodeU8 sees the same byte).
func (d *Decoder) DecodeU16() (uint16, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	if peek == headerPositiveU16 {
		d.consume()
		return readU16(d.r)
	}
	v, err := d.DecodeU8()
	return uint16(v), err
}

func (d *Decoder) DecodeU32() (uint32, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	if peek == headerPositiveU32 {
		d.consume()
		return readU32(d.r)
	}
	v, err := d.DecodeU16()
	return uint32(v), err
}

func (d *Decoder) DecodeU64() (uint64, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	if peek == headerPositiveU64 {
		d.consume()
		return readU64(d.r)
	}
	v, err := d.DecodeU32()
	return uint64(v), err
}

// DecodeI8 reads a signed integer that fits i8, accepting either a
// positive-major or negative-major header. Ported from deserialize_i8.
// The full-byte forms carry a uint8 payload (0..255) but int8 only holds
// -128..127, so both signs are bounds-checked before the narrowing cast;
// out of range surfaces as numericalError rather than silently wrapping
// (e.g. a wire value of 200 must not come back as -56).
func (d *Decoder) DecodeI8() (int8, error) {
	peek, err := d.peekAndConsume()
	if err != nil {
		return 0, err
	}
	switch {
	case peek == headerPositiveU8:
		v, err := readU8(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt8 {
			return 0, numericalError(uint64(v), 8)
		}
		return int8(v), nil
	case peek == headerNegativeU8:
		v, err := readU8(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt8 {
			return 0, numericalError(uint64(v), 8)
		}
		return int8(-1 - int16(v)), nil
	case headerPositiveStart <= peek && peek < headerPositiveU8:
		return int8(peek & 0x1F), nil
	case headerNegativeStart <= peek && peek < headerNegativeU8:
		return -1 - int8(peek&0x1F), nil
	default:
		return 0, unexpectedError(peek, "signed integer")
	}
}

func (d *Decoder) DecodeI16() (int16, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	switch peek {
	case headerPositiveU16:
		d.consume()
		v, err := readU16(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt16 {
			return 0, numericalError(uint64(v), 16)
		}
		return int16(v), nil
	case headerNegativeU16:
		d.consume()
		v, err := readU16(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt16 {
			return 0, numericalError(uint64(v), 16)
		}
		return int16(-1 - int32(v)), nil
	default:
		v, err := d.DecodeI8()
		return int16(v), err
	}
}

func (d *Decoder) DecodeI32() (int32, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	switch peek {
	case headerPositiveU32:
		d.consume()
		v, err := readU32(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt32 {
			return 0, numericalError(uint64(v), 32)
		}
		return int32(v), nil
	case headerNegativeU32:
		d.consume()
		v, err := readU32(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt32 {
			return 0, numericalError(uint64(v), 32)
		}
		return int32(-1 - int64(v)), nil
	default:
		v, err := d.DecodeI16()
		return int32(v), err
	}
}

func (d *Decoder) DecodeI64() (int64, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	switch peek {
	case headerPositiveU64:
		d.consume()
		v, err := readU64(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt64 {
			return 0, numericalError(v, 64)
		}
		return int64(v), nil
	case headerNegativeU64:
		d.consume()
		v, err := readU64(d.r)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt64 {
			return 0, numericalError(v, 64)
		}
		return -1 - int64(v), nil
	default:
		v, err := d.DecodeI32()
		return int64(v), err
	}
}

// decodeF16 reads a half-precision float and widens it to float32. The
// headerFloat16 byte must already be checked and consumed by the caller.
// Ported from deserialize_f16.
func (d *Decoder) decodeF16() (float32, error) {
	bits, err := readU16(d.r)
	if err != nil {
		return 0, err
	}
	return widenFloat16(bits), nil
}

// DecodeF32 falls back to half-precision when the wire doesn't carry an
// exact f32 header, since CBOR float16 only ever widens into Go's
// float32.
func (d *Decoder) DecodeF32() (float32, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	if peek == headerFloat32 {
		d.consume()
		return readF32(d.r)
	}
	if peek == headerFloat16 {
		d.consume()
		return d.decodeF16()
	}
	return 0, unexpectedError(peek, "floating point")
}

func (d *Decoder) DecodeF64() (float64, error) {
	peek, err := d.peek()
	if err != nil {
		return 0, err
	}
	if peek == headerFloat64 {
		d.consume()
		return readF64(d.r)
	}
	v, err := d.DecodeF32()
	return float64(v), err
}

// DecodeUnit reads the undefined simple value, CBOR's rendering of Rust's
// unit type and this codec's closest analog of a Go zero-field struct tag.
func (d *Decoder) DecodeUnit() error {
	peek, err := d.peekAndConsume()
	if err != nil {
		return err
	}
	if peek != headerUndefined {
		return unexpectedError(peek, "unit")
	}
	return nil
}

// DecodeOption peeks for null without consuming the header on a present
// value: if the item is null it consumes the byte and reports absent;
// otherwise the peek is left for the caller's subsequent Decode call,
// matching deserialize_option's visitor.visit_some(self) hand-off.
func (d *Decoder) DecodeOption() (present bool, err error) {
	peek, err := d.peek()
	if err != nil {
		return false, err
	}
	if peek == headerNull {
		d.consume()
		return false, nil
	}
	return true, nil
}

// DecodeBytes reads a definite-length byte string, returning a zero-copy
// view when the backing Reader can lend one (see Bytes in reader.go).
func (d *Decoder) DecodeBytes() (Bytes, error) {
	n, err := d.decodeLength(majorBytes, "byte string")
	if err != nil {
		return Bytes{}, err
	}
	return d.r.ReadBytes(n)
}

// DecodeString reads a definite-length UTF-8 text item.
func (d *Decoder) DecodeString() (string, error) {
	n, err := d.decodeLength(majorText, "text string")
	if err != nil {
		return "", err
	}
	b, err := d.r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b.Data) {
		return "", backendError(errInvalidUTF8)
	}
	return string(b.Data), nil
}

// DecodeIdentifier reads a struct field name / map key. CBOR has no
// distinct identifier wire type, so this forwards straight to
// DecodeString.
func (d *Decoder) DecodeIdentifier() (string, error) {
	return d.DecodeString()
}

// DecodeSeq reads a definite-length array header and returns an accessor
// for its elements, entering one level of composite nesting.
func (d *Decoder) DecodeSeq() (*SeqAccess, error) {
	n, err := d.decodeLength(majorArray, "array")
	if err != nil {
		return nil, err
	}
	if err := d.depth.enter(); err != nil {
		return nil, err
	}
	s := &SeqAccess{d: d, len: n}
	if n == 0 {
		d.depth.exit()
	}
	return s, nil
}

// DecodeMap reads a definite-length map header and returns an accessor for
// its key/value pairs, entering one level of composite nesting.
func (d *Decoder) DecodeMap() (*MapAccess, error) {
	n, err := d.decodeLength(majorMap, "map")
	if err != nil {
		return nil, err
	}
	if err := d.depth.enter(); err != nil {
		return nil, err
	}
	m := &MapAccess{d: d, len: n}
	if n == 0 {
		d.depth.exit()
	}
	return m, nil
}

// DecodeEnum inspects the next header to tell a unit-variant (bare text
// string) from a payload-carrying variant (the {variant: ...} map-of-one
// wrapper), per deserialize_enum.
func (d *Decoder) DecodeEnum() (*EnumAccess, error) {
	peek, err := d.peek()
	if err != nil {
		return nil, err
	}
	major, _ := splitHeader(peek)
	switch {
	case major == majorText:
		return &EnumAccess{d: d}, nil
	case peek == headerMapOne:
		d.consume()
		return &EnumAccess{d: d, wrapped: true}, nil
	default:
		return nil, unexpectedError(peek, "enum (text or map of one)")
	}
}

// SeqAccess iterates the elements of an array opened by DecodeSeq. Ported
// from deserialize.rs's SeqAccess, with DeserializeSeed's generic Value
// replaced by a plain callback: the caller already knows the element's Go
// type, so it decodes directly into its own destination rather than
// through a Seed.
type SeqAccess struct {
	d   *Decoder
	len int
}

// Len reports the number of elements left to read.
func (s *SeqAccess) Len() int { return s.len }

// Next decodes the next element by invoking fn with the shared Decoder,
// and reports whether an element was available. Once the last element is
// consumed, the composite-nesting depth entered by DecodeSeq is released.
func (s *SeqAccess) Next(fn func(d *Decoder) error) (bool, error) {
	if s.len == 0 {
		return false, nil
	}
	s.len--
	if err := fn(s.d); err != nil {
		return false, err
	}
	if s.len == 0 {
		s.d.depth.exit()
	}
	return true, nil
}

// MapAccess iterates the key/value pairs of a map opened by DecodeMap.
type MapAccess struct {
	d   *Decoder
	len int
}

// Len reports the number of pairs left to read.
func (m *MapAccess) Len() int { return m.len }

// NextKey decodes the next pair's key, reporting whether a pair remains.
func (m *MapAccess) NextKey(fn func(d *Decoder) error) (bool, error) {
	if m.len == 0 {
		return false, nil
	}
	m.len--
	if err := fn(m.d); err != nil {
		return false, err
	}
	return true, nil
}

// NextValue decodes the value half of the pair whose key NextKey just
// produced. Once this is the pair NextKey reported as last, the
// composite-nesting depth entered by DecodeMap is released.
func (m *MapAccess) NextValue(fn func(d *Decoder) error) error {
	if err := fn(m.d); err != nil {
		return err
	}
	if m.len == 0 {
		m.d.depth.exit()
	}
	return nil
}

// EnumAccess decodes the variant discriminant of an enum opened by
// DecodeEnum, producing a VariantAccess for the payload.
type EnumAccess struct {
	d       *Decoder
	wrapped bool
}

// Wrapped reports whether this enum used the {variant: payload} map-of-one
// wire shape (a variant carrying a payload) rather than a bare variant
// name string (a payload-less unit variant).
func (e *EnumAccess) Wrapped() bool { return e.wrapped }

// Variant decodes the variant name/tag via fn and returns an accessor for
// its payload (if any).
func (e *EnumAccess) Variant(fn func(d *Decoder) error) (*VariantAccess, error) {
	if err := fn(e.d); err != nil {
		return nil, err
	}
	return &VariantAccess{d: e.d}, nil
}

// VariantAccess decodes the payload of one enum variant, shaped by how it
// was serialized: nothing (unit), a single value (newtype), a sequence
// (tuple), or a map (struct), mirroring serialize.rs's four
// serialize_*_variant methods.
type VariantAccess struct {
	d *Decoder
}

// UnitVariant finishes a unit variant. It reads nothing and does not check
// whether a payload follows.
func (v *VariantAccess) UnitVariant() error { return nil }

// NewtypeVariant decodes a single payload value via fn.
func (v *VariantAccess) NewtypeVariant(fn func(d *Decoder) error) error {
	return fn(v.d)
}

// TupleVariant decodes the payload as an array, visited by visitor.
func (v *VariantAccess) TupleVariant(visitor Visitor) (any, error) {
	s, err := v.d.DecodeSeq()
	if err != nil {
		return nil, err
	}
	return visitor.VisitSeq(s)
}

// StructVariant decodes the payload as a map, visited by visitor.
func (v *VariantAccess) StructVariant(visitor Visitor) (any, error) {
	m, err := v.d.DecodeMap()
	if err != nil {
		return nil, err
	}
	return visitor.VisitMap(m)
}

// DecodeAny performs self-describing decode, dispatching on the wire
// header alone rather than a type the caller already expects. This is the
// pull-based heart of the codec: the only place a decode method inspects
// the full header space instead of checking for one expected shape.
//
// Every arm, including the 16-bit text-length one, consumes the peek slot
// exactly once, via peekAndConsume (see DESIGN.md's "double-consume"
// decision).
func (d *Decoder) DecodeAny(v Visitor) (any, error) {
	peek, err := d.peekAndConsume()
	if err != nil {
		return nil, err
	}
	major, arg := splitHeader(peek)

	switch peek {
	case headerFalse:
		return v.VisitBool(false)
	case headerTrue:
		return v.VisitBool(true)
	case headerNull:
		return v.VisitNone()
	case headerUndefined:
		return v.VisitUnit()
	case headerFloat16:
		f, err := d.decodeF16()
		if err != nil {
			return nil, err
		}
		return v.VisitF32(f)
	case headerFloat32:
		f, err := readF32(d.r)
		if err != nil {
			return nil, err
		}
		return v.VisitF32(f)
	case headerFloat64:
		f, err := readF64(d.r)
		if err != nil {
			return nil, err
		}
		return v.VisitF64(f)
	case headerBreak:
		return nil, unexpectedError(peek, "any other header")
	}

	switch major {
	case majorPositive:
		switch arg {
		case sizeU8:
			n, err := readU8(d.r)
			if err != nil {
				return nil, err
			}
			return v.VisitU8(n)
		case sizeU16:
			n, err := readU16(d.r)
			if err != nil {
				return nil, err
			}
			return v.VisitU16(n)
		case sizeU32:
			n, err := readU32(d.r)
			if err != nil {
				return nil, err
			}
			return v.VisitU32(n)
		case sizeU64:
			n, err := readU64(d.r)
			if err != nil {
				return nil, err
			}
			return v.VisitU64(n)
		case sizeIndefinite:
			return nil, unsupportedError(peek)
		default:
			if arg < sizeU8 {
				return v.VisitU8(arg)
			}
			// argument 28-30: reserved, no defined meaning.
			return nil, unassignedError(peek)
		}

	case majorNegative:
		switch arg {
		case sizeU8:
			n, err := readU8(d.r)
			if err != nil {
				return nil, err
			}
			if n > math.MaxInt8 {
				return nil, numericalError(uint64(n), 8)
			}
			return v.VisitI8(int8(-1 - int16(n)))
		case sizeU16:
			n, err := readU16(d.r)
			if err != nil {
				return nil, err
			}
			if n > math.MaxInt16 {
				return nil, numericalError(uint64(n), 16)
			}
			return v.VisitI16(int16(-1 - int32(n)))
		case sizeU32:
			n, err := readU32(d.r)
			if err != nil {
				return nil, err
			}
			if n > math.MaxInt32 {
				return nil, numericalError(uint64(n), 32)
			}
			return v.VisitI32(int32(-1 - int64(n)))
		case sizeU64:
			n, err := readU64(d.r)
			if err != nil {
				return nil, err
			}
			if n > math.MaxInt64 {
				return nil, numericalError(n, 64)
			}
			return v.VisitI64(-1 - int64(n))
		case sizeIndefinite:
			return nil, unsupportedError(peek)
		default:
			if arg < sizeU8 {
				return v.VisitI8(-1 - int8(arg))
			}
			// argument 28-30: reserved, no defined meaning.
			return nil, unassignedError(peek)
		}

	case majorBytes:
		n, err := d.lengthFromArg(peek, arg)
		if err != nil {
			return nil, err
		}
		b, err := d.r.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		return v.VisitBytes(b)

	case majorText:
		n, err := d.lengthFromArg(peek, arg)
		if err != nil {
			return nil, err
		}
		b, err := d.r.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b.Data) {
			return nil, backendError(errInvalidUTF8)
		}
		return v.VisitString(string(b.Data))

	case majorArray:
		n, err := d.lengthFromArg(peek, arg)
		if err != nil {
			return nil, err
		}
		if err := d.depth.enter(); err != nil {
			return nil, err
		}
		s := &SeqAccess{d: d, len: n}
		if n == 0 {
			d.depth.exit()
		}
		return v.VisitSeq(s)

	case majorMap:
		n, err := d.lengthFromArg(peek, arg)
		if err != nil {
			return nil, err
		}
		if err := d.depth.enter(); err != nil {
			return nil, err
		}
		m := &MapAccess{d: d, len: n}
		if n == 0 {
			d.depth.exit()
		}
		return v.VisitMap(m)

	case majorTag:
		return nil, unsupportedError(peek)
	}

	return nil, unassignedError(peek)
}

// lengthFromArg resolves a length argument already known to belong to a
// byte/text/array/map header (the peek has already been consumed and its
// major type checked by the caller), covering the inline/u8/u16/u32/u64
// ladder shared by those four major types in deserialize_any. peek is the
// already-consumed header byte, kept only to label the Unsupported error
// on an indefinite-length item.
func (d *Decoder) lengthFromArg(peek, arg byte) (int, error) {
	switch {
	case arg < sizeU8:
		return int(arg), nil
	case arg == sizeU8:
		v, err := readU8(d.r)
		return int(v), err
	case arg == sizeU16:
		v, err := readU16(d.r)
		return int(v), err
	case arg == sizeU32:
		v, err := readU32(d.r)
		return int(v), err
	case arg == sizeU64:
		v, err := readU64(d.r)
		if v > uint64(^uint(0)>>1) {
			return 0, messageError("length exceeds platform int range", nil)
		}
		return int(v), err
	case arg == sizeIndefinite:
		return 0, unsupportedError(peek)
	default:
		// argument 28-30: reserved, no defined meaning. deserialize_any
		// routes purely on header classification, so this is the one path
		// that actually surfaces Unassigned rather than Unexpected.
		return 0, unassignedError(peek)
	}
}
