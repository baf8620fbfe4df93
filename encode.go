package cbor

import "math"

// Marshaler is implemented by any type that knows how to write itself to an
// Encoder. Unlike the pull-based decode side (decode.go), encoding a known
// Go value never needs callback polymorphism — the value already knows its
// own shape and just calls Encoder methods in sequence — so MarshalCBOR is
// a single push-style method rather than a Visitor-shaped interface.
type Marshaler interface {
	MarshalCBOR(e *Encoder) error
}

// Encoder writes CBOR items to a Writer. Callers drive it directly, one
// method call per value, the way a hand-written Marshaler implementation
// would.
type Encoder struct {
	w     Writer
	buf   [9]byte
	depth depthGuard
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption func(*Encoder)

// WithEncoderMaxDepth overrides the default composite-nesting limit (256).
func WithEncoderMaxDepth(max int) EncoderOption {
	return func(e *Encoder) { e.depth = newDepthGuard(max) }
}

// NewEncoder wraps w.
func NewEncoder(w Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{w: w, depth: newDepthGuard(defaultMaxDepth)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes v's CBOR representation.
func (e *Encoder) Encode(v Marshaler) error {
	return v.MarshalCBOR(e)
}

// CustomError wraps a Marshaler-raised message as a KindFramework error
// tagged Serializing. See Decoder.CustomError for the deserializing
// counterpart; keeping them separate methods means the direction tag is
// always correct for the call site, never inferred after the fact.
func (e *Encoder) CustomError(msg string) error {
	return frameworkError(Serializing, msg)
}

// EncodeBool writes a CBOR true/false simple value.
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		e.buf[0] = headerTrue
	} else {
		e.buf[0] = headerFalse
	}
	_, err := e.w.Write(e.buf[:1])
	return err
}

// EncodeNil writes the CBOR null simple value (major 7, argument 22).
func (e *Encoder) EncodeNil() error {
	e.buf[0] = headerNull
	_, err := e.w.Write(e.buf[:1])
	return err
}

// EncodeUndefined writes the CBOR undefined simple value (major 7,
// argument 23). Ported from serialize_unit in serialize.rs, which maps
// Rust's unit type `()` to CBOR undefined rather than null.
func (e *Encoder) EncodeUndefined() error {
	e.buf[0] = headerUndefined
	_, err := e.w.Write(e.buf[:1])
	return err
}

// EncodeI8 writes a signed integer using the zigzag-free sign-split CBOR
// encoding (major 0 for non-negative, major 1 for negative, ported from
// serialize.rs's serialize_i8..i64).
func (e *Encoder) EncodeI8(v int8) error {
	if v < 0 {
		_, err := writeHeaderU8(e.w, &e.buf, majorNegative, uint8(-(v + 1)))
		return err
	}
	_, err := writeHeaderU8(e.w, &e.buf, majorPositive, uint8(v))
	return err
}

func (e *Encoder) EncodeI16(v int16) error {
	if v < 0 {
		_, err := writeHeaderU16(e.w, &e.buf, majorNegative, uint16(-(v + 1)))
		return err
	}
	_, err := writeHeaderU16(e.w, &e.buf, majorPositive, uint16(v))
	return err
}

func (e *Encoder) EncodeI32(v int32) error {
	if v < 0 {
		_, err := writeHeaderU32(e.w, &e.buf, majorNegative, uint32(-(v + 1)))
		return err
	}
	_, err := writeHeaderU32(e.w, &e.buf, majorPositive, uint32(v))
	return err
}

func (e *Encoder) EncodeI64(v int64) error {
	if v < 0 {
		_, err := writeHeaderU64(e.w, &e.buf, majorNegative, uint64(-(v + 1)))
		return err
	}
	_, err := writeHeaderU64(e.w, &e.buf, majorPositive, uint64(v))
	return err
}

func (e *Encoder) EncodeU8(v uint8) error {
	_, err := writeHeaderU8(e.w, &e.buf, majorPositive, v)
	return err
}

func (e *Encoder) EncodeU16(v uint16) error {
	_, err := writeHeaderU16(e.w, &e.buf, majorPositive, v)
	return err
}

func (e *Encoder) EncodeU32(v uint32) error {
	_, err := writeHeaderU32(e.w, &e.buf, majorPositive, v)
	return err
}

func (e *Encoder) EncodeU64(v uint64) error {
	_, err := writeHeaderU64(e.w, &e.buf, majorPositive, v)
	return err
}

// EncodeF32 writes a 4-byte IEEE-754 float. The encoder never narrows to
// half-precision on write; float16 is decode-only.
func (e *Encoder) EncodeF32(v float32) error {
	e.buf[0] = headerFloat32
	bits := math.Float32bits(v)
	if _, err := e.w.Write(e.buf[:1]); err != nil {
		return err
	}
	_, err := writeU32(e.w, bits)
	return err
}

// EncodeF64 writes an 8-byte IEEE-754 float.
func (e *Encoder) EncodeF64(v float64) error {
	e.buf[0] = headerFloat64
	bits := math.Float64bits(v)
	if _, err := e.w.Write(e.buf[:1]); err != nil {
		return err
	}
	_, err := writeU64(e.w, bits)
	return err
}

// EncodeString writes a definite-length UTF-8 text item (major 3).
func (e *Encoder) EncodeString(s string) error {
	if _, err := writeHeaderU64(e.w, &e.buf, majorText, uint64(len(s))); err != nil {
		return err
	}
	_, err := e.w.Write([]byte(s))
	return err
}

// EncodeBytes writes a definite-length byte string item (major 2).
func (e *Encoder) EncodeBytes(b []byte) error {
	if _, err := writeHeaderU64(e.w, &e.buf, majorBytes, uint64(len(b))); err != nil {
		return err
	}
	_, err := e.w.Write(b)
	return err
}

// EncodeArrayHeader writes a definite-length array header (major 4) and
// enters one level of composite nesting. Callers must Encode exactly n
// elements and then call EndComposite. There is no unknown-length seq
// case: indefinite-length items are never emitted, so a caller that has
// not counted its elements (n < 0) gets ErrUnknownLength instead of a
// header carrying a nonsense huge length.
func (e *Encoder) EncodeArrayHeader(n int) error {
	if n < 0 {
		return messageError("array header requires a known length", ErrUnknownLength)
	}
	if err := e.depth.enter(); err != nil {
		return err
	}
	_, err := writeHeaderU64(e.w, &e.buf, majorArray, uint64(n))
	return err
}

// EncodeMapHeader writes a definite-length map header (major 5) and enters
// one level of composite nesting. Callers must Encode exactly n key/value
// pairs (2n values) and then call EndComposite. As with EncodeArrayHeader,
// n < 0 signals an uncounted length rather than being reinterpreted as a
// huge uint64.
func (e *Encoder) EncodeMapHeader(n int) error {
	if n < 0 {
		return messageError("map header requires a known length", ErrUnknownLength)
	}
	if err := e.depth.enter(); err != nil {
		return err
	}
	_, err := writeHeaderU64(e.w, &e.buf, majorMap, uint64(n))
	return err
}

// EndComposite exits one level of composite nesting entered by
// EncodeArrayHeader or EncodeMapHeader. CBOR definite-length items carry no
// closing marker, so this only adjusts the depth guard.
func (e *Encoder) EndComposite() {
	e.depth.exit()
}

// EncodeUnitVariant writes a unit enum variant as its variant name string.
func (e *Encoder) EncodeUnitVariant(variant string) error {
	return e.EncodeString(variant)
}

// EncodeVariantHeader writes the {variant: ...} single-entry map wrapper
// used for newtype/tuple/struct enum variants (serialize_newtype_variant,
// serialize_tuple_variant, serialize_struct_variant in serialize.rs).
// Callers follow this with whatever encodes the variant's payload.
func (e *Encoder) EncodeVariantHeader(variant string) error {
	e.buf[0] = headerMapOne
	if _, err := e.w.Write(e.buf[:1]); err != nil {
		return err
	}
	return e.EncodeString(variant)
}
