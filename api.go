package cbor

import "io"

// EncodeToSlice writes v into buf (used up to its capacity) and returns
// the portion written. Mirrors oy3o-codec's MarshalToGeneric entry point,
// adapted from a fixed-size Codec call to this codec's Marshaler.
func EncodeToSlice(buf []byte, v Marshaler, opts ...EncoderOption) ([]byte, error) {
	w := NewSliceWriter(buf)
	e := NewEncoder(w, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeToStream writes v to an arbitrary io.Writer.
func EncodeToStream(w io.Writer, v Marshaler, opts ...EncoderOption) error {
	if w == nil {
		return ErrNilIO
	}
	e := NewEncoder(NewStreamWriter(w), opts...)
	return e.Encode(v)
}

// DecodeFromSlice decodes v from buf, returning the number of bytes
// consumed. The decoded value may borrow directly from buf (see Bytes in
// reader.go); buf must outlive v in that case.
func DecodeFromSlice(buf []byte, v Unmarshaler, opts ...DecoderOption) (int, error) {
	r := NewSliceReader(buf)
	d := NewDecoder(r, opts...)
	if err := v.UnmarshalCBOR(d); err != nil {
		return 0, err
	}
	return r.Len(), nil
}

// DecodeFromStream decodes v from an arbitrary io.Reader. Every Bytes
// produced along the way is Scratch (Borrowed == false): a StreamReader
// has no stable backing array to lend past its own next call.
func DecodeFromStream(r io.Reader, v Unmarshaler, opts ...DecoderOption) error {
	if r == nil {
		return ErrNilIO
	}
	d := NewDecoder(NewStreamReader(r), opts...)
	return v.UnmarshalCBOR(d)
}

// DecodeFromLimitedStream is DecodeFromStream with the StreamReader's
// internal scratch buffer capped at capacity, rejecting any single item
// whose length argument would grow it past that bound. Use this when
// decoding from an untrusted stream where an attacker-controlled length
// prefix could otherwise force an unbounded allocation.
func DecodeFromLimitedStream(r io.Reader, capacity int, v Unmarshaler, opts ...DecoderOption) error {
	if r == nil {
		return ErrNilIO
	}
	d := NewDecoder(NewLimitedStreamReader(r, capacity), opts...)
	return v.UnmarshalCBOR(d)
}
