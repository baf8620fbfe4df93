package cbor

import (
	"encoding/binary"
	"math"
)

// Bytes is the result of Reader.ReadBytes: it carries the payload together
// with a tag distinguishing whether the slice is Borrowed from the
// underlying input (safe to hold onto for as long as the input lives) or
// Scratch (owned by the reader, valid only until the reader's next call).
// Go has no lifetimes to encode that distinction in the type system, so
// it travels as an explicit bool instead, and callers (decode.go) use it
// to decide whether a value can be handed out zero-copy.
type Bytes struct {
	Data     []byte
	Borrowed bool
}

// Reader is the byte-source capability the decoder drives. A Reader never
// buffers more than the caller asks for; callers that need a lookahead
// byte do so through Decoder's own one-byte peek slot (decode.go), not
// through this interface.
type Reader interface {
	// ReadBytes reads exactly n bytes or fails. The returned Bytes.Data
	// is only valid until the Reader's next call unless Bytes.Borrowed
	// is true.
	ReadBytes(n int) (Bytes, error)
}

// The following free functions read big-endian primitives atop Reader.
// Go interfaces can't carry default method bodies, so rather than
// duplicate this decoding in every Reader implementation, it lives once
// as package-level helpers built on the single ReadBytes primitive.

func readU8(r Reader) (byte, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b.Data[0], nil
}

func readU16(r Reader) (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.Data), nil
}

func readU32(r Reader) (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.Data), nil
}

func readU64(r Reader) (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b.Data), nil
}

func readF32(r Reader) (float32, error) {
	v, err := readU32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func readF64(r Reader) (float64, error) {
	v, err := readU64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
