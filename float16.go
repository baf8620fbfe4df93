package cbor

import "github.com/x448/float16"

// widenFloat16 decodes a half-precision float argument and widens it to
// float32. This codec never emits half-precision on encode, only reads it
// back on decode, so the one external dependency it needs is a bit-level
// float16->float32 conversion; github.com/x448/float16 is the same
// dependency fxamacker/cbor (the dominant Go CBOR implementation) uses
// for the same purpose.
func widenFloat16(bits uint16) float32 {
	return float16.Frombits(bits).Float32()
}
