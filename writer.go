package cbor

import "encoding/binary"

// Writer is the byte-sink capability the encoder drives, mirroring
// oy3o-codec's WriterPro.Write.
type Writer interface {
	Write(b []byte) (int, error)
}

// The following free functions write big-endian primitives atop Writer,
// for the same reason readU8/readU16/... in reader.go are free functions
// rather than Writer methods: Go interfaces have no default method
// bodies.

func writeU16(w Writer, v uint16) (int, error) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return w.Write(buf[:])
}

func writeU32(w Writer, v uint32) (int, error) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return w.Write(buf[:])
}

func writeU64(w Writer, v uint64) (int, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return w.Write(buf[:])
}
