package cbor

import "encoding/binary"

// writeHeaderU8 writes the smallest header for (major, arg), folding
// arg < sizeU8 directly into the tag byte.
func writeHeaderU8(w Writer, buf *[9]byte, major, arg byte) (int, error) {
	if arg < sizeU8 {
		buf[0] = header(major, arg)
		return w.Write(buf[:1])
	}
	buf[0] = header(major, sizeU8)
	buf[1] = arg
	return w.Write(buf[:2])
}

// writeHeaderU16 falls through to writeHeaderU8 when arg fits in a byte.
func writeHeaderU16(w Writer, buf *[9]byte, major byte, arg uint16) (int, error) {
	if arg <= 0xFF {
		return writeHeaderU8(w, buf, major, byte(arg))
	}
	buf[0] = header(major, sizeU16)
	binary.BigEndian.PutUint16(buf[1:], arg)
	return w.Write(buf[:3])
}

// writeHeaderU32 falls through to writeHeaderU16.
func writeHeaderU32(w Writer, buf *[9]byte, major byte, arg uint32) (int, error) {
	if arg <= 0xFFFF {
		return writeHeaderU16(w, buf, major, uint16(arg))
	}
	buf[0] = header(major, sizeU32)
	binary.BigEndian.PutUint32(buf[1:], arg)
	return w.Write(buf[:5])
}

// writeHeaderU64 falls through to writeHeaderU32. This is the encoder's
// single entry point: minimality is structural (always fall through from
// wide to narrow) rather than a branch-per-width.
func writeHeaderU64(w Writer, buf *[9]byte, major byte, arg uint64) (int, error) {
	if arg <= 0xFFFFFFFF {
		return writeHeaderU32(w, buf, major, uint32(arg))
	}
	buf[0] = header(major, sizeU64)
	binary.BigEndian.PutUint64(buf[1:], arg)
	return w.Write(buf[:9])
}

// splitHeader separates a raw header byte into its major type and
// 5-bit argument.
func splitHeader(b byte) (major, arg byte) {
	return b >> 5, b & 0x1F
}
