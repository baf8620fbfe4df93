package cbor

// Wire-level constants for the CBOR major types and header bytes this
// codec supports, following the argument/major-type layout in RFC 8949.

const (
	majorPositive byte = 0
	majorNegative byte = 1
	majorBytes    byte = 2
	majorText     byte = 3
	majorArray    byte = 4
	majorMap      byte = 5
	majorTag      byte = 6
	majorSimple   byte = 7
)

// Argument size classes: for argument < sizeU8 the value is inline in
// the header byte; sizeU8/16/32/64 mean the argument follows in that
// many big-endian bytes; sizeIndefinite marks an unsupported
// indefinite-length item (or, under majorSimple, the break code).
const (
	sizeU8         byte = 24
	sizeU16        byte = 25
	sizeU32        byte = 26
	sizeU64        byte = 27
	sizeIndefinite byte = 31
)

func header(major, arg byte) byte { return major<<5 | arg }

var (
	headerPositiveStart = header(majorPositive, 0)
	headerPositiveU8    = header(majorPositive, sizeU8)
	headerPositiveU16   = header(majorPositive, sizeU16)
	headerPositiveU32   = header(majorPositive, sizeU32)
	headerPositiveU64   = header(majorPositive, sizeU64)

	headerNegativeStart = header(majorNegative, 0)
	headerNegativeU8    = header(majorNegative, sizeU8)
	headerNegativeU16   = header(majorNegative, sizeU16)
	headerNegativeU32   = header(majorNegative, sizeU32)
	headerNegativeU64   = header(majorNegative, sizeU64)

	headerBytesStart      = header(majorBytes, 0)
	headerBytesU8         = header(majorBytes, sizeU8)
	headerBytesU16        = header(majorBytes, sizeU16)
	headerBytesU32        = header(majorBytes, sizeU32)
	headerBytesU64        = header(majorBytes, sizeU64)
	headerBytesIndefinite = header(majorBytes, sizeIndefinite)

	headerTextStart      = header(majorText, 0)
	headerTextU8         = header(majorText, sizeU8)
	headerTextU16        = header(majorText, sizeU16)
	headerTextU32        = header(majorText, sizeU32)
	headerTextU64        = header(majorText, sizeU64)
	headerTextIndefinite = header(majorText, sizeIndefinite)

	headerArrayStart      = header(majorArray, 0)
	headerArrayU8         = header(majorArray, sizeU8)
	headerArrayU16        = header(majorArray, sizeU16)
	headerArrayU32        = header(majorArray, sizeU32)
	headerArrayU64        = header(majorArray, sizeU64)
	headerArrayIndefinite = header(majorArray, sizeIndefinite)

	headerMapStart      = header(majorMap, 0)
	headerMapU8         = header(majorMap, sizeU8)
	headerMapU16        = header(majorMap, sizeU16)
	headerMapU32        = header(majorMap, sizeU32)
	headerMapU64        = header(majorMap, sizeU64)
	headerMapIndefinite = header(majorMap, sizeIndefinite)

	headerTagStart = header(majorTag, 0)
	headerTagU8    = header(majorTag, sizeU8)
	headerTagU16   = header(majorTag, sizeU16)
	headerTagU32   = header(majorTag, sizeU32)
	headerTagU64   = header(majorTag, sizeU64)

	headerFalse     = header(majorSimple, 20)
	headerTrue      = header(majorSimple, 21)
	headerNull      = header(majorSimple, 22)
	headerUndefined = header(majorSimple, 23)
	headerFloat16   = header(majorSimple, sizeU16)
	headerFloat32   = header(majorSimple, sizeU32)
	headerFloat64   = header(majorSimple, sizeU64)
	headerBreak     = header(majorSimple, sizeIndefinite)

	// headerMapOne is the one-entry map header used to frame every
	// enum variant other than the unit variant: {name: payload}.
	headerMapOne = header(majorMap, 1)
)
