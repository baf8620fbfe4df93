package cbor

// defaultMaxDepth bounds nested composites (arrays/maps) so that
// adversarial nesting can't blow the call stack instead of just
// returning an error. Composite nesting depth equals call-stack depth for
// both Encoder and Decoder, so the guard is a plain counter threaded
// through every array/map descent on decode (DecodeSeq, DecodeMap and
// DecodeAny, released by SeqAccess/MapAccess) and every
// EncodeArrayHeader/EncodeMapHeader/EndComposite pair (encode.go). The
// one-entry map that wraps an enum variant is not counted on either side.
const defaultMaxDepth = 256

// depthGuard tracks composite nesting and rejects descent past a limit.
type depthGuard struct {
	max     int
	current int
}

func newDepthGuard(max int) depthGuard {
	if max <= 0 {
		max = defaultMaxDepth
	}
	return depthGuard{max: max}
}

func (d *depthGuard) enter() error {
	if d.current >= d.max {
		return ErrDepthExceeded
	}
	d.current++
	return nil
}

func (d *depthGuard) exit() {
	if d.current > 0 {
		d.current--
	}
}
