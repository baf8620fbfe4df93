package cbor

import (
	"bytes"
	"sync"
)

// bufferPool reuses *bytes.Buffer scratch space across EncodeToBytes
// calls, the same role oy3o-codec's bytesBufPool (bufpool.go, since
// deleted in favor of this CBOR-domain equivalent) plays for its own
// variable-length encode/decode paths: pooling avoids a fresh allocation
// per call for the common case of small, short-lived CBOR items.
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// EncodeToBytes encodes v into a freshly allocated []byte sized to fit,
// using a pooled buffer as scratch space rather than growing one from
// zero on every call.
func EncodeToBytes(v Marshaler, opts ...EncoderOption) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	e := NewEncoder(NewStreamWriter(buf), opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
