package cbor

import "io"

// StreamWriter is a Writer that forwards to an arbitrary io.Writer,
// propagating whatever error the sink returns.
type StreamWriter struct {
	w io.Writer
}

var _ Writer = (*StreamWriter)(nil)

// NewStreamWriter wraps w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// Write implements Writer.
func (w *StreamWriter) Write(p []byte) (int, error) {
	return w.w.Write(p)
}
