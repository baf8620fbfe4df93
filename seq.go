package cbor

// Codec is satisfied by any pointer-to-element type usable as a Slice
// element: encodable by value, decodable through a pointer receiver. This
// mirrors oy3o-codec's own Codec interface (list.go's `list[T Codec]`),
// generalized from that package's fixed-size binary Codec to this
// package's CBOR Marshaler/Unmarshaler pair.
type Codec interface {
	Marshaler
	Unmarshaler
}

// Slice is a CBOR array codec for any element type satisfying Codec,
// adapted from oy3o-codec's generic list[T Codec] (list.go): where that
// type padded fixed-width binary records to an alignment boundary between
// elements, CBOR arrays are already self-delimiting, so Slice carries no
// alignment option and decodes exactly the count the wire header reports,
// replacing whatever Items held before.
type Slice[T Codec] struct {
	Items []T

	// New constructs a fresh *T to decode into. Required because Go has
	// no way to instantiate "the zero value of a type parameter's pointee"
	// generically; callers typically pass `func() T { return new(E) }` for
	// a concrete element type E.
	New func() T
}

// NewSlice wraps items for encoding, or (with nil items) an empty Slice
// ready to decode elements constructed by newElem.
func NewSlice[T Codec](items []T, newElem func() T) *Slice[T] {
	return &Slice[T]{Items: items, New: newElem}
}

// MarshalCBOR writes the array header followed by each element in order.
func (s *Slice[T]) MarshalCBOR(e *Encoder) error {
	if err := e.EncodeArrayHeader(len(s.Items)); err != nil {
		return err
	}
	defer e.EndComposite()
	for _, item := range s.Items {
		if err := e.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalCBOR reads the array header and decodes exactly that many
// elements, constructing each with New.
func (s *Slice[T]) UnmarshalCBOR(d *Decoder) error {
	seq, err := d.DecodeSeq()
	if err != nil {
		return err
	}
	items := make([]T, 0, seq.Len())
	for {
		item := s.New()
		ok, err := seq.Next(func(d *Decoder) error {
			return item.UnmarshalCBOR(d)
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		items = append(items, item)
	}
	s.Items = items
	return nil
}
