package cbor

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// structPlanCache avoids paying struct-tag reflection on every encode/
// decode call, the same role oy3o-codec's sizeCache (fixed.go, since
// deleted in favor of this CBOR-domain equivalent) plays for its
// binary.Size lookups: a global concurrent map keyed by reflect.Type.
var structPlanCache = xsync.NewMap[reflect.Type, *structPlan]()

type structField struct {
	name  string
	index int
}

type structPlan struct {
	fields []structField
	byName map[string]int
}

func planFor(t reflect.Type) *structPlan {
	if p, ok := structPlanCache.Load(t); ok {
		return p
	}
	p := buildPlan(t)
	// A concurrent duplicate build is harmless and cheap to discard: both
	// plans describe the same type, so whichever wins the race is fine.
	p, _ = structPlanCache.LoadOrStore(t, p)
	return p
}

// buildPlan reads `cbor:"name"` struct tags, skipping unexported fields
// and fields tagged `cbor:"-"`. A field with no tag keys by its Go name.
func buildPlan(t reflect.Type) *structPlan {
	p := &structPlan{byName: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get("cbor")
		if tag == "-" {
			continue
		}
		name := f.Name
		if tag != "" {
			name = tag
		}
		p.fields = append(p.fields, structField{name: name, index: i})
		p.byName[name] = i
	}
	return p
}

// Struct adapts any struct Payload whose fields all implement Codec into a
// CBOR map keyed by field name, the reflective counterpart to hand-writing
// MarshalCBOR/UnmarshalCBOR for every field in order. Adapted from
// oy3o-codec's Fixed[Payload] (fixed.go): where Fixed maps a struct onto a
// fixed-size binary layout via encoding/binary, Struct maps it onto a CBOR
// map via this package's own Marshaler/Unmarshaler.
//
// Unknown map keys encountered on decode are skipped rather than
// rejected by default, matching the common wire-compatibility stance of
// treating unrecognized fields as forward-compatible noise.
type Struct[Payload any] struct {
	Payload Payload
}

func (s *Struct[Payload]) plan() *structPlan {
	return planFor(reflect.TypeOf(s.Payload))
}

func (s *Struct[Payload]) MarshalCBOR(e *Encoder) error {
	plan := s.plan()
	if err := e.EncodeMapHeader(len(plan.fields)); err != nil {
		return err
	}
	defer e.EndComposite()

	v := reflect.ValueOf(&s.Payload).Elem()
	for _, f := range plan.fields {
		if err := e.EncodeString(f.name); err != nil {
			return err
		}
		m, err := fieldMarshaler(v.Field(f.index), f.name)
		if err != nil {
			return err
		}
		if err := e.Encode(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Struct[Payload]) UnmarshalCBOR(d *Decoder) error {
	plan := s.plan()
	m, err := d.DecodeMap()
	if err != nil {
		return err
	}
	v := reflect.ValueOf(&s.Payload).Elem()

	for {
		var key string
		ok, err := m.NextKey(func(d *Decoder) error {
			k, err := d.DecodeIdentifier()
			key = k
			return err
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		idx, known := plan.byName[key]
		if err := m.NextValue(func(d *Decoder) error {
			if !known {
				_, err := d.DecodeAny(discardVisitor{})
				return err
			}
			u, err := fieldUnmarshaler(v.Field(idx), key)
			if err != nil {
				return err
			}
			return u.UnmarshalCBOR(d)
		}); err != nil {
			return err
		}
	}
	return nil
}

func fieldMarshaler(fv reflect.Value, name string) (Marshaler, error) {
	if m, ok := fv.Interface().(Marshaler); ok {
		return m, nil
	}
	if fv.CanAddr() {
		if m, ok := fv.Addr().Interface().(Marshaler); ok {
			return m, nil
		}
	}
	return nil, messageError("field \""+name+"\" does not implement cbor.Marshaler", nil)
}

func fieldUnmarshaler(fv reflect.Value, name string) (Unmarshaler, error) {
	if fv.CanAddr() {
		if u, ok := fv.Addr().Interface().(Unmarshaler); ok {
			return u, nil
		}
	}
	return nil, messageError("field \""+name+"\" does not implement cbor.Unmarshaler", nil)
}

// discardVisitor implements Visitor by decoding and throwing away any
// value, recursing into sequences, maps, and enum payloads. Used to skip
// a struct field whose map key has no match in the destination type's
// plan.
type discardVisitor struct{ Unimplemented }

func (discardVisitor) VisitBool(bool) (any, error)     { return nil, nil }
func (discardVisitor) VisitU8(uint8) (any, error)      { return nil, nil }
func (discardVisitor) VisitU16(uint16) (any, error)    { return nil, nil }
func (discardVisitor) VisitU32(uint32) (any, error)    { return nil, nil }
func (discardVisitor) VisitU64(uint64) (any, error)    { return nil, nil }
func (discardVisitor) VisitI8(int8) (any, error)       { return nil, nil }
func (discardVisitor) VisitI16(int16) (any, error)     { return nil, nil }
func (discardVisitor) VisitI32(int32) (any, error)     { return nil, nil }
func (discardVisitor) VisitI64(int64) (any, error)     { return nil, nil }
func (discardVisitor) VisitF32(float32) (any, error)   { return nil, nil }
func (discardVisitor) VisitF64(float64) (any, error)   { return nil, nil }
func (discardVisitor) VisitString(string) (any, error) { return nil, nil }
func (discardVisitor) VisitBytes(Bytes) (any, error)   { return nil, nil }
func (discardVisitor) VisitNone() (any, error)         { return nil, nil }
func (discardVisitor) VisitUnit() (any, error)          { return nil, nil }

func (discardVisitor) VisitSome(d *Decoder) (any, error) {
	return d.DecodeAny(discardVisitor{})
}

func (discardVisitor) VisitSeq(s *SeqAccess) (any, error) {
	for {
		ok, err := s.Next(func(d *Decoder) error {
			_, err := d.DecodeAny(discardVisitor{})
			return err
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}
}

func (discardVisitor) VisitMap(m *MapAccess) (any, error) {
	for {
		ok, err := m.NextKey(func(d *Decoder) error {
			_, err := d.DecodeAny(discardVisitor{})
			return err
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if err := m.NextValue(func(d *Decoder) error {
			_, err := d.DecodeAny(discardVisitor{})
			return err
		}); err != nil {
			return nil, err
		}
	}
}

func (discardVisitor) VisitEnum(e *EnumAccess) (any, error) {
	va, err := e.Variant(func(d *Decoder) error {
		_, err := d.DecodeAny(discardVisitor{})
		return err
	})
	if err != nil {
		return nil, err
	}
	if !e.Wrapped() {
		return nil, nil
	}
	return nil, va.NewtypeVariant(func(d *Decoder) error {
		_, err := d.DecodeAny(discardVisitor{})
		return err
	})
}
