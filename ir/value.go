package ir

import (
	"maps"
	"slices"
	"time"
)

// Value is a single value in a loom document. The Kind field selects
// the variant; the remaining fields are populated per kind:
//
//   - BoolKind: Bool
//   - IntKind: Int64
//   - FloatKind: Float64
//   - StringKind: Str
//   - BytesKind: Bytes
//   - TimeKind: Time
//   - RefKind: Ref
//   - ListKind: Values (order significant)
//   - MapKind: Fields (source order preserved, keys need not be unique)
//   - StructKind: Name (type name) + Fields
//   - SumKind: Name (tag) + Values (empty, or a single payload)
type Value struct {
	Kind Kind

	Bool    bool
	Int64   int64
	Float64 float64
	Str     string
	Bytes   []byte
	Time    time.Time
	Ref     RefID

	Name   string
	Values []*Value
	Fields []Field
}

// Field is one key=value entry of a Map or Struct.
type Field struct {
	Key   string
	Value *Value
}

func Null() *Value {
	return &Value{Kind: NullKind}
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: IntKind, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Kind: FloatKind, Float64: v}
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, Str: v}
}

func FromBytes(d []byte) *Value {
	return &Value{Kind: BytesKind, Bytes: d}
}

func FromTime(t time.Time) *Value {
	return &Value{Kind: TimeKind, Time: t}
}

func FromRef(prefix, value string) *Value {
	return &Value{Kind: RefKind, Ref: RefID{Prefix: prefix, Value: value}}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Kind: ListKind, Values: vs}
}

// FromMap builds a map value with entries in sorted key order.
func FromMap(m map[string]*Value) *Value {
	res := &Value{Kind: MapKind}
	res.Fields = make([]Field, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, Field{Key: key, Value: m[key]})
	}
	return res
}

// FromKeyVals builds a map value preserving entry order. Duplicate
// keys are kept as given; the canonical encoder sorts but never
// deduplicates them.
func FromKeyVals(fields []Field) *Value {
	return &Value{Kind: MapKind, Fields: fields}
}

func FromStruct(name string, fields []Field) *Value {
	return &Value{Kind: StructKind, Name: name, Fields: fields}
}

// FromSum builds a tagged-sum value. A nil payload yields the bare
// form tag().
func FromSum(tag string, payload *Value) *Value {
	res := &Value{Kind: SumKind, Name: tag}
	if payload != nil {
		res.Values = []*Value{payload}
	}
	return res
}

// Payload returns the sum payload, or nil for other kinds and for
// payload-less sums.
func (v *Value) Payload() *Value {
	if v.Kind != SumKind || len(v.Values) == 0 {
		return nil
	}
	return v.Values[0]
}

// Get returns the value of the first field named key, or nil.
func (v *Value) Get(key string) *Value {
	for i := range v.Fields {
		if v.Fields[i].Key == key {
			return v.Fields[i].Value
		}
	}
	return nil
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Kind = v.Kind
	dst.Bool = v.Bool
	dst.Int64 = v.Int64
	dst.Float64 = v.Float64
	dst.Str = v.Str
	dst.Time = v.Time
	dst.Ref = v.Ref
	dst.Name = v.Name
	if v.Bytes != nil {
		dst.Bytes = slices.Clone(v.Bytes)
	}
	if v.Values != nil {
		dst.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			if vv != nil {
				dst.Values[i] = vv.Clone()
			}
		}
	}
	if v.Fields != nil {
		dst.Fields = make([]Field, len(v.Fields))
		for i := range v.Fields {
			dst.Fields[i] = Field{Key: v.Fields[i].Key}
			if vv := v.Fields[i].Value; vv != nil {
				dst.Fields[i].Value = vv.Clone()
			}
		}
	}
	return dst
}

// Visit walks v pre- and post-order. f is called with isPost false
// before children and true after; returning false from the pre call
// skips the children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if vv == nil {
				continue
			}
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
		for i := range v.Fields {
			if vv := v.Fields[i].Value; vv != nil {
				if err := vv.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	_, err = f(v, true)
	return err
}
