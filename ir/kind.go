package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	BytesKind
	TimeKind
	RefKind
	ListKind
	MapKind
	StructKind
	SumKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		IntKind:    "Int",
		FloatKind:  "Float",
		StringKind: "String",
		BytesKind:  "Bytes",
		TimeKind:   "Time",
		RefKind:    "Ref",
		ListKind:   "List",
		MapKind:    "Map",
		StructKind: "Struct",
		SumKind:    "Sum",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Bool":   BoolKind,
		"Int":    IntKind,
		"Float":  FloatKind,
		"String": StringKind,
		"Bytes":  BytesKind,
		"Time":   TimeKind,
		"Ref":    RefKind,
		"List":   ListKind,
		"Map":    MapKind,
		"Struct": StructKind,
		"Sum":    SumKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		FloatKind,
		StringKind,
		BytesKind,
		TimeKind,
		RefKind,
		ListKind,
		MapKind,
		StructKind,
		SumKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ListKind, MapKind, StructKind, SumKind:
		return false
	default:
		return true
	}
}

// IsRecord reports whether the kind carries key=value fields.
func (k Kind) IsRecord() bool {
	return k == MapKind || k == StructKind
}
