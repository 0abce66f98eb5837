package canon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/loom-format/go-loom/ir"
	"github.com/signadot/loom-format/go-loom/token"
)

// Canonicalize renders v in canonical form under the given options.
// The result is a pure function of v and the options: source field
// order of maps and structs never affects output, list order always
// does. It fails with ErrInvalidNumber on NaN or infinite floats and
// with ErrTooDeep past the depth limit; all other inputs succeed.
func Canonicalize(v *ir.Value, opts ...Option) (string, error) {
	es := newEncState(opts)
	b := &strings.Builder{}
	if err := encode(b, v, es); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode(b *strings.Builder, v *ir.Value, es *encState) error {
	es.depth++
	defer func() { es.depth-- }()
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: nesting exceeds %d", ErrTooDeep, es.maxDepth)
	}
	if v == nil {
		b.WriteString(es.nullToken)
		return nil
	}
	switch v.Kind {
	case ir.NullKind:
		b.WriteString(es.nullToken)
	case ir.BoolKind:
		b.WriteString(canonBool(v.Bool))
	case ir.IntKind:
		b.WriteString(canonInt(v.Int64))
	case ir.FloatKind:
		s, err := canonFloat(v.Float64)
		if err != nil {
			return err
		}
		b.WriteString(s)
	case ir.StringKind:
		b.WriteString(canonString(v.Str, es.nullToken))
	case ir.BytesKind:
		b.WriteString(canonBytes(v.Bytes))
	case ir.TimeKind:
		b.WriteString(canonTime(v.Time))
	case ir.RefKind:
		b.WriteString(canonRef(v.Ref))
	case ir.ListKind:
		return encodeList(b, v, es)
	case ir.MapKind:
		return encodeFields(b, "", v.Fields, es)
	case ir.StructKind:
		return encodeFields(b, v.Name, v.Fields, es)
	case ir.SumKind:
		return encodeSum(b, v, es)
	default:
		return fmt.Errorf("unrecognized kind %d", v.Kind)
	}
	return nil
}

func encodeList(b *strings.Builder, v *ir.Value, es *encState) error {
	if es.tabular {
		done, err := tryTabular(b, v.Values, es)
		if err != nil || done {
			return err
		}
	}
	b.WriteByte('[')
	for i, item := range v.Values {
		if i > 0 {
			b.WriteByte(' ')
		}
		if err := encode(b, item, es); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

// encodeFields writes a map or struct body. A struct differs from a
// map only by the type name prefix. Entries sort by the canonical
// text of their keys; the sort is stable so duplicate keys stay
// adjacent in source order.
func encodeFields(b *strings.Builder, name string, fields []ir.Field, es *encState) error {
	b.WriteString(name)
	b.WriteByte('{')
	entries := make([]keyedField, len(fields))
	for i := range fields {
		entries[i] = keyedField{
			text:  token.QuoteIfNeeded(fields[i].Key, es.nullToken),
			value: fields[i].Value,
		}
	}
	slices.SortStableFunc(entries, func(a, b keyedField) int {
		return strings.Compare(a.text, b.text)
	})
	for i := range entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(entries[i].text)
		b.WriteByte('=')
		if err := encode(b, entries[i].value, es); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

type keyedField struct {
	text  string
	value *ir.Value
}

func encodeSum(b *strings.Builder, v *ir.Value, es *encState) error {
	b.WriteString(v.Name)
	b.WriteByte('(')
	if p := v.Payload(); p != nil {
		if err := encode(b, p, es); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}
