package gomap

import (
	"encoding/base64"
	"time"

	"github.com/signadot/loom-format/go-loom/ir"
)

// ToGo lowers an ir value to a generic Go value built from nil, bool,
// int64, float64, string, []any and map[string]any. Kinds JSON cannot
// express are lowered to strings or tagged maps; see the package doc.
func ToGo(v *ir.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ir.NullKind:
		return nil
	case ir.BoolKind:
		return v.Bool
	case ir.IntKind:
		return v.Int64
	case ir.FloatKind:
		return v.Float64
	case ir.StringKind:
		return v.Str
	case ir.BytesKind:
		return base64.StdEncoding.EncodeToString(v.Bytes)
	case ir.TimeKind:
		return v.Time.UTC().Format(time.RFC3339)
	case ir.RefKind:
		return v.Ref.String()
	case ir.ListKind:
		res := make([]any, len(v.Values))
		for i, vv := range v.Values {
			res[i] = ToGo(vv)
		}
		return res
	case ir.MapKind:
		return fieldsToGo(v.Fields, nil)
	case ir.StructKind:
		return fieldsToGo(v.Fields, map[string]any{"_type": v.Name})
	case ir.SumKind:
		res := map[string]any{"_tag": v.Name}
		if p := v.Payload(); p != nil {
			res["_value"] = ToGo(p)
		}
		return res
	default:
		return nil
	}
}

func fieldsToGo(fields []ir.Field, res map[string]any) map[string]any {
	if res == nil {
		res = make(map[string]any, len(fields))
	}
	for i := range fields {
		res[fields[i].Key] = ToGo(fields[i].Value)
	}
	return res
}
