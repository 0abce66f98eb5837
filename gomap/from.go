package gomap

import (
	"fmt"
	"math"
	"time"

	"github.com/signadot/loom-format/go-loom/ir"
)

// jsonNumber is satisfied by encoding/json.Number and by goccy
// go-json's Number without importing either.
type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// FromGo converts a generic Go value to an ir value.
func FromGo(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Value:
		return x, nil
	case ir.RefID:
		return ir.FromRef(x.Prefix, x.Value), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	case []byte:
		return ir.FromBytes(x), nil
	case time.Time:
		return ir.FromTime(x), nil
	case jsonNumber:
		return fromNumber(x)
	case []any:
		return fromSlice(x)
	case map[string]any:
		return fromStringMap(x)
	case map[any]any:
		return fromAnyMap(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func fromUint(x uint64) (*ir.Value, error) {
	if x > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", ErrIntRange, x)
	}
	return ir.FromInt(int64(x)), nil
}

// fromNumber keeps integral JSON numbers as ints, everything else as
// floats.
func fromNumber(n jsonNumber) (*ir.Value, error) {
	if i, err := n.Int64(); err == nil {
		return ir.FromInt(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrUnsupportedType, n.String())
	}
	return ir.FromFloat(f), nil
}

func fromSlice(xs []any) (*ir.Value, error) {
	vs := make([]*ir.Value, len(xs))
	for i, x := range xs {
		v, err := FromGo(x)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return ir.FromSlice(vs), nil
}

func fromStringMap(m map[string]any) (*ir.Value, error) {
	res := map[string]*ir.Value{}
	for k, x := range m {
		v, err := FromGo(x)
		if err != nil {
			return nil, err
		}
		res[k] = v
	}
	return ir.FromMap(res), nil
}

func fromAnyMap(m map[any]any) (*ir.Value, error) {
	res := map[string]*ir.Value{}
	for k, x := range m {
		ks, ok := k.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrKeyType, k)
		}
		v, err := FromGo(x)
		if err != nil {
			return nil, err
		}
		res[ks] = v
	}
	return ir.FromMap(res), nil
}
