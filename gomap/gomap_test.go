package gomap

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/loom-format/go-loom/canon"
	"github.com/signadot/loom-format/go-loom/ir"
)

func TestFromGoNested(t *testing.T) {
	v, err := FromGo(map[string]any{
		"name":  "svc",
		"count": 3,
		"ratio": 0.5,
		"on":    true,
		"none":  nil,
		"xs":    []any{int64(1), "two", false},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := canon.MustString(v)
	expected := "{count=3 name=svc none=_ on=t ratio=0.5 xs=[1 two f]}"
	if got != expected {
		t.Errorf("canonical = %q, want %q", got, expected)
	}
}

func TestFromGoIntWidths(t *testing.T) {
	for _, x := range []any{
		int(7), int8(7), int16(7), int32(7), int64(7),
		uint(7), uint8(7), uint16(7), uint32(7), uint64(7),
	} {
		v, err := FromGo(x)
		if err != nil {
			t.Fatalf("FromGo(%T): %v", x, err)
		}
		if v.Kind != ir.IntKind || v.Int64 != 7 {
			t.Errorf("FromGo(%T) = %v, want int 7", x, v)
		}
	}
}

func TestFromGoUintOverflow(t *testing.T) {
	if _, err := FromGo(uint64(math.MaxInt64) + 1); !errors.Is(err, ErrIntRange) {
		t.Errorf("FromGo error = %v, want ErrIntRange", err)
	}
	v, err := FromGo(uint64(math.MaxInt64))
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64 != math.MaxInt64 {
		t.Errorf("FromGo = %d, want MaxInt64", v.Int64)
	}
}

func TestFromGoNumber(t *testing.T) {
	v, err := FromGo(json.Number("42"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != ir.IntKind || v.Int64 != 42 {
		t.Errorf("FromGo(Number 42) = %v, want int", v)
	}
	v, err = FromGo(json.Number("2.5"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != ir.FloatKind || v.Float64 != 2.5 {
		t.Errorf("FromGo(Number 2.5) = %v, want float", v)
	}
	if _, err := FromGo(json.Number("nope")); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("FromGo(bad number) error = %v, want ErrUnsupportedType", err)
	}
}

func TestFromGoSpecialTypes(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	v, err := FromGo(map[string]any{
		"at":  ts,
		"ref": ir.RefID{Prefix: "u", Value: "1"},
		"raw": []byte("hi"),
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := `{at=2024-03-01T09:00:00Z raw=b64"aGk=" ref=^u:1}`
	if got := canon.MustString(v); got != expected {
		t.Errorf("canonical = %q, want %q", got, expected)
	}
}

func TestFromGoPassthrough(t *testing.T) {
	orig := ir.FromSum("ok", nil)
	v, err := FromGo(orig)
	if err != nil {
		t.Fatal(err)
	}
	if v != orig {
		t.Error("FromGo(*ir.Value) did not pass through")
	}
}

func TestFromGoAnyKeyedMap(t *testing.T) {
	v, err := FromGo(map[any]any{"a": 1, "b": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if got := canon.MustString(v); got != "{a=1 b=x}" {
		t.Errorf("canonical = %q, want %q", got, "{a=1 b=x}")
	}
	if _, err := FromGo(map[any]any{1: "x"}); !errors.Is(err, ErrKeyType) {
		t.Errorf("FromGo(int key) error = %v, want ErrKeyType", err)
	}
}

func TestFromGoUnsupported(t *testing.T) {
	if _, err := FromGo(make(chan int)); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("FromGo(chan) error = %v, want ErrUnsupportedType", err)
	}
	if _, err := FromGo([]any{struct{}{}}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("FromGo nested unsupported error = %v, want ErrUnsupportedType", err)
	}
}

func TestToGoScalars(t *testing.T) {
	tests := []struct {
		name     string
		v        *ir.Value
		expected any
	}{
		{"nil", nil, nil},
		{"null", ir.Null(), nil},
		{"bool", ir.FromBool(true), true},
		{"int", ir.FromInt(5), int64(5)},
		{"float", ir.FromFloat(0.5), 0.5},
		{"string", ir.FromString("x"), "x"},
		{"bytes", ir.FromBytes([]byte("hi")), "aGk="},
		{"ref", ir.FromRef("u", "1"), "^u:1"},
		{
			"time",
			ir.FromTime(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
			"2024-03-01T09:00:00Z",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToGo(tt.v); got != tt.expected {
				t.Errorf("ToGo = %#v, want %#v", got, tt.expected)
			}
		})
	}
}

func TestToGoStructured(t *testing.T) {
	v := ir.FromStruct("Point", []ir.Field{
		{Key: "x", Value: ir.FromInt(1)},
		{Key: "y", Value: ir.FromInt(2)},
	})
	expected := map[string]any{"_type": "Point", "x": int64(1), "y": int64(2)}
	if d := cmp.Diff(expected, ToGo(v)); d != "" {
		t.Errorf("ToGo(struct) (-want +got):\n%s", d)
	}

	sum := ir.FromSum("some", ir.FromInt(3))
	expected = map[string]any{"_tag": "some", "_value": int64(3)}
	if d := cmp.Diff(expected, ToGo(sum)); d != "" {
		t.Errorf("ToGo(sum) (-want +got):\n%s", d)
	}

	bare := ir.FromSum("none", nil)
	expected = map[string]any{"_tag": "none"}
	if d := cmp.Diff(expected, ToGo(bare)); d != "" {
		t.Errorf("ToGo(bare sum) (-want +got):\n%s", d)
	}

	list := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromString("a")})
	if d := cmp.Diff([]any{int64(1), "a"}, ToGo(list)); d != "" {
		t.Errorf("ToGo(list) (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	in := map[string]any{
		"a": int64(1),
		"b": []any{"x", nil, true},
		"c": map[string]any{"d": 0.25},
	}
	v, err := FromGo(in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, ToGo(v)); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}
