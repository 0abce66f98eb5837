package gojson

import (
	"testing"

	"github.com/signadot/loom-format/go-loom/canon"
	"github.com/signadot/loom-format/go-loom/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			"object",
			`{"b": 2, "a": 1}`,
			"{a=1 b=2}",
		},
		{
			"nested",
			`{"xs": [1, "two", null, true], "m": {"k": "v"}}`,
			"{m={k=v} xs=[1 two _ t]}",
		},
		{
			"int stays int",
			`{"n": 5}`,
			"{n=5}",
		},
		{
			"float stays float",
			`{"n": 5.5}`,
			"{n=5.5}",
		},
		{
			"big int exact",
			`{"n": 9007199254740993}`,
			"{n=9007199254740993}",
		},
		{
			"top-level scalar",
			`"hello"`,
			"hello",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := canon.MustString(v); got != tt.expected {
				t.Errorf("canonical = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"a":`)); err == nil {
		t.Error("Parse accepted truncated json")
	}
}

func TestParseKeyOrderIrrelevant(t *testing.T) {
	a, err := Parse([]byte(`{"x": 1, "y": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(`{"y": 2, "x": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	eq, err := canon.Equal(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("key order affected canonical equality")
	}
}

func TestMarshal(t *testing.T) {
	v := ir.FromKeyVals([]ir.Field{
		{Key: "a", Value: ir.FromInt(1)},
	})
	d, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"a":1}` {
		t.Errorf("Marshal = %s, want %s", d, `{"a":1}`)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	v := ir.FromKeyVals([]ir.Field{
		{Key: "s", Value: ir.FromString("x")},
		{Key: "n", Value: ir.FromInt(7)},
		{Key: "xs", Value: ir.FromSlice([]*ir.Value{ir.Null(), ir.FromBool(false)})},
	})
	d, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	eq, err := canon.Equal(v, back)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("round trip changed value: %s", canon.MustString(back))
	}
}
