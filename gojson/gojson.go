// Package gojson converts JSON documents to and from the ir value
// model, backed by goccy/go-json. Integral JSON numbers decode to
// Int, the rest to Float. Rendering ir to JSON lowers the kinds JSON
// lacks the way gomap.ToGo does.
package gojson

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/signadot/loom-format/go-loom/gomap"
	"github.com/signadot/loom-format/go-loom/ir"
)

// Parse decodes one JSON document into an ir value.
func Parse(d []byte) (*ir.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	return gomap.FromGo(v)
}

// Marshal renders v as compact JSON.
func Marshal(v *ir.Value) ([]byte, error) {
	return json.Marshal(gomap.ToGo(v))
}

// MarshalIndent renders v as indented JSON.
func MarshalIndent(v *ir.Value, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(gomap.ToGo(v), prefix, indent)
}
