// Package goyaml converts YAML documents to and from the ir value
// model, backed by goccy/go-yaml. The value mapping is the same as
// package gojson's.
package goyaml

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/loom-format/go-loom/gomap"
	"github.com/signadot/loom-format/go-loom/ir"
)

// Parse decodes one YAML document into an ir value.
func Parse(d []byte) (*ir.Value, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return gomap.FromGo(v)
}

// Marshal renders v as YAML.
func Marshal(v *ir.Value) ([]byte, error) {
	return yaml.Marshal(gomap.ToGo(v))
}
