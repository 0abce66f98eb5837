// Package ir provides the in-memory value model for loom documents.
//
// # Overview
//
// A loom document is a tree of *ir.Value. Value is a recursive tagged
// union: the Kind field selects the variant and the remaining fields
// hold that variant's data. The model is purely semantic; it carries
// no source positions and no encoder state.
//
// # Kinds
//
//   - Leaf kinds: Null, Bool, Int (64-bit signed), Float (finite
//     64-bit IEEE), String (UTF-8), Bytes, Time (UTC instant),
//     Ref (prefixed identifier)
//   - Composite kinds: List (ordered), Map and Struct (key=value
//     fields), Sum (tag with optional payload)
//
// # Creating Values
//
// Use constructor functions:
//
//	v := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	row := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
//	id := ir.FromRef("user", "123")
//
// Map and Struct fields keep their construction order and may contain
// duplicate keys; the canonical encoder sorts entries by canonical key
// text and keeps duplicates adjacent. Callers should treat duplicate
// keys as their own error to avoid, not a condition the encoder fixes.
//
// # Mutability
//
// Values are not synchronized. Encoding never mutates its input, so
// independent encodes of the same tree may run concurrently; anything
// else requires the caller to clone or synchronize.
//
// # Related Packages
//
//   - github.com/signadot/loom-format/go-loom/canon - canonical encoding
//   - github.com/signadot/loom-format/go-loom/gomap - Go values <-> ir
//   - github.com/signadot/loom-format/go-loom/gojson - JSON <-> ir
//   - github.com/signadot/loom-format/go-loom/goyaml - YAML <-> ir
package ir
