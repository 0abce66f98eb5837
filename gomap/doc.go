// Package gomap converts between generic Go values and the ir value
// model. It is the structural bridge under the JSON and YAML codecs:
// a one-to-one mapping with no determinism requirements of its own
// (canonical ordering is the encoder's job).
//
// FromGo accepts the types the decoders of this module produce: nil,
// bool, Go integer and float types, string, []byte, time.Time,
// map[string]any, map[any]any with string keys, []any, plus ir values
// passed through. ToGo lowers the extended kinds to JSON-expressible
// values: bytes to base64 text, times to RFC 3339 text, refs to their
// ^-prefixed text, structs to maps with a "_type" field, sums to
// {"_tag": ..., "_value": ...}.
package gomap
