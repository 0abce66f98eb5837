// Package canon encodes ir values to canonical loom text.
//
// Canonical form is deterministic: semantically equal values produce
// byte-identical output under the same options, regardless of the
// source order of map and struct fields. That makes the output usable
// directly as a dedup or equality key, and hashable into a compact
// content fingerprint.
//
// # Usage
//
//	v := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	s, err := canon.Canonicalize(v)        // {age=30 name=alice}
//	h, err := canon.Hash(v)                // 16 hex chars
//	ok, err := canon.Equal(v, w)
//
//	// Options
//	s, err := canon.Canonicalize(v,
//	    canon.Tabular(false),
//	    canon.Null(canon.SymbolNull),
//	)
//
// Homogeneous lists of records compact into a tabular block
// (@tab ... @end) when eligible; see Tabular, MinRows, MaxCols and
// AllowMissing. The compaction is a heuristic, not a normalization:
// the same data has different canonical forms under different
// options, so equality and hashing always use the defaults.
//
// There is no parser for canonical text; this package is encode-only.
//
// # Related Packages
//
//   - github.com/signadot/loom-format/go-loom/ir - value model
//   - github.com/signadot/loom-format/go-loom/gojson - JSON <-> ir
//   - github.com/signadot/loom-format/go-loom/goyaml - YAML <-> ir
package canon
