package canon

import (
	"github.com/signadot/loom-format/go-loom/ir"
)

// MustString canonicalizes v and panics on failure. For values known
// to be finite, such as literals in tests.
func MustString(v *ir.Value, opts ...Option) string {
	s, err := Canonicalize(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
