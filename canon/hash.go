package canon

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/signadot/loom-format/go-loom/ir"
)

// Fingerprint returns the canonical form of v under the default
// options. By convention this is the stable identity form used as a
// dedup key.
func Fingerprint(v *ir.Value) (string, error) {
	return Canonicalize(v)
}

// Hash returns the first 8 bytes of the SHA-256 of the default
// canonical form, as 16 lowercase hex characters. Collision
// probability at this width is fine for content-addressed dedup, not
// for adversarial integrity.
func Hash(v *ir.Value) (string, error) {
	s, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8]), nil
}

// Equal reports whether a and b have identical default canonical
// forms. Equality is configuration-dependent by construction: both
// sides are compared under the default options, consistent with Hash
// and Fingerprint.
func Equal(a, b *ir.Value) (bool, error) {
	ca, err := Canonicalize(a)
	if err != nil {
		return false, err
	}
	cb, err := Canonicalize(b)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}
