package canon

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/loom-format/go-loom/ir"
	"github.com/signadot/loom-format/go-loom/token"
)

func canonBool(v bool) string {
	if v {
		return "t"
	}
	return "f"
}

func canonInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// canonFloat renders a finite float. Whole values below 1e15 in
// magnitude render as bare integers; otherwise decimal or exponential
// form is chosen by the decimal exponent of the magnitude. The
// exponent widths are asymmetric (e+%02d vs e%03d) and are part of
// the bit-exact contract.
func canonFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumber, f)
	}
	if f == 0 {
		// covers -0 as well
		return "0", nil
	}
	if math.Trunc(f) == f && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10), nil
	}
	exp := int(math.Floor(math.Log10(math.Abs(f))))
	if exp < -4 || exp >= 15 {
		mantissa := f / math.Pow(10, float64(exp))
		m := trimFixed(strconv.FormatFloat(mantissa, 'f', 15, 64))
		if exp >= 0 {
			return fmt.Sprintf("%se+%02d", m, exp), nil
		}
		return fmt.Sprintf("%se%03d", m, exp), nil
	}
	return trimFixed(strconv.FormatFloat(f, 'f', 15, 64)), nil
}

// trimFixed strips trailing zeros, then a trailing decimal point,
// from a fixed-point rendering.
func trimFixed(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func canonString(v, nullToken string) string {
	return token.QuoteIfNeeded(v, nullToken)
}

func canonBytes(d []byte) string {
	return `b64"` + base64.StdEncoding.EncodeToString(d) + `"`
}

// timeLayout renders UTC instants at second precision; sub-second
// precision is truncated so fingerprints stay stable across sources
// with differing clock resolution.
const timeLayout = "2006-01-02T15:04:05Z"

func canonTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func canonRef(r ir.RefID) string {
	var b strings.Builder
	b.WriteByte('^')
	if r.Prefix != "" {
		b.WriteString(r.Prefix)
		b.WriteByte(':')
	}
	if token.RefBareSafe(r.Value) {
		b.WriteString(r.Value)
	} else {
		b.WriteString(token.Quote(r.Value))
	}
	return b.String()
}
