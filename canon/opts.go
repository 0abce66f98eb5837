package canon

import "fmt"

// NullStyle selects one of the two canonical null spellings.
type NullStyle int

const (
	// UnderscoreNull spells null as "_", the default.
	UnderscoreNull NullStyle = iota
	// SymbolNull spells null as "∅".
	SymbolNull
)

func (s NullStyle) Token() string {
	switch s {
	case SymbolNull:
		return "∅"
	default:
		return "_"
	}
}

func (s NullStyle) String() string {
	switch s {
	case UnderscoreNull:
		return "underscore"
	case SymbolNull:
		return "symbol"
	default:
		return fmt.Sprintf("<err: %d is not a null style>", s)
	}
}

// ParseNullStyle parses a style name as used by CLI flags.
func ParseNullStyle(v string) (NullStyle, error) {
	switch v {
	case "_", "u", "underscore":
		return UnderscoreNull, nil
	case "∅", "s", "symbol":
		return SymbolNull, nil
	}
	return 0, fmt.Errorf("bad null style %q", v)
}

type encState struct {
	tabular      bool
	minRows      int
	maxCols      int
	allowMissing bool
	nullToken    string
	maxDepth     int

	depth int
}

// DefaultMaxDepth bounds recursion when no explicit limit is set.
const DefaultMaxDepth = 10000

func newEncState(opts []Option) *encState {
	es := &encState{
		tabular:      true,
		minRows:      3,
		maxCols:      64,
		allowMissing: true,
		nullToken:    UnderscoreNull.Token(),
		maxDepth:     DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

type Option func(*encState)

// Tabular enables or disables auto-tabular compaction (default on).
func Tabular(v bool) Option {
	return func(es *encState) { es.tabular = v }
}

// MinRows sets the minimum list length for tabular mode (default 3).
func MinRows(n int) Option {
	return func(es *encState) { es.minRows = n }
}

// MaxCols sets the maximum distinct column count for tabular mode
// (default 64).
func MaxCols(n int) Option {
	return func(es *encState) { es.maxCols = n }
}

// AllowMissing tolerates rows missing some columns, filling cells
// with the null token (default on). When off, tabular mode requires
// identical key sets across all rows.
func AllowMissing(v bool) Option {
	return func(es *encState) { es.allowMissing = v }
}

// Null selects the null token spelling (default UnderscoreNull).
func Null(s NullStyle) Option {
	return func(es *encState) { es.nullToken = s.Token() }
}

// MaxDepth sets the nesting depth limit; n <= 0 restores the default.
func MaxDepth(n int) Option {
	return func(es *encState) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		es.maxDepth = n
	}
}
