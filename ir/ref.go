package ir

// RefID is an external identifier value, optionally namespaced by a
// non-empty prefix, e.g. ^user:123 or ^abc.
type RefID struct {
	Prefix string
	Value  string
}

func (r RefID) String() string {
	if r.Prefix == "" {
		return "^" + r.Value
	}
	return "^" + r.Prefix + ":" + r.Value
}
