package canon

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/loom-format/go-loom/ir"
	"github.com/signadot/loom-format/go-loom/token"
)

// tryTabular replaces the generic list encoding of items with a
// compact row/column block when the list is a homogeneous run of
// record-like values. Returns done=false when the list is ineligible,
// in which case nothing has been written.
//
// The block layout is part of the bit-exact contract:
//
//	@tab <null> rows=<N> cols=<M> [<col> <col> ...]
//	|cell|cell|...|
//	@end
//
// joined by newlines, no trailing newline after @end.
func tryTabular(b *strings.Builder, items []*ir.Value, es *encState) (bool, error) {
	cols, ok := tabularColumns(items, es)
	if !ok {
		return false, nil
	}

	b.WriteString("@tab ")
	b.WriteString(es.nullToken)
	fmt.Fprintf(b, " rows=%d cols=%d [", len(items), len(cols))
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token.QuoteIfNeeded(col, es.nullToken))
	}
	b.WriteString("]\n")

	cell := &strings.Builder{}
	for _, item := range items {
		b.WriteByte('|')
		values := fieldValues(item)
		for _, col := range cols {
			v, ok := values[col]
			if !ok {
				b.WriteString(es.nullToken)
				b.WriteByte('|')
				continue
			}
			cell.Reset()
			if err := encode(cell, v, es); err != nil {
				return false, err
			}
			b.WriteString(strings.ReplaceAll(cell.String(), "|", `\|`))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	b.WriteString("@end")
	return true, nil
}

// tabularColumns checks eligibility and returns the column set,
// sorted by canonical key text. Eligibility:
//
//  1. at least minRows rows
//  2. every element is a map or struct
//  3. the key union is non-empty and at most maxCols wide
//  4. with missing keys tolerated, the key intersection covers at
//     least half the union; otherwise all key sets must be identical
func tabularColumns(items []*ir.Value, es *encState) ([]string, bool) {
	if len(items) < es.minRows {
		return nil, false
	}
	union := map[string]struct{}{}
	rowKeys := make([]map[string]struct{}, len(items))
	for i, item := range items {
		if item == nil || !item.Kind.IsRecord() {
			return nil, false
		}
		keys := make(map[string]struct{}, len(item.Fields))
		for j := range item.Fields {
			keys[item.Fields[j].Key] = struct{}{}
		}
		maps.Copy(union, keys)
		rowKeys[i] = keys
	}
	if len(union) == 0 || len(union) > es.maxCols {
		return nil, false
	}
	if !es.allowMissing {
		for _, keys := range rowKeys[1:] {
			if !maps.Equal(keys, rowKeys[0]) {
				return nil, false
			}
		}
	} else {
		common := maps.Clone(rowKeys[0])
		for _, keys := range rowKeys[1:] {
			for k := range common {
				if _, ok := keys[k]; !ok {
					delete(common, k)
				}
			}
		}
		if 2*len(common) < len(union) {
			return nil, false
		}
	}
	cols := slices.Collect(maps.Keys(union))
	slices.SortFunc(cols, func(a, b string) int {
		return strings.Compare(
			token.QuoteIfNeeded(a, es.nullToken),
			token.QuoteIfNeeded(b, es.nullToken),
		)
	})
	return cols, true
}

// fieldValues indexes a record's fields by key. With duplicate keys
// the last occurrence wins, matching the cell lookup of the reference
// encoders.
func fieldValues(v *ir.Value) map[string]*ir.Value {
	res := make(map[string]*ir.Value, len(v.Fields))
	for i := range v.Fields {
		res[v.Fields[i].Key] = v.Fields[i].Value
	}
	return res
}
