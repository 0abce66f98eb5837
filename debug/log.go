// Package debug provides stderr logging helpers that render ir
// values canonically. For development and CLI diagnostics; library
// packages do not log.
package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/loom-format/go-loom/canon"
	"github.com/signadot/loom-format/go-loom/ir"
)

// Loom wraps an ir value so %s/%v formatting shows its canonical
// form.
type Loom struct{ *ir.Value }

func (l Loom) String() string {
	s, err := canon.Canonicalize(l.Value)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Value] %v", l.Value)
	}
	return s
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case *ir.Value:
			args[i] = Loom{x}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
