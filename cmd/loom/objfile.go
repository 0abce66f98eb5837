package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/signadot/loom-format/go-loom/gojson"
	"github.com/signadot/loom-format/go-loom/gomap"
	"github.com/signadot/loom-format/go-loom/goyaml"
	"github.com/signadot/loom-format/go-loom/ir"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	v, err := parseDoc(cfg, path, d)
	if err != nil {
		return nil, err
	}
	if cfg.Sel == "" {
		return v, nil
	}
	return selectValue(cfg.Sel, v)
}

func parseDoc(cfg *MainConfig, path string, d []byte) (*ir.Value, error) {
	switch {
	case cfg.J:
		return gojson.Parse(d)
	case cfg.Y:
		return goyaml.Parse(d)
	}
	switch {
	case strings.HasSuffix(path, ".json"):
		return gojson.Parse(d)
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return goyaml.Parse(d)
	}
	v, jErr := gojson.Parse(d)
	if jErr == nil {
		return v, nil
	}
	v, yErr := goyaml.Parse(d)
	if yErr == nil {
		return v, nil
	}
	return nil, fmt.Errorf("error decoding %q as json (%v) or yaml: %w", path, jErr, yErr)
}

// selectValue evaluates an expr program against the bridged document
// and bridges the result back, so flags like -sel 'items[0].name'
// narrow what gets canonicalized.
func selectValue(sel string, v *ir.Value) (*ir.Value, error) {
	env := gomap.ToGo(v)
	out, err := expr.Eval(sel, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating -sel %q: %w", sel, err)
	}
	res, err := gomap.FromGo(out)
	if err != nil {
		return nil, fmt.Errorf("-sel %q result: %w", sel, err)
	}
	return res, nil
}

func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
