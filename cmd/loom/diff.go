package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ca, cb, err := canonPair(cfg.MainConfig, cc, args[0], args[1])
	if err != nil {
		return err
	}
	if ca == cb {
		return nil
	}
	diffs := diffpatch.New().DiffMain(ca, cb, false)
	if _, err := fmt.Fprintln(cc.Out, renderDiffs(cfg, cc, diffs)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func renderDiffs(cfg *DiffConfig, cc *cli.Context, diffs []diffpatch.Diff) string {
	colored := cfg.Color
	if !colored && !cfg.NoColor {
		if f, ok := cc.Out.(*os.File); ok {
			colored = isatty.IsTerminal(f.Fd())
		}
	}
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				b.WriteString(color.GreenString("%s", d.Text))
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		case diffpatch.DiffDelete:
			if colored {
				b.WriteString(color.RedString("%s", d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
