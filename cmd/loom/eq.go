package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/loom-format/go-loom/canon"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		cfg.Eq.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq requires 2 args, got %v", cli.ErrUsage, args)
	}
	ca, cb, err := canonPair(cfg.MainConfig, cc, args[0], args[1])
	if err != nil {
		return err
	}
	if ca == cb {
		return nil
	}
	if cfg.Verbose {
		fmt.Fprintf(cc.Out, "%s\n%s\n", ca, cb)
	}
	return cli.ExitCodeErr(1)
}

// canonPair canonicalizes two inputs under one shared option set, the
// only arrangement under which canonical comparison is meaningful.
func canonPair(cfg *MainConfig, cc *cli.Context, a, b string) (string, string, error) {
	opts, err := cfg.canonOpts()
	if err != nil {
		return "", "", err
	}
	va, err := getObjFile(cfg, cc, a)
	if err != nil {
		return "", "", fmt.Errorf("error decoding %s: %w", a, err)
	}
	vb, err := getObjFile(cfg, cc, b)
	if err != nil {
		return "", "", fmt.Errorf("error decoding %s: %w", b, err)
	}
	ca, err := canon.Canonicalize(va, opts...)
	if err != nil {
		return "", "", fmt.Errorf("error canonicalizing %s: %w", a, err)
	}
	cb, err := canon.Canonicalize(vb, opts...)
	if err != nil {
		return "", "", fmt.Errorf("error canonicalizing %s: %w", b, err)
	}
	return ca, cb, nil
}
