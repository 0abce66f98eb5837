package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/loom-format/go-loom/canon"
)

func canonize(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		cfg.Canon.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := cfg.canonOpts()
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args) {
		v, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		s, err := canon.Canonicalize(v, opts...)
		if err != nil {
			return fmt.Errorf("error canonicalizing %s: %w", arg, err)
		}
		if _, err := fmt.Fprintln(cc.Out, s); err != nil {
			return err
		}
	}
	return nil
}
