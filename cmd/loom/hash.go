package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/loom-format/go-loom/canon"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		cfg.Hash.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = inputArgs(args)
	for _, arg := range args {
		v, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		h, err := canon.Hash(v)
		if err != nil {
			return fmt.Errorf("error hashing %s: %w", arg, err)
		}
		if len(args) == 1 && args[0] == "-" {
			_, err = fmt.Fprintln(cc.Out, h)
		} else {
			_, err = fmt.Fprintf(cc.Out, "%s  %s\n", h, arg)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
