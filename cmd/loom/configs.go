package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/loom-format/go-loom/canon"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	NoTab   bool   `cli:"name=noTab desc='disable tabular compaction'"`
	Strict  bool   `cli:"name=strict desc='require identical keys across tabular rows'"`
	MinRows int    `cli:"name=minRows desc='min rows for tabular mode (default 3)'"`
	MaxCols int    `cli:"name=maxCols desc='max columns for tabular mode (default 64)'"`
	NullTok string `cli:"name=null desc='null spelling: underscore or symbol'"`

	Sel string `cli:"name=sel desc='expr selecting a sub-value before encoding'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) canonOpts() ([]canon.Option, error) {
	opts := []canon.Option{
		canon.Tabular(!cfg.NoTab),
		canon.AllowMissing(!cfg.Strict),
	}
	if cfg.MinRows > 0 {
		opts = append(opts, canon.MinRows(cfg.MinRows))
	}
	if cfg.MaxCols > 0 {
		opts = append(opts, canon.MaxCols(cfg.MaxCols))
	}
	if cfg.NullTok != "" {
		style, err := canon.ParseNullStyle(cfg.NullTok)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		opts = append(opts, canon.Null(style))
	}
	return opts, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type CanonConfig struct {
	*MainConfig

	Canon *cli.Command
}

type HashConfig struct {
	*MainConfig

	Hash *cli.Command
}

type EqConfig struct {
	*MainConfig

	Verbose bool `cli:"name=v desc='print both canonical forms when they differ'"`

	Eq *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=noColor desc='disable colored output'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
