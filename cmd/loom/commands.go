package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "loom").
		WithSynopsis("loom [opts] command [opts]").
		WithDescription("loom is a tool for canonical object fingerprints.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return loomMain(cfg, cc, args)
		}).
		WithSubs(
			CanonCommand(cfg),
			HashCommand(cfg),
			EqCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func loomMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("canon").
		WithAliases("c", "ca").
		WithSynopsis("canon [files]").
		WithDescription("print the canonical form of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return canonize(cfg, cc, args)
		})
	cfg.Canon = cmd
	return cmd
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("hash").
		WithAliases("h", "ha").
		WithSynopsis("hash [files]").
		WithDescription("print the 16-hex content hash of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
	cfg.Hash = cmd
	return cmd
}

func EqCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eq").
		WithSynopsis("eq a b").
		WithDescription("compare documents by canonical equality; exit 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eq(cfg, cc, args)
		})
	cfg.Eq = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the canonical forms of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <patchfile> [file]").
		WithDescription("apply a JSON patch or merge patch, then canonicalize").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
