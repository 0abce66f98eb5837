package main

import (
	"bytes"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/loom-format/go-loom/canon"
	"github.com/signadot/loom-format/go-loom/gojson"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires <patchfile> [file], got %v", cli.ErrUsage, args)
	}
	patchD, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	docArg := "-"
	if len(args) == 2 {
		docArg = args[1]
	}
	doc, err := getObjFile(cfg.MainConfig, cc, docArg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", docArg, err)
	}
	// patches operate on the JSON rendering of the document, so any
	// input format works as the patch target
	docD, err := gojson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", docArg, err)
	}
	out, err := applyPatch(patchD, docD)
	if err != nil {
		return fmt.Errorf("error applying %s: %w", args[0], err)
	}
	patched, err := gojson.Parse(out)
	if err != nil {
		return fmt.Errorf("error decoding patch result: %w", err)
	}
	opts, err := cfg.canonOpts()
	if err != nil {
		return err
	}
	s, err := canon.Canonicalize(patched, opts...)
	if err != nil {
		return fmt.Errorf("error canonicalizing patch result: %w", err)
	}
	_, err = fmt.Fprintln(cc.Out, s)
	return err
}

// applyPatch treats a JSON array as an RFC 6902 patch and anything
// else as an RFC 7386 merge patch.
func applyPatch(patchD, docD []byte) ([]byte, error) {
	if bytes.HasPrefix(bytes.TrimSpace(patchD), []byte("[")) {
		ops, err := jsonpatch.DecodePatch(patchD)
		if err != nil {
			return nil, err
		}
		return ops.Apply(docD)
	}
	return jsonpatch.MergePatch(docD, patchD)
}
