package main

import (
	"fmt"

	"github.com/jvkit/jv/patch"
	"github.com/jvkit/jv/value"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	docs := inputs(args[1:])
	if args[0] == "-" && len(args) == 1 {
		return fmt.Errorf("%w: patch and document cannot both be read from stdin", cli.ErrUsage)
	}
	p, err := loadArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	for _, arg := range docs {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		var res value.Value
		if cfg.Merge {
			res, err = patch.Merge(v, p)
		} else {
			res, err = patch.Apply(v, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
