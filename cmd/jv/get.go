package main

import (
	"fmt"

	"github.com/jvkit/jv/value"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	for _, arg := range inputs(args[1:]) {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		var res value.Value
		if cfg.List {
			vs, err := value.Select(nil, v, path)
			if err != nil {
				return fmt.Errorf("error selecting %s in %s: %w", path, arg, err)
			}
			res = value.NewArray(vs...)
		} else {
			res, err = value.Lookup(v, path)
			if err != nil {
				return fmt.Errorf("error getting %s in %s: %w", path, arg, err)
			}
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
