package main

import (
	"fmt"

	"github.com/jvkit/jv/query"

	"github.com/scott-cotton/cli"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range inputs(args[1:]) {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		res, err := query.Eval(src, v)
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", arg, err)
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
