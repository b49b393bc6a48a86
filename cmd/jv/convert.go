package main

import (
	"fmt"

	"github.com/jvkit/jv/convert"

	"github.com/scott-cotton/cli"
)

func convertCmd(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputs(args) {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if !cfg.ExtJSON {
			if err := writeValue(cfg.MainConfig, cc.Out, v); err != nil {
				return err
			}
			continue
		}
		d, err := convert.ToExtJSON(v, true)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		d = append(d, '\n')
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
