package main

import (
	"fmt"
	"io"

	"github.com/jvkit/jv/lazy"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Lazy && !cfg.outFormat().IsJSON() {
		return fmt.Errorf("%w: -lazy only produces json", cli.ErrUsage)
	}
	for _, arg := range inputs(args) {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if !cfg.Lazy {
			if err := writeValue(cfg.MainConfig, cc.Out, v); err != nil {
				return err
			}
			continue
		}
		opts := []lazy.Option{lazy.WithPool(cfg.pool)}
		if cfg.ASCII {
			opts = append(opts, lazy.ASCII())
		}
		r := lazy.NewReader(v, opts...)
		_, err = io.Copy(cc.Out, r)
		r.Close()
		if err != nil {
			return fmt.Errorf("error writing %s: %w", arg, err)
		}
		if _, err := io.WriteString(cc.Out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
