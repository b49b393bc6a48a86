package main

import (
	"fmt"
	"io"

	"github.com/jvkit/jv/diff"
	"github.com/jvkit/jv/encode"
	"github.com/jvkit/jv/patch"
	"github.com/jvkit/jv/value"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	if cfg.Paths && cfg.Merge {
		return fmt.Errorf("%w: -paths and -merge are exclusive", cli.ErrUsage)
	}
	a, err := loadArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if value.Equal(a, b) {
		return nil
	}
	switch {
	case cfg.Merge:
		mp, err := patch.CreateMerge(a, b)
		if err != nil {
			return err
		}
		if err := writeValue(cfg.MainConfig, cc.Out, mp); err != nil {
			return err
		}
	case cfg.Paths:
		for _, c := range diff.Paths(a, b) {
			if err := writeChange(cc.Out, c); err != nil {
				return err
			}
		}
	default:
		out, _, err := diff.Lines(a, b)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, out); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func writeChange(w io.Writer, c diff.Change) error {
	var err error
	switch c.Kind {
	case diff.Added:
		_, err = fmt.Fprintf(w, "+ %s: %s\n", c.Path, encode.MustString(c.To))
	case diff.Removed:
		_, err = fmt.Fprintf(w, "- %s: %s\n", c.Path, encode.MustString(c.From))
	default:
		_, err = fmt.Fprintf(w, "~ %s: %s -> %s\n", c.Path,
			encode.MustString(c.From), encode.MustString(c.To))
	}
	return err
}
