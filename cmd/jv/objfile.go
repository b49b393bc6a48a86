package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jvkit/jv/convert"
	"github.com/jvkit/jv/encode"
	"github.com/jvkit/jv/format"
	"github.com/jvkit/jv/parse"
	"github.com/jvkit/jv/value"

	"github.com/scott-cotton/cli"
)

// inputs returns the file arguments, with stdin standing in for none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func openArg(cc *cli.Context, arg string) (io.ReadCloser, error) {
	if arg == "-" {
		return io.NopCloser(cc.In), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return f, nil
}

func loadArg(cfg *MainConfig, cc *cli.Context, arg string) (value.Value, error) {
	rc, err := openArg(cc, arg)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	f := cfg.inFormat(arg)
	if f == format.JSONFormat {
		v, err := parse.Parse(rc, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return v, nil
	}
	d, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	var v value.Value
	switch f {
	case format.YAMLFormat:
		v, err = convert.FromYAML(d)
	case format.BSONFormat:
		v, err = convert.FromBSON(d)
	default:
		return nil, fmt.Errorf("%w: unsupported input format %s", cli.ErrUsage, f)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return v, nil
}

func writeValue(cfg *MainConfig, w io.Writer, v value.Value) error {
	var (
		d   []byte
		err error
	)
	switch f := cfg.outFormat(); f {
	case format.JSONFormat:
		if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	case format.YAMLFormat:
		d, err = convert.ToYAML(v)
	case format.BSONFormat:
		d, err = convert.ToBSON(v)
	default:
		return fmt.Errorf("%w: unsupported output format %s", cli.ErrUsage, f)
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}
