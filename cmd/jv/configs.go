package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jvkit/jv/encode"
	"github.com/jvkit/jv/format"
	"github.com/jvkit/jv/parse"
	"github.com/jvkit/jv/pool"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool   `cli:"name=c aliases=compact desc='output compact json'"`
	Indent  int    `cli:"name=indent desc='indentation of pretty output'"`
	ASCII   bool   `cli:"name=ascii desc='escape all non ascii characters'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	Pool    string `cli:"name=pool desc='buffer pool configuration file (yaml)'"`
	Gops    bool   `cli:"name=gops desc='run a gops diagnostics agent'"`
	V       bool   `cli:"name=v desc='log debug output'"`

	MaxEntries int  `cli:"name=max-entries desc='maximum number of entries per object'"`
	MaxDepth   int  `cli:"name=max-depth desc='maximum nesting depth'"`
	RejectDups bool `cli:"name=reject-dups desc='fail on duplicate object keys'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	pool *pool.Pool
	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is -I when given, otherwise the format implied by the file
// name of arg, defaulting to json.
func (cfg *MainConfig) inFormat(arg string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromPath(arg); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) loadPool() error {
	pc := pool.DefaultConfig()
	if cfg.Pool != "" {
		var err error
		pc, err = pool.LoadConfigFile(cfg.Pool)
		if err != nil {
			return err
		}
	}
	p, err := pool.New(pc, pool.WithLogger(theLog))
	if err != nil {
		return err
	}
	cfg.pool = p
	return nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.MaxEntries > 0 {
		res = append(res, parse.MaxObjectEntries(cfg.MaxEntries))
	}
	if cfg.MaxDepth != 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	if cfg.RejectDups {
		res = append(res, parse.RejectDuplicateKeys())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.WithPool(cfg.pool)}
	if !cfg.Compact {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.ASCII {
		res = append(res, encode.ASCII())
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Lazy bool `cli:"name=lazy desc='stream compact output without building it in memory'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='select every match, allowing .. and [*]'"`

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='apply a merge patch (RFC 7386)'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Paths bool `cli:"name=paths desc='list changed paths instead of lines'"`
	Merge bool `cli:"name=merge desc='output the merge patch from a to b'"`

	Diff *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	ExtJSON bool `cli:"name=ext desc='output bson as canonical extended json'"`

	Convert *cli.Command
}

type StatsConfig struct {
	*MainConfig
	Metrics bool `cli:"name=metrics desc='print pool metrics as gathered by prometheus'"`

	Stats *cli.Command
}
