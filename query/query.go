// Package query evaluates expr-lang expressions against value trees.
//
// The document is bound to the variable doc as plain Go values: objects
// are maps, arrays slices, integers int, and other numbers float64.
// getpath and listpath look paths up in the document, in the syntax of
// value.ParsePath, and getenv reads the environment.
//
//	v, err := query.Eval(`filter(doc.items, .price > 10)`, doc)
package query

import (
	"errors"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/jvkit/jv/value"
)

var ErrQuery = errors.New("query error")

// Eval compiles src and runs it with doc bound to v.
func Eval(src string, v value.Value) (value.Value, error) {
	d, err := toEnv(v)
	if err != nil {
		return nil, err
	}
	env := map[string]any{"doc": d}
	prg, err := expr.Compile(src, append(exprOpts(v), expr.Env(env))...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if r, ok := res.(value.Value); ok {
		return r, nil
	}
	r, err := value.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of type %T", ErrQuery, res)
	}
	return r, nil
}

func exprOpts(doc value.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := value.Lookup(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			return toEnv(res)
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			res, err := value.Select(nil, doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			out := make([]any, 0, len(res))
			for _, r := range res {
				e, err := toEnv(r)
				if err != nil {
					return nil, err
				}
				out = append(out, e)
			}
			return out, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func toEnv(v value.Value) (any, error) {
	switch x := v.(type) {
	case *value.Object:
		m := make(map[string]any, x.Len())
		for k, e := range x.All() {
			a, err := toEnv(e)
			if err != nil {
				return nil, err
			}
			m[k] = a
		}
		return m, nil
	case *value.Array:
		s := make([]any, 0, x.Len())
		for e := range x.Values() {
			a, err := toEnv(e)
			if err != nil {
				return nil, err
			}
			s = append(s, a)
		}
		return s, nil
	case value.Number:
		if x.IsInteger() {
			if i, ok := x.Int64(); ok {
				return int(i), nil
			}
		}
		return x.Float64(), nil
	default:
		return value.ToAny(v)
	}
}
