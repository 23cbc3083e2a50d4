package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/aqa/aqalex"
	"github.com/reusee/aqa/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound.
// A "tokenize" builtin is always available.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

// Globals converts globals to starlark values and adds the builtins.
func Globals(globals map[string]any) starlark.StringDict {
	mappings := starlark.StringDict{
		"tokenize": starlark.NewBuiltin("tokenize", tokenizeBuiltin),
	}
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

func tokenizeBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	tokens, err := aqalex.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return toStarlarkValue(tokens), nil
}
