package aqalex

import (
	"context"

	"github.com/reusee/aqa/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Scan tokenizes one source inside its own log span.
type Scan func(ctx context.Context, source *Source) ([]Token, error)

func (Module) Scan(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Scan {
	return func(ctx context.Context, source *Source) ([]Token, error) {
		ctx, _ = newSpan(ctx, "")
		tokens, err := TokenizeSource(source)
		if err != nil {
			logger.DebugContext(ctx, "scan failed",
				"source", source.Name,
				"error", err,
			)
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "scanned",
			"source", source.Name,
			"bytes", len(source.Content),
			"tokens", len(tokens),
		)
		return tokens, nil
	}
}
