package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/reusee/aqa/aqaconfigs"
	"github.com/reusee/aqa/aqalex"
	"github.com/reusee/aqa/debugs"
	"github.com/reusee/aqa/logs"
	"github.com/reusee/aqa/sources"
	"github.com/reusee/aqa/syncs"
)

var errScanFailed = errors.New("scan failed")

type scanResult struct {
	source *aqalex.Source
	tokens []aqalex.Token
	err    error
	done   chan struct{}
}

// Run scans every loaded source and prints the results in load order.
// Scanning is concurrent up to Parallelism; a failed scan is reported to
// stderr and the rest continue.
type Run func(ctx context.Context, stdout, stderr io.Writer, tap bool) error

func (Module) Run(
	load sources.Load,
	scan aqalex.Scan,
	printTokens Print,
	parallelism aqaconfigs.Parallelism,
	tapFunc debugs.Tap,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, stdout, stderr io.Writer, tap bool) error {
		sem := syncs.NewSemaphore(int(parallelism))
		var wg sync.WaitGroup
		defer wg.Wait()

		results := make(chan *scanResult, parallelism)
		var loadErr error
		go func() {
			defer close(results)
			for source, err := range load(ctx) {
				if err != nil {
					loadErr = err
					return
				}
				result := &scanResult{
					source: source,
					done:   make(chan struct{}),
				}
				sem.Acquire()
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer sem.Release()
					defer close(result.done)
					result.tokens, result.err = scan(ctx, source)
				}()
				results <- result
			}
		}()

		var failed int
		var printErr error
		tapGlobals := make(map[string]any)
		for result := range results {
			<-result.done
			if result.err != nil {
				failed++
				var scanErr *aqalex.ScanError
				if errors.As(result.err, &scanErr) {
					fmt.Fprint(stderr, scanErr.Error())
				} else {
					fmt.Fprintln(stderr, result.err)
				}
				tapGlobals["error"] = result.err
				continue
			}
			if printErr == nil {
				printErr = printTokens(stdout, result.source, result.tokens)
			}
			tapGlobals["tokens"] = result.tokens
			tapGlobals["source"] = result.source
		}
		if printErr != nil {
			return wrap(printErr)
		}
		if loadErr != nil {
			return wrap(loadErr)
		}

		if tap {
			tapFunc(ctx, "scan", tapGlobals)
		}

		if failed > 0 {
			logger.DebugContext(ctx, "done", "failed", failed)
			return fmt.Errorf("%w: %d source(s)", errScanFailed, failed)
		}
		return nil
	}
}
