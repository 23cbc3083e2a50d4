package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/aqa/aqalex"
)

// REPL reads lines from the terminal and prints the tokens of each line.
type REPL func(ctx context.Context, stdout, stderr io.Writer) error

func (Module) REPL(
	scan aqalex.Scan,
	printTokens Print,
) REPL {
	return func(ctx context.Context, stdout, stderr io.Writer) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".aqalex_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "aqa> ",
			HistoryFile: historyFile,
			Stdout:      stdout,
			Stderr:      stderr,
		})
		if err != nil {
			return wrap(err)
		}
		defer rl.Close()

		for n := 1; ; n++ {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return nil
			}
			if line == "" {
				continue
			}
			source := aqalex.NewSource(fmt.Sprintf("<line %d>", n), line)
			tokens, err := scan(ctx, source)
			if err != nil {
				fmt.Fprintln(stderr, err)
				continue
			}
			if err := printTokens(stdout, source, tokens); err != nil {
				return wrap(err)
			}
		}
	}
}
