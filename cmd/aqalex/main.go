package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/aqa/cmds"
	"github.com/reusee/aqa/modes"
	"github.com/reusee/dscope"
)

type action uint8

const (
	actionScan action = iota
	actionREPL
	actionTap
)

var mainAction = actionScan

func init() {
	defineActions(cmds.GlobalExecutor, &mainAction)
}

// defineActions registers the debug group: "debug repl" and "debug tap".
func defineActions(executor *cmds.Executor, act *action) {
	executor.Define("debug", cmds.Sub(map[string]*cmds.Command{
		"repl": cmds.Func(func() {
			*act = actionREPL
		}).Desc("read lines interactively and print their tokens"),
		"tap": cmds.Func(func() {
			*act = actionTap
		}).Desc("open a starlark repl with the last scanned tokens"),
	}).Desc("debugging tools"))
}

func execute(ctx context.Context, scope dscope.Scope, act action, stdout, stderr io.Writer) (err error) {
	switch act {
	case actionREPL:
		scope.Call(func(
			repl REPL,
		) {
			err = repl(ctx, stdout, stderr)
		})
	default:
		scope.Call(func(
			run Run,
		) {
			err = run(ctx, stdout, stderr, act == actionTap)
		})
	}
	return
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	err := execute(ctx, scope, mainAction, os.Stdout, os.Stderr)
	if errors.Is(err, errScanFailed) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(-1)
	}
}
