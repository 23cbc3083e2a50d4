package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/aqa/aqalex"
	"github.com/reusee/aqa/cmds"
	"github.com/reusee/aqa/debugs"
	"github.com/reusee/aqa/sources"
)

func TestDebugActions(t *testing.T) {
	for args, expected := range map[string]action{
		"":               actionScan,
		"debug tap":      actionTap,
		"debug repl":     actionREPL,
		"debug tap repl": actionREPL,
	} {
		executor := cmds.NewExecutor()
		act := actionScan
		defineActions(executor, &act)
		if err := executor.Execute(strings.Fields(args)); err != nil {
			t.Fatalf("%q: %v", args, err)
		}
		if act != expected {
			t.Fatalf("%q: got %v", args, act)
		}
	}

	executor := cmds.NewExecutor()
	act := actionScan
	defineActions(executor, &act)
	err := executor.Execute([]string{"tap"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: tap") {
		t.Fatalf("got %v", err)
	}
}

func TestExecuteTap(t *testing.T) {
	var tapped map[string]any
	scope := testScope(t,
		func() sources.Inline {
			return sources.Inline{Text: "INPUT(0x2a)", Set: true}
		},
		func() debugs.Tap {
			return func(ctx context.Context, what string, globals map[string]any) {
				if what != "scan" {
					t.Fatalf("got %q", what)
				}
				tapped = globals
			}
		},
	)

	stdout := new(bytes.Buffer)
	if err := execute(t.Context(), scope, actionTap, stdout, new(bytes.Buffer)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), `HexLiteral("2a")`) {
		t.Fatalf("got %q", stdout.String())
	}
	tokens, ok := tapped["tokens"].([]aqalex.Token)
	if !ok || len(tokens) != 5 {
		t.Fatalf("got %v", tapped)
	}
}

func TestExecuteScanDoesNotTap(t *testing.T) {
	scope := testScope(t,
		func() sources.Inline {
			return sources.Inline{Text: "INPUT", Set: true}
		},
		func() debugs.Tap {
			return func(context.Context, string, map[string]any) {
				t.Fatal("should not tap")
			}
		},
	)
	if err := execute(t.Context(), scope, actionScan, new(bytes.Buffer), new(bytes.Buffer)); err != nil {
		t.Fatal(err)
	}
}
