package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var format string
	var parallel int
	executor.Define("-format", Func(func(s string) {
		format = s
	}))
	executor.Define("-parallel", Func(func(n int) {
		parallel = n
	}))

	if err := executor.Execute([]string{
		"-format", "json",
		"-parallel", "4",
	}); err != nil {
		t.Fatal(err)
	}
	if format != "json" {
		t.Fatalf("got %q", format)
	}
	if parallel != 4 {
		t.Fatalf("got %d", parallel)
	}

	err := executor.Execute([]string{
		"-fromat", "json",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -fromat") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-parallel", "many",
	})
	if err == nil || !strings.Contains(err.Error(), `-parallel: convert "many" to int`) {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-parallel",
	})
	if err == nil || !strings.Contains(err.Error(), "expecting int argument") {
		t.Fatalf("got %v", err)
	}
}

func TestEmptyStringArgument(t *testing.T) {
	executor := NewExecutor()
	var text *string
	executor.Define("-e", Func(func(s string) {
		text = &s
	}))
	if err := executor.Execute([]string{"-e", ""}); err != nil {
		t.Fatal(err)
	}
	if text == nil || *text != "" {
		t.Fatalf("got %v", text)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errBadFormat := errors.New("bad format")
	executor.Define("-format", Func(func(s string) error {
		if s != "debug" {
			return errBadFormat
		}
		return nil
	}))
	if err := executor.Execute([]string{"-format", "debug"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"-format", "yaml"})
	if !errors.Is(err, errBadFormat) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var repl, tap bool
	var history string
	executor.Define("debug", Sub(map[string]*Command{
		"repl": Func(func() {
			repl = true
		}),
		"tap": Func(func() {
			tap = true
		}),
		"-history": Func(func(s string) {
			history = s
		}),
	}))

	if err := executor.Execute([]string{
		"debug",
		"tap",
		"-history", "lines.txt",
		"repl",
	}); err != nil {
		t.Fatal(err)
	}
	if !repl || !tap {
		t.Fatal()
	}
	if history != "lines.txt" {
		t.Fatalf("got %q", history)
	}

	// not in scope without the group name
	err := executor.Execute([]string{"tap"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: tap") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("debug", Sub(map[string]*Command{
		"tap": Func(func() {}),
	}))
	executor.Define("trace", Sub(map[string]*Command{
		"tap": Func(func() {}),
	}))
	err := executor.Execute([]string{"debug", "trace"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: trace tap") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-format", Func(func(string) {}))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("-fmt", Func(func(string) {}).Alias("-format"))
	}()
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var parallel int
	var format string
	executor.Define("scan", Func(func(n *int, f *string) {
		parallel = *n
		format = *f
	}))

	err := executor.Execute([]string{"scan", "8", "lines"})
	if err != nil {
		t.Fatal(err)
	}
	if parallel != 8 || format != "lines" {
		t.Fatalf("got %d %q", parallel, format)
	}

	err = executor.Execute([]string{"scan", "2"})
	if err != nil {
		t.Fatal(err)
	}
	if parallel != 2 || format != "" {
		t.Fatalf("got %d %q", parallel, format)
	}

	err = executor.Execute([]string{"scan"})
	if err != nil {
		t.Fatal(err)
	}
	if parallel != 0 || format != "" {
		t.Fatalf("got %d %q", parallel, format)
	}
}
