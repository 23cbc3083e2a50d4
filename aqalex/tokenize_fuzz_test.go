package aqalex

import (
	"errors"
	"testing"
)

// FuzzTokenize checks that scanning never panics and that every
// successful result keeps the sequence invariants.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		``,
		`OUTPUT("Hello, World!")`,
		`INPUT(0x22)`,
		`0x`,
		`0x"a"`,
		`"abc`,
		`@`,
		"\t\n\r\f\v",
		`((()))`,
		`0x0x0x`,
		"\xff\xfe",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens, err := Tokenize(input)
		if err != nil {
			if tokens != nil {
				t.Fatalf("partial result for %q", input)
			}
			if !errors.Is(err, ErrUnrecognizedInput) &&
				!errors.Is(err, ErrMalformedHexLiteral) &&
				!errors.Is(err, ErrUnterminatedStringLiteral) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			var scanErr *ScanError
			if !errors.As(err, &scanErr) {
				t.Fatalf("got %T", err)
			}
			if scanErr.Offset < 0 || scanErr.Offset > len(input) {
				t.Fatalf("offset %d out of range for %q", scanErr.Offset, input)
			}
			_ = scanErr.Error()
			return
		}
		checkInvariants(t, input, tokens)
	})
}
