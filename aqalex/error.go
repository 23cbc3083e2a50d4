package aqalex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnterminatedStringLiteral = errors.New("unterminated string literal")
	ErrMalformedHexLiteral       = errors.New("malformed hex literal")
	ErrUnrecognizedInput         = errors.New("unrecognized input")
)

// ScanError reports where a scan failed and what had been read so far.
type ScanError struct {
	Err    error
	Offset int
	Tokens Tokens
	Source *Source
}

var _ error = new(ScanError)

func (s *ScanError) Pos() Pos {
	if s.Source == nil {
		return Pos{Offset: s.Offset}
	}
	return s.Source.Position(s.Offset)
}

func (s *ScanError) cause() error {
	if s.Err == nil {
		return ErrUnrecognizedInput
	}
	return s.Err
}

func (s *ScanError) Error() string {
	if s.Source == nil {
		return fmt.Sprintf("%s at offset %d", s.cause().Error(), s.Offset)
	}
	pos := s.Pos()

	var sb strings.Builder
	name := s.Source.Name
	if name == "" {
		name = "<input>"
	}
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", s.cause().Error(), name, pos.Line, pos.Column))

	idx := pos.Line - 1
	if idx >= 0 && idx < len(s.Source.Lines) {
		line := s.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")
		for i := 0; i < pos.Column-1 && i < len(line); i++ {
			if line[i] == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (s *ScanError) Unwrap() error {
	return s.cause()
}
