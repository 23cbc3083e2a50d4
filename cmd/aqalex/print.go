package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/aqa/aqaconfigs"
	"github.com/reusee/aqa/aqalex"
	"golang.org/x/term"
)

const (
	colorReset  = "\033[0m"
	colorName   = "\033[36m"
	colorString = "\033[32m"
	colorHex    = "\033[33m"
	colorPunct  = "\033[2m"
)

func kindColor(kind aqalex.TokenKind) string {
	switch kind {
	case aqalex.TokenName:
		return colorName
	case aqalex.TokenStringLiteral:
		return colorString
	case aqalex.TokenHexLiteral, aqalex.TokenIntegerLiteral:
		return colorHex
	}
	return colorPunct
}

// Print writes the tokens of one source to w in the configured format.
type Print func(w io.Writer, source *aqalex.Source, tokens []aqalex.Token) error

func (Module) Print(
	format aqaconfigs.Format,
	dropWhitespace aqaconfigs.DropWhitespace,
	color aqaconfigs.Color,
) Print {
	return func(w io.Writer, source *aqalex.Source, tokens []aqalex.Token) error {
		if dropWhitespace {
			tokens = aqalex.WithoutWhitespace(tokens)
		}
		colored := bool(color) && isTerminal(w)

		switch format {

		case aqaconfigs.FormatJSON:
			return json.NewEncoder(w).Encode(struct {
				Source string        `json:"source"`
				Tokens aqalex.Tokens `json:"tokens"`
			}{
				Source: source.Name,
				Tokens: tokens,
			})

		case aqaconfigs.FormatLines:
			for _, token := range tokens {
				pos := source.Position(token.Offset)
				text := token.Kind.String()
				if token.Kind.HasPayload() {
					text += "\t" + fmt.Sprintf("%q", token.Text)
				}
				if colored {
					text = kindColor(token.Kind) + text + colorReset
				}
				if _, err := fmt.Fprintf(w, "%s:%d:%d\t%s\n", source.Name, pos.Line, pos.Column, text); err != nil {
					return err
				}
			}
			return nil

		default:
			if !colored {
				_, err := fmt.Fprintln(w, aqalex.Tokens(tokens).String())
				return err
			}
			var sb strings.Builder
			sb.WriteString("[")
			for i, token := range tokens {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(kindColor(token.Kind))
				sb.WriteString(token.String())
				sb.WriteString(colorReset)
			}
			sb.WriteString("]\n")
			_, err := io.WriteString(w, sb.String())
			return err

		}
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
