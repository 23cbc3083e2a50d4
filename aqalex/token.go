package aqalex

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
	Length int
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenName
	TokenStringLiteral
	TokenHexLiteral
	TokenIntegerLiteral // reserved, no rule produces it
	TokenLeftBracket
	TokenRightBracket
	TokenComma // reserved, no rule produces it
	TokenWhitespace
	TokenEndOfFile
)

var kindNames = [...]string{
	TokenInvalid:        "Invalid",
	TokenName:           "Name",
	TokenStringLiteral:  "StringLiteral",
	TokenHexLiteral:     "HexLiteral",
	TokenIntegerLiteral: "IntegerLiteral",
	TokenLeftBracket:    "LeftBracket",
	TokenRightBracket:   "RightBracket",
	TokenComma:          "Comma",
	TokenWhitespace:     "Whitespace",
	TokenEndOfFile:      "EndOfFile",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// HasPayload reports whether tokens of this kind carry text.
func (k TokenKind) HasPayload() bool {
	switch k {
	case TokenName, TokenStringLiteral, TokenHexLiteral, TokenIntegerLiteral:
		return true
	}
	return false
}

func (t Token) String() string {
	if t.Kind.HasPayload() {
		return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
	}
	return t.Kind.String()
}

// Equal compares kind and payload, ignoring position.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// MarshalJSON emits text for every kind that carries a payload, even when the
// payload is empty.
func (t Token) MarshalJSON() ([]byte, error) {
	var text *string
	if t.Kind.HasPayload() {
		text = &t.Text
	}
	return json.Marshal(struct {
		Kind   string  `json:"kind"`
		Text   *string `json:"text,omitempty"`
		Offset int     `json:"offset"`
		Length int     `json:"length"`
	}{
		Kind:   t.Kind.String(),
		Text:   text,
		Offset: t.Offset,
		Length: t.Length,
	})
}

type Tokens []Token

func (ts Tokens) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Equal compares two sequences with Token.Equal.
func (ts Tokens) Equal(other Tokens) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if !ts[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// WithoutWhitespace returns a copy with Whitespace tokens removed.
// The scanner always emits them; consumers that do not care filter here.
func WithoutWhitespace(tokens []Token) []Token {
	ret := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == TokenWhitespace {
			continue
		}
		ret = append(ret, t)
	}
	return ret
}
