package aqalex

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

// Position resolves a byte offset to a 1-based line and column.
// Columns count bytes, since classification is ASCII only.
func (s *Source) Position(offset int) Pos {
	pos := Pos{
		Source: s,
		Offset: offset,
		Line:   1,
		Column: 1,
	}
	if offset > len(s.Content) {
		offset = len(s.Content)
	}
	for i := 0; i < offset; i++ {
		if s.Content[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
