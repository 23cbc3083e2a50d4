package aqalex

type tokenReader struct {
	buffer []byte
	index  int
}

func newTokenReader(text string) *tokenReader {
	return &tokenReader{
		buffer: []byte(text),
	}
}

func (r *tokenReader) atEnd() bool {
	return r.index >= len(r.buffer)
}

func (r *tokenReader) peekAt(offset int) (byte, bool) {
	if offset < 0 || offset >= len(r.buffer) {
		return 0, false
	}
	return r.buffer[offset], true
}

func (r *tokenReader) peek() (byte, bool) {
	return r.peekAt(r.index)
}

func (r *tokenReader) matchLiteral(text string) bool {
	end := r.index + len(text)
	if end > len(r.buffer) {
		return false
	}
	if string(r.buffer[r.index:end]) != text {
		return false
	}
	r.index = end
	return true
}

// scanWhile consumes the longest run of bytes accepted by pred.
// pred sees the bytes already accepted in this run.
func (r *tokenReader) scanWhile(pred func(accepted []byte, c byte) bool) ([]byte, bool) {
	end := r.index
	for {
		c, ok := r.peekAt(end)
		if !ok {
			break
		}
		if !pred(r.buffer[r.index:end], c) {
			break
		}
		end++
	}
	if end == r.index {
		return nil, false
	}
	ret := r.buffer[r.index:end]
	r.index = end
	return ret, true
}

// scanUntilAndConsume returns the bytes before delim and moves past delim.
// No escaping. Returns false if delim never appears.
func (r *tokenReader) scanUntilAndConsume(delim byte) ([]byte, bool) {
	for end := r.index; ; end++ {
		c, ok := r.peekAt(end)
		if !ok {
			return nil, false
		}
		if c == delim {
			ret := r.buffer[r.index:end]
			r.index = end + 1
			return ret, true
		}
	}
}

func isASCIIAlpha(_ []byte, c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isASCIIHexDigit(_ []byte, c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}

// space, \t, \n, \f and \r; vertical tab is not whitespace here
func isASCIIWhitespace(_ []byte, c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
