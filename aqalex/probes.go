package aqalex

// probe tries to read one token category at the cursor.
// On no match it returns ok == false and leaves the cursor where it was.
// A non-nil error is fatal to the whole scan.
type probe func(r *tokenReader) (token Token, ok bool, err error)

// tried in this order at every position, first match wins
var probes = []probe{
	readStringLiteral,
	readHexLiteral,
	readName,
	readBracket,
	readEndOfFile,
	readWhitespace,
}

func readStringLiteral(r *tokenReader) (Token, bool, error) {
	c, ok := r.peek()
	if !ok || c != '"' {
		return Token{}, false, nil
	}
	start := r.index
	r.index++
	bs, ok := r.scanUntilAndConsume('"')
	if !ok {
		return Token{}, false, &ScanError{
			Err:    ErrUnterminatedStringLiteral,
			Offset: start,
		}
	}
	return Token{
		Kind:   TokenStringLiteral,
		Text:   string(bs),
		Offset: start,
		Length: r.index - start,
	}, true, nil
}

func readHexLiteral(r *tokenReader) (Token, bool, error) {
	start := r.index
	if !r.matchLiteral("0x") {
		return Token{}, false, nil
	}
	digits, ok := r.scanWhile(isASCIIHexDigit)
	if !ok {
		// the prefix stays consumed
		return Token{}, false, &ScanError{
			Err:    ErrMalformedHexLiteral,
			Offset: r.index,
		}
	}
	return Token{
		Kind:   TokenHexLiteral,
		Text:   string(digits),
		Offset: start,
		Length: r.index - start,
	}, true, nil
}

func readName(r *tokenReader) (Token, bool, error) {
	start := r.index
	bs, ok := r.scanWhile(isASCIIAlpha)
	if !ok {
		return Token{}, false, nil
	}
	return Token{
		Kind:   TokenName,
		Text:   string(bs),
		Offset: start,
		Length: len(bs),
	}, true, nil
}

func readBracket(r *tokenReader) (Token, bool, error) {
	start := r.index
	switch {
	case r.matchLiteral("("):
		return Token{Kind: TokenLeftBracket, Offset: start, Length: 1}, true, nil
	case r.matchLiteral(")"):
		return Token{Kind: TokenRightBracket, Offset: start, Length: 1}, true, nil
	}
	return Token{}, false, nil
}

func readEndOfFile(r *tokenReader) (Token, bool, error) {
	if !r.atEnd() {
		return Token{}, false, nil
	}
	return Token{Kind: TokenEndOfFile, Offset: r.index}, true, nil
}

func readWhitespace(r *tokenReader) (Token, bool, error) {
	start := r.index
	bs, ok := r.scanWhile(isASCIIWhitespace)
	if !ok {
		return Token{}, false, nil
	}
	return Token{
		Kind:   TokenWhitespace,
		Offset: start,
		Length: len(bs),
	}, true, nil
}

func (r *tokenReader) readToken() (Token, bool, error) {
	for _, p := range probes {
		token, ok, err := p(r)
		if err != nil {
			return Token{}, false, err
		}
		if ok {
			return token, true, nil
		}
	}
	return Token{}, false, nil
}
