package aqalex

import "errors"

// Tokenize scans text into tokens terminated by exactly one TokenEndOfFile.
// Whitespace runs are emitted, not skipped.
// On failure no tokens are returned; the *ScanError holds the partial sequence.
func Tokenize(text string) ([]Token, error) {
	return TokenizeSource(NewSource("", text))
}

func TokenizeSource(source *Source) ([]Token, error) {
	reader := newTokenReader(source.Content)
	var tokens []Token
	for {
		token, ok, err := reader.readToken()
		if err != nil {
			var scanErr *ScanError
			if errors.As(err, &scanErr) {
				scanErr.Tokens = tokens
				scanErr.Source = source
			}
			return nil, err
		}
		if !ok {
			return nil, &ScanError{
				Err:    ErrUnrecognizedInput,
				Offset: reader.index,
				Tokens: tokens,
				Source: source,
			}
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEndOfFile {
			return tokens, nil
		}
	}
}
