package esil

import (
	"iter"
	"strings"
)

const (
	DELIMITER   = ','  // Default token delimiter.
	TOKEN_LIMIT = 4096 // Default maximum number of tokens in an expression.
)

// Tokenizer splits expressions into tokens.
type Tokenizer struct {
	Delimiter byte // Token delimiter; zero selects DELIMITER.
	Limit     int  // Maximum tokens per expression; zero selects TOKEN_LIMIT.
}

// span calls yield with the bounds of each token in expr, left to right.
// A NUL byte ends the expression.
func span(expr string, delim byte, yield func(from, to int) bool) {
	if end := strings.IndexByte(expr, 0); end >= 0 {
		expr = expr[:end]
	}

	from := 0
	for n := 0; n < len(expr); n++ {
		if expr[n] != delim {
			continue
		}
		if n > from && !yield(from, n) {
			return
		}
		from = n + 1
	}

	if len(expr) > from {
		yield(from, len(expr))
	}
}

// Split returns the tokens of expr. Tokens are substrings of expr, and are
// never empty. The result is either complete, or nil with an error.
func (tk *Tokenizer) Split(expr string) (tokens []string, err error) {
	delim := tk.Delimiter
	if delim == 0 {
		delim = DELIMITER
	}
	limit := tk.Limit
	if limit <= 0 {
		limit = TOKEN_LIMIT
	}

	count := 0
	span(expr, delim, func(from, to int) bool {
		count++
		return count <= limit
	})
	if count > limit {
		err = ErrTokenAlloc
		return
	}

	tokens = make([]string, 0, count)
	span(expr, delim, func(from, to int) bool {
		tokens = append(tokens, expr[from:to])
		return true
	})

	return
}

// Tokenize splits expr at delim, with the default token limit.
func Tokenize(expr string, delim byte) (tokens []string, err error) {
	tk := Tokenizer{Delimiter: delim}
	return tk.Split(expr)
}

// Tokens lazily iterates the tokens of expr split at delim.
func Tokens(expr string, delim byte) iter.Seq[string] {
	if delim == 0 {
		delim = DELIMITER
	}

	return func(yield func(string) bool) {
		span(expr, delim, func(from, to int) bool {
			return yield(expr[from:to])
		})
	}
}
