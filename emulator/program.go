package emulator

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Line is a single line of an expression listing.
type Line struct {
	LineNo    int      // Source line number, from 1.
	Directive string   // Directive name (".equ", ".set"), or empty.
	Args      []string // Directive arguments.
	Expr      string   // Expression, if not a directive.
}

// Program is a listing of expressions, evaluated in order.
type Program struct {
	Lines []Line
}

// directiveArgs is the argument count of each directive.
var directiveArgs = map[string]int{
	".equ": 2, // .equ NAME VALUE
	".set": 2, // .set REGISTER VALUE
}

// directiveFields splits a directive line into its name and at most n
// arguments. The last argument keeps the rest of the line, spaces included.
func directiveFields(line string, n int) (words []string) {
	rest := strings.TrimSpace(line)
	for len(rest) > 0 && len(words) < n {
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			end = len(rest)
		}
		words = append(words, rest[:end])
		rest = strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	}
	if len(rest) > 0 {
		words = append(words, rest)
	}

	return
}

// Parse reads an expression listing, one expression or directive per line.
// Blank lines are skipped.
//
// Text after ';' is a comment, even inside a character literal, so the
// character ';' must be written as its value (59) in a listing.
// The value of a directive is the rest of the line, so a $(...) expression
// in a directive may contain spaces.
func Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		if !strings.HasPrefix(line, ".") {
			prog.Lines = append(prog.Lines, Line{LineNo: lineno, Expr: line})
			continue
		}

		words := directiveFields(line, 1)
		want, ok := directiveArgs[words[0]]
		if !ok {
			err = ErrDirectiveInvalid
			return
		}
		words = directiveFields(line, want)
		if len(words)-1 != want {
			err = ErrDirectiveSyntax
			return
		}

		prog.Lines = append(prog.Lines, Line{LineNo: lineno, Directive: words[0], Args: words[1:]})
	}

	err = scanner.Err()

	return
}
