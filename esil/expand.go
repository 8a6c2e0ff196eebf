// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package esil

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	EXPAND_STEP_LIMIT = 1 << 16 // Maximum starlark steps per $(...) expression.
)

var (
	charRe  = regexp.MustCompile(`'\\?[^']'`)
	parenRe = regexp.MustCompile(`\$\((?:[^()]|\([^()]*\))*\)`)
)

// Expander rewrites expressions before evaluation.
//
// Character literals ('c') become their byte value, $(...) expressions
// are evaluated at expansion time, and tokens naming an equate are replaced
// by the equate's text.
type Expander struct {
	Verbose bool              // If set, verbosely logs the expansions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
// Predefines survive Reset.
func (ex *Expander) Predefine(equ string, value string) {
	if ex.predefine == nil {
		ex.predefine = map[string]string{equ: value}
	} else {
		ex.predefine[equ] = value
	}

	if ex.Equate != nil {
		ex.Equate[equ] = value
	}
}

// Reset discards all equates except the predefines.
func (ex *Expander) Reset() {
	ex.Equate = maps.Clone(ex.predefine)
	if ex.Equate == nil {
		ex.Equate = map[string]string{}
	}
}

// charEval converts a quoted character into its decimal value.
func charEval(word string) string {
	str := word[1 : len(word)-1]
	if str[0] == '\\' {
		str = str[1:]
		switch str {
		case "\\":
			str = "\\"
		case "n":
			str = "\n"
		case "r":
			str = "\r"
		case "t":
			str = "\t"
		case "0":
			str = "\x00"
		case "e":
			str = "\033"
		default:
			return word
		}
	} else if len(str) != 1 {
		return word
	}

	return fmt.Sprintf("%v", str[0])
}

// parenEval does expansion time $(...) evaluations.
func (ex *Expander) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{}
	thread.SetMaxExecutionSteps(EXPAND_STEP_LIMIT)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ex.Equate {
		var value32 int32
		value32, err = ParseLiteral(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or whole expressions.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0xffffffff || st_int64 < -int64(0x80000000) {
		err = ErrParseExpression(expr)
		return
	}

	value = int32(uint32(st_int64))
	return
}

// Expand rewrites an expression whose tokens are separated by delim.
// Empty tokens are dropped from the result.
func (ex *Expander) Expand(expr string, delim byte) (out string, err error) {
	if ex.Equate == nil {
		ex.Reset()
	}
	if delim == 0 {
		delim = DELIMITER
	}

	line := charRe.ReplaceAllStringFunc(expr, charEval)

	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ex.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	var words []string
	for word := range Tokens(line, delim) {
		equate, ok := ex.Equate[word]
		if ok {
			word = equate
		}
		words = append(words, word)
	}

	out = strings.Join(words, string(delim))

	if ex.Verbose {
		log.Printf("esil: expand %q => %q", expr, out)
	}

	return
}
