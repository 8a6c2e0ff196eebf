package esil

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzTokenize(f *testing.F) {
	f.Add("eax,+,ebx", byte(','))
	f.Add(",eax,,ebx,", byte(','))
	f.Add("1 2\x00 +", byte(' '))
	f.Add("", byte(';'))

	f.Fuzz(func(t *testing.T, expr string, delim byte) {
		assert := assert.New(t)

		if delim == 0 {
			delim = DELIMITER
		}

		tokens, err := Tokenize(expr, delim)
		if err != nil {
			assert.ErrorIs(err, ErrTokenAlloc)
			assert.Nil(tokens)
			return
		}

		for _, token := range tokens {
			assert.NotEmpty(token)
			assert.NotContains(token, string(delim))
			assert.NotContains(token, "\x00")
			assert.True(strings.Contains(expr, token))
		}

		var lazy []string
		for token := range Tokens(expr, delim) {
			lazy = append(lazy, token)
		}
		assert.Equal(len(tokens), len(lazy))
		for n := range lazy {
			assert.Equal(tokens[n], lazy[n])
		}
	})
}

func FuzzEval(f *testing.F) {
	for _, seed := range []string{
		"eax,ebx,+",
		"3,5,-",
		"-8,1,>>",
		"1,2,<<<",
		"0,1,/",
		"0x80000000,-1,/",
		"1,+,+,+",
		"eip,esp,ebp,esi,edi,|,&,*,<<",
	} {
		f.Add(seed, uint8(4))
	}

	f.Fuzz(func(t *testing.T, expr string, depth uint8) {
		assert := assert.New(t)

		vm := NewVM(uint(depth))
		vm.Regs.Set(REG_EAX, 0x12345678)
		vm.Regs.Set(REG_ESP, -4)

		result, err := vm.Eval(expr)

		assert.LessOrEqual(vm.Stack.Len(), vm.Stack.limit())
		assert.Equal(vm.Stack.Len(), vm.RegStack.Len())

		if err == nil {
			top, ok := vm.Stack.Peek()
			assert.True(ok)
			assert.Equal(top, result)
			return
		}

		known := []error{
			ErrStackEmpty,
			ErrStackFull,
			ErrNotImplemented,
			ErrDivideByZero,
			ErrTokenAlloc,
		}
		found := false
		for _, target := range known {
			if errors.Is(err, target) {
				found = true
			}
		}
		var unknown ErrUnknownSymbol
		if errors.As(err, &unknown) {
			found = true
		}
		assert.True(found, "%v", err)

		// Registers are never written by evaluation.
		value, _ := vm.Regs.Get(REG_EAX)
		assert.Equal(int32(0x12345678), value)
	})
}
