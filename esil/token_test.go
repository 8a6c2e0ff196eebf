package esil

import (
	"slices"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		expr   string
		delim  byte
		tokens []string
	}){
		{"simple", "eax,+,ebx", ',', []string{"eax", "+", "ebx"}},
		{"edges", ",eax,,ebx,", ',', []string{"eax", "ebx"}},
		{"single", "eax", ',', []string{"eax"}},
		{"empty", "", ',', []string{}},
		{"only_delims", ",,,", ',', []string{}},
		{"trailing", "1,2,+,", ',', []string{"1", "2", "+"}},
		{"leading", ",,1", ',', []string{"1"}},
		{"nul_ends", "1,2\x00,+", ',', []string{"1", "2"}},
		{"nul_first", "\x001,2", ',', []string{}},
		{"space", " eax  ebx ", ' ', []string{"eax", "ebx"}},
		{"default_delim", "eax,ebx", 0, []string{"eax", "ebx"}},
		{"other_delim", "eax,ebx;+", ';', []string{"eax,ebx", "+"}},
	}

	for _, entry := range table {
		tokens, err := Tokenize(entry.expr, entry.delim)
		assert.NoError(err, entry.name)
		assert.Equal(entry.tokens, tokens, entry.name)
		assert.Equal(len(entry.tokens), cap(tokens), entry.name)
		for _, token := range tokens {
			assert.NotEmpty(token, entry.name)
		}
	}
}

func TestTokenize_Alias(t *testing.T) {
	assert := assert.New(t)

	expr := "eax,ebx,+"
	tokens, err := Tokenize(expr, ',')
	assert.NoError(err)

	base := uintptr(unsafe.Pointer(unsafe.StringData(expr)))
	for n, offset := range []uintptr{0, 4, 8} {
		assert.Equal(base+offset, uintptr(unsafe.Pointer(unsafe.StringData(tokens[n]))))
	}
}

func TestTokenizer_Limit(t *testing.T) {
	assert := assert.New(t)

	tk := Tokenizer{Limit: 3}

	tokens, err := tk.Split("1,2,+")
	assert.NoError(err)
	assert.Equal([]string{"1", "2", "+"}, tokens)

	tokens, err = tk.Split("1,2,+,3")
	assert.ErrorIs(err, ErrTokenAlloc)
	assert.Nil(tokens)

	// Delimiter runs do not count against the limit.
	tokens, err = tk.Split(",,1,,,,2,,,,+,,")
	assert.NoError(err)
	assert.Equal([]string{"1", "2", "+"}, tokens)
}

func TestTokenizer_DefaultLimit(t *testing.T) {
	assert := assert.New(t)

	expr := strings.Repeat("1,", TOKEN_LIMIT)
	tokens, err := Tokenize(expr, ',')
	assert.NoError(err)
	assert.Equal(TOKEN_LIMIT, len(tokens))

	tokens, err = Tokenize(expr+"2", ',')
	assert.ErrorIs(err, ErrTokenAlloc)
	assert.Nil(tokens)
}

func TestTokens(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"eax", "ebx"}, slices.Collect(Tokens(",eax,,ebx,", ',')))

	var got []string
	for token := range Tokens("1,2,3,4", ',') {
		got = append(got, token)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal([]string{"1", "2"}, got)

	// A zero delimiter selects DELIMITER.
	assert.Equal([]string{"1", "2"}, slices.Collect(Tokens("1,2", 0)))
}
