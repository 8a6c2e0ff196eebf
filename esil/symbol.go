package esil

import (
	"iter"
	"strconv"

	"github.com/ezrec/esilvm/internal"
)

// Operator is an ESIL operator.
type Operator int

//go:generate go tool stringer -linecomment -type=Operator
const (
	OP_ADD     = Operator(0)  // +
	OP_SUB     = Operator(1)  // -
	OP_MUL     = Operator(2)  // *
	OP_DIV     = Operator(3)  // /
	OP_SHL     = Operator(4)  // <<
	OP_SHR     = Operator(5)  // >>
	OP_ROTL    = Operator(6)  // <<<
	OP_ROTR    = Operator(7)  // >>>
	OP_AND     = Operator(8)  // &
	OP_OR      = Operator(9)  // |
	OP_INVALID = Operator(10) // invalid
)

// Register is an architectural register index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_EAX     = Register(0) // eax
	REG_EBX     = Register(1) // ebx
	REG_ECX     = Register(2) // ecx
	REG_EDX     = Register(3) // edx
	REG_ESI     = Register(4) // esi
	REG_EDI     = Register(5) // edi
	REG_EIP     = Register(6) // eip
	REG_ESP     = Register(7) // esp
	REG_EBP     = Register(8) // ebp
	REG_INVALID = Register(9) // invalid
)

// Kind is the classification of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_UNKNOWN  = Kind(0) // unknown
	KIND_OPERATOR = Kind(1) // operator
	KIND_REGISTER = Kind(2) // register
	KIND_LITERAL  = Kind(3) // literal
)

const (
	REG_COUNT   = int(REG_INVALID) // Number of registers in the file.
	OP_MAX_LEN  = 3                // Longest operator mnemonic.
	REG_MAX_LEN = 3                // Longest register mnemonic.
)

// Valid returns true if the operator is not the invalid sentinel.
func (op Operator) Valid() bool {
	return op >= OP_ADD && op < OP_INVALID
}

// Valid returns true if the register indexes the register file.
func (reg Register) Valid() bool {
	return reg >= REG_EAX && reg < REG_INVALID
}

// LookupOperator returns the operator whose mnemonic is exactly token,
// or OP_INVALID.
func LookupOperator(token string) Operator {
	if len(token) == 0 || len(token) > OP_MAX_LEN {
		return OP_INVALID
	}

	for op := OP_ADD; op < OP_INVALID; op++ {
		if op.String() == token {
			return op
		}
	}

	return OP_INVALID
}

// LookupRegister returns the register whose mnemonic is exactly token,
// or REG_INVALID.
func LookupRegister(token string) Register {
	if len(token) == 0 || len(token) > REG_MAX_LEN {
		return REG_INVALID
	}

	for reg := REG_EAX; reg < REG_INVALID; reg++ {
		if reg.String() == token {
			return reg
		}
	}

	return REG_INVALID
}

// Symbol is a classified token.
type Symbol struct {
	Kind     Kind
	Operator Operator // Valid when Kind is KIND_OPERATOR.
	Register Register // Valid when Kind is KIND_REGISTER.
	Value    int32    // Valid when Kind is KIND_LITERAL.
}

// Classify resolves a token to an operator, a register, or a literal.
// Tokens that are none of these have KIND_UNKNOWN.
func Classify(token string) (sym Symbol) {
	sym = Symbol{
		Kind:     KIND_UNKNOWN,
		Operator: OP_INVALID,
		Register: REG_INVALID,
	}

	if op := LookupOperator(token); op.Valid() {
		sym.Kind = KIND_OPERATOR
		sym.Operator = op
		return
	}

	if reg := LookupRegister(token); reg.Valid() {
		sym.Kind = KIND_REGISTER
		sym.Register = reg
		return
	}

	value, err := ParseLiteral(token)
	if err == nil {
		sym.Kind = KIND_LITERAL
		sym.Value = value
	}

	return
}

// ParseLiteral parses an integer literal in any Go base prefix notation.
// Values from -2^31 to 2^32-1 are accepted, and wrap to 32 bits.
// A leading '~' inverts the value.
func ParseLiteral(word string) (value int32, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	text := word
	invert := false
	if text[0] == '~' {
		invert = true
		text = text[1:]
	}

	v64, perr := strconv.ParseInt(text, 0, 33)
	if perr != nil || v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = int32(uint32(v64))
	if invert {
		value = ^value
	}

	return
}

// OperatorNames iterates the operator mnemonics, in table order.
func OperatorNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for op := OP_ADD; op < OP_INVALID; op++ {
			if !yield(op.String()) {
				return
			}
		}
	}
}

// RegisterNames iterates the register mnemonics, in table order.
func RegisterNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for reg := REG_EAX; reg < REG_INVALID; reg++ {
			if !yield(reg.String()) {
				return
			}
		}
	}
}

// Vocabulary iterates every mnemonic the symbol tables recognize.
func Vocabulary() iter.Seq[string] {
	return internal.Concat(OperatorNames(), RegisterNames())
}
