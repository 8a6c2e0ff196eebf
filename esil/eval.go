package esil

import (
	"log"
)

// Step evaluates a single token against the VM.
// Registers and literals are pushed, operators are applied.
func (vm *VM) Step(token string) (err error) {
	sym := Classify(token)

	switch sym.Kind {
	case KIND_OPERATOR:
		_, err = vm.Apply(sym.Operator)
	case KIND_REGISTER:
		value, _ := vm.Regs.Get(sym.Register)
		err = vm.Push(value, sym.Register)
	case KIND_LITERAL:
		err = vm.Push(sym.Value, REG_INVALID)
	default:
		err = ErrUnknownSymbol(token)
	}

	return
}

// Eval evaluates a delimited expression, and returns the value left on
// top of the evaluation stack.
func (vm *VM) Eval(expr string) (result int32, err error) {
	tk := Tokenizer{Delimiter: vm.Delimiter}

	tokens, err := tk.Split(expr)
	if err != nil {
		return
	}

	if vm.Verbose {
		log.Printf("esil: eval %q (%v tokens)", expr, len(tokens))
	}

	for n, token := range tokens {
		err = vm.Step(token)
		if err != nil {
			err = ErrToken{Index: n, Token: token, Err: err}
			return
		}
	}

	result, ok := vm.Stack.Peek()
	if !ok {
		err = ErrStackEmpty
	}

	return
}
