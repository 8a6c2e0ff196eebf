package esil

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

var _vm_defines = map[string]string{
	"STACK_LIMIT": fmt.Sprintf("%v", STACK_LIMIT),
	"TOKEN_LIMIT": fmt.Sprintf("%v", TOKEN_LIMIT),
	"REG_COUNT":   fmt.Sprintf("%v", REG_COUNT),
	"INT32_MIN":   fmt.Sprintf("%v", -0x80000000),
	"INT32_MAX":   fmt.Sprintf("%v", 0x7fffffff),
}

// VM is the evaluation context for ESIL expressions.
type VM struct {
	Verbose   bool // Set to enable verbose logging.
	Delimiter byte // Token delimiter; zero selects DELIMITER.

	Regs     Registers // Register file.
	Stack    Stack     // Evaluation stack.
	RegStack Stack     // Source register of each evaluation stack value.
}

// NewVM creates a zeroed VM whose stacks hold at most depth values.
// A depth of zero selects STACK_LIMIT.
func NewVM(depth uint) (vm *VM) {
	vm = &VM{
		Delimiter: DELIMITER,
		Stack:     NewStack(depth),
		RegStack:  NewStack(depth),
	}

	return
}

// Defines for the vm
func (vm *VM) Defines() iter.Seq2[string, string] {
	return maps.All(_vm_defines)
}

// Initialize zeroes the register file. The stacks are untouched.
func (vm *VM) Initialize() {
	if vm.Verbose {
		log.Printf("esil: initialize registers")
	}

	vm.Regs.Reset()
}

// Reset zeroes the register file and empties both stacks.
func (vm *VM) Reset() {
	if vm.Verbose {
		log.Printf("esil: reset")
	}

	vm.Regs.Reset()
	vm.Stack.Reset()
	vm.RegStack.Reset()
}

// Push pushes a value onto the evaluation stack, recording the register it
// was read from (REG_INVALID for literals and computed values).
func (vm *VM) Push(value int32, origin Register) (err error) {
	if vm.Stack.Full() || vm.RegStack.Full() {
		err = ErrStackFull
		return
	}

	vm.Stack.Push(value)
	vm.RegStack.Push(int32(origin))

	return
}

// Pop pops the top value of the evaluation stack and its source register.
func (vm *VM) Pop() (value int32, origin Register, err error) {
	value, ok := vm.Stack.Pop()
	if !ok {
		err = ErrStackEmpty
		return
	}

	origin = REG_INVALID
	if reg, ok := vm.RegStack.Pop(); ok {
		origin = Register(reg)
	}

	return
}

// Origin returns the register the top of the evaluation stack was read
// from, or REG_INVALID if it is a literal or a computed value.
func (vm *VM) Origin() (origin Register) {
	origin = REG_INVALID
	if vm.RegStack.Len() != vm.Stack.Len() {
		return
	}

	if reg, ok := vm.RegStack.Peek(); ok {
		origin = Register(reg)
	}

	return
}

// Apply executes a single operator against the evaluation stack, and
// returns the new top of the stack.
//
// Binary operators pop op1 then op2, and push (op1 OP op2), except the
// shifts, which push op2 shifted by op1.
// On error the stack is left as the last successful pop or push left it.
func (vm *VM) Apply(op Operator) (top int32, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOperator(op), err)
		}
	}()

	if vm.Verbose {
		log.Printf("esil: apply '%v' depth %v", op, vm.Stack.Len())
	}

	switch op {
	case OP_ROTL, OP_ROTR:
		top, _ = vm.Stack.Peek()
		err = ErrNotImplemented
		return
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_SHL, OP_SHR, OP_AND, OP_OR:
		var op1, op2, result int32
		op1, _, err = vm.Pop()
		if err != nil {
			return
		}
		op2, _, err = vm.Pop()
		if err != nil {
			return
		}
		result, err = vm.doOp(op, op1, op2)
		if err != nil {
			return
		}
		err = vm.Push(result, REG_INVALID)
		if err != nil {
			return
		}
	default:
		// OP_INVALID is a no-op.
	}

	top, ok := vm.Stack.Peek()
	if !ok {
		err = ErrStackEmpty
	}

	return
}

// doOp performs the requested binary operation, and returns the result.
func (vm *VM) doOp(op Operator, op1, op2 int32) (result int32, err error) {
	switch op {
	case OP_ADD:
		result = op1 + op2
	case OP_SUB:
		result = op1 - op2
	case OP_MUL:
		result = op1 * op2
	case OP_DIV:
		if op2 == 0 {
			err = ErrDivideByZero
			return
		}
		result = op1 / op2
	case OP_SHL:
		result = op2 << (uint32(op1) & 0x1f) // clamp to 31 bits of shift
	case OP_SHR:
		result = op2 >> (uint32(op1) & 0x1f) // clamp to 31 bits of shift
	case OP_AND:
		result = op1 & op2
	case OP_OR:
		result = op1 | op2
	}

	return
}
