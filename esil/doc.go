// Package esil implements a stack based evaluator for ESIL style
// register transfer expressions.
//
// An expression is a list of tokens separated by a delimiter (',' by
// default) in postfix order. Each token is an operator mnemonic
// (+ - * / << >> <<< >>> & |), a register mnemonic (eax ebx ecx edx esi edi
// eip esp ebp) or an integer literal. Registers and literals are pushed onto
// the evaluation stack; operators pop their operands and push the result.
//
// The VM holds a register file of nine 32-bit registers, the evaluation
// stack, and a second stack recording which register each stacked value was
// read from.
package esil
