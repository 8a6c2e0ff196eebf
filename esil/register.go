package esil

import (
	"iter"
)

// Registers is the register file, indexed by Register.
type Registers [REG_COUNT]int32

// Get returns the value of a register.
func (r *Registers) Get(reg Register) (value int32, ok bool) {
	if !reg.Valid() {
		return
	}

	return r[reg], true
}

// Set writes the value of a register.
func (r *Registers) Set(reg Register, value int32) (ok bool) {
	if !reg.Valid() {
		return
	}

	r[reg] = value
	return true
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	clear(r[:])
}

// All iterates the registers and their values, in table order.
func (r *Registers) All() iter.Seq2[Register, int32] {
	return func(yield func(Register, int32) bool) {
		for n, value := range r {
			if !yield(Register(n), value) {
				return
			}
		}
	}
}
