// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/esilvm/esil"
	"github.com/ezrec/esilvm/internal"
)

const (
	STACK_DEPTH = 64 // Evaluation stack depth of the emulator VM.
)

var _emulator_defines = map[string]string{
	"STACK_DEPTH": fmt.Sprintf("%v", STACK_DEPTH),
}

// Emulator state. VM + expander + expression listing.
type Emulator struct {
	Verbose  bool          // If set, enables verbose logging.
	*esil.VM               // Reference to the VM.
	Expander esil.Expander // Equate and $(...) expander.
	Program  *Program      // Reference to the currently running listing.

	Results map[int]int32 // Result of each evaluated line, by line number.

	index int // Index of the next line to run.
	ticks int // Lines run since reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		VM:      esil.NewVM(STACK_DEPTH),
		Program: &Program{},
	}

	for equ, value := range emu.Defines() {
		emu.Expander.Predefine(equ, value)
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		emu.VM.Defines(),
	)
}

// Reset the emulator state: registers, stacks, equates and results.
func (emu *Emulator) Reset() {
	emu.VM.Reset()
	emu.Expander.Reset()

	emu.Results = map[int]int32{}
	emu.index = 0
	emu.ticks = 0
}

// Ticks returns the total lines run since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// LineNo returns the line number of the next line to run, or 0 when done.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil || emu.index >= len(emu.Program.Lines) {
		return 0
	}

	return emu.Program.Lines[emu.index].LineNo
}

// directive runs a listing directive.
func (emu *Emulator) directive(line *Line) (err error) {
	switch line.Directive {
	case ".equ":
		_, ok := emu.Expander.Equate[line.Args[0]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		var text string
		text, err = emu.Expander.Expand(line.Args[1], emu.VM.Delimiter)
		if err != nil {
			return
		}
		emu.Expander.Equate[line.Args[0]] = text
	case ".set":
		reg := esil.LookupRegister(line.Args[0])
		if !reg.Valid() {
			err = esil.ErrRegisterInvalid
			return
		}
		var text string
		text, err = emu.Expander.Expand(line.Args[1], emu.VM.Delimiter)
		if err != nil {
			return
		}
		var value int32
		value, err = esil.ParseLiteral(text)
		if err != nil {
			return
		}
		emu.VM.Regs.Set(reg, value)
	default:
		err = ErrDirectiveInvalid
	}

	return
}

// Tick runs a single line of the listing.
// Each expression starts with empty stacks; registers persist.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.VM.Verbose = emu.Verbose
	emu.Expander.Verbose = emu.Verbose

	if emu.Program == nil || emu.index >= len(emu.Program.Lines) {
		done = true
		return
	}

	line := &emu.Program.Lines[emu.index]
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: line.LineNo, Err: err}
		}
	}()

	if len(line.Directive) != 0 {
		err = emu.directive(line)
	} else {
		var expr string
		expr, err = emu.Expander.Expand(line.Expr, emu.VM.Delimiter)
		if err != nil {
			return
		}

		emu.VM.Stack.Reset()
		emu.VM.RegStack.Reset()

		var value int32
		value, err = emu.VM.Eval(expr)
		if err != nil {
			return
		}
		emu.Results[line.LineNo] = value

		if emu.Verbose {
			log.Printf("%v: %v => %v", line.LineNo, line.Expr, value)
		}
	}
	if err != nil {
		return
	}

	emu.index++
	emu.ticks++

	return
}

// Run ticks the emulator until the listing is done, or an error occurs.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
