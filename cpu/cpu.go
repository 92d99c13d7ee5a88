package cpu

import (
	"fmt"

	"github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/program"
	"github.com/ezrec/bfvm/tape"
)

// Cpu is the register set and attached devices of the machine.
type Cpu struct {
	Tape    *tape.Tape       // Cell memory.
	Program *program.Program // Currently loaded program.
	Input   io.Input         // Source for OP_IN, may be nil.
	Output  io.Output        // Accumulated OP_OUT values.

	Pointer int // Current cell index.
	Pc      int // Offset of the next instruction.
}

// NewCpu creates a new CPU with an empty fixed-mode tape.
func NewCpu(cellMax int) (cpu *Cpu) {
	cpu = &Cpu{
		Tape: tape.NewTape(cellMax),
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var op byte = program.OP_HALT
	if cpu.Program != nil {
		op = cpu.Program.At(cpu.Pc)
	}

	text += fmt.Sprintf("%5s: %d\n", "pc", cpu.Pc)
	text += fmt.Sprintf("%5s: %q\n", "op", op)
	text += fmt.Sprintf("%5s: %d\n", "ptr", cpu.Pointer)

	value, err := cpu.Tape.Read(cpu.Pointer)
	if err != nil {
		text += fmt.Sprintf("%5s: ---\n", "cell")
	} else {
		text += fmt.Sprintf("%5s: %d\n", "cell", value)
	}

	return
}

// Reset the registers and the output. The program is kept.
func (cpu *Cpu) Reset() {
	cpu.Pointer = 0
	cpu.Pc = 0
	cpu.Output.Reset()
}

// Step executes the instruction at PC.
// done is set, and nothing changes, when PC is at the OP_HALT sentinel.
func (cpu *Cpu) Step() (done bool, err error) {
	if cpu.Program == nil {
		err = ErrNoProgram
		return
	}

	var value int

	op := cpu.Program.At(cpu.Pc)
	switch op {
	case program.OP_HALT:
		done = true
		return
	case program.OP_RIGHT:
		cpu.Pointer++
	case program.OP_LEFT:
		cpu.Pointer--
	case program.OP_INC:
		value, err = cpu.Tape.Read(cpu.Pointer)
		if err != nil {
			return
		}
		err = cpu.Tape.Write(cpu.Pointer, value+1)
	case program.OP_DEC:
		value, err = cpu.Tape.Read(cpu.Pointer)
		if err != nil {
			return
		}
		err = cpu.Tape.Write(cpu.Pointer, value-1)
	case program.OP_OUT:
		value, err = cpu.Tape.Read(cpu.Pointer)
		if err != nil {
			return
		}
		err = cpu.Output.WriteByte(byte(value))
	case program.OP_IN:
		if cpu.Input == nil {
			err = io.ErrInputUnavailable
			return
		}
		value, err = cpu.Input.NextByte()
		if err != nil {
			return
		}
		err = cpu.Tape.Write(cpu.Pointer, value)
	case program.OP_LOOP:
		value, err = cpu.Tape.Read(cpu.Pointer)
		if err != nil {
			return
		}
		if value == 0 {
			cpu.Pc, err = cpu.match()
			return
		}
	case program.OP_END:
		value, err = cpu.Tape.Read(cpu.Pointer)
		if err != nil {
			return
		}
		if value != 0 {
			var open int
			open, err = cpu.match()
			if err != nil {
				return
			}
			cpu.Pc = open + 1
			return
		}
	}

	if err != nil {
		return
	}

	// Everything else, comments included, falls through to the next offset.
	cpu.Pc++

	return
}

func (cpu *Cpu) match() (offset int, err error) {
	offset, ok := cpu.Program.Match(cpu.Pc)
	if !ok {
		offset = cpu.Pc
		err = ErrNoMatch
	}
	return
}
