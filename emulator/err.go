package emulator

import (
	"errors"

	"github.com/ezrec/bfvm/cpu"
	"github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/program"
	"github.com/ezrec/bfvm/tape"
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrCycleLimitExceeded = errors.New(f("cycle limit exceeded"))
	ErrFaulted            = errors.New(f("emulator faulted, reload to continue"))

	// Failure kinds raised by the other parts of the machine.
	ErrInvalidCellCount = tape.ErrInvalidCellCount
	ErrOutOfBounds      = tape.ErrOutOfBounds
	ErrBracketMismatch  = program.ErrBracketMismatch
	ErrInputUnavailable = io.ErrInputUnavailable
	ErrInputMalformed   = io.ErrInputMalformed
	ErrNoProgram        = cpu.ErrNoProgram
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc      int // Offset of the faulting instruction.
	Pointer int // Cell pointer at the time of the fault.
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d, cell %d: %v", err.Pc, err.Pointer, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCycles reports the cycle limit that was hit.
type ErrCycles struct {
	Limit int
}

func (err *ErrCycles) Error() string {
	return f("%v, program terminated at %d cycles", ErrCycleLimitExceeded, err.Limit)
}

func (err *ErrCycles) Unwrap() error {
	return ErrCycleLimitExceeded
}
