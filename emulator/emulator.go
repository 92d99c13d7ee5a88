// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the CPU: program loading, the run loop with its
// cycle limit, the ready/running/halted/faulted state machine, and tracing.
package emulator

import (
	"fmt"
	"log/slog"

	"github.com/ezrec/bfvm/cpu"
	"github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/program"
	"github.com/ezrec/bfvm/tape"
)

// Emulator state. CPU + tape + program + I/O.
type Emulator struct {
	*cpu.Cpu // Reference to the CPU simulation.

	CycleLimit int          // Cycles allowed per Run, 0 for no limit.
	Cycles     int          // Cycles counted by the last Run.
	Tracer     Tracer       // If set, observes every step.
	Logger     *slog.Logger // Lifecycle events, at debug level.

	state State
	fault error
}

// NewEmulator creates a new emulator with an empty fixed-mode tape.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:    cpu.NewCpu(tape.DEFAULT_CELL_MAX),
		Logger: slog.New(slog.DiscardHandler),
	}

	return
}

// State returns the current state.
func (emu *Emulator) State() State {
	return emu.state
}

// Fault returns the error that faulted the emulator, if any.
func (emu *Emulator) Fault() error {
	return emu.fault
}

// Output returns the text written by the program so far.
func (emu *Emulator) Output() string {
	return emu.Cpu.Output.String()
}

// Load a program, replacing the current one.
// A program that reads input is rejected when no Input is attached.
// On failure the previous program and state are kept.
func (emu *Emulator) Load(text string) (err error) {
	prog, err := program.Load(text)
	if err != nil {
		return
	}

	if prog.NeedsInput() && emu.Input == nil {
		err = ErrInputUnavailable
		return
	}

	emu.Program = prog
	emu.Reset()

	emu.Logger.Debug("emulator: load",
		"length", prog.Len()-1,
		"loops", len(prog.Brackets().Close),
	)

	return
}

// Reset the registers, tape, input and output. The program is kept.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Tape.Reset()

	if rw, ok := emu.Input.(io.Rewinder); ok {
		rw.Rewind()
	}

	emu.Cycles = 0
	emu.state = STATE_READY
	emu.fault = nil
}

func (emu *Emulator) fail(err error) error {
	emu.state = STATE_FAULTED
	emu.fault = err

	emu.Logger.Debug("emulator: fault",
		"cycles", emu.Cycles,
		"pc", emu.Pc,
		"error", err,
	)

	return err
}

// check refuses to continue a faulted or unloaded emulator.
func (emu *Emulator) check() (err error) {
	if emu.state == STATE_FAULTED {
		err = fmt.Errorf("%w: %w", ErrFaulted, emu.fault)
		return
	}

	if emu.Program == nil {
		err = ErrNoProgram
		return
	}

	return
}

// Step performs a single instruction.
// done is set once the program has halted.
func (emu *Emulator) Step() (done bool, err error) {
	err = emu.check()
	if err != nil {
		return
	}

	if emu.state == STATE_HALTED {
		done = true
		return
	}

	if emu.Tracer != nil {
		emu.Tracer.Trace(emu.Snapshot())
	}

	pc, pointer := emu.Pc, emu.Pointer

	done, err = emu.Cpu.Step()
	if err != nil {
		err = emu.fail(&ErrRuntime{Pc: pc, Pointer: pointer, Err: err})
		return
	}

	if done {
		emu.state = STATE_HALTED
		emu.Logger.Debug("emulator: halt",
			"cycles", emu.Cycles,
			"output", emu.Cpu.Output.Len(),
		)
		return
	}

	emu.state = STATE_RUNNING
	return
}

// Run steps until the program halts, faults, or reaches the cycle limit.
func (emu *Emulator) Run() (err error) {
	err = emu.check()
	if err != nil {
		return
	}

	emu.Cycles = 0
	for done := false; !done; {
		emu.Cycles++
		if emu.CycleLimit > 0 && emu.Cycles >= emu.CycleLimit {
			err = emu.fail(&ErrCycles{Limit: emu.CycleLimit})
			return
		}

		done, err = emu.Step()
		if err != nil {
			return
		}
	}

	return
}
