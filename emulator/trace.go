package emulator

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	TRACE_CELLS = 30 // Cells captured in a Snapshot.
)

// Cell is the index and value of a materialized cell.
type Cell struct {
	Index int
	Value int
}

// Snapshot of the machine, taken before each step.
type Snapshot struct {
	Cells       []Cell // Materialized cells among the first TRACE_CELLS.
	Cycles      int
	Pc          int
	Pointer     int
	Instruction byte
	Program     string // Program text, without the sentinel.
}

// Tracer observes the machine. It must not modify it.
type Tracer interface {
	Trace(snap Snapshot)
}

// Snapshot captures the current state of the machine.
func (emu *Emulator) Snapshot() (snap Snapshot) {
	snap = Snapshot{
		Cycles:  emu.Cycles,
		Pc:      emu.Pc,
		Pointer: emu.Pointer,
	}

	if emu.Program != nil {
		snap.Instruction = emu.Program.At(emu.Pc)
		snap.Program = emu.Program.Source()
	}

	for index, value := range emu.Tape.Cells(TRACE_CELLS) {
		snap.Cells = append(snap.Cells, Cell{Index: index, Value: value})
	}

	return
}

// TextTracer writes a console dump of each snapshot:
// the cell values, the registers, and the program with a caret under PC.
type TextTracer struct {
	Writer io.Writer
}

func (tt *TextTracer) Trace(snap Snapshot) {
	var sb strings.Builder

	for _, cell := range snap.Cells {
		fmt.Fprintf(&sb, "%d.", cell.Value)
	}
	fmt.Fprintf(&sb, "\nCC=%d, PC=%d, PO=%d, IN=%c\n", snap.Cycles, snap.Pc, snap.Pointer, snap.Instruction)
	sb.WriteString(snap.Program)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", snap.Pc))
	sb.WriteString("^\n\n")

	io.WriteString(tt.Writer, sb.String())
}

// LogTracer emits one debug record per snapshot.
type LogTracer struct {
	Logger *slog.Logger
}

func (lt *LogTracer) Trace(snap Snapshot) {
	values := make([]int, len(snap.Cells))
	for n, cell := range snap.Cells {
		values[n] = cell.Value
	}

	lt.Logger.Debug("step",
		slog.Int("cycle", snap.Cycles),
		slog.Int("pc", snap.Pc),
		slog.Int("pointer", snap.Pointer),
		slog.String("op", string(snap.Instruction)),
		slog.Any("cells", values),
	)
}
