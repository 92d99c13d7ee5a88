// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tape

import (
	"iter"
)

const (
	DEFAULT_CELL_MAX = 255 // 8-bit cells.
)

// Tape is the cell array.
type Tape struct {
	Max       int  // Largest value a cell can hold.
	AutoScale bool // Materialize cells on first access.

	cells       []int
	present     []bool
	provisioned int
}

// NewTape creates an empty fixed-mode tape.
func NewTape(cellMax int) (tp *Tape) {
	tp = &Tape{
		Max: cellMax,
	}

	return
}

// Provision zeroes and materializes cells [0, count-1].
func (tp *Tape) Provision(count int) (err error) {
	if count < 1 {
		err = &ErrProvision{Count: count}
		return
	}

	tp.grow(count)
	for n := range count {
		tp.cells[n] = 0
		tp.present[n] = true
	}
	tp.provisioned = max(tp.provisioned, count)

	return
}

// Len returns the number of cells currently backed by storage, materialized
// or not.
func (tp *Tape) Len() int {
	return len(tp.cells)
}

func (tp *Tape) grow(size int) {
	if size <= len(tp.cells) {
		return
	}

	tp.cells = append(tp.cells, make([]int, size-len(tp.cells))...)
	tp.present = append(tp.present, make([]bool, size-len(tp.present))...)
}

// cell checks the index, materializing the cell if auto-scaling.
func (tp *Tape) cell(index int) (err error) {
	if index >= 0 && index < len(tp.cells) && tp.present[index] {
		return
	}

	if index < 0 || !tp.AutoScale {
		err = &ErrAccess{Index: index, Cells: tp.provisioned}
		return
	}

	tp.grow(index + 1)
	tp.cells[index] = 0
	tp.present[index] = true

	return
}

// Read the value of a cell.
func (tp *Tape) Read(index int) (value int, err error) {
	err = tp.cell(index)
	if err != nil {
		return
	}

	value = tp.cells[index]
	return
}

// Write a value to a cell, applying the wrap policy.
func (tp *Tape) Write(index int, value int) (err error) {
	err = tp.cell(index)
	if err != nil {
		return
	}

	if value > tp.Max {
		value = 0
	}
	if value < 0 {
		value = tp.Max
	}

	tp.cells[index] = value
	return
}

// Reset zeroes the provisioned cells and drops any auto-scaled ones.
func (tp *Tape) Reset() {
	tp.cells = tp.cells[:tp.provisioned]
	tp.present = tp.present[:tp.provisioned]
	clear(tp.cells)
}

// Cells iterates over the materialized cells among the first count.
func (tp *Tape) Cells(count int) iter.Seq2[int, int] {
	return func(yield func(index int, value int) bool) {
		for n := range min(count, len(tp.cells)) {
			if !tp.present[n] {
				continue
			}
			if !yield(n, tp.cells[n]) {
				return
			}
		}
	}
}
