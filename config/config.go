// Package config holds the run configuration of the virtual machine and
// loads it from Starlark, CUE or YAML files.
package config

import (
	"io"
	"iter"
	"slices"

	"github.com/ezrec/bfvm/emulator"
	bfio "github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/tape"
)

// Config is fixed before a run and not changed during it.
type Config struct {
	CycleLimit int   `json:"cycle_limit" yaml:"cycle_limit"` // 0 for no limit.
	CellMax    int   `json:"cell_max" yaml:"cell_max"`       // Largest cell value.
	Cells      int   `json:"cells" yaml:"cells"`             // Cells to provision.
	AutoScale  bool  `json:"auto_scale" yaml:"auto_scale"`   // Materialize cells on demand.
	Debug      bool  `json:"debug" yaml:"debug"`             // Trace every step.
	Prefilter  bool  `json:"prefilter" yaml:"prefilter"`     // Strip comments before loading.
	Input      []int `json:"input" yaml:"input"`             // Pre-supplied input values.
}

// Default configuration.
func Default() (cfg Config) {
	cfg = Config{
		CellMax:   tape.DEFAULT_CELL_MAX,
		AutoScale: true,
		Prefilter: true,
	}

	return
}

// Validate the ranges of the numeric settings.
func (cfg *Config) Validate() (err error) {
	switch {
	case cfg.CycleLimit < 0:
		err = &ErrValue{Key: "cycle_limit", Value: cfg.CycleLimit}
	case cfg.CellMax < 1:
		err = &ErrValue{Key: "cell_max", Value: cfg.CellMax}
	case cfg.Cells < 0:
		err = &ErrValue{Key: "cells", Value: cfg.Cells}
	}

	return
}

// Apply the configuration to an emulator, provisioning its tape.
// A fixed-mode tape must be given at least one cell.
// When Debug is set, steps are traced to the trace writer.
func (cfg *Config) Apply(emu *emulator.Emulator, trace io.Writer) (err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	emu.Tape.Max = cfg.CellMax
	emu.Tape.AutoScale = cfg.AutoScale
	emu.CycleLimit = cfg.CycleLimit

	if cfg.Cells > 0 || !cfg.AutoScale {
		err = emu.Tape.Provision(cfg.Cells)
		if err != nil {
			return
		}
	}

	if cfg.Debug && trace != nil {
		emu.Tracer = &emulator.TextTracer{Writer: trace}
	}

	return
}

// Source builds the input source: the configured values, then the extra
// values, then the interactive fallback.
func (cfg *Config) Source(interactive bfio.Input, extra ...iter.Seq[int]) (src *bfio.Source) {
	seqs := append([]iter.Seq[int]{slices.Values(cfg.Input)}, extra...)

	src = &bfio.Source{
		Stream:      *bfio.NewStream(seqs...),
		Interactive: interactive,
	}

	return
}
