package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"
)

// Fields accepted by a CUE configuration.
const cueSchema = `
cycle_limit?: int & >=0
cell_max?:    int & >=1
cells?:       int & >=0
auto_scale?:  bool
debug?:       bool
prefilter?:   bool
input?:       [...int]
`

// LoadFile reads a configuration file, chosen by extension:
// .star (Starlark), .cue (CUE) or .yaml/.yml (YAML).
// Settings missing from the file keep their Default values.
func LoadFile(path string) (cfg Config, err error) {
	cfg = Default()

	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".star":
		err = loadStarlark(path, src, &cfg)
	case ".cue":
		err = loadCue(path, src, &cfg)
	case ".yaml", ".yml":
		err = loadYaml(src, &cfg)
	default:
		err = ErrFormat(filepath.Ext(path))
	}
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

func loadYaml(src []byte, cfg *Config) (err error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}

	return
}

func loadCue(path string, src []byte, cfg *Config) (err error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({" + cueSchema + "})")
	if err = schema.Err(); err != nil {
		return
	}

	value := ctx.CompileBytes(src, cue.Filename(path))
	if err = value.Err(); err != nil {
		return
	}

	value = schema.Unify(value)
	if err = value.Validate(cue.Concrete(true)); err != nil {
		return
	}

	err = value.Decode(cfg)
	return
}

// loadStarlark executes the file and reads its globals.
// Functions and names starting with '_' are helpers and are ignored.
func loadStarlark(path string, src []byte, cfg *Config) (err error) {
	thread := &starlark.Thread{Name: path}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, path, src, nil)
	if err != nil {
		return
	}

	for _, key := range globals.Keys() {
		value := globals[key]
		if strings.HasPrefix(key, "_") {
			continue
		}
		if _, ok := value.(starlark.Callable); ok {
			continue
		}

		switch key {
		case "cycle_limit":
			cfg.CycleLimit, err = starlarkInt(key, value)
		case "cell_max":
			cfg.CellMax, err = starlarkInt(key, value)
		case "cells":
			cfg.Cells, err = starlarkInt(key, value)
		case "auto_scale":
			cfg.AutoScale, err = starlarkBool(key, value)
		case "debug":
			cfg.Debug, err = starlarkBool(key, value)
		case "prefilter":
			cfg.Prefilter, err = starlarkBool(key, value)
		case "input":
			cfg.Input, err = starlarkInput(key, value)
		default:
			err = ErrKey(key)
		}
		if err != nil {
			return
		}
	}

	return
}

func starlarkInt(key string, value starlark.Value) (n int, err error) {
	n, err = starlark.AsInt32(value)
	if err != nil {
		err = &ErrValue{Key: key, Value: value}
	}
	return
}

func starlarkBool(key string, value starlark.Value) (b bool, err error) {
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = &ErrValue{Key: key, Value: value}
		return
	}
	b = bool(st_bool)
	return
}

// starlarkInput accepts a string, taken byte by byte, or a sequence of ints.
func starlarkInput(key string, value starlark.Value) (input []int, err error) {
	switch value := value.(type) {
	case starlark.String:
		for _, ch := range []byte(string(value)) {
			input = append(input, int(ch))
		}
		return
	case starlark.Bytes:
		for _, ch := range []byte(string(value)) {
			input = append(input, int(ch))
		}
		return
	case starlark.Iterable:
		iter := value.Iterate()
		defer iter.Done()

		var elem starlark.Value
		for iter.Next(&elem) {
			var n int
			n, err = starlarkInt(key, elem)
			if err != nil {
				return
			}
			input = append(input, n)
		}
		return
	}

	err = &ErrValue{Key: key, Value: value}
	return
}
