// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/emulator"
	"github.com/ezrec/bfvm/internal/logs"
	bfio "github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/program"
	"github.com/ezrec/bfvm/translate"
)

// parseInput parses a comma separated list of input values.
func parseInput(text string) (values []int, err error) {
	if len(text) == 0 {
		return
	}

	for _, word := range strings.Split(text, ",") {
		var value int
		value, err = strconv.Atoi(strings.TrimSpace(word))
		if err != nil {
			return
		}
		values = append(values, value)
	}

	return
}

func main() {
	var configFile string
	var cycleLimit int
	var cellMax int
	var cells int
	var autoScale bool
	var debug bool
	var input string
	var raw bool
	var verbose bool
	var logFile string
	var lang string

	flag.StringVar(&configFile, "c", "", ".star, .cue or .yaml configuration file")
	flag.IntVar(&cycleLimit, "l", 0, "Cycle limit, 0 for none")
	flag.IntVar(&cellMax, "m", 255, "Maximum cell value")
	flag.IntVar(&cells, "n", 0, "Cells to provision")
	flag.BoolVar(&autoScale, "a", true, "Auto-scale the tape")
	flag.BoolVar(&debug, "d", false, "Trace every step to stderr")
	flag.StringVar(&input, "i", "", "Comma separated input values, read before prompting")
	flag.BoolVar(&raw, "raw", false, "Do not strip comments before loading")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&logFile, "log", "", "Also write JSON log records to this file")
	flag.StringVar(&lang, "lang", "", "Message language, detected if empty")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [options] program.bf|-", os.Args[0], os.Args[0])
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	var extra []slog.Handler
	if len(logFile) != 0 {
		ouf, err := os.Create(logFile)
		if err != nil {
			log.Fatalf("%v: %v", logFile, err)
		}
		defer ouf.Close()
		extra = append(extra, slog.NewJSONHandler(ouf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	logger := logs.New(os.Stderr, level, extra...)

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.LoadFile(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	// Flags given on the command line override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "l":
			cfg.CycleLimit = cycleLimit
		case "m":
			cfg.CellMax = cellMax
		case "n":
			cfg.Cells = cells
		case "a":
			cfg.AutoScale = autoScale
		case "d":
			cfg.Debug = debug
		case "raw":
			cfg.Prefilter = !raw
		}
	})

	extraInput, err := parseInput(input)
	if err != nil {
		log.Fatalf("-i %v: %v", input, err)
	}

	name := flag.Arg(0)
	var text []byte
	if name == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(name)
	}
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	emu := emulator.NewEmulator()
	emu.Logger = logger
	if level == slog.LevelDebug && !cfg.Debug {
		emu.Tracer = &emulator.LogTracer{Logger: logger}
	}

	err = cfg.Apply(emu, os.Stderr)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	// When stdin holds the program only pre-supplied input is available.
	var interactive bfio.Input
	if name != "-" {
		interactive = &bfio.Prompt{Input: os.Stdin, Output: os.Stderr}
	}
	emu.Input = cfg.Source(interactive, slices.Values(extraInput))
	emu.Cpu.Output.Writer = os.Stdout

	source := string(text)
	if cfg.Prefilter {
		source = program.Prefilter(source)
	}

	err = emu.Load(source)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	err = emu.Run()
	fmt.Println()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
}
