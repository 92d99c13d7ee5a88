package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bfvm/io"
)

func newEmulator(autoScale bool) (emu *Emulator) {
	emu = NewEmulator()
	emu.Tape.AutoScale = autoScale
	return
}

func doRun(t *testing.T, emu *Emulator, text string) (output []byte) {
	assert := assert.New(t)

	err := emu.Load(text)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(STATE_READY, emu.State())

	err = emu.Run()
	assert.NoError(err)
	if err != nil {
		t.Log(emu.Cpu.String())
		t.Fatal(err)
	}
	assert.Equal(STATE_HALTED, emu.State())

	output = emu.Cpu.Output.Bytes()
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Tape)
	assert.Equal(255, emu.Tape.Max)
	assert.False(emu.Tape.AutoScale)
	assert.Equal(0, emu.CycleLimit)
	assert.Equal(STATE_READY, emu.State())
	assert.Equal("ready", emu.State().String())
}

func TestEmulator_Programs(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		output []byte
	}){
		{"two", "++.", []byte{2}},
		{"sixty_four", "++++++++[>++++++++<-]>.", []byte{64}},
		{"empty", "", nil},
		{"comments", "add two + + and print .", []byte{2}},
		{"nested", "++[>++[>+<-]<-]>>.", []byte{4}},
	}

	for _, entry := range table {
		emu := newEmulator(true)
		output := doRun(t, emu, entry.text)
		assert.Equal(entry.output, output, entry.name)
		assert.Equal(string(entry.output), emu.Output(), entry.name)
	}
}

func TestEmulator_Echo(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(true)
	emu.Input = &io.Source{Stream: io.Stream{Data: []int{65}}}

	output := doRun(t, emu, ",.")
	assert.Equal([]byte{65}, output)
	assert.Equal("A", emu.Output())
}

func TestEmulator_Echo_Fallback(t *testing.T) {
	assert := assert.New(t)

	prompt := &bytes.Buffer{}
	emu := newEmulator(true)
	emu.Input = &io.Source{
		Stream: io.Stream{Data: []int{72}},
		Interactive: &io.Prompt{
			Input:  strings.NewReader("nope\n105\n"),
			Output: prompt,
		},
	}

	output := doRun(t, emu, ",.>,.")
	assert.Equal("Hi", string(output))
	assert.Equal(2, strings.Count(prompt.String(), io.DEFAULT_PROMPT))
}

func TestEmulator_BracketMismatch(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"[", "]"} {
		emu := newEmulator(true)
		err := emu.Load(text)
		assert.ErrorIs(err, ErrBracketMismatch)
		assert.Contains(err.Error(), "offset 0")
		assert.Nil(emu.Program)

		_, err = emu.Step()
		assert.ErrorIs(err, ErrNoProgram)
		assert.ErrorIs(emu.Run(), ErrNoProgram)
	}
}

func TestEmulator_InputUnavailable(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(true)
	err := emu.Load("+,.")
	assert.ErrorIs(err, ErrInputUnavailable)
	assert.Nil(emu.Program)

	// Exhausted stream with no interactive fallback fails at run time.
	emu.Input = &io.Source{}
	assert.NoError(emu.Load("+,."))
	err = emu.Run()
	assert.ErrorIs(err, ErrInputUnavailable)
	assert.Equal(STATE_FAULTED, emu.State())
}

func TestEmulator_InputMalformed(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(true)
	emu.Input = &io.Prompt{
		Input:       strings.NewReader("a\nb\n"),
		MaxAttempts: 2,
	}
	assert.NoError(emu.Load(","))
	assert.ErrorIs(emu.Run(), ErrInputMalformed)
}

func TestEmulator_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(false)
	assert.NoError(emu.Tape.Provision(1))
	assert.NoError(emu.Load("+>+"))

	err := emu.Run()
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.Equal(STATE_FAULTED, emu.State())
	assert.Equal(err, emu.Fault())

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(2, rerr.Pc)
		assert.Equal(1, rerr.Pointer)
	}

	// Faulted is terminal until reloaded.
	_, err = emu.Step()
	assert.ErrorIs(err, ErrFaulted)
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.ErrorIs(emu.Run(), ErrFaulted)

	assert.NoError(emu.Load("+."))
	assert.Equal(STATE_READY, emu.State())
	assert.NoError(emu.Run())
	assert.Equal([]byte{1}, emu.Cpu.Output.Bytes())
}

func TestEmulator_CycleLimit(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(true)
	emu.CycleLimit = 5
	assert.NoError(emu.Load("+[+]"))

	err := emu.Run()
	assert.ErrorIs(err, ErrCycleLimitExceeded)
	assert.Equal(STATE_FAULTED, emu.State())
	assert.LessOrEqual(emu.Cycles, 5)

	var cerr *ErrCycles
	if assert.True(errors.As(err, &cerr)) {
		assert.Equal(5, cerr.Limit)
	}

	// The check happens before the step: four steps ran.
	value, err := emu.Tape.Read(0)
	assert.NoError(err)
	assert.Equal(2, value)
	assert.Equal(2, emu.Pc)
}

func TestEmulator_CycleLimit_Finishes(t *testing.T) {
	assert := assert.New(t)

	// Three instructions and the halt step need a limit of five.
	emu := newEmulator(true)
	emu.CycleLimit = 5
	assert.NoError(emu.Load("++."))
	assert.NoError(emu.Run())
	assert.Equal(4, emu.Cycles)

	emu.CycleLimit = 4
	assert.NoError(emu.Load("++."))
	assert.ErrorIs(emu.Run(), ErrCycleLimitExceeded)
	assert.Equal("\x02", emu.Output())
}

func TestEmulator_Step(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(true)
	emu.CycleLimit = 1
	assert.NoError(emu.Load("+."))

	// Direct steps are not counted, nor limited.
	done, err := emu.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(STATE_RUNNING, emu.State())

	done, err = emu.Step()
	assert.NoError(err)
	assert.False(done)

	done, err = emu.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(STATE_HALTED, emu.State())
	assert.Equal(0, emu.Cycles)

	done, err = emu.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal("\x01", emu.Output())
}

func TestEmulator_Reload(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(true)
	emu.Input = &io.Source{Stream: io.Stream{Data: []int{7}}}

	assert.NoError(emu.Load(",>+."))
	assert.NoError(emu.Run())
	assert.Equal(1, emu.Pointer)

	// Registers, tape, output and input cursor all restart.
	assert.NoError(emu.Load(",."))
	assert.Equal(0, emu.Pointer)
	assert.Equal(0, emu.Pc)
	assert.Equal("", emu.Output())
	assert.NoError(emu.Run())
	assert.Equal([]byte{7}, emu.Cpu.Output.Bytes())

	// A failed reload keeps the previous program.
	prog := emu.Program
	assert.Error(emu.Load("]"))
	assert.Equal(prog, emu.Program)
	assert.Equal(STATE_HALTED, emu.State())
}

func TestEmulator_Wrap(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(true)
	output := doRun(t, emu, "-.+.")
	assert.Equal([]byte{255, 0}, output)
}
