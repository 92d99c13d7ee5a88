package program

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Characters trimmed from both ends of the text by Load.
const trimSet = " \t\n\r\x00\x0b"

// Program is a loaded, immutable instruction sequence.
type Program struct {
	text     string
	brackets *Brackets
}

// Brackets is the bidirectional bracket table.
type Brackets struct {
	Close map[int]int // Offset of '[' to offset of its ']'.
	Open  map[int]int // Offset of ']' to offset of its '['.
}

// Instructions yields the instruction characters of text, skipping
// everything else.
func Instructions(text string) iter.Seq[byte] {
	return func(yield func(ch byte) bool) {
		for n := range len(text) {
			if !IsInstruction(text[n]) {
				continue
			}
			if !yield(text[n]) {
				return
			}
		}
	}
}

// Prefilter removes comments and whitespace from the text.
func Prefilter(text string) string {
	return string(slices.Collect(Instructions(text)))
}

// Load the program text.
func Load(text string) (prog *Program, err error) {
	text = strings.Trim(text, trimSet) + string(OP_HALT)

	brackets, err := ResolveBrackets(text)
	if err != nil {
		return
	}

	prog = &Program{
		text:     text,
		brackets: brackets,
	}

	return
}

// ResolveBrackets pairs every '[' with its ']'.
func ResolveBrackets(text string) (brackets *Brackets, err error) {
	var stack Stack

	table := &Brackets{
		Close: map[int]int{},
		Open:  map[int]int{},
	}

	for offset := range len(text) {
		switch text[offset] {
		case OP_LOOP:
			stack.Push(offset)
		case OP_END:
			open, ok := stack.Pop()
			if !ok {
				err = &ErrBracket{Offset: offset, Closing: true}
				return
			}
			table.Close[open] = offset
			table.Open[offset] = open
		}
	}

	if open, ok := stack.Peek(); ok {
		err = &ErrBracket{Offset: open}
		return
	}

	brackets = table
	return
}

// Pairs yields (open, close) offsets ordered by the opening offset.
func (br *Brackets) Pairs() iter.Seq2[int, int] {
	return func(yield func(open, end int) bool) {
		for _, open := range slices.Sorted(maps.Keys(br.Close)) {
			if !yield(open, br.Close[open]) {
				return
			}
		}
	}
}

// Len returns the program length, including the OP_HALT sentinel.
func (prog *Program) Len() int {
	return len(prog.text)
}

// At returns the instruction at pc. Offsets past the end read as OP_HALT.
func (prog *Program) At(pc int) byte {
	if pc < 0 || pc >= len(prog.text) {
		return OP_HALT
	}
	return prog.text[pc]
}

// Text returns the loaded text, including the OP_HALT sentinel.
func (prog *Program) Text() string {
	return prog.text
}

// Source returns the loaded text without the OP_HALT sentinel.
func (prog *Program) Source() string {
	return prog.text[:len(prog.text)-1]
}

// Match returns the offset of the bracket paired with the one at pc.
func (prog *Program) Match(pc int) (offset int, ok bool) {
	switch prog.At(pc) {
	case OP_LOOP:
		offset, ok = prog.brackets.Close[pc]
	case OP_END:
		offset, ok = prog.brackets.Open[pc]
	}
	return
}

// Brackets returns the bracket table.
func (prog *Program) Brackets() *Brackets {
	return prog.brackets
}

// NeedsInput reports if the program contains an OP_IN instruction.
func (prog *Program) NeedsInput() bool {
	return strings.IndexByte(prog.text, OP_IN) >= 0
}
