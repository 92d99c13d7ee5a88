package io

import (
	"errors"
)

// Source serves the pre-supplied Stream, then asks the Interactive input.
type Source struct {
	Stream      Stream
	Interactive Input // Fallback when the stream is exhausted, may be nil.
}

// Rewind the pre-supplied stream.
func (src *Source) Rewind() {
	src.Stream.Rewind()
}

// NextByte returns the next stream value, or one from the interactive input.
func (src *Source) NextByte() (value int, err error) {
	value, err = src.Stream.NextByte()
	if !errors.Is(err, ErrInputExhausted) {
		return
	}

	if src.Interactive == nil {
		err = ErrInputUnavailable
		return
	}

	return src.Interactive.NextByte()
}
