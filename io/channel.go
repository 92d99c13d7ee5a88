// Package io provides the input sources and output accumulator of the
// virtual machine.
//
// Input is consumed one byte value per ',' instruction. A Source serves a
// pre-supplied Stream first, then falls back to an interactive collaborator
// such as a Prompt.
package io

// Input supplies byte values to the machine.
type Input interface {
	// NextByte blocks until a value is available.
	NextByte() (value int, err error)
}

// Rewinder is implemented by inputs that can restart from the beginning.
type Rewinder interface {
	// Rewind resets the read cursor to its initial state.
	Rewind()
}
