package io

import (
	"io"
)

// Output accumulates emitted byte values, forwarding each to Writer if set.
type Output struct {
	Writer io.Writer

	data []byte
}

// WriteByte appends a byte value.
func (out *Output) WriteByte(value byte) (err error) {
	out.data = append(out.data, value)

	if out.Writer != nil {
		_, err = out.Writer.Write([]byte{value})
	}

	return
}

// Bytes returns the accumulated output.
func (out *Output) Bytes() []byte {
	return out.data
}

// String renders the accumulated output as text.
func (out *Output) String() string {
	return string(out.data)
}

// Reset discards the accumulated output.
func (out *Output) Reset() {
	out.data = out.data[:0]
}

// Len returns the count of accumulated bytes.
func (out *Output) Len() int {
	return len(out.data)
}
