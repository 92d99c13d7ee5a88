package io

import (
	"iter"
	"slices"

	"github.com/ezrec/bfvm/internal"
)

// Stream is a pre-supplied sequence of input values.
type Stream struct {
	Data []int

	readIndex int
}

// NewStream concatenates the sequences into a stream.
func NewStream(seqs ...iter.Seq[int]) (st *Stream) {
	st = &Stream{
		Data: slices.Collect(internal.IterSeqConcat(seqs...)),
	}

	return
}

// Rewind the stream to its first value.
func (st *Stream) Rewind() {
	st.readIndex = 0
}

// Remaining returns the count of unconsumed values.
func (st *Stream) Remaining() int {
	return len(st.Data) - st.readIndex
}

// NextByte returns the next value, or ErrInputExhausted.
func (st *Stream) NextByte() (value int, err error) {
	if st.readIndex >= len(st.Data) {
		err = ErrInputExhausted
		return
	}

	value = st.Data[st.readIndex]
	st.readIndex++
	return
}
