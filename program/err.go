package program

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrBracketMismatch = errors.New(f("bracket mismatch"))
)

// ErrBracket reports an unmatched bracket and where it is.
type ErrBracket struct {
	Offset  int  // Offset of the unmatched bracket.
	Closing bool // Set if the bracket is a ']'.
}

func (err *ErrBracket) Error() string {
	if err.Closing {
		return f("closing %v at offset %d", ErrBracketMismatch, err.Offset)
	}
	return f("opening %v at offset %d", ErrBracketMismatch, err.Offset)
}

func (err *ErrBracket) Unwrap() error {
	return ErrBracketMismatch
}
