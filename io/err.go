package io

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrInputUnavailable = errors.New(f("input channel unavailable"))
	ErrInputExhausted   = errors.New(f("input stream exhausted"))
	ErrInputMalformed   = errors.New(f("malformed numeric input"))
)

// ErrMalformed reports the last rejected interactive input.
type ErrMalformed struct {
	Text     string
	Attempts int
}

func (err *ErrMalformed) Error() string {
	return f("'%v' after %d attempts: %v", err.Text, err.Attempts, ErrInputMalformed)
}

func (err *ErrMalformed) Unwrap() error {
	return ErrInputMalformed
}
