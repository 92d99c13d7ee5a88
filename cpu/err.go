package cpu

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program loaded"))
	ErrNoMatch   = errors.New(f("bracket has no match"))
)
