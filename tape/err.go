package tape

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrInvalidCellCount = errors.New(f("invalid cell count"))
	ErrOutOfBounds      = errors.New(f("out of bounds"))
)

// ErrProvision reports a provisioning request for fewer than one cell.
type ErrProvision struct {
	Count int
}

func (err *ErrProvision) Error() string {
	return f("cannot provision %d cells: %v", err.Count, ErrInvalidCellCount)
}

func (err *ErrProvision) Unwrap() error {
	return ErrInvalidCellCount
}

// ErrAccess reports an access to a cell that does not exist.
type ErrAccess struct {
	Index int // Requested cell.
	Cells int // Provisioned cells at the time of access.
}

func (err *ErrAccess) Error() string {
	return f("cell %d %v, provisioned cells: %d", err.Index, ErrOutOfBounds, err.Cells)
}

func (err *ErrAccess) Unwrap() error {
	return ErrOutOfBounds
}
