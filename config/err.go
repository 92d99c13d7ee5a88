package config

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrConfigFormat = errors.New(f("unknown configuration format"))
	ErrConfigKey    = errors.New(f("unknown configuration key"))
	ErrConfigValue  = errors.New(f("invalid configuration value"))
)

type ErrFormat string

func (err ErrFormat) Error() string {
	return f("'%v': %v", string(err), ErrConfigFormat)
}

func (err ErrFormat) Unwrap() error {
	return ErrConfigFormat
}

type ErrKey string

func (err ErrKey) Error() string {
	return f("'%v': %v", string(err), ErrConfigKey)
}

func (err ErrKey) Unwrap() error {
	return ErrConfigKey
}

// ErrValue reports a key with an unusable value.
type ErrValue struct {
	Key   string
	Value any
}

func (err *ErrValue) Error() string {
	return f("%v = %v: %v", err.Key, err.Value, ErrConfigValue)
}

func (err *ErrValue) Unwrap() error {
	return ErrConfigValue
}
