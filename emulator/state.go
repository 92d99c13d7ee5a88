package emulator

// State of the emulator.
//
//go:generate go tool stringer -linecomment -type=State
type State int

const (
	STATE_READY   State = iota // ready
	STATE_RUNNING              // running
	STATE_HALTED               // halted
	STATE_FAULTED              // faulted
)
