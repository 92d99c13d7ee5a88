package program

// Instruction alphabet.
const (
	OP_RIGHT = byte('>')  // Move the pointer right.
	OP_LEFT  = byte('<')  // Move the pointer left.
	OP_INC   = byte('+')  // Increment the current cell.
	OP_DEC   = byte('-')  // Decrement the current cell.
	OP_OUT   = byte('.')  // Output the current cell.
	OP_IN    = byte(',')  // Input into the current cell.
	OP_LOOP  = byte('[')  // Jump past the matching ']' if the cell is zero.
	OP_END   = byte(']')  // Jump back after the matching '[' if the cell is not zero.
	OP_HALT  = byte(0x00) // End of program sentinel.
)

// IsInstruction reports if the character is in the instruction alphabet.
// The OP_HALT sentinel is not.
func IsInstruction(ch byte) bool {
	switch ch {
	case OP_RIGHT, OP_LEFT, OP_INC, OP_DEC, OP_OUT, OP_IN, OP_LOOP, OP_END:
		return true
	}
	return false
}
