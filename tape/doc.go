// Package tape implements the cell memory of the virtual machine.
//
// A Tape is an array of integer cells in [0, Max]. In fixed mode only cells
// that were provisioned may be accessed; in auto-scaling mode cells
// materialize, zeroed, on first access.
//
// Writes outside of the range wrap with a two-branch clamp: values above Max
// store 0, values below 0 store Max. This is not modular arithmetic; the
// engine only ever moves a cell by one, where both agree.
package tape
