// Package cpu implements the fetch-decode-execute step of the virtual machine.
//
// The CPU consists of a cell pointer and a program counter (PC) operating on a
// Tape, a loaded Program, an Input and an Output. Each Step executes exactly
// one instruction; loops jump through the program's bracket table.
package cpu
