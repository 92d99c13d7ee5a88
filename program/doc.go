// Package program loads source text into an executable Program.
//
// Loading trims the text, appends the OP_HALT sentinel and resolves every
// '[' to its matching ']' in a single forward scan. Unbalanced brackets are
// rejected at load time, never at run time.
package program
