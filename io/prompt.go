package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	DEFAULT_PROMPT = "BFINPUT< "
)

// Prompt asks for input values interactively, one decimal number per line.
type Prompt struct {
	Input       io.Reader
	Output      io.Writer // Receives the prompt, if set.
	Text        string    // Prompt text, DEFAULT_PROMPT if empty.
	MaxAttempts int       // Malformed lines tolerated per value, 0 for no limit.

	scanner *bufio.Scanner
}

// NextByte prompts until a well-formed number is read.
func (pr *Prompt) NextByte() (value int, err error) {
	if pr.Input == nil {
		err = ErrInputUnavailable
		return
	}

	if pr.scanner == nil {
		pr.scanner = bufio.NewScanner(pr.Input)
	}

	text := pr.Text
	if len(text) == 0 {
		text = DEFAULT_PROMPT
	}

	for attempts := 1; ; attempts++ {
		if pr.Output != nil {
			fmt.Fprint(pr.Output, text)
		}

		if !pr.scanner.Scan() {
			err = pr.scanner.Err()
			if err == nil {
				err = io.EOF
			}
			err = fmt.Errorf("%w: %w", ErrInputUnavailable, err)
			return
		}

		if pr.Output != nil {
			fmt.Fprintln(pr.Output)
		}

		line := strings.TrimSpace(pr.scanner.Text())
		value, err = strconv.Atoi(line)
		if err == nil {
			return
		}

		if pr.MaxAttempts > 0 && attempts >= pr.MaxAttempts {
			err = &ErrMalformed{Text: line, Attempts: attempts}
			return
		}
	}
}
