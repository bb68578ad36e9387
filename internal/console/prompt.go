// Package console runs the interactive menu session on a line-oriented
// terminal: integer selections in, plain or styled text out.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads menu selections.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
	st  Styles
}

// NewPrompter reads lines from in and writes prompts and complaints to out.
func NewPrompter(in io.Reader, out io.Writer, st Styles) *Prompter {
	return &Prompter{sc: bufio.NewScanner(in), out: out, st: st}
}

// Select reads an integer in [lo, hi], asking again until one arrives.
// It returns io.EOF when input ends.
func (p *Prompter) Select(lo, hi int) (int, error) {
	for {
		fmt.Fprint(p.out, "> ")
		if !p.sc.Scan() {
			if err := p.sc.Err(); err != nil {
				return 0, fmt.Errorf("read selection: %w", err)
			}
			fmt.Fprintln(p.out)
			return 0, io.EOF
		}

		n, err := strconv.Atoi(strings.TrimSpace(p.sc.Text()))
		if err != nil {
			fmt.Fprintln(p.out, p.st.Error.Render("Please enter a number."))
			continue
		}
		if n < lo || n > hi {
			fmt.Fprintln(p.out, p.st.Error.Render(fmt.Sprintf("Choose an option between %d and %d.", lo, hi)))
			continue
		}
		return n, nil
	}
}
