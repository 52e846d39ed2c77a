package tui

import (
	"bufio"
	"fmt"
	"io"
)

// maxLineSize bounds a single input line in plain mode.
const maxLineSize = 1024 * 1024

// Plain runs lines through an interpreter without the full-screen terminal.
// It serves piped input, CI, and `floppy exec`.
type Plain struct {
	interp Interpreter
	out    io.Writer
	prompt bool
	failed int
	quit   bool
}

// NewPlain creates a plain runner writing to out. When prompt is set the
// prompt is written before each line is read.
func NewPlain(interp Interpreter, out io.Writer, prompt bool) *Plain {
	return &Plain{interp: interp, out: out, prompt: prompt}
}

// Line executes one input line and prints its output.
// It reports false once the session has asked to quit.
func (p *Plain) Line(line string) bool {
	if p.quit {
		return false
	}
	res := p.interp.Execute(line)
	for _, l := range res.Lines {
		fmt.Fprintln(p.out, l)
	}
	if res.Err != nil {
		p.failed++
	}
	if res.Quit {
		p.quit = true
	}
	return !p.quit
}

// Run executes every line read from in until EOF or exit.
func (p *Plain) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for {
		if p.prompt {
			fmt.Fprint(p.out, p.interp.Prompt())
		}
		if !scanner.Scan() {
			break
		}
		if !p.Line(scanner.Text()) {
			return nil
		}
	}
	if p.prompt {
		fmt.Fprintln(p.out)
	}
	return scanner.Err()
}

// Failed returns how many lines reported an error.
func (p *Plain) Failed() int {
	return p.failed
}
