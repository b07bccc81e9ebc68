package ui

import (
	"bufio"
	"io"
	"strings"
)

// Prompter asks questions on a console and reads one line per answer
type Prompter struct {
	in      *bufio.Reader
	console *Console
}

// NewPrompter creates a prompter reading answers from in
func NewPrompter(in io.Reader, console *Console) *Prompter {
	return &Prompter{in: bufio.NewReader(in), console: console}
}

// Ask prints question and returns the next line without its line ending.
// It returns io.EOF once the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	p.console.OutputLine("%s", question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
