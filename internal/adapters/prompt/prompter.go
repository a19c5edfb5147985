// Package prompt implements the interactive prompter on a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter implements ports.Prompter on an input/output stream pair.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter on stdin/stdout.
func New() *Prompter {
	return NewWithStreams(os.Stdin, os.Stdout)
}

// NewWithStreams creates a Prompter on the given streams. Used for testing.
func NewWithStreams(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm asks a yes/no question. Anything other than "y" or "yes" counts
// as no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.ask(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// Input asks for a free-form value.
func (p *Prompter) Input(question string) (string, error) {
	return p.ask(question + ": ")
}

// Select prints the numbered choices and returns the chosen one.
func (p *Prompter) Select(question string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", zerr.New("no choices to select from")
	}

	_, _ = fmt.Fprintln(p.out, question)
	for i, choice := range choices {
		_, _ = fmt.Fprintf(p.out, "  %d) %s\n", i+1, choice)
	}

	answer, err := p.ask(fmt.Sprintf("Choice [1-%d]: ", len(choices)))
	if err != nil {
		return "", err
	}

	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > len(choices) {
		return "", zerr.With(zerr.New("invalid selection"), "answer", answer)
	}
	return choices[idx-1], nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", zerr.Wrap(err, "failed to read answer")
	}
	return strings.TrimSpace(line), nil
}
