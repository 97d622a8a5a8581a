package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// endMarker terminates multi-line input when typed alone on a line.
const endMarker = "END"

// prompter reads answers line by line from the command's input.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line prints label and returns the next input line. ok is false at EOF.
func (p *prompter) line(label string) (text string, ok bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// body prints label and collects lines until one equals endMarker
// (ignoring case and surrounding spaces) or input ends.
func (p *prompter) body(label string) string {
	fmt.Fprintln(p.out, label)
	var lines []string
	for p.in.Scan() {
		line := p.in.Text()
		if strings.EqualFold(strings.TrimSpace(line), endMarker) {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
