// Package prompt reads answers to interactive questions one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/report"
)

// ErrClosed is returned once the input has no more lines.
var ErrClosed = errors.New("input closed")

// Prompter asks questions on a Printer and reads answers from a reader.
type Prompter struct {
	in *bufio.Reader
	p  *report.Printer
}

func New(in io.Reader, p *report.Printer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), p: p}
}

// Ask prints question and returns the next input line without its line
// ending. A final line without a newline is still returned.
func (pr *Prompter) Ask(question string) (string, error) {
	pr.p.Prompt(question)
	line, err := pr.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			// keep the terminal tidy after ctrl-d
			pr.p.Print("")
			return "", ErrClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskValid repeats question until normalize accepts the answer. Each
// rejection prints rejected followed by a rule.
func (pr *Prompter) AskValid(question, rejected string, normalize func(string) (string, bool)) (string, error) {
	for {
		answer, err := pr.Ask(question)
		if err != nil {
			return "", err
		}
		if v, ok := normalize(answer); ok {
			return v, nil
		}
		logging.Debugf("Rejected answer %q to %q", answer, question)
		pr.p.Invalid("%s", rejected)
		pr.p.Rule()
	}
}

// YesNo normalises a yes/no answer, case-insensitively.
func YesNo(answer string) (string, bool) {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a, a == "yes" || a == "no"
}
