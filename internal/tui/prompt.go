package tui

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt with ctrl+c or esc.
var ErrAborted = errors.New("aborted by user")

// Prompter asks questions with huh forms. On a terminal it renders the
// interactive widgets; otherwise it falls back to huh's accessible mode,
// which reads plain lines from in.
type Prompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
	theme      *huh.Theme
}

func NewPrompter(in io.Reader, out io.Writer, accessible bool) *Prompter {
	if accessible {
		in = newLineReader(in)
	}
	return &Prompter{in: in, out: out, accessible: accessible, theme: huh.ThemeCharm()}
}

// Input asks for one line of text. value is shown as the default. A
// required answer is re-asked interactively and rejected in accessible mode.
func (p *Prompter) Input(title, value string, required bool) (string, error) {
	field := huh.NewInput().Title(title).Value(&value)
	if required {
		field.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		})
	}
	if err := p.run(field); err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if required && value == "" {
		return "", errors.New(strings.TrimSuffix(title, ":") + " is required")
	}
	return value, nil
}

// Select asks the user to pick one of options, preselecting def.
func (p *Prompter) Select(title string, options []string, def string) (string, error) {
	choice := def
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&choice)
	if err := p.run(field); err != nil {
		return "", err
	}
	return choice, nil
}

func (p *Prompter) Confirm(title string, def bool) (bool, error) {
	ok := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := p.run(field); err != nil {
		return false, err
	}
	return ok, nil
}

type accessibleField interface {
	huh.Field
	RunAccessible(w io.Writer, r io.Reader) error
}

func (p *Prompter) run(field accessibleField) error {
	var err error
	if p.accessible {
		err = field.RunAccessible(p.out, p.in)
	} else {
		err = huh.NewForm(huh.NewGroup(field)).
			WithTheme(p.theme).
			WithShowHelp(false).
			WithInput(p.in).
			WithOutput(p.out).
			Run()
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// lineReader hands out at most one line per Read. huh's accessible mode
// wraps the reader in a fresh bufio.Scanner for every prompt, and a
// scanner that buffered ahead would swallow the answers to later prompts.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.r.ReadBytes('\n')
		if len(line) == 0 {
			return 0, err
		}
		l.pending = line
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}
