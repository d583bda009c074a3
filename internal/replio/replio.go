// Package replio reads lines of input to compile, either interactively via
// GNU-readline-style editing or directly from a plain stream.
//
// Adapted from the teacher's internal/input package (DirectCommandReader /
// InteractiveCommandReader), generalized from reading player commands to
// reading source lines to feed a Compiler, and renamed throughout for that
// domain.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectReader reads lines from any io.Reader without escape-sequence
// handling.
type DirectReader struct {
	r *bufio.Reader
}

// InteractiveReader reads lines from stdin via readline, with history and
// line editing.
type InteractiveReader struct {
	rl     *readline.Instance
	prompt string
}

// NewDirectReader wraps r for direct (non-interactive) line reading.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// NewInteractiveReader starts a readline session with the given prompt and
// history file (historyFile may be empty to disable persistent history).
func NewInteractiveReader(prompt, historyFile string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl, prompt: prompt}, nil
}

// Close releases reader resources.
func (d *DirectReader) Close() error { return nil }

// Close releases readline resources.
func (r *InteractiveReader) Close() error { return r.rl.Close() }

// ReadLine reads the next non-blank line. io.EOF is returned once input is
// exhausted.
func (d *DirectReader) ReadLine() (string, error) {
	var line string
	var err error
	for line == "" {
		line, err = d.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}
	return line, nil
}

// ReadLine reads the next non-blank line via readline. io.EOF is returned on
// ctrl-D.
func (r *InteractiveReader) ReadLine() (string, error) {
	var line string
	var err error
	for line == "" {
		line, err = r.rl.Readline()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
	}
	return line, nil
}

// SetPrompt updates the interactive prompt.
func (r *InteractiveReader) SetPrompt(p string) {
	r.prompt = p
	r.rl.SetPrompt(p)
}
