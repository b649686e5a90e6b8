package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// ask shows prompt and reads one line.
func (c *CLI) ask(prompt string) (string, error) {
	c.rl.SetPrompt(prompt)
	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askPassword reads without echo when stdin is a terminal.
func (c *CLI) askPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := c.ask(prompt)
		return line, err
	}
	fmt.Fprint(c.out, prompt)
	pw, err := readPassword(fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// askInt returns nil for an empty answer.
func (c *CLI) askInt(prompt string) (*int, error) {
	s, err := c.ask(prompt)
	if err != nil || s == "" {
		return nil, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &n, nil
}

// keyValues parses key=value arguments. Keys are lowercased.
func keyValues(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", a)
		}
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out, nil
}
