package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const prompt = "Enter the Relative Path of the maze file: "

// promptPath asks for the maze file name. An interactive terminal gets a
// line editor; anything else is read as plain text up to the first newline.
func promptPath(stdin io.Reader, stdout io.Writer) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return promptTerminal(f, stdout)
	}

	if _, err := fmt.Fprint(stdout, prompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("mazesolve: read maze path: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// promptTerminal reads one edited line in raw mode and restores the
// terminal state afterwards.
func promptTerminal(f *os.File, stdout io.Writer) (string, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("mazesolve: terminal raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, stdout}, prompt)
	line, err := t.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("mazesolve: read maze path: %w", err)
	}

	return strings.TrimSpace(line), nil
}
