package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх stdin/stdout
type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	stdin  *os.File
	secret bool
}

// NewStdio creates IO bound to the process stdin and stdout.
func NewStdio() IO {
	return &Stdio{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		stdin:  os.Stdin,
		secret: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewStream creates IO over arbitrary streams; secret input is read as a
// plain line.
func NewStream(in io.Reader, out io.Writer) IO {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		// последняя строка без перевода строки тоже считается вводом
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if !s.secret || s.stdin == nil {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(s.stdin.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// ReadAll reads everything until EOF (Ctrl-D in a terminal).
func (s *Stdio) ReadAll(prompt string) (string, error) {
	s.Printf("%s", prompt)
	b, err := io.ReadAll(s.in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
