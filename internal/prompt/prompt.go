package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var ErrMismatch = errors.New("entries do not match")

// Reader reads secret text, hiding the input when it comes from a terminal.
type Reader struct {
	in  *os.File
	out io.Writer
	buf *bufio.Reader
}

// New returns a Reader on stdin that writes prompts to stderr.
func New() *Reader {
	return NewReader(os.Stdin, os.Stderr)
}

func NewReader(in *os.File, out io.Writer) *Reader {
	return &Reader{in: in, out: out, buf: bufio.NewReader(in)}
}

// ReadHidden prompts for a line of text. Input is not echoed when in is a
// terminal; otherwise a plain line is read.
func (r *Reader) ReadHidden(prompt string) ([]byte, error) {
	fmt.Fprint(r.out, prompt)

	if term.IsTerminal(int(r.in.Fd())) {
		text, err := term.ReadPassword(int(r.in.Fd()))
		fmt.Fprintln(r.out) // New line after hidden input
		if err != nil {
			return nil, fmt.Errorf("read failed: %w", err)
		}
		return text, nil
	}

	line, err := r.buf.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

// ReadConfirmed asks twice and fails if the entries differ
func (r *Reader) ReadConfirmed(prompt, confirm string) ([]byte, error) {
	first, err := r.ReadHidden(prompt)
	if err != nil {
		return nil, err
	}
	second, err := r.ReadHidden(confirm)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(first, second) {
		return nil, ErrMismatch
	}
	return first, nil
}
