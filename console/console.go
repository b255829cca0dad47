// Package console is the line-oriented prompt/response transport the order
// flow talks to.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when the input stream ends before an answer is read.
var ErrNoInput = errors.New("no input")

type readResult struct {
	text string
	err  error
}

// Prompter is not safe for concurrent use.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd is set when input is a terminal, so secrets can be read without echo.
	fd    int
	isTTY bool
	// pending holds a read whose caller was cancelled; the next read takes
	// its result instead of starting another one.
	pending chan readResult
}

func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.isTTY = true
	}
	return p
}

// Ask writes the prompt and returns the next input line without its line
// ending. It returns ctx.Err() as soon as ctx is done, even mid-read.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	return p.await(ctx, p.readLine)
}

// ReadSecret is Ask with echo disabled when input is a terminal.
func (p *Prompter) ReadSecret(ctx context.Context, prompt string) (string, error) {
	if !p.isTTY {
		return p.Ask(ctx, prompt)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	pwd, err := p.await(ctx, func() (string, error) {
		b, err := term.ReadPassword(p.fd)
		return string(b), err
	})
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return pwd, nil
}

// Say writes one line of output.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// await runs the blocking read in the background so ctx can interrupt it.
func (p *Prompter) await(ctx context.Context, read func() (string, error)) (string, error) {
	ch := p.pending
	if ch == nil {
		ch = make(chan readResult, 1)
		go func() {
			text, err := read()
			ch <- readResult{text: text, err: err}
		}()
	}
	select {
	case r := <-ch:
		p.pending = nil
		return r.text, r.err
	case <-ctx.Done():
		p.pending = ch
		return "", ctx.Err()
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
