package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rshade/ecoadvisor/internal/logging"
	"github.com/rshade/ecoadvisor/internal/tui"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInputClosed is returned by prompts when the input stream ends.
const ErrInputClosed = constError("input closed")

// Prompter reads validated answers line by line. Invalid lines are discarded
// and the question is asked again until a valid answer or end of input.
type Prompter struct {
	in       *bufio.Reader
	out      *bufio.Writer
	renderer tui.Renderer
}

// NewPrompter wraps in and out. Output is buffered and flushed before every read.
func NewPrompter(in io.Reader, out io.Writer, renderer tui.Renderer) *Prompter {
	return &Prompter{
		in:       bufio.NewReader(in),
		out:      bufio.NewWriter(out),
		renderer: renderer,
	}
}

// Print writes s to the buffered output.
func (p *Prompter) Print(s string) {
	_, _ = p.out.WriteString(s)
}

// Buffered returns the number of input bytes read ahead but not yet consumed.
func (p *Prompter) Buffered() int {
	return p.in.Buffered()
}

// Flush flushes buffered output.
func (p *Prompter) Flush() error {
	return p.out.Flush()
}

// readLine flushes pending output and reads one line without its terminator.
// A final unterminated line is returned as-is; EOF with nothing read yields
// ErrInputClosed.
func (p *Prompter) readLine() (string, error) {
	if err := p.Flush(); err != nil {
		return "", fmt.Errorf("flushing output: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("reading input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadLine prints prompt and returns the raw answer, which may be empty.
func (p *Prompter) ReadLine(_ context.Context, prompt string) (string, error) {
	p.Print(prompt)
	return p.readLine()
}

// SelectMenu shows the menu until the user picks 1, 2 or 3.
func (p *Prompter) SelectMenu(ctx context.Context) (int, error) {
	for {
		p.Print(p.renderer.Menu())
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= 1 && n <= 3 {
			return n, nil
		}

		logging.FromContext(ctx).Debug().Str("input", line).Msg("invalid menu selection")
		p.Print(p.renderer.Error(tui.InvalidMenuText))
	}
}

// ReadNonNegativeInt asks prompt until a whole number >= 0 is entered.
func (p *Prompter) ReadNonNegativeInt(ctx context.Context, prompt string) (int, error) {
	for {
		p.Print(prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= 0 {
			return n, nil
		}

		logging.FromContext(ctx).Debug().Str("input", line).Msg("invalid non-negative number")
		p.Print(p.renderer.Error(tui.InvalidNumberText))
	}
}

// ReadYesNo asks prompt until 1 (yes) or 0 (no) is entered.
func (p *Prompter) ReadYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		p.Print(prompt)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && (n == 0 || n == 1) {
			return n == 1, nil
		}

		logging.FromContext(ctx).Debug().Str("input", line).Msg("invalid yes/no answer")
		p.Print(p.renderer.Error(tui.InvalidYesNoText))
	}
}

// WaitForEnter prints msg and consumes one line.
func (p *Prompter) WaitForEnter(msg string) error {
	p.Print(msg + "\n")
	_, err := p.readLine()
	return err
}
