package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/numwords/internal/config"
	"github.com/vk/numwords/internal/ctxlog"
	"github.com/vk/numwords/internal/words"
)

// Session is a single interactive prompt/convert/print loop over a reader
// and a writer.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	prompts config.Prompts
	bits    int
	opts    words.Options

	conversions int
}

// NewSession creates a session that reads answers from in and writes prompts
// and results to out, using the texts and style from model.
func NewSession(in io.Reader, out io.Writer, model *config.Model) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		prompts: model.Prompts,
		bits:    model.Style.Bits,
		opts: words.Options{
			UseAnd:    model.Style.UseAnd,
			Hyphenate: model.Style.Hyphenate,
		},
	}
}

// Conversions returns how many numbers the session has spelled out so far.
func (s *Session) Conversions() int {
	return s.conversions
}

// Run drives the loop until the user declines to continue or input ends,
// both of which return nil. A cancelled context stops the loop before the
// next prompt and its error is returned.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Interactive session started.", "bits", s.bits)

	for {
		n, ok, err := s.readNumber(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return s.finish(ctx, true)
		}

		text := words.Convert(n, s.opts)
		s.conversions++
		logger.Debug("Number converted.", "number", n, "words", words.Count(text))
		fmt.Fprintf(s.out, "\n%s %s", s.prompts.Result, text)

		again, ok, err := s.askContinue(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return s.finish(ctx, true)
		}
		if !again {
			return s.finish(ctx, false)
		}
	}
}

// readNumber prompts until the user enters a valid number. ok is false when
// input ended first.
func (s *Session) readNumber(ctx context.Context) (n uint64, ok bool, err error) {
	logger := ctxlog.FromContext(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}

		fmt.Fprint(s.out, s.prompts.Number)
		line, ok, err := s.readLine()
		if err != nil || !ok {
			return 0, false, err
		}

		n, err := words.Parse(line, s.bits)
		if err != nil {
			logger.Debug("Rejected number input.", "input", line, "error", err)
			fmt.Fprintf(s.out, "invalid number: %v\n", err)
			continue
		}
		return n, true, nil
	}
}

// askContinue reads answers until one is "y" or "n". ok is false when input
// ended first.
func (s *Session) askContinue(ctx context.Context) (again bool, ok bool, err error) {
	fmt.Fprintf(s.out, "\n%s", s.prompts.Continue)
	for {
		if err := ctx.Err(); err != nil {
			return false, false, err
		}

		line, ok, err := s.readLine()
		if err != nil || !ok {
			return false, false, err
		}

		switch line {
		case "y":
			return true, true, nil
		case "n":
			return false, true, nil
		}
		fmt.Fprint(s.out, s.prompts.Retry)
	}
}

// readLine returns the next line without surrounding whitespace. A final line
// without a trailing newline is still returned; ok is false only once input
// is exhausted.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	return strings.TrimSpace(line), true, nil
}

func (s *Session) finish(ctx context.Context, eof bool) error {
	if eof {
		// The prompt is still open on the current line.
		fmt.Fprintln(s.out)
	}
	fmt.Fprintln(s.out, s.prompts.Goodbye)
	ctxlog.FromContext(ctx).Info("Interactive session finished.", "conversions", s.conversions, "end_of_input", eof)
	return nil
}
