package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Prompter asks the user questions on the terminal.
type Prompter interface {
	// Ask shows question and returns the answer, or def if the answer is
	// empty or input ended.
	Ask(ctx context.Context, question, def string) (string, error)

	// Confirm asks a yes/no question. The default is no.
	Confirm(ctx context.Context, question string) (bool, error)
}

var errPromptAborted = errors.New("prompt aborted")

// lineReader reads one answer line. io.EOF means input ended.
type lineReader func(ctx context.Context, prompt, suggestion string) (string, error)

// NewPrompter picks a prompter for in. Terminals get line editing via
// liner; everything else is read line by line.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && isTerminal(f.Fd()) && liner.TerminalSupported() {
		return &prompter{read: readTerminalLine}
	}

	return NewLinePrompter(in, out)
}

// NewLinePrompter returns a Prompter that writes questions to out and
// reads answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) Prompter {
	if in == nil {
		in = strings.NewReader("")
	}

	lines := make(chan lineResult)
	br := bufio.NewReader(in)

	// A read abandoned by cancellation stays pending and is collected by
	// the next call, so at most one goroutine reads from br.
	pending := false

	read := func(ctx context.Context, prompt, suggestion string) (string, error) {
		if suggestion != "" {
			prompt = fmt.Sprintf("%s[%s]: ", prompt, suggestion)
		}

		_, _ = fmt.Fprint(out, prompt)

		if !pending {
			pending = true

			go func() {
				line, err := br.ReadString('\n')
				if err != nil && line != "" && errors.Is(err, io.EOF) {
					err = nil
				}

				lines <- lineResult{line: strings.TrimRight(line, "\r\n"), err: err}
			}()
		}

		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(out)
			return "", ctx.Err()
		case res := <-lines:
			pending = false

			if res.err != nil {
				_, _ = fmt.Fprintln(out)
			}

			return res.line, res.err
		}
	}

	return &prompter{read: read}
}

type lineResult struct {
	line string
	err  error
}

type prompter struct {
	read lineReader
}

func (p *prompter) Ask(ctx context.Context, question, def string) (string, error) {
	answer, err := p.read(ctx, question, def)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return def, nil
		}

		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}

	return answer, nil
}

func (p *prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := p.read(ctx, question+" [y/N]: ", "")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, errPromptAborted) {
				return false, nil
			}

			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
	}
}

// readTerminalLine prompts with liner. Ctrl-C aborts the prompt.
// The suggestion is pre-filled and can be edited. Cancelling ctx closes the
// liner state, which restores the terminal, and returns ctx.Err().
func readTerminalLine(ctx context.Context, prompt, suggestion string) (string, error) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	line, err := awaitLine(ctx, func() (string, error) {
		if suggestion != "" {
			return state.PromptWithSuggestion(prompt, suggestion, -1)
		}

		return state.Prompt(prompt)
	}, func() { _ = state.Close() })

	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errPromptAborted
	}

	return line, err
}

// awaitLine runs read in a goroutine and waits for it or for ctx.
// release is called exactly once, before awaitLine returns. A read
// abandoned by cancellation finishes in the background and is discarded.
func awaitLine(ctx context.Context, read func() (string, error), release func()) (string, error) {
	done := make(chan lineResult, 1)

	go func() {
		line, err := read()
		done <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		release()
		return "", ctx.Err()
	case res := <-done:
		release()
		return res.line, res.err
	}
}
