package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"spesa/internal/core"
)

type lineResult struct {
	line string
	err  error
}

// Prompter reads answers line by line, re-asking until numbers parse.
// Reads happen on a background goroutine so a cancelled context unblocks
// a prompt that is waiting for input.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
	err   error // sticky read error, io.EOF once input ends
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan lineResult),
	}
}

func (p *Prompter) readLines() {
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Text prints prompt and returns the trimmed answer. It returns io.EOF once
// input is exhausted and nothing was typed, or ctx.Err() when ctx is done
// first.
func (p *Prompter) Text(ctx context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintln(p.out, prompt)
	p.once.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.lines:
		if r.err != nil {
			p.err = r.err
			if errors.Is(r.err, io.EOF) && r.line != "" {
				return strings.TrimSpace(r.line), nil
			}
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	}
}

// Amount asks until a non-negative decimal is entered.
func (p *Prompter) Amount(ctx context.Context, prompt string) (float64, error) {
	for {
		s, err := p.Text(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := core.ParseAmount(s)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid number. Use decimals like 5.0.")
	}
}

// Quantity asks until a non-negative integer is entered.
func (p *Prompter) Quantity(ctx context.Context, prompt string) (uint32, error) {
	for {
		s, err := p.Text(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := core.ParseQuantity(s)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid integer. Try again.")
	}
}
