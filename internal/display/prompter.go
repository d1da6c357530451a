package display

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	actionPrompt = "Enter 'r' to roll the die, or 'h' to hold. What would you like to do? "
	namePrompt   = "What is Player %d's name? "
)

type line struct {
	text string
	err  error
}

// LinePrompter reads decisions one line at a time, typically from stdin. It
// satisfies game.DecisionSource.
type LinePrompter struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line
}

// NewLinePrompter creates a prompter that writes prompts to out and reads answers from in
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

// PromptForAction asks playerName to roll or hold.
func (p *LinePrompter) PromptForAction(ctx context.Context, playerName string) (string, error) {
	return p.ask(ctx, actionPrompt)
}

// PromptForName asks for the name of the player in seat.
func (p *LinePrompter) PromptForName(ctx context.Context, seat int) (string, error) {
	return p.ask(ctx, fmt.Sprintf(namePrompt, seat))
}

func (p *LinePrompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)

	// A single reader goroutine owns the input so an abandoned prompt never
	// loses the next line.
	p.once.Do(func() { go p.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (p *LinePrompter) read() {
	defer close(p.lines)
	reader := bufio.NewReader(p.in)
	for {
		text, err := reader.ReadString('\n')
		text = strings.TrimRight(text, "\r\n")
		if err != nil {
			if text != "" {
				p.lines <- line{text: text}
			}
			p.lines <- line{err: err}
			return
		}
		p.lines <- line{text: text}
	}
}
