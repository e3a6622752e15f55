package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrQuit is returned by every prompt when the player types quit.
var ErrQuit = errors.New("player quit")

// Prompt reads normalised lines from the player. Input is read on a
// background goroutine so a blocked read never outlives ctx.
type Prompt struct {
	out   io.Writer
	lines chan string
	stop  chan struct{}
	once  sync.Once
}

// NewPrompt starts reading lines from in.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	p := &Prompt{
		out:   out,
		lines: make(chan string),
		stop:  make(chan struct{}),
	}
	go p.read(in)
	return p
}

func (p *Prompt) read(in io.Reader) {
	defer close(p.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case p.lines <- scanner.Text():
		case <-p.stop:
			return
		}
	}
}

// Close stops the reader goroutine once its current read returns.
func (p *Prompt) Close() {
	p.once.Do(func() { close(p.stop) })
}

// Line shows label and returns the trimmed, lower-cased reply. It returns
// io.EOF when input is exhausted and ErrQuit when the player typed quit.
func (p *Prompt) Line(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == CmdQuit {
			return "", ErrQuit
		}
		return line, nil
	}
}

// Pause waits for the player to press Enter.
func (p *Prompt) Pause(ctx context.Context, label string) error {
	_, err := p.Line(ctx, label)
	return err
}

// Choose re-prompts until the reply is one of options.
func (p *Prompt) Choose(ctx context.Context, label string, options []string) (string, error) {
	for {
		line, err := p.Line(ctx, label)
		if err != nil {
			return "", err
		}
		for _, opt := range options {
			if line == opt {
				return line, nil
			}
		}
		fmt.Fprintf(p.out, MsgInvalidInput+"\n", strings.Join(options, ", "))
	}
}

// ChooseIndex asks for a number from 1 to n and returns it zero-based.
func (p *Prompt) ChooseIndex(ctx context.Context, label string, n int) (int, error) {
	choice, err := p.Choose(ctx, label, numbers(n))
	if err != nil {
		return 0, err
	}
	i, _ := strconv.Atoi(choice)
	return i - 1, nil
}

// command is one verb offered at a compound prompt, with the arguments it accepts.
type command struct {
	Name string
	Args []string
}

// Command re-prompts until the first word names one of commands and returns
// the verb and any following words.
func (p *Prompt) Command(ctx context.Context, commands []command) (string, []string, error) {
	label := fmt.Sprintf("\nWhat would you like to do? (%s)", formatCommandHelp(commands))
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}

	for {
		line, err := p.Line(ctx, label)
		if err != nil {
			return "", nil, err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		for _, name := range names {
			if parts[0] == name {
				return name, parts[1:], nil
			}
		}
		fmt.Fprintf(p.out, MsgInvalidCommand+"\n", strings.Join(names, ", "))
	}
}

// formatCommandHelp renders "move [north/east], inventory, status".
func formatCommandHelp(commands []command) string {
	parts := make([]string, len(commands))
	for i, c := range commands {
		if len(c.Args) > 0 {
			parts[i] = fmt.Sprintf("%s [%s]", c.Name, strings.Join(c.Args, "/"))
		} else {
			parts[i] = c.Name
		}
	}
	return strings.Join(parts, ", ")
}

// numbers returns "1".."n".
func numbers(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

// argIndex parses args[pos] as a 1-based index in [1, n] and returns it zero-based.
func argIndex(args []string, pos, n int) (int, bool) {
	if pos >= len(args) {
		return 0, false
	}
	i, err := strconv.Atoi(args[pos])
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
