// Package cli runs the storefront as a line-oriented terminal program.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"weblarek/internal/interfaces/cli/view"
	"weblarek/pkg/logger"
)

const prompt = "> "

// Terminal reads commands, hands each to the view that owns the screen and
// prints the screen again.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	page   *view.Page
	modal  *view.Modal
	prompt bool
	log    logger.Logger
}

type Option func(*Terminal)

// WithPrompt shows a prompt before each command; useful when a person is typing.
func WithPrompt(enabled bool) Option {
	return func(t *Terminal) {
		t.prompt = enabled
	}
}

func WithLogger(log logger.Logger) Option {
	return func(t *Terminal) {
		t.log = log
	}
}

func NewTerminal(in io.Reader, out io.Writer, page *view.Page, modal *view.Modal, opts ...Option) *Terminal {
	t := &Terminal{
		in:    in,
		out:   out,
		page:  page,
		modal: modal,
		log:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run processes input until EOF, "quit" or ctx cancellation.
func (t *Terminal) Run(ctx context.Context) error {
	t.render()

	scanner := bufio.NewScanner(t.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if t.prompt {
			fmt.Fprint(t.out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		name, arg := ParseCommand(scanner.Text())
		switch name {
		case "":
			t.render()
			continue
		case "quit", "exit":
			return nil
		case "help":
			t.help()
			continue
		}

		if err := t.Dispatch(name, arg); err != nil {
			fmt.Fprintf(t.out, "! %v\n", err)
			t.log.Debug("command failed", logger.String("command", name), logger.Error(err))
			continue
		}
		t.render()
	}
}

// Dispatch offers the command to the modal content, then the modal, then the page.
func (t *Terminal) Dispatch(name, arg string) error {
	for _, c := range t.owners() {
		handled, err := c.HandleCommand(name, arg)
		if handled {
			return err
		}
	}
	return fmt.Errorf("unknown command %q, type \"help\"", name)
}

func (t *Terminal) owners() []view.Commander {
	var owners []view.Commander
	if t.modal.IsOpen() {
		if c, ok := t.modal.Content().(view.Commander); ok {
			owners = append(owners, c)
		}
		owners = append(owners, t.modal)
	}
	return append(owners, t.page)
}

func (t *Terminal) render() {
	if t.modal.IsOpen() {
		fmt.Fprintln(t.out, t.modal.String())
		return
	}
	fmt.Fprint(t.out, t.page.String())
}

func (t *Terminal) help() {
	for _, c := range t.owners() {
		for _, line := range c.Help() {
			fmt.Fprintln(t.out, line)
		}
	}
	fmt.Fprintln(t.out, "help            show this list")
	fmt.Fprintln(t.out, "quit            leave the store")
}

// ParseCommand splits a line into a lower-case command word and the rest.
func ParseCommand(line string) (name, arg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	name, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}
