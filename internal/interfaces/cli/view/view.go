// Package view renders storefront state as plain-text fragments and turns
// typed commands into events on the bus.
package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDisabled        = errors.New("action is not available")
	ErrIndexOutOfRange = errors.New("no item with that number")
	ErrUsage           = errors.New("wrong command usage")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrInvalidForm     = errors.New("form is not filled in correctly")
)

// Fragment is anything that can be shown on screen.
type Fragment interface {
	String() string
}

// Commander is a fragment that reacts to typed commands. HandleCommand
// reports false when the command is not one of its own.
type Commander interface {
	HandleCommand(name, arg string) (bool, error)
	Help() []string
}

// ParseIndex reads a 1-based position out of arg and checks it against n.
func ParseIndex(arg string, n int) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, fmt.Errorf("%w: a number is required", ErrUsage)
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUsage, arg)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return i - 1, nil
}

func helpLine(cmd, desc string) string {
	return padRight(cmd, 16) + desc
}
