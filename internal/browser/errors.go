package browser

import (
	"errors"
	"fmt"
)

// ErrStackExhausted is matched by both navigation failures.
var ErrStackExhausted = errors.New("navigation stack is empty")

var (
	// ErrNoBack is returned by Back when there is nothing to go back to.
	ErrNoBack = fmt.Errorf("no pages to go back to: %w", ErrStackExhausted)

	// ErrNoForward is returned by Forward when there is nothing to go forward to.
	ErrNoForward = fmt.Errorf("no pages to go forward to: %w", ErrStackExhausted)
)
