package session

import (
	"errors"

	"github.com/vidyasagar/bhist/internal/browser"
	"github.com/vidyasagar/bhist/internal/storage"
)

// Errors reported by Session. None of them are fatal.
var (
	ErrNoPage         = storage.ErrNoPage
	ErrAccessDenied   = storage.ErrAccessDenied
	ErrNoBack         = browser.ErrNoBack
	ErrNoForward      = browser.ErrNoForward
	ErrStackExhausted = browser.ErrStackExhausted

	// ErrIO wraps any failure opening, reading or writing an export/import file.
	ErrIO = errors.New("history file I/O failed")
)
