package storage

import "errors"

// Common errors returned by the storage package.
var (
	// ErrNoPage is returned when bookmarking with no page loaded.
	ErrNoPage = errors.New("no page loaded")

	// ErrAccessDenied is returned when the bookmark credential does not match.
	ErrAccessDenied = errors.New("incorrect password, access denied")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = errors.New("invalid log level: must be debug, info, warn, or error")

	// ErrInvalidLogFormat is returned when the configured log format is unknown.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrInvalidRecentURLs is returned when the suggestion cache size is <= 0.
	ErrInvalidRecentURLs = errors.New("invalid recent_urls: must be > 0")

	// ErrEmptyTimestampLayout is returned when no timestamp layout is configured.
	ErrEmptyTimestampLayout = errors.New("timestamp_layout must not be empty")

	// ErrInvalidYAML is returned when the config file is not valid YAML.
	ErrInvalidYAML = errors.New("invalid YAML syntax in config file")
)
