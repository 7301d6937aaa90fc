package logrotee

import "errors"

// Configuration errors
var (
	// ErrEmptyLogFilePath is returned when no live log path is configured
	ErrEmptyLogFilePath = errors.New("logrotee: log file path is required")

	// ErrInvalidChunkSize is returned when the chunk size is not positive
	ErrInvalidChunkSize = errors.New("logrotee: invalid chunk size")
)

// ErrNotStarted is returned by WriteLine before Start or after Finish
var ErrNotStarted = errors.New("logrotee: engine is not started")
