package logger

import (
	"io"
	"os"
)

// Config holds the configuration of the diagnostics logger
type Config struct {
	// Level is one of trace, debug, info, warn, error. Unknown values mean info.
	Level string
	// Output receives console formatted records when FileConfig is nil
	Output io.Writer
	// FileConfig sends JSON records to a rotated file instead of Output
	FileConfig *FileConfig
}

// FileConfig holds file rotation configuration
type FileConfig struct {
	Filename   string // File path
	MaxSize    int    // Maximum size in megabytes
	MaxAge     int    // Maximum age in days
	MaxBackups int    // Maximum number of backup files
	Compress   bool   // Whether to compress rotated files
}

// DefaultConfig returns console logging on stderr at info level.
// Stdout is never used because it carries the passthrough stream.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Output: os.Stderr,
	}
}

// DefaultFileConfig returns a default file configuration
func DefaultFileConfig(filename string) *FileConfig {
	return &FileConfig{
		Filename:   filename,
		MaxSize:    10, // 10MB
		MaxAge:     30, // 30 days
		MaxBackups: 5,
		Compress:   true,
	}
}
