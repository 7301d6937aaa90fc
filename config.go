package logrotee

import "fmt"

// Default values
const (
	DefaultChunkSize   = 20 * 1000 * 1000
	DefaultMaxFiles    = 10
	DefaultPlaceholder = "{}"
)

// Config is the validated configuration consumed by the Engine
type Config struct {
	// LogFilePath is the live file. Chunks are named LogFilePath + "." + index or date.
	LogFilePath string
	// CompressCommand is a shell command. The first "{}" is replaced with the chunk path.
	// Empty disables compression.
	CompressCommand string
	// CompressSuffix locates the compressed form of a chunk, e.g. ".gz"
	CompressSuffix string
	// NullStdout suppresses the passthrough copy of the input
	NullStdout bool
	// ChunkSize is the rotation threshold in bytes
	ChunkSize int64
	// Dates selects timestamp chunk names instead of the numeric ring
	Dates bool
	// MaxFiles is the ring size of numeric names. Values below 1 behave as 1.
	MaxFiles int
}

// DefaultConfig returns a Config for path with the default chunk size and ring size
func DefaultConfig(path string) Config {
	return Config{
		LogFilePath: path,
		ChunkSize:   DefaultChunkSize,
		MaxFiles:    DefaultMaxFiles,
	}
}

// Validate reports whether the configuration can be used by an Engine
func (c Config) Validate() error {
	if c.LogFilePath == "" {
		return ErrEmptyLogFilePath
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: got %d, want > 0", ErrInvalidChunkSize, c.ChunkSize)
	}
	return nil
}

// Compress reports whether chunks are handed to a compression command
func (c Config) Compress() bool {
	return c.CompressCommand != ""
}
