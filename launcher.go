package logrotee

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/kei2100/logrotee/logger"
)

// Launcher hands a closed chunk to compression.
// Launch must return without waiting for the compression to finish.
type Launcher interface {
	Launch(chunkPath string) error
}

// LauncherOptionFunc let you change CommandLauncher behavior.
type LauncherOptionFunc func(l *CommandLauncher)

// WithPlaceholder changes the token replaced with the chunk path. The default is "{}".
func WithPlaceholder(v string) LauncherOptionFunc {
	return func(l *CommandLauncher) {
		l.placeholder = v
	}
}

// WithStderr sets where the standard error of compression commands goes. The default is os.Stderr.
func WithStderr(w io.Writer) LauncherOptionFunc {
	return func(l *CommandLauncher) {
		l.stderr = w
	}
}

// WithExitHook sets a function called from the reaping goroutine once a command exits
func WithExitHook(fn func(chunkPath string, err error)) LauncherOptionFunc {
	return func(l *CommandLauncher) {
		l.onExit = fn
	}
}

// CommandLauncher runs a shell command per chunk as a separate process.
// Processes are never queued, cancelled or retried; several may run at once.
type CommandLauncher struct {
	template    string
	placeholder string
	stderr      io.Writer
	onExit      func(chunkPath string, err error)

	wg      sync.WaitGroup
	running atomic.Int32
	lastPID atomic.Int64
}

// NewCommandLauncher creates a *CommandLauncher for the command template
func NewCommandLauncher(template string, opts ...LauncherOptionFunc) *CommandLauncher {
	l := &CommandLauncher{
		template:    template,
		placeholder: DefaultPlaceholder,
		stderr:      os.Stderr,
	}
	for _, fn := range opts {
		fn(l)
	}
	return l
}

// Command returns the command line for chunkPath.
// The first placeholder is replaced with the path as is; a template without one is returned unchanged.
func (l *CommandLauncher) Command(chunkPath string) string {
	return strings.Replace(l.template, l.placeholder, chunkPath, 1)
}

// Launch starts the command for chunkPath and returns once the process exists.
// The process is reaped in the background; its exit status is only logged.
func (l *CommandLauncher) Launch(chunkPath string) error {
	if n := l.running.Load(); n > 0 {
		logger.L().Warn().
			Int64("pid", l.lastPID.Load()).
			Int32("running", n).
			Msg("launch: a previous compression process has not exited yet")
	}

	command := l.Command(chunkPath)
	cmd := shellCommand(command)
	// stdout is the passthrough stream, keep the child off it
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = l.stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch: failed to start %q: %w", command, err)
	}
	pid := cmd.Process.Pid
	l.lastPID.Store(int64(pid))
	l.running.Add(1)
	l.wg.Add(1)

	go func() {
		defer l.wg.Done()
		err := cmd.Wait()
		l.running.Add(-1)
		if err != nil {
			logger.L().Warn().Err(err).Int("pid", pid).Str("command", command).Msg("launch: compression command failed")
		} else {
			logger.L().Debug().Int("pid", pid).Str("command", command).Msg("launch: compression command finished")
		}
		if l.onExit != nil {
			l.onExit(chunkPath, err)
		}
	}()
	return nil
}

// Running returns the number of started commands that have not been reaped yet
func (l *CommandLauncher) Running() int {
	return int(l.running.Load())
}

// Wait blocks until every started command has exited.
// The engine never calls it; it is meant for tests and for programs embedding the engine.
func (l *CommandLauncher) Wait() {
	l.wg.Wait()
}
