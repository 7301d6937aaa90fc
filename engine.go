package logrotee

import (
	"fmt"
	"io"
	"os"

	"github.com/kei2100/logrotee/internal/file"
	"github.com/kei2100/logrotee/internal/line"
	"github.com/kei2100/logrotee/internal/state"
	"github.com/kei2100/logrotee/logger"
)

// NewEngine creates a *logrotee.Engine. The live file is not opened until Start.
func NewEngine(conf Config, opts ...OptionFunc) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	var opt option
	opt.apply(opts...)
	if opt.policy == nil {
		opt.policy = LineBoundaryPolicy(conf.ChunkSize)
	}
	m, err := newMetrics(opt.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("logrotee: failed to create metrics: %w", err)
	}

	e := &Engine{
		conf:    conf,
		opt:     opt,
		state:   state.NewState(conf.MaxFiles),
		metrics: m,
	}
	if !conf.NullStdout {
		e.stdout = opt.stdout
	}
	if conf.Dates {
		e.namer = newDateNamer(conf.LogFilePath, conf.CompressSuffix, opt.now)
	} else {
		e.namer = &numericNamer{base: conf.LogFilePath, suffix: conf.CompressSuffix, st: e.state}
	}
	if conf.Compress() {
		e.launcher = opt.launcher
		if e.launcher == nil {
			e.launcher = NewCommandLauncher(conf.CompressCommand, WithExitHook(func(_ string, err error) {
				if err != nil {
					m.failed()
				}
			}))
		}
	}
	return e, nil
}

// Engine copies input lines to a live file and rotates it into chunks.
// It is not safe for concurrent use; every method must be called from one goroutine.
type Engine struct {
	conf  Config
	opt   option
	state *state.State
	f     *file.Handle
	// the policy fired on the last line
	pending bool

	stdout   io.Writer
	namer    Namer
	launcher Launcher
	metrics  *metrics
}

// Start opens the live file. Nothing is renamed or compressed.
func (e *Engine) Start() error {
	if err := e.open(); err != nil {
		return err
	}
	e.state.ResetBytes()
	return nil
}

func (e *Engine) open() error {
	f, err := file.OpenAppend(e.conf.LogFilePath, e.opt.permission)
	if err != nil {
		return fmt.Errorf("logrotee: failed to open %s: %w", e.conf.LogFilePath, err)
	}
	e.f = f
	return nil
}

// WriteLine appends line to the live file and the passthrough writer and evaluates the rotate policy.
// A rotation decided after one line is carried out right before the next non-empty line is written,
// so the end of input never leaves an empty live file behind.
// Write errors are returned and leave the engine unusable.
func (e *Engine) WriteLine(line []byte) error {
	if e.f == nil {
		return ErrNotStarted
	}
	n := len(line)
	if n == 0 {
		return nil
	}
	if e.pending {
		if err := e.rotate(); err != nil {
			return err
		}
	}

	if _, err := e.f.Write(line); err != nil {
		return fmt.Errorf("logrotee: failed to write %s: %w", e.conf.LogFilePath, err)
	}
	if e.stdout != nil {
		if _, err := e.stdout.Write(line); err != nil {
			return fmt.Errorf("logrotee: failed to write passthrough: %w", err)
		}
	}

	size := e.state.AddBytes(n)
	e.metrics.written(n)
	e.pending = e.opt.policy.NeedRotate(FileState{Size: size, Terminated: line[n-1] == '\n'})
	return nil
}

// Pending reports whether the live file reached its threshold and is rotated before the next line
func (e *Engine) Pending() bool {
	return e.pending
}

//   e.g. path "log", ring 2, suffix ".gz"
//   - rm log.0 log.0.gz | close log | log > log.0 | compress log.0 | open log
//   - rm log.1 log.1.gz | close log | log > log.1 | compress log.1 | open log
//   - rm log.0 log.0.gz | ...
func (e *Engine) rotate() error {
	name := e.namer.NextName()

	if err := e.f.Close(); err != nil {
		logger.Printf("rotate: an error occurred while closing current file: %+v", err)
		// not return
	}
	e.f = nil

	renamed := true
	if err := os.Rename(e.conf.LogFilePath, name); err != nil {
		renamed = false
		logger.Printf("rotate: failed to rename %s to %s: %+v", e.conf.LogFilePath, name, err)
		logger.Println("rotate: keep appending to the live file until next rotation")
	} else if e.launcher != nil {
		if err := e.launcher.Launch(name); err != nil {
			logger.Printf("rotate: compression of %s is skipped: %+v", name, err)
			e.metrics.failed()
		} else {
			e.metrics.launched()
		}
	}

	e.pending = false
	if err := e.open(); err != nil {
		return err
	}
	if !renamed {
		// the live file still holds everything counted so far
		return nil
	}
	e.state.ResetBytes()
	e.metrics.rotated()
	logger.L().Debug().Str("chunk", name).Msg("rotate: rotated")
	return nil
}

// Finish closes the live file. It does not rotate or compress and may be called more than once.
// A pending rotation is dropped: end of input is not a rotation event.
func (e *Engine) Finish() error {
	if e.f == nil {
		return nil
	}
	err := e.f.Close()
	e.f = nil
	e.pending = false
	if err != nil {
		return fmt.Errorf("logrotee: failed to close %s: %w", e.conf.LogFilePath, err)
	}
	return nil
}

// Wait blocks until the compression commands started by the engine have exited.
// Finish does not wait for them. Launchers without a Wait method return immediately.
func (e *Engine) Wait() {
	if w, ok := e.launcher.(interface{ Wait() }); ok {
		w.Wait()
	}
}

// Run starts the engine, copies r line by line until EOF and finishes.
func (e *Engine) Run(r io.Reader) (err error) {
	if err := e.Start(); err != nil {
		return err
	}
	defer func() {
		if ferr := e.Finish(); err == nil {
			err = ferr
		}
	}()

	src := line.NewSource(r, e.opt.bufferSize)
	for {
		b, rerr := src.Next()
		if rerr == io.EOF {
			return nil
		}
		if len(b) > 0 {
			if err := e.WriteLine(b); err != nil {
				return err
			}
		}
		if rerr != nil {
			return fmt.Errorf("logrotee: failed to read input: %w", rerr)
		}
	}
}
