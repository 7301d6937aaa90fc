package logrotee

import (
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/kei2100/logrotee/internal/line"
)

type option struct {
	permission    os.FileMode
	stdout        io.Writer
	launcher      Launcher
	now           func() time.Time
	meterProvider metric.MeterProvider
	bufferSize    int
	policy        PolicyFunc
}

// OptionFunc let you change Engine behavior.
type OptionFunc func(o *option)

// DefaultPermission of the live file
const DefaultPermission = 0644

func (o *option) apply(opts ...OptionFunc) {
	o.permission = DefaultPermission
	o.stdout = os.Stdout
	o.now = time.Now
	o.bufferSize = line.DefaultBufferSize
	for _, fn := range opts {
		fn(o)
	}
}

// WithPermission sets the permission of newly created live files
func WithPermission(v os.FileMode) OptionFunc {
	return func(o *option) {
		o.permission = v
	}
}

// WithStdout sets the passthrough writer. The default is os.Stdout. Config.NullStdout disables it.
func WithStdout(w io.Writer) OptionFunc {
	return func(o *option) {
		o.stdout = w
	}
}

// WithLauncher replaces the CommandLauncher built from Config.CompressCommand.
// It is only used when Config.CompressCommand is not empty.
func WithLauncher(l Launcher) OptionFunc {
	return func(o *option) {
		o.launcher = l
	}
}

// WithClock sets the time source of date mode names
func WithClock(now func() time.Time) OptionFunc {
	return func(o *option) {
		o.now = now
	}
}

// WithMeterProvider sets the MeterProvider. The default is the global one.
func WithMeterProvider(mp metric.MeterProvider) OptionFunc {
	return func(o *option) {
		o.meterProvider = mp
	}
}

// WithBufferSize sets the read buffer of Run, which bounds the length of one chunk of input
func WithBufferSize(n int) OptionFunc {
	return func(o *option) {
		o.bufferSize = n
	}
}

// WithPolicyFunc replaces LineBoundaryPolicy(Config.ChunkSize)
func WithPolicyFunc(f PolicyFunc) OptionFunc {
	return func(o *option) {
		o.policy = f
	}
}
