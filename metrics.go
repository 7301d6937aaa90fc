package logrotee

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/kei2100/logrotee"

const (
	metricNameRotations        = "logrotee.rotations"
	metricNameBytesWritten     = "logrotee.bytes.written"
	metricNameCompressLaunched = "logrotee.compress.launched"
	metricNameCompressFailed   = "logrotee.compress.failed"
)

// metrics of one Engine. Instruments are safe for use from the reaping goroutines.
type metrics struct {
	rotations        metric.Int64Counter
	bytesWritten     metric.Int64Counter
	compressLaunched metric.Int64Counter
	compressFailed   metric.Int64Counter
}

func newMetrics(mp metric.MeterProvider) (*metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	m := &metrics{}
	var err error
	if m.rotations, err = meter.Int64Counter(metricNameRotations,
		metric.WithDescription("Number of rotations of the live file"), metric.WithUnit("{rotation}")); err != nil {
		return nil, err
	}
	if m.bytesWritten, err = meter.Int64Counter(metricNameBytesWritten,
		metric.WithDescription("Bytes appended to the live file"), metric.WithUnit("By")); err != nil {
		return nil, err
	}
	if m.compressLaunched, err = meter.Int64Counter(metricNameCompressLaunched,
		metric.WithDescription("Compression commands started"), metric.WithUnit("{process}")); err != nil {
		return nil, err
	}
	if m.compressFailed, err = meter.Int64Counter(metricNameCompressFailed,
		metric.WithDescription("Compression commands that could not start or exited with an error"), metric.WithUnit("{process}")); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *metrics) rotated() {
	m.rotations.Add(context.Background(), 1)
}

func (m *metrics) written(n int) {
	m.bytesWritten.Add(context.Background(), int64(n))
}

func (m *metrics) launched() {
	m.compressLaunched.Add(context.Background(), 1)
}

func (m *metrics) failed() {
	m.compressFailed.Add(context.Background(), 1)
}
