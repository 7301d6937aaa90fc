package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tt := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"err":     zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tt {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	prev := *L()
	defer Set(prev)
	Set(New(Config{Output: &buf}))

	Printf("rotate: failed to rename %s", "a.log")
	Println("rotate:", "wait")

	assert.Contains(t, buf.String(), "rotate: failed to rename a.log")
	assert.Contains(t, buf.String(), "rotate: wait")
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag", "logrotee.log")
	l, c, err := NewWithFile(Config{Level: "debug", FileConfig: DefaultFileConfig(path)})
	require.NoError(t, err)

	l.Debug().Str("chunk", "x.log.0").Msg("rotated")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &rec))
	assert.Equal(t, "rotated", rec["message"])
	assert.Equal(t, "x.log.0", rec["chunk"])
	assert.Equal(t, "debug", rec["level"])
}

func TestInit_WithoutFile(t *testing.T) {
	prev := *L()
	defer Set(prev)

	var buf bytes.Buffer
	c, err := Init(Config{Output: &buf})
	require.NoError(t, err)
	defer c.Close()

	L().Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
