package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/kei2100/logrotee"
)

var (
	errUnsupportedFormat = errors.New("unsupported config file format")
	errInvalidSize       = errors.New("cannot parse size")
)

// fileConfig is the layout of the --config file
type fileConfig struct {
	LogFile        string    `koanf:"log_file"`
	Compress       string    `koanf:"compress"`
	CompressSuffix string    `koanf:"compress_suffix"`
	Null           bool      `koanf:"null"`
	Dates          bool      `koanf:"dates"`
	MaxFiles       *int      `koanf:"max_files"`
	Chunk          string    `koanf:"chunk"`
	Log            logConfig `koanf:"log"`
}

type logConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fc, fmt.Errorf("%w: %s", errUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config: %w", err)
	}
	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return fc, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fc, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return fc, nil
}

// parseSize accepts plain byte counts and humanized sizes such as 2M, 2MB or 2MiB
func parseSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errInvalidSize, s)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s is too large", errInvalidSize, s)
	}
	return int64(n), nil
}

// buildConfig merges defaults, the config file and the flags that were set, in that order.
func buildConfig(cmd *cobra.Command, f *flags, args []string) (logrotee.Config, logConfig, error) {
	conf := logrotee.DefaultConfig("")
	lc := logConfig{Level: f.logLevel}
	chunk := ""

	if f.config != "" {
		fc, err := loadConfigFile(f.config)
		if err != nil {
			return conf, lc, err
		}
		conf.LogFilePath = fc.LogFile
		conf.CompressCommand = fc.Compress
		conf.CompressSuffix = fc.CompressSuffix
		conf.NullStdout = fc.Null
		conf.Dates = fc.Dates
		if fc.MaxFiles != nil {
			conf.MaxFiles = *fc.MaxFiles
		}
		chunk = fc.Chunk
		if fc.Log.Level != "" {
			lc.Level = fc.Log.Level
		}
		lc.File = fc.Log.File
	}

	changed := cmd.Flags().Changed
	if changed("compress") {
		conf.CompressCommand = f.compress
	}
	if changed("compress-suffix") {
		conf.CompressSuffix = f.compressSuffix
	}
	if changed("null") {
		conf.NullStdout = f.null
	}
	if changed("dates") {
		conf.Dates = f.dates
	}
	if changed("max-files") {
		conf.MaxFiles = f.maxFiles
	}
	if changed("chunk") || chunk == "" {
		chunk = f.chunk
	}
	if changed("log-level") {
		lc.Level = f.logLevel
	}
	if changed("log-file") {
		lc.File = f.logFile
	}
	if len(args) > 0 {
		conf.LogFilePath = args[0]
	}

	size, err := parseSize(chunk)
	if err != nil {
		return conf, lc, err
	}
	conf.ChunkSize = size

	if err := conf.Validate(); err != nil {
		return conf, lc, err
	}
	return conf, lc, nil
}
