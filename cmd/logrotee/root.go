package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kei2100/logrotee"
	"github.com/kei2100/logrotee/logger"
)

const version = "0.1.0"

type flags struct {
	config         string
	compress       string
	compressSuffix string
	null           bool
	dates          bool
	maxFiles       int
	chunk          string
	logLevel       string
	logFile        string
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "logrotee [flags] LOGFILE",
		Short: "Copy stdin to stdout and to a set of rotated log files",
		Long: `
Usage: logrotee [flags] LOGFILE

  logrotee copies every line of its input to stdout and to LOGFILE. Once LOGFILE
  grows past the chunk size it is renamed to LOGFILE.N (or LOGFILE.<date> with
  --dates) and a fresh LOGFILE is started. The renamed chunk can be handed to a
  compression command, where {} stands for the chunk path.

      $ verbose_command | logrotee --compress "bzip2 {}" --compress-suffix .bz2 \
          --null --chunk 2M /var/log/verbose_command.log
  `,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, lc, err := buildConfig(cmd, &f, args)
			if err != nil {
				return err
			}
			// from here on errors are runtime failures, not usage mistakes
			cmd.SilenceUsage = true
			return run(cmd, conf, lc, stdin, stdout)
		},
	}
	cmd.SetIn(stdin)

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "Path to a YAML or JSON configuration file; flags override it")
	fl.StringVar(&f.compress, "compress", "", `Command run on every rotated chunk, e.g. "gzip {}"`)
	fl.StringVar(&f.compressSuffix, "compress-suffix", "", "Suffix of compressed chunks, e.g. .gz")
	fl.BoolVar(&f.null, "null", false, "Do not copy input to stdout")
	fl.BoolVar(&f.dates, "dates", false, "Name chunks after the rotation time instead of a number")
	fl.IntVar(&f.maxFiles, "max-files", logrotee.DefaultMaxFiles, "Number of numbered chunks kept before names are reused")
	fl.StringVar(&f.chunk, "chunk", fmt.Sprint(logrotee.DefaultChunkSize), "Chunk size in bytes; accepts units such as 2M or 512KiB")
	fl.StringVar(&f.logLevel, "log-level", "info", "Diagnostics level: trace, debug, info, warn, error")
	fl.StringVar(&f.logFile, "log-file", "", "Write diagnostics to this rotated file instead of stderr")
	return cmd
}

func run(cmd *cobra.Command, conf logrotee.Config, lc logConfig, stdin io.Reader, stdout io.Writer) error {
	lconf := logger.Config{Level: lc.Level, Output: cmd.ErrOrStderr()}
	if lc.File != "" {
		lconf.FileConfig = logger.DefaultFileConfig(lc.File)
	}
	closer, err := logger.Init(lconf)
	if err != nil {
		return err
	}
	defer closer.Close()

	e, err := logrotee.NewEngine(conf, logrotee.WithStdout(stdout))
	if err != nil {
		return err
	}
	logger.L().Debug().
		Str("log_file", conf.LogFilePath).
		Int64("chunk", conf.ChunkSize).
		Int("max_files", conf.MaxFiles).
		Bool("dates", conf.Dates).
		Str("compress", conf.CompressCommand).
		Msg("logrotee: started")
	if err := e.Run(stdin); err != nil {
		logger.L().Error().Err(err).Msg("logrotee: aborted")
		return err
	}
	return nil
}
