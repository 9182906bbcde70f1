package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/geange/lttoolbox/internal/app"
	"github.com/geange/lttoolbox/internal/config"
	"github.com/geange/lttoolbox/trim"
)

// ErrUsage marks command line errors: wrong argument count or unknown flags.
var ErrUsage = errors.New("usage")

var version = "dev"

type flags struct {
	cfgFile   string
	quiet     bool
	logLevel  string
	logFormat string
}

// NewRootCmd Builds the lt-trim command. Progress lines go to stdout, usage, warnings and errors to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "lt-trim [flags] <analyser-bin-file> <bidix-bin-file> <trimmed-bin-file>",
		Short:         "lt-trim - trim a transducer to another transducer",
		Long:          "lt-trim keeps only the analyses of the analyser whose lemma and tags the bidix can translate.",
		Version:       version,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(3)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, f, args, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.Flags().StringVar(&f.cfgFile, "config", "", "YAML configuration file (default $"+config.PathEnv+")")
	rootCmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the section sizes")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: console or json")
	return rootCmd
}

func run(cmd *cobra.Command, f *flags, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Trim.Quiet = f.quiet
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}

	logger := app.NewLogger(cfg.Log, zapcore.Lock(zapcore.AddSync(stderr)))
	defer func() {
		_ = logger.Sync()
	}()

	progress := stdout
	if cfg.Trim.Quiet {
		progress = io.Discard
	}

	_, err = app.Run(app.Options{
		Analyser: args[0],
		Bidix:    args[1],
		Output:   args[2],
		Progress: progress,
		Logger:   logger,
	})
	switch {
	case errors.Is(err, trim.ErrEmptyTransducer):
		logger.Error("Trimming gave empty transducer!")
	case err != nil:
		logger.Error("lt-trim failed", zap.Error(err))
	}
	return err
}

// Execute runs the command on the process arguments. Usage errors are printed with the usage text.
func Execute() error {
	rootCmd := NewRootCmd(os.Stdout, os.Stderr)
	err := rootCmd.Execute()
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
