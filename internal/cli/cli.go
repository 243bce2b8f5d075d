package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/suitectl/internal/app"
	"github.com/specialistvlad/suitectl/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// LoaderFactory builds the document loader once the worker limit is known.
type LoaderFactory func(workers int) config.Loader

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	logLevel   string
	logFormat  string
	configPath string
	workers    int
}

// Execute runs the command tree with args. Usage mistakes come back as an
// *ExitError with code 2.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, newLoader LoaderFactory) error {
	cmd := NewRootCmd(newLoader)
	cmd.SetArgs(args)
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	return cmd.ExecuteContext(ctx)
}

// NewRootCmd builds the suitectl command tree.
func NewRootCmd(newLoader LoaderFactory) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "suitectl",
		Short: "Inspect and edit HCL test suites in memory",
		Long: `suitectl loads a suite file, a resource file or a directory of suites
and works on it through the editing controllers:

  - outline        print the document tree
  - show           print the settings and steps of one test or keyword
  - replace-steps  replace the steps of one test or keyword from TSV rows

Nothing is ever written back to disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.configPath, "config", "", "Path to an optional YAML config file. Flags take precedence over it.")
	flags.IntVar(&opts.workers, "workers", 0, "Number of files parsed concurrently per directory. 0 uses the loader default.")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%s", err)
	})

	cmd.AddCommand(
		newOutlineCmd(opts, newLoader),
		newShowCmd(opts, newLoader),
		newReplaceStepsCmd(opts, newLoader),
	)
	return cmd
}

// newApp merges the config file under the flags, validates the result and
// builds the app for path.
func (o *globalOptions) newApp(cmd *cobra.Command, path string, newLoader LoaderFactory) (*app.App, error) {
	if o.configPath != "" {
		file, err := config.LoadFile(o.configPath)
		if err != nil {
			return nil, usageError("%s", err)
		}
		flags := cmd.Flags()
		if file.LogLevel != "" && !flags.Changed("log-level") {
			o.logLevel = file.LogLevel
		}
		if file.LogFormat != "" && !flags.Changed("log-format") {
			o.logFormat = file.LogFormat
		}
		if file.Workers != 0 && !flags.Changed("workers") {
			o.workers = file.Workers
		}
	}

	cfg, err := app.NewConfig(app.Config{
		Path:      path,
		LogFormat: strings.ToLower(o.logFormat),
		LogLevel:  strings.ToLower(o.logLevel),
		Workers:   o.workers,
	})
	if err != nil {
		return nil, usageError("%s", err)
	}

	return app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, newLoader(cfg.Workers)), nil
}

func exactlyOnePath(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError("%s requires exactly one PATH argument, got %d", cmd.Name(), len(args))
	}
	return nil
}
