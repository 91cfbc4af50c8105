// Package app wires the calibration command tree.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/nat"
	"github.com/agbru/bignum/internal/ui"
)

// Application holds the state shared by every command.
type Application struct {
	Out    io.Writer
	ErrOut io.Writer

	// Lookup replaces the process environment, mainly for tests.
	Lookup config.LookupFunc
	// EnvFile overrides the default .env location.
	EnvFile string

	logger      logging.Logger
	logLevel    string
	profilePath string
	quiet       bool
	noColor     bool
	newSpinner  func(w io.Writer) Spinner
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLookup sets the environment lookup used to resolve thresholds.
func WithLookup(l config.LookupFunc) AppOption {
	return func(a *Application) { a.Lookup = l }
}

// WithEnvFile sets the dotenv file consulted for overrides.
func WithEnvFile(path string) AppOption {
	return func(a *Application) { a.EnvFile = path }
}

// New creates an Application writing results to out and diagnostics to errOut.
func New(out, errOut io.Writer, opts ...AppOption) *Application {
	a := &Application{Out: out, ErrOut: errOut, newSpinner: newSpinner}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Command returns the root command.
func (a *Application) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "bignum-calibrate",
		Short:         "Measure and inspect the algorithm thresholds of the bignum engine",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ui.InitTheme(a.noColor)
			return a.setupLogging()
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.ErrOut)
	root.SetVersionTemplate(VersionString() + "\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.profilePath, "profile", "", "threshold profile path (default $HOME/"+config.DefaultProfileFileName+")")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress progress output")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output (also honours NO_COLOR)")

	root.AddCommand(a.runCommand(), a.showCommand(), a.verifyCommand())
	return root
}

// Run executes the command line args and returns the process exit code.
func (a *Application) Run(ctx context.Context, args []string) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := a.Command()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(a.ErrOut, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var (
		cfgErr   apperrors.ConfigError
		mismatch apperrors.MismatchError
	)
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.As(err, &mismatch):
		return apperrors.ExitErrorMismatch
	case errors.As(err, &cfgErr):
		return apperrors.ExitErrorConfig
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitErrorGeneric
}

func (a *Application) setupLogging() error {
	level, err := zerolog.ParseLevel(strings.ToLower(a.logLevel))
	if err != nil {
		return apperrors.NewConfigError("invalid --log-level %q", a.logLevel)
	}
	zl := logging.NewLogger(a.ErrOut, "calibrate").Zerolog().Level(level)
	a.logger = logging.NewZerologAdapter(zl)
	return nil
}

// loader returns the threshold loader for the current flags.
func (a *Application) loader() config.Loader {
	return config.Loader{
		Logger:      a.logger,
		EnvFile:     a.EnvFile,
		ProfilePath: a.resolvedProfilePath(),
		Lookup:      a.Lookup,
	}
}

// installThresholds loads the table for the current flags and makes it the
// one the engine dispatches with.
func (a *Application) installThresholds() error {
	t, err := a.loader().Load()
	if err != nil {
		return err
	}
	_, err = nat.SetThresholds(t)
	return err
}

func (a *Application) resolvedProfilePath() string {
	if a.profilePath != "" {
		return a.profilePath
	}
	return config.DefaultProfilePath()
}
