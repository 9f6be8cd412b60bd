// Package app turns a parsed command line into one fixbench run: it selects
// the mode, sets up the run's lifetime and hands the work to the CLI or TUI
// front end.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/cli"
	"github.com/agbru/fixpoint/internal/config"
	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/logging"
	"github.com/agbru/fixpoint/internal/metrics"
	"github.com/agbru/fixpoint/internal/ui"
)

// Application represents the fixbench application instance.
type Application struct {
	Config    config.AppConfig
	Catalog   *catalog.Catalog
	Logger    logging.Logger
	ErrWriter io.Writer
	// In feeds the interactive evaluator.
	In io.Reader

	metrics *metrics.Metrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithCatalog sets the operation catalog. The default is catalog.Default().
func WithCatalog(c *catalog.Catalog) AppOption {
	return func(a *Application) { a.Catalog = c }
}

// WithLogger sets a custom logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader of the interactive evaluator.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Catalog == nil {
		app.Catalog = catalog.Default()
	}
	if app.Logger == nil {
		console := zerolog.ConsoleWriter{Out: errWriter, NoColor: true, TimeFormat: "15:04:05"}
		app.Logger = logging.NewZerologAdapter(zerolog.New(console).With().Timestamp().Str("component", "app").Logger())
	}

	programName := "fixbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Catalog.Names())
	if err != nil {
		return nil, err
	}

	app.Config = config.ApplyAdaptiveDefaults(cfg)
	app.metrics = metrics.New(app.Logger)
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	mode := a.Config.Mode()
	if mode == config.ModeCompletion {
		return a.runCompletion(out)
	}

	level, err := zerolog.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	switch mode {
	case config.ModeInteractive:
		return a.runInteractive(out)
	case config.ModeEval:
		return a.runEval(out)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var code int
	switch mode {
	case config.ModeGolden:
		code = a.runVerifyGolden(out)
	case config.ModeBench:
		code = a.runBench(ctx, out)
	default:
		code = a.runAccuracy(ctx, out)
	}
	return a.writeMetrics(code)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, config.Flags(), a.Catalog.Names()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runInteractive starts the evaluator on a.In.
func (a *Application) runInteractive(out io.Writer) int {
	repl := cli.NewREPL(a.Catalog, cli.REPLConfig{
		Width: a.Config.WidthFilter(),
		Tier:  a.Config.TierFilter(),
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runEval evaluates one op on --x and, when given, --y.
func (a *Application) runEval(out io.Writer) int {
	op, err := cli.ResolveOp(a.Catalog, a.Config.Eval, a.Config.WidthFilter(), a.Config.TierFilter())
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	in := []float64{a.Config.X}
	if a.Config.HasY {
		in = append(in, a.Config.Y)
	}
	res, err := cli.EvalOp(op, in...)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}
	if a.Config.Quiet {
		fmt.Fprintln(out, cli.FormatQuietEval(res))
	} else {
		cli.DisplayEval(out, res)
	}
	return apperrors.ExitSuccess
}

// writeMetrics writes the textfile requested by --metrics-file. A write
// failure only changes the exit code of an otherwise successful run.
func (a *Application) writeMetrics(code int) int {
	if a.Config.MetricsFile == "" {
		return code
	}
	if err := a.metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("could not write metrics", err, logging.String("path", a.Config.MetricsFile))
		if code == apperrors.ExitSuccess {
			return apperrors.ExitErrorGeneric
		}
		return code
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
	return code
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
