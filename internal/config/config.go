// Package config parses the fixbench command line and environment into an
// AppConfig.
//
// Values resolve in priority order: command-line flags, then FIXBENCH_
// environment variables, then adaptive defaults derived from the host, then
// the static defaults below.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FIXBENCH_"

const (
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 5 * time.Minute
	// DefaultSeed seeds accuracy sweeps and golden generation.
	DefaultSeed uint64 = 12345678
	// DefaultSlack is the tolerated relative inversion between tiers.
	DefaultSlack = 0.25
	// DefaultBenchTarget is the per-op duration calibration aims for.
	DefaultBenchTarget = 200 * time.Millisecond
)

// AppConfig holds the resolved configuration of one fixbench run.
type AppConfig struct {
	// Selection
	Ops   string
	Width string
	Tier  string

	// Accuracy sweep
	Samples int
	Seed    uint64
	Slack   float64
	Workers int

	// Benchmark
	Bench              bool
	Calibrate          bool
	CalibrationProfile string
	BenchTarget        time.Duration

	// Single evaluation
	Eval string
	X    float64
	Y    float64
	HasY bool

	// Other modes
	VerifyGolden string
	Interactive  bool
	TUI          bool
	Completion   string

	// Output
	MetricsFile string
	Timeout     time.Duration
	LogLevel    string
	Details     bool
	Quiet       bool
	NoColor     bool
	Theme       string
}

// Mode names the top-level action selected by the configuration.
type Mode string

const (
	ModeAccuracy    Mode = "accuracy"
	ModeBench       Mode = "bench"
	ModeEval        Mode = "eval"
	ModeGolden      Mode = "verify-golden"
	ModeInteractive Mode = "interactive"
	ModeCompletion  Mode = "completion"
)

// Mode returns the selected action. Validate guarantees at most one is set.
func (c AppConfig) Mode() Mode {
	switch {
	case c.Completion != "":
		return ModeCompletion
	case c.Interactive:
		return ModeInteractive
	case c.VerifyGolden != "":
		return ModeGolden
	case c.Eval != "":
		return ModeEval
	case c.Bench:
		return ModeBench
	default:
		return ModeAccuracy
	}
}

// WidthFilter returns the parsed width selection.
func (c AppConfig) WidthFilter() catalog.Width {
	w, _ := catalog.ParseWidth(c.Width)
	return w
}

// TierFilter returns the parsed tier selection.
func (c AppConfig) TierFilter() catalog.Tier {
	t, _ := catalog.ParseTier(c.Tier)
	return t
}

// Defaults returns the static defaults.
func Defaults() AppConfig {
	return AppConfig{
		Ops:         "all",
		Width:       "all",
		Tier:        "all",
		Seed:        DefaultSeed,
		Slack:       DefaultSlack,
		BenchTarget: DefaultBenchTarget,
		Timeout:     DefaultTimeout,
		LogLevel:    "warn",
		Theme:       "dark",
	}
}

// newFlagSet binds every flag to cfg. It is shared by ParseConfig and the
// completion registry so both always agree.
func newFlagSet(programName string, cfg *AppConfig) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)

	fs.StringVar(&cfg.Ops, "op", cfg.Ops, "Comma-separated operation names or globs (e.g. 'sin,cos', 's*', 'all').")
	fs.StringVar(&cfg.Width, "width", cfg.Width, "Operand width: 64, 32 or all.")
	fs.StringVar(&cfg.Tier, "tier", cfg.Tier, "Implementation tier: exact, precise, fast, fastest or all.")

	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Random inputs per domain in accuracy sweeps (0 = adaptive).")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the input stream.")
	fs.Float64Var(&cfg.Slack, "slack", cfg.Slack, "Relative slack tolerated by the tier-ordering check.")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent jobs (0 = number of CPUs).")

	fs.BoolVar(&cfg.Bench, "bench", cfg.Bench, "Run the throughput benchmark instead of the accuracy sweep.")
	fs.BoolVar(&cfg.Calibrate, "calibrate", cfg.Calibrate, "Calibrate benchmark iteration counts and save the profile.")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", cfg.CalibrationProfile, "Path of the calibration profile (default ~/.fixbench_calibration.json).")
	fs.DurationVar(&cfg.BenchTarget, "bench-target", cfg.BenchTarget, "Target duration of one calibrated benchmark pass.")

	fs.StringVar(&cfg.Eval, "eval", cfg.Eval, "Evaluate a single operation on --x [--y].")
	fs.Float64Var(&cfg.X, "x", cfg.X, "First operand of --eval, in decimal.")
	fs.Float64Var(&cfg.Y, "y", cfg.Y, "Second operand of --eval, in decimal.")

	fs.StringVar(&cfg.VerifyGolden, "verify-golden", cfg.VerifyGolden, "Replay a golden vector file and report drift.")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "Start the interactive evaluator.")
	fs.BoolVar(&cfg.Interactive, "i", cfg.Interactive, "Shorthand for --interactive.")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Show the live dashboard.")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "Print a completion script for bash, zsh, fish or powershell.")

	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this textfile after the run.")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum duration of the run.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error.")
	fs.BoolVar(&cfg.Details, "details", cfg.Details, "Show basic values, worst inputs and memory statistics.")
	fs.BoolVar(&cfg.Details, "d", cfg.Details, "Shorthand for --details.")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Print results only.")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output.")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme: dark, light, orange or none.")

	return fs
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// and validates the result against the available operation names.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps []string) (AppConfig, error) {
	cfg := Defaults()
	fs := newFlagSet(programName, &cfg)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Measures accuracy and throughput of the fixed-point kernel.")
		fmt.Fprintln(errorWriter, "\nOptions:")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nOperations: %s\n", strings.Join(availableOps, ", "))
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)
	cfg.HasY = isFlagSet(fs, "y") || cfg.HasY

	if err := cfg.Validate(availableOps); err != nil {
		fmt.Fprintf(errorWriter, "Error: %v\n", err)
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate(availableOps []string) error {
	if _, err := catalog.ParseWidth(c.Width); err != nil {
		return apperrors.ValidationError{Field: "width", Message: err.Error()}
	}
	if _, err := catalog.ParseTier(c.Tier); err != nil {
		return apperrors.ValidationError{Field: "tier", Message: err.Error()}
	}
	if err := validateOps(c.Ops, availableOps); err != nil {
		return err
	}
	if c.Samples < 0 {
		return apperrors.ValidationError{Field: "samples", Message: "must not be negative"}
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: "must not be negative"}
	}
	if c.Slack < 0 {
		return apperrors.ValidationError{Field: "slack", Message: "must not be negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.BenchTarget <= 0 {
		return apperrors.ValidationError{Field: "bench-target", Message: "must be positive"}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return apperrors.ValidationError{Field: "log-level", Message: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}

	modes := 0
	for _, set := range []bool{c.Bench, c.Eval != "", c.VerifyGolden != "", c.Interactive, c.Completion != ""} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("--bench, --eval, --verify-golden, --interactive and --completion are mutually exclusive")
	}
	if c.Calibrate && !c.Bench {
		return apperrors.NewConfigError("--calibrate requires --bench")
	}
	if c.TUI && (c.Eval != "" || c.Interactive || c.Completion != "") {
		return apperrors.NewConfigError("--tui only applies to accuracy sweeps and benchmarks")
	}
	if c.Eval != "" && !contains(availableOps, c.Eval) {
		return apperrors.ValidationError{Field: "eval", Message: fmt.Sprintf("unknown operation %q", c.Eval)}
	}
	if c.Completion != "" && !contains(CompletionShells, c.Completion) {
		return apperrors.ValidationError{Field: "completion", Message: fmt.Sprintf("unsupported shell %q", c.Completion)}
	}
	return nil
}

// CompletionShells lists the shells --completion can target.
var CompletionShells = []string{"bash", "fish", "powershell", "zsh"}

func validateOps(patterns string, available []string) error {
	if patterns == "" || patterns == "all" {
		return nil
	}
	for _, p := range strings.Split(patterns, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.ContainsAny(p, "*?[") {
			if _, err := path.Match(p, ""); err != nil {
				return apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("invalid pattern %q", p)}
			}
			continue
		}
		if !contains(available, p) {
			return apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", p)}
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FlagInfo describes one command-line flag for completion scripts.
type FlagInfo struct {
	Name   string
	Usage  string
	IsBool bool
}

// Flags returns the registry of all flags, sorted by name.
func Flags() []FlagInfo {
	cfg := Defaults()
	fs := newFlagSet("fixbench", &cfg)
	var out []FlagInfo
	fs.VisitAll(func(f *flag.Flag) {
		bf, ok := f.Value.(interface{ IsBoolFlag() bool })
		out = append(out, FlagInfo{
			Name:   f.Name,
			Usage:  f.Usage,
			IsBool: ok && bf.IsBoolFlag(),
		})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
