// Package cli provides the command-line presentation of fixbench: progress
// spinners, result tables, the interactive evaluator and shell completion.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/format"
	"github.com/agbru/fixpoint/internal/ui"
)

// REPLConfig holds the initial settings of an interactive session.
type REPLConfig struct {
	Width catalog.Width
	Tier  catalog.Tier
	// HexOutput shows raw bits instead of decimals.
	HexOutput bool
}

// REPL is an interactive evaluator over the operation catalog.
type REPL struct {
	config REPLConfig
	cat    *catalog.Catalog
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a session. Unset width and tier default to 64 and precise.
func NewREPL(cat *catalog.Catalog, config REPLConfig) *REPL {
	if config.Width == catalog.AnyWidth {
		config.Width = catalog.Width64
	}
	if config.Tier == catalog.AnyTier {
		config.Tier = catalog.TierPrecise
	}
	return &REPL{
		config: config,
		cat:    cat,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and executes commands until exit or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprintf(r.out, "%sfix%d/%s> %s", ui.ColorGreen(), r.config.Width, r.config.Tier, ui.ColorReset())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			}
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if !r.processCommand(input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%sfixbench interactive evaluator%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s%d operations across 64 and 32 bit widths%s\n\n", ui.ColorGrey(), r.cat.Len(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	cmd := func(name, desc string) {
		fmt.Fprintf(r.out, "  %s%-22s%s %s\n", ui.ColorYellow(), name, ui.ColorReset(), desc)
	}
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	cmd("eval <op> <x> [y]", "Evaluate an op at the current width and tier")
	cmd("compare <op> <x> [y]", "Evaluate every tier of an op")
	cmd("width <64|32>", "Change the width")
	cmd("tier <name>", "Change the tier (exact, precise, fast, fastest)")
	cmd("list", "List operations and their tiers")
	cmd("hex", "Toggle raw hexadecimal display")
	cmd("status", "Display the current settings")
	cmd("help", "Display this help")
	cmd("exit / quit", "Leave interactive mode")
}

// processCommand executes one line. It returns false on exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "eval", "e":
		r.cmdEval(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "width", "w":
		r.cmdWidth(args)
	case "tier", "t":
		r.cmdTier(args)
	case "list", "ls":
		r.cmdList()
	case "hex":
		r.cmdHex()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// "sqrt 2" is shorthand for "eval sqrt 2".
		if len(args) > 0 && r.knownName(cmd) {
			r.cmdEval(parts)
			return true
		}
		r.errorf("Unknown command: %s", cmd)
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) errorf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorRed(), fmt.Sprintf(format, args...), ui.ColorReset())
}

func (r *REPL) knownName(name string) bool {
	for _, n := range r.cat.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func (r *REPL) resolve(name string) (catalog.Op, error) {
	return ResolveOp(r.cat, name, r.config.Width, r.config.Tier)
}

func parseOperands(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid operand %q", a)
		}
		vals[i] = v
	}
	return vals, nil
}

func (r *REPL) cmdEval(args []string) {
	if len(args) < 2 {
		r.errorf("Usage: eval <op> <x> [y]")
		return
	}
	op, err := r.resolve(strings.ToLower(args[0]))
	if err != nil {
		r.errorf("%v", err)
		return
	}
	vals, err := parseOperands(args[1:])
	if err != nil {
		r.errorf("%v", err)
		return
	}
	res, err := EvalOp(op, vals...)
	if err != nil {
		r.errorf("%v", err)
		return
	}
	if r.config.HexOutput {
		fmt.Fprintf(r.out, "%s\n", FormatQuietEval(res))
		return
	}
	DisplayEval(r.out, res)
}

func (r *REPL) cmdCompare(args []string) {
	if len(args) < 2 {
		r.errorf("Usage: compare <op> <x> [y]")
		return
	}
	name := strings.ToLower(args[0])
	vals, err := parseOperands(args[1:])
	if err != nil {
		r.errorf("%v", err)
		return
	}
	ops, err := r.cat.Filter(name, r.config.Width, catalog.AnyTier)
	if err != nil {
		r.errorf("%v", err)
		return
	}

	fmt.Fprintf(r.out, "\n%sComparison for %s/%d:%s\n", ui.ColorBold(), name, r.config.Width, ui.ColorReset())
	for _, op := range ops {
		if op.Name != name {
			continue
		}
		res, err := EvalOp(op, vals...)
		if err != nil {
			r.errorf("%v", err)
			return
		}
		shown := format.FormatFixed(res.Out, op.Width.Shift())
		if r.config.HexOutput {
			shown = format.FormatRaw(res.Out, int(op.Width))
		}
		fmt.Fprintf(r.out, "  %s%-8s%s %-20s error %s\n",
			ui.TierColor(op.Tier.String()), op.Tier, ui.ColorReset(), shown, format.FormatError(res.Err))
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdWidth(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: width <64|32>")
		return
	}
	w, err := catalog.ParseWidth(args[0])
	if err != nil || w == catalog.AnyWidth {
		r.errorf("Invalid width: %s", args[0])
		return
	}
	r.config.Width = w
	fmt.Fprintf(r.out, "Width changed to: %s%d%s\n", ui.ColorGreen(), w, ui.ColorReset())
}

func (r *REPL) cmdTier(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: tier <exact|precise|fast|fastest>")
		return
	}
	t, err := catalog.ParseTier(strings.ToLower(args[0]))
	if err != nil || t == catalog.AnyTier {
		r.errorf("Invalid tier: %s", args[0])
		return
	}
	r.config.Tier = t
	fmt.Fprintf(r.out, "Tier changed to: %s%s%s\n", ui.TierColor(t.String()), t, ui.ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sOperations at %d bits:%s\n", ui.ColorBold(), r.config.Width, ui.ColorReset())
	ops, err := r.cat.Filter("all", r.config.Width, catalog.AnyTier)
	if err != nil {
		r.errorf("%v", err)
		return
	}
	for _, fam := range catalog.Families(ops) {
		tiers := make([]string, len(fam.Ops))
		for i, op := range fam.Ops {
			tiers[i] = ui.TierColor(op.Tier.String()) + op.Tier.String() + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-8s%s %s\n", ui.ColorYellow(), fam.Ops[0].Name, ui.ColorReset(), strings.Join(tiers, " "))
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hexadecimal display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	hex := "no"
	if r.config.HexOutput {
		hex = "yes"
	}
	fmt.Fprintf(r.out, "\n%sCurrent settings:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Width:        %s%d%s\n", ui.ColorBlue(), r.config.Width, ui.ColorReset())
	fmt.Fprintf(r.out, "  Tier:         %s%s%s\n", ui.ColorBlue(), r.config.Tier, ui.ColorReset())
	fmt.Fprintf(r.out, "  Hexadecimal:  %s%s%s\n\n", ui.ColorBlue(), hex, ui.ColorReset())
}
