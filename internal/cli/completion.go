package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fixpoint/internal/config"
	"github.com/agbru/fixpoint/internal/ui"
)

// completionFlag is a flag from the config registry annotated with its
// completion behavior.
type completionFlag struct {
	config.FlagInfo
	Values []string // suggested values, nil for none
	IsFile bool
}

// Dash returns the flag as typed on the command line.
func (f completionFlag) Dash() string {
	if len(f.Name) == 1 {
		return "-" + f.Name
	}
	return "--" + f.Name
}

var fileFlags = map[string]bool{
	"calibration-profile": true,
	"metrics-file":        true,
	"verify-golden":       true,
}

// annotate attaches value suggestions to the registry. Operation names are
// supplied by the caller since they come from the catalog.
func annotate(flags []config.FlagInfo, ops []string) []completionFlag {
	values := map[string][]string{
		"op":         append([]string{"all"}, ops...),
		"eval":       ops,
		"width":      {"64", "32", "all"},
		"tier":       {"exact", "precise", "fast", "fastest", "all"},
		"completion": config.CompletionShells,
		"theme":      ui.ThemeNames(),
		"log-level":  {"trace", "debug", "info", "warn", "error", "disabled"},
		"timeout":    {"30s", "1m", "5m", "10m"},
		"samples":    {"4096", "65536", "1048576"},
	}
	out := make([]completionFlag, len(flags))
	for i, f := range flags {
		out[i] = completionFlag{FlagInfo: f, Values: values[f.Name], IsFile: fileFlags[f.Name]}
	}
	return out
}

// GenerateCompletion writes a completion script for shell. The flag set is
// taken from flags so that scripts never drift from the parser.
func GenerateCompletion(out io.Writer, shell string, flags []config.FlagInfo, ops []string) error {
	annotated := annotate(flags, ops)
	switch shell {
	case "bash":
		return generateBashCompletion(out, annotated)
	case "zsh":
		return generateZshCompletion(out, annotated)
	case "fish":
		return generateFishCompletion(out, annotated)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, annotated)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(config.CompletionShells, ", "))
	}
}

func generateBashCompletion(out io.Writer, flags []completionFlag) error {
	var opts, files []string
	var cases strings.Builder
	for _, f := range flags {
		opts = append(opts, f.Dash())
		switch {
		case f.IsFile:
			files = append(files, f.Dash())
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				f.Dash(), strings.Join(f.Values, " "))
		}
	}
	if len(files) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(files, "|"))
	}

	_, err := fmt.Fprintf(out, `# bash completion for fixbench
# Install: source <(fixbench --completion bash)

_fixbench() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}

complete -F _fixbench fixbench
`, strings.Join(opts, " "), cases.String())
	return err
}

// zshEscape makes usage text safe inside a zsh _arguments entry.
func zshEscape(s string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`, "'", `'\''`, ":", `\:`)
	return r.Replace(s)
}

func generateZshCompletion(out io.Writer, flags []completionFlag) error {
	var b strings.Builder
	for _, f := range flags {
		fmt.Fprintf(&b, "    '%s[%s]", f.Dash(), zshEscape(f.Usage))
		switch {
		case f.IsFile:
			b.WriteString(":file:_files")
		case len(f.Values) > 0:
			fmt.Fprintf(&b, ":%s:(%s)", f.Name, strings.Join(f.Values, " "))
		case !f.IsBool:
			fmt.Fprintf(&b, ":%s:", f.Name)
		}
		b.WriteString("' \\\n")
	}
	_, err := fmt.Fprintf(out, `#compdef fixbench
# zsh completion for fixbench
# Install: fixbench --completion zsh > "${fpath[1]}/_fixbench"

_fixbench() {
  _arguments \
%s    && return 0
}

_fixbench "$@"
`, b.String())
	return err
}

func generateFishCompletion(out io.Writer, flags []completionFlag) error {
	var b strings.Builder
	b.WriteString("# fish completion for fixbench\n# Install: fixbench --completion fish > ~/.config/fish/completions/fixbench.fish\n\n")
	for _, f := range flags {
		kind := "-l"
		if len(f.Name) == 1 {
			kind = "-s"
		}
		fmt.Fprintf(&b, "complete -c fixbench %s %s -d '%s'", kind, f.Name, strings.ReplaceAll(f.Usage, "'", `\'`))
		switch {
		case f.IsFile:
			b.WriteString(" -r -F")
		case len(f.Values) > 0:
			fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
		case !f.IsBool:
			b.WriteString(" -x")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func generatePowerShellCompletion(out io.Writer, flags []completionFlag) error {
	var names, values strings.Builder
	for i, f := range flags {
		if i > 0 {
			names.WriteString(", ")
		}
		fmt.Fprintf(&names, "'%s'", f.Dash())
		if len(f.Values) > 0 {
			quoted := make([]string, len(f.Values))
			for j, v := range f.Values {
				quoted[j] = "'" + v + "'"
			}
			fmt.Fprintf(&values, "        '%s' = @(%s)\n", f.Dash(), strings.Join(quoted, ", "))
		}
	}
	_, err := fmt.Fprintf(out, `# PowerShell completion for fixbench
# Install: fixbench --completion powershell | Out-String | Invoke-Expression

Register-ArgumentCompleter -Native -CommandName fixbench -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $flags = @(%s)
    $values = @{
%s    }

    $elements = $commandAst.CommandElements
    $prev = if ($elements.Count -ge 2) { $elements[$elements.Count - 1].ToString() } else { '' }
    if ($wordToComplete -ne '' -and $elements.Count -ge 3) {
        $prev = $elements[$elements.Count - 2].ToString()
    }

    $candidates = if ($values.ContainsKey($prev)) { $values[$prev] } else { $flags }
    $candidates | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`, names.String(), values.String())
	return err
}
