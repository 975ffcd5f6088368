package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gravitational/kingpin"
)

// completionsCommand emits a static shell-completion script for the full
// subcommand tree (spec.md §4.6 shell completions); for bash, zsh and fish,
// --dynamic additionally wires a --profile helper that calls back into the
// hidden `complete` subcommand for profile names. No other field is
// completed dynamically, and no candidates are cached: the TTL is only
// written into the generated script as a comment.
type completionsCommand struct {
	cmd *kingpin.CmdClause

	shell         string
	dynamic       bool
	completionTTL string
}

func newCompletionsCommand() Command { return &completionsCommand{} }

func (c *completionsCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("completions", "Print a shell-completion script")
	c.cmd.Arg("shell", "bash, zsh, fish, powershell, or elvish").Required().EnumVar(&c.shell,
		"bash", "zsh", "fish", "powershell", "elvish")
	c.cmd.Flag("dynamic", "include shell functions that call the hidden complete subcommand").BoolVar(&c.dynamic)
	c.cmd.Flag("completion-cache-ttl", "cache TTL written into the dynamic completion script").Default("30s").StringVar(&c.completionTTL)
}

func (c *completionsCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}

	script, err := renderCompletionScript(c.shell, c.dynamic, c.completionTTL)
	if err != nil {
		return true, err
	}
	fmt.Fprint(stdout, script)
	return true, nil
}

func renderCompletionScript(shell string, dynamic bool, ttl string) (string, error) {
	var b strings.Builder
	switch shell {
	case "bash":
		b.WriteString("# splunk-cli bash completion\n")
		b.WriteString("_splunk_cli() {\n  local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
		b.WriteString("  COMPREPLY=( $(compgen -W \"" + strings.Join(staticSubcommandNames, " ") + "\" -- \"$cur\") )\n")
		if dynamic {
			b.WriteString(dynamicBashHelpers(ttl))
		}
		b.WriteString("}\ncomplete -F _splunk_cli splunk-cli\n")
	case "zsh":
		b.WriteString("#compdef splunk-cli\n_splunk_cli() {\n  local -a cmds\n")
		b.WriteString("  cmds=(" + strings.Join(staticSubcommandNames, " ") + ")\n")
		b.WriteString("  _describe 'command' cmds\n")
		if dynamic {
			b.WriteString(dynamicZshHelpers(ttl))
		}
		b.WriteString("}\n_splunk_cli\n")
	case "fish":
		for _, name := range staticSubcommandNames {
			fmt.Fprintf(&b, "complete -c splunk-cli -n '__fish_use_subcommand' -a '%s'\n", name)
		}
		if dynamic {
			b.WriteString(dynamicFishHelpers(ttl))
		}
	case "powershell":
		b.WriteString("Register-ArgumentCompleter -Native -CommandName splunk-cli -ScriptBlock {\n")
		b.WriteString("  param($wordToComplete)\n")
		b.WriteString("  @(" + strings.Join(quoteAll(staticSubcommandNames), ",") + ") | Where-Object { $_ -like \"$wordToComplete*\" }\n")
		b.WriteString("}\n")
	case "elvish":
		b.WriteString("set edit:completion:arg-completer[splunk-cli] = {|@args|\n")
		b.WriteString("  put " + strings.Join(staticSubcommandNames, " ") + "\n}\n")
	default:
		return "", fmt.Errorf("unsupported shell %q", shell)
	}
	return b.String(), nil
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "'" + n + "'"
	}
	return out
}

// dynamicBashHelpers shells out to `splunk-cli complete profiles` after
// --profile on every completion request; ttl is only recorded as a comment.
func dynamicBashHelpers(ttl string) string {
	return "" +
		"  local prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n" +
		"  case \"$prev\" in\n" +
		"    --profile) COMPREPLY=( $(compgen -W \"$(splunk-cli complete profiles)\" -- \"$cur\") ) ;;\n" +
		"  esac\n" +
		"  # completion-cache-ttl=" + ttl + "\n"
}

func dynamicZshHelpers(ttl string) string {
	return "  # dynamic candidates cached for " + ttl + "\n" +
		"  if [[ ${words[-2]} == --profile ]]; then\n" +
		"    cmds=(${(f)\"$(splunk-cli complete profiles)\"})\n" +
		"  fi\n"
}

func dynamicFishHelpers(ttl string) string {
	return "# dynamic candidates cached for " + ttl + "\n" +
		"complete -c splunk-cli -n '__fish_seen_subcommand_from search jobs indexes' -l profile -a '(splunk-cli complete profiles)'\n"
}

// staticSubcommandNames lists the top-level subcommand verbs for the
// static (non-kingpin-introspected) completion scripts; kept in sync with
// commands() in app.go.
var staticSubcommandNames = []string{
	"health", "cluster", "kvstore", "search", "jobs", "indexes", "apps",
	"users", "roles", "saved-searches", "macros", "forwarders", "inputs",
	"lookups", "search-peers", "fired-alerts", "audit", "internal-logs",
	"configs", "license", "list-all", "doctor", "completions", "complete",
	"config",
}
