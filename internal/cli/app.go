// Package cli implements splunk-cli's command surface: a kingpin
// Application tree, one Command per subcommand family, and the shared
// Session/Output plumbing every command uses to reach a configured REST
// client and render its results (spec.md §4.6). Grounded on
// tool/tctl/common/tctl.go's GlobalCLIFlags/CLICommand/Run split.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gravitational/kingpin"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"

	"github.com/fitchmultz/splunk-tui/internal/logging"
)

const appHelp = `splunk-cli is a command-line client for a Splunk Enterprise REST API: search dispatch, index and user administration, saved searches, health and cluster diagnostics, and multi-instance fan-out, all against profiles stored in the local config.`

// Command is implemented by every subcommand family. Initialize plugs the
// family's kingpin.CmdClause tree (and its flags) into app; TryRun checks
// whether selected belongs to this family and, if so, executes it.
type Command interface {
	Initialize(app *kingpin.Application)
	TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (matched bool, err error)
}

// commands lists every subcommand family, in the order they appear in
// --help.
func commands() []Command {
	return []Command{
		newHealthCommand(),
		newClusterCommand(),
		newKvstoreCommand(),
		newSearchCommand(),
		newJobsCommand(),
		newIndexesCommand(),
		newAppsCommand(),
		newUsersCommand(),
		newRolesCommand(),
		newSavedSearchesCommand(),
		newMacrosCommand(),
		newForwardersCommand(),
		newInputsCommand(),
		newLookupsCommand(),
		newSearchPeersCommand(),
		newFiredAlertsCommand(),
		newAuditCommand(),
		newInternalLogsCommand(),
		newConfigsCommand(),
		newLicenseCommand(),
		newListAllCommand(),
		newDoctorCommand(),
		newCompletionsCommand(),
		newCompleteCommand(),
		newConfigCommand(),
	}
}

// Run parses args and dispatches to the matching Command, returning the
// process exit code (spec.md §4.6 exit-code taxonomy). stdout/stderr are
// parameterized for testability.
func Run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("splunk-cli", appHelp)
	app.AllRepeatable(true)
	app.HelpFlag.Short('h')

	var flags GlobalFlags
	app.Flag("base-url", "Splunk management base URL, overriding the active profile").Short('b').StringVar(&flags.BaseURL)
	app.Flag("username", "Session-auth username, overriding the active profile").Short('u').StringVar(&flags.Username)
	app.Flag("password", "Session-auth password, overriding the active profile").StringVar(&flags.Password)
	app.Flag("api-token", "API token, overriding the active profile").Short('a').StringVar(&flags.APIToken)
	app.Flag("skip-verify", "Skip TLS certificate verification").BoolVar(&flags.SkipVerify)
	app.Flag("profile", "Named profile to use instead of the default").StringVar(&flags.ProfileName)
	app.Flag("output", "Output format: table, json, ndjson, csv, xml").Short('o').StringVar(&flags.Output)
	app.Flag("output-file", "Write output to a file instead of stdout").StringVar(&flags.OutputFile)
	app.Flag("config-path", "Path to config.json, overriding the default location").StringVar(&flags.ConfigPath)
	app.Flag("log-dir", "Directory for CLI debug logs").StringVar(&flags.LogDir)
	app.Flag("debug", "Enable verbose logging to stderr").Short('d').BoolVar(&flags.Debug)

	cmds := commands()
	for _, c := range cmds {
		c.Initialize(app)
	}

	selected, err := app.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, trace.Wrap(err))
		return ExitGeneral
	}

	level := logrus.WarnLevel
	if flags.Debug {
		level = logrus.DebugLevel
	}
	if err := logging.Init(logging.ForCLI, level, flags.LogDir); err != nil {
		fmt.Fprintln(stderr, trace.Wrap(err, "initializing logging"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sess := NewSession(&flags)

	var matched bool
	for _, c := range cmds {
		matched, err = c.TryRun(ctx, selected, sess, stdout, stderr)
		if matched {
			break
		}
	}
	if !matched {
		fmt.Fprintf(stderr, "unrecognized command %q\n", selected)
		return ExitGeneral
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitCodeForError(err)
	}
	return ExitSuccess
}

// Main is the entry point cmd/splunk-cli calls.
func Main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
