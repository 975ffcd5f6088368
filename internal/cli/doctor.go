package cli

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/gravitational/kingpin"
	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/config"
)

// cliVersion is stamped at build time in a real release; a constant here
// keeps the doctor report self-contained without a linker flag dependency.
const cliVersion = "dev"

// doctorCheck is one named diagnostic step (spec.md §4.6 doctor
// subcommand): config_load, auth_strategy, client_build, and one per
// endpoint probe.
type doctorCheck struct {
	Name string `json:"name"`
	Ok   bool   `json:"ok"`
	Err  string `json:"error,omitempty"`
}

// doctorReport is the full diagnostic document; HealthOutput and
// PartialErrors are the two fields --bundle redacts in the archived copy.
type doctorReport struct {
	CLIVersion    string        `json:"cli_version"`
	OS            string        `json:"os"`
	Arch          string        `json:"arch"`
	GeneratedAt   string        `json:"generated_at"`
	ConfigSummary configSummary `json:"config_summary,omitempty"`
	Checks        []doctorCheck `json:"checks"`
	HealthOutput  any           `json:"health_output,omitempty"`
	PartialErrors []string      `json:"partial_errors,omitempty"`
}

type configSummary struct {
	BaseURL    string `json:"base_url"`
	AuthKind   string `json:"auth_kind"`
	SkipVerify bool   `json:"skip_verify"`
	Timeout    string `json:"timeout"`
	MaxRetries int    `json:"max_retries"`
}

type doctorCommand struct {
	cmd         *kingpin.CmdClause
	bundlePath  string
	includeLogs bool
}

func newDoctorCommand() Command { return &doctorCommand{} }

func (c *doctorCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("doctor", "Diagnose configuration and connectivity problems")
	c.cmd.Flag("bundle", "write a redacted support bundle to this zip path").StringVar(&c.bundlePath)
	c.cmd.Flag("include-logs", "include recent internal logs in the bundle").BoolVar(&c.includeLogs)
}

func (c *doctorCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}

	report := c.build(ctx, sess)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()

	if err := writeDoctorReport(out, &report); err != nil {
		return true, err
	}

	if c.bundlePath != "" {
		if err := writeSupportBundle(c.bundlePath, &report, sess, c.includeLogs); err != nil {
			return true, trace.Wrap(err, "writing support bundle")
		}
		fmt.Fprintf(stdout, "wrote support bundle to %s\n", c.bundlePath)
	}
	return true, nil
}

func (c *doctorCommand) build(ctx context.Context, sess *Session) doctorReport {
	report := doctorReport{
		CLIVersion:  cliVersion,
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		GeneratedAt: sess.Clock.Now().UTC().Format(time.RFC3339),
	}

	if _, err := sess.State(); err != nil {
		report.Checks = append(report.Checks, doctorCheck{Name: "config_load", Ok: false, Err: err.Error()})
		return report
	}
	report.Checks = append(report.Checks, doctorCheck{Name: "config_load", Ok: true})

	snap, err := sess.Snapshot()
	if err != nil {
		report.Checks = append(report.Checks, doctorCheck{Name: "auth_strategy", Ok: false, Err: err.Error()})
		return report
	}
	report.ConfigSummary = configSummary{
		BaseURL:    snap.Profile.BaseURL,
		AuthKind:   authKindString(snap.Profile.Auth.Kind),
		SkipVerify: snap.Profile.SkipTLSVerify,
		Timeout:    snap.Profile.Timeout.String(),
		MaxRetries: snap.Profile.MaxRetries,
	}
	report.Checks = append(report.Checks, doctorCheck{Name: "auth_strategy", Ok: true})

	client, _, err := sess.Client(ctx)
	if err != nil {
		report.Checks = append(report.Checks, doctorCheck{Name: "client_build", Ok: false, Err: err.Error()})
		return report
	}
	report.Checks = append(report.Checks, doctorCheck{Name: "client_build", Ok: true})

	health, err := client.GetHealth(ctx)
	if err != nil {
		report.Checks = append(report.Checks, doctorCheck{Name: "probe:health", Ok: false, Err: err.Error()})
		report.PartialErrors = append(report.PartialErrors, "health: "+err.Error())
	} else {
		report.Checks = append(report.Checks, doctorCheck{Name: "probe:health", Ok: true})
		report.HealthOutput = health
	}

	if _, err := client.ListIndexes(ctx); err != nil {
		report.Checks = append(report.Checks, doctorCheck{Name: "probe:indexes", Ok: false, Err: err.Error()})
		report.PartialErrors = append(report.PartialErrors, "indexes: "+err.Error())
	} else {
		report.Checks = append(report.Checks, doctorCheck{Name: "probe:indexes", Ok: true})
	}

	return report
}

func authKindString(kind config.AuthKind) string {
	switch kind {
	case config.AuthAPIToken:
		return "api_token"
	case config.AuthSessionCreds:
		return "session_creds"
	default:
		return "none"
	}
}

func writeDoctorReport(out *Output, report *doctorReport) error {
	if out.Format == "" || out.Format == "table" {
		return writeDoctorReportTable(out.Writer, report)
	}
	enc := json.NewEncoder(out.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeDoctorReportTable(w io.Writer, report *doctorReport) error {
	fmt.Fprintf(w, "splunk-cli %s (%s/%s) — %s\n", report.CLIVersion, report.OS, report.Arch, report.GeneratedAt)
	fmt.Fprintf(w, "base url: %s  auth: %s  skip-verify: %v  timeout: %s  retries: %d\n",
		report.ConfigSummary.BaseURL, report.ConfigSummary.AuthKind, report.ConfigSummary.SkipVerify,
		report.ConfigSummary.Timeout, report.ConfigSummary.MaxRetries)
	for _, check := range report.Checks {
		status := "ok"
		if !check.Ok {
			status = "FAIL: " + check.Err
		}
		fmt.Fprintf(w, "  %-20s %s\n", check.Name, status)
	}
	return nil
}

// writeSupportBundle archives the report (redacted) plus a redacted
// environment.txt into a zip at path (spec.md §4.6: "health_output and
// partial_errors redacted from the bundle copy").
func writeSupportBundle(path string, report *doctorReport, sess *Session, includeLogs bool) error {
	f, err := os.Create(path)
	if err != nil {
		return trace.Wrap(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	redacted := *report
	redacted.HealthOutput = nil
	redacted.PartialErrors = nil

	reportWriter, err := zw.Create("doctor_report.json")
	if err != nil {
		return trace.Wrap(err)
	}
	enc := json.NewEncoder(reportWriter)
	enc.SetIndent("", "  ")
	if err := enc.Encode(redacted); err != nil {
		return trace.Wrap(err)
	}

	envWriter, err := zw.Create("environment.txt")
	if err != nil {
		return trace.Wrap(err)
	}
	for _, name := range redactedEnvVars {
		if _, ok := os.LookupEnv(name); ok {
			fmt.Fprintf(envWriter, "%s=***REDACTED***\n", name)
		}
	}

	if includeLogs {
		logsWriter, err := zw.Create("internal_logs.json")
		if err != nil {
			return trace.Wrap(err)
		}
		client, _, err := sess.Client(context.Background())
		if err == nil {
			if logs, err := client.ListInternalLogs(context.Background(), 200); err == nil {
				enc := json.NewEncoder(logsWriter)
				enc.SetIndent("", "  ")
				_ = enc.Encode(logs)
			}
		}
	}

	return nil
}

var redactedEnvVars = []string{
	config.EnvProfile,
	config.EnvBaseURL,
	config.EnvAPIToken,
	config.EnvUsername,
	config.EnvPassword,
	config.EnvSkipTLS,
	config.EnvTimeout,
	config.EnvEarliestTime,
	config.EnvLatestTime,
	config.EnvMaxResults,
	config.EnvConfigPath,
	config.EnvMasterKey,
}
