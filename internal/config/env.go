package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/secret"
)

// Environment variable names recognized by the override chain (spec §6).
// These names are load-bearing: they match spec §6's literal table exactly
// and must not be renamed or prefixed.
const (
	EnvProfile      = "SPLUNK_PROFILE"
	EnvBaseURL      = "SPLUNK_BASE_URL"
	EnvAPIToken     = "SPLUNK_API_TOKEN"
	EnvUsername     = "SPLUNK_USERNAME"
	EnvPassword     = "SPLUNK_PASSWORD"
	EnvSkipTLS      = "SPLUNK_SKIP_VERIFY"
	EnvConfigPath   = "SPLUNK_CONFIG_PATH"
	EnvEarliestTime = "SPLUNK_EARLIEST_TIME"
	EnvLatestTime   = "SPLUNK_LATEST_TIME"
	EnvMaxResults   = "SPLUNK_MAX_RESULTS"
	EnvDotenvOff    = "DOTENV_DISABLED"

	// EnvTimeout, EnvConfigDir, and EnvMasterKey are not named in spec §6's
	// table; they stay under the SPLUNK_TUI_ namespace as this
	// implementation's own extensions rather than spec-mandated variables.
	EnvTimeout   = "SPLUNK_TUI_TIMEOUT"
	EnvConfigDir = "SPLUNK_TUI_CONFIG_DIR"
	EnvMasterKey = "SPLUNK_TUI_MASTER_KEY"
)

// EnvOverrides is the environment-variable layer of the override chain
// (spec §4.2 step 4), already parsed and type-checked.
type EnvOverrides struct {
	ProfileName   string
	BaseURL       string
	APIToken      secret.Value
	Username      string
	Password      secret.Value
	SkipTLSVerify *bool
	Timeout       time.Duration
	EarliestTime  string
	LatestTime    string
	MaxResults    *int
	ConfigPath    string
}

// InvalidValue reports a malformed environment variable without echoing its
// raw value, since it may itself be the offending secret (spec §8
// non-disclosure invariant).
type InvalidValue struct {
	Var    string
	Reason string
}

func (e *InvalidValue) Error() string {
	return "environment variable " + e.Var + " is invalid: " + e.Reason
}

// LoadEnvOverrides reads EnvOverrides from the process environment. It does
// not itself load a .env file; call LoadDotenv first if dotenv support is
// wanted.
func LoadEnvOverrides(lookup func(string) (string, bool)) (EnvOverrides, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var out EnvOverrides

	if v, ok := lookup(EnvProfile); ok {
		out.ProfileName = v
	}
	if v, ok := lookup(EnvBaseURL); ok {
		out.BaseURL = v
	}
	if v, ok := lookup(EnvAPIToken); ok {
		out.APIToken = secret.New(v)
	}
	if v, ok := lookup(EnvUsername); ok {
		out.Username = v
	}
	if v, ok := lookup(EnvPassword); ok {
		out.Password = secret.New(v)
	}
	if v, ok := lookup(EnvSkipTLS); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return out, trace.Wrap(&InvalidValue{Var: EnvSkipTLS, Reason: "must be a boolean"})
		}
		out.SkipTLSVerify = &b
	}
	if v, ok := lookup(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return out, trace.Wrap(&InvalidValue{Var: EnvTimeout, Reason: "must be a Go duration, e.g. 30s"})
		}
		out.Timeout = d
	}
	if v, ok := lookup(EnvEarliestTime); ok {
		out.EarliestTime = v
	}
	if v, ok := lookup(EnvLatestTime); ok {
		out.LatestTime = v
	}
	if v, ok := lookup(EnvMaxResults); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return out, trace.Wrap(&InvalidValue{Var: EnvMaxResults, Reason: "must be an integer"})
		}
		out.MaxResults = &n
	}
	if v, ok := lookup(EnvConfigPath); ok {
		out.ConfigPath = v
	}
	return out, nil
}

// LoadDotenv populates the process environment from a .env file at path,
// without overwriting variables already set, unless DOTENV_DISABLED is set
// to a truthy value. Parse errors never include the file's contents in the
// returned error, since a malformed line may itself contain a secret value
// (spec §8 non-disclosure invariant).
func LoadDotenv(path string) error {
	if disabled, _ := strconv.ParseBool(os.Getenv(EnvDotenvOff)); disabled {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return trace.Wrap(err, "opening dotenv file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return trace.BadParameter("dotenv file: line %d is not in KEY=VALUE form", lineNo)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return trace.BadParameter("dotenv file: line %d has an empty key", lineNo)
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, already := os.LookupEnv(key); already {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return trace.Wrap(err, "setting environment variable from dotenv file")
		}
	}
	if err := scanner.Err(); err != nil {
		return trace.Wrap(err, "reading dotenv file")
	}
	return nil
}
