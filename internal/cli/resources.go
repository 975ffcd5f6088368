package cli

import (
	"context"
	"io"

	"github.com/gravitational/kingpin"

	"github.com/fitchmultz/splunk-tui/internal/format"
	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

// listCommand is a single read-only subcommand over one splunkclient list
// endpoint. Every pure-list resource (roles, saved searches, macros, ...)
// is one instantiation of this type rather than its own hand-written
// Command, the same data-driven trade the TUI's view.go makes for its
// resource screens.
type listCommand[T any] struct {
	name, help, xmlRoot string
	fetch               func(context.Context, *splunkclient.Client) ([]T, error)
	wrap                func([]T) format.ResourceDisplay

	cmd    *kingpin.CmdClause
	count  int
	offset int
}

func newListCommand[T any](name, help, xmlRoot string, fetch func(context.Context, *splunkclient.Client) ([]T, error), wrap func([]T) format.ResourceDisplay) *listCommand[T] {
	return &listCommand[T]{name: name, help: help, xmlRoot: xmlRoot, fetch: fetch, wrap: wrap}
}

func (c *listCommand[T]) Initialize(app *kingpin.Application) {
	c.cmd = app.Command(c.name, c.help)
	c.cmd.Flag("count", "maximum rows to return (0 = all)").IntVar(&c.count)
	c.cmd.Flag("offset", "row offset for pagination").IntVar(&c.offset)
}

func (c *listCommand[T]) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}
	client, _, err := sess.Client(ctx)
	if err != nil {
		return true, err
	}
	items, err := c.fetch(ctx, client)
	if err != nil {
		return true, err
	}
	items = paginate(items, c.offset, c.count)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()
	return true, RenderList(out, items, c.wrap, c.xmlRoot)
}

// singleCommand is a read-only subcommand over a splunkclient endpoint
// that returns one object rather than a slice (health, cluster, kvstore).
type singleCommand[T any] struct {
	name, help, xmlRoot string
	fetch               func(context.Context, *splunkclient.Client) (T, error)
	wrap                func(T) format.ResourceDisplay

	cmd *kingpin.CmdClause
}

func newSingleCommand[T any](name, help, xmlRoot string, fetch func(context.Context, *splunkclient.Client) (T, error), wrap func(T) format.ResourceDisplay) *singleCommand[T] {
	return &singleCommand[T]{name: name, help: help, xmlRoot: xmlRoot, fetch: fetch, wrap: wrap}
}

func (c *singleCommand[T]) Initialize(app *kingpin.Application) {
	c.cmd = app.Command(c.name, c.help)
}

func (c *singleCommand[T]) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}
	client, _, err := sess.Client(ctx)
	if err != nil {
		return true, err
	}
	item, err := c.fetch(ctx, client)
	if err != nil {
		return true, err
	}

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()
	return true, RenderOne(out, item, c.wrap, c.xmlRoot)
}

func newHealthCommand() Command {
	return newSingleCommand("health", "Show the server health check output", "health",
		func(ctx context.Context, c *splunkclient.Client) (*models.HealthCheckOutput, error) { return c.GetHealth(ctx) },
		func(item *models.HealthCheckOutput) format.ResourceDisplay { return format.HealthCheckList{item} },
	)
}

func newClusterCommand() Command {
	return newSingleCommand("cluster", "Show cluster status", "cluster_status",
		func(ctx context.Context, c *splunkclient.Client) (*models.ClusterStatus, error) { return c.GetClusterStatus(ctx) },
		func(item *models.ClusterStatus) format.ResourceDisplay { return format.ClusterStatusList{item} },
	)
}

func newKvstoreCommand() Command {
	return newSingleCommand("kvstore", "Show KV store status", "kvstore_status",
		func(ctx context.Context, c *splunkclient.Client) (*models.KvStoreStatus, error) { return c.GetKvStoreStatus(ctx) },
		func(item *models.KvStoreStatus) format.ResourceDisplay { return format.KvStoreStatusList{item} },
	)
}

func newRolesCommand() Command {
	return newListCommand("roles", "List roles", "role",
		func(ctx context.Context, c *splunkclient.Client) ([]*models.Role, error) { return c.ListRoles(ctx) },
		func(items []*models.Role) format.ResourceDisplay { return format.RoleList(items) },
	)
}

func newSavedSearchesCommand() Command {
	return newListCommand("saved-searches", "List saved searches", "saved_search",
		func(ctx context.Context, c *splunkclient.Client) ([]*models.SavedSearch, error) { return c.ListSavedSearches(ctx) },
		func(items []*models.SavedSearch) format.ResourceDisplay { return format.SavedSearchList(items) },
	)
}

func newMacrosCommand() Command {
	return newListCommand("macros", "List search macros", "macro",
		func(ctx context.Context, c *splunkclient.Client) ([]*models.Macro, error) { return c.ListMacros(ctx) },
		func(items []*models.Macro) format.ResourceDisplay { return format.MacroList(items) },
	)
}

func newForwardersCommand() Command {
	return newListCommand("forwarders", "List deployed forwarders", "forwarder",
		func(ctx context.Context, c *splunkclient.Client) ([]*models.Forwarder, error) { return c.ListForwarders(ctx) },
		func(items []*models.Forwarder) format.ResourceDisplay { return format.ForwarderList(items) },
	)
}

func newLookupsCommand() Command {
	return newListCommand("lookups", "List lookup tables", "lookup_table",
		func(ctx context.Context, c *splunkclient.Client) ([]*models.LookupTable, error) { return c.ListLookupTables(ctx) },
		func(items []*models.LookupTable) format.ResourceDisplay { return format.LookupTableList(items) },
	)
}

func newSearchPeersCommand() Command {
	return newListCommand("search-peers", "List distributed search peers", "search_peer",
		func(ctx context.Context, c *splunkclient.Client) ([]*models.SearchPeer, error) { return c.ListSearchPeers(ctx) },
		func(items []*models.SearchPeer) format.ResourceDisplay { return format.SearchPeerList(items) },
	)
}

func newConfigsCommand() Command {
	return newListCommand("configs", "List configuration files and their stanzas", "config_file",
		func(ctx context.Context, c *splunkclient.Client) ([]*models.ConfigFile, error) { return c.ListAllConfigStanzas(ctx) },
		func(items []*models.ConfigFile) format.ResourceDisplay { return format.ConfigFileList(items) },
	)
}

// inputsCommand adds a --kind filter on top of the generic list shape,
// since ListInputs takes a kind argument ListIndexes et al. don't need.
type inputsCommand struct {
	cmd    *kingpin.CmdClause
	kind   string
	count  int
	offset int
}

func newInputsCommand() Command { return &inputsCommand{} }

func (c *inputsCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("inputs", "List data inputs")
	c.cmd.Flag("kind", "Input kind to filter by (monitor, tcp, udp, script, ...); empty lists all kinds").StringVar(&c.kind)
	c.cmd.Flag("count", "maximum rows to return (0 = all)").IntVar(&c.count)
	c.cmd.Flag("offset", "row offset for pagination").IntVar(&c.offset)
}

func (c *inputsCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}
	client, _, err := sess.Client(ctx)
	if err != nil {
		return true, err
	}
	items, err := client.ListInputs(ctx, c.kind)
	if err != nil {
		return true, err
	}
	items = paginate(items, c.offset, c.count)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()
	return true, RenderList(out, items, func(items []*models.Input) format.ResourceDisplay { return format.InputList(items) }, "input")
}

// firedAlertsCommand takes an optional saved-search name; empty means
// every saved search's fired alerts (ListAllFiredAlerts).
type firedAlertsCommand struct {
	cmd         *kingpin.CmdClause
	savedSearch string
	count       int
	offset      int
}

func newFiredAlertsCommand() Command { return &firedAlertsCommand{} }

func (c *firedAlertsCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("fired-alerts", "List fired alert instances")
	c.cmd.Flag("saved-search", "Limit to alerts fired by this saved search; omit for all").StringVar(&c.savedSearch)
	c.cmd.Flag("count", "maximum rows to return (0 = all)").IntVar(&c.count)
	c.cmd.Flag("offset", "row offset for pagination").IntVar(&c.offset)
}

func (c *firedAlertsCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}
	client, _, err := sess.Client(ctx)
	if err != nil {
		return true, err
	}
	var items []*models.FiredAlert
	if c.savedSearch == "" {
		items, err = client.ListAllFiredAlerts(ctx)
	} else {
		items, err = client.ListFiredAlerts(ctx, c.savedSearch)
	}
	if err != nil {
		return true, err
	}
	items = paginate(items, c.offset, c.count)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()
	return true, RenderList(out, items, func(items []*models.FiredAlert) format.ResourceDisplay { return format.FiredAlertList(items) }, "fired_alert")
}

// auditCommand and internalLogsCommand both take a --count bound passed
// straight to the REST call rather than applied client-side, since the
// server paginates these by count itself.
type auditCommand struct {
	cmd   *kingpin.CmdClause
	count int
}

func newAuditCommand() Command { return &auditCommand{count: 100} }

func (c *auditCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("audit", "List recent audit events")
	c.cmd.Flag("count", "number of events to fetch").Default("100").IntVar(&c.count)
}

func (c *auditCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}
	client, _, err := sess.Client(ctx)
	if err != nil {
		return true, err
	}
	items, err := client.ListAuditEvents(ctx, c.count)
	if err != nil {
		return true, err
	}

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()
	return true, RenderList(out, items, func(items []*models.AuditEvent) format.ResourceDisplay { return format.AuditEventList(items) }, "audit_event")
}

type internalLogsCommand struct {
	cmd   *kingpin.CmdClause
	count int
}

func newInternalLogsCommand() Command { return &internalLogsCommand{count: 100} }

func (c *internalLogsCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("internal-logs", "Tail recent _internal log entries")
	c.cmd.Flag("count", "number of entries to fetch").Default("100").IntVar(&c.count)
}

func (c *internalLogsCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}
	client, _, err := sess.Client(ctx)
	if err != nil {
		return true, err
	}
	items, err := client.ListInternalLogs(ctx, c.count)
	if err != nil {
		return true, err
	}

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()
	return true, RenderList(out, items, func(items []*models.LogEntry) format.ResourceDisplay { return format.LogEntryList(items) }, "log_entry")
}

// licenseCommand groups the three license endpoints under one verb:
// `license usage`, `license pools`, `license stacks`.
type licenseCommand struct {
	usage, pools, stacks *kingpin.CmdClause
}

func newLicenseCommand() Command { return &licenseCommand{} }

func (c *licenseCommand) Initialize(app *kingpin.Application) {
	group := app.Command("license", "Show license usage, pools, or stacks")
	c.usage = group.Command("usage", "Show license usage")
	c.pools = group.Command("pools", "List license pools")
	c.stacks = group.Command("stacks", "List license stacks")
}

func (c *licenseCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	switch selected {
	case c.usage.FullCommand():
		return true, c.renderUsage(ctx, sess, stdout)
	case c.pools.FullCommand():
		return true, c.renderPools(ctx, sess, stdout)
	case c.stacks.FullCommand():
		return true, c.renderStacks(ctx, sess, stdout)
	default:
		return false, nil
	}
}

func (c *licenseCommand) renderUsage(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	items, err := client.ListLicenseUsage(ctx)
	if err != nil {
		return err
	}
	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	return RenderList(out, items, func(items []*models.LicenseUsage) format.ResourceDisplay { return format.LicenseUsageList(items) }, "license_usage")
}

func (c *licenseCommand) renderPools(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	items, err := client.ListLicensePools(ctx)
	if err != nil {
		return err
	}
	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	return RenderList(out, items, func(items []*models.LicensePool) format.ResourceDisplay { return format.LicensePoolList(items) }, "license_pool")
}

func (c *licenseCommand) renderStacks(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	items, err := client.ListLicenseStacks(ctx)
	if err != nil {
		return err
	}
	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	return RenderList(out, items, func(items []*models.LicenseStack) format.ResourceDisplay { return format.LicenseStackList(items) }, "license_stack")
}
