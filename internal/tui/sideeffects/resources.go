package sideeffects

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

// LoadJobs fetches the dispatched-jobs list.
func LoadJobs(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.SearchJobStatus, error) {
		return c.ListSearchJobs(ctx)
	})
}

// LoadIndexes fetches the index list.
func LoadIndexes(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.Index, error) {
		return c.ListIndexes(ctx)
	})
}

// LoadApps fetches the installed-apps list.
func LoadApps(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.App, error) {
		return c.ListApps(ctx)
	})
}

// LoadUsers fetches the user list.
func LoadUsers(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.User, error) {
		return c.ListUsers(ctx)
	})
}

// LoadRoles fetches the role list.
func LoadRoles(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.Role, error) {
		return c.ListRoles(ctx)
	})
}

// LoadSavedSearches fetches saved searches.
func LoadSavedSearches(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.SavedSearch, error) {
		return c.ListSavedSearches(ctx)
	})
}

// LoadMacros fetches SPL macros.
func LoadMacros(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.Macro, error) {
		return c.ListMacros(ctx)
	})
}

// LoadForwarders fetches registered forwarders.
func LoadForwarders(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.Forwarder, error) {
		return c.ListForwarders(ctx)
	})
}

// LoadInputs fetches configured data inputs of every known kind, merged.
func LoadInputs(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	kinds := []string{"monitor", "tcp", "udp", "script"}
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.Input, error) {
		var all []*models.Input
		var firstErr error
		for _, kind := range kinds {
			items, err := c.ListInputs(ctx, kind)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			all = append(all, items...)
		}
		if len(all) == 0 && firstErr != nil {
			return nil, firstErr
		}
		return all, nil
	})
}

// LoadLookups fetches lookup table definitions.
func LoadLookups(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.LookupTable, error) {
		return c.ListLookupTables(ctx)
	})
}

// LoadSearchPeers fetches distributed-search peers.
func LoadSearchPeers(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.SearchPeer, error) {
		return c.ListSearchPeers(ctx)
	})
}

// LoadFiredAlerts fetches fired-alert instances across every saved search.
func LoadFiredAlerts(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.FiredAlert, error) {
		return c.ListAllFiredAlerts(ctx)
	})
}

// LoadAuditEvents fetches recent internal-audit-index events.
func LoadAuditEvents(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.AuditEvent, error) {
		return c.ListAuditEvents(ctx, 100)
	})
}

// LoadInternalLogs fetches recent _internal index events.
func LoadInternalLogs(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.LogEntry, error) {
		return c.ListInternalLogs(ctx, 100)
	})
}

// LoadConfigFiles fetches the whitelisted configuration-file summary.
func LoadConfigFiles(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.ConfigFile, error) {
		return c.ListAllConfigStanzas(ctx)
	})
}

// LoadLicenseUsage fetches license usage slices.
func LoadLicenseUsage(ctx context.Context, c *splunkclient.Client, offset int) tea.Cmd {
	return Dispatch(ctx, offset, func(ctx context.Context) ([]*models.LicenseUsage, error) {
		return c.ListLicenseUsage(ctx)
	})
}

// LoadHealth fetches the platform health summary.
func LoadHealth(ctx context.Context, c *splunkclient.Client) tea.Cmd {
	return Dispatch(ctx, 0, func(ctx context.Context) (*models.HealthCheckOutput, error) {
		return c.GetHealth(ctx)
	})
}

// LoadCluster fetches cluster status.
func LoadCluster(ctx context.Context, c *splunkclient.Client) tea.Cmd {
	return Dispatch(ctx, 0, func(ctx context.Context) (*models.ClusterStatus, error) {
		return c.GetClusterStatus(ctx)
	})
}

// LoadKvstore fetches KV store status.
func LoadKvstore(ctx context.Context, c *splunkclient.Client) tea.Cmd {
	return Dispatch(ctx, 0, func(ctx context.Context) (*models.KvStoreStatus, error) {
		return c.GetKvStoreStatus(ctx)
	})
}

// LoadJobDetail fetches a single job's current status for the job-inspect
// screen.
func LoadJobDetail(ctx context.Context, c *splunkclient.Client, sid string) tea.Cmd {
	return Dispatch(ctx, 0, func(ctx context.Context) (*models.SearchJobStatus, error) {
		return c.GetSearchJobStatus(ctx, sid)
	})
}

// CancelJob cancels a single dispatched job and reports the outcome;
// reloading the job list afterward is the caller's (program.go's)
// responsibility, matching the teacher's "mutation completion is generic,
// reload is the screen's job" split.
func CancelJob(ctx context.Context, c *splunkclient.Client, sid string) tea.Cmd {
	return tea.Batch(LoadingCmd(), OperationCmd("jobs", func() error {
		return c.CancelSearchJob(ctx, sid)
	}, "cancelled job "+sid))
}

// DeleteJob deletes a single dispatched job.
func DeleteJob(ctx context.Context, c *splunkclient.Client, sid string) tea.Cmd {
	return tea.Batch(LoadingCmd(), OperationCmd("jobs", func() error {
		return c.DeleteSearchJob(ctx, sid)
	}, "deleted job "+sid))
}

// CancelJobsBatch cancels every sid sequentially, to avoid overwhelming the
// server with concurrent control calls, then reports one aggregate
// completion message.
func CancelJobsBatch(ctx context.Context, c *splunkclient.Client, sids []string) tea.Cmd {
	return tea.Batch(LoadingCmd(), func() tea.Msg {
		return batchOp("jobs", sids, func(sid string) error { return c.CancelSearchJob(ctx, sid) }, "cancelled")
	})
}

// DeleteJobsBatch deletes every sid sequentially.
func DeleteJobsBatch(ctx context.Context, c *splunkclient.Client, sids []string) tea.Cmd {
	return tea.Batch(LoadingCmd(), func() tea.Msg {
		return batchOp("jobs", sids, func(sid string) error { return c.DeleteSearchJob(ctx, sid) }, "deleted")
	})
}

func batchOp(resource string, names []string, op func(string) error, verb string) action.Action {
	succeeded := 0
	var failures []string
	for _, name := range names {
		if err := op(name); err != nil {
			failures = append(failures, name+": "+err.Error())
			continue
		}
		succeeded++
	}
	if succeeded == 0 && len(failures) > 0 {
		return action.OperationFailed{Resource: resource, Message: "no " + resource + " " + verb + "; " + failures[0]}
	}
	msg := verb + " " + strconv.Itoa(succeeded) + " " + resource
	return action.OperationComplete{Resource: resource, Message: msg}
}

// DeleteUser deletes a user account.
func DeleteUser(ctx context.Context, c *splunkclient.Client, name string) tea.Cmd {
	return tea.Batch(LoadingCmd(), OperationCmd("users", func() error {
		return c.DeleteUser(ctx, name)
	}, "deleted user "+name))
}

// CreateIndex creates a new index.
func CreateIndex(ctx context.Context, c *splunkclient.Client, name string, params map[string]string) tea.Cmd {
	return tea.Batch(LoadingCmd(), OperationCmd("indexes", func() error {
		_, err := c.CreateIndex(ctx, name, params)
		return err
	}, "created index "+name))
}

// ModifyIndex updates an index's settings.
func ModifyIndex(ctx context.Context, c *splunkclient.Client, name string, params map[string]string) tea.Cmd {
	return tea.Batch(LoadingCmd(), OperationCmd("indexes", func() error {
		_, err := c.ModifyIndex(ctx, name, params)
		return err
	}, "modified index "+name))
}

// DeleteIndex deletes an index.
func DeleteIndex(ctx context.Context, c *splunkclient.Client, name string) tea.Cmd {
	return tea.Batch(LoadingCmd(), OperationCmd("indexes", func() error {
		return c.DeleteIndex(ctx, name)
	}, "deleted index "+name))
}

// InstallApp installs an app from a path already on the server.
func InstallApp(ctx context.Context, c *splunkclient.Client, path string, force bool) tea.Cmd {
	return tea.Batch(LoadingCmd(), OperationCmd("apps", func() error {
		_, err := c.InstallApp(ctx, path, force)
		return err
	}, "installed app from "+path))
}
