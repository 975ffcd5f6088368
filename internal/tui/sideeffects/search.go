package sideeffects

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/inbox"
)

// ExecuteSearch dispatches a new job and polls it to completion, emitting
// Progress updates as it goes, then fetches the first page of results. It
// is one long-running Cmd rather than the usual Dispatch/Load split
// because the search screen's semantics (spec.md §4.5) require progress
// reporting mid-flight, which a single fetch-then-report Cmd can't do;
// inbox.TrySend is used for the progress callback since a dropped
// progress tick is harmless and must never block the poll loop itself.
func ExecuteSearch(ctx context.Context, c *splunkclient.Client, program inbox.Sender, query, earliest, latest string, maxResults int) tea.Cmd {
	return tea.Batch(LoadingCmd(), func() tea.Msg {
		status, err := c.SearchWithProgress(ctx, splunkclient.SearchParams{
			Query:        query,
			EarliestTime: earliest,
			LatestTime:   latest,
			MaxResults:   maxResults,
		}, func(fraction float64) {
			if program != nil {
				program.Send(action.Progress{Fraction: fraction})
			}
		})
		if err != nil {
			return action.SearchResultsLoaded{Err: err}
		}
		if status.IsFailed {
			return action.SearchResultsLoaded{Err: errSearchFailed(status.Name)}
		}

		rows, err := c.GetSearchJobResults(ctx, status.Name, maxResults, 0)
		return action.SearchResultsLoaded{Rows: rows, Offset: 0, Err: err}
	})
}

// LoadSearchResultsPage fetches a subsequent page of an already-completed
// job's results.
func LoadSearchResultsPage(ctx context.Context, c *splunkclient.Client, sid string, count, offset int) tea.Cmd {
	return tea.Batch(LoadingCmd(), func() tea.Msg {
		rows, err := c.GetSearchJobResults(ctx, sid, count, offset)
		return action.SearchResultsLoaded{Rows: rows, Offset: offset, Err: err}
	})
}

// CancelSearch opportunistically asks the server to cancel sid; the local
// poll loop is stopped independently by canceling ctx via the shared
// cancellation token, so a failure here is logged as a toast rather than
// treated as fatal.
func CancelSearch(ctx context.Context, c *splunkclient.Client, sid string) tea.Cmd {
	return func() tea.Msg {
		err := c.CancelSearchJob(ctx, sid)
		return action.SearchCanceled{SID: sid, Err: err}
	}
}

type searchFailedError struct{ sid string }

func (e searchFailedError) Error() string { return "search job " + e.sid + " failed" }

func errSearchFailed(sid string) error { return searchFailedError{sid: sid} }
