package action

// SearchExecute dispatches a new SPL search from the query box. Query is
// passed through as given; no length or syntax check is applied before the
// job is dispatched.
type SearchExecute struct {
	Query        string
	EarliestTime string
	LatestTime   string
}

func (SearchExecute) isAction() {}

// SearchJobCreated reports the SID of a freshly dispatched job, before its
// results are ready.
type SearchJobCreated struct {
	SID string
	Err error
}

func (SearchJobCreated) isAction() {}

// SearchResultsPage requests a page of result rows for an already-completed
// job. Offset 0 replaces the cached page; Offset > 0 appends.
type SearchResultsPage struct {
	SID    string
	Count  int
	Offset int
}

func (SearchResultsPage) isAction() {}

// SearchResultsLoaded reports a page of result rows.
type SearchResultsLoaded struct {
	Rows   []map[string]string
	Offset int
	Err    error
}

func (SearchResultsLoaded) isAction() {}

// SearchCanceled reports that a server-side job cancel request completed
// (opportunistic; the local poll loop stops regardless via Cancel).
type SearchCanceled struct {
	SID string
	Err error
}

func (SearchCanceled) isAction() {}
