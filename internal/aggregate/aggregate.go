// Package aggregate fans a set of resource fetches out across a set of
// configured profiles concurrently, producing one combined report
// (spec.md §4.4).
package aggregate

import (
	"context"
	"sync"
	"time"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

// defaultFetchTimeout bounds a single (profile × resource) fetch (spec.md
// §4.4 step 4).
const defaultFetchTimeout = 30 * time.Second

// ClientFactory builds a REST client for the named profile, returning its
// resolved base URL alongside for report display. A build failure (bad
// credentials, unreachable keyring, malformed URL) is reported, not
// fatal to the run (spec.md §4.4 step 3).
type ClientFactory func(ctx context.Context, profileName string) (client *splunkclient.Client, baseURL string, err error)

// Config configures one aggregation run.
type Config struct {
	Resources []string
	Profiles  []string
	// Catalog is the set of known profile names, used for validation
	// (spec.md §4.4 step 2). Required.
	Catalog map[string]bool
	// NewClient builds a client per profile. Required.
	NewClient ClientFactory
	// FetchTimeout overrides defaultFetchTimeout; zero means use default.
	FetchTimeout time.Duration
	// Now overrides the report timestamp source; nil means time.Now.
	Now func() time.Time
}

// Run validates and executes one aggregation, returning the combined
// Report. A validation failure (unknown resource or profile name) is the
// only error this function returns; every other failure is captured
// per-profile or per-resource inside the Report itself.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	resources := NormalizeResources(cfg.Resources)
	profiles := NormalizeProfiles(cfg.Profiles)

	if err := ValidateResources(resources); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := ValidateProfiles(profiles, cfg.Catalog); err != nil {
		return nil, trace.Wrap(err)
	}

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	results := make([]ProfileResult, len(profiles))
	var wg sync.WaitGroup
	for i, profileName := range profiles {
		wg.Add(1)
		go func(i int, profileName string) {
			defer wg.Done()
			results[i] = fetchProfile(ctx, cfg.NewClient, profileName, resources, timeout)
		}(i, profileName)
	}
	wg.Wait()

	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	return &Report{
		GeneratedAt: now().UTC().Format(time.RFC3339),
		Profiles:    results,
	}, nil
}

func fetchProfile(ctx context.Context, newClient ClientFactory, profileName string, resources []string, timeout time.Duration) ProfileResult {
	client, baseURL, err := newClient(ctx, profileName)
	if err != nil {
		return ProfileResult{Profile: profileName, Err: err.Error()}
	}

	summaries := make([]ResourceSummary, len(resources))
	var wg sync.WaitGroup
	for i, kind := range resources {
		wg.Add(1)
		go func(i int, kind string) {
			defer wg.Done()
			summaries[i] = fetchResource(ctx, client, kind, timeout)
		}(i, kind)
	}
	wg.Wait()

	return ProfileResult{Profile: profileName, BaseURL: baseURL, Summaries: summaries}
}

func fetchResource(ctx context.Context, client *splunkclient.Client, kind string, timeout time.Duration) ResourceSummary {
	fetch, ok := fetchers[kind]
	if !ok {
		return ResourceSummary{Kind: kind, Err: "no fetcher registered for resource kind"}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	count, detail, err := fetch(fetchCtx, client)
	if err != nil {
		return ResourceSummary{Kind: kind, Err: err.Error()}
	}
	return ResourceSummary{Kind: kind, Count: count, Detail: detail}
}
