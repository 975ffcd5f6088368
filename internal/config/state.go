package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// SearchDefaults is the persisted search-defaults layer of the override
// chain (spec §4.2 step 2).
type SearchDefaults struct {
	EarliestTime string `json:"earliest_time"`
	LatestTime   string `json:"latest_time"`
	MaxResults   int    `json:"max_results"`
}

// InternalLogDefaults configures the internal-log tailing screen.
type InternalLogDefaults struct {
	Index      string `json:"index"`
	Sourcetype string `json:"sourcetype"`
}

// SearchHistoryEntry is one record in the bounded search-history ring.
type SearchHistoryEntry struct {
	Query string    `json:"query"`
	RanAt time.Time `json:"ran_at"`
}

// searchHistoryCapacity bounds the ring buffer (spec §3 "bounded ring").
const searchHistoryCapacity = 200

// PersistedState is the durable JSON document written to config.json
// (spec §3, §6).
type PersistedState struct {
	Profiles             map[string]*Profile  `json:"profiles"`
	profileOrder         []string             // preserves insertion order; not serialized directly
	SearchDefaults        SearchDefaults       `json:"search_defaults"`
	InternalLogDefaults   InternalLogDefaults  `json:"internal_log_defaults"`
	OnboardingChecklist   uint8                `json:"onboarding_checklist"`
	KeybindingOverrides   map[string]string    `json:"keybinding_overrides"`
	Theme                 string               `json:"theme"`
	AutoRefresh           bool                 `json:"auto_refresh"`
	SortColumn             string              `json:"sort_column"`
	SortDescending         bool                `json:"sort_descending"`
	SearchHistory          []SearchHistoryEntry `json:"search_history"`
}

// persistedStateWire is the literal JSON shape; it carries an ordered
// ProfileOrder list alongside the map so profile insertion order survives a
// round trip, since Go map iteration order is not stable.
type persistedStateWire struct {
	Profiles            map[string]*Profile  `json:"profiles"`
	ProfileOrder        []string             `json:"profile_order"`
	SearchDefaults       SearchDefaults       `json:"search_defaults"`
	InternalLogDefaults  InternalLogDefaults  `json:"internal_log_defaults"`
	OnboardingChecklist  uint8                `json:"onboarding_checklist"`
	KeybindingOverrides  map[string]string    `json:"keybinding_overrides"`
	Theme                string               `json:"theme"`
	AutoRefresh          bool                 `json:"auto_refresh"`
	SortColumn            string              `json:"sort_column"`
	SortDescending        bool                `json:"sort_descending"`
	SearchHistory         []SearchHistoryEntry `json:"search_history"`
}

// DefaultState returns a PersistedState populated entirely from built-in
// defaults (spec §4.2 step 1), used whenever no file exists yet or the
// existing file cannot be decoded.
func DefaultState() *PersistedState {
	return &PersistedState{
		Profiles: map[string]*Profile{},
		SearchDefaults: SearchDefaults{
			EarliestTime: DefaultEarliestTime,
			LatestTime:   DefaultLatestTime,
			MaxResults:   DefaultMaxResults,
		},
		InternalLogDefaults: InternalLogDefaults{
			Index:      "_internal",
			Sourcetype: "splunkd",
		},
		KeybindingOverrides: map[string]string{},
		Theme:               "default",
	}
}

func (s *PersistedState) MarshalJSON() ([]byte, error) {
	order := s.profileOrder
	if order == nil {
		order = make([]string, 0, len(s.Profiles))
		for name := range s.Profiles {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	return json.MarshalIndent(persistedStateWire{
		Profiles:            s.Profiles,
		ProfileOrder:        order,
		SearchDefaults:       s.SearchDefaults,
		InternalLogDefaults:  s.InternalLogDefaults,
		OnboardingChecklist:  s.OnboardingChecklist,
		KeybindingOverrides:  s.KeybindingOverrides,
		Theme:                s.Theme,
		AutoRefresh:          s.AutoRefresh,
		SortColumn:            s.SortColumn,
		SortDescending:        s.SortDescending,
		SearchHistory:         s.SearchHistory,
	}, "", "  ")
}

func (s *PersistedState) UnmarshalJSON(data []byte) error {
	var wire persistedStateWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*s = PersistedState{
		Profiles:            wire.Profiles,
		profileOrder:        wire.ProfileOrder,
		SearchDefaults:       wire.SearchDefaults,
		InternalLogDefaults:  wire.InternalLogDefaults,
		OnboardingChecklist:  wire.OnboardingChecklist,
		KeybindingOverrides:  wire.KeybindingOverrides,
		Theme:                wire.Theme,
		AutoRefresh:          wire.AutoRefresh,
		SortColumn:            wire.SortColumn,
		SortDescending:        wire.SortDescending,
		SearchHistory:         wire.SearchHistory,
	}
	if s.Profiles == nil {
		s.Profiles = map[string]*Profile{}
	}
	if s.KeybindingOverrides == nil {
		s.KeybindingOverrides = map[string]string{}
	}
	return nil
}

// ProfileNames returns profile names in persisted (insertion) order.
func (s *PersistedState) ProfileNames() []string {
	if len(s.profileOrder) == len(s.Profiles) {
		return append([]string(nil), s.profileOrder...)
	}
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UpsertProfile adds or replaces a profile, preserving insertion order for a
// new name and leaving it in place for an existing one.
func (s *PersistedState) UpsertProfile(p *Profile) {
	if s.Profiles == nil {
		s.Profiles = map[string]*Profile{}
	}
	if _, exists := s.Profiles[p.Name]; !exists {
		s.profileOrder = append(s.ProfileNames(), p.Name)
	}
	s.Profiles[p.Name] = p
}

// PromoteProfile moves name to the front of profileOrder, making it the
// one Resolve falls back to when no profile is named explicitly. A no-op
// if name isn't a known profile.
func (s *PersistedState) PromoteProfile(name string) {
	if _, ok := s.Profiles[name]; !ok {
		return
	}
	order := s.ProfileNames()
	out := make([]string, 0, len(order))
	out = append(out, name)
	for _, n := range order {
		if n != name {
			out = append(out, n)
		}
	}
	s.profileOrder = out
}

// DeleteProfile removes a profile by name.
func (s *PersistedState) DeleteProfile(name string) {
	order := s.ProfileNames()
	delete(s.Profiles, name)
	out := order[:0]
	for _, n := range order {
		if n != name {
			out = append(out, n)
		}
	}
	s.profileOrder = out
}

// PushSearchHistory appends a query to the bounded ring, evicting the
// oldest entry once at capacity.
func (s *PersistedState) PushSearchHistory(query string, ranAt time.Time) {
	s.SearchHistory = append(s.SearchHistory, SearchHistoryEntry{Query: query, RanAt: ranAt})
	if len(s.SearchHistory) > searchHistoryCapacity {
		s.SearchHistory = s.SearchHistory[len(s.SearchHistory)-searchHistoryCapacity:]
	}
}

// Store persists and loads PersistedState at a fixed path, implementing the
// atomic-write-via-rename and corrupt-file-quarantine behavior of spec §4.2.
type Store struct {
	Path  string
	Clock clockwork
	Log   *logrus.Entry
}

// clockwork is the narrow subset of clockwork.Clock this package needs,
// declared locally so Store depends only on Now();
// github.com/jonboulle/clockwork.Clock satisfies it.
type clockwork interface {
	Now() time.Time
}

// NewStore constructs a Store, defaulting Clock and Log the way the
// teacher's Config.CheckAndSetDefaults helpers do.
func NewStore(path string, clock clockwork, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.WithField("component", "config")
	}
	return &Store{Path: path, Clock: clock, Log: log}
}

// Load reads PersistedState from disk. A missing file returns DefaultState
// with no error. A corrupt file is quarantined to
// config.corrupt.<unix-ts> and DefaultState is returned; if the quarantine
// rename itself fails, the corrupt file is left in place untouched and
// DefaultState is still returned (spec invariant: "original never silently
// deleted").
func (s *Store) Load() (*PersistedState, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultState(), nil
		}
		return nil, trace.Wrap(err, "reading config file %q", s.Path)
	}

	state := &PersistedState{}
	if err := json.Unmarshal(data, state); err != nil {
		s.Log.WithError(err).Warnf("config file %q is corrupt, quarantining and falling back to defaults", s.Path)
		base := s.Path[:len(s.Path)-len(filepath.Ext(s.Path))]
		quarantinePath := fmt.Sprintf("%s.corrupt.%d", base, s.Clock.Now().Unix())
		if renameErr := os.Rename(s.Path, quarantinePath); renameErr != nil {
			s.Log.WithError(renameErr).Warnf("could not quarantine corrupt config file %q; leaving it in place", s.Path)
		}
		return DefaultState(), nil
	}
	return state, nil
}

// Save writes PersistedState atomically: serialize to a temp file in the
// same directory, fsync, then rename over the target so readers never
// observe a partial write.
func (s *Store) Save(state *PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return trace.Wrap(err, "encoding config state")
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return trace.Wrap(err, "creating config directory %q", dir)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return trace.Wrap(err, "creating temp config file")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return trace.Wrap(err, "writing temp config file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return trace.Wrap(err, "fsyncing temp config file")
	}
	if err := tmp.Close(); err != nil {
		return trace.Wrap(err, "closing temp config file")
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return trace.Wrap(err, "chmod temp config file")
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return trace.Wrap(err, "renaming temp config file into place")
	}
	return nil
}
