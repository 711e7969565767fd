package schedule

import (
	"strings"

	"github.com/D3rkrox/Church/pkg/catalog"
)

// FilterEngine narrows a candidate occurrence list to the user's current
// selection state. All criteria combine conjunctively; empty criteria pass
// everything. The engine never errors: absent or malformed fields simply
// fail their predicate.
type FilterEngine struct{}

func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Apply returns the subset of candidates passing every active criterion.
// Cheap checks (regular-service gate, type, church) run before the ones
// that join against the participant table.
func (e *FilterEngine) Apply(snapshot *catalog.Snapshot, candidates []Occurrence, toggles Toggles, filters Filters) []Occurrence {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	out := make([]Occurrence, 0, len(candidates))
	for _, occ := range candidates {
		if !toggles.IncludeRegularServices && !occ.Record.Category.IsSpecialEvent() {
			continue
		}
		if !matchesSet(filters.EventTypes, occ.Record.EventType) {
			continue
		}
		if !matchesSet(filters.ChurchIds, occ.Record.ChurchId) {
			continue
		}
		if !e.matchesParticipants(snapshot, occ, filters.Participants) {
			continue
		}
		if !e.matchesSearch(snapshot, occ, search) {
			continue
		}
		out = append(out, occ)
	}
	return out
}

// matchesSet implements the exact-match-or-vacuous rule shared by the type
// and church criteria.
func matchesSet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	value = strings.TrimSpace(value)
	for _, s := range selected {
		if strings.TrimSpace(s) == value {
			return true
		}
	}
	return false
}

func (e *FilterEngine) matchesParticipants(snapshot *catalog.Snapshot, occ Occurrence, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	names := snapshot.ParticipantNamesForEvent(occ.Record.EventId)
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if matchesSet(selected, name) {
			return true
		}
	}
	return false
}

func (e *FilterEngine) matchesSearch(snapshot *catalog.Snapshot, occ Occurrence, search string) bool {
	if search == "" {
		return true
	}
	if containsFold(occ.Title, search) || containsFold(occ.Record.EventType, search) {
		return true
	}
	if containsFold(snapshot.ChurchName(occ.Record.ChurchId), search) {
		return true
	}
	for _, name := range snapshot.ParticipantNamesForEvent(occ.Record.EventId) {
		if containsFold(name, search) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring check; needle is expected to
// be lowercased already.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
