package schedule

import (
	"sort"
	"strings"

	"github.com/D3rkrox/Church/pkg/catalog"
)

// ChurchOption is one entry of the church dropdown.
type ChurchOption struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Options holds the currently valid choices for every filter dropdown.
type Options struct {
	EventTypes   []string       `json:"eventTypes"`
	Churches     []ChurchOption `json:"churches"`
	Participants []string       `json:"participants"`
}

// OptionSynchronizer recomputes dropdown options whenever toggle state
// changes and prunes active selections whose option disappeared. It replays
// the series policy without user filters, so the options reflect what the
// toggles allow rather than what the current filters show.
type OptionSynchronizer struct {
	policy      *SeriesPolicy
	singingType string
	revivalType string
}

func NewOptionSynchronizer(policy *SeriesPolicy, singingType, revivalType string) *OptionSynchronizer {
	return &OptionSynchronizer{
		policy:      policy,
		singingType: singingType,
		revivalType: revivalType,
	}
}

// Sync returns the recomputed options and the filter state with stale
// selections removed.
func (s *OptionSynchronizer) Sync(snapshot *catalog.Snapshot, toggles Toggles, view ViewType, filters Filters) (Options, Filters) {
	visibleTypes := s.visibleEventTypes(snapshot, toggles, view)

	pruned := filters
	pruned.EventTypes = intersect(filters.EventTypes, visibleTypes)

	options := Options{
		EventTypes:   sortedKeys(visibleTypes),
		Churches:     s.churchOptions(snapshot),
		Participants: s.participantOptions(snapshot, pruned.EventTypes),
	}

	participantSet := make(map[string]struct{}, len(options.Participants))
	for _, name := range options.Participants {
		participantSet[name] = struct{}{}
	}
	pruned.Participants = intersect(filters.Participants, participantSet)

	return options, pruned
}

// visibleEventTypes replays the category inclusion logic (parent vs.
// instance visibility, regular-service gate) over the raw record set with no
// user filters applied.
func (s *OptionSynchronizer) visibleEventTypes(snapshot *catalog.Snapshot, toggles Toggles, view ViewType) map[string]struct{} {
	candidates := s.policy.BuildCandidates(snapshot, toggles, view)

	types := make(map[string]struct{})
	for _, occ := range candidates {
		if !toggles.IncludeRegularServices && !occ.Record.Category.IsSpecialEvent() {
			continue
		}
		if t := strings.TrimSpace(occ.Record.EventType); t != "" {
			types[t] = struct{}{}
		}
	}
	return types
}

func (s *OptionSynchronizer) churchOptions(snapshot *catalog.Snapshot) []ChurchOption {
	options := make([]ChurchOption, 0, len(snapshot.Churches))
	for _, church := range snapshot.Churches {
		if church.Name == "" {
			continue
		}
		options = append(options, ChurchOption{Id: church.ChurchId, Name: church.Name})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })
	return options
}

// participantOptions applies the secondary narrowing policy: an active
// "singing"-like type restricts the list to guest groups (plus override
// names with no minister or group link), a "revival"-like type restricts it
// to ministers, otherwise all three resolution sources are unioned.
func (s *OptionSynchronizer) participantOptions(snapshot *catalog.Snapshot, activeTypes []string) []string {
	names := make(map[string]struct{})

	switch {
	case containsTypeFold(activeTypes, s.singingType):
		for _, group := range snapshot.Groups {
			if group.Name != "" {
				names[group.Name] = struct{}{}
			}
		}
		for _, p := range snapshot.Participants {
			if p.NameOverride != "" && p.MinisterId == "" && p.GroupId == "" {
				names[p.NameOverride] = struct{}{}
			}
		}
	case containsTypeFold(activeTypes, s.revivalType):
		for _, minister := range snapshot.Ministers {
			if minister.Name != "" {
				names[minister.Name] = struct{}{}
			}
		}
	default:
		for _, p := range snapshot.Participants {
			if name := snapshot.ResolveParticipantName(p); name != "" {
				names[name] = struct{}{}
			}
		}
	}

	return sortedKeys(names)
}

func containsTypeFold(types []string, designated string) bool {
	for _, t := range types {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(designated)) {
			return true
		}
	}
	return false
}

func intersect(selected []string, valid map[string]struct{}) []string {
	kept := make([]string, 0, len(selected))
	for _, s := range selected {
		if _, ok := valid[strings.TrimSpace(s)]; ok {
			kept = append(kept, s)
		}
	}
	return kept
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
