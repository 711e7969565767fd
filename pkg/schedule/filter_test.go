package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D3rkrox/Church/pkg/catalog"
)

// filterTestSnapshot builds a small congregation dataset:
// - a regular Sunday service at Grace Tabernacle
// - a revival at First Pentecostal featuring a minister
// - a singing at Grace Tabernacle featuring a group and an override name
func filterTestSnapshot() *catalog.Snapshot {
	regular := eventRecord("evt-1", "Morning Worship", catalog.CategoryRegular, "2025-06-08T14:00:00Z", "")
	regular.EventType = "Sunday Morning"
	regular.ChurchId = "c1"

	revival := eventRecord("evt-2", "Summer Revival", catalog.CategorySpecialSingle, "2025-06-10T23:30:00Z", "")
	revival.EventType = "Revival"
	revival.ChurchId = "c2"

	singing := eventRecord("evt-3", "Evening Singing", catalog.CategorySpecialSingle, "2025-06-14T23:00:00Z", "")
	singing.EventType = "Singing"
	singing.ChurchId = "c1"

	return catalog.NewSnapshot(
		[]catalog.EventRecord{regular, revival, singing},
		[]catalog.ChurchRecord{
			{ChurchId: "c1", Name: "Grace Tabernacle", Address: "100 Main St"},
			{ChurchId: "c2", Name: "First Pentecostal", Address: "200 Oak Ave"},
		},
		[]catalog.MinisterRecord{
			{MinisterId: "m1", Name: "Daniel Lee", ChurchId: "c2"},
		},
		[]catalog.GroupRecord{
			{GroupId: "g1", Name: "The Harmony Quartet", ChurchId: "c2"},
		},
		nil,
		[]catalog.EventParticipantRecord{
			{EventId: "evt-2", MinisterId: "m1", Role: "Evangelist"},
			{EventId: "evt-3", GroupId: "g1"},
			{EventId: "evt-3", NameOverride: "John Smith"},
		},
		nil,
	)
}

func buildAndFilter(t *testing.T, snapshot *catalog.Snapshot, toggles Toggles, filters Filters) []Occurrence {
	t.Helper()
	_, policy, engine := newTestPipeline()
	candidates := policy.BuildCandidates(snapshot, toggles, ViewListMonth)
	return engine.Apply(snapshot, candidates, toggles, filters)
}

func titlesOf(occurrences []Occurrence) []string {
	titles := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		titles = append(titles, occ.Title)
	}
	return titles
}

func TestFilterEngine_VacuousFiltersPassEverything(t *testing.T) {
	snapshot := filterTestSnapshot()
	toggles := Toggles{IncludeRegularServices: true}

	_, policy, engine := newTestPipeline()
	candidates := policy.BuildCandidates(snapshot, toggles, ViewListMonth)
	filtered := engine.Apply(snapshot, candidates, toggles, Filters{})

	assert.Equal(t, candidates, filtered)
}

func TestFilterEngine_RegularServiceGate(t *testing.T) {
	snapshot := filterTestSnapshot()

	filtered := buildAndFilter(t, snapshot, Toggles{IncludeRegularServices: false}, Filters{})

	assert.Len(t, filtered, 2)
	for _, occ := range filtered {
		assert.True(t, occ.Record.Category.IsSpecialEvent())
	}
}

func TestFilterEngine_RegularServiceGateHidesLegacyRecords(t *testing.T) {
	legacy := eventRecord("evt-9", "Old Record", catalog.CategoryUnknown, "2025-06-22T14:00:00Z", "")
	snapshot := snapshotWithEvents(legacy)

	filtered := buildAndFilter(t, snapshot, Toggles{IncludeRegularServices: false}, Filters{})
	assert.Empty(t, filtered)
}

func TestFilterEngine_EventTypeFilter(t *testing.T) {
	snapshot := filterTestSnapshot()
	toggles := Toggles{IncludeRegularServices: true}

	filtered := buildAndFilter(t, snapshot, toggles, Filters{EventTypes: []string{"Revival"}})
	assert.Equal(t, []string{"Summer Revival"}, titlesOf(filtered))

	// Multiple selections union within the criterion.
	filtered = buildAndFilter(t, snapshot, toggles, Filters{EventTypes: []string{"Revival", "Singing"}})
	assert.Len(t, filtered, 2)
}

func TestFilterEngine_ChurchFilter(t *testing.T) {
	snapshot := filterTestSnapshot()
	toggles := Toggles{IncludeRegularServices: true}

	filtered := buildAndFilter(t, snapshot, toggles, Filters{ChurchIds: []string{"c2"}})
	assert.Equal(t, []string{"Summer Revival"}, titlesOf(filtered))
}

func TestFilterEngine_ParticipantFilter(t *testing.T) {
	snapshot := filterTestSnapshot()
	toggles := Toggles{IncludeRegularServices: true}

	testCases := []struct {
		name       string
		selected   []string
		wantTitles []string
	}{
		{name: "minister name", selected: []string{"Daniel Lee"}, wantTitles: []string{"Summer Revival"}},
		{name: "group name", selected: []string{"The Harmony Quartet"}, wantTitles: []string{"Evening Singing"}},
		{name: "override name", selected: []string{"John Smith"}, wantTitles: []string{"Evening Singing"}},
		{name: "event without participants never matches", selected: []string{"Nobody"}, wantTitles: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := buildAndFilter(t, snapshot, toggles, Filters{Participants: tc.selected})
			assert.Equal(t, tc.wantTitles, titlesOf(filtered))
		})
	}
}

func TestFilterEngine_ParticipantOverridePrecedence(t *testing.T) {
	// A participant row carrying both an override name and a minister link
	// resolves to the override, so filtering by the minister's name must not
	// match through that row.
	event := eventRecord("evt-1", "Guest Night", catalog.CategorySpecialSingle, "2025-06-10T23:30:00Z", "")
	snapshot := catalog.NewSnapshot(
		[]catalog.EventRecord{event},
		nil,
		[]catalog.MinisterRecord{{MinisterId: "m1", Name: "Daniel Lee"}},
		nil, nil,
		[]catalog.EventParticipantRecord{
			{EventId: "evt-1", MinisterId: "m1", NameOverride: "Visiting Speaker"},
		},
		nil,
	)

	filtered := buildAndFilter(t, snapshot, Toggles{IncludeRegularServices: true}, Filters{Participants: []string{"Visiting Speaker"}})
	assert.Len(t, filtered, 1)

	filtered = buildAndFilter(t, snapshot, Toggles{IncludeRegularServices: true}, Filters{Participants: []string{"Daniel Lee"}})
	assert.Empty(t, filtered)
}

func TestFilterEngine_Search(t *testing.T) {
	snapshot := filterTestSnapshot()
	toggles := Toggles{IncludeRegularServices: true}

	testCases := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{name: "title substring case-insensitive", query: "SUMMER", wantTitles: []string{"Summer Revival"}},
		{name: "event type", query: "singing", wantTitles: []string{"Evening Singing"}},
		{name: "church name", query: "grace", wantTitles: []string{"Morning Worship", "Evening Singing"}},
		{name: "participant override name", query: "smith", wantTitles: []string{"Evening Singing"}},
		{name: "no match", query: "zzz", wantTitles: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := buildAndFilter(t, snapshot, toggles, Filters{Search: tc.query})
			assert.Equal(t, tc.wantTitles, titlesOf(filtered))
		})
	}
}

func TestFilterEngine_CriteriaCombineConjunctively(t *testing.T) {
	snapshot := filterTestSnapshot()
	toggles := Toggles{IncludeRegularServices: true}

	filtered := buildAndFilter(t, snapshot, toggles, Filters{
		EventTypes: []string{"Singing"},
		ChurchIds:  []string{"c2"},
	})
	assert.Empty(t, filtered)

	filtered = buildAndFilter(t, snapshot, toggles, Filters{
		EventTypes: []string{"Singing"},
		ChurchIds:  []string{"c1"},
	})
	assert.Equal(t, []string{"Evening Singing"}, titlesOf(filtered))
}
