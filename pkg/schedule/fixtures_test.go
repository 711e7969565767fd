package schedule

import (
	"time"

	"github.com/D3rkrox/Church/pkg/catalog"
)

const testFallbackZone = "America/Chicago"

func mustInstant(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// eventRecord builds a usable EventRecord with consistent raw and parsed
// instants.
func eventRecord(id, title string, category catalog.SourceCategory, startRaw, endRaw string) catalog.EventRecord {
	record := catalog.EventRecord{
		EventId:  id,
		Title:    title,
		Category: category,
		StartRaw: startRaw,
		EndRaw:   endRaw,
	}
	if startRaw != "" {
		record.Start = mustInstant(startRaw)
	}
	if endRaw != "" {
		record.End = mustInstant(endRaw)
		record.HasEnd = true
	}
	return record
}

func snapshotWithEvents(events ...catalog.EventRecord) *catalog.Snapshot {
	return catalog.NewSnapshot(events, nil, nil, nil, nil, nil, nil)
}

// campRevivalSeries returns a series parent spanning Jul 1 - Jul 6
// (exclusive) and five daily instances, mirroring a typical feed payload.
func campRevivalSeries() []catalog.EventRecord {
	parent := eventRecord("evt-100", "Camp Revival", catalog.CategorySeriesParent,
		"2025-07-01T05:00:00Z", "2025-07-06T05:00:00Z")
	parent.EventType = "Revival"
	parent.SeriesId = "series-1"

	records := []catalog.EventRecord{parent}
	for day := 1; day <= 5; day++ {
		instance := eventRecord(
			"evt-100-"+string(rune('a'+day-1)),
			"Camp Revival",
			catalog.CategorySeriesInstance,
			time.Date(2025, 7, day, 23, 0, 0, 0, time.UTC).Format(time.RFC3339),
			"",
		)
		instance.EventType = "Revival"
		instance.SeriesId = "series-1"
		records = append(records, instance)
	}
	return records
}

func newTestPipeline() (*Normalizer, *SeriesPolicy, *FilterEngine) {
	normalizer := NewNormalizer(testFallbackZone)
	policy := NewSeriesPolicy(normalizer)
	return normalizer, policy, NewFilterEngine()
}
