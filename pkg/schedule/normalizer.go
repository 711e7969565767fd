package schedule

import (
	"strings"

	"github.com/D3rkrox/Church/pkg/catalog"
)

// Normalizer converts raw event records into candidate occurrences. It is a
// pure transformation over the record plus the configured fallback timezone.
type Normalizer struct {
	fallbackTimeZone string
}

func NewNormalizer(fallbackTimeZone string) *Normalizer {
	return &Normalizer{fallbackTimeZone: fallbackTimeZone}
}

// Normalize yields the candidate occurrence for a record, or ok=false for
// records that cannot be displayed at all (no title or no start instant).
func (n *Normalizer) Normalize(record catalog.EventRecord) (Occurrence, bool) {
	if record.Title == "" || record.Start.IsZero() {
		return Occurrence{}, false
	}

	start := record.StartRaw
	end := record.EndRaw
	timeZone := ""

	if record.AllDay {
		// All-day entries render in the viewer's local grid, so the zone is
		// cleared and the instants collapse to their date component.
		start = truncateToDate(start)
		end = truncateToDate(end)
	} else {
		timeZone = record.TimeZone
		if timeZone == "" {
			timeZone = n.fallbackTimeZone
		}
	}

	style := styleForEventType(record.EventType)
	return Occurrence{
		Title:           record.Title,
		Start:           start,
		End:             end,
		AllDay:          record.AllDay,
		TimeZone:        timeZone,
		BackgroundColor: style.BackgroundColor,
		TextColor:       style.TextColor,
		ClassName:       cssClassForEventType(record.EventType),
		Record:          record,
	}, true
}

// truncateToDate cuts a full ISO-8601 instant down to "YYYY-MM-DD".
// Date-only strings pass through untouched.
func truncateToDate(s string) string {
	if strings.Contains(s, "T") && len(s) >= 10 {
		return s[:10]
	}
	return s
}
