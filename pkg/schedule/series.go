package schedule

import (
	"fmt"
	"time"

	"github.com/D3rkrox/Church/pkg/catalog"
)

// SeriesPolicy decides, per record category and toggle/view state, whether a
// record becomes an occurrence and in what shape: recurring special events
// appear either as one collapsed all-day placeholder (series parent) or as
// their expanded day-by-day instances, never both.
type SeriesPolicy struct {
	normalizer *Normalizer
}

func NewSeriesPolicy(normalizer *Normalizer) *SeriesPolicy {
	return &SeriesPolicy{normalizer: normalizer}
}

// BuildCandidates produces the full candidate occurrence list for the
// current toggle and view state, before any user filters apply.
func (p *SeriesPolicy) BuildCandidates(snapshot *catalog.Snapshot, toggles Toggles, view ViewType) []Occurrence {
	expand := toggles.effectiveExpand(view)

	candidates := make([]Occurrence, 0, len(snapshot.Events))
	for _, record := range snapshot.Events {
		switch record.Category {
		case catalog.CategorySeriesParent:
			if expand {
				continue
			}
			if occ, ok := p.placeholder(record); ok {
				candidates = append(candidates, occ)
			}
		case catalog.CategorySeriesInstance:
			if !expand {
				continue
			}
			if occ, ok := p.normalizer.Normalize(record); ok {
				candidates = append(candidates, occ)
			}
		default:
			// Regular services, single special events, and legacy records
			// with no series role all render as plain occurrences.
			if occ, ok := p.normalizer.Normalize(record); ok {
				candidates = append(candidates, occ)
			}
		}
	}
	return candidates
}

// placeholder collapses a series parent into one all-day occurrence spanning
// its stored date range.
func (p *SeriesPolicy) placeholder(record catalog.EventRecord) (Occurrence, bool) {
	if record.Title == "" || record.Start.IsZero() {
		return Occurrence{}, false
	}

	startDay := dayOf(record.Start)
	endDay := startDay
	if record.HasEnd {
		endDay = dayOf(record.End)
	}
	// The stored end is an exclusive boundary. A missing or inverted end
	// collapses to a one-day span so the placeholder always covers
	// something.
	if !endDay.After(startDay) {
		endDay = startDay.AddDate(0, 0, 1)
	}
	inclusiveEnd := endDay.AddDate(0, 0, -1)

	title := record.Title
	if record.EventType != "" {
		title = fmt.Sprintf("%s (%s Series)", record.Title, record.EventType)
	} else {
		title = fmt.Sprintf("%s (Series)", record.Title)
	}
	if inclusiveEnd.Equal(startDay) {
		title += fmt.Sprintf(" [%s]", shortDate(startDay))
	} else {
		title += fmt.Sprintf(" [%s - %s]", shortDate(startDay), shortDate(inclusiveEnd))
	}

	style := styleForEventType(record.EventType)
	return Occurrence{
		Title:           title,
		Start:           startDay.Format("2006-01-02"),
		End:             endDay.Format("2006-01-02"),
		AllDay:          true,
		BackgroundColor: style.BackgroundColor,
		TextColor:       style.TextColor,
		ClassName:       cssClassForEventType(record.EventType),
		IsPlaceholder:   true,
		Record:          record,
	}, true
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func shortDate(t time.Time) string {
	return t.Format("Jan 2")
}
