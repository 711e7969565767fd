package schedule

import (
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/D3rkrox/Church/internal/utils"
)

// ExportICS serializes an occurrence list into an iCalendar document so the
// filtered schedule can be subscribed to from other calendar apps.
func ExportICS(occurrences []Occurrence, clock utils.Clock) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Church Calendar//EN")
	cal.SetXWRCalName("Church Events")

	now := clock.Now()
	for _, occ := range occurrences {
		event := cal.AddEvent(icsUid(occ))
		event.SetDtStampTime(now)
		event.SetSummary(occ.Title)

		if occ.AllDay {
			event.SetAllDayStartAt(dayOf(occ.Record.Start))
			if occ.Record.HasEnd {
				event.SetAllDayEndAt(dayOf(occ.Record.End))
			} else if occ.IsPlaceholder {
				// Placeholders with a synthesized end still span one day.
				event.SetAllDayEndAt(dayOf(occ.Record.Start).AddDate(0, 0, 1))
			}
		} else {
			event.SetStartAt(occ.Record.Start)
			if occ.Record.HasEnd {
				event.SetEndAt(occ.Record.End)
			}
		}

		if occ.Record.Description != "" {
			event.SetDescription(occ.Record.Description)
		}
		if occ.Record.Location != "" {
			event.SetLocation(occ.Record.Location)
		}
	}

	return cal.Serialize()
}

func icsUid(occ Occurrence) string {
	if occ.Record.EventId == "" {
		return uuid.NewString() + "@churchcal"
	}
	if occ.IsPlaceholder {
		return fmt.Sprintf("%s-series@churchcal", occ.Record.EventId)
	}
	return fmt.Sprintf("%s@churchcal", occ.Record.EventId)
}
