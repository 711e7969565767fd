package schedule

import "github.com/D3rkrox/Church/pkg/catalog"

// ViewType is the calendar widget's current granularity. The single-day list
// view forces series expansion since a collapsed multi-day placeholder is
// meaningless there.
type ViewType string

const (
	ViewListDay   ViewType = "listDay"
	ViewListWeek  ViewType = "listWeek"
	ViewListMonth ViewType = "listMonth"
	ViewListYear  ViewType = "listYear"
	ViewGridMonth ViewType = "dayGridMonth"
)

// ParseViewType maps an arbitrary string onto a known view, defaulting to
// the weekly list.
func ParseViewType(s string) ViewType {
	switch ViewType(s) {
	case ViewListDay, ViewListWeek, ViewListMonth, ViewListYear, ViewGridMonth:
		return ViewType(s)
	default:
		return ViewListWeek
	}
}

// Toggles are the two global display switches.
type Toggles struct {
	ExpandSeries           bool
	IncludeRegularServices bool
}

// effectiveExpand applies the day-view override to the user's toggle.
func (t Toggles) effectiveExpand(view ViewType) bool {
	return t.ExpandSeries || view == ViewListDay
}

// Filters is the user's current selection state. Empty sets and an empty
// search string pass everything.
type Filters struct {
	EventTypes   []string
	ChurchIds    []string
	Participants []string
	Search       string
}

// Occurrence is one display-ready calendar entry. Start and End are either
// full UTC instant strings or date-only strings depending on AllDay; End is
// exclusive and may be empty. Never mutated - each pipeline run builds a
// fresh list.
type Occurrence struct {
	Title           string              `json:"title"`
	Start           string              `json:"start"`
	End             string              `json:"end,omitempty"`
	AllDay          bool                `json:"allDay"`
	TimeZone        string              `json:"timeZone,omitempty"`
	BackgroundColor string              `json:"backgroundColor"`
	TextColor       string              `json:"textColor"`
	ClassName       string              `json:"className"`
	IsPlaceholder   bool                `json:"isPlaceholder"`
	Record          catalog.EventRecord `json:"extendedProps"`
}
