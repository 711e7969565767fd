package catalog

import "time"

// SourceCategory classifies an event record. The raw feed carries either a
// sourceType tag or a pair of legacy boolean flags; both are folded into this
// enum once at ingestion, so downstream code never inspects raw strings.
type SourceCategory int

const (
	// CategoryUnknown covers legacy records with no sourceType and neither
	// legacy flag set. They behave as plain single events.
	CategoryUnknown SourceCategory = iota
	CategoryRegular
	CategorySpecialSingle
	CategorySeriesParent
	CategorySeriesInstance
)

func (c SourceCategory) String() string {
	switch c {
	case CategoryRegular:
		return "regular"
	case CategorySpecialSingle:
		return "special-event-single"
	case CategorySeriesParent:
		return "special-event-series-parent"
	case CategorySeriesInstance:
		return "special-event-series-instance"
	default:
		return "unknown"
	}
}

// IsSpecialEvent reports whether the record survives the
// include-regular-services gate when the gate is closed.
func (c SourceCategory) IsSpecialEvent() bool {
	switch c {
	case CategorySpecialSingle, CategorySeriesParent, CategorySeriesInstance:
		return true
	default:
		return false
	}
}

// EventRecord is one raw event row from the feed, parsed but otherwise
// untouched. StartRaw/EndRaw keep the original UTC ISO-8601 strings because
// all-day handling truncates those to their date component verbatim.
type EventRecord struct {
	EventId     string
	Title       string
	Category    SourceCategory
	Start       time.Time
	End         time.Time
	HasEnd      bool
	StartRaw    string
	EndRaw      string
	AllDay      bool
	TimeZone    string
	Description string
	EventType   string
	ChurchId    string
	Location    string
	// StartTimeText and EndTimeText are the feed's preformatted display
	// times ("08:00 PM"), passed through for detail rendering only.
	StartTimeText string
	EndTimeText   string
	SeriesId      string
}

type ChurchRecord struct {
	ChurchId string
	Name     string
	Address  string
}

type MinisterRecord struct {
	MinisterId string
	Name       string
	ChurchId   string
}

type GroupRecord struct {
	GroupId  string
	Name     string
	ChurchId string
}

type GroupMemberRecord struct {
	GroupId string
	Name    string
}

// EventParticipantRecord links an event to exactly one of: a free-text name
// override, a minister, or a group. Resolution precedence is override first,
// then minister, then group.
type EventParticipantRecord struct {
	EventId      string
	MinisterId   string
	GroupId      string
	NameOverride string
	Role         string
}

// SchedulePatternRecord describes the recurring cadence of a series parent
// for display. It never materializes an occurrence on its own.
type SchedulePatternRecord struct {
	EventId   string
	DayOfWeek string
	StartTime string
	EndTime   string
	Subtitle  string
}
