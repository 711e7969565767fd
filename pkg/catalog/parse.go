package catalog

import (
	"strings"
	"time"

	"github.com/D3rkrox/Church/pkg/feed"
	log "github.com/sirupsen/logrus"
)

// Column names as they appear in the spreadsheet header rows.
const (
	colEventId        = "EventID"
	colEventTitle     = "EventTitle"
	colStartDate      = "StartDate"
	colEndDate        = "EndDate"
	colIsAllDay       = "IsAllDay"
	colTimeZone       = "eventActualTimeZone"
	colSourceType     = "sourceType"
	colSeriesParent   = "IsSeriesParent"
	colGeneratedInst  = "isGeneratedInstance"
	colEventType      = "EventType"
	colChurchIdRef    = "ChurchID"
	colDescription    = "Description"
	colLocation       = "LocationOverride"
	colStartTimeText  = "StartTime"
	colEndTimeText    = "EndTime"
	colSeriesId       = "SeriesID"
	colChurchName     = "ChurchName"
	colAddress        = "Address"
	colMinisterId     = "MinisterID"
	colMinisterName   = "Name"
	colGroupId        = "GroupID"
	colGroupName      = "GroupName"
	colGroupChurchId  = "AssociatedChurchID"
	colMemberName     = "MemberName"
	colNameOverride   = "ParticipantNameOverride"
	colRoleInEvent    = "RoleInEvent"
	colDayOfWeek      = "DayOfWeek"
	colPatternStart   = "StartTime"
	colPatternEnd     = "EndTime"
	colPatternSubText = "Subtitle"
)

func field(row feed.Row, key string) string {
	return strings.TrimSpace(row[key])
}

func truthy(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// parseCategory folds the sourceType tag and the legacy boolean flags into
// the closed SourceCategory enum. The legacy flags only matter when
// sourceType is absent.
func parseCategory(row feed.Row) SourceCategory {
	sourceType := field(row, colSourceType)
	switch {
	case strings.HasPrefix(sourceType, "regular"):
		return CategoryRegular
	case sourceType == "special-event-single":
		return CategorySpecialSingle
	case sourceType == "special-event-series-parent":
		return CategorySeriesParent
	case sourceType == "special-event-series-instance":
		return CategorySeriesInstance
	}
	if truthy(row[colSeriesParent]) {
		return CategorySeriesParent
	}
	if truthy(row[colGeneratedInst]) {
		return CategorySeriesInstance
	}
	return CategoryUnknown
}

func parseInstant(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseEvent converts one raw feed row into an EventRecord. The record may
// still be unusable (empty title, unparseable start); that is the
// normalizer's call, not an error here.
func ParseEvent(row feed.Row) EventRecord {
	startRaw := field(row, colStartDate)
	endRaw := field(row, colEndDate)
	start, _ := parseInstant(startRaw)
	end, hasEnd := parseInstant(endRaw)

	return EventRecord{
		EventId:       field(row, colEventId),
		Title:         field(row, colEventTitle),
		Category:      parseCategory(row),
		Start:         start,
		End:           end,
		HasEnd:        hasEnd,
		StartRaw:      startRaw,
		EndRaw:        endRaw,
		AllDay:        truthy(row[colIsAllDay]),
		TimeZone:      field(row, colTimeZone),
		Description:   field(row, colDescription),
		EventType:     field(row, colEventType),
		ChurchId:      field(row, colChurchIdRef),
		Location:      field(row, colLocation),
		StartTimeText: field(row, colStartTimeText),
		EndTimeText:   field(row, colEndTimeText),
		SeriesId:      field(row, colSeriesId),
	}
}

func parseChurch(row feed.Row) ChurchRecord {
	return ChurchRecord{
		ChurchId: field(row, colChurchIdRef),
		Name:     field(row, colChurchName),
		Address:  field(row, colAddress),
	}
}

func parseMinister(row feed.Row) MinisterRecord {
	return MinisterRecord{
		MinisterId: field(row, colMinisterId),
		Name:       field(row, colMinisterName),
		ChurchId:   field(row, colChurchIdRef),
	}
}

func parseGroup(row feed.Row) GroupRecord {
	return GroupRecord{
		GroupId:  field(row, colGroupId),
		Name:     field(row, colGroupName),
		ChurchId: field(row, colGroupChurchId),
	}
}

func parseGroupMember(row feed.Row) GroupMemberRecord {
	return GroupMemberRecord{
		GroupId: field(row, colGroupId),
		Name:    field(row, colMemberName),
	}
}

func parseParticipant(row feed.Row) EventParticipantRecord {
	return EventParticipantRecord{
		EventId:      field(row, colEventId),
		MinisterId:   field(row, colMinisterId),
		GroupId:      field(row, colGroupId),
		NameOverride: field(row, colNameOverride),
		Role:         field(row, colRoleInEvent),
	}
}

func parsePattern(row feed.Row) SchedulePatternRecord {
	return SchedulePatternRecord{
		EventId:   field(row, colEventId),
		DayOfWeek: field(row, colDayOfWeek),
		StartTime: field(row, colPatternStart),
		EndTime:   field(row, colPatternEnd),
		Subtitle:  field(row, colPatternSubText),
	}
}

// BuildSnapshot parses every collection of a fetch cycle into a fresh
// immutable Snapshot. Rows that fail to parse into anything meaningful are
// kept as-is where harmless and skipped where they would be unaddressable
// (e.g. a church without an ID).
func BuildSnapshot(collections map[feed.Collection][]feed.Row) *Snapshot {
	s := newSnapshot()

	for _, row := range collections[feed.CollectionEvents] {
		s.Events = append(s.Events, ParseEvent(row))
	}
	for _, row := range collections[feed.CollectionChurches] {
		church := parseChurch(row)
		if church.ChurchId == "" {
			log.Debugf("skipping church row without %s", colChurchIdRef)
			continue
		}
		s.Churches = append(s.Churches, church)
	}
	for _, row := range collections[feed.CollectionMinisters] {
		minister := parseMinister(row)
		if minister.MinisterId == "" {
			continue
		}
		s.Ministers = append(s.Ministers, minister)
	}
	for _, row := range collections[feed.CollectionGuestParticipants] {
		group := parseGroup(row)
		if group.GroupId == "" {
			continue
		}
		s.Groups = append(s.Groups, group)
	}
	for _, row := range collections[feed.CollectionGroupMembers] {
		s.GroupMembers = append(s.GroupMembers, parseGroupMember(row))
	}
	for _, row := range collections[feed.CollectionEventParticipants] {
		s.Participants = append(s.Participants, parseParticipant(row))
	}
	for _, row := range collections[feed.CollectionSchedulePatterns] {
		s.Patterns = append(s.Patterns, parsePattern(row))
	}

	s.index()
	return s
}
