package catalog

// Sentinel display names for participants whose foreign key points nowhere.
// The occurrence is still shown; only the name degrades.
const (
	MinisterNotFoundName = "Minister ID Not Found"
	GroupNotFoundName    = "Group ID Not Found"
)

// Snapshot holds one fetch cycle's worth of reference data. It is built
// once, indexed, and never mutated afterwards; a new fetch cycle produces a
// new Snapshot which replaces this one wholesale in the Store.
type Snapshot struct {
	Events       []EventRecord
	Churches     []ChurchRecord
	Ministers    []MinisterRecord
	Groups       []GroupRecord
	GroupMembers []GroupMemberRecord
	Participants []EventParticipantRecord
	Patterns     []SchedulePatternRecord

	churchById          map[string]*ChurchRecord
	ministerById        map[string]*MinisterRecord
	groupById           map[string]*GroupRecord
	participantsByEvent map[string][]EventParticipantRecord
	patternsByEvent     map[string][]SchedulePatternRecord
	membersByGroup      map[string][]GroupMemberRecord
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		churchById:          map[string]*ChurchRecord{},
		ministerById:        map[string]*MinisterRecord{},
		groupById:           map[string]*GroupRecord{},
		participantsByEvent: map[string][]EventParticipantRecord{},
		patternsByEvent:     map[string][]SchedulePatternRecord{},
		membersByGroup:      map[string][]GroupMemberRecord{},
	}
}

// EmptySnapshot returns a snapshot with no data, used before the first
// fetch cycle completes (or when every collection failed).
func EmptySnapshot() *Snapshot {
	return newSnapshot()
}

// NewSnapshot builds an indexed snapshot directly from typed records.
func NewSnapshot(
	events []EventRecord,
	churches []ChurchRecord,
	ministers []MinisterRecord,
	groups []GroupRecord,
	members []GroupMemberRecord,
	participants []EventParticipantRecord,
	patterns []SchedulePatternRecord,
) *Snapshot {
	s := newSnapshot()
	s.Events = events
	s.Churches = churches
	s.Ministers = ministers
	s.Groups = groups
	s.GroupMembers = members
	s.Participants = participants
	s.Patterns = patterns
	s.index()
	return s
}

func (s *Snapshot) index() {
	for i := range s.Churches {
		s.churchById[s.Churches[i].ChurchId] = &s.Churches[i]
	}
	for i := range s.Ministers {
		s.ministerById[s.Ministers[i].MinisterId] = &s.Ministers[i]
	}
	for i := range s.Groups {
		s.groupById[s.Groups[i].GroupId] = &s.Groups[i]
	}
	for _, p := range s.Participants {
		if p.EventId == "" {
			continue
		}
		s.participantsByEvent[p.EventId] = append(s.participantsByEvent[p.EventId], p)
	}
	for _, p := range s.Patterns {
		if p.EventId == "" {
			continue
		}
		s.patternsByEvent[p.EventId] = append(s.patternsByEvent[p.EventId], p)
	}
	for _, m := range s.GroupMembers {
		if m.GroupId == "" {
			continue
		}
		s.membersByGroup[m.GroupId] = append(s.membersByGroup[m.GroupId], m)
	}
}

func (s *Snapshot) ChurchById(id string) (*ChurchRecord, bool) {
	c, ok := s.churchById[id]
	return c, ok
}

func (s *Snapshot) MinisterById(id string) (*MinisterRecord, bool) {
	m, ok := s.ministerById[id]
	return m, ok
}

func (s *Snapshot) GroupById(id string) (*GroupRecord, bool) {
	g, ok := s.groupById[id]
	return g, ok
}

func (s *Snapshot) ParticipantsForEvent(eventId string) []EventParticipantRecord {
	return s.participantsByEvent[eventId]
}

func (s *Snapshot) PatternsForEvent(eventId string) []SchedulePatternRecord {
	return s.patternsByEvent[eventId]
}

func (s *Snapshot) MembersOfGroup(groupId string) []GroupMemberRecord {
	return s.membersByGroup[groupId]
}

// ChurchName resolves a church ID to its display name, empty when unknown.
func (s *Snapshot) ChurchName(id string) string {
	if c, ok := s.churchById[id]; ok {
		return c.Name
	}
	return ""
}

// ResolveParticipantName maps a participant record to a display name using
// the override > minister > group precedence. An unresolvable minister or
// group reference yields a sentinel name rather than an empty string.
func (s *Snapshot) ResolveParticipantName(p EventParticipantRecord) string {
	if p.NameOverride != "" {
		return p.NameOverride
	}
	if p.MinisterId != "" {
		if m, ok := s.ministerById[p.MinisterId]; ok && m.Name != "" {
			return m.Name
		}
		return MinisterNotFoundName
	}
	if p.GroupId != "" {
		if g, ok := s.groupById[p.GroupId]; ok && g.Name != "" {
			return g.Name
		}
		return GroupNotFoundName
	}
	return ""
}

// ParticipantNamesForEvent resolves every participant of an event, skipping
// records that resolve to nothing at all.
func (s *Snapshot) ParticipantNamesForEvent(eventId string) []string {
	participants := s.participantsByEvent[eventId]
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		if name := s.ResolveParticipantName(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
