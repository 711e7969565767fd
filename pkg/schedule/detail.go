package schedule

import "github.com/D3rkrox/Church/pkg/catalog"

// ParticipantDetail is one resolved "Featuring" line of the detail modal.
type ParticipantDetail struct {
	Name       string   `json:"name"`
	Role       string   `json:"role,omitempty"`
	HomeChurch string   `json:"homeChurch,omitempty"`
	Members    []string `json:"members,omitempty"`
}

// EventDetail is the structured payload behind the detail modal: the raw
// record plus every joined piece the modal renders. String formatting
// (dates, timezone labels) stays client-side.
type EventDetail struct {
	Record        catalog.EventRecord `json:"record"`
	ChurchName    string              `json:"churchName,omitempty"`
	ChurchAddress string              `json:"churchAddress,omitempty"`
	// Location is the record's override when present, else the church
	// address.
	Location     string                          `json:"location,omitempty"`
	Participants []ParticipantDetail             `json:"participants"`
	Patterns     []catalog.SchedulePatternRecord `json:"patterns,omitempty"`
}

func buildEventDetail(snapshot *catalog.Snapshot, eventId string) (EventDetail, error) {
	var record *catalog.EventRecord
	for i := range snapshot.Events {
		if snapshot.Events[i].EventId == eventId {
			record = &snapshot.Events[i]
			break
		}
	}
	if record == nil {
		return EventDetail{}, ErrEventNotFound
	}

	detail := EventDetail{Record: *record}

	if church, ok := snapshot.ChurchById(record.ChurchId); ok {
		detail.ChurchName = church.Name
		detail.ChurchAddress = church.Address
		detail.Location = church.Address
	}
	if record.Location != "" {
		detail.Location = record.Location
	}

	participants := snapshot.ParticipantsForEvent(eventId)
	detail.Participants = make([]ParticipantDetail, 0, len(participants))
	for _, p := range participants {
		detail.Participants = append(detail.Participants, resolveParticipantDetail(snapshot, p))
	}

	detail.Patterns = snapshot.PatternsForEvent(eventId)
	return detail, nil
}

// resolveParticipantDetail resolves the display name with the usual
// precedence and decorates ministers and groups with their home church;
// groups additionally list their members.
func resolveParticipantDetail(snapshot *catalog.Snapshot, p catalog.EventParticipantRecord) ParticipantDetail {
	detail := ParticipantDetail{
		Name: snapshot.ResolveParticipantName(p),
		Role: p.Role,
	}

	if p.NameOverride != "" {
		return detail
	}
	if p.MinisterId != "" {
		if minister, ok := snapshot.MinisterById(p.MinisterId); ok {
			detail.HomeChurch = snapshot.ChurchName(minister.ChurchId)
		}
		return detail
	}
	if p.GroupId != "" {
		if group, ok := snapshot.GroupById(p.GroupId); ok {
			detail.HomeChurch = snapshot.ChurchName(group.ChurchId)
		}
		for _, member := range snapshot.MembersOfGroup(p.GroupId) {
			if member.Name != "" {
				detail.Members = append(detail.Members, member.Name)
			}
		}
	}
	return detail
}
