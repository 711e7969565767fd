package feed

import "context"

// Collection names a sheet in the backing spreadsheet.
type Collection string

const (
	CollectionEvents            Collection = "Events"
	CollectionChurches          Collection = "Churches"
	CollectionMinisters         Collection = "Ministers"
	CollectionEventParticipants Collection = "EventParticipants"
	CollectionGuestParticipants Collection = "GuestParticipants"
	CollectionGroupMembers      Collection = "GroupMembers"
	CollectionSchedulePatterns  Collection = "ServiceSchedulePatterns"
)

// AllCollections lists every collection fetched in one refresh cycle.
var AllCollections = []Collection{
	CollectionEvents,
	CollectionChurches,
	CollectionMinisters,
	CollectionEventParticipants,
	CollectionGuestParticipants,
	CollectionGroupMembers,
	CollectionSchedulePatterns,
}

// Row is one flat key/value record as delivered by the spreadsheet backend.
type Row map[string]string

// Source fetches the ordered rows of one collection. Implementations exist
// for the Apps Script web app and for the Sheets API.
type Source interface {
	Fetch(ctx context.Context, collection Collection) ([]Row, error)
}
