package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader_FetchAll(t *testing.T) {
	source := NewStubSource()
	source.SetRows(CollectionEvents, []Row{
		{"EventID": "evt-1", "EventTitle": "Morning Worship"},
	})
	source.SetRows(CollectionChurches, []Row{
		{"ChurchID": "c1", "ChurchName": "Grace Tabernacle"},
	})
	loader := NewLoader(source)

	collections, report := loader.FetchAll(context.Background())

	assert.Len(t, collections, len(AllCollections))
	assert.Len(t, collections[CollectionEvents], 1)
	assert.NotEmpty(t, report.CycleId)
	assert.False(t, report.Degraded())
	assert.Len(t, report.Collections, len(AllCollections))
}

func TestLoader_FetchAll_FailedCollectionDegradesToEmpty(t *testing.T) {
	source := NewStubSource()
	source.SetRows(CollectionEvents, []Row{
		{"EventID": "evt-1", "EventTitle": "Morning Worship"},
	})
	source.SetError(CollectionMinisters, errors.New("sheet unavailable"))
	loader := NewLoader(source)

	collections, report := loader.FetchAll(context.Background())

	// The failing collection comes back empty without aborting the others.
	assert.Len(t, collections[CollectionEvents], 1)
	assert.Empty(t, collections[CollectionMinisters])
	assert.True(t, report.Degraded())

	for _, result := range report.Collections {
		if result.Collection == CollectionMinisters {
			assert.Contains(t, result.Error, "sheet unavailable")
		} else {
			assert.Empty(t, result.Error)
		}
	}
}

func TestFetchReport_Degraded(t *testing.T) {
	clean := FetchReport{Collections: []CollectionResult{
		{Collection: CollectionEvents, Rows: 3},
		{Collection: CollectionChurches, Rows: 1},
	}}
	assert.False(t, clean.Degraded())

	degraded := FetchReport{Collections: []CollectionResult{
		{Collection: CollectionEvents, Rows: 3},
		{Collection: CollectionChurches, Error: "timeout"},
	}}
	assert.True(t, degraded.Degraded())
}
