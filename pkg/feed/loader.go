package feed

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CollectionResult reports how one collection fared within a fetch cycle.
type CollectionResult struct {
	Collection Collection `json:"collection"`
	Rows       int        `json:"rows"`
	Error      string     `json:"error,omitempty"`
}

// FetchReport summarizes one full fetch cycle.
type FetchReport struct {
	CycleId     string             `json:"cycleId"`
	FetchedAt   time.Time          `json:"fetchedAt"`
	Collections []CollectionResult `json:"collections"`
}

// Degraded reports whether any collection failed to load.
func (r FetchReport) Degraded() bool {
	for _, c := range r.Collections {
		if c.Error != "" {
			return true
		}
	}
	return false
}

// Loader fetches every collection of a cycle concurrently. A failing
// collection degrades to an empty row set and is noted in the report; it
// never aborts the sibling fetches.
type Loader struct {
	source Source
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

func (l *Loader) FetchAll(ctx context.Context) (map[Collection][]Row, FetchReport) {
	cycleId := uuid.NewString()
	log.Debugf("Starting feed fetch cycle %s", cycleId)

	type outcome struct {
		rows []Row
		err  error
	}
	outcomes := make([]outcome, len(AllCollections))

	var wg sync.WaitGroup
	for i, collection := range AllCollections {
		wg.Add(1)
		go func(i int, collection Collection) {
			defer wg.Done()
			rows, err := l.source.Fetch(ctx, collection)
			if err != nil {
				log.Warnf("Fetch cycle %s: collection %s failed, treating as empty: %v", cycleId, collection, err)
				outcomes[i] = outcome{rows: []Row{}, err: err}
				return
			}
			outcomes[i] = outcome{rows: rows}
		}(i, collection)
	}
	wg.Wait()

	collections := make(map[Collection][]Row, len(AllCollections))
	report := FetchReport{
		CycleId:   cycleId,
		FetchedAt: time.Now(),
	}
	for i, collection := range AllCollections {
		collections[collection] = outcomes[i].rows
		result := CollectionResult{
			Collection: collection,
			Rows:       len(outcomes[i].rows),
		}
		if outcomes[i].err != nil {
			result.Error = outcomes[i].err.Error()
		}
		report.Collections = append(report.Collections, result)
	}

	log.Infof("Feed fetch cycle %s finished, degraded=%v", cycleId, report.Degraded())
	return collections, report
}
