package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/D3rkrox/Church/internal/utils"
	"github.com/D3rkrox/Church/pkg/catalog"
	"github.com/D3rkrox/Church/pkg/feed"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = fmt.Errorf("event not found")

const (
	StateLoading  = "loading"
	StateOk       = "ok"
	StateDegraded = "degraded"
)

// RefreshStatus is what the UI banner renders: whether data has loaded yet
// and which collections, if any, degraded to empty on the last cycle.
type RefreshStatus struct {
	State       string           `json:"state"`
	RefreshedAt time.Time        `json:"refreshedAt,omitzero"`
	Report      feed.FetchReport `json:"report"`
}

// Service ties the snapshot store and the reconciliation pipeline together.
// Every read runs the pipeline from scratch against the current snapshot;
// nothing is cached between requests.
type Service struct {
	store        *catalog.Store
	loader       *feed.Loader
	policy       *SeriesPolicy
	engine       *FilterEngine
	synchronizer *OptionSynchronizer
	clock        utils.Clock

	statusMu sync.RWMutex
	status   RefreshStatus
}

func NewService(store *catalog.Store, loader *feed.Loader, policy *SeriesPolicy, engine *FilterEngine, synchronizer *OptionSynchronizer, clock utils.Clock) *Service {
	return &Service{
		store:        store,
		loader:       loader,
		policy:       policy,
		engine:       engine,
		synchronizer: synchronizer,
		clock:        clock,
		status:       RefreshStatus{State: StateLoading},
	}
}

// Occurrences runs the full pipeline: candidate generation under the current
// toggles and view, then filtering. An empty snapshot yields an empty list,
// never an error.
func (s *Service) Occurrences(_ context.Context, toggles Toggles, filters Filters, view ViewType) []Occurrence {
	snapshot := s.store.Snapshot()
	candidates := s.policy.BuildCandidates(snapshot, toggles, view)
	return s.engine.Apply(snapshot, candidates, toggles, filters)
}

// Options recomputes the dropdown option sets for the current toggle state
// and returns the filter state with stale selections pruned.
func (s *Service) Options(_ context.Context, toggles Toggles, filters Filters, view ViewType) (Options, Filters) {
	snapshot := s.store.Snapshot()
	return s.synchronizer.Sync(snapshot, toggles, view, filters)
}

// Detail assembles the modal payload for one event.
func (s *Service) Detail(_ context.Context, eventId string) (EventDetail, error) {
	snapshot := s.store.Snapshot()
	return buildEventDetail(snapshot, eventId)
}

// Refresh fetches every collection, builds a fresh snapshot, and swaps it
// in. Individual collection failures degrade to empty and are reported; only
// a wholesale inability to run the cycle is an error.
func (s *Service) Refresh(ctx context.Context) (feed.FetchReport, error) {
	collections, report := s.loader.FetchAll(ctx)
	snapshot := catalog.BuildSnapshot(collections)
	s.store.Replace(snapshot)

	state := StateOk
	if report.Degraded() {
		state = StateDegraded
	}
	s.statusMu.Lock()
	s.status = RefreshStatus{
		State:       state,
		RefreshedAt: s.clock.Now(),
		Report:      report,
	}
	s.statusMu.Unlock()

	log.Infof("Snapshot replaced: %d events, %d churches, %d participants",
		len(snapshot.Events), len(snapshot.Churches), len(snapshot.Participants))
	return report, nil
}

func (s *Service) Status() RefreshStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
