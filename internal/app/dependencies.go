package app

import (
	"context"
	"fmt"

	"github.com/D3rkrox/Church/internal/config"
	"github.com/D3rkrox/Church/internal/utils"
	"github.com/D3rkrox/Church/pkg/catalog"
	"github.com/D3rkrox/Church/pkg/feed"
	"github.com/D3rkrox/Church/pkg/schedule"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	FeedSource feed.Source
	FeedLoader *feed.Loader

	CatalogStore *catalog.Store

	Normalizer          *schedule.Normalizer
	SeriesPolicy        *schedule.SeriesPolicy
	FilterEngine        *schedule.FilterEngine
	OptionSynchronizer  *schedule.OptionSynchronizer
	ScheduleService     *schedule.Service
	ScheduleHandler     *schedule.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and
// handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	source, err := buildFeedSource(cfg.Feed)
	if err != nil {
		return nil, err
	}
	deps.FeedSource = source
	deps.FeedLoader = feed.NewLoader(source)

	deps.CatalogStore = catalog.NewStore()

	deps.Normalizer = schedule.NewNormalizer(cfg.Calendar.FallbackTimeZone)
	deps.SeriesPolicy = schedule.NewSeriesPolicy(deps.Normalizer)
	deps.FilterEngine = schedule.NewFilterEngine()
	deps.OptionSynchronizer = schedule.NewOptionSynchronizer(
		deps.SeriesPolicy,
		cfg.Calendar.SingingEventType,
		cfg.Calendar.RevivalEventType,
	)

	deps.Clock = &utils.SystemClock{}
	deps.ScheduleService = schedule.NewService(
		deps.CatalogStore,
		deps.FeedLoader,
		deps.SeriesPolicy,
		deps.FilterEngine,
		deps.OptionSynchronizer,
		deps.Clock,
	)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService)

	return deps, nil
}

func buildFeedSource(cfg config.Feed) (feed.Source, error) {
	switch cfg.Source {
	case "appsscript", "":
		if cfg.ScriptURL == "" {
			return nil, fmt.Errorf("feed.scripturl is required for the appsscript source")
		}
		return feed.NewAppsScriptSource(cfg.ScriptURL), nil
	case "sheets":
		if cfg.SpreadsheetId == "" || cfg.ApiKey == "" {
			return nil, fmt.Errorf("feed.spreadsheetid and feed.apikey are required for the sheets source")
		}
		return feed.NewSheetsSource(context.Background(), cfg.SpreadsheetId, cfg.ApiKey)
	default:
		return nil, fmt.Errorf("unknown feed source %q", cfg.Source)
	}
}
