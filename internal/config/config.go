package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Addr     string   `koanf:"addr"`
	Frontend Frontend `koanf:"frontend"`
	Feed     Feed     `koanf:"feed"`
	Calendar Calendar `koanf:"calendar"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Feed configures where the raw spreadsheet collections are fetched from.
// Source is either "appsscript" (Google Apps Script web app returning
// {data, error} JSON) or "sheets" (Google Sheets API v4 with an API key).
type Feed struct {
	Source        string `koanf:"source"`
	ScriptURL     string `koanf:"scripturl"`
	SpreadsheetId string `koanf:"spreadsheetid"`
	ApiKey        string `koanf:"apikey"`
}

type Calendar struct {
	// FallbackTimeZone is applied to timed events whose record carries no
	// IANA zone of its own.
	FallbackTimeZone string `koanf:"fallbacktimezone"`
	// RefreshSchedule is a cron spec (robfig/cron syntax) for periodic
	// re-fetching of the feed.
	RefreshSchedule string `koanf:"refreshschedule"`
	// SingingEventType and RevivalEventType name the event types that narrow
	// the participant filter options to groups or ministers respectively.
	SingingEventType string `koanf:"singingeventtype"`
	RevivalEventType string `koanf:"revivaleventtype"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Feed: Feed{
			Source: "appsscript",
		},
		Calendar: Calendar{
			FallbackTimeZone: "America/Chicago",
			RefreshSchedule:  "@every 15m",
			SingingEventType: "Singing",
			RevivalEventType: "Revival",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "CHURCHCAL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "CHURCHCAL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
