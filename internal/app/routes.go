package app

import (
	"github.com/gorilla/mux"

	"github.com/D3rkrox/Church/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar occurrences and filter options
	r.HandleFunc("/api/calendar/occurrences", deps.ScheduleHandler.GetOccurrences).Methods("GET")
	r.HandleFunc("/api/calendar/options", deps.ScheduleHandler.GetOptions).Methods("GET")
	r.HandleFunc("/api/calendar/events/{eventId}", deps.ScheduleHandler.GetEventDetail).Methods("GET")
	r.HandleFunc("/api/calendar/export.ics", deps.ScheduleHandler.ExportICS).Methods("GET")

	// Feed lifecycle
	r.HandleFunc("/api/calendar/refresh", deps.ScheduleHandler.Refresh).Methods("POST")
	r.HandleFunc("/api/calendar/status", deps.ScheduleHandler.GetStatus).Methods("GET")
}
