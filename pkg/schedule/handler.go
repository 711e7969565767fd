package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/D3rkrox/Church/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service}
}

// OptionsDTO pairs the recomputed dropdown options with the pruned filter
// state so the UI can drop stale selection tags in the same round trip.
type OptionsDTO struct {
	Options Options    `json:"options"`
	Filters FiltersDTO `json:"filters"`
}

type FiltersDTO struct {
	EventTypes   []string `json:"eventTypes"`
	ChurchIds    []string `json:"churchIds"`
	Participants []string `json:"participants"`
	Search       string   `json:"search,omitempty"`
}

// parseQuery reads the shared toggle/filter/view parameters. includeRegular
// defaults to true when absent; expandSeries defaults to false.
func parseQuery(r *http.Request) (Toggles, Filters, ViewType, error) {
	q := r.URL.Query()

	toggles := Toggles{IncludeRegularServices: true}
	if v := q.Get("expandSeries"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Toggles{}, Filters{}, "", errors.New("expandSeries must be a boolean")
		}
		toggles.ExpandSeries = parsed
	}
	if v := q.Get("includeRegular"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Toggles{}, Filters{}, "", errors.New("includeRegular must be a boolean")
		}
		toggles.IncludeRegularServices = parsed
	}

	filters := Filters{
		EventTypes:   q["type"],
		ChurchIds:    q["church"],
		Participants: q["participant"],
		Search:       q.Get("q"),
	}

	return toggles, filters, ParseViewType(q.Get("view")), nil
}

func writeBadRequest(w http.ResponseWriter, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid query parameter",
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

// GetOccurrences returns the filtered occurrence list for the current
// toggle/filter/view state. No matches is an empty array, not an error.
func (h *Handler) GetOccurrences(w http.ResponseWriter, r *http.Request) {
	toggles, filters, view, err := parseQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	occurrences := h.service.Occurrences(r.Context(), toggles, filters, view)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(occurrences); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Tracef("Occurrences returned: %d", len(occurrences))
}

// GetOptions returns the synchronized dropdown options plus the pruned
// filter selections for the current toggle state.
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	toggles, filters, view, err := parseQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	options, pruned := h.service.Options(r.Context(), toggles, filters, view)
	dto := OptionsDTO{
		Options: options,
		Filters: FiltersDTO{
			EventTypes:   pruned.EventTypes,
			ChurchIds:    pruned.ChurchIds,
			Participants: pruned.Participants,
			Search:       pruned.Search,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetEventDetail returns the assembled modal payload for one event.
func (h *Handler) GetEventDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventId := vars["eventId"]

	detail, err := h.service.Detail(r.Context(), eventId)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Event not found",
				Details: "no event with id " + eventId,
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(detail); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ExportICS serves the filtered occurrence list as an iCalendar document.
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	toggles, filters, view, err := parseQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	occurrences := h.service.Occurrences(r.Context(), toggles, filters, view)
	document := ExportICS(occurrences, h.service.clock)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="church-events.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(document)); err != nil {
		log.Errorf("Failed to write ICS response: %v", err)
	}
}

// Refresh forces a fetch cycle and returns its report.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Refresh(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetStatus reports the last refresh outcome for the UI banner.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.service.Status()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
