package events

import (
	"net/http"
	"strconv"

	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

// GET /api/events
func (h *Handler) GetNearbyEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	location := r.URL.Query().Get("location")
	if location == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required parameters: location, startDate, endDate")
		return
	}

	start, end, err := utils.ParseDateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	radius := DefaultRadiusKm
	if v := r.URL.Query().Get("radius"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	evs, source, err := h.Service.NearbyEventsWithSource(r.Context(), location, start, end, radius)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	// Optional comma-separated interests annotate each event's score.
	if raw := r.URL.Query().Get("interests"); raw != "" {
		ApplyRelevance(evs, utils.SplitTags(raw))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"source": source,
		"count":  len(evs),
		"events": evs,
	})
}

// GET /api/events/category/:type
func (h *Handler) GetEventsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventType := ps.ByName("type")

	location := r.URL.Query().Get("location")
	if location == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	start, end, err := utils.ParseDateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	evs, err := h.Service.EventsByType(r.Context(), location, eventType, start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"category": eventType,
		"count":    len(evs),
		"events":   evs,
	})
}

// GET /api/events/event/:id
func (h *Handler) GetEventDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("id")

	ev, err := FindCachedEvent(r.Context(), eventID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event details")
		return
	}
	if ev == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"event": ev})
}
