package disruptions

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"wayfare/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetDisruptions lists current disruptions for a destination and date
// range, each annotated with its handling policy.
func (h *Handler) GetDisruptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destination := r.URL.Query().Get("destination")
	if destination == "" {
		utils.Error(w, http.StatusBadRequest, "destination is required")
		return
	}

	start, end, err := utils.ParseDateRange(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.CurrentDisruptions(r.Context(), destination, start, end)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch disruptions")
		return
	}

	type annotated struct {
		Record interface{} `json:"disruption"`
		Policy interface{} `json:"policy"`
	}
	out := make([]annotated, 0, len(records))
	for _, rec := range records {
		out = append(out, annotated{Record: rec, Policy: CategorizeSeverity(rec.Severity)})
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"destination": destination,
		"disruptions": out,
	})
}

// GetAttractionStatus reports open/closed status for a named attraction,
// including alternatives when closed.
func (h *Handler) GetAttractionStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")

	status, err := h.service.AttractionStatus(r.Context(), name)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to check attraction status")
		return
	}

	resp := utils.M{"status": status}
	if status.Status != "open" {
		alts, err := h.service.AlternativeAttractions(r.Context(), name)
		if err == nil {
			resp["alternatives"] = alts
		}
	}
	utils.JSON(w, http.StatusOK, resp)
}

// GetSafetyAlerts lists safety advisories for a destination.
func (h *Handler) GetSafetyAlerts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destination := r.URL.Query().Get("destination")
	if destination == "" {
		utils.Error(w, http.StatusBadRequest, "destination is required")
		return
	}

	alerts, err := h.service.SafetyAlerts(r.Context(), destination)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch safety alerts")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"destination": destination,
		"alerts":      alerts,
	})
}
