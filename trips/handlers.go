package trips

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"wayfare/models"
	"wayfare/utils"
)

type Handler struct {
	generator *Generator
}

func NewHandler(generator *Generator) *Handler {
	return &Handler{generator: generator}
}

// GenerateTrip returns a generated day-by-day plan for the submitted
// trip parameters. Responds 503 when no generation backend is
// configured.
func (h *Handler) GenerateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var it models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer r.Body.Close()

	if err := it.Validate(); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.generator.Configured() {
		utils.Error(w, http.StatusServiceUnavailable, "Trip generation is not configured")
		return
	}

	plan, err := h.generator.GenerateTrip(r.Context(), &it)
	if err != nil {
		log.Printf("Trip generation failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to generate trip")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"destination": it.Destination,
		"plan":        plan,
	})
}
