package itinerary

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfare/engine"
	"wayfare/models"
	"wayfare/mq"
	"wayfare/suggestions"
	"wayfare/utils"
)

type Handler struct {
	engine *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

// CreateItinerary stores a new itinerary for the authenticated user.
func (h *Handler) CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	it.UserID = utils.GetUserIDFromRequest(r)

	if err := Create(r.Context(), &it); err != nil {
		log.Printf("Error creating itinerary: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to create itinerary")
		return
	}

	utils.JSON(w, http.StatusCreated, it)
}

// GetItinerary returns one itinerary by id.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, err := FindByID(r.Context(), ps.ByName("itineraryid"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch itinerary")
		return
	}
	utils.JSON(w, http.StatusOK, it)
}

// GetUserItineraries lists the authenticated user's itineraries.
func (h *Handler) GetUserItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	opts := utils.ParseQueryOptions(r)

	list, err := ListForUser(r.Context(), userID, opts)
	if err != nil {
		log.Printf("Error listing itineraries for %s: %v", userID, err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}
	utils.JSON(w, http.StatusOK, utils.M{
		"itineraries": list,
		"page":        opts.Page,
		"limit":       opts.Limit,
	})
}

// DeleteItinerary soft-deletes an itinerary.
func (h *Handler) DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ok, err := SoftDelete(r.Context(), ps.ByName("itineraryid"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete itinerary")
		return
	}
	if !ok {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	utils.JSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted"})
}

type analyzeRequest struct {
	ItineraryID string `json:"itineraryid"`
}

// AnalyzeItinerary runs one engine pass over an itinerary, persists the
// resulting suggestions, and announces the run on the live feed.
func (h *Handler) AnalyzeItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItineraryID == "" {
		utils.Error(w, http.StatusBadRequest, "itineraryid is required")
		return
	}
	defer r.Body.Close()

	it, err := FindByID(r.Context(), req.ItineraryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch itinerary")
		return
	}

	analysis, err := h.engine.Analyze(r.Context(), it)
	if err != nil {
		log.Printf("Analysis failed for %s: %v", it.ItineraryID, err)
		utils.Error(w, http.StatusInternalServerError, "Itinerary analysis failed")
		return
	}

	if err := suggestions.SaveBatch(r.Context(), analysis.Suggestions); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to save suggestions")
		return
	}

	mq.Emit(r.Context(), mq.SuggestionEvent{
		ItineraryID:  it.ItineraryID,
		Total:        analysis.Summary.TotalSuggestions,
		HighPriority: analysis.Summary.HighPriority,
	})

	utils.JSON(w, http.StatusOK, analysis)
}
