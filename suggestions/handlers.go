package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfare/db"
	"wayfare/models"
	"wayfare/utils"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

var knownStatuses = []string{
	string(models.StatusPending),
	string(models.StatusAccepted),
	string(models.StatusRejected),
	string(models.StatusModified),
}

// GetSuggestions lists an itinerary's suggestions, optionally filtered by
// ?status=.
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("itineraryid")
	opts := utils.ParseQueryOptions(r)

	if opts.Status != "" && !utils.Contains(knownStatuses, opts.Status) {
		utils.Error(w, http.StatusBadRequest, "Unknown status: "+opts.Status)
		return
	}

	list, err := ListForItinerary(r.Context(), itineraryID, opts.Status)
	if err != nil {
		log.Printf("Error fetching suggestions: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"itineraryid": itineraryID,
		"suggestions": list,
	})
}

type applyRequest struct {
	ModifiedPlan []models.Activity `json:"modified_plan"`
}

// ApplySuggestion resolves a pending suggestion as accepted (or modified,
// when the traveler sends their own plan) and folds the change into the
// itinerary.
func (h *Handler) ApplySuggestion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	suggestionID := ps.ByName("suggestionid")

	var req applyRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
		defer r.Body.Close()
	}

	s, err := FindByID(r.Context(), suggestionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Suggestion not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch suggestion")
		return
	}

	if err := Accept(s, req.ModifiedPlan, time.Now()); err != nil {
		respondTransitionError(w, err)
		return
	}

	if err := Update(r.Context(), s); err != nil {
		log.Printf("Error updating suggestion %s: %v", suggestionID, err)
		utils.Error(w, http.StatusInternalServerError, "Failed to update suggestion")
		return
	}

	if err := applyToItinerary(r, s, req.ModifiedPlan); err != nil {
		log.Printf("Error applying suggestion %s to itinerary: %v", suggestionID, err)
		utils.Error(w, http.StatusInternalServerError, "Failed to update itinerary")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"message":    "Suggestion applied",
		"suggestion": s,
	})
}

type rejectRequest struct {
	Feedback string `json:"feedback"`
}

// RejectSuggestion resolves a pending suggestion as declined.
func (h *Handler) RejectSuggestion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	suggestionID := ps.ByName("suggestionid")

	var req rejectRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
		defer r.Body.Close()
	}

	s, err := FindByID(r.Context(), suggestionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Suggestion not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch suggestion")
		return
	}

	if err := Reject(s, req.Feedback, time.Now()); err != nil {
		respondTransitionError(w, err)
		return
	}

	if err := Update(r.Context(), s); err != nil {
		log.Printf("Error updating suggestion %s: %v", suggestionID, err)
		utils.Error(w, http.StatusInternalServerError, "Failed to update suggestion")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"message":    "Suggestion rejected",
		"suggestion": s,
	})
}

func respondTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrExpired):
		utils.Error(w, http.StatusGone, err.Error())
	default:
		utils.Error(w, http.StatusBadRequest, err.Error())
	}
}

// applyToItinerary folds a resolved suggestion into its itinerary's day
// schedule and records the application.
func applyToItinerary(r *http.Request, s *models.Suggestion, modifiedPlan []models.Activity) error {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": s.ItineraryID}).Decode(&it)
	if err != nil {
		return err
	}

	day := it.DayByIndex(s.Day)
	if day == nil {
		return fmt.Errorf("day %d not found in itinerary %s", s.Day, s.ItineraryID)
	}

	switch {
	case len(modifiedPlan) > 0:
		day.Activities = modifiedPlan
	case s.Type == models.SuggestionEvent && s.Changes.Event != nil:
		day.Activities = append(day.Activities, models.Activity{
			Time:     s.Changes.Event.Time,
			Name:     s.Changes.Event.Activity,
			Location: s.Changes.Event.Location,
			Category: "event",
			Notes:    "Added from suggestion: " + s.Title,
		})
		day.EventEnhanced = true
	case s.Type == models.SuggestionWeather:
		day.WeatherAlert = true
	}

	it.AppliedSuggestions = append(it.AppliedSuggestions, s.SuggestionID)
	it.UpdatedAt = time.Now()

	_, err = db.ItineraryCollection.UpdateOne(ctx,
		bson.M{"itineraryid": it.ItineraryID},
		bson.M{"$set": bson.M{
			"days":                it.Days,
			"applied_suggestions": it.AppliedSuggestions,
			"updated_at":          it.UpdatedAt,
		}},
	)
	return err
}

func contextWithTimeout(r *http.Request) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}
