package weather

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"wayfare/models"
	"wayfare/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetForecast returns the reduced daily forecast for a location and date
// range given as query parameters.
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	location := r.URL.Query().Get("location")
	if location == "" {
		utils.Error(w, http.StatusBadRequest, "location is required")
		return
	}

	start, end, err := utils.ParseDateRange(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	forecast, err := h.service.Forecast(r.Context(), location, start, end)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch forecast")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"location": location,
		"forecast": forecast,
	})
}

// GetWeatherDisruptions reports which days in the range carry weather
// issues, with indoor alternatives for each.
func (h *Handler) GetWeatherDisruptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	location := r.URL.Query().Get("location")
	if location == "" {
		utils.Error(w, http.StatusBadRequest, "location is required")
		return
	}

	start, end, err := utils.ParseDateRange(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	forecast, err := h.service.Forecast(r.Context(), location, start, end)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch forecast")
		return
	}

	disrupted := DetectDisruptions(forecast)

	type disruptedDay struct {
		models.WeatherDisruptionDay
		Alternatives []models.Alternative `json:"alternatives"`
	}

	days := make([]disruptedDay, 0, len(disrupted))
	for _, d := range disrupted {
		days = append(days, disruptedDay{
			WeatherDisruptionDay: d,
			Alternatives:         SuggestIndoorAlternatives(d.Forecast),
		})
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"location":       location,
		"disrupted_days": days,
	})
}
