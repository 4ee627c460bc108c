package utils

import (
	"net/http"
	"strconv"

	"wayfare/models"
)

type QueryOptions struct {
	Page   int
	Limit  int
	Status string
	Search string
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	return QueryOptions{
		Page:   page,
		Limit:  limit,
		Status: q.Get("status"),
		Search: q.Get("search"),
	}
}

// ParseDateRange reads startDate/endDate query params; endDate falls back
// to startDate when absent.
func ParseDateRange(r *http.Request) (models.Date, models.Date, error) {
	q := r.URL.Query()

	start, err := models.ParseDate(q.Get("startDate"))
	if err != nil {
		return models.Date{}, models.Date{}, err
	}

	endStr := q.Get("endDate")
	if endStr == "" {
		return start, start, nil
	}

	end, err := models.ParseDate(endStr)
	if err != nil {
		return models.Date{}, models.Date{}, err
	}
	return start, end, nil
}
