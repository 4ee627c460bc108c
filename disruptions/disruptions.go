package disruptions

import (
	"context"
	"math/rand"
	"time"

	"wayfare/models"
)

// Service produces disruption reports for a destination. The generator is
// seeded so tests and replays get a stable sequence; a zero seed falls
// back to the wall clock.
type Service struct {
	rng *rand.Rand
}

func NewService(seed int64) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{rng: rand.New(rand.NewSource(seed))}
}

// CurrentDisruptions reports transport and closure disruptions affecting
// the destination over the date range. Roughly 60% of calls report
// nothing at all.
func (s *Service) CurrentDisruptions(ctx context.Context, destination string, start, end models.Date) ([]models.DisruptionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	catalog := []models.DisruptionRecord{
		{
			Type:          models.DisruptionTransport,
			Title:         "Metro Line Maintenance",
			Description:   "Metro line undergoing scheduled maintenance on weekends",
			Severity:      models.SeverityModerate,
			AffectedDates: weekendDates(start, end),
			Mitigation:    "Use alternative bus routes or taxi services",
		},
		{
			Type:          models.DisruptionClosure,
			Title:         "City Marathon Road Closures",
			Description:   "Major roads closed for the annual city marathon",
			Severity:      models.SeverityHigh,
			AffectedDates: []models.Date{start},
			Mitigation:    "Plan walking routes or use metro for affected areas",
		},
	}

	// Most ranges see no disruptions.
	if s.rng.Float64() > 0.6 {
		picked := catalog[s.rng.Intn(len(catalog))]
		if len(picked.AffectedDates) > 0 {
			return []models.DisruptionRecord{picked}, nil
		}
	}
	return nil, nil
}

// weekendDates lists every Saturday and Sunday in [start, end].
func weekendDates(start, end models.Date) []models.Date {
	var dates []models.Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			dates = append(dates, d)
		}
	}
	return dates
}
