package disruptions

import (
	"context"
	"time"

	"wayfare/models"
)

// SafetyAlerts returns general advisories for a destination. The baseline
// set is static guidance that applies broadly; destination-specific feeds
// would extend this.
func (s *Service) SafetyAlerts(ctx context.Context, destination string) ([]models.SafetyAlert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	return []models.SafetyAlert{
		{
			Level:       "info",
			Category:    "theft",
			Message:     "Keep valuables secure in crowded tourist areas and on public transport",
			LastUpdated: now,
		},
		{
			Level:       "info",
			Category:    "emergency",
			Message:     "Save local emergency contacts before heading out",
			LastUpdated: now,
		},
	}, nil
}
