package disruptions

import "wayfare/models"

// CategorizeSeverity maps a severity label to its handling policy.
// Unknown labels get the low policy.
func CategorizeSeverity(severity string) models.SeverityPolicy {
	switch severity {
	case models.SeverityHigh:
		return models.SeverityPolicy{Priority: 1, RequiresAction: true, SuggestReplanning: true}
	case models.SeverityModerate:
		return models.SeverityPolicy{Priority: 2, RequiresAction: true, SuggestReplanning: false}
	default:
		return models.SeverityPolicy{Priority: 3, RequiresAction: false, SuggestReplanning: false}
	}
}
