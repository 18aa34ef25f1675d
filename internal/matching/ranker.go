package matching

import (
	"sort"

	"scholarship-matcher/internal/models"
)

// DefaultLimit is the number of candidates TopMatches keeps when no limit is given.
const DefaultLimit = 15

// Rank scores every scholarship and sorts by score descending. Ties keep input order.
func Rank(scholarships []models.Scholarship, profile models.Profile) []models.PreliminaryMatch {
	ranked := make([]models.PreliminaryMatch, 0, len(scholarships))
	for _, s := range scholarships {
		ranked = append(ranked, Score(s, profile))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopMatches returns the highest-scored prefix of Rank. A non-positive limit means DefaultLimit.
func TopMatches(scholarships []models.Scholarship, profile models.Profile, limit int) []models.PreliminaryMatch {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ranked := Rank(scholarships, profile)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
