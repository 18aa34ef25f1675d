package matching

import (
	"fmt"

	"scholarship-matcher/internal/models"
)

// LevelForScore maps a preliminary score to a tier: >=80 excellent, >=60 good, else fair.
func LevelForScore(score int) models.MatchLevel {
	switch {
	case score >= 80:
		return models.MatchExcellent
	case score >= 60:
		return models.MatchGood
	default:
		return models.MatchFair
	}
}

// StrongestFactor returns the factor with the highest awarded score; the
// earliest wins a tie.
func StrongestFactor(factors []models.MatchFactor) (models.MatchFactor, bool) {
	if len(factors) == 0 {
		return models.MatchFactor{}, false
	}
	best := factors[0]
	for _, f := range factors[1:] {
		if f.Score > best.Score {
			best = f
		}
	}
	return best, true
}

var factorLabels = map[models.FactorType]models.Bilingual{
	models.FactorGPA:     {EN: "academic record", AR: "السجل الأكاديمي"},
	models.FactorField:   {EN: "field of study", AR: "مجال الدراسة"},
	models.FactorLevel:   {EN: "study level", AR: "المرحلة الدراسية"},
	models.FactorFunding: {EN: "funding", AR: "التمويل"},
	models.FactorCountry: {EN: "country eligibility", AR: "أهلية الدولة"},
}

var tierWording = map[models.MatchLevel]models.Bilingual{
	models.MatchExcellent: {
		EN: "This scholarship is an excellent match for your profile.",
		AR: "هذه المنحة مناسبة جداً لملفك الشخصي.",
	},
	models.MatchGood: {
		EN: "This scholarship is a good match for your profile.",
		AR: "هذه المنحة مناسبة لملفك الشخصي.",
	},
	models.MatchFair: {
		EN: "This scholarship may suit you, but review its requirements carefully.",
		AR: "قد تناسبك هذه المنحة، لكن راجع شروطها بعناية.",
	},
}

// FallbackExplanation renders the template explanation for m in locale: the
// tier wording followed by the strongest factor and its detail.
func FallbackExplanation(m models.PreliminaryMatch, locale models.Locale) string {
	text := tierWording[LevelForScore(m.Score)].In(locale)

	strongest, ok := StrongestFactor(m.Factors)
	if !ok {
		return text
	}
	label := factorLabels[strongest.Type].In(locale)
	detail := strongest.Detail.In(locale)

	if locale == models.LocaleAR {
		return fmt.Sprintf("%s أقوى عامل: %s (%s).", text, label, detail)
	}
	return fmt.Sprintf("%s Strongest factor: %s (%s).", text, label, detail)
}
