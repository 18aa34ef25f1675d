package matching

import (
	"fmt"
	"math"
	"strings"

	"scholarship-matcher/internal/models"
)

// Factor maxima. They sum to 100.
const (
	MaxGPAScore     = 30.0
	MaxFieldScore   = 25.0
	MaxLevelScore   = 20.0
	MaxFundingScore = 15.0
	MaxCountryScore = 10.0
)

// Score computes the preliminary match for one scholarship. Factors are
// returned in the order gpa, field, level, funding, country.
func Score(s models.Scholarship, profile models.Profile) models.PreliminaryMatch {
	factors := []models.MatchFactor{
		gpaFactor(s, profile),
		fieldFactor(s, profile),
		levelFactor(s, profile),
		fundingFactor(s, profile),
		countryFactor(s, profile),
	}
	return models.PreliminaryMatch{
		Scholarship: s,
		Score:       TotalScore(factors),
		Factors:     factors,
	}
}

// TotalScore is round(100 * sum(score) / sum(maxScore)).
func TotalScore(factors []models.MatchFactor) int {
	var awarded, possible float64
	for _, f := range factors {
		awarded += f.Score
		possible += f.MaxScore
	}
	if possible == 0 {
		return 0
	}
	return int(math.Round(100 * awarded / possible))
}

func factor(t models.FactorType, status models.FactorStatus, score, maxScore float64, en, ar string) models.MatchFactor {
	return models.MatchFactor{
		Type:     t,
		Status:   status,
		Score:    score,
		MaxScore: maxScore,
		Detail:   models.Bilingual{EN: en, AR: ar},
	}
}

func gpaFactor(s models.Scholarship, profile models.Profile) models.MatchFactor {
	req, ok := ResolveRequirement(s)
	if !ok {
		return factor(models.FactorGPA, models.StatusMatch, MaxGPAScore, MaxGPAScore,
			"GPA requirement not known, assumed eligible",
			"شرط المعدل غير معروف، يُفترض أنك مؤهل")
	}

	diff := profile.GPA - req.MinGPA
	switch {
	case diff >= 10:
		return factor(models.FactorGPA, models.StatusMatch, MaxGPAScore, MaxGPAScore,
			fmt.Sprintf("Your GPA (%.1f%%) well exceeds the minimum (%.0f%%)", profile.GPA, req.MinGPA),
			fmt.Sprintf("معدلك (%.1f%%) يتجاوز الحد الأدنى (%.0f%%) بفارق كبير", profile.GPA, req.MinGPA))
	case diff >= 0:
		return factor(models.FactorGPA, models.StatusMatch, MaxGPAScore*0.9, MaxGPAScore,
			fmt.Sprintf("Your GPA (%.1f%%) meets the minimum (%.0f%%)", profile.GPA, req.MinGPA),
			fmt.Sprintf("معدلك (%.1f%%) يستوفي الحد الأدنى (%.0f%%)", profile.GPA, req.MinGPA))
	case diff >= -GPABuffer:
		return factor(models.FactorGPA, models.StatusPartial, MaxGPAScore*0.5, MaxGPAScore,
			fmt.Sprintf("Your GPA (%.1f%%) is slightly below the minimum (%.0f%%)", profile.GPA, req.MinGPA),
			fmt.Sprintf("معدلك (%.1f%%) أقل بقليل من الحد الأدنى (%.0f%%)", profile.GPA, req.MinGPA))
	default:
		return factor(models.FactorGPA, models.StatusMismatch, 0, MaxGPAScore,
			fmt.Sprintf("Your GPA (%.1f%%) is below the minimum (%.0f%%)", profile.GPA, req.MinGPA),
			fmt.Sprintf("معدلك (%.1f%%) أقل من الحد الأدنى (%.0f%%)", profile.GPA, req.MinGPA))
	}
}

func fieldFactor(s models.Scholarship, profile models.Profile) models.MatchFactor {
	if containsFold(profile.FieldsOfStudy, s.FieldOfStudy) {
		return factor(models.FactorField, models.StatusMatch, MaxFieldScore, MaxFieldScore,
			fmt.Sprintf("Your field matches %s", s.FieldOfStudy),
			fmt.Sprintf("تخصصك يطابق مجال %s", s.FieldOfStudy))
	}
	for _, f := range profile.FieldsOfStudy {
		if IsRelatedField(s.FieldOfStudy, f) {
			return factor(models.FactorField, models.StatusPartial, MaxFieldScore*0.6, MaxFieldScore,
				fmt.Sprintf("Your field (%s) is related to %s", f, s.FieldOfStudy),
				fmt.Sprintf("تخصصك (%s) مرتبط بمجال %s", f, s.FieldOfStudy))
		}
	}
	return factor(models.FactorField, models.StatusMismatch, MaxFieldScore*0.2, MaxFieldScore,
		fmt.Sprintf("Different field of study (%s)", s.FieldOfStudy),
		fmt.Sprintf("مجال دراسة مختلف (%s)", s.FieldOfStudy))
}

func levelFactor(s models.Scholarship, profile models.Profile) models.MatchFactor {
	if !containsFold(s.StudyLevels, profile.TargetLevel) {
		return factor(models.FactorLevel, models.StatusMismatch, 0, MaxLevelScore,
			fmt.Sprintf("%s study is not offered", profile.TargetLevel),
			fmt.Sprintf("مرحلة %s غير متاحة", profile.TargetLevel))
	}
	if len(s.StudyLevels) == 1 {
		return factor(models.FactorLevel, models.StatusMatch, MaxLevelScore, MaxLevelScore,
			fmt.Sprintf("Dedicated %s programme", profile.TargetLevel),
			fmt.Sprintf("برنامج مخصص لمرحلة %s", profile.TargetLevel))
	}
	return factor(models.FactorLevel, models.StatusMatch, MaxLevelScore*0.9, MaxLevelScore,
		fmt.Sprintf("Offers %s among other levels", profile.TargetLevel),
		fmt.Sprintf("يقدم مرحلة %s ضمن مراحل أخرى", profile.TargetLevel))
}

func fundingFactor(s models.Scholarship, profile models.Profile) models.MatchFactor {
	fully := NormalizeFundingType(s.FundingType) == models.FundingFullyFunded
	switch {
	case fully:
		return factor(models.FactorFunding, models.StatusMatch, MaxFundingScore, MaxFundingScore,
			"Fully funded",
			"ممولة بالكامل")
	case profile.FullyFundedOnly():
		return factor(models.FactorFunding, models.StatusMismatch, 0, MaxFundingScore,
			"Not fully funded",
			"ليست ممولة بالكامل")
	default:
		return factor(models.FactorFunding, models.StatusPartial, MaxFundingScore*0.7, MaxFundingScore,
			"Partially funded",
			"ممولة جزئياً")
	}
}

func countryFactor(s models.Scholarship, profile models.Profile) models.MatchFactor {
	title := strings.ToLower(s.Title.EN)
	country := strings.ToLower(s.Country.EN)

	switch {
	case (strings.Contains(title, "african") || strings.Contains(title, "africa")) &&
		InRegion(RegionAfrica, profile.Country):
		return factor(models.FactorCountry, models.StatusMatch, MaxCountryScore, MaxCountryScore,
			"Targets students from Africa",
			"تستهدف الطلاب من أفريقيا")
	case (strings.Contains(title, "arab") || strings.Contains(title, "mena") || strings.Contains(title, "islamic")) &&
		InRegion(RegionMENA, profile.Country):
		return factor(models.FactorCountry, models.StatusMatch, MaxCountryScore, MaxCountryScore,
			"Targets students from the Middle East and North Africa",
			"تستهدف الطلاب من الشرق الأوسط وشمال أفريقيا")
	case strings.Contains(country, "turkey") && InRegion(RegionArab, profile.Country):
		return factor(models.FactorCountry, models.StatusPartial, MaxCountryScore*0.8, MaxCountryScore,
			"Popular destination for Arab students",
			"وجهة مفضلة للطلاب العرب")
	default:
		return factor(models.FactorCountry, models.StatusPartial, MaxCountryScore*0.5, MaxCountryScore,
			"Open to international students",
			"متاحة للطلاب الدوليين")
	}
}
