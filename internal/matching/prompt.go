package matching

import (
	"fmt"
	"strings"

	"scholarship-matcher/internal/models"
)

// BuildPrompt renders the explanation request for the AI service in the
// requested locale. Candidates are numbered from 1 in slice order; the
// response's index field refers to that numbering.
func BuildPrompt(matches []models.PreliminaryMatch, profile models.Profile, locale models.Locale) string {
	if locale == models.LocaleAR {
		return buildArabicPrompt(matches, profile)
	}
	return buildEnglishPrompt(matches, profile)
}

func buildEnglishPrompt(matches []models.PreliminaryMatch, profile models.Profile) string {
	var parts []string

	parts = append(parts, "You are an experienced scholarship advisor. Evaluate how well each scholarship below fits the student.")
	parts = append(parts, "\nStudent profile:")
	parts = append(parts, fmt.Sprintf("- GPA: %.1f%%", profile.GPA))
	parts = append(parts, fmt.Sprintf("- Current level: %s", profile.CurrentLevel))
	parts = append(parts, fmt.Sprintf("- Target level: %s", profile.TargetLevel))
	parts = append(parts, fmt.Sprintf("- Fields of study: %s", strings.Join(profile.FieldsOfStudy, ", ")))
	parts = append(parts, fmt.Sprintf("- Country: %s", profile.Country))
	if len(profile.Languages) > 0 {
		parts = append(parts, fmt.Sprintf("- Languages: %s", strings.Join(profile.Languages, ", ")))
	}
	if profile.Age != nil {
		parts = append(parts, fmt.Sprintf("- Age: %d", *profile.Age))
	}
	parts = append(parts, fmt.Sprintf("- Funding preference: %s", fundingPreferenceText(profile, models.LocaleEN)))
	if s := strings.TrimSpace(profile.SpecialCircumstances); s != "" {
		parts = append(parts, fmt.Sprintf("- Special circumstances: %s", s))
	}

	parts = append(parts, "\nScholarships:")
	for i, m := range matches {
		s := m.Scholarship
		parts = append(parts, fmt.Sprintf("%d. %s | University: %s | Country: %s | Preliminary score: %d/100 | Field: %s | Funding: %s",
			i+1, s.Title.EN, s.University.EN, s.Country.EN, m.Score, s.FieldOfStudy, fundingTypeText(s.FundingType, models.LocaleEN)))
	}

	parts = append(parts, "\nInstructions:")
	parts = append(parts, "- Rate each scholarship as excellent, good, or fair")
	parts = append(parts, "- Explain the rating in two or three sentences addressed to the student")
	parts = append(parts, "- Respond in English")
	parts = append(parts, `- Return ONLY a JSON object: {"matches":[{"index":1,"rating":"excellent","explanation":"..."}]}`)
	parts = append(parts, "- index is the scholarship number from the list above")

	return strings.Join(parts, "\n")
}

func buildArabicPrompt(matches []models.PreliminaryMatch, profile models.Profile) string {
	var parts []string

	parts = append(parts, "أنت مستشار منح دراسية خبير. قيّم مدى ملاءمة كل منحة أدناه للطالب.")
	parts = append(parts, "\nملف الطالب:")
	parts = append(parts, fmt.Sprintf("- المعدل: %.1f%%", profile.GPA))
	parts = append(parts, fmt.Sprintf("- المرحلة الحالية: %s", profile.CurrentLevel))
	parts = append(parts, fmt.Sprintf("- المرحلة المطلوبة: %s", profile.TargetLevel))
	parts = append(parts, fmt.Sprintf("- التخصصات: %s", strings.Join(profile.FieldsOfStudy, "، ")))
	parts = append(parts, fmt.Sprintf("- الدولة: %s", profile.Country))
	if len(profile.Languages) > 0 {
		parts = append(parts, fmt.Sprintf("- اللغات: %s", strings.Join(profile.Languages, "، ")))
	}
	if profile.Age != nil {
		parts = append(parts, fmt.Sprintf("- العمر: %d", *profile.Age))
	}
	parts = append(parts, fmt.Sprintf("- تفضيل التمويل: %s", fundingPreferenceText(profile, models.LocaleAR)))
	if s := strings.TrimSpace(profile.SpecialCircumstances); s != "" {
		parts = append(parts, fmt.Sprintf("- ظروف خاصة: %s", s))
	}

	parts = append(parts, "\nالمنح:")
	for i, m := range matches {
		s := m.Scholarship
		parts = append(parts, fmt.Sprintf("%d. %s | الجامعة: %s | الدولة: %s | التقييم المبدئي: %d/100 | المجال: %s | التمويل: %s",
			i+1, arabicOr(s.Title), arabicOr(s.University), arabicOr(s.Country), m.Score, s.FieldOfStudy, fundingTypeText(s.FundingType, models.LocaleAR)))
	}

	parts = append(parts, "\nالتعليمات:")
	parts = append(parts, "- صنّف كل منحة: ممتاز أو جيد أو مقبول")
	parts = append(parts, "- اشرح التصنيف في جملتين أو ثلاث موجهة للطالب")
	parts = append(parts, "- اكتب الشرح باللغة العربية")
	parts = append(parts, `- أعد كائن JSON فقط: {"matches":[{"index":1,"rating":"excellent","explanation":"..."}]}`)
	parts = append(parts, "- index هو رقم المنحة في القائمة أعلاه")

	return strings.Join(parts, "\n")
}

// arabicOr prefers the Arabic text and falls back to English when it is missing.
func arabicOr(b models.Bilingual) string {
	if strings.TrimSpace(b.AR) != "" {
		return b.AR
	}
	return b.EN
}

func fundingPreferenceText(profile models.Profile, locale models.Locale) string {
	if profile.FullyFundedOnly() {
		if locale == models.LocaleAR {
			return "ممولة بالكامل فقط"
		}
		return "fully funded only"
	}
	if locale == models.LocaleAR {
		return "أي نوع تمويل"
	}
	return "any funding"
}

func fundingTypeText(fundingType string, locale models.Locale) string {
	fully := NormalizeFundingType(fundingType) == models.FundingFullyFunded
	switch {
	case fully && locale == models.LocaleAR:
		return "ممولة بالكامل"
	case fully:
		return "fully funded"
	case locale == models.LocaleAR:
		return "ممولة جزئياً"
	default:
		return "partially funded"
	}
}
