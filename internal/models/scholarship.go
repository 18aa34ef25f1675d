// internal/models/scholarship.go
package models

import "time"

// Bilingual holds an English and an Arabic rendering of the same text.
type Bilingual struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// In returns the text for the given locale.
func (b Bilingual) In(locale Locale) string {
	if locale == LocaleAR {
		return b.AR
	}
	return b.EN
}

// LocalizedText returns a pair with only the locale's slot filled.
func LocalizedText(locale Locale, text string) Bilingual {
	if locale == LocaleAR {
		return Bilingual{AR: text}
	}
	return Bilingual{EN: text}
}

// Locale selects the language of generated explanations.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// ParseLocale normalizes a request locale; anything other than Arabic is English.
func ParseLocale(s string) Locale {
	switch s {
	case "ar", "AR", "ar-SA", "ar_SA":
		return LocaleAR
	default:
		return LocaleEN
	}
}

// Funding types as stored after normalization.
const (
	FundingFullyFunded     = "FULLY_FUNDED"
	FundingPartiallyFunded = "PARTIALLY_FUNDED"
)

// Scholarship is a read-only scholarship listing supplied by a Source.
type Scholarship struct {
	ID           string    `json:"id"`
	Title        Bilingual `json:"title"`
	University   Bilingual `json:"university"`
	Country      Bilingual `json:"country"`
	Deadline     time.Time `json:"deadline"`
	FundingType  string    `json:"fundingType"`
	StudyLevels  []string  `json:"studyLevels"`
	FieldOfStudy string    `json:"fieldOfStudy"`
}
