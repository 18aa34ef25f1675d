package matching

import (
	"strings"

	"scholarship-matcher/internal/models"
)

// Requirement is a curated entry describing a known scholarship programme.
type Requirement struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	MinGPA  float64  `json:"minGpa"`
	Levels  []string `json:"levels"`
}

// Requirements is searched in order by ResolveRequirement; the first hit wins,
// so more specific programmes must precede broader ones.
var Requirements = []Requirement{
	{Name: "Türkiye Scholarships", Country: "Turkey", MinGPA: 70, Levels: []string{"bachelor", "master", "phd"}},
	{Name: "Chevening Scholarship", Country: "United Kingdom", MinGPA: 75, Levels: []string{"master"}},
	{Name: "DAAD Scholarship", Country: "Germany", MinGPA: 75, Levels: []string{"master", "phd"}},
	{Name: "Fulbright Program", Country: "United States", MinGPA: 80, Levels: []string{"master", "phd"}},
	{Name: "Erasmus Mundus", Country: "European Union", MinGPA: 75, Levels: []string{"master"}},
	{Name: "Chinese Government Scholarship", Country: "China", MinGPA: 70, Levels: []string{"bachelor", "master", "phd"}},
	{Name: "MEXT Scholarship", Country: "Japan", MinGPA: 80, Levels: []string{"bachelor", "master", "phd"}},
	{Name: "Global Korea Scholarship", Country: "Korea", MinGPA: 80, Levels: []string{"bachelor", "master", "phd"}},
	{Name: "Stipendium Hungaricum", Country: "Hungary", MinGPA: 70, Levels: []string{"bachelor", "master", "phd"}},
	{Name: "Australia Awards", Country: "Australia", MinGPA: 75, Levels: []string{"master", "phd"}},
	{Name: "Commonwealth Scholarship", Country: "United Kingdom", MinGPA: 80, Levels: []string{"master", "phd"}},
	{Name: "Mastercard Foundation Scholars", Country: "Canada", MinGPA: 70, Levels: []string{"bachelor", "master"}},
	{Name: "Islamic Development Bank Scholarship", Country: "Saudi Arabia", MinGPA: 75, Levels: []string{"bachelor", "master", "phd"}},
	{Name: "Swedish Institute Scholarship", Country: "Sweden", MinGPA: 75, Levels: []string{"master"}},
	{Name: "Holland Scholarship", Country: "Netherlands", MinGPA: 75, Levels: []string{"bachelor", "master"}},
}

// ResolveRequirement finds the curated requirement for s. A requirement
// matches when the English title and the requirement name contain one
// another, or when the title names the requirement's country together with
// "government" or "scholarship". Matching is case-insensitive and heuristic:
// an ambiguous title can resolve to the wrong programme.
func ResolveRequirement(s models.Scholarship) (Requirement, bool) {
	return resolveIn(Requirements, s.Title.EN)
}

func resolveIn(table []Requirement, title string) (Requirement, bool) {
	title = strings.ToLower(strings.TrimSpace(title))
	// An empty title would contain-match every entry, so it resolves to nothing.
	if title == "" {
		return Requirement{}, false
	}

	for _, req := range table {
		name := strings.ToLower(req.Name)
		if strings.Contains(title, name) || strings.Contains(name, title) {
			return req, true
		}
		country := strings.ToLower(req.Country)
		if strings.Contains(title, country) &&
			(strings.Contains(title, "government") || strings.Contains(title, "scholarship")) {
			return req, true
		}
	}
	return Requirement{}, false
}

// SupportsLevel reports whether the requirement covers level, case-insensitively.
func (r Requirement) SupportsLevel(level string) bool {
	return containsFold(r.Levels, level)
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
