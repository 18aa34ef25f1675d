package matching

import "strings"

// RelatedFields maps a scholarship's field of study to the profile fields that
// earn partial credit. The relation is neither symmetric (Engineering does not
// list Medicine, Science does) nor transitive.
var RelatedFields = map[string][]string{
	"engineering":     {"technology", "science"},
	"technology":      {"engineering", "science"},
	"science":         {"engineering", "medicine", "technology"},
	"medicine":        {"science"},
	"business":        {"law", "education"},
	"law":             {"business", "social sciences"},
	"education":       {"business", "social sciences", "humanities"},
	"arts":            {"humanities"},
	"humanities":      {"arts", "social sciences", "education"},
	"social sciences": {"humanities", "law", "education", "business"},
	"agriculture":     {"science"},
}

// Region names used by the country factor.
const (
	RegionAfrica = "africa"
	RegionMENA   = "mena"
	RegionArab   = "arab"
)

// Regions maps a region name to its ISO 3166-1 alpha-2 country codes.
var Regions = map[string]map[string]struct{}{
	RegionAfrica: codeSet(
		"DZ", "AO", "BJ", "BW", "BF", "BI", "CV", "CM", "CF", "TD",
		"KM", "CD", "CG", "CI", "DJ", "EG", "GQ", "ER", "SZ", "ET",
		"GA", "GM", "GH", "GN", "GW", "KE", "LS", "LR", "LY", "MG",
		"MW", "ML", "MR", "MU", "MA", "MZ", "NA", "NE", "NG", "RW",
		"ST", "SN", "SC", "SL", "SO", "ZA", "SS", "SD", "TZ", "TG",
		"TN", "UG", "ZM", "ZW",
	),
	RegionMENA: codeSet(
		"DZ", "BH", "EG", "IQ", "JO", "KW", "LB", "LY", "MA", "OM",
		"PS", "QA", "SA", "SY", "TN", "AE", "YE", "IR", "TR", "SD",
		"MR", "DJ", "SO", "KM",
	),
	RegionArab: codeSet(
		"DZ", "BH", "KM", "DJ", "EG", "IQ", "JO", "KW", "LB", "LY",
		"MR", "MA", "OM", "PS", "QA", "SA", "SO", "SD", "SY", "TN",
		"AE", "YE",
	),
}

func codeSet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// InRegion reports whether countryCode belongs to region.
func InRegion(region, countryCode string) bool {
	set, ok := Regions[region]
	if !ok {
		return false
	}
	_, in := set[strings.ToUpper(strings.TrimSpace(countryCode))]
	return in
}

// IsRelatedField reports whether profileField earns partial credit for scholarshipField.
func IsRelatedField(scholarshipField, profileField string) bool {
	related := RelatedFields[strings.ToLower(strings.TrimSpace(scholarshipField))]
	return containsFold(related, profileField)
}
