package matching

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"scholarship-matcher/internal/models"
)

// AIMatch is one well-typed entry from the AI response. Rating is empty when
// the entry carried no rating; a rating of any other type is fair.
type AIMatch struct {
	Index       int
	Rating      models.MatchLevel
	Explanation string
}

// AIParseResult is the outcome of parsing an AI response. Matches is only
// meaningful when OK is true.
type AIParseResult struct {
	OK      bool
	Matches []AIMatch
}

var responseSchema = gojsonschema.NewGoLoader(map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"matches"},
	"properties": map[string]interface{}{
		"matches": map[string]interface{}{"type": "array"},
	},
})

// ParseAIResponse extracts the first JSON object from text and coerces its
// matches. Entries without a usable index are dropped; any other shape
// problem makes the whole result not OK.
func ParseAIResponse(text string) AIParseResult {
	raw, ok := firstJSONObject(text)
	if !ok {
		return AIParseResult{}
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return AIParseResult{}
	}

	result, err := gojsonschema.Validate(responseSchema, gojsonschema.NewGoLoader(doc))
	if err != nil || !result.Valid() {
		return AIParseResult{}
	}

	items, _ := doc["matches"].([]interface{})
	matches := make([]AIMatch, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		index, ok := coerceIndex(obj["index"])
		if !ok {
			continue
		}
		m := AIMatch{Index: index}
		if rating, present := obj["rating"]; present && rating != nil {
			m.Rating = NormalizeRating(fmt.Sprint(rating))
		}
		if explanation, ok := obj["explanation"].(string); ok {
			m.Explanation = strings.TrimSpace(explanation)
		}
		matches = append(matches, m)
	}
	return AIParseResult{OK: true, Matches: matches}
}

// NormalizeRating maps free-form English or Arabic rating text to a MatchLevel.
// Unrecognized text is fair.
func NormalizeRating(rating string) models.MatchLevel {
	r := strings.ToLower(rating)
	switch {
	case strings.Contains(r, "excellent") || strings.Contains(r, "ممتاز"):
		return models.MatchExcellent
	case strings.Contains(r, "good") || strings.Contains(r, "جيد"):
		return models.MatchGood
	default:
		return models.MatchFair
	}
}

func coerceIndex(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// firstJSONObject returns the first balanced {...} span in text, skipping
// braces inside JSON strings. Markdown fences and surrounding prose are ignored.
func firstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
