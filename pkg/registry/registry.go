// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadRegistry reads a registry JSON file. Activities missing from the file
// keep their built-in definition.
func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	for _, a := range reg.Activities {
		if a.TaskType == "" {
			return nil, fmt.Errorf("registry %s: activity %q has no taskType", path, a.ID)
		}
	}

	merged := Default()
	for _, a := range reg.Activities {
		merged.put(a)
	}
	if reg.Version != "" {
		merged.Version = reg.Version
	}
	if reg.LastUpdated != "" {
		merged.LastUpdated = reg.LastUpdated
	}
	return merged, nil
}

// Find returns the activity registered for taskType.
func (r *ActivityRegistry) Find(taskType string) (Activity, bool) {
	for _, a := range r.Activities {
		if a.TaskType == taskType {
			return a, true
		}
	}
	return Activity{}, false
}

// InputSchema returns the input schema for taskType, or nil when none is registered.
func (r *ActivityRegistry) InputSchema(taskType string) map[string]interface{} {
	a, ok := r.Find(taskType)
	if !ok {
		return nil
	}
	return a.InputSchema
}

func (r *ActivityRegistry) put(a Activity) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == a.TaskType {
			r.Activities[i] = a
			return
		}
	}
	r.Activities = append(r.Activities, a)
}

// Default returns the built-in registry. Each call returns a fresh copy.
func Default() *ActivityRegistry {
	return &ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: "2026-10-01",
		Activities: []Activity{
			{
				ID:          "scholarship.matching.match",
				DisplayName: "Match Scholarships",
				Description: "Filters, scores, ranks and explains scholarships for a student profile",
				Category:    "matching",
				Version:     "1.0.0",
				TaskType:    "match-scholarships",
				InputSchema: object{
					"type":     "object",
					"required": []interface{}{"profile"},
					"properties": object{
						"profile":      profileSchema,
						"scholarships": listOf(scholarshipSchema),
						"locale":       localeSchema,
						"limit":        object{"type": "integer", "minimum": 1, "maximum": 100},
					},
				},
				ErrorCodes: []string{"INVALID_MATCH_INPUT", "PROFILE_VALIDATION_FAILED", "INVALID_LOCALE", "SCHOLARSHIP_SOURCE_FAILED", "SCHOLARSHIP_SOURCE_TIMEOUT"},
				Timeout:    "45s",
				Retries:    3,
				Tags:       []string{"matching", "genai"},
			},
			{
				ID:          "scholarship.eligibility.check",
				DisplayName: "Check Scholarship Eligibility",
				Description: "Reports per-rule eligibility of each scholarship for a profile",
				Category:    "matching",
				Version:     "1.0.0",
				TaskType:    "check-scholarship-eligibility",
				InputSchema: object{
					"type":     "object",
					"required": []interface{}{"profile", "scholarships"},
					"properties": object{
						"profile":      profileSchema,
						"scholarships": listOf(scholarshipSchema),
					},
				},
				ErrorCodes: []string{"INVALID_MATCH_INPUT", "PROFILE_VALIDATION_FAILED"},
				Timeout:    "10s",
				Tags:       []string{"matching"},
			},
			{
				ID:          "scholarship.score.calculate",
				DisplayName: "Calculate Match Score",
				Description: "Scores one scholarship against a profile",
				Category:    "matching",
				Version:     "1.0.0",
				TaskType:    "calculate-match-score",
				InputSchema: object{
					"type":     "object",
					"required": []interface{}{"profile", "scholarship"},
					"properties": object{
						"profile":     profileSchema,
						"scholarship": scholarshipSchema,
					},
				},
				ErrorCodes: []string{"INVALID_MATCH_INPUT", "PROFILE_VALIDATION_FAILED"},
				Timeout:    "10s",
				Tags:       []string{"matching"},
			},
			{
				ID:          "scholarship.ranking.apply",
				DisplayName: "Apply Relevance Ranking",
				Description: "Filters and ranks scholarships, keeping the top entries",
				Category:    "matching",
				Version:     "1.0.0",
				TaskType:    "apply-relevance-ranking",
				InputSchema: object{
					"type":     "object",
					"required": []interface{}{"profile", "scholarships"},
					"properties": object{
						"profile":      profileSchema,
						"scholarships": listOf(scholarshipSchema),
						"limit":        object{"type": "integer", "minimum": 1},
					},
				},
				ErrorCodes: []string{"INVALID_MATCH_INPUT", "PROFILE_VALIDATION_FAILED"},
				Timeout:    "10s",
				Tags:       []string{"matching"},
			},
			{
				ID:          "scholarship.explanation.generate",
				DisplayName: "Generate Match Explanations",
				Description: "Annotates preliminary matches with ratings and explanations",
				Category:    "matching",
				Version:     "1.0.0",
				TaskType:    "generate-match-explanations",
				InputSchema: object{
					"type":     "object",
					"required": []interface{}{"profile", "matches"},
					"properties": object{
						"profile": profileSchema,
						"matches": listOf(preliminaryMatchSchema),
						"locale":  localeSchema,
					},
				},
				ErrorCodes: []string{"INVALID_MATCH_INPUT", "INVALID_LOCALE"},
				Timeout:    "45s",
				Tags:       []string{"matching", "genai"},
			},
			{
				ID:          "scholarship.notification.send",
				DisplayName: "Notify Scholarship Matches",
				Description: "Sends a student their top matches by email or SMS",
				Category:    "communication",
				Version:     "1.0.0",
				TaskType:    "notify-scholarship-matches",
				InputSchema: object{
					"type":     "object",
					"required": []interface{}{"channel", "matches"},
					"properties": object{
						"channel":     object{"type": "string", "enum": []interface{}{"email", "sms"}},
						"email":       object{"type": "string"},
						"phoneNumber": object{"type": "string"},
						"studentName": object{"type": "string"},
						"locale":      localeSchema,
						"matches":     object{"type": "array"},
					},
				},
				ErrorCodes: []string{"RECIPIENT_MISSING", "NOTIFICATION_SEND_FAILED"},
				Timeout:    "30s",
				Retries:    3,
				Tags:       []string{"communication", "aws"},
			},
		},
	}
}
