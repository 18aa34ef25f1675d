// pkg/registry/schema.go
package registry

// ActivityRegistry describes every task type the worker manager can serve.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	ID          string                 `json:"id"`
	DisplayName string                 `json:"displayName"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Version     string                 `json:"version"`
	TaskType    string                 `json:"taskType"`
	InputSchema map[string]interface{} `json:"inputSchema"`
	ErrorCodes  []string               `json:"errorCodes"`
	Timeout     string                 `json:"timeout"`
	Retries     int                    `json:"retries"`
	Tags        []string               `json:"tags"`
}

type object = map[string]interface{}

var localeSchema = object{"type": "string", "enum": []interface{}{"en", "ar"}}

var bilingualSchema = object{
	"type": "object",
	"properties": object{
		"en": object{"type": "string"},
		"ar": object{"type": "string"},
	},
}

var profileSchema = object{
	"type":     "object",
	"required": []interface{}{"gpa", "targetLevel", "fieldsOfStudy", "country"},
	"properties": object{
		"gpa":          object{"type": "number", "minimum": 0, "maximum": 100},
		"currentLevel": object{"type": "string"},
		"targetLevel":  object{"type": "string", "minLength": 1},
		"fieldsOfStudy": object{
			"type":     "array",
			"minItems": 1,
			"items":    object{"type": "string"},
		},
		"country":           object{"type": "string", "minLength": 2, "maxLength": 2},
		"languages":         object{"type": "array", "items": object{"type": "string"}},
		"age":               object{"type": []interface{}{"integer", "null"}, "minimum": 0},
		"fundingPreference": object{"type": "string", "enum": []interface{}{"FULLY_FUNDED_ONLY", "ANY"}},
	},
}

var scholarshipSchema = object{
	"type":     "object",
	"required": []interface{}{"id", "title", "deadline"},
	"properties": object{
		"id":           object{"type": "string", "minLength": 1},
		"title":        bilingualSchema,
		"university":   bilingualSchema,
		"country":      bilingualSchema,
		"deadline":     object{"type": "string", "format": "date-time"},
		"fundingType":  object{"type": "string"},
		"studyLevels":  object{"type": "array", "items": object{"type": "string"}},
		"fieldOfStudy": object{"type": "string"},
	},
}

var preliminaryMatchSchema = object{
	"type":     "object",
	"required": []interface{}{"scholarship", "score"},
	"properties": object{
		"scholarship": scholarshipSchema,
		"score":       object{"type": "integer", "minimum": 0, "maximum": 100},
		"factors":     object{"type": "array"},
	},
}

func listOf(item object) object {
	return object{"type": "array", "items": item}
}
