package validation

import (
	"encoding/json"
	"fmt"

	"scholarship-matcher/internal/common/errors"
)

// DecodeJob validates job variables against schema and unmarshals them into target.
// Failures are returned as StandardErrors naming the offending part of the input.
func DecodeJob(variables string, schema map[string]interface{}, target interface{}) error {
	result, err := ValidateVariables(variables, schema)
	if err != nil {
		return errors.NewInvalidMatchInputError(fmt.Sprintf("malformed job variables: %v", err))
	}

	if !result.Valid {
		switch {
		case result.HasErrors("locale"):
			return errors.NewInvalidLocaleError(rawLocale(variables)).
				WithMetadata("validationErrors", result.GetErrorMessages())
		case result.HasErrors("profile"):
			return errors.NewProfileValidationFailedError(result.Summary()).
				WithMetadata("validationErrors", result.GetErrorMessages())
		default:
			return errors.NewInvalidMatchInputError(result.Summary()).
				WithMetadata("validationErrors", result.GetErrorMessages())
		}
	}

	if err := json.Unmarshal([]byte(variables), target); err != nil {
		return errors.NewInvalidMatchInputError(fmt.Sprintf("decode job variables: %v", err))
	}
	return nil
}

func rawLocale(variables string) string {
	var v struct {
		Locale interface{} `json:"locale"`
	}
	_ = json.Unmarshal([]byte(variables), &v)
	return fmt.Sprint(v.Locale)
}
