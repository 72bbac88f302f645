package helpers

import (
	"github.com/go-playground/validator/v10"
	"github.com/moneta-app/moneta-backend/internal/domain/models"
)

// ValidateCollectionDocument runs a document against the collection's
// creation rules and returns the aggregated failure message, or "" when the
// document passes. Every write path into a collection goes through this,
// whether the record arrives as JSON or as a spreadsheet row.
func ValidateCollectionDocument(validate *validator.Validate, col models.Collection, doc map[string]interface{}) string {
	if len(col.CreateRules) == 0 {
		return ""
	}

	fields := map[string]interface{}{}
	for field := range col.CreateRules {
		fields[field] = doc[field]
	}

	fieldErrs := validate.ValidateMap(fields, col.CreateRules)
	if len(fieldErrs) == 0 {
		return ""
	}
	return GetMapErrorMessages(validate, fieldErrs)
}
