package helpers

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

func GetErrorMessages(validate *validator.Validate, errs error) string {
	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)

	var errorMessages []string
	for _, e := range errs.(validator.ValidationErrors) {
		errorMessages = append(errorMessages, e.Translate(trans))
	}
	return strings.Join(errorMessages, ", ")
}

// GetMapErrorMessages aggregates ValidateMap results into a single
// human-readable message, one clause per failing field.
func GetMapErrorMessages(validate *validator.Validate, fieldErrs map[string]interface{}) string {
	var errorMessages []string
	for field, errVal := range fieldErrs {
		errs, ok := errVal.(validator.ValidationErrors)
		if !ok {
			errorMessages = append(errorMessages, fmt.Sprintf("%s is invalid", field))
			continue
		}
		for _, e := range errs {
			errorMessages = append(errorMessages, fmt.Sprintf("%s failed on the '%s' rule", field, e.Tag()))
		}
	}
	return strings.Join(errorMessages, ", ")
}
