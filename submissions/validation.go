package submissions

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "Field.tag" validation failures to visitor messages.
var fieldMessages = map[string]string{
	"ClientName.required":   "Le nom est requis.",
	"ClientName.max":        "Le nom ne doit pas dépasser 100 caractères.",
	"FeedbackText.required": "Le texte de l'avis est requis.",
	"FeedbackText.max":      "L'avis ne doit pas dépasser 2000 caractères.",
	"Rating.required":       "La note doit être comprise entre 1 et 5.",
	"Rating.min":            "La note doit être comprise entre 1 et 5.",
	"Rating.max":            "La note doit être comprise entre 1 et 5.",
	"Token.required":        "Veuillez valider le reCAPTCHA.",
	"Name.required":         "Le nom est requis.",
	"Name.max":              "Le nom ne doit pas dépasser 100 caractères.",
	"Email.required":        "L'adresse email est requise.",
	"Email.email":           "L'adresse email est invalide.",
	"Email.max":             "L'adresse email est invalide.",
	"Phone.required":        "Le numéro de téléphone est requis.",
	"Phone.max":             "Le numéro de téléphone est invalide.",
	"Budget.required":       "Veuillez sélectionner un budget.",
	"ServiceID.required":    "Veuillez sélectionner un service.",
	"Summary.max":           "La description ne doit pas dépasser 5000 caractères.",
}

const msgInvalidInput = "Données invalides."

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the struct's validate tags and turns the first
// failure into a ValidationFailed error.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			return newError(ErrValidationFailed, msg, nil)
		}
	}
	return newError(ErrValidationFailed, msgInvalidInput, err)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
