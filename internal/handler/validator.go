package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RatingTable_Go/internal/mechanics"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator. Safe to call more than once
// and from concurrent requests.
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("stat", validateStat)
		_ = v.RegisterValidation("class", validateClass)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "stat":
			errs[field] = ErrMsgUnknownStat
		case "class":
			errs[field] = "Unknown class"
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidClasses defines the classes with a known melee haste conversion
var ValidClasses = map[mechanics.Class]bool{
	mechanics.ClassDruid:   true,
	mechanics.ClassHunter:  true,
	mechanics.ClassMage:    true,
	mechanics.ClassPaladin: true,
	mechanics.ClassPriest:  true,
	mechanics.ClassRogue:   true,
	mechanics.ClassShaman:  true,
	mechanics.ClassWarlock: true,
	mechanics.ClassWarrior: true,
}

func validateStat(fl validator.FieldLevel) bool {
	_, err := mechanics.ParseStat(fl.Field().String())
	return err == nil
}

func validateClass(fl validator.FieldLevel) bool {
	class := fl.Field().String()
	if class == "" {
		return true
	}
	return ValidClasses[mechanics.Class(strings.ToLower(class))]
}
