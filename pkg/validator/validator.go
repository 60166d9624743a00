package validator

import (
	"strings"

	"doctor-triage/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("specialization", validateSpecialization)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateSpecialization(fl validator.FieldLevel) bool {
	return entity.Specialization(fl.Field().String()).IsValid()
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of " + strings.Join(strings.Fields(e.Param()), ", ")
			case "specialization":
				errors[field] = field + " must be one of " + specializationList()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func specializationList() string {
	specs := entity.Specializations()
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
