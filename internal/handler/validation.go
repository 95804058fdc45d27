package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/forgo/ascend/api/internal/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance returns the shared validator with the custom rules
// registered.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("hunter_name", func(fl validator.FieldLevel) bool {
			return isValidHunterName(fl.Field().String())
		})
	})
	return validate
}

// isValidHunterName accepts 3 to 32 letters, digits, spaces, underscores or
// hyphens, not starting or ending with a space.
func isValidHunterName(value string) bool {
	if value != strings.TrimSpace(value) {
		return false
	}
	if n := utf8.RuneCountInString(value); n < 3 || n > 32 {
		return false
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '_' && r != '-' {
			return false
		}
	}
	return true
}

// validateRequest runs struct tag validation and converts failures into a
// 422 problem. It returns nil when the request is valid.
func validateRequest(req interface{}) *model.ProblemDetails {
	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return model.NewBadRequestError("invalid request")
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, model.FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return model.NewValidationError(fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "hunter_name":
		return "must be 3 to 32 letters, digits, spaces, underscores or hyphens"
	default:
		return "is invalid"
	}
}

// decodeAndValidate decodes the JSON body into req and validates it. On
// failure it writes the problem response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := DecodeJSON(r, req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return false
	}
	if problem := validateRequest(req); problem != nil {
		WriteError(w, problem)
		return false
	}
	return true
}
