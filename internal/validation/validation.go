// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and flattens
// validation errors into the single message string the API's
// error body carries.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stocklot/commerce-api/internal/errs"
)

// Validatable is implemented by request payload types that know how
// to validate themselves. The typical pattern is a struct with
// validator tags whose Validate method runs validator.Struct on it.
type Validatable interface {
	Validate() error
}

var validate = validator.New()

// Struct runs tag validation on a request payload. Request types call
// this from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Binding populates the struct from the body and path parameters;
// payload must be a pointer. Both bind and validation failures come
// back as 400 HTTPErrors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err))
	}

	if err := payload.Validate(); err != nil {
		return errs.NewBadRequestError(validationMessage(err))
	}

	return nil
}

// bindErrorMessage extracts the human part of Echo's bind error,
// falling back to a fixed message when the format is unexpected.
func bindErrorMessage(err error) string {
	if echoErr, ok := err.(*echo.HTTPError); ok {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
	}
	return "Malformed request body"
}

// validationMessage flattens validator errors into a single
// "Validation failed: ..." string.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed: " + err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		parts = append(parts, fieldMessage(fieldErr))
	}
	return "Validation failed: " + strings.Join(parts, ", ")
}

func fieldMessage(err validator.FieldError) string {
	field := strings.ToLower(err.Field())

	switch err.Tag() {
	case "required":
		return field + " is required"

	case "min":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())

	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", field, err.Param())

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, err.Param())

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", field, err.Tag())
	}
}
