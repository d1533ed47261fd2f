// Package validator adapts go-playground/validator to echo.Validator and the domain validation error.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/errors"
	"enginex/internal/util"

	"github.com/go-playground/validator/v10"
)

// moroccanPhone matches the national form NormalizePhone produces for mobile and landline numbers.
var moroccanPhone = regexp.MustCompile(`^0[5-7][0-9]{8}$`)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a validator with the marketplace tags registered.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	mustRegister(validate, "region", func(fl validator.FieldLevel) bool {
		return entity.Region(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "condition", func(fl validator.FieldLevel) bool {
		return entity.Condition(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "plan", func(fl validator.FieldLevel) bool {
		return entity.ParseAccountType(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "badge", func(fl validator.FieldLevel) bool {
		return entity.Badge(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "phone_ma", func(fl validator.FieldLevel) bool {
		return moroccanPhone.MatchString(util.NormalizePhone(fl.Field().String()))
	})

	return &RequestValidator{validate: validate}
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(errors.Wrapf(err, "register validation %q", tag))
	}
}

// Validate checks a request struct. Rule failures come back as *domainerrors.ValidationError.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate request")
	}

	var fields domainerrors.FieldErrors
	for _, fieldErr := range validationErrs {
		fields.Add(fieldName(fieldErr), fieldErr.Tag(), message(fieldErr))
	}

	return fields.Err()
}

// fieldName keeps the last namespace segment, so fields promoted from embedded forms
// are reported as "title" rather than "AdminCreateListingRequest.PublishListingRequest.title".
func fieldName(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.LastIndexByte(namespace, '.'); idx >= 0 {
		return namespace[idx+1:]
	}

	return fieldErr.Field()
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "phone_ma":
		return "must be a Moroccan phone number"
	case "region":
		return "must be one of the twelve regions"
	case "condition":
		return "must be new, good or used"
	case "plan":
		return "must be individual, pro or premium"
	case "badge":
		return "must be none, urgent, top or exclusive"
	case "min", "gte", "gt":
		return "must be at least " + fieldErr.Param()
	case "max", "lte", "lt":
		return "must be at most " + fieldErr.Param()
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "url", "http_url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
