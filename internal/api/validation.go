package api

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Request structs carry gin `binding` tags; read those so handlers can
	// re-run the same rules to build field-level 422 bodies.
	v.SetTagName("binding")
	// Report errors under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs struct-tag validation and returns violations keyed by
// json field name.
func ValidateStruct(s interface{}) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs := make(map[string][]string)
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		errs[field] = append(errs[field], fieldErrorMessage(fe))
	}
	return errs
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "the " + fe.Field() + " field is required"
	case "email":
		return "the " + fe.Field() + " must be a valid email address"
	case "min":
		return "the " + fe.Field() + " must be at least " + fe.Param()
	case "max":
		return "the " + fe.Field() + " may not be greater than " + fe.Param()
	case "gte":
		return "the " + fe.Field() + " must be greater than or equal to " + fe.Param()
	case "datetime":
		return "the " + fe.Field() + " does not match the format " + fe.Param()
	default:
		return "the " + fe.Field() + " is invalid"
	}
}

// RespondValidationErrors writes the standard 422 body for field violations.
func RespondValidationErrors(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: errs})
}
