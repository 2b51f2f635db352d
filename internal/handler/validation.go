package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	unknownFieldPrefix = "json: unknown field "

	// noNULTag rejects strings with NUL bytes, which PostgreSQL text columns refuse
	noNULTag = "nonul"
)

var bindingOnce sync.Once

// FieldError describes why a single payload field was rejected
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErrorResponse is the 400 body for rejected payloads
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// ConfigureBinding makes gin reject unknown JSON fields and report
// validation errors under the json field names. Safe to call repeatedly.
func ConfigureBinding() {
	bindingOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
			_ = v.RegisterValidation(noNULTag, noNUL)
		}
	})
}

func noNUL(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), 0)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// bindJSON decodes and validates the body into req. On failure it writes the
// 400 response itself and returns false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, describeBindError(err))
		return false
	}
	return true
}

func describeBindError(err error) ValidationErrorResponse {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)

	switch {
	case errors.As(err, &validationErrs):
		fields := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, FieldError{Field: fe.Field(), Error: describeFieldError(fe)})
		}
		return ValidationErrorResponse{Error: "validation failed", Fields: fields}

	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return ValidationErrorResponse{Error: "request body must be a JSON object"}
		}
		return ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []FieldError{{Field: typeErr.Field, Error: "must be of type " + typeErr.Type.String()}},
		}

	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return ValidationErrorResponse{Error: "malformed JSON body"}

	case errors.Is(err, io.EOF):
		return ValidationErrorResponse{Error: "request body is empty"}

	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		field := strings.TrimPrefix(err.Error(), unknownFieldPrefix)
		if unquoted, uerr := strconv.Unquote(field); uerr == nil {
			field = unquoted
		}
		return ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []FieldError{{Field: field, Error: "unknown field"}},
		}
	}

	return ValidationErrorResponse{Error: "invalid request body"}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case noNULTag:
		return "must not contain NUL characters"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return fmt.Sprintf("failed on the %q rule", fe.Tag())
}
