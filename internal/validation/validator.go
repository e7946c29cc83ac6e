// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CodeValidationError is the API error code for rejected request input.
const CodeValidationError = "VALIDATION_ERROR"

// FieldError describes one rejected parameter.
type FieldError struct {
	Field   string // URL parameter name, e.g. "year"
	Tag     string // failing rule, e.g. "number"
	Param   string // rule argument, e.g. "200" for max=200
	Value   any
	Message string
}

// RequestValidationError collects every rejected parameter of a request.
type RequestValidationError struct {
	fields []FieldError
}

// Errors returns the individual parameter errors.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.fields
}

func (ve *RequestValidationError) Error() string {
	switch len(ve.fields) {
	case 0:
		return "validation failed"
	case 1:
		return ve.fields[0].Message
	}
	var b strings.Builder
	for i, f := range ve.fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Message)
	}
	return b.String()
}

// Code returns CodeValidationError.
func (ve *RequestValidationError) Code() string {
	return CodeValidationError
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(paramName)
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("validation: register notblank: %v", err))
	}
	return v
}

// GetValidator returns the shared validator.
func GetValidator() *validator.Validate {
	return validate
}

// paramName reports fields by their `param` tag so messages use the URL
// parameter name (genero, year, item_id, user_id).
func paramName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("param"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateStruct validates s and returns nil when it is valid.
func ValidateStruct(s any) *RequestValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}}}
	}

	out := &RequestValidationError{fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.fields = append(out.fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe),
		})
	}
	return out
}

// messages renders a rule failure; unit is " characters" for string fields
// and empty otherwise.
var messages = map[string]func(field, param, unit string) string{
	"required": func(f, _, _ string) string { return f + " is required" },
	"notblank": func(f, _, _ string) string { return f + " must not be blank" },
	"number":   func(f, _, _ string) string { return f + " must be a non-negative integer" },
	"gte":      func(f, p, _ string) string { return fmt.Sprintf("%s must be greater than or equal to %s", f, p) },
	"lte":      func(f, p, _ string) string { return fmt.Sprintf("%s must be less than or equal to %s", f, p) },
	"min":      func(f, p, u string) string { return fmt.Sprintf("%s must be at least %s%s", f, p, u) },
	"max":      func(f, p, u string) string { return fmt.Sprintf("%s must be at most %s%s", f, p, u) },
}

func message(fe validator.FieldError) string {
	render, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	return render(fe.Field(), fe.Param(), unit)
}
