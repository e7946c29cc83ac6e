// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package validation

import (
	"strconv"
	"strings"
)

// Path parameter shapes. Integers are validated as digit strings before
// conversion so that "2015abc" and "-1" are rejected with a field message.
type (
	genreParam struct {
		Genre string `param:"genero" validate:"required,notblank,max=200"`
	}
	yearParam struct {
		Year string `param:"year" validate:"required,number,max=9"`
	}
	itemParam struct {
		ItemID string `param:"item_id" validate:"required,number,max=18"`
	}
	userParam struct {
		UserID string `param:"user_id" validate:"required,notblank,max=200"`
	}
)

// ParseGenre validates a {genero} path value. Surrounding whitespace is kept
// because genre names are matched exactly.
func ParseGenre(raw string) (string, *RequestValidationError) {
	if verr := ValidateStruct(&genreParam{Genre: raw}); verr != nil {
		return "", verr
	}
	return raw, nil
}

// ParseYear validates a {year} path value.
func ParseYear(raw string) (int, *RequestValidationError) {
	raw = strings.TrimSpace(raw)
	if verr := ValidateStruct(&yearParam{Year: raw}); verr != nil {
		return 0, verr
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, conversionError("year", raw)
	}
	return year, nil
}

// ParseItemID validates an {item_id} path value.
func ParseItemID(raw string) (int64, *RequestValidationError) {
	raw = strings.TrimSpace(raw)
	if verr := ValidateStruct(&itemParam{ItemID: raw}); verr != nil {
		return 0, verr
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, conversionError("item_id", raw)
	}
	return id, nil
}

// ParseUserID validates a {user_id} path value.
func ParseUserID(raw string) (string, *RequestValidationError) {
	if verr := ValidateStruct(&userParam{UserID: raw}); verr != nil {
		return "", verr
	}
	return raw, nil
}

func conversionError(field, raw string) *RequestValidationError {
	return &RequestValidationError{fields: []FieldError{{
		Field:   field,
		Tag:     "number",
		Value:   raw,
		Message: messages["number"](field, "", ""),
	}}}
}
