// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var looseEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func registerCustomValidators(v *validator.Validate) {
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("trimmin", validateTrimMin)
	_ = v.RegisterValidation("trimmax", validateTrimMax)
	_ = v.RegisterValidation("httpurl", validateHTTPURL)
	_ = v.RegisterValidation("looseemail", validateLooseEmail)
}

func stringField(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

func trimmedLength(fl validator.FieldLevel) (int, int, bool) {
	s, ok := stringField(fl)
	if !ok {
		return 0, 0, false
	}
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return 0, 0, false
	}
	return utf8.RuneCountInString(strings.TrimSpace(s)), limit, true
}

func validateNotBlank(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && strings.TrimSpace(s) != ""
}

func validateTrimMin(fl validator.FieldLevel) bool {
	n, limit, ok := trimmedLength(fl)
	return ok && n >= limit
}

func validateTrimMax(fl validator.FieldLevel) bool {
	n, limit, ok := trimmedLength(fl)
	return ok && n <= limit
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	if !ok {
		return false
	}
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateLooseEmail(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && looseEmailPattern.MatchString(strings.TrimSpace(s))
}
