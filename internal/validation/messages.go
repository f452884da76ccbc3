// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// errorMessageTemplates maps tags to messages taking the field name.
var errorMessageTemplates = map[string]string{
	"required":   "%s is required",
	"notblank":   "%s is required",
	"httpurl":    "%s must be a valid http or https URL",
	"looseemail": "%s must be a valid email address",
	"eqfield":    "%s does not match",
}

// errorMessageWithParam maps tags to messages taking the field name and the
// tag parameter.
var errorMessageWithParam = map[string]string{
	"oneof":   "%s must be one of: %s",
	"trimmin": "%s must be at least %s characters",
	"trimmax": "%s must be at most %s characters",
	"gte":     "%s must be greater than or equal to %s",
	"lte":     "%s must be less than or equal to %s",
	"gt":      "%s must be greater than %s",
	"lt":      "%s must be less than %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}
	return translateMinMax(fe, field, tag, param)
}

// translateMinMax words min/max by the kind of field.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	var unit string
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
