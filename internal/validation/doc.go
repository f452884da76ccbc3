// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

// Package validation checks request forms with go-playground/validator v10.
//
// # Overview
//
// A single validator instance is built once and shared. Field names in
// errors are the JSON names of the request body, so messages read the way
// clients send data ("text must be at least 3 characters").
//
// Custom tags registered on top of the built-ins:
//
//	notblank    non-empty after trimming whitespace
//	trimmin=N   at least N characters after trimming
//	trimmax=N   at most N characters after trimming
//	httpurl     absolute http or https URL with a host
//	looseemail  something@domain.tld with no whitespace
//
// Lengths are counted in runes, so "Çiçek" is five characters.
//
// # Forms
//
// Each screen's input has a form type (FilmForm, CommentForm, SignupForm,
// LoginForm, ProfileForm, PreferencesForm, WatchlistForm, ImportForm).
// Forms with free text expose a normalizing method returning the trimmed
// domain input that is actually stored.
//
// # Errors
//
// ValidateStruct returns *RequestValidationError listing every violation in
// field order. ToAPIError surfaces only the first message, matching what a
// form shows under its submit button, and lists all of them in details:
//
//	if verr := validation.ValidateStruct(&form); verr != nil {
//	    respondValidationError(w, verr)
//	    return
//	}
package validation
