// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package catalog

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported interface languages.
const (
	LanguageTurkish = "tr"
	LanguageEnglish = "en"
)

// NormalizeLanguage maps any BCP 47 tag to a supported language, falling
// back to Turkish.
func NormalizeLanguage(lang string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return LanguageTurkish
	}
	base, _ := tag.Base()
	if base.String() == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageTurkish
}

func languageTag(lang string) language.Tag {
	if NormalizeLanguage(lang) == LanguageEnglish {
		return language.English
	}
	return language.Turkish
}

var monthAbbrev = map[string][12]string{
	LanguageTurkish: {"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},
	LanguageEnglish: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}
