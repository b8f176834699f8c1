// Package naming provides the case conversion and singularisation helpers
// used to synthesize IR names.
package naming

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isSeparator reports whether r splits words. Anything that is neither a
// letter nor a digit counts, so "Pet Store (v2)" yields three words.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space and other punctuation)
// trigger capitalization of the next letter. Existing capitals are kept.
// Example: "user_profile" -> "UserProfile"
// Example: "Swagger Petstore" -> "SwaggerPetstore"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	titleCaser := cases.Title(language.English, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true

	for _, r := range s {
		if isSeparator(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "getPets_response" -> "getPetsResponse"
// Example: "_status" -> "status"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Singular returns the English singular form of a word.
// Example: "pets" -> "pet", "categories" -> "category"
func Singular(s string) string {
	if s == "" {
		return ""
	}
	return inflection.Singular(s)
}
