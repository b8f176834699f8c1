// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// OAS 2.0 reference prefixes
const (
	RefPrefixDefinitions         = "#/definitions/"
	RefPrefixParameters          = "#/parameters/"
	RefPrefixResponses           = "#/responses/"
	RefPrefixSecurityDefinitions = "#/securityDefinitions/"
)

// Reference types reported by RefType.
const (
	RefTypeLocal = "local"
	RefTypeFile  = "file"
	RefTypeHTTP  = "http"
)

// DefinitionRef builds "#/definitions/{name}".
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + EscapeToken(name)
}

// ParameterRef builds "#/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + EscapeToken(name)
}

// ResponseRef builds "#/responses/{name}".
func ResponseRef(name string) string {
	return RefPrefixResponses + EscapeToken(name)
}

// IsLocal reports whether ref points into the current document.
func IsLocal(ref string) bool {
	return strings.HasPrefix(ref, "#")
}

// RefType classifies a reference as local, file or http.
func RefType(ref string) string {
	switch {
	case IsLocal(ref):
		return RefTypeLocal
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return RefTypeHTTP
	default:
		return RefTypeFile
	}
}

// IsDefinitionRef reports whether ref targets the definitions section.
func IsDefinitionRef(ref string) bool {
	return strings.HasPrefix(ref, RefPrefixDefinitions)
}

// IsResponseRef reports whether ref targets the shared responses section.
func IsResponseRef(ref string) bool {
	return strings.HasPrefix(ref, RefPrefixResponses)
}

// TrimPrefix returns the part of ref after prefix, or "" when ref does not
// start with prefix. The remainder is returned as written, unescaped.
func TrimPrefix(ref, prefix string) string {
	if !strings.HasPrefix(ref, prefix) {
		return ""
	}
	return ref[len(prefix):]
}
