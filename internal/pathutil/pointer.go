// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// SplitPointer splits a local reference such as "#/definitions/Pet" into its
// unescaped tokens ("definitions", "Pet"). The leading "#" and the empty
// token after it are dropped; "#" alone yields no tokens.
func SplitPointer(ref string) []string {
	ptr := strings.TrimPrefix(ref, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return nil
	}
	parts := strings.Split(ptr, "/")
	for i, p := range parts {
		parts[i] = UnescapeToken(p)
	}
	return parts
}

// UnescapeToken unescapes a JSON Pointer token.
// Per RFC 6901, ~1 represents / and ~0 represents ~
func UnescapeToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// EscapeToken escapes a key for use as a JSON Pointer token.
func EscapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return token
}

// LastSegment returns the text after the final "/" of ref, as written.
func LastSegment(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
