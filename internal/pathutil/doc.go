// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides reference and path helpers for OpenAPI 2.0
// documents.
//
// # Reference Builders
//
// Builders produce JSON Pointer references into the sections of a document,
// escaping the key as a pointer token:
//
//	ref := pathutil.DefinitionRef("Pet")    // "#/definitions/Pet"
//	ref := pathutil.ParameterRef("limit")   // "#/parameters/limit"
//
// # Pointer Tokens
//
// [SplitPointer] breaks a local reference into unescaped tokens, ready for
// member lookups from the document root:
//
//	pathutil.SplitPointer("#/paths/~1pets/get") // ["paths", "/pets", "get"]
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths. It rejects
// symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
