// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package argsplit turns the free-form value a user types into an import or
// setting field into an ordered list of tokens.
//
// Two notations are accepted. When the value contains an unescaped pipe, the
// pipe is the separator and whitespace inside a token is preserved:
//
//	Collections | WITH NAME | Coll   ->  [Collections, WITH NAME, Coll]
//
// Otherwise every run of whitespace separates tokens:
//
//	Collections  WITH NAME  Coll     ->  [Collections, WITH, NAME, Coll]
//
// A backslash-escaped pipe (`\|`) is always a literal pipe character.
package argsplit

import (
	"strings"
	"unicode"
)

const (
	pipe        = '|'
	escapedPipe = `\|`
)

// Split returns the tokens of value. An empty or blank value yields nil.
func Split(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if hasUnescapedPipe(value) {
		return splitOnPipes(value)
	}

	fields := strings.FieldsFunc(value, unicode.IsSpace)
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(f, escapedPipe, string(pipe))
	}
	return fields
}

// NameAndArgs splits value and separates the first token from the rest.
// An empty value gives an empty name and no args.
func NameAndArgs(value string) (string, []string) {
	parts := Split(value)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

func hasUnescapedPipe(value string) bool {
	escaped := false
	for _, r := range value {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == pipe:
			return true
		}
	}
	return false
}

func splitOnPipes(value string) []string {
	var tokens []string
	var current strings.Builder
	escaped := false

	for _, r := range value {
		switch {
		case escaped:
			if r != pipe {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == pipe:
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	tokens = append(tokens, strings.TrimSpace(current.String()))

	// Pipes at the very start or end of a row only frame it.
	if len(tokens) > 0 && tokens[0] == "" {
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
