// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	suiteExt    = ".hcl"
	resourceExt = ".resource.hcl"
	initFile    = "__init__.hcl"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

func isResourceFile(path string) bool {
	return strings.HasSuffix(filepath.Base(path), resourceExt)
}

func isInitFile(path string) bool {
	return filepath.Base(path) == initFile
}

// documentName derives a display name from a file or directory path:
// "01__user_login.hcl" becomes "User Login". An ordering prefix ending in
// "__" is dropped, underscores become spaces, and names written entirely in
// lower case are title-cased.
func documentName(path string) string {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, resourceExt):
		base = strings.TrimSuffix(base, resourceExt)
	case strings.HasSuffix(base, suiteExt):
		base = strings.TrimSuffix(base, suiteExt)
	}
	if _, rest, found := strings.Cut(base, "__"); found && rest != "" {
		base = rest
	}
	base = strings.TrimSpace(strings.ReplaceAll(base, "_", " "))
	if base == strings.ToLower(base) {
		base = titleCaser.String(base)
	}
	return base
}
