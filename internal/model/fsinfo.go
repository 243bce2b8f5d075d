// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FSInfo, which links a Datafile back to the path it was
// loaded from. Datafiles built in memory (tests, new documents) have no path.

package model

import "path/filepath"

// FSInfo stores file system metadata for a loaded document.
type FSInfo struct {
	Path string
}

// NewFSInfo creates FSInfo for the given path.
func NewFSInfo(path string) *FSInfo {
	return &FSInfo{Path: path}
}

// Base returns the last element of the path, or "" when unknown.
func (f *FSInfo) Base() string {
	if f == nil || f.Path == "" {
		return ""
	}
	return filepath.Base(f.Path)
}
