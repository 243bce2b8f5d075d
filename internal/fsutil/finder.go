// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// Listing is the non-recursive content of one directory, split into files
// matching an extension and sub-directories. Both lists hold full paths
// sorted by base name.
type Listing struct {
	Files []string
	Dirs  []string
}

// ListDir reads a single directory. Hidden entries (leading dot) are skipped.
func ListDir(dirPath string, extension string) (*Listing, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	listing := &Listing{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dirPath, name)
		switch {
		case entry.IsDir():
			listing.Dirs = append(listing.Dirs, full)
		case strings.HasSuffix(name, extension):
			listing.Files = append(listing.Files, full)
		}
	}

	sort.Strings(listing.Files)
	sort.Strings(listing.Dirs)
	return listing, nil
}

// ContainsFiles reports whether any file with the extension exists below dirPath.
func ContainsFiles(dirPath string, extension string) (bool, error) {
	files, err := FindFilesByExtension(dirPath, extension)
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}
