// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/suitectl/internal/config"
	"github.com/specialistvlad/suitectl/internal/ctxlog"
	"github.com/specialistvlad/suitectl/internal/fsutil"
	"github.com/specialistvlad/suitectl/internal/model"
)

// DefaultWorkers bounds how many files of one directory are parsed at once.
const DefaultWorkers = 4

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	workers int
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a loader parsing up to workers files concurrently.
// Values below one fall back to DefaultWorkers.
func NewLoader(workers int) *Loader {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Loader{workers: workers}
}

// Load reads the document at path: a directory tree, a suite file or a
// resource file.
func (l *Loader) Load(ctx context.Context, path string) (*model.Datafile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	var df *model.Datafile
	if info.IsDir() {
		df, err = l.loadDirectory(ctx, path)
	} else {
		df, err = loadFile(path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "path", path, "kind", df.Kind)
	return df, nil
}

// loadFile parses one suite or resource file. Each call uses its own
// parser, so files can be parsed from several goroutines.
func loadFile(path string) (*model.Datafile, error) {
	if filepath.Ext(path) != suiteExt {
		return nil, fmt.Errorf("unsupported file %s: expected a %s file", path, suiteExt)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var df *model.Datafile
	allowTests := true
	if isResourceFile(path) {
		df = model.NewResourceFile(documentName(path), model.NewFSInfo(path))
		allowTests = false
	} else {
		df = model.NewTestCaseFile(documentName(path), model.NewFSInfo(path))
	}

	if diags := translateFile(file.Body, df, allowTests); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return df, nil
}

func (l *Loader) loadDirectory(ctx context.Context, dirPath string) (*model.Datafile, error) {
	logger := ctxlog.FromContext(ctx)

	listing, err := fsutil.ListDir(dirPath, suiteExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dirPath, err)
	}

	df := model.NewDirectory(documentName(dirPath), model.NewFSInfo(dirPath))

	var suites []string
	for _, file := range listing.Files {
		switch {
		case isInitFile(file):
			if err := loadInitFile(file, df); err != nil {
				return nil, err
			}
		case isResourceFile(file):
			logger.Debug("Resource files are imported, not listed as suites.", "path", file)
		default:
			suites = append(suites, file)
		}
	}

	children := make([]*model.Datafile, len(suites))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, file := range suites {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			child, err := loadFile(file)
			if err != nil {
				return err
			}
			children[i] = child
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, child := range children {
		df.AddChild(child)
	}

	for _, sub := range listing.Dirs {
		ok, err := fsutil.ContainsFiles(sub, suiteExt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", sub, err)
		}
		if !ok {
			logger.Debug("Skipping directory without suite files.", "path", sub)
			continue
		}
		child, err := l.loadDirectory(ctx, sub)
		if err != nil {
			return nil, err
		}
		if len(child.Children) == 0 {
			logger.Debug("Skipping directory without suites.", "path", sub)
			continue
		}
		df.AddChild(child)
	}

	logger.Debug("Directory loaded.", "path", dirPath, "children", len(df.Children))
	return df, nil
}

// loadInitFile decodes a directory's own tables into df.
func loadInitFile(path string, df *model.Datafile) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	if diags := translateFile(file.Body, df, false); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return nil
}
