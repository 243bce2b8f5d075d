// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package controller

import (
	"log/slog"
	"slices"

	"github.com/specialistvlad/suitectl/internal/ctxlog"
	"github.com/specialistvlad/suitectl/internal/model"
	"github.com/specialistvlad/suitectl/internal/setting"
)

// Document is the capability shared by the three document variants:
// *DirectoryController, *TestCaseFileController and *ResourceFileController.
// The set is closed.
type Document interface {
	Kind() model.Kind
	Name() string
	Datafile() *model.Datafile

	Settings() []setting.Controller
	Children() []Document

	Tests() (*TestCaseTableController, error)
	Keywords() *KeywordTableController
	Variables() *VariableTableController
	Imports() *ImportTableController
	Metadata() *MetadataTableController

	Dirty() bool
	MarkDirty()
	HasBeenModifiedOnDisk() bool

	sealed()
}

// parent is what every non-root controller holds a reference to.
type parent interface {
	Dirty() bool
	MarkDirty()
	Datafile() *model.Datafile
}

// Option configures document construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the documents and their children.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{logger: ctxlog.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New returns the controller variant matching df.Kind. Suite files get a
// *TestCaseFileController; every other kind, including resource files and
// unknown kinds, is treated as a directory. Use NewResourceFile when the
// caller knows it holds a resource file.
func New(df *model.Datafile, opts ...Option) Document {
	return newDocument(df, buildOptions(opts))
}

// NewResourceFile returns a resource file controller for df.
func NewResourceFile(df *model.Datafile, opts ...Option) *ResourceFileController {
	return &ResourceFileController{baseDocument: newBaseDocument(df, buildOptions(opts))}
}

func newDocument(df *model.Datafile, o *options) Document {
	switch df.Kind {
	case model.KindTestCaseFile:
		return &TestCaseFileController{baseDocument: newBaseDocument(df, o)}
	case model.KindDirectory:
		return newDirectory(df, o)
	default:
		o.logger.Debug("Unrecognized document kind, treating it as a directory.", "name", df.Name, "kind", df.Kind)
		return newDirectory(df, o)
	}
}

func newDirectory(df *model.Datafile, o *options) *DirectoryController {
	d := &DirectoryController{baseDocument: newBaseDocument(df, o)}
	d.children = make([]Document, 0, len(df.Children))
	for _, child := range df.Children {
		d.children = append(d.children, newDocument(child, o))
	}
	return d
}

// baseDocument holds what all variants share, including the dirty flag.
type baseDocument struct {
	data   *model.Datafile
	dirty  bool
	logger *slog.Logger
}

func newBaseDocument(df *model.Datafile, o *options) baseDocument {
	return baseDocument{data: df, logger: o.logger}
}

func (d *baseDocument) sealed() {}

// Name returns the document name.
func (d *baseDocument) Name() string { return d.data.Name }

// Datafile returns the wrapped document.
func (d *baseDocument) Datafile() *model.Datafile { return d.data }

// Dirty reports whether the document has unsaved changes.
func (d *baseDocument) Dirty() bool { return d.dirty }

// MarkDirty records an unsaved change. This is the end of every delegation
// chain; clearing the flag is up to whoever persists the document.
func (d *baseDocument) MarkDirty() {
	if !d.dirty {
		d.logger.Debug("Document has unsaved changes.", "name", d.data.Name, "kind", d.data.Kind)
	}
	d.dirty = true
}

// HasBeenModifiedOnDisk always reports false. Comparing against the backing
// file is left to the persistence layer.
func (d *baseDocument) HasBeenModifiedOnDisk() bool { return false }

// Tests returns a view of the test case table. Documents without one (a
// resource file passed through New) return model.ErrNoTestCaseTable.
func (d *baseDocument) Tests() (*TestCaseTableController, error) {
	table, err := d.data.TestCaseTable()
	if err != nil {
		return nil, err
	}
	return &TestCaseTableController{tableController: tableController{parent: d}, table: table}, nil
}

// Keywords returns a view of the keyword table.
func (d *baseDocument) Keywords() *KeywordTableController {
	return &KeywordTableController{tableController: tableController{parent: d}, table: d.data.Keywords}
}

// Variables returns a view of the variable table.
func (d *baseDocument) Variables() *VariableTableController {
	return &VariableTableController{tableController: tableController{parent: d}, table: d.data.Variables}
}

// Imports returns a view of the imports of the setting table.
func (d *baseDocument) Imports() *ImportTableController {
	return &ImportTableController{tableController: tableController{parent: d}, table: d.data.Settings}
}

// Metadata returns a view of the metadata of the setting table.
func (d *baseDocument) Metadata() *MetadataTableController {
	return &MetadataTableController{tableController: tableController{parent: d}, table: d.data.Settings}
}

// suiteSettings are the settings shared by directories and suite files.
func (d *baseDocument) suiteSettings() []setting.Controller {
	ss := d.data.Settings
	return []setting.Controller{
		setting.NewDocumentation(d, ss.Doc),
		setting.NewFixture(d, ss.SuiteSetup, "Suite Setup"),
		setting.NewFixture(d, ss.SuiteTeardown, "Suite Teardown"),
		setting.NewFixture(d, ss.TestSetup, "Test Setup"),
		setting.NewFixture(d, ss.TestTeardown, "Test Teardown"),
		setting.NewTags(d, ss.ForceTags, "Force Tags"),
	}
}

// DirectoryController is a directory of suites.
type DirectoryController struct {
	baseDocument
	children []Document
}

// Kind returns model.KindDirectory.
func (d *DirectoryController) Kind() model.Kind { return model.KindDirectory }

// Settings returns documentation, suite and test fixtures and force tags.
func (d *DirectoryController) Settings() []setting.Controller {
	return d.suiteSettings()
}

// Children returns one controller per child document, in model order. The
// controllers are built once, so each child keeps its own dirty flag.
func (d *DirectoryController) Children() []Document {
	return slices.Clone(d.children)
}

// TestCaseFileController is a single suite file.
type TestCaseFileController struct {
	baseDocument
}

// Kind returns model.KindTestCaseFile.
func (f *TestCaseFileController) Kind() model.Kind { return model.KindTestCaseFile }

// Settings returns the directory settings followed by test timeout and
// test template.
func (f *TestCaseFileController) Settings() []setting.Controller {
	ss := f.data.Settings
	return append(f.suiteSettings(),
		setting.NewTimeout(&f.baseDocument, ss.TestTimeout, "Test Timeout"),
		setting.NewTemplate(&f.baseDocument, ss.TestTemplate, "Test Template"),
	)
}

// Children is always empty for a file.
func (f *TestCaseFileController) Children() []Document { return nil }

// ResourceFileController is a resource file.
type ResourceFileController struct {
	baseDocument
}

// Kind returns model.KindResourceFile.
func (r *ResourceFileController) Kind() model.Kind { return model.KindResourceFile }

// Settings returns the documentation only.
func (r *ResourceFileController) Settings() []setting.Controller {
	return []setting.Controller{setting.NewDocumentation(&r.baseDocument, r.data.Settings.Doc)}
}

// Children is always empty for a file.
func (r *ResourceFileController) Children() []Document { return nil }

// DirtyDocuments walks doc and its descendants depth-first and returns
// every document with unsaved changes.
func DirtyDocuments(doc Document) []Document {
	var dirty []Document
	var walk func(Document)
	walk = func(d Document) {
		if d.Dirty() {
			dirty = append(dirty, d)
		}
		for _, child := range d.Children() {
			walk(child)
		}
	}
	walk(doc)
	return dirty
}
