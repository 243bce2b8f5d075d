// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// ImportType tells which kind of import statement an Import is.
type ImportType string

const (
	ImportLibrary   ImportType = "Library"
	ImportResource  ImportType = "Resource"
	ImportVariables ImportType = "Variables"
)

// Import is one library, resource or variables import statement.
type Import struct {
	Type ImportType
	Name string
	Args []string
}

// Metadata is one free-form key/value pair of suite metadata.
type Metadata struct {
	Name  string
	Value string
}

// SettingTable holds a document's settings, imports and metadata.
type SettingTable struct {
	Doc           *Documentation
	SuiteSetup    *Fixture
	SuiteTeardown *Fixture
	TestSetup     *Fixture
	TestTeardown  *Fixture
	ForceTags     *Tags
	DefaultTags   *Tags
	TestTimeout   *Timeout
	TestTemplate  *Template

	Imports  []*Import
	Metadata []*Metadata

	parent *Datafile
}

func newSettingTable(parent *Datafile) *SettingTable {
	return &SettingTable{
		Doc:           &Documentation{},
		SuiteSetup:    &Fixture{},
		SuiteTeardown: &Fixture{},
		TestSetup:     &Fixture{},
		TestTeardown:  &Fixture{},
		ForceTags:     &Tags{},
		DefaultTags:   &Tags{},
		TestTimeout:   &Timeout{},
		TestTemplate:  &Template{},
		parent:        parent,
	}
}

// Parent returns the document owning the table.
func (s *SettingTable) Parent() *Datafile { return s.parent }

// AddLibrary appends a library import.
func (s *SettingTable) AddLibrary(name string, args []string) *Import {
	return s.addImport(ImportLibrary, name, args)
}

// AddResource appends a resource import.
func (s *SettingTable) AddResource(name string, args []string) *Import {
	return s.addImport(ImportResource, name, args)
}

// AddVariables appends a variables import.
func (s *SettingTable) AddVariables(name string, args []string) *Import {
	return s.addImport(ImportVariables, name, args)
}

func (s *SettingTable) addImport(typ ImportType, name string, args []string) *Import {
	imp := &Import{Type: typ, Name: name, Args: args}
	s.Imports = append(s.Imports, imp)
	return imp
}

// AddMetadata appends a metadata entry.
func (s *SettingTable) AddMetadata(name, value string) *Metadata {
	md := &Metadata{Name: name, Value: value}
	s.Metadata = append(s.Metadata, md)
	return md
}
