// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package controller

import (
	"iter"

	"github.com/specialistvlad/suitectl/internal/argsplit"
	"github.com/specialistvlad/suitectl/internal/model"
)

// tableController is the part shared by all table views: a reference to the
// owning document and upward delegation.
type tableController struct {
	parent parent
}

// Dirty reports the owning document's flag.
func (t *tableController) Dirty() bool { return t.parent.Dirty() }

// MarkDirty marks the owning document dirty.
func (t *tableController) MarkDirty() { t.parent.MarkDirty() }

// Datafile returns the owning document's datafile.
func (t *tableController) Datafile() *model.Datafile { return t.parent.Datafile() }

// TestCaseTableController is a view of a test case table.
type TestCaseTableController struct {
	tableController
	table *model.TestCaseTable
}

// All yields a fresh controller per test case, in table order. Each call
// reflects the table at the time ranging starts.
func (c *TestCaseTableController) All() iter.Seq[*TestCaseController] {
	return func(yield func(*TestCaseController) bool) {
		for _, tc := range c.table.Tests {
			if !yield(newTestCaseController(c, tc)) {
				return
			}
		}
	}
}

// Len returns the number of test cases.
func (c *TestCaseTableController) Len() int { return len(c.table.Tests) }

// Find returns the first test case with the given name.
func (c *TestCaseTableController) Find(name string) (*TestCaseController, bool) {
	for tc := range c.All() {
		if tc.Name() == name {
			return tc, true
		}
	}
	return nil, false
}

// Add appends an empty test case and marks the document dirty.
func (c *TestCaseTableController) Add(name string) *TestCaseController {
	tc := c.table.Add(name)
	c.MarkDirty()
	return newTestCaseController(c, tc)
}

// KeywordTableController is a view of a user keyword table.
type KeywordTableController struct {
	tableController
	table *model.KeywordTable
}

// All yields a fresh controller per user keyword, in table order.
func (c *KeywordTableController) All() iter.Seq[*UserKeywordController] {
	return func(yield func(*UserKeywordController) bool) {
		for _, kw := range c.table.Keywords {
			if !yield(newUserKeywordController(c, kw)) {
				return
			}
		}
	}
}

// Len returns the number of keywords.
func (c *KeywordTableController) Len() int { return len(c.table.Keywords) }

// Find returns the first keyword with the given name.
func (c *KeywordTableController) Find(name string) (*UserKeywordController, bool) {
	for kw := range c.All() {
		if kw.Name() == name {
			return kw, true
		}
	}
	return nil, false
}

// Add appends an empty user keyword and marks the document dirty.
func (c *KeywordTableController) Add(name string) *UserKeywordController {
	kw := c.table.Add(name)
	c.MarkDirty()
	return newUserKeywordController(c, kw)
}

// VariableTableController is a view of a variable table.
type VariableTableController struct {
	tableController
	table *model.VariableTable
}

// All yields a snapshot controller per variable, in table order.
func (c *VariableTableController) All() iter.Seq[*VariableController] {
	return func(yield func(*VariableController) bool) {
		for _, v := range c.table.Variables {
			if !yield(newVariableController(c, v)) {
				return
			}
		}
	}
}

// Len returns the number of variables.
func (c *VariableTableController) Len() int { return len(c.table.Variables) }

// Add appends a variable and marks the document dirty.
func (c *VariableTableController) Add(name string, value ...string) *VariableController {
	v := c.table.Add(name, value...)
	c.MarkDirty()
	return newVariableController(c, v)
}

// ImportTableController is a view of the imports of a setting table.
type ImportTableController struct {
	tableController
	table *model.SettingTable
}

// All yields a controller per import, in table order.
func (c *ImportTableController) All() iter.Seq[*ImportController] {
	return func(yield func(*ImportController) bool) {
		for _, imp := range c.table.Imports {
			if !yield(newImportController(c, imp)) {
				return
			}
		}
	}
}

// Len returns the number of imports.
func (c *ImportTableController) Len() int { return len(c.table.Imports) }

// AddLibrary adds a library import from a string such as
// "Collections  WITH NAME  Coll": the first token is the name and the rest
// are arguments. Nothing is validated.
func (c *ImportTableController) AddLibrary(argstr string) *ImportController {
	return c.addImport(c.table.AddLibrary, argstr)
}

// AddResource adds a resource import, split like AddLibrary.
func (c *ImportTableController) AddResource(argstr string) *ImportController {
	return c.addImport(c.table.AddResource, argstr)
}

// AddVariables adds a variables import, split like AddLibrary.
func (c *ImportTableController) AddVariables(argstr string) *ImportController {
	return c.addImport(c.table.AddVariables, argstr)
}

func (c *ImportTableController) addImport(add func(name string, args []string) *model.Import, argstr string) *ImportController {
	name, args := argsplit.NameAndArgs(argstr)
	imp := add(name, args)
	c.MarkDirty()
	return newImportController(c, imp)
}

// MetadataTableController is a view of the metadata of a setting table.
type MetadataTableController struct {
	tableController
	table *model.SettingTable
}

// All yields a controller per metadata entry, in table order.
func (c *MetadataTableController) All() iter.Seq[*MetadataController] {
	return func(yield func(*MetadataController) bool) {
		for _, md := range c.table.Metadata {
			if !yield(newMetadataController(c, md)) {
				return
			}
		}
	}
}

// Len returns the number of metadata entries.
func (c *MetadataTableController) Len() int { return len(c.table.Metadata) }

// Add appends a metadata entry and marks the document dirty.
func (c *MetadataTableController) Add(name, value string) *MetadataController {
	md := c.table.AddMetadata(name, value)
	c.MarkDirty()
	return newMetadataController(c, md)
}
