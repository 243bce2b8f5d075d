// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package controller

import (
	"slices"

	"github.com/specialistvlad/suitectl/internal/model"
)

// itemController is the part shared by item views.
type itemController struct {
	parent parent
}

// Dirty reports the owning document's flag.
func (i *itemController) Dirty() bool { return i.parent.Dirty() }

// MarkDirty marks the owning document dirty.
func (i *itemController) MarkDirty() { i.parent.MarkDirty() }

// Datafile returns the owning document's datafile.
func (i *itemController) Datafile() *model.Datafile { return i.parent.Datafile() }

// VariableController is a snapshot of one variable taken when it was
// created. Later changes to the variable are not reflected.
type VariableController struct {
	itemController
	name  string
	value []string
}

func newVariableController(p parent, v *model.Variable) *VariableController {
	return &VariableController{
		itemController: itemController{parent: p},
		name:           v.Name,
		value:          slices.Clone(v.Value),
	}
}

// Name returns the variable name at snapshot time.
func (c *VariableController) Name() string { return c.name }

// Value returns a copy of the variable value at snapshot time.
func (c *VariableController) Value() []string { return slices.Clone(c.value) }

// ImportController is a view of one import statement.
type ImportController struct {
	itemController
	data *model.Import
}

func newImportController(p parent, imp *model.Import) *ImportController {
	return &ImportController{itemController: itemController{parent: p}, data: imp}
}

// Type returns the import type.
func (c *ImportController) Type() model.ImportType { return c.data.Type }

// Label is the caption shown for the import, e.g. "Library".
func (c *ImportController) Label() string { return string(c.data.Type) }

// Name returns the imported name.
func (c *ImportController) Name() string { return c.data.Name }

// Args returns the import arguments.
func (c *ImportController) Args() []string { return c.data.Args }

// MetadataController is a view of one metadata entry.
type MetadataController struct {
	itemController
	data *model.Metadata
}

func newMetadataController(p parent, md *model.Metadata) *MetadataController {
	return &MetadataController{itemController: itemController{parent: p}, data: md}
}

// Name returns the metadata key.
func (c *MetadataController) Name() string { return c.data.Name }

// Value returns the metadata value.
func (c *MetadataController) Value() string { return c.data.Value }

// SetValue replaces the value and marks the document dirty when it changed.
func (c *MetadataController) SetValue(value string) {
	if c.data.Value == value {
		return
	}
	c.data.Value = value
	c.MarkDirty()
}
