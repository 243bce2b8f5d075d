// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package setting provides one controller per editable setting field of a
// document, test case or user keyword. Controllers never store state of
// their own: values are read from and written to the model field they wrap,
// and dirtiness is delegated to the owner they were built with.
package setting

import (
	"slices"

	"github.com/specialistvlad/suitectl/internal/model"
)

// Owner is the controller a setting belongs to.
type Owner interface {
	Dirty() bool
	MarkDirty()
}

// Controller is the presentation contract shared by all settings.
type Controller interface {
	Label() string
	Value() string
	IsSet() bool
	Dirty() bool
	MarkDirty()
}

type base struct {
	owner Owner
	label string
}

func (b *base) Label() string { return b.label }
func (b *base) Dirty() bool   { return b.owner.Dirty() }
func (b *base) MarkDirty()    { b.owner.MarkDirty() }

// markIf marks the owner dirty when changed is true.
func (b *base) markIf(changed bool) {
	if changed {
		b.owner.MarkDirty()
	}
}

// DocumentationController edits a Documentation value.
type DocumentationController struct {
	base
	data *model.Documentation
}

// NewDocumentation creates a documentation controller.
func NewDocumentation(owner Owner, data *model.Documentation) *DocumentationController {
	return &DocumentationController{base: base{owner: owner, label: "Documentation"}, data: data}
}

func (c *DocumentationController) Value() string { return c.data.Value }
func (c *DocumentationController) IsSet() bool   { return c.data.IsSet() }

// SetValue replaces the documentation text.
func (c *DocumentationController) SetValue(value string) {
	changed := c.data.Value != value
	c.data.Value = value
	c.markIf(changed)
}

// FixtureController edits a setup or teardown.
type FixtureController struct {
	base
	data *model.Fixture
}

// NewFixture creates a fixture controller with the given caption.
func NewFixture(owner Owner, data *model.Fixture, label string) *FixtureController {
	return &FixtureController{base: base{owner: owner, label: label}, data: data}
}

func (c *FixtureController) Value() string { return model.JoinCells(c.data.Cells()) }
func (c *FixtureController) IsSet() bool   { return c.data.IsSet() }

// SetValue replaces the fixture keyword and its arguments. An empty name
// clears the fixture.
func (c *FixtureController) SetValue(name string, args ...string) {
	changed := c.data.Name != name || !slices.Equal(c.data.Args, args)
	c.data.Name = name
	c.data.Args = slices.Clone(args)
	c.markIf(changed)
}

// TagsController edits a tag list.
type TagsController struct {
	base
	data *model.Tags
}

// NewTags creates a tags controller with the given caption.
func NewTags(owner Owner, data *model.Tags, label string) *TagsController {
	return &TagsController{base: base{owner: owner, label: label}, data: data}
}

func (c *TagsController) Value() string { return model.JoinCells(c.data.Values) }
func (c *TagsController) IsSet() bool   { return c.data.IsSet() }

// SetValue replaces all tags.
func (c *TagsController) SetValue(tags ...string) {
	changed := !slices.Equal(c.data.Values, tags)
	c.data.Values = slices.Clone(tags)
	c.markIf(changed)
}

// TimeoutController edits a timeout and its failure message.
type TimeoutController struct {
	base
	data *model.Timeout
}

// NewTimeout creates a timeout controller with the given caption.
func NewTimeout(owner Owner, data *model.Timeout, label string) *TimeoutController {
	return &TimeoutController{base: base{owner: owner, label: label}, data: data}
}

func (c *TimeoutController) Value() string { return model.JoinCells(c.data.Cells()) }
func (c *TimeoutController) IsSet() bool   { return c.data.IsSet() }

// SetValue replaces the timeout value and message.
func (c *TimeoutController) SetValue(value, message string) {
	changed := c.data.Value != value || c.data.Message != message
	c.data.Value = value
	c.data.Message = message
	c.markIf(changed)
}

// TemplateController edits a test template.
type TemplateController struct {
	base
	data *model.Template
}

// NewTemplate creates a template controller with the given caption.
func NewTemplate(owner Owner, data *model.Template, label string) *TemplateController {
	return &TemplateController{base: base{owner: owner, label: label}, data: data}
}

func (c *TemplateController) Value() string { return c.data.Value }
func (c *TemplateController) IsSet() bool   { return c.data.IsSet() }

// SetValue replaces the template keyword.
func (c *TemplateController) SetValue(value string) {
	changed := c.data.Value != value
	c.data.Value = value
	c.markIf(changed)
}

// ArgumentsController edits the argument specs of a user keyword.
type ArgumentsController struct {
	base
	data *model.Arguments
}

// NewArguments creates an arguments controller with the given caption.
func NewArguments(owner Owner, data *model.Arguments, label string) *ArgumentsController {
	return &ArgumentsController{base: base{owner: owner, label: label}, data: data}
}

func (c *ArgumentsController) Value() string { return model.JoinCells(c.data.Values) }
func (c *ArgumentsController) IsSet() bool   { return c.data.IsSet() }

// SetValue replaces all argument specs.
func (c *ArgumentsController) SetValue(args ...string) {
	changed := !slices.Equal(c.data.Values, args)
	c.data.Values = slices.Clone(args)
	c.markIf(changed)
}

// ReturnValueController edits the return values of a user keyword. It is
// presented like arguments but wraps its own model type.
type ReturnValueController struct {
	base
	data *model.Return
}

// NewReturnValue creates a return value controller.
func NewReturnValue(owner Owner, data *model.Return) *ReturnValueController {
	return &ReturnValueController{base: base{owner: owner, label: "Return Value"}, data: data}
}

func (c *ReturnValueController) Value() string { return model.JoinCells(c.data.Values) }
func (c *ReturnValueController) IsSet() bool   { return c.data.IsSet() }

// SetValue replaces all return values.
func (c *ReturnValueController) SetValue(values ...string) {
	changed := !slices.Equal(c.data.Values, values)
	c.data.Values = slices.Clone(values)
	c.markIf(changed)
}
