// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package controller

import (
	"github.com/specialistvlad/suitectl/internal/model"
	"github.com/specialistvlad/suitectl/internal/populator"
	"github.com/specialistvlad/suitectl/internal/setting"
)

// withSteps is shared by test case and user keyword controllers.
type withSteps struct {
	parent parent
	holder model.StepHolder
}

// Dirty reports the owning document's flag.
func (w *withSteps) Dirty() bool { return w.parent.Dirty() }

// MarkDirty marks the owning document dirty.
func (w *withSteps) MarkDirty() { w.parent.MarkDirty() }

// Datafile returns the owning document's datafile.
func (w *withSteps) Datafile() *model.Datafile { return w.parent.Datafile() }

// ParseStepsFromRows replaces every step of the entity with the steps parsed
// from rows. Each row is a list of cells without the name column; the empty
// name cell is prepended here. The old steps are discarded before parsing
// starts and the document is marked dirty even when parsing fails, since the
// entity has been changed either way. Parse errors are returned unchanged.
func (w *withSteps) ParseStepsFromRows(rows [][]string) error {
	w.holder.SetSteps(nil)
	defer w.parent.MarkDirty()

	pop := populator.New(func(string) model.StepHolder { return w.holder })
	for _, row := range rows {
		if err := pop.Add(append([]string{""}, row...)); err != nil {
			return err
		}
	}
	return pop.Populate()
}

// TestCaseController is a view of one test case.
type TestCaseController struct {
	withSteps
	data *model.TestCase
}

func newTestCaseController(p parent, tc *model.TestCase) *TestCaseController {
	return &TestCaseController{withSteps: withSteps{parent: p, holder: tc}, data: tc}
}

// Name returns the current test case name.
func (c *TestCaseController) Name() string { return c.data.Name }

// Steps returns the current steps of the test case.
func (c *TestCaseController) Steps() []*model.Step { return c.data.Steps }

// Settings returns documentation, setup, teardown, tags, timeout and
// template, in that order.
func (c *TestCaseController) Settings() []setting.Controller {
	return []setting.Controller{
		setting.NewDocumentation(c, c.data.Doc),
		setting.NewFixture(c, c.data.Setup, "Setup"),
		setting.NewFixture(c, c.data.Teardown, "Teardown"),
		setting.NewTags(c, c.data.Tags, "Tags"),
		setting.NewTimeout(c, c.data.Timeout, "Timeout"),
		setting.NewTemplate(c, c.data.Template, "Template"),
	}
}

// UserKeywordController is a view of one user keyword.
type UserKeywordController struct {
	withSteps
	data *model.UserKeyword
}

func newUserKeywordController(p parent, kw *model.UserKeyword) *UserKeywordController {
	return &UserKeywordController{withSteps: withSteps{parent: p, holder: kw}, data: kw}
}

// Name returns the current keyword name.
func (c *UserKeywordController) Name() string { return c.data.Name }

// Steps returns the current steps of the keyword.
func (c *UserKeywordController) Steps() []*model.Step { return c.data.Steps }

// Settings returns documentation, arguments, timeout and return value, in
// that order.
func (c *UserKeywordController) Settings() []setting.Controller {
	return []setting.Controller{
		setting.NewDocumentation(c, c.data.Doc),
		setting.NewArguments(c, c.data.Args, "Arguments"),
		setting.NewTimeout(c, c.data.Timeout, "Timeout"),
		setting.NewReturnValue(c, c.data.Return),
	}
}
