// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// TestCase is one test case of a suite file.
type TestCase struct {
	Name     string
	Doc      *Documentation
	Setup    *Fixture
	Teardown *Fixture
	Tags     *Tags
	Timeout  *Timeout
	Template *Template
	Steps    []*Step

	parent *TestCaseTable
}

// Parent returns the table owning the test case.
func (t *TestCase) Parent() *TestCaseTable { return t.parent }

// SetSteps replaces the whole step sequence.
func (t *TestCase) SetSteps(steps []*Step) { t.Steps = steps }

// AddStep appends one step.
func (t *TestCase) AddStep(step *Step) { t.Steps = append(t.Steps, step) }

// TestCaseTable is the ordered list of a document's test cases.
type TestCaseTable struct {
	Tests []*TestCase

	parent *Datafile
}

// Parent returns the document owning the table.
func (t *TestCaseTable) Parent() *Datafile { return t.parent }

// Add appends a new, empty test case.
func (t *TestCaseTable) Add(name string) *TestCase {
	tc := &TestCase{
		Name:     name,
		Doc:      &Documentation{},
		Setup:    &Fixture{},
		Teardown: &Fixture{},
		Tags:     &Tags{},
		Timeout:  &Timeout{},
		Template: &Template{},
		parent:   t,
	}
	t.Tests = append(t.Tests, tc)
	return tc
}
