// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Step structure, the atomic unit of work within a test
// case or user keyword: one keyword invocation, optionally assigning its
// result to variables, or a comment line kept in place.

package model

// Step is one executable line of a test case or keyword.
type Step struct {
	Assign  []string // e.g. ["${result}="]
	Keyword string
	Args    []string
	Comment string // full comment cell, including the leading '#'
}

// IsComment reports whether the step is a comment-only line.
func (s *Step) IsComment() bool {
	return s.Keyword == "" && len(s.Assign) == 0 && s.Comment != ""
}

// Cells returns the step as the row of cells it is edited as.
func (s *Step) Cells() []string {
	cells := make([]string, 0, len(s.Assign)+len(s.Args)+2)
	cells = append(cells, s.Assign...)
	if s.Keyword != "" {
		cells = append(cells, s.Keyword)
	}
	cells = append(cells, s.Args...)
	if s.Comment != "" {
		cells = append(cells, s.Comment)
	}
	return cells
}

// String renders the step on one line, e.g. "Log    hello".
func (s *Step) String() string {
	return JoinCells(s.Cells())
}

// StepHolder is implemented by every entity owning a step sequence.
type StepHolder interface {
	SetSteps(steps []*Step)
	AddStep(step *Step)
}
