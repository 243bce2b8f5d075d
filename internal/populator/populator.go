// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package populator converts tabular rows into the step sequence of one test
// case or user keyword.
//
// A row is a slice of cell strings. The first cell is the name column of the
// table: it names the entity on its first row and is empty on every following
// row. Editors that already know the entity pass an empty sentinel cell.
// Rows are accumulated with Add and committed with Populate.
package populator

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/specialistvlad/suitectl/internal/model"
)

var (
	// ErrMalformedRow is returned for a row without even the name column.
	ErrMalformedRow = errors.New("row has no name column")
	// ErrDanglingContinuation is returned for a "..." row with no step, or
	// only a comment line, before it.
	ErrDanglingContinuation = errors.New("continuation row without a preceding step")
	// ErrSettingRow is returned for "[Setting]" rows, which are not steps.
	ErrSettingRow = errors.New("setting rows cannot be populated as steps")
	// ErrMissingKeyword is returned for a row that only assigns variables.
	ErrMissingKeyword = errors.New("variable assignment without a keyword")
	// ErrNoTarget is returned when the target function yields no entity.
	ErrNoTarget = errors.New("no entity to populate")
)

const continuationMarker = "..."

var assignmentPattern = regexp.MustCompile(`^[$@&]\{.+\}\s*=?$`)

// TargetFunc resolves the entity the steps are committed to. It receives the
// name found in the name column, which is empty for sentinel rows.
type TargetFunc func(name string) model.StepHolder

// Populator accumulates rows for one entity.
type Populator struct {
	target    TargetFunc
	name      string
	steps     []*model.Step
	rows      int
	populated bool
}

// New creates a Populator bound to target.
func New(target TargetFunc) *Populator {
	return &Populator{target: target}
}

// Add interprets one row. Blank rows are ignored.
func (p *Populator) Add(row []string) error {
	p.rows++
	if len(row) == 0 {
		return fmt.Errorf("row %d: %w", p.rows, ErrMalformedRow)
	}
	if p.name == "" && strings.TrimSpace(row[0]) != "" {
		p.name = strings.TrimSpace(row[0])
	}

	cells := trimEmpty(row[1:])
	if len(cells) == 0 {
		return nil
	}

	first := cells[0]
	switch {
	case strings.HasPrefix(first, "#"):
		p.steps = append(p.steps, &model.Step{Comment: model.JoinCells(cells)})
	case first == continuationMarker:
		// A comment line has no keyword to continue.
		if len(p.steps) == 0 || p.steps[len(p.steps)-1].IsComment() {
			return fmt.Errorf("row %d: %w", p.rows, ErrDanglingContinuation)
		}
		last := p.steps[len(p.steps)-1]
		args, comment := splitComment(cells[1:])
		last.Args = append(last.Args, args...)
		if comment != "" {
			last.Comment = strings.TrimSpace(last.Comment + model.CellSeparator + comment)
		}
	case isSetting(first):
		return fmt.Errorf("row %d: %s: %w", p.rows, first, ErrSettingRow)
	default:
		step, err := parseStep(cells)
		if err != nil {
			return fmt.Errorf("row %d: %w", p.rows, err)
		}
		p.steps = append(p.steps, step)
	}
	return nil
}

// Populate commits the accumulated steps to the target entity. Calling it
// again after a successful commit does nothing.
func (p *Populator) Populate() error {
	if p.populated {
		return nil
	}
	holder := p.target(p.name)
	if holder == nil {
		return ErrNoTarget
	}
	for _, step := range p.steps {
		holder.AddStep(step)
	}
	p.populated = true
	return nil
}

func parseStep(cells []string) (*model.Step, error) {
	step := &model.Step{}
	i := 0
	for i < len(cells) && assignmentPattern.MatchString(cells[i]) {
		step.Assign = append(step.Assign, cells[i])
		i++
	}
	if i == len(cells) {
		return nil, ErrMissingKeyword
	}
	step.Keyword = cells[i]
	step.Args, step.Comment = splitComment(cells[i+1:])
	return step, nil
}

// splitComment separates trailing comment cells from arguments. The
// returned arguments never alias the caller's row.
func splitComment(cells []string) ([]string, string) {
	comment := ""
	for i, cell := range cells {
		if strings.HasPrefix(cell, "#") {
			comment = model.JoinCells(cells[i:])
			cells = cells[:i]
			break
		}
	}
	if len(cells) == 0 {
		return nil, comment
	}
	return slices.Clone(cells), comment
}

func isSetting(cell string) bool {
	return len(cell) > 2 && strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]")
}

// trimEmpty drops empty cells from both ends of a row. Empty cells between
// values are kept, they are meaningful arguments.
func trimEmpty(cells []string) []string {
	start, end := 0, len(cells)
	for start < end && strings.TrimSpace(cells[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}
	return cells[start:end]
}
