// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "strings"

// Documentation is free-form documentation text.
type Documentation struct {
	Value string
}

// IsSet reports whether documentation was given.
func (d *Documentation) IsSet() bool { return d.Value != "" }

// Fixture is a setup or teardown: a keyword name and its arguments.
type Fixture struct {
	Name string
	Args []string
}

// IsSet reports whether a fixture keyword was given.
func (f *Fixture) IsSet() bool { return f.Name != "" }

// Cells returns the keyword name followed by its arguments.
func (f *Fixture) Cells() []string {
	if !f.IsSet() {
		return nil
	}
	return append([]string{f.Name}, f.Args...)
}

// Tags is an ordered list of tags.
type Tags struct {
	Values []string
}

// IsSet reports whether at least one tag was given.
func (t *Tags) IsSet() bool { return len(t.Values) > 0 }

// Timeout is a timeout value with an optional custom failure message.
type Timeout struct {
	Value   string
	Message string
}

// IsSet reports whether a timeout was given.
func (t *Timeout) IsSet() bool { return t.Value != "" }

// Cells returns the value followed by the message when there is one.
func (t *Timeout) Cells() []string {
	if !t.IsSet() {
		return nil
	}
	if t.Message == "" {
		return []string{t.Value}
	}
	return []string{t.Value, t.Message}
}

// Template names the keyword used as a test template.
type Template struct {
	Value string
}

// IsSet reports whether a template was given.
func (t *Template) IsSet() bool { return t.Value != "" }

// Arguments lists the argument specs of a user keyword.
type Arguments struct {
	Values []string
}

// IsSet reports whether any argument was declared.
func (a *Arguments) IsSet() bool { return len(a.Values) > 0 }

// Return lists the values a user keyword returns.
type Return struct {
	Values []string
}

// IsSet reports whether any return value was declared.
func (r *Return) IsSet() bool { return len(r.Values) > 0 }

// JoinCells renders cells the way they are displayed in a single edit field.
func JoinCells(cells []string) string {
	return strings.Join(cells, CellSeparator)
}

// CellSeparator separates cells when a row is rendered as one string.
const CellSeparator = "    "
