// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "errors"

// Kind discriminates the three document variants.
type Kind string

const (
	// KindDirectory is a directory of suites. Its own tables come from an
	// optional initialization file.
	KindDirectory Kind = "directory"
	// KindTestCaseFile is a single suite file holding test cases.
	KindTestCaseFile Kind = "testcase_file"
	// KindResourceFile is a file of shared keywords and variables. It never
	// holds test cases.
	KindResourceFile Kind = "resource_file"
)

// ErrNoTestCaseTable is returned when test cases are requested from a
// document kind that cannot hold them.
var ErrNoTestCaseTable = errors.New("document has no test case table")

// Datafile is one parsed document.
type Datafile struct {
	Kind   Kind
	Name   string
	Source *FSInfo

	Settings  *SettingTable
	Variables *VariableTable
	TestCases *TestCaseTable // nil for resource files
	Keywords  *KeywordTable

	// Children is only populated for directories, in presentation order.
	Children []*Datafile
}

// NewDirectory creates an empty directory document.
func NewDirectory(name string, source *FSInfo) *Datafile {
	return newDatafile(KindDirectory, name, source, true)
}

// NewTestCaseFile creates an empty suite file document.
func NewTestCaseFile(name string, source *FSInfo) *Datafile {
	return newDatafile(KindTestCaseFile, name, source, true)
}

// NewResourceFile creates an empty resource file document.
func NewResourceFile(name string, source *FSInfo) *Datafile {
	return newDatafile(KindResourceFile, name, source, false)
}

func newDatafile(kind Kind, name string, source *FSInfo, withTests bool) *Datafile {
	df := &Datafile{Kind: kind, Name: name, Source: source}
	df.Settings = newSettingTable(df)
	df.Variables = &VariableTable{parent: df}
	df.Keywords = &KeywordTable{parent: df}
	if withTests {
		df.TestCases = &TestCaseTable{parent: df}
	}
	return df
}

// TestCaseTable returns the document's test case table, or
// ErrNoTestCaseTable when the document has none.
func (d *Datafile) TestCaseTable() (*TestCaseTable, error) {
	if d.TestCases == nil {
		return nil, ErrNoTestCaseTable
	}
	return d.TestCases, nil
}

// AddChild appends a child document. It is meant for directories; the
// model does not stop callers from adding children to other kinds.
func (d *Datafile) AddChild(child *Datafile) {
	d.Children = append(d.Children, child)
}
