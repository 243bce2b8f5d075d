// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "slices"

// Variable is one variable definition. Scalars have a single value cell,
// lists have several.
type Variable struct {
	Name  string
	Value []string
}

// VariableTable is the ordered list of a document's variables.
type VariableTable struct {
	Variables []*Variable

	parent *Datafile
}

// Parent returns the document owning the table.
func (v *VariableTable) Parent() *Datafile { return v.parent }

// Add appends a variable definition. The value cells are copied.
func (v *VariableTable) Add(name string, value ...string) *Variable {
	variable := &Variable{Name: name, Value: slices.Clone(value)}
	v.Variables = append(v.Variables, variable)
	return variable
}
