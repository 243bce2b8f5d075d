// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Every value in a document is ultimately a cell: a string. These helpers
// evaluate attribute expressions without variables or functions and
// convert primitive results to strings, so `["Sleep", 2]` is as valid as
// `["Sleep", "2"]`.

// stringValue evaluates expr to a single cell. Null yields "".
func stringValue(expr hcl.Expression) (string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	s, err := cellString(val)
	if err != nil {
		return "", append(diags, invalidValue(expr, "a string", err))
	}
	return s, diags
}

// cellsValue evaluates expr to a list of cells. A single primitive value
// is accepted as a one-cell list.
func cellsValue(expr hcl.Expression) ([]string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, diags
	}
	if val.Type().IsPrimitiveType() {
		s, err := cellString(val)
		if err != nil {
			return nil, append(diags, invalidValue(expr, "a string or a list of strings", err))
		}
		return []string{s}, diags
	}
	cells, err := listCells(val)
	if err != nil {
		return nil, append(diags, invalidValue(expr, "a string or a list of strings", err))
	}
	return cells, diags
}

// rowsValue evaluates expr to a list of rows, each a list of cells.
func rowsValue(expr hcl.Expression) ([][]string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, diags
	}
	if !isSequence(val.Type()) {
		return nil, append(diags, invalidValue(expr, "a list of rows", fmt.Errorf("got %s", val.Type().FriendlyName())))
	}

	var rows [][]string
	for it := val.ElementIterator(); it.Next(); {
		_, rowVal := it.Element()
		if rowVal.IsNull() {
			rows = append(rows, nil)
			continue
		}
		if rowVal.Type().IsPrimitiveType() {
			s, err := cellString(rowVal)
			if err != nil {
				return nil, append(diags, invalidValue(expr, "a list of rows", err))
			}
			rows = append(rows, []string{s})
			continue
		}
		cells, err := listCells(rowVal)
		if err != nil {
			return nil, append(diags, invalidValue(expr, "a list of rows", err))
		}
		rows = append(rows, cells)
	}
	return rows, diags
}

func listCells(val cty.Value) ([]string, error) {
	if !isSequence(val.Type()) {
		return nil, fmt.Errorf("got %s", val.Type().FriendlyName())
	}
	cells := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		s, err := cellString(elem)
		if err != nil {
			return nil, err
		}
		cells = append(cells, s)
	}
	return cells, nil
}

func cellString(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	var s string
	if err := gocty.FromCtyValue(converted, &s); err != nil {
		return "", err
	}
	return s, nil
}

func isSequence(ty cty.Type) bool {
	return ty.IsListType() || ty.IsTupleType() || ty.IsSetType()
}

func invalidValue(expr hcl.Expression, want string, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid value",
		Detail:   fmt.Sprintf("Expected %s: %s.", want, err),
		Subject:  expr.Range().Ptr(),
	}
}
