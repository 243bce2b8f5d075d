// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/specialistvlad/suitectl/internal/bggohcl"
	"github.com/specialistvlad/suitectl/internal/model"
	"github.com/specialistvlad/suitectl/internal/populator"
)

var nameLabel = []string{"name"}

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "settings"},
		{Type: "variable", LabelNames: nameLabel},
		{Type: "test", LabelNames: nameLabel},
		{Type: "keyword", LabelNames: nameLabel},
	},
}

var settingsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "documentation"},
		{Name: "suite_setup"},
		{Name: "suite_teardown"},
		{Name: "test_setup"},
		{Name: "test_teardown"},
		{Name: "force_tags"},
		{Name: "default_tags"},
		{Name: "test_timeout"},
		{Name: "test_template"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "library", LabelNames: nameLabel},
		{Type: "resource", LabelNames: nameLabel},
		{Type: "variables", LabelNames: nameLabel},
		{Type: "metadata", LabelNames: nameLabel},
	},
}

var importSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "args"}},
}

var metadataSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "value", Required: true}},
}

var variableSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "value", Required: true}},
}

var testSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "documentation"},
		{Name: "setup"},
		{Name: "teardown"},
		{Name: "tags"},
		{Name: "timeout"},
		{Name: "template"},
		{Name: "steps"},
	},
}

var keywordSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "documentation"},
		{Name: "arguments"},
		{Name: "timeout"},
		{Name: "return"},
		{Name: "steps"},
	},
}

// translateFile decodes one parsed file body into df. allowTests is false
// for resource and initialization files.
func translateFile(body hcl.Body, df *model.Datafile, allowTests bool) hcl.Diagnostics {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return diags
	}

	settingsBlock, uniqueDiags := bggohcl.FindUniqueBlock(content.Blocks, "settings")
	diags = append(diags, uniqueDiags...)
	if settingsBlock != nil {
		diags = append(diags, translateSettings(settingsBlock.Body, df.Settings)...)
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "variable":
			diags = append(diags, translateVariable(block, df.Variables)...)
		case "test":
			if !allowTests {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unexpected \"test\" block",
					Detail:   fmt.Sprintf("Test cases are not allowed in a %s.", kindLabel(df)),
					Subject:  &block.DefRange,
				})
				continue
			}
			diags = append(diags, translateTest(block, df.TestCases)...)
		case "keyword":
			diags = append(diags, translateKeyword(block, df.Keywords)...)
		}
	}
	return diags
}

func kindLabel(df *model.Datafile) string {
	if df.Kind == model.KindResourceFile {
		return "resource file"
	}
	return "directory initialization file"
}

func translateSettings(body hcl.Body, table *model.SettingTable) hcl.Diagnostics {
	content, diags := body.Content(settingsSchema)
	if diags.HasErrors() {
		return diags
	}
	attrs := content.Attributes

	diags = append(diags, setString(attrs, "documentation", &table.Doc.Value)...)
	diags = append(diags, setFixture(attrs, "suite_setup", table.SuiteSetup)...)
	diags = append(diags, setFixture(attrs, "suite_teardown", table.SuiteTeardown)...)
	diags = append(diags, setFixture(attrs, "test_setup", table.TestSetup)...)
	diags = append(diags, setFixture(attrs, "test_teardown", table.TestTeardown)...)
	diags = append(diags, setCells(attrs, "force_tags", &table.ForceTags.Values)...)
	diags = append(diags, setCells(attrs, "default_tags", &table.DefaultTags.Values)...)
	diags = append(diags, setTimeout(attrs, "test_timeout", table.TestTimeout)...)
	diags = append(diags, setString(attrs, "test_template", &table.TestTemplate.Value)...)

	// Blocks keep their source order, so imports of different types stay
	// interleaved the way the user wrote them.
	for _, block := range content.Blocks {
		name := block.Labels[0]
		if block.Type == "metadata" {
			mdContent, mdDiags := block.Body.Content(metadataSchema)
			diags = append(diags, mdDiags...)
			if mdDiags.HasErrors() {
				continue
			}
			md := table.AddMetadata(name, "")
			diags = append(diags, setString(mdContent.Attributes, "value", &md.Value)...)
			continue
		}

		impContent, impDiags := block.Body.Content(importSchema)
		diags = append(diags, impDiags...)
		if impDiags.HasErrors() {
			continue
		}
		var args []string
		diags = append(diags, setCells(impContent.Attributes, "args", &args)...)
		switch block.Type {
		case "library":
			table.AddLibrary(name, args)
		case "resource":
			table.AddResource(name, args)
		case "variables":
			table.AddVariables(name, args)
		}
	}
	return diags
}

func translateVariable(block *hcl.Block, table *model.VariableTable) hcl.Diagnostics {
	content, diags := block.Body.Content(variableSchema)
	if diags.HasErrors() {
		return diags
	}
	v := table.Add(block.Labels[0])
	return append(diags, setCells(content.Attributes, "value", &v.Value)...)
}

func translateTest(block *hcl.Block, table *model.TestCaseTable) hcl.Diagnostics {
	content, diags := block.Body.Content(testSchema)
	if diags.HasErrors() {
		return diags
	}
	attrs := content.Attributes
	tc := table.Add(block.Labels[0])

	diags = append(diags, setString(attrs, "documentation", &tc.Doc.Value)...)
	diags = append(diags, setFixture(attrs, "setup", tc.Setup)...)
	diags = append(diags, setFixture(attrs, "teardown", tc.Teardown)...)
	diags = append(diags, setCells(attrs, "tags", &tc.Tags.Values)...)
	diags = append(diags, setTimeout(attrs, "timeout", tc.Timeout)...)
	diags = append(diags, setString(attrs, "template", &tc.Template.Value)...)
	diags = append(diags, populateSteps(attrs, tc)...)
	return diags
}

func translateKeyword(block *hcl.Block, table *model.KeywordTable) hcl.Diagnostics {
	content, diags := block.Body.Content(keywordSchema)
	if diags.HasErrors() {
		return diags
	}
	attrs := content.Attributes
	kw := table.Add(block.Labels[0])

	diags = append(diags, setString(attrs, "documentation", &kw.Doc.Value)...)
	diags = append(diags, setCells(attrs, "arguments", &kw.Args.Values)...)
	diags = append(diags, setTimeout(attrs, "timeout", kw.Timeout)...)
	diags = append(diags, setCells(attrs, "return", &kw.Return.Values)...)
	diags = append(diags, populateSteps(attrs, kw)...)
	return diags
}

// populateSteps feeds the rows of the "steps" attribute through the
// populator, with the empty name cell in front of every row.
func populateSteps(attrs hcl.Attributes, holder model.StepHolder) hcl.Diagnostics {
	attr, ok := attrs["steps"]
	if !ok {
		return nil
	}
	rows, diags := rowsValue(attr.Expr)
	if diags.HasErrors() {
		return diags
	}

	pop := populator.New(func(string) model.StepHolder { return holder })
	for _, row := range rows {
		if err := pop.Add(append([]string{""}, row...)); err != nil {
			return append(diags, stepDiagnostic(attr, err))
		}
	}
	if err := pop.Populate(); err != nil {
		return append(diags, stepDiagnostic(attr, err))
	}
	return diags
}

func stepDiagnostic(attr *hcl.Attribute, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid step",
		Detail:   err.Error(),
		Subject:  attr.Expr.Range().Ptr(),
	}
}

func setString(attrs hcl.Attributes, name string, target *string) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	s, diags := stringValue(attr.Expr)
	if !diags.HasErrors() {
		*target = s
	}
	return diags
}

func setCells(attrs hcl.Attributes, name string, target *[]string) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	cells, diags := cellsValue(attr.Expr)
	if !diags.HasErrors() {
		*target = cells
	}
	return diags
}

// setFixture reads ["Keyword", "arg", ...] or a bare keyword name.
func setFixture(attrs hcl.Attributes, name string, target *model.Fixture) hcl.Diagnostics {
	var cells []string
	diags := setCells(attrs, name, &cells)
	if len(cells) > 0 {
		target.Name = cells[0]
		target.Args = cells[1:]
	}
	return diags
}

// setTimeout reads "1 min" or ["1 min", "custom message"].
func setTimeout(attrs hcl.Attributes, name string, target *model.Timeout) hcl.Diagnostics {
	var cells []string
	diags := setCells(attrs, name, &cells)
	if len(cells) > 0 {
		target.Value = cells[0]
	}
	if len(cells) > 1 {
		target.Message = model.JoinCells(cells[1:])
	}
	return diags
}
