package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/specialistvlad/suitectl/internal/controller"
	"github.com/specialistvlad/suitectl/internal/model"
	"github.com/specialistvlad/suitectl/internal/setting"
)

var kindLabels = map[model.Kind]string{
	model.KindDirectory:    "Directory",
	model.KindTestCaseFile: "Test Case File",
	model.KindResourceFile: "Resource File",
}

func kindLabel(kind model.Kind) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return string(kind)
}

func renderOutline(w io.Writer, doc controller.Document, depth int) {
	indent := strings.Repeat("  ", depth)
	inner := indent + "  "

	fmt.Fprintf(w, "%s%s %q\n", indent, kindLabel(doc.Kind()), doc.Name())
	renderSettings(w, inner, doc.Settings())

	for imp := range doc.Imports().All() {
		fmt.Fprintf(w, "%s%s: %s\n", inner, imp.Label(), model.JoinCells(append([]string{imp.Name()}, imp.Args()...)))
	}
	for md := range doc.Metadata().All() {
		fmt.Fprintf(w, "%sMetadata: %s = %s\n", inner, md.Name(), md.Value())
	}
	for v := range doc.Variables().All() {
		fmt.Fprintf(w, "%sVariable: %s = %s\n", inner, v.Name(), model.JoinCells(v.Value()))
	}
	if tests, err := doc.Tests(); err == nil {
		for tc := range tests.All() {
			fmt.Fprintf(w, "%sTest: %s (%s)\n", inner, tc.Name(), stepCount(tc.Steps()))
		}
	}
	for kw := range doc.Keywords().All() {
		fmt.Fprintf(w, "%sKeyword: %s (%s)\n", inner, kw.Name(), stepCount(kw.Steps()))
	}

	for _, child := range doc.Children() {
		renderOutline(w, child, depth+1)
	}
}

func renderSettings(w io.Writer, indent string, settings []setting.Controller) {
	for _, s := range settings {
		if s.IsSet() {
			fmt.Fprintf(w, "%s%s: %s\n", indent, s.Label(), s.Value())
		}
	}
}

func stepCount(steps []*model.Step) string {
	if len(steps) == 1 {
		return "1 step"
	}
	return strconv.Itoa(len(steps)) + " steps"
}

func renderEntity(w io.Writer, sel Selector, e entity, owner controller.Document) {
	kind := "Keyword"
	if sel.Test != "" {
		kind = "Test"
	}
	fmt.Fprintf(w, "%s %q in %s %q\n", kind, e.Name(), kindLabel(owner.Kind()), owner.Name())
	renderSettings(w, "  ", e.Settings())
	fmt.Fprintln(w)
	renderSteps(w, e.Steps())
}

func renderSteps(w io.Writer, steps []*model.Step) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Assign", "Keyword", "Arguments", "Comment"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for i, step := range steps {
		table.Append([]string{
			strconv.Itoa(i + 1),
			model.JoinCells(step.Assign),
			step.Keyword,
			model.JoinCells(step.Args),
			step.Comment,
		})
	}
	table.Render()
}

func renderDirty(w io.Writer, docs []controller.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(w, "\nNo unsaved changes.")
		return
	}
	fmt.Fprintln(w, "\nUnsaved changes:")
	for _, doc := range docs {
		fmt.Fprintf(w, "  %s %q (%s)\n", kindLabel(doc.Kind()), doc.Name(), doc.Datafile().Source.Base())
	}
}
