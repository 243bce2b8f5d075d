package controller

import (
	"testing"

	"github.com/specialistvlad/suitectl/internal/model"
	"github.com/specialistvlad/suitectl/internal/setting"
)

// newSuiteFile builds a suite file with one test case of two steps, one
// keyword, one variable, one import and one metadata entry.
func newSuiteFile(t *testing.T, name string) *model.Datafile {
	t.Helper()
	df := model.NewTestCaseFile(name, model.NewFSInfo(name+".hcl"))
	tc := df.TestCases.Add("Valid Login")
	tc.Steps = []*model.Step{
		{Keyword: "Open Browser", Args: []string{"http://localhost"}},
		{Keyword: "Title Should Be", Args: []string{"Welcome"}},
	}
	kw := df.Keywords.Add("Open App")
	kw.Steps = []*model.Step{{Keyword: "No Operation"}}
	df.Variables.Add("${HOST}", "localhost")
	df.Settings.AddLibrary("SeleniumLibrary", nil)
	df.Settings.AddMetadata("Version", "1.0")
	return df
}

func labels(settings []setting.Controller) []string {
	out := make([]string, 0, len(settings))
	for _, s := range settings {
		out = append(out, s.Label())
	}
	return out
}

func stepStrings(steps []*model.Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.String())
	}
	return out
}
