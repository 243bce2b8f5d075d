package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/suitectl/internal/model"
)

const loginSuite = `
settings {
  documentation  = "Login tests"
  suite_setup    = ["Open Browser", "http://localhost", "chrome"]
  test_teardown  = "Close Browser"
  force_tags     = ["ui", "login"]
  test_timeout   = ["1 min", "Too slow"]

  library "SeleniumLibrary" {}
  resource "common.resource.hcl" {}
  library "Collections" {
    args = ["WITH NAME", "Coll"]
  }
  metadata "Version" {
    value = 2
  }
}

variable "$${USER}" {
  value = "demo"
}

variable "@{BROWSERS}" {
  value = ["chrome", "firefox"]
}

test "Valid Login" {
  tags  = ["smoke"]
  steps = [
    ["Input Text", "username", "$${USER}"],
    ["$${title}=", "Get Title"],
    ["Sleep", 2],
    ["# verify the landing page"],
    ["Title Should Be", "Welcome"],
    ["...", "strict=True"],
  ]
}

keyword "Login As" {
  arguments = ["$${name}"]
  return    = ["$${name}"]
  steps     = [["Log", "$${name}"]]
}
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestLoad_SuiteFile(t *testing.T) {
	root := writeFiles(t, map[string]string{"valid_login.hcl": loginSuite})

	df, err := NewLoader(0).Load(context.Background(), filepath.Join(root, "valid_login.hcl"))

	require.NoError(t, err)
	assert.Equal(t, model.KindTestCaseFile, df.Kind)
	assert.Equal(t, "Valid Login", df.Name)

	ss := df.Settings
	assert.Equal(t, "Login tests", ss.Doc.Value)
	assert.Equal(t, []string{"Open Browser", "http://localhost", "chrome"}, ss.SuiteSetup.Cells())
	assert.Equal(t, "Close Browser", ss.TestTeardown.Name)
	assert.Equal(t, []string{"ui", "login"}, ss.ForceTags.Values)
	assert.Equal(t, model.Timeout{Value: "1 min", Message: "Too slow"}, *ss.TestTimeout)

	require.Len(t, ss.Imports, 3)
	assert.Equal(t, model.ImportLibrary, ss.Imports[0].Type)
	assert.Equal(t, model.ImportResource, ss.Imports[1].Type, "imports keep source order")
	assert.Equal(t, []string{"WITH NAME", "Coll"}, ss.Imports[2].Args)
	require.Len(t, ss.Metadata, 1)
	assert.Equal(t, "2", ss.Metadata[0].Value)

	require.Len(t, df.Variables.Variables, 2)
	assert.Equal(t, []string{"demo"}, df.Variables.Variables[0].Value)
	assert.Equal(t, []string{"chrome", "firefox"}, df.Variables.Variables[1].Value)

	require.Len(t, df.TestCases.Tests, 1)
	tc := df.TestCases.Tests[0]
	assert.Equal(t, []string{"smoke"}, tc.Tags.Values)
	want := []*model.Step{
		{Keyword: "Input Text", Args: []string{"username", "${USER}"}},
		{Assign: []string{"${title}="}, Keyword: "Get Title"},
		{Keyword: "Sleep", Args: []string{"2"}},
		{Comment: "# verify the landing page"},
		{Keyword: "Title Should Be", Args: []string{"Welcome", "strict=True"}},
	}
	if diff := cmp.Diff(want, tc.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, df.Keywords.Keywords, 1)
	kw := df.Keywords.Keywords[0]
	assert.Equal(t, []string{"${name}"}, kw.Args.Values)
	assert.Equal(t, []string{"${name}"}, kw.Return.Values)
	assert.Len(t, kw.Steps, 1)
}

func TestLoad_ResourceFile(t *testing.T) {
	root := writeFiles(t, map[string]string{"common.resource.hcl": `
settings {
  documentation = "Shared keywords"
}
keyword "Open App" {
  steps = [["No Operation"]]
}
`})

	df, err := NewLoader(1).Load(context.Background(), filepath.Join(root, "common.resource.hcl"))

	require.NoError(t, err)
	assert.Equal(t, model.KindResourceFile, df.Kind)
	assert.Equal(t, "Common", df.Name)
	assert.Nil(t, df.TestCases)
	assert.Len(t, df.Keywords.Keywords, 1)
}

func TestLoad_ResourceFileRejectsTests(t *testing.T) {
	root := writeFiles(t, map[string]string{"bad.resource.hcl": `test "Nope" {}`})

	_, err := NewLoader(1).Load(context.Background(), filepath.Join(root, "bad.resource.hcl"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed in a resource file")
}

func TestLoad_DirectoryTree(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"suites/__init__.hcl":                  `settings { documentation = "All suites" }`,
		"suites/b_suite.hcl":                   `test "B" {}`,
		"suites/01__a_suite.hcl":               `test "A" {}`,
		"suites/common.resource.hcl":           `keyword "K" {}`,
		"suites/nested/deep.hcl":               `test "Deep" {}`,
		"suites/empty/readme.txt":              `nothing here`,
		"suites/only_resources/x.resource.hcl": `keyword "X" {}`,
	})

	df, err := NewLoader(2).Load(context.Background(), filepath.Join(root, "suites"))

	require.NoError(t, err)
	assert.Equal(t, model.KindDirectory, df.Kind)
	assert.Equal(t, "Suites", df.Name)
	assert.Equal(t, "All suites", df.Settings.Doc.Value)

	var names []string
	var kinds []model.Kind
	for _, child := range df.Children {
		names = append(names, child.Name)
		kinds = append(kinds, child.Kind)
	}
	assert.Equal(t, []string{"A Suite", "B Suite", "Nested"}, names)
	assert.Equal(t, []model.Kind{model.KindTestCaseFile, model.KindTestCaseFile, model.KindDirectory}, kinds)
	require.Len(t, df.Children[2].Children, 1)
	assert.Equal(t, "Deep", df.Children[2].Children[0].TestCases.Tests[0].Name)
}

func TestLoad_InitFileRejectsTests(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"dir/__init__.hcl": `test "Nope" {}`,
		"dir/a.hcl":        `test "A" {}`,
	})

	_, err := NewLoader(1).Load(context.Background(), filepath.Join(root, "dir"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory initialization file")
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax error", content: `test "A" {`, wantErr: "failed to parse HCL file"},
		{name: "duplicate settings", content: "settings {}\nsettings {}", wantErr: "Duplicate"},
		{name: "unknown attribute", content: `test "A" { bogus = 1 }`, wantErr: "Unsupported argument"},
		{name: "setting row as step", content: `test "A" { steps = [["[Tags]", "x"]] }`, wantErr: "setting rows cannot be populated"},
		{name: "nested list cell", content: `test "A" { steps = [["Log", ["x"]]] }`, wantErr: "Invalid value"},
		{name: "steps not a list", content: `test "A" { steps = "Log" }`, wantErr: "a list of rows"},
		{name: "unescaped interpolation", content: `test "A" { steps = [["Log", "${x}"]] }`, wantErr: "Variables not allowed"},
		{name: "missing variable value", content: `variable "$${X}" {}`, wantErr: "Missing required argument"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := writeFiles(t, map[string]string{"suite.hcl": tc.content})

			_, err := NewLoader(1).Load(context.Background(), filepath.Join(root, "suite.hcl"))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Contains(t, err.Error(), "suite.hcl")
		})
	}
}

func TestLoad_MissingPathAndWrongExtension(t *testing.T) {
	root := writeFiles(t, map[string]string{"notes.txt": "x"})

	_, err := NewLoader(1).Load(context.Background(), filepath.Join(root, "missing"))
	require.Error(t, err)

	_, err = NewLoader(1).Load(context.Background(), filepath.Join(root, "notes.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file")
}

func TestLoad_CancelledContext(t *testing.T) {
	root := writeFiles(t, map[string]string{"dir/a.hcl": `test "A" {}`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(1).Load(ctx, filepath.Join(root, "dir"))

	require.ErrorIs(t, err, context.Canceled)
}

func TestDocumentName(t *testing.T) {
	testCases := map[string]string{
		"/x/valid_login.hcl":     "Valid Login",
		"/x/01__setup.hcl":       "Setup",
		"/x/common.resource.hcl": "Common",
		"/x/MixedCase_Name.hcl":  "MixedCase Name",
		"/x/suites":              "Suites",
	}
	for path, want := range testCases {
		assert.Equal(t, want, documentName(path), path)
	}
}
