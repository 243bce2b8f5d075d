package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/suitectl/internal/controller"
	"github.com/specialistvlad/suitectl/internal/model"
	"github.com/specialistvlad/suitectl/internal/populator"
)

// stubLoader builds a fresh tree on every Load, like reading from disk.
type stubLoader struct {
	build func() *model.Datafile
	err   error
	paths []string
}

func (s *stubLoader) Load(_ context.Context, path string) (*model.Datafile, error) {
	s.paths = append(s.paths, path)
	if s.err != nil {
		return nil, s.err
	}
	return s.build(), nil
}

func newTree() *model.Datafile {
	root := model.NewDirectory("Root", model.NewFSInfo("/suites"))

	suite := model.NewTestCaseFile("Login", model.NewFSInfo("/suites/login.hcl"))
	suite.Settings.Doc.Value = "Login tests"
	suite.Settings.AddLibrary("SeleniumLibrary", []string{"timeout=5"})
	suite.Settings.AddMetadata("Version", "1.0")
	suite.Variables.Add("${HOST}", "localhost")
	tc := suite.TestCases.Add("Valid Login")
	tc.Tags.Values = []string{"smoke"}
	tc.Steps = []*model.Step{
		{Keyword: "Open Browser", Args: []string{"http://localhost"}},
		{Assign: []string{"${title}="}, Keyword: "Get Title"},
	}
	kw := suite.Keywords.Add("Open App")
	kw.Steps = []*model.Step{{Keyword: "No Operation"}}
	root.AddChild(suite)

	other := model.NewTestCaseFile("Logout", model.NewFSInfo("/suites/logout.hcl"))
	other.TestCases.Add("Logout Works")
	root.AddChild(other)
	return root
}

func newTestApp(t *testing.T, loader *stubLoader) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()
	cfg, err := NewConfig(Config{Path: "/suites", LogFormat: "text", LogLevel: "info"})
	require.NoError(t, err)
	return SetupAppTest(t, cfg, loader)
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{Path: "x", LogFormat: "json", LogLevel: "warn", Workers: 2}},
		{name: "missing path", cfg: Config{LogFormat: "text", LogLevel: "info"}, wantErr: "Path is a required"},
		{name: "bad format", cfg: Config{Path: "x", LogFormat: "xml", LogLevel: "info"}, wantErr: "invalid log-format"},
		{name: "bad level", cfg: Config{Path: "x", LogFormat: "text", LogLevel: "loud"}, wantErr: "invalid log-level"},
		{name: "negative workers", cfg: Config{Path: "x", LogFormat: "text", LogLevel: "info", Workers: -1}, wantErr: "invalid workers"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &SafeBuffer{}
	logger := NewLogger("warn", "json", buf)

	logger.Info("dropped")
	logger.Warn("kept", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestLogLevels_AcceptedByConfigAndLogger(t *testing.T) {
	assert.Equal(t, []string{"debug", "error", "info", "warn"}, LogLevels())

	for _, level := range LogLevels() {
		t.Run(level, func(t *testing.T) {
			_, err := NewConfig(Config{Path: "x", LogFormat: "text", LogLevel: level})
			require.NoError(t, err)

			buf := &SafeBuffer{}
			logger := NewLogger(level, "text", buf)
			logger.Error("always")
			assert.Contains(t, buf.String(), "msg=always")
		})
	}
}

func TestNewLogger_DebugLevel(t *testing.T) {
	buf := &SafeBuffer{}
	logger := NewLogger("debug", "text", buf)

	logger.Debug("detail")

	assert.Contains(t, buf.String(), "level=DEBUG msg=detail")
}

func TestOpen(t *testing.T) {
	t.Run("suite tree", func(t *testing.T) {
		loader := &stubLoader{build: newTree}
		a, _, _ := newTestApp(t, loader)

		doc, err := a.Open(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"/suites"}, loader.paths)
		assert.IsType(t, &controller.DirectoryController{}, doc)
		assert.Len(t, doc.Children(), 2)
	})

	t.Run("resource file", func(t *testing.T) {
		loader := &stubLoader{build: func() *model.Datafile {
			return model.NewResourceFile("Common", model.NewFSInfo("common.resource.hcl"))
		}}
		a, _, _ := newTestApp(t, loader)

		doc, err := a.Open(context.Background())

		require.NoError(t, err)
		assert.IsType(t, &controller.ResourceFileController{}, doc)
	})

	t.Run("loader error", func(t *testing.T) {
		loadErr := errors.New("disk on fire")
		a, _, _ := newTestApp(t, &stubLoader{err: loadErr})

		_, err := a.Open(context.Background())

		require.ErrorIs(t, err, loadErr)
		assert.Contains(t, err.Error(), "failed to load /suites")
	})
}

func TestOutline(t *testing.T) {
	a, out, _ := newTestApp(t, &stubLoader{build: newTree})

	require.NoError(t, a.Outline(context.Background()))

	want := []string{
		`Directory "Root"`,
		`  Test Case File "Login"`,
		`    Documentation: Login tests`,
		`    Library: SeleniumLibrary    timeout=5`,
		`    Metadata: Version = 1.0`,
		`    Variable: ${HOST} = localhost`,
		`    Test: Valid Login (2 steps)`,
		`    Keyword: Open App (1 step)`,
		`  Test Case File "Logout"`,
		`    Test: Logout Works (0 steps)`,
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestShow(t *testing.T) {
	t.Run("test case", func(t *testing.T) {
		a, out, _ := newTestApp(t, &stubLoader{build: newTree})

		require.NoError(t, a.Show(context.Background(), Selector{Test: "Valid Login"}))

		s := out.String()
		assert.Contains(t, s, `Test "Valid Login" in Test Case File "Login"`)
		assert.Contains(t, s, "  Tags: smoke")
		assert.Contains(t, s, "Open Browser")
		assert.Contains(t, s, "http://localhost")
		assert.Contains(t, s, "${title}=")
	})

	t.Run("keyword", func(t *testing.T) {
		a, out, _ := newTestApp(t, &stubLoader{build: newTree})

		require.NoError(t, a.Show(context.Background(), Selector{Keyword: "Open App"}))

		assert.Contains(t, out.String(), `Keyword "Open App" in Test Case File "Login"`)
		assert.Contains(t, out.String(), "No Operation")
	})

	t.Run("found in a later child", func(t *testing.T) {
		a, out, _ := newTestApp(t, &stubLoader{build: newTree})

		require.NoError(t, a.Show(context.Background(), Selector{Test: "Logout Works"}))

		assert.Contains(t, out.String(), `in Test Case File "Logout"`)
	})

	t.Run("not found", func(t *testing.T) {
		a, _, _ := newTestApp(t, &stubLoader{build: newTree})

		err := a.Show(context.Background(), Selector{Keyword: "Missing"})

		require.ErrorIs(t, err, ErrEntityNotFound)
		assert.Contains(t, err.Error(), `keyword "Missing"`)
	})

	t.Run("invalid selector", func(t *testing.T) {
		loader := &stubLoader{build: newTree}
		a, _, _ := newTestApp(t, loader)

		require.Error(t, a.Show(context.Background(), Selector{}))
		require.Error(t, a.Show(context.Background(), Selector{Test: "a", Keyword: "b"}))
		assert.Empty(t, loader.paths, "nothing is loaded for an invalid selector")
	})
}

func TestReplaceSteps(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, out, logs := newTestApp(t, &stubLoader{build: newTree})
		rows := [][]string{
			{"Log", "hello"},
			{"...", "WARN"},
			{"# done"},
		}

		require.NoError(t, a.ReplaceSteps(context.Background(), Selector{Test: "Valid Login"}, rows))

		s := out.String()
		assert.Contains(t, s, "Log")
		assert.Contains(t, s, "hello    WARN")
		assert.Contains(t, s, "# done")
		assert.NotContains(t, s, "Open Browser")
		assert.Contains(t, s, "Unsaved changes:\n"+`  Test Case File "Login" (login.hcl)`+"\n")
		assert.NotContains(t, s, `Directory "Root"`)
		assert.NotContains(t, s, `"Logout"`)
		assert.Contains(t, logs.String(), "Steps replaced.")
	})

	t.Run("populator error", func(t *testing.T) {
		a, _, _ := newTestApp(t, &stubLoader{build: newTree})

		err := a.ReplaceSteps(context.Background(), Selector{Keyword: "Open App"}, [][]string{{"[Tags]", "x"}})

		require.ErrorIs(t, err, populator.ErrSettingRow)
		assert.Contains(t, err.Error(), `failed to replace steps of keyword "Open App"`)
	})
}

func TestReadRows(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "rows of different lengths",
			input: "Log\thello\n\n${x}=\tSet Variable\t1\n...\tmore\n",
			want: [][]string{
				{"Log", "hello"},
				{"${x}=", "Set Variable", "1"},
				{"...", "more"},
			},
		},
		{
			name:  "quotes are kept verbatim",
			input: "Log\t\"hello\"\nLog\t\"unterminated\nShould Be Equal\ta\tb\n",
			want: [][]string{
				{"Log", `"hello"`},
				{"Log", `"unterminated`},
				{"Should Be Equal", "a", "b"},
			},
		},
		{
			name:  "empty cells and CRLF",
			input: "Keep\t\tempty\r\nLog\tlast",
			want: [][]string{
				{"Keep", "", "empty"},
				{"Log", "last"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := ReadRows(strings.NewReader(tc.input))

			require.NoError(t, err)
			assert.Equal(t, tc.want, rows)
		})
	}
}
