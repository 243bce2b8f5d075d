package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/suitectl/internal/app"
	"github.com/specialistvlad/suitectl/internal/hcl"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Root      string
}

// WriteFiles writes files into a fresh temporary directory and returns it.
// Names are slash-separated relative paths, e.g. "suites/login.hcl", and
// create their subdirectories as needed.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return root
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, path string, use func(context.Context, *app.App) error) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, path, use)
}

// RunIntegrationTestWithContext writes files, builds an app with the HCL
// loader for path relative to the written tree, and hands it to use.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, path string, use func(context.Context, *app.App) error) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)

	cfg, err := app.NewConfig(app.Config{
		Path:      filepath.Join(root, filepath.FromSlash(path)),
		LogLevel:  "debug",
		LogFormat: "text",
		Workers:   2,
	})
	require.NoError(t, err)

	testApp, out, logs := app.SetupAppTest(t, cfg, hcl.NewLoader(cfg.Workers))
	// SetupAppTest dumps the log buffer when SUITECTL_TEST_LOGS is set.
	runErr := use(ctx, testApp)

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		Root:      root,
	}
}
