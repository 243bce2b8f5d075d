package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/suitectl/internal/controller"
	"github.com/specialistvlad/suitectl/internal/hcl"
	"github.com/specialistvlad/suitectl/internal/model"
)

// OpenHCL writes files, loads path from the written tree with the HCL
// loader and wraps the result in a document controller.
func OpenHCL(t *testing.T, files map[string]string, path string) controller.Document {
	t.Helper()

	root := WriteFiles(t, files)
	df, err := hcl.NewLoader(1).Load(context.Background(), filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)

	if df.Kind == model.KindResourceFile {
		return controller.NewResourceFile(df)
	}
	return controller.New(df)
}
