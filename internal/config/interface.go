package config

import (
	"context"

	"github.com/specialistvlad/suitectl/internal/model"
)

// Loader is the interface for a format-specific document loader.
type Loader interface {
	// Load reads the suite file, resource file or directory at path and
	// returns it as a parsed document tree.
	Load(ctx context.Context, path string) (*model.Datafile, error)
}
