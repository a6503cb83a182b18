package repositories

import (
	"context"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// ManifestRepository loads manifest files from storage.
type ManifestRepository interface {
	// Read decodes the manifest at path. It returns an *entities.InputReadError
	// when the file cannot be read and an *entities.MalformedJSONError when the
	// content is not a JSON object.
	Read(ctx context.Context, path string) (*entities.Manifest, error)
}
